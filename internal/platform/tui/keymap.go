package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/host"
)

// KeyMap holds the arcade key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	AimLeft    key.Binding
	AimRight   key.Binding
	Fire       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		AimLeft:    key.NewBinding(key.WithKeys("z", ","), key.WithHelp("z", "aim left")),
		AimRight:   key.NewBinding(key.WithKeys("x", "."), key.WithHelp("x", "aim right")),
		Fire:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reboot")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys  KeyMap
	order []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultKeyMap()}
	k := &km.keys
	km.order = []binding{
		{&k.Quit, core.ActionQuit},
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.AimLeft, core.ActionAimLeft},
		{&k.AimRight, core.ActionAimRight},
		{&k.Fire, core.ActionFire},
		{&k.Confirm, core.ActionConfirm},
		{&k.Back, core.ActionBack},
		{&k.Pause, core.ActionPause},
		{&k.Restart, core.ActionRestart},
		{&k.Scoreboard, core.ActionScoreboard},
	}
	return km
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.order {
		if key.Matches(msg, *b.key) {
			return b.action
		}
	}
	return core.ActionNone
}

// IsHoldable reports whether an action is tracked as a held key rather than
// a one-shot press.
func IsHoldable(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionAimLeft, core.ActionAimRight, core.ActionFire:
		return true
	}
	return false
}

// opposite returns the held action a press of a cancels. Terminals never
// report key release, so reversing is the only early release signal.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionAimLeft:
		return core.ActionAimRight
	case core.ActionAimRight:
		return core.ActionAimLeft
	}
	return core.ActionNone
}

// phaseHelp implements help.KeyMap for the bindings relevant to a phase.
type phaseHelp struct {
	keys  KeyMap
	phase host.Phase
}

// ShortHelp returns key bindings for the short help view.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case host.PhaseSelect:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Scoreboard, k.Quit}
	case host.PhaseStart:
		return []key.Binding{k.Confirm, k.Back, k.Quit}
	case host.PhaseStageClear:
		return []key.Binding{k.Confirm, k.Back}
	case host.PhaseGameOver:
		return []key.Binding{k.Restart, k.Back, k.Quit}
	default:
		return []key.Binding{k.Up, k.Left, k.Fire, k.AimLeft, k.AimRight, k.Pause, k.Back}
	}
}

// FullHelp returns key bindings for the full help view.
func (h phaseHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
