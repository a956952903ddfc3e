package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/host"
)

// Model is the Bubble Tea model of one arcade session: the game menu, the
// scoreboard and the host shell running the selected game.
type Model struct {
	host      *host.Host
	scores    ScoreSource
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	holds     *core.HoldTracker
	input     core.InputFrame
	help      help.Model

	menu       menu
	scoreboard *scoreboard
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a model around h. scores feeds the menu and the
// scoreboard and may be nil.
func NewModel(h *host.Host, scores ScoreSource, cfg core.RuntimeConfig) *Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	hm := help.New()
	hm.Width = cfg.ScreenW
	return &Model{
		host:      h,
		scores:    scores,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     core.NewHoldTracker(core.DefaultHoldWindow),
		input:     core.NewInputFrame(),
		help:      hm,
		menu:      newMenu(scores),
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		if _, ok := msg.(TickMsg); !ok {
			return m.updateScoreboard(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m *Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		m.scoreboard.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch m.scoreboard.handleKey(msg) {
		case boardQuit:
			m.quitting = true
			return m, tea.Quit
		case boardClosed:
			m.scoreboard = nil
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.host.Phase() == host.PhaseSelect {
		m.handleMenu(action)
		return m, nil
	}

	if m.host.Handle(action) {
		m.holds.Reset()
		if m.host.Phase() == host.PhaseSelect {
			m.menu.refresh(m.scores)
		}
		return m, nil
	}

	if IsHoldable(action) {
		if o := opposite(action); o != core.ActionNone {
			m.holds.Release(o)
		}
		m.holds.Press(action, time.Now())
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

func (m *Model) handleMenu(action core.Action) {
	switch action {
	case core.ActionUp:
		m.menu.up()
	case core.ActionDown:
		m.menu.down()
	case core.ActionConfirm, core.ActionFire:
		if item := m.menu.selected(); item != nil {
			//nolint:errcheck // Only registered games are listed
			m.host.Select(item.GameID)
		}
	case core.ActionScoreboard:
		m.scoreboard = newScoreboard(m.scores, m.config.ScreenW, m.config.ScreenH)
	}
}

// handleMouse tracks the pointer; a left press also fires.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := &m.input.Pointer
	p.Known = true
	p.X, p.Y = float64(msg.X)+0.5, float64(msg.Y)+0.5

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		p.Down = true
		if !m.host.Handle(core.ActionFire) {
			m.input.Set(core.ActionFire)
		}
	case msg.Action == tea.MouseActionRelease:
		p.Down = false
	}
}

// handleResize processes window resize events. The running game adapts
// instead of restarting.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.host.Resize(msg.Width, msg.Height)
}

// handleTick advances the host by the wall time since the previous tick.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.holds.Apply(&m.input, now)
	m.host.Tick(m.input, dt)

	// One-shot actions last a single tick; held keys and the pointer persist.
	clear(m.input.Actions)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	game := m.host.Game()
	if game == nil {
		return
	}
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// render draws the game frame and the shell overlay into the screen buffer.
func (m *Model) render() {
	m.screen.Clear()
	if game := m.host.Game(); game != nil {
		game.Render(m.screen)
	}
	drawOverlay(m.screen, m.host.Status())
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.render()
	}

	keys := phaseHelp{keys: m.keyMapper.Keys(), phase: m.host.Phase()}
	if m.host.Phase() == host.PhaseSelect {
		return m.menu.view(m.config.ScreenW, m.config.ScreenH, helpStyle.Render(m.help.View(keys)))
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model and blocks until
// the player quits.
func Run(h *host.Host, scores ScoreSource, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(h, scores, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
