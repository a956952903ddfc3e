package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up (held)
	ActionDown              // S, Down arrow - move down (held)
	ActionLeft              // A, Left arrow - move left (held)
	ActionRight             // D, Right arrow - move right (held)
	ActionAimLeft           // Left/A in Neon Strike - rotate aim counter-clockwise (held)
	ActionAimRight          // Right/D in Neon Strike - rotate aim clockwise (held)
	ActionFire              // Space or mouse press - fire
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - reboot after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionScoreboard        // Tab - open scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAimLeft:
		return "AimLeft"
	case ActionAimRight:
		return "AimRight"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse/touch state in terminal cell coordinates.
type Pointer struct {
	Known bool    // A pointer position has been reported at least once
	Down  bool    // Primary button or touch is held
	X, Y  float64 // Cell coordinates
}

// Pos returns the pointer position on the canvas.
func (p Pointer) Pos() Vec {
	return FromCell(p.X, p.Y)
}

// InputFrame represents the input state for a single frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Held lists directional actions currently held down.
	Held map[Action]bool

	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold marks a directional action as held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets triggered actions for the next frame. Held state and the
// pointer persist.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report repeats but never releases.
const DefaultHoldWindow = 180 * time.Millisecond

// HoldTracker converts key press/repeat events into held-key state.
type HoldTracker struct {
	window  time.Duration
	expires map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		expires: make(map[Action]time.Time),
	}
}

// Press records a press or repeat of a at time now.
func (t *HoldTracker) Press(a Action, now time.Time) {
	t.expires[a] = now.Add(t.window)
}

// Release drops a immediately.
func (t *HoldTracker) Release(a Action) {
	delete(t.expires, a)
}

// Reset drops all held keys.
func (t *HoldTracker) Reset() {
	for k := range t.expires {
		delete(t.expires, k)
	}
}

// Apply writes the keys still held at now into the frame's Held set.
func (t *HoldTracker) Apply(f *InputFrame, now time.Time) {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for a, until := range t.expires {
		if now.Before(until) {
			f.Hold(a)
		} else {
			delete(t.expires, a)
		}
	}
}
