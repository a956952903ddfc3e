package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Surface returns the canvas the games simulate on for this screen size.
func (c RuntimeConfig) Surface() Surface {
	return NewSurface(c.ScreenW, c.ScreenH)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Exact current score
	Stage    int  // Stage the simulation is running
	GameOver bool // Whether the session reached a terminal state
	Paused   bool // Whether the host has paused the simulation
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// Display is the host-visible projection of a running game. Games push it
// through Hooks.OnDisplay only when a displayed field changes.
type Display struct {
	Score     int
	Lives     int
	Survival  int     // Seconds survived (Void Runner)
	Stability int     // Percent, 100 at the start of a stage window (Void Runner)
	Power     string  // Active power-up label, empty when none (Neon Strike)
	Intensity float64 // Fractional stage progress (Void Runner)
}

// Hooks is the callback contract a game engine uses to talk to its host.
// Nil hooks are ignored.
type Hooks struct {
	OnGameOver      func(score int)
	OnStageComplete func(stage int)
	OnDisplay       func(d Display)
}

// GameOver invokes OnGameOver if set.
func (h Hooks) GameOver(score int) {
	if h.OnGameOver != nil {
		h.OnGameOver(score)
	}
}

// StageComplete invokes OnStageComplete if set.
func (h Hooks) StageComplete(stage int) {
	if h.OnStageComplete != nil {
		h.OnStageComplete(stage)
	}
}

// Display invokes OnDisplay if set.
func (h Hooks) Display(d Display) {
	if h.OnDisplay != nil {
		h.OnDisplay(d)
	}
}
