// Package voidrunner implements Void Runner, an avoidance game in a closing
// arena: morphing walls drift in from the edges towards the center and the
// player survives as long as they can.
package voidrunner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// ID is the registry and storage key of the game.
const ID = "voidrunner"

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Void Runner game logic.
type Game struct {
	cfg     config.VoidRunnerConfig
	rt      core.RuntimeConfig
	hooks   core.Hooks
	surface core.Surface
	rng     *rand.Rand
	clock   engine.Clock

	player Player
	walls  []*Wall
	nextID int

	frame        float64 // Survival frames, drives score and survival time
	speed        float64
	intensity    float64
	gridRotation float64
	lastSpawn    float64 // Game time of the last spawn, ms

	stage    int
	active   bool // False once a stage completes, until the next SetStage
	gameOver bool
	paused   bool

	lastScore    int // Last score pushed to the display
	lastSurvival int
	display      core.Display
}

// New creates a Void Runner game using the configured config path and
// difficulty preset.
func New() *Game {
	cfg, err := config.LoadVoidRunner(configPath)
	if err != nil {
		cfg = config.DefaultVoidRunnerConfig()
	}
	config.ApplyVoidRunnerPreset(&cfg, difficultyPreset)
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.VoidRunnerConfig) *Game {
	return &Game{
		cfg:   cfg,
		stage: 1,
		rng:   rand.New(rand.NewSource(0)),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Void Runner"
}

// MaxStage returns the last stage.
func (g *Game) MaxStage() int {
	return g.cfg.Gameplay.MaxStage
}

// Reset starts a new session at stage 1.
func (g *Game) Reset(cfg core.RuntimeConfig, hooks core.Hooks) {
	g.rt = cfg
	g.hooks = hooks
	g.surface = cfg.Surface()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = engine.Clock{}

	g.frame = 0
	g.intensity = 0
	g.gridRotation = 0
	g.nextID = 0
	g.gameOver = false
	g.paused = false
	g.display = core.Display{}

	g.SetStage(1)
	g.pushDisplay(true)
}

// Resize adapts the arena to a new terminal size. The player is re-centred
// and the walls cleared.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.rt.ScreenW, g.rt.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.surface = g.rt.Surface()
	g.recenter()
}

// SetPaused freezes or resumes the simulation.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	if paused {
		g.clock.Pause()
	} else {
		g.clock.Resume()
	}
}

// SetStage starts the given stage: the player is re-centred, the walls are
// cleared and a halted session resumes. Survival time carries over.
func (g *Game) SetStage(stage int) {
	g.stage = max(stage, 1)
	g.speed = g.wallSpeed()
	g.recenter()
	if !g.gameOver {
		g.active = true
	}
}

func (g *Game) recenter() {
	g.player = Player{Pos: g.surface.Center()}
	clear(g.walls)
	g.walls = g.walls[:0]
	g.lastSpawn = g.clock.Millis()
	g.lastScore = 0
	g.lastSurvival = 0
}

// Step advances the game by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.gameOver || !g.active || g.paused {
		return core.StepResult{State: g.State()}
	}

	k := g.clock.Advance(dt)
	for k > 0 && g.active {
		s := min(k, 1)
		g.update(in, s)
		k -= s
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Stage:    g.stage,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Score returns the exact frame-derived score.
func (g *Game) Score() int {
	return int(math.Floor(g.frame / float64(g.cfg.Gameplay.FramesPerPoint)))
}

// Survival returns whole seconds survived.
func (g *Game) Survival() int {
	return int(math.Floor(g.frame / engine.FrameRate))
}

// Intensity returns the fractional progress through the stage window.
func (g *Game) Intensity() float64 {
	return g.intensity
}

// pushDisplay sends the HUD projection to the host. Score is throttled to
// steps of DisplayStep; survival is pushed whenever it changes.
func (g *Game) pushDisplay(force bool) {
	score, survival := g.Score(), g.Survival()
	changed := force
	if score >= g.lastScore+g.cfg.Gameplay.DisplayStep {
		g.lastScore = score
		changed = true
	}
	if survival != g.lastSurvival {
		g.lastSurvival = survival
		changed = true
	}
	if !changed {
		return
	}
	g.display = core.Display{
		Score:     g.lastScore,
		Survival:  g.lastSurvival,
		Stability: g.stability(),
		Intensity: g.intensity,
	}
	g.hooks.Display(g.display)
}

// stability is the HUD percentage left in the current stage window.
func (g *Game) stability() int {
	return int(math.Round((1 - g.intensity) * 100))
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
