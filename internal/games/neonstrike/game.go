// Package neonstrike implements Neon Strike, a wave shooter where the player
// defends a core at the center of the screen from enemies closing in from
// every edge.
package neonstrike

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// ID is the registry and storage key of the game.
const ID = "neonstrike"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's values.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the Neon Strike game logic.
type Game struct {
	cfg     config.NeonStrikeConfig
	rt      core.RuntimeConfig
	hooks   core.Hooks
	surface core.Surface
	rng     *rand.Rand
	clock   engine.Clock

	frame        float64 // Reference frames simulated
	aim          float64
	aimByPointer bool
	lastPointer  core.Vec

	enemies   []*Enemy
	bullets   []Bullet
	powerUps  []PowerUp
	particles *engine.Particles
	fx        engine.Feedback

	nextID    int
	lastSpawn float64 // Game time of the last spawn, ms

	score      int
	lives      int
	stage      int
	threshold  int
	mode       FireMode
	powerTimer float64 // Frames left on the active power-up
	cooldown   float64 // Frames until RAPID may auto-fire again

	gameOver   bool
	finalScore int
	overDelay  time.Duration
	reported   bool

	paused  bool
	display core.Display
}

// New creates a Neon Strike game using the configured config path and
// difficulty preset.
func New() *Game {
	cfg, err := config.LoadNeonStrike(configPath)
	if err != nil {
		cfg = config.DefaultNeonStrikeConfig()
	}

	// Apply difficulty preset if set
	config.ApplyNeonStrikePreset(&cfg, difficultyPreset)

	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.NeonStrikeConfig) *Game {
	return &Game{
		cfg:       cfg,
		stage:     1,
		lives:     cfg.Gameplay.Lives,
		threshold: cfg.Gameplay.StageScore,
		particles: engine.NewParticles(cfg.Gameplay.ParticleLimit),
		rng:       rand.New(rand.NewSource(0)),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Strike"
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
	g.aim = 0
	g.aimByPointer = false
	g.lastPointer = core.Vec{}

	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.powerUps = g.powerUps[:0]
	g.particles.Clear()
	g.fx = engine.Feedback{}

	g.nextID = 0
	g.lastSpawn = 0

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.mode = FireNormal
	g.powerTimer = 0
	g.cooldown = 0

	g.gameOver = false
	g.finalScore = 0
	g.overDelay = 0
	g.reported = false

	g.paused = false
	g.display = core.Display{}
	g.SetStage(1)
	g.pushDisplay(true)
}

// Resize adapts the canvas to a new terminal size. Entities keep their
// positions; the core moves with the canvas center.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	g.rt.ScreenW, g.rt.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.surface = g.rt.Surface()
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

// SetStage switches to stage and re-arms its score threshold.
func (g *Game) SetStage(stage int) {
	g.stage = max(stage, 1)
	g.threshold = g.stage * g.cfg.Gameplay.StageScore
}

// Step advances the game by dt.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.gameOver {
		g.tickGameOver(dt)
		return core.StepResult{State: g.State()}
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	k := g.clock.Advance(dt)
	if k <= 0 {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in, k)

	// Sub-step so fast bullets cannot tunnel through small enemies on slow hosts.
	// A stage clear pauses the game from inside the hook; the rest of the step is dropped.
	for k > 0 && !g.gameOver && !g.paused {
		s := min(k, 1)
		g.update(s)
		k -= s
	}

	if g.gameOver {
		g.tickGameOver(0)
	}
	g.pushDisplay(false)
	return core.StepResult{State: g.State()}
}

// tickGameOver counts down the feedback delay before reporting game over.
// The delay runs on wall-clock time, paused or not.
func (g *Game) tickGameOver(dt time.Duration) {
	if g.reported {
		return
	}
	g.overDelay -= dt
	if g.overDelay <= 0 {
		g.reported = true
		g.hooks.GameOver(g.finalScore)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Stage:    g.stage,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lives returns the remaining core lives.
func (g *Game) Lives() int {
	return g.lives
}

// pushDisplay sends the HUD projection to the host when it changed.
func (g *Game) pushDisplay(force bool) {
	d := core.Display{
		Score: g.score,
		Lives: g.lives,
		Power: g.mode.Label(),
	}
	if !force && d == g.display {
		return
	}
	g.display = d
	g.hooks.Display(d)
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
