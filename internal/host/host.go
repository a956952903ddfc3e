// Package host implements the arcade shell around a game: the
// SELECT → START → PLAYING → STAGE_CLEAR / GAMEOVER state machine, pause,
// stage progression and persistence of high scores, saved progress and play
// sessions. The host talks to a game only through registry.Game and the
// core.Hooks callbacks.
package host

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

var (
	// ErrNoGame is returned by operations that need a mounted game.
	ErrNoGame = errors.New("host: no game selected")
	// ErrWrongPhase is returned when an operation is not valid in the current phase.
	ErrWrongPhase = errors.New("host: operation not allowed in this phase")
)

// Phase is a state of the shell.
type Phase int

const (
	PhaseSelect Phase = iota
	PhaseStart
	PhasePlaying
	PhaseStageClear
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "SELECT"
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseStageClear:
		return "STAGE_CLEAR"
	case PhaseGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}

// Store is the persistence collaborator of the host. storage.Store and
// storage.Memory both satisfy it.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetMax(key string, value int) (int, error)
	Delete(key string) error
	SaveScore(gameID string, score int) (int64, error)
	SaveSession(session storage.Session) error
}

// Resizer is implemented by games that can adapt to a new terminal size
// without restarting.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// HighScoreKey is the store key of a game's best score.
func HighScoreKey(gameID string) string { return gameID + "_highscore" }

// StageKey is the store key of a game's saved stage progress.
func StageKey(gameID string) string { return gameID + "_current_stage" }

// Options configure a Host.
type Options struct {
	Runtime core.RuntimeConfig // Seed 0 picks a time-based seed per session
	Store   Store              // Defaults to storage.NewMemory()
	Logger  *log.Logger        // Defaults to a discarding logger

	// NewGame creates games by ID. Defaults to registry.Create.
	NewGame func(id string) (registry.Game, error)
	// Now defaults to time.Now.
	Now func() time.Time
}

// Status is a read-only view of the shell for rendering.
type Status struct {
	Phase     Phase
	GameID    string
	Title     string
	Stage     int
	MaxStage  int
	Paused    bool
	HighScore int
	LastScore int
	Won       bool
	SessionID string
	Display   core.Display
}

// Host drives one mounted game at a time. It is not safe for concurrent use;
// each terminal session owns its own Host.
type Host struct {
	rt      core.RuntimeConfig
	store   Store
	logger  *log.Logger
	newGame func(id string) (registry.Game, error)
	now     func() time.Time

	game       registry.Game
	generation int // Bumped on teardown so hooks of a dropped game are ignored

	phase     Phase
	paused    bool
	stage     int
	highScore int
	lastScore int
	won       bool
	display   core.Display
	session   storage.Session
}

// New creates a host in the SELECT phase.
func New(opts Options) *Host {
	h := &Host{
		rt:      opts.Runtime,
		store:   opts.Store,
		logger:  opts.Logger,
		newGame: opts.NewGame,
		now:     opts.Now,
		phase:   PhaseSelect,
		stage:   1,
	}
	if h.store == nil {
		h.store = storage.NewMemory()
	}
	if h.logger == nil {
		h.logger = log.New(io.Discard)
	}
	if h.newGame == nil {
		h.newGame = registry.Create
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// Phase returns the current phase.
func (h *Host) Phase() Phase { return h.phase }

// Game returns the mounted game, or nil in SELECT.
func (h *Host) Game() registry.Game { return h.game }

// Status returns a snapshot of the shell state.
func (h *Host) Status() Status {
	st := Status{
		Phase:     h.phase,
		Stage:     h.stage,
		Paused:    h.paused,
		HighScore: h.highScore,
		LastScore: h.lastScore,
		Won:       h.won,
		SessionID: h.session.ID,
		Display:   h.display,
	}
	if h.game != nil {
		st.GameID = h.game.ID()
		st.Title = h.game.Title()
		st.MaxStage = h.game.MaxStage()
	}
	return st
}

// Select mounts a game and loads its high score and saved stage.
func (h *Host) Select(gameID string) error {
	if h.phase != PhaseSelect {
		return fmt.Errorf("select %q in %s: %w", gameID, h.phase, ErrWrongPhase)
	}
	game, err := h.newGame(gameID)
	if err != nil {
		return fmt.Errorf("host: select: %w", err)
	}

	h.game = game
	h.generation++
	h.highScore = h.loadInt(HighScoreKey(gameID), 0)
	h.stage = min(max(h.loadInt(StageKey(gameID), 1), 1), game.MaxStage())
	h.lastScore = 0
	h.won = false
	h.display = core.Display{}
	h.phase = PhaseStart

	h.logger.Debug("game selected", "game", gameID, "stage", h.stage, "highscore", h.highScore)
	return nil
}

// Start begins a play session at the selected stage.
func (h *Host) Start() error {
	if h.game == nil {
		return ErrNoGame
	}
	if h.phase != PhaseStart {
		return fmt.Errorf("start in %s: %w", h.phase, ErrWrongPhase)
	}
	h.begin()
	return nil
}

// TogglePause pauses or resumes a running game.
func (h *Host) TogglePause() error {
	if h.game == nil {
		return ErrNoGame
	}
	if h.phase != PhasePlaying {
		return fmt.Errorf("pause in %s: %w", h.phase, ErrWrongPhase)
	}
	h.setPaused(!h.paused)
	return nil
}

// NextStage advances past a cleared stage, saves the progress and resumes.
func (h *Host) NextStage() error {
	if h.game == nil {
		return ErrNoGame
	}
	if h.phase != PhaseStageClear {
		return fmt.Errorf("next stage in %s: %w", h.phase, ErrWrongPhase)
	}
	h.stage++
	h.save(StageKey(h.game.ID()), strconv.Itoa(h.stage))
	h.game.SetStage(h.stage)
	h.phase = PhasePlaying
	h.setPaused(false)

	h.logger.Info("stage started", "game", h.game.ID(), "stage", h.stage, "session", h.session.ID)
	return nil
}

// Reboot restarts from stage 1 after a game over with a fresh session.
func (h *Host) Reboot() error {
	if h.game == nil {
		return ErrNoGame
	}
	if h.phase != PhaseGameOver {
		return fmt.Errorf("reboot in %s: %w", h.phase, ErrWrongPhase)
	}
	h.stage = 1
	h.remove(StageKey(h.game.ID()))
	h.begin()
	return nil
}

// Back tears down the mounted game and returns to SELECT. The dropped game
// is never stepped again and its pending callbacks are ignored.
func (h *Host) Back() error {
	if h.game == nil {
		return ErrNoGame
	}
	h.logger.Debug("game closed", "game", h.game.ID(), "phase", h.phase)
	h.game = nil
	h.generation++
	h.phase = PhaseSelect
	h.paused = false
	return nil
}

// Tick advances the mounted game by dt. Only a running session is stepped;
// a paused game still receives the step so pending timers can finish.
func (h *Host) Tick(in core.InputFrame, dt time.Duration) {
	if h.game == nil || h.phase != PhasePlaying {
		return
	}
	h.game.Step(in, dt)
}

// Resize updates the runtime size and lets the game adapt if it can.
func (h *Host) Resize(width, height int) {
	h.rt.ScreenW, h.rt.ScreenH = width, height
	if r, ok := h.game.(Resizer); ok {
		r.Resize(h.rt)
	}
}

// Handle routes a discrete action to the operation it means in the current
// phase. Game selection is left to the caller. It reports whether the action
// was consumed.
func (h *Host) Handle(a core.Action) bool {
	var err error
	switch {
	case h.phase == PhaseSelect:
		return false
	case a == core.ActionBack:
		err = h.Back()
	case h.phase == PhaseStart && (a == core.ActionConfirm || a == core.ActionFire):
		err = h.Start()
	case h.phase == PhasePlaying && a == core.ActionPause:
		err = h.TogglePause()
	case h.phase == PhaseStageClear && a == core.ActionConfirm:
		err = h.NextStage()
	case h.phase == PhaseGameOver && (a == core.ActionRestart || a == core.ActionConfirm):
		err = h.Reboot()
	default:
		return false
	}
	if err != nil {
		h.logger.Warn("action rejected", "action", a, "err", err)
		return false
	}
	return true
}

func (h *Host) begin() {
	rt := h.rt
	if rt.Seed == 0 {
		rt.Seed = h.now().UnixNano()
	}

	h.session = storage.Session{
		ID:        uuid.NewString(),
		GameID:    h.game.ID(),
		Stage:     h.stage,
		Seed:      rt.Seed,
		StartedAt: h.now(),
	}
	h.won = false
	h.display = core.Display{}

	h.game.Reset(rt, h.hooks())
	h.game.SetStage(h.stage)
	h.phase = PhasePlaying
	h.setPaused(false)

	h.logger.Info("session started", "game", h.game.ID(), "session", h.session.ID, "stage", h.stage, "seed", rt.Seed)
}

func (h *Host) setPaused(paused bool) {
	h.paused = paused
	h.game.SetPaused(paused)
}

// hooks binds the game callbacks to the current generation.
func (h *Host) hooks() core.Hooks {
	gen := h.generation
	live := func() bool { return h.game != nil && h.generation == gen }
	return core.Hooks{
		OnGameOver: func(score int) {
			if live() {
				h.onGameOver(score, false)
			}
		},
		OnStageComplete: func(stage int) {
			if live() {
				h.onStageComplete(stage)
			}
		},
		OnDisplay: func(d core.Display) {
			if live() {
				h.display = d
			}
		},
	}
}

func (h *Host) onStageComplete(stage int) {
	if h.phase != PhasePlaying {
		return
	}
	if stage >= h.game.MaxStage() {
		h.onGameOver(h.game.State().Score, true)
		return
	}
	h.phase = PhaseStageClear
	h.setPaused(true)
	h.logger.Info("stage cleared", "game", h.game.ID(), "stage", stage, "score", h.game.State().Score)
}

func (h *Host) onGameOver(score int, won bool) {
	if h.phase != PhasePlaying {
		return
	}
	id := h.game.ID()
	h.lastScore = score
	h.won = won
	h.raiseHighScore(id, score)
	h.remove(StageKey(id))

	if score > 0 {
		if _, err := h.store.SaveScore(id, score); err != nil {
			h.logger.Warn("score not saved", "game", id, "err", err)
		}
	}
	h.session.Score = score
	h.session.Stage = h.stage
	h.session.Won = won
	h.session.EndedAt = h.now()
	if err := h.store.SaveSession(h.session); err != nil {
		h.logger.Warn("session not saved", "session", h.session.ID, "err", err)
	}

	h.phase = PhaseGameOver
	h.logger.Info("game over", "game", id, "score", score, "won", won, "stage", h.stage, "session", h.session.ID)
}

// raiseHighScore writes score through the store's compare-and-set so hosts
// sharing one store never lower each other's best.
func (h *Host) raiseHighScore(id string, score int) {
	best, err := h.store.SetMax(HighScoreKey(id), score)
	if err != nil {
		h.logger.Warn("store write failed", "key", HighScoreKey(id), "err", err)
		h.highScore = max(h.highScore, score)
		return
	}
	h.highScore = best
}

func (h *Host) loadInt(key string, fallback int) int {
	v, ok, err := h.store.Get(key)
	if err != nil {
		h.logger.Warn("store read failed", "key", key, "err", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		h.logger.Warn("ignoring malformed value", "key", key, "value", v)
		return fallback
	}
	return n
}

func (h *Host) save(key, value string) {
	if err := h.store.Set(key, value); err != nil {
		h.logger.Warn("store write failed", "key", key, "err", err)
	}
}

func (h *Host) remove(key string) {
	if err := h.store.Delete(key); err != nil {
		h.logger.Warn("store delete failed", "key", key, "err", err)
	}
}
