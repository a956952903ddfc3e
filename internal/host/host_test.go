package host

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/registry"
	"github.com/vovakirdan/neon-arcade/internal/storage"
)

// fakeGame lets tests fire the hooks by hand.
type fakeGame struct {
	id       string
	maxStage int
	hooks    core.Hooks
	state    core.GameState
	resets   int
	steps    int
	stages   []int
	seeds    []int64
	resized  core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig, hooks core.Hooks) {
	g.hooks = hooks
	g.resets++
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{Stage: 1}
}
func (g *fakeGame) SetPaused(p bool) { g.state.Paused = p }
func (g *fakeGame) SetStage(s int) {
	g.state.Stage = s
	g.stages = append(g.stages, s)
}
func (g *fakeGame) Step(core.InputFrame, time.Duration) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}
func (g *fakeGame) Render(*core.Screen)           {}
func (g *fakeGame) State() core.GameState         { return g.state }
func (g *fakeGame) MaxStage() int                 { return g.maxStage }
func (g *fakeGame) Resize(cfg core.RuntimeConfig) { g.resized = cfg }

type fixture struct {
	host  *Host
	store *storage.Memory
	games []*fakeGame
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureOn(t, storage.NewMemory())
}

// newFixtureOn builds a host on store, which several fixtures may share.
func newFixtureOn(t *testing.T, store *storage.Memory) *fixture {
	t.Helper()
	f := &fixture{store: store}
	f.host = New(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42},
		Store:   f.store,
		NewGame: func(id string) (registry.Game, error) {
			if id != "fake" {
				return nil, registry.ErrUnknownGame
			}
			g := &fakeGame{id: id, maxStage: 5}
			f.games = append(f.games, g)
			return g, nil
		},
		Now: func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	return f
}

func (f *fixture) game() *fakeGame { return f.games[len(f.games)-1] }

func (f *fixture) playing(t *testing.T) *fakeGame {
	t.Helper()
	if err := f.host.Select("fake"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := f.host.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return f.game()
}

func (f *fixture) value(key string) (string, bool) {
	v, ok, _ := f.store.Get(key)
	return v, ok
}

func TestSelectAndStart(t *testing.T) {
	f := newFixture(t)
	f.store.Set(HighScoreKey("fake"), "750")
	f.store.Set(StageKey("fake"), "3")

	if err := f.host.Select("fake"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	st := f.host.Status()
	if st.Phase != PhaseStart || st.HighScore != 750 || st.Stage != 3 {
		t.Fatalf("status after select = %+v", st)
	}

	if err := f.host.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	g := f.game()
	if f.host.Phase() != PhasePlaying || g.resets != 1 {
		t.Errorf("phase %s resets %d, expected PLAYING and one reset", f.host.Phase(), g.resets)
	}
	if len(g.stages) == 0 || g.stages[len(g.stages)-1] != 3 {
		t.Errorf("stage pushed to game = %v, expected 3", g.stages)
	}
	if g.state.Paused {
		t.Error("game should be unpaused after Start")
	}
	if g.seeds[0] != 42 {
		t.Errorf("seed = %d, expected configured 42", g.seeds[0])
	}
	if f.host.Status().SessionID == "" {
		t.Error("Start should open a session")
	}
}

func TestSelectErrors(t *testing.T) {
	f := newFixture(t)
	if err := f.host.Select("missing"); !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("Select(missing) = %v, expected ErrUnknownGame", err)
	}
	if err := f.host.Start(); !errors.Is(err, ErrNoGame) {
		t.Errorf("Start without game = %v, expected ErrNoGame", err)
	}

	f.host.Select("fake")
	if err := f.host.Select("fake"); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("second Select = %v, expected ErrWrongPhase", err)
	}
	if err := f.host.TogglePause(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("TogglePause in START = %v, expected ErrWrongPhase", err)
	}
}

func TestSavedStageClamped(t *testing.T) {
	tests := []struct {
		saved string
		want  int
	}{
		{"0", 1},
		{"9", 5},
		{"garbage", 1},
		{"4", 4},
	}
	for _, tt := range tests {
		f := newFixture(t)
		f.store.Set(StageKey("fake"), tt.saved)
		f.host.Select("fake")
		if got := f.host.Status().Stage; got != tt.want {
			t.Errorf("saved %q: stage = %d, expected %d", tt.saved, got, tt.want)
		}
	}
}

func TestTogglePause(t *testing.T) {
	f := newFixture(t)
	g := f.playing(t)

	f.host.TogglePause()
	if !g.state.Paused || !f.host.Status().Paused {
		t.Fatal("expected paused")
	}
	f.host.TogglePause()
	if g.state.Paused {
		t.Fatal("expected resumed")
	}
}

func TestStageClearAndNext(t *testing.T) {
	f := newFixture(t)
	g := f.playing(t)

	g.hooks.StageComplete(1)
	if f.host.Phase() != PhaseStageClear || !g.state.Paused {
		t.Fatalf("phase %s paused %v, expected STAGE_CLEAR and paused", f.host.Phase(), g.state.Paused)
	}

	// Repeated reports are ignored.
	g.hooks.StageComplete(1)
	if f.host.Phase() != PhaseStageClear {
		t.Fatal("duplicate stage completion changed phase")
	}

	if err := f.host.NextStage(); err != nil {
		t.Fatalf("NextStage failed: %v", err)
	}
	if f.host.Phase() != PhasePlaying || g.state.Paused || g.state.Stage != 2 {
		t.Errorf("after NextStage: phase %s paused %v stage %d", f.host.Phase(), g.state.Paused, g.state.Stage)
	}
	if v, _ := f.value(StageKey("fake")); v != "2" {
		t.Errorf("saved stage = %q, expected 2", v)
	}
}

func TestFinalStageIsVictory(t *testing.T) {
	f := newFixture(t)
	f.store.Set(StageKey("fake"), "5")
	g := f.playing(t)
	g.state.Score = 900

	g.hooks.StageComplete(5)

	st := f.host.Status()
	if st.Phase != PhaseGameOver || !st.Won || st.LastScore != 900 {
		t.Fatalf("status = %+v, expected won GAMEOVER with 900", st)
	}
	if _, ok := f.value(StageKey("fake")); ok {
		t.Error("progress should be cleared after the final stage")
	}
	sessions, _ := f.store.RecentSessions("fake", 5)
	if len(sessions) != 1 || !sessions[0].Won || sessions[0].Stage != 5 {
		t.Errorf("sessions = %+v, expected one won session at stage 5", sessions)
	}
}

func TestGameOverPersistence(t *testing.T) {
	f := newFixture(t)
	f.store.Set(HighScoreKey("fake"), "500")
	f.store.Set(StageKey("fake"), "2")
	g := f.playing(t)

	g.hooks.GameOver(300)
	if v, _ := f.value(HighScoreKey("fake")); v != "500" {
		t.Errorf("high score = %q, expected unchanged 500", v)
	}
	if _, ok := f.value(StageKey("fake")); ok {
		t.Error("progress should be cleared on game over")
	}
	st := f.host.Status()
	if st.Phase != PhaseGameOver || st.LastScore != 300 || st.Won {
		t.Fatalf("status = %+v", st)
	}

	// Reported twice: ignored.
	g.hooks.GameOver(999)
	if f.host.Status().LastScore != 300 {
		t.Error("second game over should be ignored")
	}

	if err := f.host.Reboot(); err != nil {
		t.Fatalf("Reboot failed: %v", err)
	}
	g.hooks.GameOver(800)
	if v, _ := f.value(HighScoreKey("fake")); v != "800" {
		t.Errorf("high score = %q, expected 800", v)
	}
	if f.host.Status().HighScore != 800 {
		t.Errorf("status high score = %d, expected 800", f.host.Status().HighScore)
	}

	top, _ := f.store.TopScores("fake", 10)
	if len(top) != 2 || top[0].Score != 800 {
		t.Errorf("score history = %v, expected [800 300]", top)
	}
	sessions, _ := f.store.RecentSessions("fake", 10)
	if len(sessions) != 2 || sessions[0].ID == sessions[1].ID {
		t.Errorf("expected two distinct sessions, got %+v", sessions)
	}
}

func TestSharedStoreKeepsBestScore(t *testing.T) {
	store := storage.NewMemory()
	a, b := newFixtureOn(t, store), newFixtureOn(t, store)
	ga, gb := a.playing(t), b.playing(t)

	ga.hooks.GameOver(500)
	gb.hooks.GameOver(300)

	if v, _ := a.value(HighScoreKey("fake")); v != "500" {
		t.Errorf("high score = %q, expected 500 to survive a lower session", v)
	}
	if got := b.host.Status().HighScore; got != 500 {
		t.Errorf("second host high score = %d, expected the shared 500", got)
	}
	if got := a.host.Status().HighScore; got != 500 {
		t.Errorf("first host high score = %d, expected 500", got)
	}
}

func TestRebootStartsAtStageOne(t *testing.T) {
	f := newFixture(t)
	f.store.Set(StageKey("fake"), "3")
	g := f.playing(t)
	first := f.host.Status().SessionID

	g.hooks.GameOver(10)
	f.host.Reboot()

	if f.host.Phase() != PhasePlaying || f.host.Status().Stage != 1 {
		t.Errorf("after reboot: phase %s stage %d", f.host.Phase(), f.host.Status().Stage)
	}
	if g.resets != 2 || g.state.Stage != 1 {
		t.Errorf("resets %d stage %d, expected 2 and 1", g.resets, g.state.Stage)
	}
	if f.host.Status().SessionID == first {
		t.Error("reboot should open a new session")
	}
}

func TestBackTearsDown(t *testing.T) {
	f := newFixture(t)
	g := f.playing(t)

	f.host.Tick(core.NewInputFrame(), time.Millisecond)
	if g.steps != 1 {
		t.Fatalf("steps = %d, expected 1", g.steps)
	}

	if err := f.host.Back(); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if f.host.Phase() != PhaseSelect || f.host.Game() != nil {
		t.Fatal("Back should return to SELECT without a game")
	}

	f.host.Tick(core.NewInputFrame(), time.Millisecond)
	if g.steps != 1 {
		t.Error("dropped game must not be stepped")
	}

	// Late callbacks of the dropped game are ignored.
	g.hooks.GameOver(1000)
	g.hooks.Display(core.Display{Score: 1000})
	if f.host.Phase() != PhaseSelect || f.host.Status().Display.Score != 0 {
		t.Error("callbacks from a torn down game must be ignored")
	}
	if _, ok := f.value(HighScoreKey("fake")); ok {
		t.Error("torn down game must not write a high score")
	}
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	f := newFixture(t)
	f.host.Tick(core.NewInputFrame(), time.Millisecond)

	f.host.Select("fake")
	g := f.game()
	f.host.Tick(core.NewInputFrame(), time.Millisecond)
	if g.steps != 0 {
		t.Error("game stepped before Start")
	}

	f.host.Start()
	f.host.TogglePause()
	f.host.Tick(core.NewInputFrame(), time.Millisecond)
	if g.steps != 1 {
		t.Error("paused game should still receive steps")
	}

	g.hooks.StageComplete(1)
	f.host.Tick(core.NewInputFrame(), time.Millisecond)
	if g.steps != 1 {
		t.Error("game stepped during STAGE_CLEAR")
	}
}

func TestDisplayMirrored(t *testing.T) {
	f := newFixture(t)
	g := f.playing(t)
	g.hooks.Display(core.Display{Score: 40, Lives: 2})

	if d := f.host.Status().Display; d.Score != 40 || d.Lives != 2 {
		t.Errorf("display = %+v", d)
	}
}

func TestHandleRoutesActions(t *testing.T) {
	f := newFixture(t)
	if f.host.Handle(core.ActionConfirm) {
		t.Error("SELECT should leave actions to the caller")
	}

	f.host.Select("fake")
	g := f.game()
	steps := []struct {
		action core.Action
		want   Phase
	}{
		{core.ActionConfirm, PhasePlaying},
		{core.ActionPause, PhasePlaying},
	}
	for _, s := range steps {
		if !f.host.Handle(s.action) {
			t.Fatalf("action %v not consumed", s.action)
		}
		if f.host.Phase() != s.want {
			t.Fatalf("after %v phase = %s, expected %s", s.action, f.host.Phase(), s.want)
		}
	}
	if !g.state.Paused {
		t.Error("Pause should pause the game")
	}
	f.host.Handle(core.ActionPause)

	g.hooks.StageComplete(1)
	f.host.Handle(core.ActionConfirm)
	if f.host.Phase() != PhasePlaying || g.state.Stage != 2 {
		t.Errorf("Confirm in STAGE_CLEAR: phase %s stage %d", f.host.Phase(), g.state.Stage)
	}

	g.hooks.GameOver(5)
	f.host.Handle(core.ActionRestart)
	if f.host.Phase() != PhasePlaying || f.host.Status().Stage != 1 {
		t.Errorf("Restart in GAMEOVER: phase %s", f.host.Phase())
	}

	if f.host.Handle(core.ActionRestart) {
		t.Error("Restart while playing should not be consumed")
	}
	f.host.Handle(core.ActionBack)
	if f.host.Phase() != PhaseSelect {
		t.Errorf("Back: phase %s, expected SELECT", f.host.Phase())
	}
}

func TestResizeForwarded(t *testing.T) {
	f := newFixture(t)
	f.host.Resize(100, 30) // no game mounted
	g := f.playing(t)

	f.host.Resize(120, 40)
	if g.resized.ScreenW != 120 || g.resized.ScreenH != 40 {
		t.Errorf("resize forwarded %+v", g.resized)
	}
}

func TestTimeSeedWhenUnset(t *testing.T) {
	store := storage.NewMemory()
	g := &fakeGame{id: "fake", maxStage: 5}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := New(Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
		Store:   store,
		NewGame: func(string) (registry.Game, error) { return g, nil },
		Now:     func() time.Time { return now },
	})
	h.Select("fake")
	h.Start()

	if g.seeds[0] != now.UnixNano() {
		t.Errorf("seed = %d, expected time-based %d", g.seeds[0], now.UnixNano())
	}
}
