package neonstrike

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     42,
}

type recorder struct {
	gameOver []int
	stages   []int
	displays []core.Display
}

func (r *recorder) hooks() core.Hooks {
	return core.Hooks{
		OnGameOver:      func(score int) { r.gameOver = append(r.gameOver, score) },
		OnStageComplete: func(stage int) { r.stages = append(r.stages, stage) },
		OnDisplay:       func(d core.Display) { r.displays = append(r.displays, d) },
	}
}

func newTestGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := NewWithConfig(config.DefaultNeonStrikeConfig())
	g.Reset(testRuntime, rec.hooks())
	return g, rec
}

func step(g *Game, n int) {
	in := core.NewInputFrame()
	for i := 0; i < n; i++ {
		g.Step(in, engine.Frame)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g, _ := newTestGame(t)
		for i := 0; i < 1200; i++ {
			in := core.NewInputFrame()
			in.Pointer = core.Pointer{Known: true, X: float64(i % 80), Y: float64((i / 7) % 24)}
			if i%10 == 0 {
				in.Set(core.ActionFire)
			}
			if g.Step(in, engine.Frame).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Frame == 0 {
		t.Error("simulation did not advance")
	}
}

func TestGameReset(t *testing.T) {
	g, rec := newTestGame(t)
	g.score = 500
	g.lives = 1
	g.SetStage(3)
	g.enemies = append(g.enemies, &Enemy{ID: 1, Pos: core.V(0, 0), Health: 1, MaxHealth: 1})

	g.Reset(testRuntime, rec.hooks())

	state := g.State()
	if state.Score != 0 || state.Stage != 1 || state.GameOver || state.Paused {
		t.Errorf("State after Reset = %+v", state)
	}
	if g.Lives() != 3 || len(g.enemies) != 0 || g.threshold != 1000 {
		t.Errorf("Reset left lives=%d enemies=%d threshold=%d", g.Lives(), len(g.enemies), g.threshold)
	}
}

func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		name  string
		score int
		stage int
		want  float64
	}{
		{"fresh", 0, 1, 2000},
		{"score shrinks interval", 1000, 1, 1800},
		{"stage shrinks interval", 0, 2, 2000 / 1.5},
		{"late stage", 0, 5, 2000 / 3.0},
		{"floor", 9000, 1, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.score = tt.score
			g.SetStage(tt.stage)
			if got := g.spawnInterval(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("spawnInterval() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSpawnPlacement(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 200; i++ {
		p := g.edgePoint()
		onEdge := p.X == -100 || p.X == g.surface.W+100 || p.Y == -100 || p.Y == g.surface.H+100
		if !onEdge {
			t.Fatalf("edgePoint() = %v is not 100px outside an edge", p)
		}
	}
}

func TestSpawnCadence(t *testing.T) {
	g, _ := newTestGame(t)

	// 2000ms interval at score 0: nothing before, one enemy right after.
	step(g, 119)
	if len(g.enemies) != 0 {
		t.Fatalf("spawned too early: %d enemies", len(g.enemies))
	}
	step(g, 3)
	if len(g.enemies) != 1 {
		t.Fatalf("expected one enemy after 2s, got %d", len(g.enemies))
	}
}

func TestStageHealthScaling(t *testing.T) {
	tests := []struct {
		base, stage, want int
	}{
		{1, 1, 1},
		{1, 3, 2},
		{1, 6, 3},
		{20, 1, 20},
		{20, 3, 40},
	}
	for _, tt := range tests {
		if got := stageHealth(tt.base, tt.stage, 3); got != tt.want {
			t.Errorf("stageHealth(%d, %d) = %d, expected %d", tt.base, tt.stage, got, tt.want)
		}
	}

	g, _ := newTestGame(t)
	g.SetStage(3)
	e := g.newEnemy(core.V(0, 0))
	if e.Kind == EnemyBoss {
		t.Fatal("score 0 must not spawn a boss")
	}
	if e.Health != 2 || e.MaxHealth != 2 {
		t.Errorf("stage 3 enemy health = %d/%d, expected 2/2", e.Health, e.MaxHealth)
	}
	if math.Abs(e.Speed-1.2*1.4) > 1e-9 {
		t.Errorf("stage 3 speed = %v, expected %v", e.Speed, 1.2*1.4)
	}
	if e.Radius < 15 || e.Radius > 25 {
		t.Errorf("radius = %v out of range", e.Radius)
	}
}

func TestBossEligibility(t *testing.T) {
	g, _ := newTestGame(t)

	for _, score := range []int{0, 990, 1010} {
		g.score = score
		if g.bossEligible() {
			t.Errorf("score %d should not spawn a boss", score)
		}
	}

	g.score = 2000
	boss := g.newEnemy(core.V(0, 0))
	if boss.Kind != EnemyBoss || boss.Radius != 60 || boss.MaxHealth != 20 || boss.Speed != 0.5 {
		t.Fatalf("expected boss, got %+v", boss)
	}
}

func TestSingleBossInvariant(t *testing.T) {
	g, _ := newTestGame(t)
	g.score = 1000

	for i := 0; i < 50; i++ {
		g.enemies = append(g.enemies, g.newEnemy(g.edgePoint()))
	}

	bosses := 0
	for _, e := range g.enemies {
		if e.Kind == EnemyBoss {
			bosses++
		}
	}
	if bosses != 1 {
		t.Errorf("bosses = %d, expected exactly 1", bosses)
	}
}

func TestBossKill(t *testing.T) {
	g, _ := newTestGame(t)
	g.score = 1000
	boss := g.newEnemy(core.V(100, 192))
	g.enemies = []*Enemy{boss}
	g.score = 0

	for hit := 1; hit <= 20; hit++ {
		if boss.Health > boss.MaxHealth {
			t.Fatalf("health %d exceeds max %d", boss.Health, boss.MaxHealth)
		}
		g.bullets = append(g.bullets, Bullet{Pos: boss.Pos})
		g.updateEnemies(1)

		if hit < 20 && len(g.enemies) != 1 {
			t.Fatalf("boss died after %d hits", hit)
		}
		if len(g.bullets) != 0 {
			t.Fatalf("bullet not consumed on hit %d", hit)
		}
	}

	if len(g.enemies) != 0 {
		t.Fatal("boss should be removed after 20 hits")
	}
	if g.score != 500 {
		t.Errorf("score = %d, expected 500", g.score)
	}
	if boss.MaxHealth != 20 {
		t.Errorf("MaxHealth changed to %d", boss.MaxHealth)
	}
}

func TestBulletConsumedByFirstEnemy(t *testing.T) {
	g, _ := newTestGame(t)
	pos := core.V(100, 100)
	a := &Enemy{ID: 1, Pos: pos, Radius: 20, Health: 2, MaxHealth: 2}
	b := &Enemy{ID: 2, Pos: pos, Radius: 20, Health: 2, MaxHealth: 2}
	g.enemies = []*Enemy{a, b}
	g.bullets = []Bullet{{Pos: pos}}

	g.updateEnemies(1)

	if a.Health != 1 || b.Health != 2 {
		t.Errorf("health = %d/%d, expected only the first enemy hit", a.Health, b.Health)
	}
}

func TestPowerUpDropRate(t *testing.T) {
	g, _ := newTestGame(t)
	g.rng = rand.New(rand.NewSource(7))

	drops := 0
	const kills = 4000
	for i := 0; i < kills; i++ {
		g.powerUps = g.powerUps[:0]
		g.kill(&Enemy{Pos: core.V(10, 10), Kind: EnemyPhantom})
		drops += len(g.powerUps)
	}

	rate := float64(drops) / kills
	if rate < 0.12 || rate > 0.18 {
		t.Errorf("drop rate = %.3f, expected about 0.15", rate)
	}
}

func TestLifeLossGameOver(t *testing.T) {
	g, rec := newTestGame(t)
	g.score = 120
	center := g.surface.Center()

	for loss := 1; loss <= 3; loss++ {
		g.enemies = append(g.enemies, &Enemy{ID: loss, Pos: center.Add(core.V(41, 0)), Speed: 5, Radius: 15, Health: 1, MaxHealth: 1})
		step(g, 1)
		if g.Lives() != 3-loss {
			t.Fatalf("lives = %d after loss %d", g.Lives(), loss)
		}
	}

	if !g.State().GameOver {
		t.Fatal("expected game over after the third loss")
	}
	if len(rec.gameOver) != 0 {
		t.Fatal("game over must be reported after the feedback delay")
	}

	// The delay runs even while paused.
	g.SetPaused(true)
	g.score = 999
	g.Step(core.NewInputFrame(), 600*time.Millisecond)
	g.Step(core.NewInputFrame(), 600*time.Millisecond)
	g.Step(core.NewInputFrame(), time.Second)

	if len(rec.gameOver) != 1 {
		t.Fatalf("OnGameOver calls = %d, expected exactly 1", len(rec.gameOver))
	}
	if rec.gameOver[0] != 120 {
		t.Errorf("final score = %d, expected 120", rec.gameOver[0])
	}
}

func TestStageClearHaltsLongStep(t *testing.T) {
	g, _ := newTestGame(t)
	g.score = 1000

	var clearedAt float64
	g.hooks.OnStageComplete = func(int) {
		clearedAt = g.frame
		g.SetPaused(true)
	}

	g.Step(core.NewInputFrame(), 100*time.Millisecond)

	if !g.paused {
		t.Fatal("game should be paused after stage clear")
	}
	if g.frame != clearedAt {
		t.Errorf("simulated past stage clear: frame %v, cleared at %v", g.frame, clearedAt)
	}

	before := g.Snapshot()
	g.Step(core.NewInputFrame(), 100*time.Millisecond)
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused step mutated the simulation")
	}
}

func TestStageThresholdIdempotent(t *testing.T) {
	g, rec := newTestGame(t)
	g.score = 1000

	step(g, 30)
	if len(rec.stages) != 1 || rec.stages[0] != 1 {
		t.Fatalf("stage completions = %v, expected [1]", rec.stages)
	}

	g.SetStage(2)
	step(g, 30)
	if len(rec.stages) != 1 {
		t.Fatalf("stage 2 threshold fired early: %v", rec.stages)
	}

	g.score = 2000
	step(g, 5)
	if len(rec.stages) != 2 || rec.stages[1] != 2 {
		t.Fatalf("stage completions = %v, expected [1 2]", rec.stages)
	}

	g.SetStage(5)
	g.score = 99000
	step(g, 5)
	if len(rec.stages) != 2 {
		t.Errorf("final stage must not complete: %v", rec.stages)
	}
}

func TestBulletsCulled(t *testing.T) {
	g, _ := newTestGame(t)
	g.bullets = []Bullet{
		{Pos: core.V(635, 100), Vel: core.V(12, 0)},
		{Pos: core.V(300, 5), Vel: core.V(0, -12)},
		{Pos: core.V(300, 100), Vel: core.V(12, 0)},
	}

	g.updateBullets(1)

	if len(g.bullets) != 1 || g.bullets[0].Pos != core.V(312, 100) {
		t.Errorf("bullets after cull = %+v", g.bullets)
	}
}

func TestFirePatterns(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		mode  FireMode
		want  int
	}{
		{"single", 1, FireNormal, 1},
		{"double from stage 2", 2, FireNormal, 2},
		{"double at stage 3", 3, FireNormal, 2},
		{"triple from stage 4", 4, FireNormal, 3},
		{"triple power-up", 1, FireTriple, 3},
		{"rapid keeps stage pattern", 2, FireRapid, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.SetStage(tt.stage)
			g.mode = tt.mode
			g.fire()

			if len(g.bullets) != tt.want {
				t.Fatalf("bullets = %d, expected %d", len(g.bullets), tt.want)
			}
			center := g.surface.Center()
			for _, b := range g.bullets {
				if d := b.Pos.Dist(center); math.Abs(d-45) > 1e-9 {
					t.Errorf("muzzle distance = %v, expected 45", d)
				}
				if s := b.Vel.Len(); math.Abs(s-12) > 1e-9 {
					t.Errorf("bullet speed = %v, expected 12", s)
				}
			}
			if g.fx.Shake != 4 {
				t.Errorf("shake = %v, expected 4", g.fx.Shake)
			}
		})
	}
}

func TestPointerAim(t *testing.T) {
	g, _ := newTestGame(t)
	in := core.NewInputFrame()
	// Cell (40, 0) sits straight above the center.
	in.Pointer = core.Pointer{Known: true, X: 39.5, Y: 0}
	in.Set(core.ActionFire)
	g.Step(in, engine.Frame)

	if math.Abs(g.aim+math.Pi/2) > 0.05 {
		t.Errorf("aim = %v, expected about -pi/2", g.aim)
	}
	if len(g.bullets) != 1 || g.bullets[0].Vel.Y >= 0 {
		t.Errorf("bullet should fly upward: %+v", g.bullets)
	}
}

func TestKeyboardAim(t *testing.T) {
	g, _ := newTestGame(t)
	in := core.NewInputFrame()
	in.Hold(core.ActionAimRight)
	g.Step(in, engine.Frame)

	if g.aim <= 0 {
		t.Errorf("aim = %v, expected clockwise turn", g.aim)
	}
}

func TestPowerUps(t *testing.T) {
	g, _ := newTestGame(t)
	center := g.surface.Center()

	g.powerUps = []PowerUp{{Pos: center, Kind: PowerTriple, Life: 1}}
	g.updatePowerUps(1)
	if g.mode != FireTriple || g.powerTimer != 600 || len(g.powerUps) != 0 {
		t.Fatalf("triple not applied: mode=%v timer=%v", g.mode, g.powerTimer)
	}
	if g.particles.Len() != 30 {
		t.Errorf("pickup burst = %d particles, expected 30", g.particles.Len())
	}

	g.powerTimer = 1
	g.updatePowerTimer(1)
	if g.mode != FireNormal {
		t.Error("power should expire back to normal")
	}

	g.lives = 2
	g.powerUps = []PowerUp{{Pos: center, Kind: PowerShield, Life: 1}}
	g.updatePowerUps(1)
	g.powerUps = []PowerUp{{Pos: center, Kind: PowerShield, Life: 1}}
	g.updatePowerUps(1)
	if g.lives != 3 {
		t.Errorf("lives = %d, expected shield capped at 3", g.lives)
	}

	// Uncollected pickups decay away.
	g.powerUps = []PowerUp{{Pos: core.V(10, 10), Kind: PowerRapid, Life: 0.004}}
	g.updatePowerUps(1)
	if len(g.powerUps) != 0 {
		t.Error("expired power-up should be removed")
	}
}

func TestRapidAutoFire(t *testing.T) {
	g, _ := newTestGame(t)
	g.mode = FireRapid
	g.powerTimer = 600

	in := core.NewInputFrame()
	in.Pointer = core.Pointer{Known: true, Down: true, X: 60, Y: 12}
	step := func() { g.Step(in, engine.Frame) }
	for i := 0; i < 13; i++ {
		step()
	}
	if len(g.bullets) < 2 {
		t.Errorf("bullets = %d, expected auto-fire while held", len(g.bullets))
	}
}

func TestInvalidEnemyRemoved(t *testing.T) {
	g, _ := newTestGame(t)
	g.enemies = []*Enemy{{ID: 1, Pos: core.V(math.NaN(), 10), Speed: 1, Radius: 10, Health: 1, MaxHealth: 1}}
	g.updateEnemies(1)
	if len(g.enemies) != 0 {
		t.Error("NaN enemy should be removed")
	}
}

func TestEnemyLimit(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 300; i++ {
		g.lastSpawn = -1e9
		g.maybeSpawn()
	}
	if len(g.enemies) != 128 {
		t.Errorf("enemies = %d, expected cap 128", len(g.enemies))
	}
}

func TestPausedStepIsInert(t *testing.T) {
	g, _ := newTestGame(t)
	step(g, 200)
	before := g.Snapshot()

	g.SetPaused(true)
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	for i := 0; i < 100; i++ {
		g.Step(in, engine.Frame)
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("paused steps must not mutate state")
	}
	if !g.State().Paused {
		t.Error("State should report paused")
	}
}

func TestDisplayThrottled(t *testing.T) {
	g, rec := newTestGame(t)
	n := len(rec.displays)
	step(g, 10)
	if len(rec.displays) != n {
		t.Errorf("display pushed %d times without changes", len(rec.displays)-n)
	}

	g.kill(&Enemy{Pos: core.V(10, 10), Kind: EnemyReaper})
	step(g, 1)
	last := rec.displays[len(rec.displays)-1]
	if last.Score != 10 || last.Lives != 3 {
		t.Errorf("last display = %+v", last)
	}
}

func TestRenderIsPure(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen) // Empty collections must render

	if !strings.Contains(screen.String(), "SCORE: 000000") {
		t.Error("HUD score missing")
	}

	step(g, 300)
	g.fx.Hit(15, 20)
	g.enemies = append(g.enemies, &Enemy{ID: 99, Pos: core.V(200, 100), Kind: EnemyBoss, Radius: 60, Health: 10, MaxHealth: 20})
	before := g.Snapshot()
	screen.Clear()
	g.Render(screen)
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Render must not mutate the simulation")
	}
}

func TestArrowFor(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{math.Pi, '←'},
		{-math.Pi / 2, '↑'},
		{-math.Pi / 4, '↗'},
	}
	for _, tt := range tests {
		if got := arrowFor(tt.angle); got != tt.want {
			t.Errorf("arrowFor(%v) = %q, expected %q", tt.angle, got, tt.want)
		}
	}
}
