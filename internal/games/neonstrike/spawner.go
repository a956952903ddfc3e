package neonstrike

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// spawnInterval returns the current delay between enemy spawns in ms.
func (g *Game) spawnInterval() float64 {
	sp := g.cfg.Spawn
	raw := (sp.BaseIntervalMs - float64(g.score)/sp.ScoreDivisor) / (1 + float64(g.stage-1)*sp.StageFactor)
	return math.Max(sp.MinIntervalMs, g.cfg.Difficulty.Interval(raw))
}

// maybeSpawn adds an enemy once the spawn interval has elapsed.
func (g *Game) maybeSpawn() {
	now := g.clock.Millis()
	if now-g.lastSpawn <= g.spawnInterval() {
		return
	}
	g.lastSpawn = now
	if len(g.enemies) >= g.cfg.Enemies.Limit {
		return
	}
	g.enemies = append(g.enemies, g.newEnemy(g.edgePoint()))
}

// edgePoint picks a uniformly random point on one of the four edges, pushed
// out past the canvas by the spawn margin.
func (g *Game) edgePoint() core.Vec {
	m := g.cfg.Spawn.Margin
	w, h := g.surface.W, g.surface.H
	switch g.rng.Intn(4) {
	case 0:
		return core.V(g.rng.Float64()*w, -m)
	case 1:
		return core.V(w+m, g.rng.Float64()*h)
	case 2:
		return core.V(g.rng.Float64()*w, h+m)
	default:
		return core.V(-m, g.rng.Float64()*h)
	}
}

// bossEligible reports whether the next spawn must be a boss. The check runs
// before the type roll.
func (g *Game) bossEligible() bool {
	if g.score <= 0 || g.score%g.cfg.Enemies.BossEvery != 0 {
		return false
	}
	return !g.bossAlive()
}

func (g *Game) bossAlive() bool {
	for _, e := range g.enemies {
		if e.Kind == EnemyBoss {
			return true
		}
	}
	return false
}

// newEnemy builds an enemy at pos with stage-scaled attributes.
func (g *Game) newEnemy(pos core.Vec) *Enemy {
	ec := g.cfg.Enemies
	boss := g.bossEligible()

	kind := EnemyBoss
	if !boss {
		kind = EnemyReaper
		if g.rng.Float64() < ec.PhantomRatio {
			kind = EnemyPhantom
		}
	}

	stageSpeed := 1 + float64(g.stage-1)*ec.StageSpeedFactor
	speed := ec.BaseSpeed + float64(g.score)/ec.ScoreSpeedDivisor
	radius := ec.MinRadius + g.rng.Float64()*(ec.MaxRadius-ec.MinRadius)
	health := ec.Health
	if boss {
		speed = ec.BossSpeed
		radius = ec.BossRadius
		health = ec.BossHealth
	}
	health = stageHealth(health, g.stage, ec.HealthStageStep)

	g.nextID++
	return &Enemy{
		ID:        g.nextID,
		Pos:       pos,
		Kind:      kind,
		Speed:     g.cfg.Difficulty.Speed(speed * stageSpeed),
		Radius:    radius,
		Health:    health,
		MaxHealth: health,
	}
}

// stageHealth scales a base health: base * (1 + floor(stage/step)).
func stageHealth(base, stage, step int) int {
	return base * (1 + stage/step)
}
