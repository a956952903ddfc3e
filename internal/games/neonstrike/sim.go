package neonstrike

import (
	"math"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Feedback magnitudes, in pixels.
const (
	shakeFire     = 4
	shakeHit      = 2
	shakeCoreHit  = 15
	chromaCoreHit = 20
)

// Explosion sizes.
const (
	burstKill    = 20
	burstPickup  = 30
	burstCoreHit = 40
	burstBoss    = 100
)

// Cosmetic spin and pulse rates, per frame.
const (
	enemySpin  = 0.02
	enemyPulse = 0.1
)

// handleInput applies aim and fire for this step.
func (g *Game) handleInput(in core.InputFrame, k float64) {
	if in.Pointer.Known {
		p := in.Pointer.Pos()
		if p != g.lastPointer {
			g.aimByPointer = true
			g.lastPointer = p
		}
	}

	turn := 0.0
	if in.IsHeld(core.ActionAimLeft) || in.IsHeld(core.ActionLeft) {
		turn--
	}
	if in.IsHeld(core.ActionAimRight) || in.IsHeld(core.ActionRight) {
		turn++
	}
	if turn != 0 {
		g.aimByPointer = false
		g.aim = math.Remainder(g.aim+turn*g.cfg.Weapons.AimSpeed*k, 2*math.Pi)
	}

	if g.aimByPointer {
		g.aim = g.surface.Center().AngleTo(g.lastPointer)
	}

	g.cooldown = math.Max(0, g.cooldown-k)
	held := in.IsHeld(core.ActionFire) || in.Pointer.Down
	switch {
	case in.Has(core.ActionFire):
		g.fire()
	case g.mode == FireRapid && held && g.cooldown == 0:
		g.fire()
	}
}

// fire launches the blaster pattern for the current mode and stage.
func (g *Game) fire() {
	w := g.cfg.Weapons
	switch {
	case g.mode == FireTriple || g.stage >= w.TripleFromStage:
		g.launch(g.aim)
		g.launch(g.aim - w.TripleSpread)
		g.launch(g.aim + w.TripleSpread)
	case g.stage >= w.DoubleFromStage:
		g.launch(g.aim - w.DoubleSpread)
		g.launch(g.aim + w.DoubleSpread)
	default:
		g.launch(g.aim)
	}
	g.cooldown = w.RapidCooldown
	g.fx.Kick(shakeFire)
}

func (g *Game) launch(angle float64) {
	if len(g.bullets) >= g.cfg.Weapons.Limit {
		return
	}
	kind := BulletNormal
	if g.mode != FireNormal {
		kind = BulletPower
	}
	center := g.surface.Center()
	g.bullets = append(g.bullets, Bullet{
		Pos:  center.Add(core.Polar(angle, g.cfg.Weapons.MuzzleOffset)),
		Vel:  core.Polar(angle, g.cfg.Weapons.BulletSpeed),
		Kind: kind,
	})
}

// update advances the simulation by k frames (k <= 1).
func (g *Game) update(k float64) {
	g.frame += k

	g.maybeSpawn()
	g.checkStage()
	if g.paused {
		return
	}
	g.updatePowerTimer(k)
	g.updatePowerUps(k)
	g.updateBullets(k)
	g.updateEnemies(k)
	g.particles.Update(k)
	g.fx.Update(k)
}

// checkStage reports each crossed threshold once.
func (g *Game) checkStage() {
	if g.score >= g.threshold && g.stage < g.cfg.Gameplay.MaxStage {
		g.hooks.StageComplete(g.stage)
		g.threshold += g.cfg.Gameplay.StageScore
	}
}

func (g *Game) updatePowerTimer(k float64) {
	if g.powerTimer <= 0 {
		return
	}
	g.powerTimer -= k
	if g.powerTimer <= 0 {
		g.powerTimer = 0
		g.mode = FireNormal
	}
}

func (g *Game) updatePowerUps(k float64) {
	center := g.surface.Center()
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Life -= g.cfg.PowerUps.Decay * k
		if !p.Pos.IsFinite() {
			continue
		}
		if p.Pos.Dist(center) < g.cfg.PowerUps.PickupRadius {
			g.collect(p)
			continue
		}
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	g.powerUps = kept
}

func (g *Game) collect(p PowerUp) {
	switch p.Kind {
	case PowerTriple:
		g.mode = FireTriple
		g.powerTimer = g.cfg.PowerUps.DurationFrames
	case PowerRapid:
		g.mode = FireRapid
		g.powerTimer = g.cfg.PowerUps.DurationFrames
	case PowerShield:
		g.lives = min(g.cfg.Gameplay.Lives, g.lives+1)
	}
	g.particles.Burst(p.Pos, core.ColorLime, burstPickup, g.rng)
}

func (g *Game) updateBullets(k float64) {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(k))
		if g.surface.Contains(b.Pos) {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// updateEnemies moves enemies in spawn order and resolves core and bullet
// collisions. A bullet is consumed by the first enemy it hits.
func (g *Game) updateEnemies(k float64) {
	center := g.surface.Center()
	kept := g.enemies[:0]
	for i, e := range g.enemies {
		if g.gameOver {
			kept = append(kept, g.enemies[i:]...)
			break
		}

		e.Pos = e.Pos.Add(core.Polar(e.Pos.AngleTo(center), e.Speed*k))
		e.Angle += enemySpin * k
		e.Pulse += enemyPulse * k
		if !e.Pos.IsFinite() {
			continue
		}

		if e.Pos.Dist(center) < g.cfg.Enemies.CoreRadius {
			g.coreHit()
			continue
		}

		if g.shoot(e) {
			continue
		}
		kept = append(kept, e)
	}
	clear(g.enemies[len(kept):])
	g.enemies = kept
}

// coreHit costs a life and ends the session on the last one.
func (g *Game) coreHit() {
	g.lives--
	g.fx.Hit(shakeCoreHit, chromaCoreHit)
	g.particles.Burst(g.surface.Center(), core.ColorHotPink, burstCoreHit, g.rng)

	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.finalScore = g.score
		g.overDelay = time.Duration(g.cfg.Gameplay.GameOverDelayMs) * time.Millisecond
	}
}

// shoot tests e against live bullets and reports whether it died.
func (g *Game) shoot(e *Enemy) bool {
	reach := e.Radius + g.cfg.Enemies.HitPadding
	for i := 0; i < len(g.bullets); {
		if g.bullets[i].Pos.Dist(e.Pos) >= reach {
			i++
			continue
		}

		g.bullets = append(g.bullets[:i], g.bullets[i+1:]...)
		e.Health--
		g.fx.Kick(shakeHit)
		if e.Health <= 0 {
			g.kill(e)
			return true
		}
	}
	return false
}

// kill awards score and maybe drops a power-up.
func (g *Game) kill(e *Enemy) {
	if e.Kind == EnemyBoss {
		g.particles.Burst(e.Pos, core.ColorHotPink, burstBoss, g.rng)
		g.score += g.cfg.Enemies.BossScore
	} else {
		g.particles.Burst(e.Pos, core.ColorLime, burstKill, g.rng)
		g.score += g.cfg.Enemies.KillScore
	}

	if g.rng.Float64() > 1-g.cfg.PowerUps.DropChance && len(g.powerUps) < g.cfg.PowerUps.Limit {
		g.powerUps = append(g.powerUps, PowerUp{
			Pos:  e.Pos,
			Kind: PowerKind(g.rng.Intn(3)),
			Life: 1,
		})
	}
}
