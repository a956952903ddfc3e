package voidrunner

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// update advances the simulation by k frames (k <= 1).
func (g *Game) update(in core.InputFrame, k float64) {
	g.movePlayer(in, k)

	g.speed = g.wallSpeed()
	window := float64(g.cfg.Gameplay.StageSeconds*engine.FrameRate) * float64(g.stage)
	g.intensity = math.Min(1, math.Mod(g.frame, window)/window)
	g.gridRotation += 0.001 * (1 + float64(g.stage)*0.2) * k

	g.maybeSpawn()
	g.updateWalls(k)
	if g.gameOver {
		return
	}

	g.frame += k
	g.pushDisplay(false)

	if g.Survival() >= g.cfg.Gameplay.StageSeconds*g.stage && g.active {
		g.active = false
		g.hooks.StageComplete(g.stage)
	}
}

// movePlayer applies held directions, pointer seek and friction, then clamps
// the avatar to the arena.
func (g *Game) movePlayer(in core.InputFrame, k float64) {
	pc := g.cfg.Player
	p := &g.player

	accel := core.Vec{}
	if in.IsHeld(core.ActionUp) {
		accel.Y--
	}
	if in.IsHeld(core.ActionDown) {
		accel.Y++
	}
	if in.IsHeld(core.ActionLeft) {
		accel.X--
	}
	if in.IsHeld(core.ActionRight) {
		accel.X++
	}
	p.Vel = p.Vel.Add(accel.Scale(pc.Accel * k))

	if in.Pointer.Known && in.Pointer.Down {
		to := in.Pointer.Pos().Sub(p.Pos)
		if to.Len() > pc.SeekDeadzone {
			p.Vel = p.Vel.Add(to.Normalize().Scale(pc.Accel * k))
		}
	}

	p.Vel = p.Vel.Scale(engine.Decay(pc.Friction, k))
	p.Pos = p.Pos.Add(p.Vel.Scale(k))
	if !p.Pos.IsFinite() {
		p.Pos, p.Vel = g.surface.Center(), core.Vec{}
	}
	p.Pos.X = core.Clamp(p.Pos.X, 0, g.surface.W)
	p.Pos.Y = core.Clamp(p.Pos.Y, 0, g.surface.H)
}

// updateWalls morphs and moves the walls, tests them against the player and
// culls the ones that drifted far outside the arena.
func (g *Game) updateWalls(k float64) {
	center := g.surface.Center()
	pad := g.cfg.Player.Size / 4
	margin := g.cfg.Walls.CullMargin

	kept := g.walls[:0]
	for _, w := range g.walls {
		w.animate(k / engine.FrameRate)
		w.Pos = w.Pos.Add(core.Polar(w.Pos.AngleTo(center), g.speed*w.SpeedMult*k))
		if !w.Pos.IsFinite() {
			continue
		}

		if !g.gameOver && w.Hits(g.player.Pos, pad) {
			g.gameOver = true
			g.active = false
			g.hooks.GameOver(g.Score())
		}

		if g.surface.Within(w.Pos, margin) {
			kept = append(kept, w)
		}
	}
	clear(g.walls[len(kept):])
	g.walls = kept
}
