package voidrunner

import (
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Edges, in the order nearest-edge ties are broken.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// spawnInterval returns the current delay between wall spawns in ms.
func (g *Game) spawnInterval() float64 {
	sp := g.cfg.Spawn
	raw := sp.BaseIntervalMs - float64(g.stage)*sp.StageStepMs - g.intensity*sp.IntensityMs
	return math.Max(sp.MinIntervalMs, g.cfg.Difficulty.Interval(raw))
}

// stageScale is the size and speed multiplier of walls spawned this stage.
func (g *Game) stageScale() float64 {
	return g.cfg.Walls.ScaleBase + float64(g.stage)*g.cfg.Walls.ScaleStage
}

// wallSpeed is the base wall speed for the stage, before per-wall multipliers.
func (g *Game) wallSpeed() float64 {
	return g.cfg.Difficulty.Speed(g.cfg.Walls.BaseSpeed + float64(g.stage)*g.cfg.Walls.StageSpeed)
}

func (g *Game) maybeSpawn() {
	now := g.clock.Millis()
	if now-g.lastSpawn <= g.spawnInterval() {
		return
	}
	g.lastSpawn = now
	if len(g.walls) >= g.cfg.Walls.Limit {
		return
	}
	g.walls = append(g.walls, g.spawnWall())
}

// pickEdge favours the edge nearest the player to flush them out.
func (g *Game) pickEdge() int {
	if g.rng.Float64() < g.cfg.Walls.EdgeBias {
		return nearestEdge(g.player.Pos, g.surface)
	}
	return g.rng.Intn(4)
}

// nearestEdge returns the edge closest to p. Ties go to the earlier edge.
func nearestEdge(p core.Vec, s core.Surface) int {
	dists := [4]float64{p.Y, s.W - p.X, s.H - p.Y, p.X}
	best := edgeTop
	for side, d := range dists {
		if d < dists[best] {
			best = side
		}
	}
	return best
}

// spawnWall creates a wall just outside the chosen edge, offset around the
// player's coordinate along that edge.
func (g *Game) spawnWall() *Wall {
	wc := g.cfg.Walls
	side := g.pickEdge()
	scale := g.stageScale()

	width := (wc.MinWidth + g.rng.Float64()*wc.WidthRange) * scale
	height := (wc.MinHeight + g.rng.Float64()*wc.HeightRange) * scale
	jitter := (g.rng.Float64() - 0.5) * 2 * wc.Jitter

	p := g.player.Pos
	var pos core.Vec
	switch side {
	case edgeTop:
		pos = core.V(p.X+jitter, -wc.SpawnOffset)
	case edgeRight:
		pos = core.V(g.surface.W+wc.SpawnOffset, p.Y+jitter)
	case edgeBottom:
		pos = core.V(p.X+jitter, g.surface.H+wc.SpawnOffset)
	default:
		pos = core.V(-wc.SpawnOffset, p.Y+jitter)
	}

	color := core.ColorNeonCyan
	if g.rng.Float64() > 0.5 {
		color = core.ColorLime
	}
	rotation := g.rng.Float64() * 2 * math.Pi

	seconds := wc.MorphMinSeconds + g.rng.Float64()*(wc.MorphMaxSeconds-wc.MorphMinSeconds)
	morphScale := func() float64 {
		return wc.MorphMinScale + g.rng.Float64()*(wc.MorphMaxScale-wc.MorphMinScale)
	}
	targetW := width * morphScale()
	targetH := height * morphScale()
	turn := -math.Pi
	if g.rng.Float64() > 0.5 {
		turn = math.Pi
	}

	g.nextID++
	w := newWall(g.nextID, pos, width, height, rotation, [3]float64{targetW, targetH, rotation + turn}, seconds)
	w.Color = color
	w.SpeedMult = scale
	return w
}
