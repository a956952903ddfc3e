package neonstrike

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// Visual characters for rendering
const (
	GridVChar    = '┆'
	GridHChar    = '┄'
	GridCrossChr = '┼'
	BulletChar   = '•'
	PhantomChar  = '▵'
	EyeChar      = '●'
	ReaperChar   = '✕'
	BossChar     = '◯'
	SpikeChar    = '*'
	CoreChar     = '⬡'
	HullChar     = '#'
	ShieldChar   = '·'
	GhostChar    = '░'
)

const gridSize = 60

// arrows indexes eight compass glyphs by octant, starting east and turning
// clockwise (screen y grows downward).
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	c := core.NewCanvas(dst)

	if g.fx.Chromatic > 1 {
		c.Offset = core.V(g.fx.Chromatic, 0)
		g.drawEnemies(c, true)
	}

	jx, jy := g.fx.Jitter(g.frame)
	c.Offset = core.V(jx, jy)

	g.drawGrid(c)
	g.drawPowerUps(c)
	drawParticles(c, g.particles.All())
	for _, b := range g.bullets {
		c.Plot(b.Pos, BulletChar, core.ColorLime)
	}
	g.drawEnemies(c, false)
	g.drawCore(c)

	g.drawHUD(dst)
}

func (g *Game) drawGrid(c *core.Canvas) {
	color := core.ColorDarkGray
	if math.Sin(g.frame*0.05) > 0.5 {
		color = core.ColorGray
	}
	w, h := g.surface.W, g.surface.H
	for x := 0.0; x < w; x += gridSize {
		c.Line(core.V(x, 0), core.V(x, h-1), GridVChar, color)
	}
	for y := 0.0; y < h; y += gridSize {
		c.Line(core.V(0, y), core.V(w-1, y), GridHChar, color)
	}
	for x := 0.0; x < w; x += gridSize {
		for y := 0.0; y < h; y += gridSize {
			c.Plot(core.V(x, y), GridCrossChr, color)
		}
	}
}

func (g *Game) drawPowerUps(c *core.Canvas) {
	open, closed := '[', ']'
	if int(g.frame/15)%2 == 1 {
		open, closed = '<', '>'
	}
	for _, p := range g.powerUps {
		color := core.ColorLime
		if p.Life < 0.25 && int(g.frame/4)%2 == 0 {
			color = core.ColorDarkGray
		}
		letter := rune(p.Kind.String()[0])
		c.Plot(p.Pos.Sub(core.V(core.CellPixelsX, 0)), open, color)
		c.Plot(p.Pos, letter, color)
		c.Plot(p.Pos.Add(core.V(core.CellPixelsX, 0)), closed, color)
	}
}

func drawParticles(c *core.Canvas, ps []engine.Particle) {
	for _, p := range ps {
		r := '·'
		switch {
		case p.Kind == engine.ParticleGlitch && p.Size > 3:
			r = '▬'
		case p.Kind == engine.ParticleGlitch:
			r = '-'
		case p.Life > 0.5:
			r = '*'
		}
		color := p.Color
		if p.Life < 0.3 {
			color = core.ColorDarkGray
		}
		c.Plot(p.Pos, r, color)
	}
}

// drawEnemies draws every enemy, or only their red-shifted ghosts.
func (g *Game) drawEnemies(c *core.Canvas, ghost bool) {
	for _, e := range g.enemies {
		scale := 1 + math.Sin(e.Pulse)*0.1
		r := e.Radius * scale

		if ghost {
			c.Disc(e.Pos, r, GhostChar, core.ColorHotPink)
			continue
		}

		switch e.Kind {
		case EnemyPhantom:
			tri := []core.Vec{
				e.Pos.Add(core.V(0, -r).Rotate(e.Angle)),
				e.Pos.Add(core.V(r, r).Rotate(e.Angle)),
				e.Pos.Add(core.V(-r, r).Rotate(e.Angle)),
			}
			c.Poly(tri, PhantomChar, core.ColorWhite)
			c.Plot(e.Pos, EyeChar, core.ColorHotPink)
		case EnemyReaper:
			star := make([]core.Vec, 0, 8)
			for i := 0; i < 4; i++ {
				a := float64(i) / 4 * 2 * math.Pi
				star = append(star,
					e.Pos.Add(core.V(math.Cos(a)*r*1.5, math.Sin(a)*r*0.5).Rotate(e.Angle)),
					e.Pos.Add(core.V(math.Cos(a+0.2)*r*0.5, math.Sin(a+0.2)*r*1.5).Rotate(e.Angle)),
				)
			}
			c.Poly(star, ReaperChar, core.ColorHotPink)
		case EnemyBoss:
			c.Circle(e.Pos, r, BossChar, core.ColorHotPink)
			for i := 0; i < 12; i++ {
				a := float64(i)/12*2*math.Pi + g.frame*0.02
				c.Line(e.Pos.Add(core.Polar(a, r*0.8)), e.Pos.Add(core.Polar(a, r*1.2)), SpikeChar, core.ColorHotPink)
			}
			g.drawBossHealth(c, e, r)
		}
	}
}

func (g *Game) drawBossHealth(c *core.Canvas, e *Enemy, r float64) {
	left := e.Pos.Add(core.V(-r, -r-20))
	cells := max(int(2*r/core.CellPixelsX), 1)
	filled := int(math.Ceil(float64(cells) * float64(e.Health) / float64(e.MaxHealth)))
	for i := 0; i < cells; i++ {
		p := left.Add(core.V(float64(i)*core.CellPixelsX, 0))
		if i < filled {
			c.Plot(p, '█', core.ColorHotPink)
		} else {
			c.Plot(p, '░', core.ColorRed)
		}
	}
}

func (g *Game) drawCore(c *core.Canvas) {
	center := g.surface.Center()

	for i := 0; i < g.lives; i++ {
		color := core.ColorLime
		if i > 0 {
			color = core.ColorGreen
		}
		r := 45 + float64(i)*15 + math.Sin(g.frame*0.05)*5
		c.Circle(center, r, ShieldChar, color)
	}

	hex := make([]core.Vec, 6)
	for i := range hex {
		hex[i] = center.Add(core.Polar(float64(i)/6*2*math.Pi+g.aim, 30))
	}
	c.Poly(hex, HullChar, core.ColorLime)
	c.Plot(center, CoreChar, core.ColorLime)

	c.Line(center.Add(core.Polar(g.aim, 30)), center.Add(core.Polar(g.aim, 38)), '•', core.ColorLime)
	c.Plot(center.Add(core.Polar(g.aim, 45)), arrowFor(g.aim), core.ColorLime)
}

// arrowFor returns the compass glyph closest to angle.
func arrowFor(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColor(2, 1, fmt.Sprintf("STAGE %d // CORE INTEGRITY: %d%%", g.stage, g.lives*33), core.ColorLime)
	dst.DrawTextColor(2, 2, fmt.Sprintf("SCORE: %06d", g.score), core.ColorBrightWhite)
	if label := g.mode.Label(); label != "" {
		dst.DrawTextColor(2, 3, fmt.Sprintf(" %s ACTIVE %s", label, strings.Repeat("▮", int(math.Ceil(g.powerTimer/60)))), core.ColorLime)
	}

	bars := make([]string, g.cfg.Gameplay.Lives)
	for i := range bars {
		bars[i] = "▬▬▬"
	}
	tag := "DEFENSIVE PROTOCOL v2.0"
	w, h := dst.Width(), dst.Height()
	dst.DrawTextColor(w-len(tag)-2, h-3, tag, core.ColorGray)
	x := w - len([]rune(strings.Join(bars, " "))) - 2
	for i, b := range bars {
		color := core.ColorDarkGray
		if i < g.lives {
			color = core.ColorLime
		}
		dst.DrawTextColor(x, h-2, b, color)
		x += len([]rune(b)) + 1
	}
}
