package voidrunner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Visual characters for rendering
const (
	GridChar   = '·'
	WallChar   = '█'
	GhostChar  = '░'
	PlayerChar = '●'
	StreakChar = '∙'
)

const gridSize = 120

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	c := core.NewCanvas(dst)

	g.drawGrid(c)

	// Chromatic split on later stages: red and blue ghosts either side.
	if g.stage > 2 {
		shift := float64(g.stage) * 0.5 * core.CellPixelsX / 2
		c.Offset = core.V(shift, 0)
		g.drawWalls(c, GhostChar, core.ColorRed)
		c.Offset = core.V(-shift, 0)
		g.drawWalls(c, GhostChar, core.ColorBlue)
		c.Offset = core.Vec{}
	}

	g.drawWalls(c, WallChar, core.ColorDefault)
	g.drawPlayer(c)
	g.drawHUD(dst)
}

func (g *Game) drawGrid(c *core.Canvas) {
	color := core.ColorDarkGray
	if g.stage >= 4 {
		color = core.ColorBlue
	}
	center := g.surface.Center()
	extent := math.Ceil(math.Hypot(g.surface.W, g.surface.H)/2/gridSize) * gridSize
	for d := -extent; d <= extent; d += gridSize {
		a := core.V(d, -extent).Rotate(g.gridRotation)
		b := core.V(d, extent).Rotate(g.gridRotation)
		c.Line(center.Add(a), center.Add(b), GridChar, color)

		a = core.V(-extent, d).Rotate(g.gridRotation)
		b = core.V(extent, d).Rotate(g.gridRotation)
		c.Line(center.Add(a), center.Add(b), GridChar, color)
	}
}

// drawWalls fills every wall. ColorDefault draws each wall in its own color.
func (g *Game) drawWalls(c *core.Canvas, r rune, color core.Color) {
	for _, w := range g.walls {
		col := color
		if col == core.ColorDefault {
			col = w.Color
		}
		c.FillBox(w.Pos, w.Width, w.Height, w.Rotation, r, col)
		// Thin walls can fall between cell centers; always mark the middle.
		c.Plot(w.Pos, r, col)
	}
}

func (g *Game) drawPlayer(c *core.Canvas) {
	p := g.player
	c.Line(p.Pos.Sub(p.Vel.Scale(1.5)), p.Pos, StreakChar, core.ColorGreen)

	color := core.ColorLime
	if math.Sin(g.frame*0.15) > 0.6 {
		color = core.ColorBrightGreen
	}
	c.Disc(p.Pos, g.cfg.Player.Size/2, PlayerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	d := g.display
	dst.DrawTextColor(2, 1, "SCORE", core.ColorGray)
	dst.DrawTextColor(2, 2, fmt.Sprintf("%d", d.Score), core.ColorBrightWhite)
	dst.DrawTextColor(2, 4, "SURVIVAL", core.ColorGray)
	dst.DrawTextColor(2, 5, fmt.Sprintf("%ds", d.Survival), core.ColorBrightWhite)

	stability := fmt.Sprintf("STABILITY %d%%", g.stability())
	color := core.ColorLime
	if g.intensity > 0.7 {
		color = core.ColorHotPink
	}
	dst.DrawTextColor(dst.Width()-len(stability)-2, 1, stability, color)

	dst.DrawTextCentered(dst.Height()-1, "W A S D TO NAVIGATE  //  HOLD MOUSE TO SEEK", core.ColorDarkGray)
}
