package core

import "math"

// Canvas draws canvas-space (pixel) shapes onto a Screen. Offset translates
// everything drawn, which is how screen shake is applied.
type Canvas struct {
	dst    *Screen
	Offset Vec
}

// NewCanvas wraps dst.
func NewCanvas(dst *Screen) *Canvas {
	return &Canvas{dst: dst}
}

// Screen returns the underlying screen.
func (c *Canvas) Screen() *Screen {
	return c.dst
}

// Plot draws a rune at canvas point p. Non-finite points are skipped.
func (c *Canvas) Plot(p Vec, r rune, col Color) {
	if !p.IsFinite() {
		return
	}
	x, y := ToCell(p.Add(c.Offset))
	c.dst.SetCell(x, y, r, col)
}

// Line draws a straight line between two canvas points.
func (c *Canvas) Line(a, b Vec, r rune, col Color) {
	if !a.IsFinite() || !b.IsFinite() {
		return
	}
	x0, y0 := ToCell(a.Add(c.Offset))
	x1, y1 := ToCell(b.Add(c.Offset))

	dx := Abs(x1 - x0)
	dy := -Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for steps := 0; steps <= dx-dy; steps++ {
		c.dst.SetCell(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Poly draws a closed outline through the given points.
func (c *Canvas) Poly(points []Vec, r rune, col Color) {
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)], r, col)
	}
}

// Circle draws a circle outline of the given radius in pixels.
func (c *Canvas) Circle(center Vec, radius float64, r rune, col Color) {
	if radius <= 0 || !center.IsFinite() || math.IsNaN(radius) {
		return
	}
	// One sample per horizontal cell of circumference is enough to close the ring.
	steps := max(int(2*math.Pi*radius/CellPixelsX)*2, 8)
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		c.Plot(center.Add(Polar(a, radius)), r, col)
	}
}

// Disc fills a circle of the given radius in pixels.
func (c *Canvas) Disc(center Vec, radius float64, r rune, col Color) {
	if !center.IsFinite() || math.IsNaN(radius) {
		return
	}
	c.Plot(center, r, col)
	c.fill(center, radius, radius, func(p Vec) bool {
		return p.Dist(center) <= radius
	}, r, col)
}

// FillBox fills an oriented rectangle centered at center.
func (c *Canvas) FillBox(center Vec, width, height, rotation float64, r rune, col Color) {
	if !center.IsFinite() {
		return
	}
	reach := math.Hypot(width, height) / 2
	c.fill(center, reach, reach, func(p Vec) bool {
		return InOrientedBox(p, center, width, height, rotation, 0)
	}, r, col)
}

// fill paints every cell whose center satisfies inside, scanning the bounding
// box of half-extents rx, ry around center.
func (c *Canvas) fill(center Vec, rx, ry float64, inside func(Vec) bool, r rune, col Color) {
	x0, y0 := ToCell(center.Sub(Vec{rx, ry}))
	x1, y1 := ToCell(center.Add(Vec{rx, ry}))
	x0, y0 = max(x0, -1), max(y0, -1)
	x1, y1 = min(x1, c.dst.Width()+1), min(y1, c.dst.Height()+1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := FromCell(float64(x), float64(y))
			if inside(p) {
				c.Plot(p, r, col)
			}
		}
	}
}
