package core

// Cell size in canvas pixels. Terminal cells are roughly twice as tall as they
// are wide, so circles stay round on screen.
const (
	CellPixelsX = 8.0
	CellPixelsY = 16.0
)

// Surface is the pixel canvas a game simulates on, derived from the terminal
// size in cells.
type Surface struct {
	W, H float64
}

// NewSurface returns the canvas covering cols x rows terminal cells.
func NewSurface(cols, rows int) Surface {
	return Surface{W: float64(cols) * CellPixelsX, H: float64(rows) * CellPixelsY}
}

// Center returns the center of the canvas.
func (s Surface) Center() Vec {
	return Vec{s.W / 2, s.H / 2}
}

// Contains reports whether p is strictly inside the canvas.
func (s Surface) Contains(p Vec) bool {
	return p.X > 0 && p.X < s.W && p.Y > 0 && p.Y < s.H
}

// Within reports whether p is inside the canvas grown by margin on every side.
func (s Surface) Within(p Vec, margin float64) bool {
	return p.X > -margin && p.X < s.W+margin && p.Y > -margin && p.Y < s.H+margin
}

// ToCell converts a canvas point to the terminal cell containing it.
func ToCell(p Vec) (int, int) {
	return floorInt(p.X / CellPixelsX), floorInt(p.Y / CellPixelsY)
}

// FromCell returns the canvas point at the center of a terminal cell.
func FromCell(x, y float64) Vec {
	return Vec{(x + 0.5) * CellPixelsX, (y + 0.5) * CellPixelsY}
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
