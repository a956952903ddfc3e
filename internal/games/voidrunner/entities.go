package voidrunner

import (
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// Player is the avatar steered through the arena.
type Player struct {
	Pos core.Vec
	Vel core.Vec
}

// Wall is a drifting obstacle whose extents and rotation morph continuously.
// Width, Height and Rotation always hold the current tweened values.
type Wall struct {
	ID        int
	Pos       core.Vec
	Width     float64
	Height    float64
	Rotation  float64
	Color     core.Color
	SpeedMult float64

	morph engine.Tween // Attributes: width, height, rotation
}

// newWall creates a wall that morphs from its spawn shape towards target over
// seconds, ping-ponging forever.
func newWall(id int, pos core.Vec, width, height, rotation float64, target [3]float64, seconds float64) *Wall {
	w := &Wall{
		ID:       id,
		Pos:      pos,
		Width:    width,
		Height:   height,
		Rotation: rotation,
	}
	w.morph = engine.NewTween([]float64{width, height, rotation}, target[:], seconds)
	return w
}

// animate advances the shape tween by seconds.
func (w *Wall) animate(seconds float64) {
	w.morph.Advance(seconds)
	w.Width = w.morph.Value(0)
	w.Height = w.morph.Value(1)
	w.Rotation = w.morph.Value(2)
}

// Hits reports whether point p lies within the wall grown by pad.
func (w *Wall) Hits(p core.Vec, pad float64) bool {
	return core.InOrientedBox(p, w.Pos, w.Width, w.Height, w.Rotation, pad)
}
