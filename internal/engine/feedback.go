package engine

import "math"

// Per-frame decay of the feedback magnitudes.
const (
	ShakeDecay     = 0.9
	ChromaticDecay = 0.95
)

// Feedback holds the screen shake and chromatic aberration magnitudes, in pixels.
type Feedback struct {
	Shake     float64
	Chromatic float64
}

// Kick sets the shake magnitude.
func (f *Feedback) Kick(shake float64) {
	f.Shake = shake
}

// Hit sets both magnitudes.
func (f *Feedback) Hit(shake, chromatic float64) {
	f.Shake = shake
	f.Chromatic = chromatic
}

// Update decays both magnitudes over k frames.
func (f *Feedback) Update(k float64) {
	if f.Shake > 0 {
		f.Shake *= Decay(ShakeDecay, k)
	}
	if f.Chromatic > 0 {
		f.Chromatic *= Decay(ChromaticDecay, k)
	}
}

// Jitter returns a deterministic shake offset for the given frame. It spans
// [-Shake/2, Shake/2] on each axis and is zero once the shake is below a pixel.
func (f Feedback) Jitter(frame float64) (float64, float64) {
	if f.Shake <= 1 {
		return 0, 0
	}
	return (hash01(frame, 12.9898) - 0.5) * f.Shake, (hash01(frame, 78.233) - 0.5) * f.Shake
}

// hash01 maps x to a pseudo-random value in [0, 1).
func hash01(x, salt float64) float64 {
	v := math.Sin(math.Floor(x)*salt) * 43758.5453
	return v - math.Floor(v)
}
