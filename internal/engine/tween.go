package engine

import "math"

// Tween interpolates a set of float attributes between a start and an end
// value, reversing at each end and repeating forever with a sine in/out ease.
type Tween struct {
	From     []float64
	To       []float64
	Duration float64 // seconds for one leg
	elapsed  float64
}

// NewTween creates a ping-pong tween over duration seconds.
func NewTween(from, to []float64, duration float64) Tween {
	return Tween{From: from, To: to, Duration: duration}
}

// Advance moves the tween forward by seconds.
func (t *Tween) Advance(seconds float64) {
	if seconds > 0 {
		t.elapsed += seconds
	}
}

// Progress returns the eased position in [0, 1] along the current leg,
// measured from From.
func (t Tween) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	cycle := math.Mod(t.elapsed, 2*t.Duration)
	p := cycle / t.Duration
	if p > 1 {
		p = 2 - p
	}
	return EaseSineInOut(p)
}

// Value returns attribute i at the current time.
func (t Tween) Value(i int) float64 {
	return t.From[i] + (t.To[i]-t.From[i])*t.Progress()
}

// EaseSineInOut eases p in [0, 1] with a sine curve.
func EaseSineInOut(p float64) float64 {
	return -(math.Cos(math.Pi*p) - 1) / 2
}
