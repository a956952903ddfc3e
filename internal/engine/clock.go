// Package engine holds the frame-rate independent pieces shared by the games:
// game time, particle pools, screen feedback and attribute tweening.
package engine

import (
	"math"
	"time"
)

// FrameRate is the reference refresh rate per-frame tuning constants assume.
const FrameRate = 60

// MaxStep caps a single step so a stalled host does not teleport entities.
const MaxStep = 100 * time.Millisecond

// Frame is the duration of one reference frame.
const Frame = time.Second / FrameRate

// Clock tracks game time that only advances while running.
type Clock struct {
	now    time.Duration
	paused bool
}

// Advance moves game time forward by dt and returns k, the number of
// reference frames dt is worth. A paused clock returns 0.
func (c *Clock) Advance(dt time.Duration) float64 {
	if c.paused || dt <= 0 {
		return 0
	}
	dt = min(dt, MaxStep)
	c.now += dt
	return Frames(dt)
}

// Millis returns elapsed game time in milliseconds.
func (c *Clock) Millis() float64 {
	return float64(c.now) / float64(time.Millisecond)
}

// Pause stops game time.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume continues game time.
func (c *Clock) Resume() {
	c.paused = false
}

// Frames converts a duration into reference frames.
func Frames(dt time.Duration) float64 {
	return dt.Seconds() * FrameRate
}

// Decay applies a per-frame multiplicative factor over k frames.
func Decay(factor, k float64) float64 {
	return math.Pow(factor, k)
}
