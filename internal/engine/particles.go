package engine

import (
	"math/rand"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// DefaultParticleLimit bounds a pool when no limit is given.
const DefaultParticleLimit = 600

// Particle tuning, in reference frames.
const (
	particleDecay  = 0.02
	particleSpread = 15.0
)

// ParticleKind selects how a particle is drawn.
type ParticleKind uint8

const (
	ParticleGlitch ParticleKind = iota
	ParticleSpark
)

// Particle is a short-lived decorative fragment.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64 // 1 at birth, removed at 0
	Color core.Color
	Size  float64
	Kind  ParticleKind
}

// Particles is a bounded particle pool. When full, the oldest particles are
// overwritten.
type Particles struct {
	limit  int
	items  []Particle
	ovrIdx int
}

// NewParticles creates a pool holding at most limit particles.
func NewParticles(limit int) *Particles {
	if limit <= 0 {
		limit = DefaultParticleLimit
	}
	return &Particles{
		limit: limit,
		items: make([]Particle, 0, min(limit, 128)),
	}
}

// Add inserts p, overwriting the oldest particle when the pool is full.
func (ps *Particles) Add(p Particle) {
	if len(ps.items) < ps.limit {
		ps.items = append(ps.items, p)
		return
	}
	if ps.ovrIdx >= ps.limit {
		ps.ovrIdx = 0
	}
	ps.items[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Burst spawns count particles at pos flying in random directions.
func (ps *Particles) Burst(pos core.Vec, c core.Color, count int, rng *rand.Rand) {
	if !pos.IsFinite() {
		return
	}
	for i := 0; i < count; i++ {
		kind := ParticleSpark
		vx := (rng.Float64() - 0.5) * particleSpread
		vy := (rng.Float64() - 0.5) * particleSpread
		size := rng.Float64()*4 + 1
		if rng.Float64() > 0.5 {
			kind = ParticleGlitch
		}
		ps.Add(Particle{
			Pos:   pos,
			Vel:   core.V(vx, vy),
			Life:  1,
			Color: c,
			Size:  size,
			Kind:  kind,
		})
	}
}

// Update advances every particle by k frames and drops dead or invalid ones.
func (ps *Particles) Update(k float64) {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.Pos = p.Pos.Add(p.Vel.Scale(k))
		p.Life -= particleDecay * k
		if p.Life <= 0 || !p.Pos.IsFinite() {
			continue
		}
		alive = append(alive, p)
	}
	clear(ps.items[len(alive):])
	ps.items = alive
	if ps.ovrIdx > len(ps.items) {
		ps.ovrIdx = 0
	}
}

// All returns the live particles. Callers must not modify the slice.
func (ps *Particles) All() []Particle {
	return ps.items
}

// Len returns the number of live particles.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes all particles.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
	ps.ovrIdx = 0
}
