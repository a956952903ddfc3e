package neonstrike

import "math"

// Snapshot contains the game state for determinism tests and debugging.
// Uses primitive types only for stable serialization; positions are rounded
// to whole pixels.
type Snapshot struct {
	Frame      int
	Score      int
	Lives      int
	Stage      int
	Threshold  int
	Mode       int
	PowerTimer int
	GameOver   bool

	// Each enemy is 6 ints: ID, Kind, X, Y, Health, MaxHealth
	EnemyCount int
	EnemyData  []int

	// Each bullet is 2 ints: X, Y
	BulletCount int
	BulletData  []int

	// Each power-up is 3 ints: Kind, X, Y
	PowerUpCount int
	PowerUpData  []int

	ParticleCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(g.enemies)*6)
	for _, e := range g.enemies {
		enemyData = append(enemyData, e.ID, int(e.Kind), px(e.Pos.X), px(e.Pos.Y), e.Health, e.MaxHealth)
	}

	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, px(b.Pos.X), px(b.Pos.Y))
	}

	powerUpData := make([]int, 0, len(g.powerUps)*3)
	for _, p := range g.powerUps {
		powerUpData = append(powerUpData, int(p.Kind), px(p.Pos.X), px(p.Pos.Y))
	}

	return Snapshot{
		Frame:      int(g.frame),
		Score:      g.score,
		Lives:      g.lives,
		Stage:      g.stage,
		Threshold:  g.threshold,
		Mode:       int(g.mode),
		PowerTimer: int(g.powerTimer),
		GameOver:   g.gameOver,

		EnemyCount:    len(g.enemies),
		EnemyData:     enemyData,
		BulletCount:   len(g.bullets),
		BulletData:    bulletData,
		PowerUpCount:  len(g.powerUps),
		PowerUpData:   powerUpData,
		ParticleCount: g.particles.Len(),
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Threshold)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerTimer)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PowerUpCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
