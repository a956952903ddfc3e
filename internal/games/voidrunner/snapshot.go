package voidrunner

import "math"

// Snapshot contains the game state for determinism tests and debugging.
// Positions and extents are rounded to whole pixels.
type Snapshot struct {
	Frame    int
	Score    int
	Survival int
	Stage    int
	Active   bool
	GameOver bool
	PlayerX  int
	PlayerY  int

	// Each wall is 5 ints: ID, X, Y, Width, Height
	WallCount int
	WallData  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	wallData := make([]int, 0, len(g.walls)*5)
	for _, w := range g.walls {
		wallData = append(wallData, w.ID, px(w.Pos.X), px(w.Pos.Y), px(w.Width), px(w.Height))
	}

	return Snapshot{
		Frame:     int(g.frame),
		Score:     g.Score(),
		Survival:  g.Survival(),
		Stage:     g.stage,
		Active:    g.active,
		GameOver:  g.gameOver,
		PlayerX:   px(g.player.Pos.X),
		PlayerY:   px(g.player.Pos.Y),
		WallCount: len(g.walls),
		WallData:  wallData,
	}
}

func px(v float64) int {
	return int(math.Round(v))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Frame)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Survival)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.WallCount) //#nosec G115 -- hash computation
	if snap.Active {
		h = h*31 + 1
	}
	if snap.GameOver {
		h = h*31 + 2
	}
	for _, v := range snap.WallData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
