package runner

import "github.com/askarat/runline/internal/core"

// Snapshot captures the run state for determinism testing and replay.
type Snapshot struct {
	Phase           core.Phase
	FrameCount      int
	Score           int
	PlayerY         float64
	PlayerVel       float64
	Airborne        bool
	HasCharge       bool
	ChargeUsed      bool
	ObstacleCount   int
	PowerUpCount    int
	ParticleCount   int
	NextObstacleID  int
	NextPowerUpID   int
	SpeedLevel      int
	Speed           float64
	SpawnIntervalMs float64
	LastMilestone   int
	FirstObstacleX  float64
	FirstObstacleID int
}

// Snapshot returns the current snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:           g.state.Phase,
		FrameCount:      g.state.FrameCount,
		Score:           g.state.Score,
		PlayerY:         g.state.PlayerY,
		PlayerVel:       g.state.PlayerVel,
		Airborne:        g.state.Airborne,
		HasCharge:       g.state.HasCharge,
		ChargeUsed:      g.state.ChargeUsed,
		ObstacleCount:   len(g.state.Obstacles),
		PowerUpCount:    len(g.state.PowerUps),
		ParticleCount:   len(g.state.Particles),
		NextObstacleID:  g.state.NextObstacleID,
		NextPowerUpID:   g.state.NextPowerUpID,
		SpeedLevel:      g.state.SpeedLevel,
		Speed:           g.state.Speed,
		SpawnIntervalMs: g.state.SpawnIntervalMs,
		LastMilestone:   g.state.LastMilestone,
	}

	if len(g.state.Obstacles) > 0 {
		snap.FirstObstacleX = g.state.Obstacles[0].X
		snap.FirstObstacleID = g.state.Obstacles[0].ID
	}

	return snap
}
