// Package runner implements the endless runner simulation: one screen, one
// input, obstacles scrolling in from the right at an ever-increasing pace.
// The package is pure and deterministic; it knows nothing about terminals,
// audio backends or storage.
package runner

import (
	"time"

	"github.com/askarat/runline/internal/config"
	"github.com/askarat/runline/internal/core"
)

// Archetype identifies one of the three fixed obstacle shapes.
type Archetype int

const (
	ArchetypeBlock Archetype = iota // squat ground block
	ArchetypeSlab                   // wide, low ground slab
	ArchetypeDrone                  // hovers above the baseline
)

const archetypeCount = 3

// archetypeDims holds the fixed box for each archetype in logical units.
// The drone's body starts above the baseline but still overlaps a grounded
// player, so it can only be cleared mid-jump.
var archetypeDims = [archetypeCount]struct{ W, H, Y float64 }{
	ArchetypeBlock: {W: 30, H: 45, Y: 0},
	ArchetypeSlab:  {W: 55, H: 30, Y: 0},
	ArchetypeDrone: {W: 40, H: 28, Y: 24},
}

// Obstacle is a lethal box scrolling leftward.
type Obstacle struct {
	ID   int
	Kind Archetype
	X    float64 // left edge
	Y    float64 // lower edge, height above the baseline
	W    float64
	H    float64
}

// newObstacle stamps an obstacle of the given archetype at x.
func newObstacle(id int, kind Archetype, x float64) Obstacle {
	d := archetypeDims[kind]
	return Obstacle{ID: id, Kind: kind, X: x, Y: d.Y, W: d.W, H: d.H}
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// PowerUp is a floating double-jump charge. X and Y are its center.
type PowerUp struct {
	ID   int
	X, Y float64
	Size float64 // radius
}

// Particle is a decorative spark with a decaying life.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Alpha returns the render opacity in [0, 1]. Rendered radius scales with
// it as well, so particles shrink and fade together.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// RunState is the complete state of one run. The step pipeline passes it by
// exclusive mutable reference through the phase functions in a fixed order;
// nothing else mutates it.
type RunState struct {
	Phase core.Phase

	// Player kinematics. PlayerY is the box's lower edge above the
	// baseline; velocity is positive upward.
	PlayerY   float64
	PlayerVel float64
	Airborne  bool

	// Double-jump charge. HasCharge arms on pickup; ChargeUsed marks the
	// mid-air jump spent for the current flight. The two are never both
	// true.
	HasCharge  bool
	ChargeUsed bool

	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle

	// Counters. FrameCount only advances while playing.
	FrameCount       int
	LastSpawnFrame   int
	LastPowerUpFrame int
	NextObstacleID   int
	NextPowerUpID    int

	// Difficulty values re-derived from the run clock each frame.
	// SpeedLevel is the highest level reached and guards the speed-up cue.
	SpeedLevel      int
	Speed           float64
	SpawnIntervalMs float64

	// Score is re-derived from RunStart every frame, never incremented.
	// LastMilestone is the highest milestone index fired and guards the cue.
	Score         int
	LastMilestone int

	RunStart time.Time
	LegFrame int // running animation cycle
}

// newRunState returns a fresh run state with all counters zeroed and the
// derived difficulty values at level 0.
func newRunState(cfg config.RunnerConfig) RunState {
	return RunState{
		Phase:           core.PhaseIdle,
		Speed:           cfg.Difficulty.BaseSpeed,
		SpawnIntervalMs: cfg.Obstacles.BaseIntervalMs,
		Obstacles:       make([]Obstacle, 0, 8),
		PowerUps:        make([]PowerUp, 0, 2),
		Particles:       make([]Particle, 0, 64),
	}
}
