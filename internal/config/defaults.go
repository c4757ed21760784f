package config

import (
	_ "embed"
)

//go:embed defaults/runline.yaml
var defaultRunlineYAML []byte

// Default returns the built-in runner configuration. It mirrors the
// embedded defaults/runline.yaml and serves as the last-resort fallback
// if the embedded YAML ever fails to parse.
func Default() RunnerConfig {
	return RunnerConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       300,
			PlayerX:      80,
			PlayerWidth:  40,
			PlayerHeight: 50,
		},
		Physics: PhysicsConfig{
			Gravity:       0.7,
			JumpImpulse:   14.0,
			AirJumpFactor: 0.85,
		},
		Obstacles: ObstaclesConfig{
			BaseIntervalMs: 1500,
			MinIntervalMs:  600,
			IntervalStepMs: 100,
			SpawnMargin:    40,
		},
		PowerUps: PowerUpsConfig{
			CooldownFrames: 600,
			Chance:         0.008,
			Size:           12,
			FloatHeight:    110,
			Reach:          30,
		},
		Particles: ParticlesConfig{
			DecayStep:    0.025,
			Gravity:      0.12,
			JumpCount:    6,
			AirJumpCount: 4,
			DeathCount:   24,
			SparkleCount: 12,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:      6.0,
			SpeedIncrement: 0.7,
			LevelSeconds:   10,
		},
		Scoring: ScoringConfig{
			PointsPerSecond: 10,
			MilestoneStep:   100,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `runline config`.
func DefaultYAML() []byte {
	return defaultRunlineYAML
}
