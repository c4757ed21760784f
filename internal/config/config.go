// Package config provides YAML-based tuning configuration and the
// difficulty curve for the runner.
package config

// RunnerConfig contains all tuning parameters for the runner simulation.
// Distances are logical playfield units, not screen cells; the renderer
// scales the field to whatever cell grid the terminal provides.
type RunnerConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	PowerUps   PowerUpsConfig   `yaml:"powerups"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// FieldConfig defines the logical playfield and the player box.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	PlayerX      float64 `yaml:"player_x"`
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
}

// PhysicsConfig defines the vertical kinematics parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // velocity decrement per tick
	JumpImpulse   float64 `yaml:"jump_impulse"`    // upward velocity on a ground jump
	AirJumpFactor float64 `yaml:"air_jump_factor"` // impulse fraction for the mid-air jump
}

// ObstaclesConfig defines the spawn cadence parameters.
// Intervals are in milliseconds at the design cadence of ~16 ms per frame.
type ObstaclesConfig struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	MinIntervalMs  float64 `yaml:"min_interval_ms"`
	IntervalStepMs float64 `yaml:"interval_step_ms"` // reduction per speed level
	SpawnMargin    float64 `yaml:"spawn_margin"`     // distance past the right field edge
}

// PowerUpsConfig defines double-jump power-up spawning and pickup.
type PowerUpsConfig struct {
	CooldownFrames int     `yaml:"cooldown_frames"` // minimum frames between spawns
	Chance         float64 `yaml:"chance"`          // per-frame roll once the cooldown passed
	Size           float64 `yaml:"size"`            // pickup radius
	FloatHeight    float64 `yaml:"float_height"`    // center height above the baseline
	Reach          float64 `yaml:"reach"`           // pickup slack added to the radius
}

// ParticlesConfig defines particle lifecycle and burst sizes.
type ParticlesConfig struct {
	DecayStep    float64 `yaml:"decay_step"` // life lost per tick
	Gravity      float64 `yaml:"gravity"`    // downward pull on particles per tick
	JumpCount    int     `yaml:"jump_count"`
	AirJumpCount int     `yaml:"air_jump_count"`
	DeathCount   int     `yaml:"death_count"`
	SparkleCount int     `yaml:"sparkle_count"`
}

// DifficultyConfig defines the stepwise speed ramp.
// The speed increment is the knob older builds hardcoded at 0.5 or 0.7.
type DifficultyConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // units per tick at level 0
	SpeedIncrement float64 `yaml:"speed_increment"` // added per speed level
	LevelSeconds   float64 `yaml:"level_seconds"`   // survival seconds per level
}

// ScoringConfig defines time-derived scoring.
type ScoringConfig struct {
	PointsPerSecond float64 `yaml:"points_per_second"`
	MilestoneStep   int     `yaml:"milestone_step"` // points between milestone cues
}

// normalize guards against zero or nonsensical values from user configs.
func (c *RunnerConfig) normalize() {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		c.Field = Default().Field
	}
	if c.Physics.AirJumpFactor <= 0 || c.Physics.AirJumpFactor > 1 {
		c.Physics.AirJumpFactor = Default().Physics.AirJumpFactor
	}
	if c.Difficulty.LevelSeconds <= 0 {
		c.Difficulty.LevelSeconds = Default().Difficulty.LevelSeconds
	}
	if c.Scoring.PointsPerSecond <= 0 {
		c.Scoring.PointsPerSecond = Default().Scoring.PointsPerSecond
	}
	if c.Scoring.MilestoneStep <= 0 {
		c.Scoring.MilestoneStep = Default().Scoring.MilestoneStep
	}
	if c.Obstacles.MinIntervalMs <= 0 {
		c.Obstacles.MinIntervalMs = Default().Obstacles.MinIntervalMs
	}
	if c.Particles.DecayStep <= 0 {
		c.Particles.DecayStep = Default().Particles.DecayStep
	}
}
