package config

import (
	"math"
	"time"
)

// DifficultyCurve computes stepwise difficulty values from survival time.
// The level index increases once per LevelSeconds of elapsed run time;
// scroll speed grows linearly with the level and the obstacle spawn
// interval shrinks linearly down to a floor.
type DifficultyCurve struct {
	difficulty DifficultyConfig
	obstacles  ObstaclesConfig
}

// NewDifficultyCurve creates a curve from the tuning config.
func NewDifficultyCurve(cfg RunnerConfig) *DifficultyCurve {
	return &DifficultyCurve{
		difficulty: cfg.Difficulty,
		obstacles:  cfg.Obstacles,
	}
}

// Level returns the speed level index for the given elapsed run time.
// Negative elapsed times clamp to level 0.
func (d *DifficultyCurve) Level(elapsed time.Duration) int {
	if elapsed < 0 {
		return 0
	}
	secs := d.difficulty.LevelSeconds
	if secs <= 0 {
		secs = 1 // Prevent division by zero
	}
	return int(math.Floor(elapsed.Seconds() / secs))
}

// Speed returns the scroll speed in units per tick at the given level.
func (d *DifficultyCurve) Speed(level int) float64 {
	if level < 0 {
		level = 0
	}
	return d.difficulty.BaseSpeed + float64(level)*d.difficulty.SpeedIncrement
}

// SpawnIntervalMs returns the obstacle spawn interval at the given level,
// shrinking linearly from the base interval down to the floor.
func (d *DifficultyCurve) SpawnIntervalMs(level int) float64 {
	if level < 0 {
		level = 0
	}
	interval := d.obstacles.BaseIntervalMs - float64(level)*d.obstacles.IntervalStepMs
	if interval < d.obstacles.MinIntervalMs {
		interval = d.obstacles.MinIntervalMs
	}
	return interval
}
