package config

import (
	"math"
	"testing"
	"time"
)

func TestDifficultyLevelBoundaries(t *testing.T) {
	curve := NewDifficultyCurve(Default()) // level_seconds = 10

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{"run start", 0, 0},
		{"just before first level", 9999 * time.Millisecond, 0},
		{"exactly one level", 10 * time.Second, 1},
		{"mid second level", 25 * time.Second, 2},
		{"negative elapsed clamps", -5 * time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := curve.Level(tc.elapsed); got != tc.expected {
				t.Errorf("Level(%v) = %d, expected %d", tc.elapsed, got, tc.expected)
			}
		})
	}
}

func TestDifficultySpeedRamp(t *testing.T) {
	cfg := Default()
	cfg.Difficulty.BaseSpeed = 6.0
	cfg.Difficulty.SpeedIncrement = 0.7
	curve := NewDifficultyCurve(cfg)

	if got := curve.Speed(0); got != 6.0 {
		t.Errorf("Speed(0) = %v, expected 6.0", got)
	}
	if got := curve.Speed(3); math.Abs(got-8.1) > 1e-9 {
		t.Errorf("Speed(3) = %v, expected 8.1", got)
	}
	if got := curve.Speed(-1); got != 6.0 {
		t.Errorf("Speed(-1) should clamp to base, got %v", got)
	}
}

func TestSpawnIntervalShrinksToFloor(t *testing.T) {
	cfg := Default()
	cfg.Obstacles.BaseIntervalMs = 1500
	cfg.Obstacles.IntervalStepMs = 100
	cfg.Obstacles.MinIntervalMs = 600
	curve := NewDifficultyCurve(cfg)

	if got := curve.SpawnIntervalMs(0); got != 1500 {
		t.Errorf("SpawnIntervalMs(0) = %v, expected 1500", got)
	}
	if got := curve.SpawnIntervalMs(5); got != 1000 {
		t.Errorf("SpawnIntervalMs(5) = %v, expected 1000", got)
	}
	if got := curve.SpawnIntervalMs(9); got != 600 {
		t.Errorf("SpawnIntervalMs(9) = %v, expected 600", got)
	}

	// Far past the floor the interval must never shrink further
	if got := curve.SpawnIntervalMs(50); got != 600 {
		t.Errorf("SpawnIntervalMs(50) = %v, expected floor 600", got)
	}
}

// The speed increment is tunable; older builds shipped 0.5 instead of 0.7.
func TestSpeedIncrementIsTunable(t *testing.T) {
	cfg := Default()
	cfg.Difficulty.SpeedIncrement = 0.5
	curve := NewDifficultyCurve(cfg)

	if got := curve.Speed(2); math.Abs(got-7.0) > 1e-9 {
		t.Errorf("Speed(2) with 0.5 increment = %v, expected 7.0", got)
	}
}
