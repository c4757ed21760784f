package runner

import (
	"testing"
	"time"

	"github.com/askarat/runline/internal/config"
	"github.com/askarat/runline/internal/core"
)

func TestObstacleSpawnCadence(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, func(cfg *config.RunnerConfig) {
		// 160ms at the 16ms cadence: one spawn every 11th frame
		cfg.Obstacles.BaseIntervalMs = 160
		cfg.Obstacles.MinIntervalMs = 100
		cfg.Obstacles.IntervalStepMs = 0
	})
	startRunning(g, c)

	stepFrames(g, c, 10)
	if len(g.state.Obstacles) != 0 {
		t.Fatalf("obstacles after 10 frames = %d, expected 0 (interval not yet exceeded)", len(g.state.Obstacles))
	}

	stepFrames(g, c, 1)
	if len(g.state.Obstacles) != 1 {
		t.Fatalf("obstacles after 11 frames = %d, expected 1", len(g.state.Obstacles))
	}

	first := g.state.Obstacles[0]
	if want := g.cfg.Field.Width + g.cfg.Obstacles.SpawnMargin; first.X != want {
		t.Errorf("spawn x = %v, expected %v (off-screen right)", first.X, want)
	}
	if first.ID != 0 {
		t.Errorf("first obstacle ID = %d, expected 0", first.ID)
	}

	stepFrames(g, c, 22)
	if len(g.state.Obstacles) != 3 {
		t.Errorf("obstacles after 33 frames = %d, expected 3", len(g.state.Obstacles))
	}
	if g.state.NextObstacleID != 3 {
		t.Errorf("NextObstacleID = %d, expected 3", g.state.NextObstacleID)
	}
}

func TestObstacleDimsFollowArchetype(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, func(cfg *config.RunnerConfig) {
		cfg.Obstacles.BaseIntervalMs = 160
		cfg.Obstacles.MinIntervalMs = 100
		cfg.Obstacles.IntervalStepMs = 0
	})
	startRunning(g, c)
	stepFrames(g, c, 120)

	if g.state.NextObstacleID < 5 {
		t.Fatalf("expected several spawns, got %d", g.state.NextObstacleID)
	}
	for _, o := range g.state.Obstacles {
		if o.Kind < 0 || int(o.Kind) >= archetypeCount {
			t.Fatalf("obstacle %d has invalid archetype %d", o.ID, o.Kind)
		}
		dims := archetypeDims[o.Kind]
		if o.W != dims.W || o.H != dims.H || o.Y != dims.Y {
			t.Errorf("obstacle %d (%v): dims %v/%v/%v, expected %v/%v/%v",
				o.ID, o.Kind, o.W, o.H, o.Y, dims.W, dims.H, dims.Y)
		}
	}
}

func TestWorldScrollsAtCurrentSpeed(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, noSpawns)
	startRunning(g, c)

	g.state.Obstacles = append(g.state.Obstacles, newObstacle(0, ArchetypeBlock, 500))
	g.state.PowerUps = append(g.state.PowerUps, PowerUp{ID: 0, X: 500, Y: 110, Size: 12})

	stepFrames(g, c, 4)

	want := 500 - 4*g.state.Speed
	if g.state.Obstacles[0].X != want {
		t.Errorf("obstacle x after 4 frames = %v, expected %v", g.state.Obstacles[0].X, want)
	}
	if g.state.PowerUps[0].X != want {
		t.Errorf("power-up x after 4 frames = %v, expected %v", g.state.PowerUps[0].X, want)
	}
}

func TestOffscreenEntitiesDespawn(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, noSpawns)
	startRunning(g, c)

	// One step from fully crossing the left boundary
	g.state.Obstacles = append(g.state.Obstacles, newObstacle(0, ArchetypeBlock, -25))
	g.state.PowerUps = append(g.state.PowerUps, PowerUp{ID: 0, X: -8, Y: 110, Size: 12})

	stepFrames(g, c, 1)

	if len(g.state.Obstacles) != 0 {
		t.Errorf("obstacle past the left edge should despawn, still have %d", len(g.state.Obstacles))
	}
	if len(g.state.PowerUps) != 0 {
		t.Errorf("power-up past the left edge should despawn, still have %d", len(g.state.PowerUps))
	}
}

func TestDifficultyShiftsSpeedAndInterval(t *testing.T) {
	g, c, rec := newTestGame(21)
	retune(g, noSpawns)
	startRunning(g, c)

	// Level 0 baseline
	stepFrames(g, c, 1)
	if g.state.Speed != g.cfg.Difficulty.BaseSpeed {
		t.Errorf("level 0 speed = %v, expected %v", g.state.Speed, g.cfg.Difficulty.BaseSpeed)
	}

	// One hop across two level boundaries raises the level once
	c.advance(20 * time.Second)
	g.Step(core.NewInputFrame())

	if g.state.SpeedLevel != 2 {
		t.Fatalf("level after 20s = %d, expected 2", g.state.SpeedLevel)
	}
	if want := g.cfg.Difficulty.BaseSpeed + 2*g.cfg.Difficulty.SpeedIncrement; g.state.Speed != want {
		t.Errorf("level 2 speed = %v, expected %v", g.state.Speed, want)
	}
	if rec.speedUps != 1 {
		t.Errorf("speed-up cues for one shift = %d, expected 1", rec.speedUps)
	}

	// Holding the level fires nothing further
	stepFrames(g, c, 30)
	if rec.speedUps != 1 {
		t.Errorf("speed-up cues while level holds = %d, expected 1", rec.speedUps)
	}

	// Next boundary fires again
	c.advance(10 * time.Second)
	g.Step(core.NewInputFrame())
	if rec.speedUps != 2 {
		t.Errorf("speed-up cues after next boundary = %d, expected 2", rec.speedUps)
	}
}

func TestSpawnIntervalClampsAtFloor(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, func(cfg *config.RunnerConfig) {
		cfg.Obstacles.IntervalStepMs = 700
	})
	startRunning(g, c)

	c.advance(20 * time.Second)
	g.Step(core.NewInputFrame())

	if g.state.SpawnIntervalMs != g.cfg.Obstacles.MinIntervalMs {
		t.Errorf("interval at level 2 = %v, expected floor %v", g.state.SpawnIntervalMs, g.cfg.Obstacles.MinIntervalMs)
	}
}

func TestPowerUpSpawnGating(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, func(cfg *config.RunnerConfig) {
		noSpawns(cfg)
		cfg.PowerUps.CooldownFrames = 5
		cfg.PowerUps.Chance = 1.0
	})
	startRunning(g, c)

	stepFrames(g, c, 5)
	if len(g.state.PowerUps) != 0 {
		t.Fatalf("power-ups inside cooldown = %d, expected 0", len(g.state.PowerUps))
	}

	stepFrames(g, c, 1)
	if len(g.state.PowerUps) != 1 {
		t.Fatalf("power-ups after cooldown with certain roll = %d, expected 1", len(g.state.PowerUps))
	}

	p := g.state.PowerUps[0]
	if p.Y != g.cfg.PowerUps.FloatHeight {
		t.Errorf("power-up float height = %v, expected %v", p.Y, g.cfg.PowerUps.FloatHeight)
	}
	if p.Size != g.cfg.PowerUps.Size {
		t.Errorf("power-up size = %v, expected %v", p.Size, g.cfg.PowerUps.Size)
	}

	// Cooldown restarts from the spawn frame
	stepFrames(g, c, 12)
	if len(g.state.PowerUps) != 3 {
		t.Errorf("power-ups after two more windows = %d, expected 3", len(g.state.PowerUps))
	}
}

func TestPowerUpZeroChanceNeverSpawns(t *testing.T) {
	g, c, _ := newTestGame(21)
	retune(g, func(cfg *config.RunnerConfig) {
		noSpawns(cfg)
		cfg.PowerUps.CooldownFrames = 1
		cfg.PowerUps.Chance = 0
	})
	startRunning(g, c)

	stepFrames(g, c, 200)
	if len(g.state.PowerUps) != 0 {
		t.Errorf("power-ups with zero chance = %d, expected 0", len(g.state.PowerUps))
	}
}
