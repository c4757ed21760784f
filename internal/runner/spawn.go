package runner

import "time"

// frameMs is the design cadence the spawn intervals are expressed against.
// Interval milliseconds divide by it to become frame counts.
const frameMs = 16.0

// updateDifficulty re-derives the speed level from the run clock and fires
// the speed-up cue once per new level. Speed and spawn interval follow the
// level; they never regress within a run.
func (g *Game) updateDifficulty(s *RunState, elapsed time.Duration) {
	level := g.curve.Level(elapsed)
	if level > s.SpeedLevel {
		s.SpeedLevel = level
		g.cues.SpeedUp()
	}
	s.Speed = g.curve.Speed(s.SpeedLevel)
	s.SpawnIntervalMs = g.curve.SpawnIntervalMs(s.SpeedLevel)
}

// advanceWorld scrolls obstacles and power-ups left by the current speed
// and drops the ones fully past the left boundary.
func (g *Game) advanceWorld(s *RunState) {
	obstacles := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= s.Speed
		if o.X+o.W > 0 {
			obstacles = append(obstacles, o)
		}
	}
	s.Obstacles = obstacles

	powerUps := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.X -= s.Speed
		if p.X+p.Size > 0 {
			powerUps = append(powerUps, p)
		}
	}
	s.PowerUps = powerUps
}

// spawnObstacle places a new obstacle once enough frames have passed for
// the current spawn interval. Archetypes are chosen uniformly.
func (g *Game) spawnObstacle(s *RunState) {
	if float64(s.FrameCount-s.LastSpawnFrame) <= s.SpawnIntervalMs/frameMs {
		return
	}

	kind := Archetype(g.rng.Intn(archetypeCount))
	x := g.cfg.Field.Width + g.cfg.Obstacles.SpawnMargin
	s.Obstacles = append(s.Obstacles, newObstacle(s.NextObstacleID, kind, x))
	s.NextObstacleID++
	s.LastSpawnFrame = s.FrameCount
}

// spawnPowerUp places a double-jump charge when the cooldown has passed
// and the per-frame roll succeeds, keeping pickups rare.
func (g *Game) spawnPowerUp(s *RunState) {
	if s.FrameCount-s.LastPowerUpFrame <= g.cfg.PowerUps.CooldownFrames {
		return
	}
	if g.rng.Float64() >= g.cfg.PowerUps.Chance {
		return
	}

	s.PowerUps = append(s.PowerUps, PowerUp{
		ID:   s.NextPowerUpID,
		X:    g.cfg.Field.Width + g.cfg.Obstacles.SpawnMargin,
		Y:    g.cfg.PowerUps.FloatHeight,
		Size: g.cfg.PowerUps.Size,
	})
	s.NextPowerUpID++
	s.LastPowerUpFrame = s.FrameCount
}
