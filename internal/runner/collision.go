package runner

import (
	"math"

	"github.com/askarat/runline/internal/core"
)

// playerRect returns the player's collision box in logical units.
func (g *Game) playerRect(s *RunState) core.Rect {
	return core.NewRect(
		g.cfg.Field.PlayerX,
		s.PlayerY,
		g.cfg.Field.PlayerWidth,
		g.cfg.Field.PlayerHeight,
	)
}

// playerCenter returns the center of the player box.
func (g *Game) playerCenter(s *RunState) (float64, float64) {
	return g.playerRect(s).Center()
}

// checkCollisions tests the player box against every obstacle with precise
// AABB overlap and ends the run on the first hit.
func (g *Game) checkCollisions(s *RunState) bool {
	player := g.playerRect(s)
	for _, o := range s.Obstacles {
		if player.Intersects(o.Rect()) {
			g.kill(s)
			return true
		}
	}
	return false
}

// kill freezes the run, emits the death burst and fires the crash cue.
// The platform reads the dead phase and persists a new best score.
func (g *Game) kill(s *RunState) {
	s.Phase = core.PhaseDead
	g.emitDeathBurst(s)
	g.cues.Crash()
}

// collectPowerUps applies the forgiving radial pickup test: a power-up is
// collected when the center distance drops below its radius plus the reach
// slack. Collection arms the charge and re-enables the mid-air jump even
// if one was already spent this flight.
func (g *Game) collectPowerUps(s *RunState) {
	px, py := g.playerCenter(s)
	reach := g.cfg.PowerUps.Reach

	powerUps := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		if math.Hypot(p.X-px, p.Y-py) < p.Size+reach {
			s.HasCharge = true
			s.ChargeUsed = false
			g.emitSparkle(s, p.X, p.Y)
			g.cues.PowerUp()
			continue
		}
		powerUps = append(powerUps, p)
	}
	s.PowerUps = powerUps
}
