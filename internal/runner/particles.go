package runner

import (
	"math"

	"github.com/askarat/runline/internal/config"
	"github.com/askarat/runline/internal/core"
)

const sparkleSpeed = 3.5

// emitJumpDust sprays dust at the player's feet: upward-biased velocity
// with side jitter. The mid-air jump reuses it with a smaller count and size.
func (g *Game) emitJumpDust(s *RunState, count int, size float64) {
	baseX := g.cfg.Field.PlayerX + g.cfg.Field.PlayerWidth/2
	for i := 0; i < count; i++ {
		s.Particles = append(s.Particles, Particle{
			X:       baseX + (g.rng.Float64()-0.5)*g.cfg.Field.PlayerWidth,
			Y:       s.PlayerY,
			VX:      (g.rng.Float64() - 0.5) * 3,
			VY:      0.5 + g.rng.Float64()*2,
			Life:    1,
			MaxLife: 1,
			Size:    size * (0.5 + g.rng.Float64()),
			Color:   core.ColorGray,
		})
	}
}

// emitDeathBurst explodes a fixed count of particles from the player's
// center at random angles and speeds, alternating two ember colors.
func (g *Game) emitDeathBurst(s *RunState) {
	cx, cy := g.playerCenter(s)
	for i := 0; i < g.cfg.Particles.DeathCount; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 2 + g.rng.Float64()*5
		color := core.ColorOrange
		if i%2 == 1 {
			color = core.ColorBrightRed
		}
		s.Particles = append(s.Particles, Particle{
			X:       cx,
			Y:       cy,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    1,
			MaxLife: 1,
			Size:    2 + g.rng.Float64()*3,
			Color:   color,
		})
	}
}

// emitSparkle rings a collected power-up with an evenly spread radial
// burst, one particle per spoke.
func (g *Game) emitSparkle(s *RunState, x, y float64) {
	count := g.cfg.Particles.SparkleCount
	if count <= 0 {
		return
	}
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		s.Particles = append(s.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * sparkleSpeed,
			VY:      math.Sin(angle) * sparkleSpeed,
			Life:    1,
			MaxLife: 1,
			Size:    2.5,
			Color:   core.ColorBrightYellow,
		})
	}
}

// updateParticles decays, integrates and compacts the pool in place.
// A particle whose life reaches zero is gone before the next render.
func updateParticles(s *RunState, cfg config.ParticlesConfig) {
	particles := s.Particles[:0]
	for _, p := range s.Particles {
		p.Life -= cfg.DecayStep
		if p.Life <= 1e-9 { // epsilon absorbs float drift in the decay count
			continue
		}
		p.VY -= cfg.Gravity
		p.X += p.VX
		p.Y += p.VY
		particles = append(particles, p)
	}
	s.Particles = particles
}
