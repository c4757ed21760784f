package runner

// applyPhysics advances the 1-D vertical kinematics by one tick: velocity
// loses the gravity decrement, then position integrates velocity. There is
// no terminal velocity; landing clamps to the baseline.
func (g *Game) applyPhysics(s *RunState) {
	if !s.Airborne {
		return
	}

	s.PlayerVel -= g.cfg.Physics.Gravity
	s.PlayerY += s.PlayerVel

	// Landed: reached or crossed the baseline from above. The consumed
	// flag survives landing; the next ground jump clears it.
	if s.PlayerY <= 0 {
		s.PlayerY = 0
		s.PlayerVel = 0
		s.Airborne = false
	}
}
