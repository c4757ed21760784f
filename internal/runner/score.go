package runner

import (
	"math"
	"time"
)

// updateScore re-derives the score from the run clock; it is never
// incremented, so dropped frames cannot skew it. The milestone cue fires
// at most once per boundary, guarded by the highest index already fired.
func (g *Game) updateScore(s *RunState, elapsed time.Duration) {
	s.Score = int(math.Floor(elapsed.Seconds() * g.cfg.Scoring.PointsPerSecond))

	idx := s.Score / g.cfg.Scoring.MilestoneStep
	if idx > s.LastMilestone {
		s.LastMilestone = idx
		g.cues.Milestone()
	}
}
