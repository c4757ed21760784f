package runner

import (
	"fmt"

	"github.com/askarat/runline/internal/core"
)

// Visual characters for rendering
const (
	RunnerBody  = '█'
	RunnerHead  = '◆'
	RunnerLeg1  = '╱'
	RunnerLeg2  = '╲'
	GroundChar  = '═'
	BlockChar   = '▓'
	SlabChar    = '▒'
	DroneChar   = '▚'
	PowerUpChar = '◉'
)

// view maps logical field coordinates onto screen cells for one frame.
// The simulation is resolution independent; only this mapping changes when
// the terminal resizes, so a resize never disturbs a run.
type view struct {
	screen    *core.Screen
	groundRow int
	sx, sy    float64
}

func (g *Game) newView(dst *core.Screen) view {
	groundRow := dst.Height() - 2
	if groundRow < 2 {
		groundRow = core.Max(1, dst.Height()-1)
	}
	skyRows := core.Max(1, groundRow-1) // row 0 is the HUD
	return view{
		screen:    dst,
		groundRow: groundRow,
		sx:        float64(dst.Width()) / g.cfg.Field.Width,
		sy:        float64(skyRows) / g.cfg.Field.Height,
	}
}

// col converts a logical x to a screen column.
func (v view) col(x float64) int {
	return int(x * v.sx)
}

// row converts a logical height above the baseline to a screen row, with
// the baseline resting directly on the ground line.
func (v view) row(y float64) int {
	return v.groundRow - 1 - int(y*v.sy)
}

// box converts a logical rect to cell coordinates (top-left origin, at
// least one cell in each dimension).
func (v view) box(r core.Rect) (x, y, w, h int) {
	x = v.col(r.X)
	w = core.Max(1, int(r.W*v.sx))
	h = core.Max(1, int(r.H*v.sy))
	y = v.row(r.Y) - h + 1
	return x, y, w, h
}

// Render draws the current state read-only onto the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.newView(dst)
	s := &g.state

	dst.DrawHLine(0, v.groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range s.Obstacles {
		drawObstacle(v, o)
	}
	for _, p := range s.PowerUps {
		drawPowerUp(v, p)
	}
	g.drawPlayer(v, s)
	for _, p := range s.Particles {
		drawParticle(v, p)
	}
	g.drawHUD(dst, s)

	switch s.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst,
			"R U N L I N E",
			"jump the blocks, grab ◉ for a mid-air jump",
			"press space to run")
	case core.PhaseDead:
		sub := fmt.Sprintf("score %d   best %d", s.Score, g.best)
		if s.Score > g.runBest {
			sub = fmt.Sprintf("NEW BEST! score %d", s.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", sub, "press space to run again")
	}
}

// drawPlayer renders the runner sprite: head, block body, animated legs.
func (g *Game) drawPlayer(v view, s *RunState) {
	x, y, w, h := v.box(g.playerRect(s))

	v.screen.DrawRect(x, y, w, h-1, RunnerBody, core.ColorBrightGreen)
	v.screen.Set(x+w-1, y, RunnerHead, core.ColorBrightGreen)

	legRow := y + h - 1
	switch {
	case s.Airborne:
		// Legs tucked mid-flight
		v.screen.Set(x+1, legRow, RunnerLeg2, core.ColorBrightGreen)
		v.screen.Set(x+w-2, legRow, RunnerLeg1, core.ColorBrightGreen)
	case s.LegFrame < 5:
		v.screen.Set(x, legRow, RunnerLeg1, core.ColorBrightGreen)
		v.screen.Set(x+w-1, legRow, RunnerLeg2, core.ColorBrightGreen)
	default:
		v.screen.Set(x+1, legRow, RunnerLeg1, core.ColorBrightGreen)
		v.screen.Set(x+w-2, legRow, RunnerLeg2, core.ColorBrightGreen)
	}
}

// drawObstacle renders one obstacle with its archetype's fill and color.
func drawObstacle(v view, o Obstacle) {
	x, y, w, h := v.box(o.Rect())
	switch o.Kind {
	case ArchetypeSlab:
		v.screen.DrawRect(x, y, w, h, SlabChar, core.ColorGreen)
	case ArchetypeDrone:
		v.screen.DrawRect(x, y, w, h, DroneChar, core.ColorBrightCyan)
	default:
		v.screen.DrawRect(x, y, w, h, BlockChar, core.ColorGreen)
	}
}

// drawPowerUp renders the floating charge as a single bright cell.
func drawPowerUp(v view, p PowerUp) {
	v.screen.Set(v.col(p.X), v.row(p.Y), PowerUpChar, core.ColorBrightYellow)
}

// drawParticle maps life to glyph weight and color: particles shrink to a
// dot and gray out as they fade.
func drawParticle(v view, p Particle) {
	alpha := p.Alpha()
	if alpha <= 0 {
		return
	}

	var r rune
	switch weight := p.Size * alpha; {
	case weight >= 2.5:
		r = '●'
	case weight >= 1.2:
		r = '•'
	default:
		r = '·'
	}

	color := p.Color
	if alpha < 0.3 {
		color = core.ColorDarkGray
	}
	v.screen.Set(v.col(p.X), v.row(p.Y), r, color)
}

// drawHUD prints score and difficulty on the top row, plus the armed
// charge badge.
func (g *Game) drawHUD(dst *core.Screen, s *RunState) {
	score := fmt.Sprintf(" Score: %05d  Best: %05d ", s.Score, g.best)
	dst.DrawText(1, 0, score, core.ColorBrightWhite)

	if s.HasCharge {
		dst.DrawText(1+len(score)+1, 0, "[↑↑]", core.ColorBrightYellow)
	}

	level := fmt.Sprintf(" Spd: %.1f  Lvl: %d ", s.Speed, s.SpeedLevel)
	dst.DrawText(dst.Width()-len(level)-1, 0, level, core.ColorCyan)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 3 + 2*len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+2*i, l, core.ColorGray)
	}
}
