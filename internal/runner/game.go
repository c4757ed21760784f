package runner

import (
	"math/rand"
	"time"

	"github.com/askarat/runline/internal/config"
	"github.com/askarat/runline/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the runner. One instance drives one session.
type Game struct {
	state   RunState
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	curve   *config.DifficultyCurve
	rng     *rand.Rand
	cues    Cues
	nowFn   func() time.Time
	best    int // stored best, injected by the platform for the HUD
	runBest int // best at run start, for the new-best banner
}

// New creates a runner instance with silent cues and the wall clock.
func New() *Game {
	return &Game{
		cues:  NopCues{},
		nowFn: time.Now,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runline"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Runline"
}

// SetCues attaches an audio cue emitter. Passing nil restores silence.
func (g *Game) SetCues(c Cues) {
	if c == nil {
		c = NopCues{}
	}
	g.cues = c
}

// SetBestScore injects the stored best score for the HUD and the
// new-best banner. The simulation never writes it back.
func (g *Game) SetBestScore(score int) {
	g.best = score
}

// Reset initializes or restarts the game into the idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg
	g.curve = config.NewDifficultyCurve(cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.state = newRunState(cfg)
}

// Step advances the game by one tick. The single activate input starts a
// run from idle, jumps while playing, and restarts from death.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	activate := in.Has(core.ActionActivate)

	switch g.state.Phase {
	case core.PhaseIdle:
		if activate {
			g.startRun()
		}
	case core.PhasePlaying:
		g.stepPlaying(&g.state, activate)
	case core.PhaseDead:
		if activate {
			g.startRun()
		} else {
			// Simulation is frozen; only the death burst keeps decaying.
			updateParticles(&g.state, g.cfg.Particles)
		}
	}

	return core.StepResult{State: g.State()}
}

// startRun discards the previous run state wholesale and begins playing.
// Both idle->playing and dead->playing go through here, so restarting is
// identical to a first start.
func (g *Game) startRun() {
	g.runBest = g.best
	g.state = newRunState(g.cfg)
	g.state.Phase = core.PhasePlaying
	g.state.RunStart = g.nowFn()
}

// stepPlaying advances one frame of the run. The pipeline order is fixed:
// input, physics, difficulty, world movement, spawning, collisions,
// pickups, particles, scoring.
func (g *Game) stepPlaying(s *RunState, activate bool) {
	s.FrameCount++
	s.LegFrame = (s.LegFrame + 1) % 10 // Animation cycle

	if activate {
		g.jump(s)
	}
	g.applyPhysics(s)

	elapsed := g.elapsed(s)
	g.updateDifficulty(s, elapsed)
	g.advanceWorld(s)
	g.spawnObstacle(s)
	g.spawnPowerUp(s)

	if g.checkCollisions(s) {
		return // Run is over; the death burst stays at full life this frame.
	}
	g.collectPowerUps(s)
	updateParticles(s, g.cfg.Particles)
	g.updateScore(s, elapsed)
}

// jump is the single entry point for both jump kinds. Activating while
// airborne without an armed charge does nothing.
func (g *Game) jump(s *RunState) {
	if !s.Airborne {
		s.PlayerVel = g.cfg.Physics.JumpImpulse
		s.Airborne = true
		s.ChargeUsed = false
		g.emitJumpDust(s, g.cfg.Particles.JumpCount, 3)
		g.cues.Jump()
		return
	}
	if s.HasCharge && !s.ChargeUsed {
		s.PlayerVel = g.cfg.Physics.JumpImpulse * g.cfg.Physics.AirJumpFactor
		s.HasCharge = false
		s.ChargeUsed = true
		g.emitJumpDust(s, g.cfg.Particles.AirJumpCount, 2)
		g.cues.Jump()
	}
}

// elapsed returns the run time, clamped so clock anomalies never produce
// a negative score or difficulty level.
func (g *Game) elapsed(s *RunState) time.Duration {
	e := g.nowFn().Sub(s.RunStart)
	if e < 0 {
		return 0
	}
	return e
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.state.Score,
		Phase: g.state.Phase,
	}
}
