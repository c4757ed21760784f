package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/askarat/runline/internal/core"
	"github.com/askarat/runline/internal/storage"
)

// Game is the simulation surface the platform drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetBestScore(score int)
}

// Muter is the audio switch behind the m key. A nil Muter disables it.
type Muter interface {
	ToggleMuted() bool
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	muter      Muter
	keys       KeyMap
	config     core.RuntimeConfig
	input      core.InputFrame
	state      core.GameState
	best       int
	stopped    bool // set on quit; no further ticks are scheduled
	scoreSaved bool // whether the best was persisted for the current death
}

// NewModel creates a new Bubble Tea model for the given game.
// store and muter may be nil; the game then runs without persistence or
// a mute switch.
func NewModel(game Game, store *storage.Store, muter Muter, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		muter:  muter,
		keys:   DefaultKeyMap(),
		config: cfg,
		input:  core.NewInputFrame(),
	}

	if store != nil {
		if best, err := store.Best(); err == nil {
			m.best = best
			game.SetBestScore(best)
		}
	}

	return m
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: state will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopped = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Mute):
		if m.muter != nil {
			m.muter.ToggleMuted()
		}

	case key.Matches(msg, m.keys.Activate):
		m.input.Set(core.ActionActivate)
	}

	return m, nil
}

// handleMouse maps a click to the single game action, so terminals with
// mouse support can play tap-style.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Set(core.ActionActivate)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// logical units, so resizing only changes the viewport; the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation one frame and schedules the next
// tick, unless the session has been stopped.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.state = result.State

	if m.state.Phase == core.PhaseDead {
		m.persistBest()
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// persistBest writes the score once per death, and only when it beats the
// stored best. The updated best feeds back into the HUD immediately.
func (m *Model) persistBest() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.state.Score <= m.best {
		return
	}

	saved, err := m.store.SaveBest(m.state.Score)
	if err != nil || !saved {
		return // Best-effort save, game continues regardless
	}
	m.best = m.state.Score
	m.game.SetBestScore(m.best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runline", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.stopped {
		return ""
	}

	m.game.Render(m.screen)

	// Key help on the quiet screens only; gameplay stays clean.
	if m.state.Phase != core.PhasePlaying {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.keys.HelpLine(), core.ColorDarkGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, store *storage.Store, muter Muter, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, muter, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to jump
	)

	_, err := p.Run()
	return err
}
