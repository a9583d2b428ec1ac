package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/logging"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// Game is the contract the terminal platform drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// runInfo is implemented by games that can describe a finished run.
type runInfo interface {
	Tick() int
	Seed() int64
	Elapsed() time.Duration
}

// eventPaneWidth is the width of the event log next to the playfield.
const eventPaneWidth = 36

// Options configures a play session.
type Options struct {
	Store  *storage.Store // Finished runs are saved here when set
	Preset string         // Difficulty preset recorded with each run
	Events *logging.Ring  // Recent simulation events shown beside the playfield
	Logger *log.Logger    // Platform diagnostics

	// ScreenshotDir receives ctrl+s captures. Empty means
	// ~/.space-arcade/screenshots.
	ScreenshotDir string

	// Clipboard writes text to the system clipboard. Nil uses
	// github.com/atotto/clipboard.
	Clipboard func(string) error
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	game       Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	fixedSeed  bool
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	width      int
	quitting   bool
	runSaved   bool // Whether the current finished run has been saved
}

// NewModel creates a Bubble Tea model for the given game. The screen is
// sized from cfg; a zero seed is replaced by a time-based one on every
// reset, a non-zero seed replays the same run.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		fixedSeed:  fixed,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are buffered until the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyScreen()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step with the buffered input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.status = m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run after game over.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	if m.opts.Events != nil {
		m.opts.Events.Reset()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.status = ""
	m.inputFrame.Clear()
	m.opts.Logger.Info("run restarted", "seed", m.config.Seed)
}

// saveRun records the finished run and returns a status line.
func (m *Model) saveRun() string {
	st := m.gameState
	run := storage.Run{
		Score:  st.Score,
		Level:  st.Level,
		Seed:   m.config.Seed,
		Preset: m.opts.Preset,
	}
	if ri, ok := m.game.(runInfo); ok {
		run.Ticks = ri.Tick()
		run.Seed = ri.Seed()
		run.Duration = ri.Elapsed()
	}

	m.opts.Logger.Info("run finished", "score", run.Score, "level", run.Level, "ticks", run.Ticks)
	if m.opts.Store == nil {
		return "Game over. Press r to restart."
	}

	saved, err := m.opts.Store.SaveRun(run)
	if err != nil {
		m.opts.Logger.Error("could not save run", "error", err)
		return "Could not save run: " + err.Error()
	}
	m.opts.Logger.Debug("run saved", "run_id", saved.RunID)

	high, err := m.opts.Store.HighScore()
	if err == nil && saved.Score >= high && saved.Score > 0 {
		return fmt.Sprintf("New high score %d! Press r to restart.", saved.Score)
	}
	return fmt.Sprintf("Run saved (score %d). Press r to restart.", saved.Score)
}

// saveScreenshot writes the current screen as plain text and returns a
// status line.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "Screenshot failed: " + err.Error()
		}
		dir = filepath.Join(home, ".space-arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Error("could not create screenshot directory", "dir", dir, "error", err)
		return "Screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Error("could not save screenshot", "path", path, "error", err)
		return "Screenshot failed: " + err.Error()
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
	return "Screenshot saved to " + path
}

// copyScreen puts the current screen on the clipboard and returns a
// status line.
func (m *Model) copyScreen() string {
	m.game.Render(m.screen)
	if err := m.opts.Clipboard(m.screen.String()); err != nil {
		m.opts.Logger.Warn("clipboard unavailable", "error", err)
		return "Copy failed: " + err.Error()
	}
	return "Screen copied to clipboard"
}

// View renders the playfield, the event pane, a status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if m.opts.Events != nil {
		pane := renderEvents(m.opts.Events.Lines(), eventPaneWidth, m.screen.Height())
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", pane)
	}

	view += "\n" + statusStyle.Render(m.status)
	view += "\n" + helpStyle.Render(m.help.View(m.keys))
	return view
}

// Status returns the current status line.
func (m Model) Status() string { return m.status }

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
