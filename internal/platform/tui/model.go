package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a Model beyond the game rules.
type Options struct {
	Runtime  core.RuntimeConfig
	Store    *storage.Store     // Optional; runs are not recorded when nil
	Logger   *log.Logger        // Optional; discards output when nil
	Player   string             // Name stored with each run
	Renderer *lipgloss.Renderer // Optional; SSH sessions pass their own

	// NoClipboard disables frame copying. Remote sessions set it: the
	// clipboard belongs to the machine running the server.
	NoClipboard bool
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *flappy.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	renderer *lipgloss.Renderer
	keys     KeyMap
	runtime  core.RuntimeConfig
	player   string
	noClip   bool

	pending  core.Event // Latest key since the previous frame
	lastTick time.Time
	runStart time.Time
	quitting bool
}

// NewModel creates a model with a fresh game in menu mode.
func NewModel(cfg config.GameConfig, opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := flappy.NewWithSeed(cfg, rt.Seed)
	if err != nil {
		return Model{}, err
	}

	if opts.Store != nil {
		best, err := opts.Store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		} else {
			game.SetBest(best)
		}
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.Screen.Width, cfg.Screen.Height),
		store:    opts.Store,
		logger:   logger,
		renderer: opts.Renderer,
		keys:     DefaultKeyMap(),
		runtime:  rt,
		player:   opts.Player,
		noClip:   opts.NoClipboard,
		pending:  core.EventNone,
	}, nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "seed", m.runtime.Seed, "fps", m.runtime.TickRate)
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next frame. Host keys act at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if m.noClip {
			return m, nil
		}
		if err := writeClipboard(m.screen.String()); err != nil {
			m.logger.Warn("failed to copy frame to clipboard", "error", err)
		} else {
			m.logger.Info("copied frame to clipboard")
		}
		return m, nil
	}

	m.pending = m.keys.Event(msg)
	return m, nil
}

// handleTick advances the game by one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	before := m.game.Mode()

	m.game.Advance(elapsedMs(m.lastTick, now), m.pending, m.screen)
	m.pending = core.EventNone
	m.lastTick = now

	after := m.game.Mode()
	switch {
	case before != flappy.ModePlaying && after == flappy.ModePlaying:
		m.runStart = now
		m.logger.Debug("run started")
	case before == flappy.ModePlaying && after == flappy.ModeDead:
		m.recordRun(now)
	}

	if m.screen.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordRun stores the run that just ended. Failures are logged; play goes on.
func (m Model) recordRun(now time.Time) {
	run := storage.Run{
		Player:     m.player,
		Score:      m.game.Score(),
		Ticks:      m.game.Ticks(),
		Seed:       m.runtime.Seed,
		DurationMs: now.Sub(m.runStart).Milliseconds(),
	}
	m.logger.Info("run ended", "score", run.Score, "ticks", run.Ticks, "best", m.game.Best())

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id)
}

// screenshotPath resolves where a screenshot taken at t is written.
// Replaced in tests.
var screenshotPath = func(t time.Time) (string, error) {
	return xdg.DataFile(fmt.Sprintf("flappy/screenshots/flappy_%s.txt", t.Format("20060102_150405")))
}

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// saveScreenshot writes the last drawn frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	path, err := screenshotPath(time.Now())
	if err != nil {
		return "", fmt.Errorf("cannot resolve screenshot path: %w", err)
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.renderer)
}

// Game returns the hosted game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Screen returns the frame buffer the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// IsQuitting reports whether the model has asked Bubble Tea to stop.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.GameConfig, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
