package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(config.DefaultGameConfig(), Options{
		Runtime: core.RuntimeConfig{TickRate: 60, Seed: 42},
		Store:   store,
		Player:  "tester",
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send delivers msg and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	return send(t, m, TickMsg(at))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelDefaults(t *testing.T) {
	m, err := NewModel(config.DefaultGameConfig(), Options{})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	if m.runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", m.runtime.TickRate)
	}
	if m.runtime.Seed == 0 {
		t.Error("zero seed should be replaced by a clock seed")
	}
	if m.Game().Mode() != flappy.ModeMenu {
		t.Errorf("Mode = %v, expected Menu", m.Game().Mode())
	}
	if m.Screen().Width() != 80 || m.Screen().Height() != 50 {
		t.Errorf("screen = %dx%d, expected 80x50", m.Screen().Width(), m.Screen().Height())
	}
}

func TestNewModelInvalidConfig(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Screen.Width = 0
	if _, err := NewModel(cfg, Options{}); err == nil {
		t.Error("NewModel() should reject an invalid config")
	}
}

func TestModelMenuThenPlay(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := tick(t, m, testStart)
	if cmd == nil {
		t.Fatal("tick should schedule the next frame")
	}
	if !strings.Contains(m.Screen().Row(5), "Welcome to Flappy Bird") {
		t.Errorf("menu row 5 = %q", m.Screen().Row(5))
	}

	m, _ = send(t, m, runeKey('p'))
	if m.Game().Mode() != flappy.ModeMenu {
		t.Error("keys should only take effect on the next frame")
	}

	m, _ = tick(t, m, testStart.Add(16*time.Millisecond))
	if m.Game().Mode() != flappy.ModePlaying {
		t.Fatalf("Mode = %v, expected Playing", m.Game().Mode())
	}

	m, _ = tick(t, m, testStart.Add(32*time.Millisecond))
	if !strings.HasPrefix(m.Screen().Row(0), "Press Space to Flap") {
		t.Errorf("playing row 0 = %q", m.Screen().Row(0))
	}
	if m.pending != core.EventNone {
		t.Errorf("pending = %v after a frame, expected None", m.pending)
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)

	m, _ = send(t, m, runeKey('x'))
	m, _ = send(t, m, runeKey('p'))
	m, _ = tick(t, m, testStart.Add(16*time.Millisecond))
	if m.Game().Mode() != flappy.ModePlaying {
		t.Errorf("Mode = %v, expected Playing", m.Game().Mode())
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)

	m, cmd := send(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("q should wait for the game to handle it")
	}

	m, cmd = tick(t, m, testStart.Add(16*time.Millisecond))
	if !isQuit(cmd) {
		t.Error("expected tea.Quit after the game requested it")
	}
	if !m.IsQuitting() || m.View() != "" {
		t.Error("model should be quitting with an empty view")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)
	m, _ = send(t, m, runeKey('p'))
	m, _ = tick(t, m, testStart.Add(16*time.Millisecond))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
}

// playUntilDead falls without flapping, one physics tick per frame.
func playUntilDead(t *testing.T, m Model) (Model, time.Time) {
	t.Helper()
	now := testStart
	m, _ = tick(t, m, now)
	m, _ = send(t, m, runeKey('p'))
	now = now.Add(16 * time.Millisecond)
	m, _ = tick(t, m, now)

	for i := 0; i < 200 && m.Game().Mode() == flappy.ModePlaying; i++ {
		now = now.Add(100 * time.Millisecond)
		m, _ = tick(t, m, now)
	}
	if m.Game().Mode() != flappy.ModeDead {
		t.Fatalf("Mode = %v after falling, expected Dead", m.Game().Mode())
	}
	return m, now
}

func TestModelRecordsRunOnDeath(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)

	m, now := playUntilDead(t, m)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.Player != "tester" || run.Seed != 42 || run.Score != m.Game().Score() {
		t.Errorf("run = %+v", run)
	}
	if run.Ticks != m.Game().Ticks() || run.Ticks == 0 {
		t.Errorf("run ticks = %d, game ticks = %d", run.Ticks, m.Game().Ticks())
	}
	if run.DurationMs <= 0 {
		t.Errorf("DurationMs = %d, expected positive", run.DurationMs)
	}

	// Staying on the dead screen must not record the run again
	for i := 0; i < 5; i++ {
		now = now.Add(16 * time.Millisecond)
		m, _ = tick(t, m, now)
	}
	runs, _ = store.TopRuns(10)
	if len(runs) != 1 {
		t.Errorf("expected 1 run after idling, got %d", len(runs))
	}
}

func TestModelSeedsBestFromStore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(storage.Run{Score: 7}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := newTestModel(t, store)
	if m.Game().Best() != 7 {
		t.Fatalf("Best() = %d, expected 7", m.Game().Best())
	}

	m, _ = playUntilDead(t, m)
	m, _ = tick(t, m, testStart.Add(time.Hour))
	if !strings.Contains(m.Screen().Row(7), "Best: 7") {
		t.Errorf("dead row 7 = %q, expected best score", m.Screen().Row(7))
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.txt")
	orig := screenshotPath
	screenshotPath = func(time.Time) (string, error) { return path, nil }
	t.Cleanup(func() { screenshotPath = orig })

	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("screenshot should not schedule a command")
	}
	if m.pending != core.EventNone {
		t.Error("screenshot key should not reach the game")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if string(data) != m.Screen().String() {
		t.Error("screenshot should hold the last frame")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)

	view := m.View()
	if !strings.Contains(view, "Welcome to Flappy Bird") {
		t.Error("view should show the menu")
	}
	if got := strings.Count(view, "\n"); got != 49 {
		t.Errorf("view has %d line breaks, expected 49", got)
	}
}

func TestModelCopyFrame(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := newTestModel(t, nil)
	m, _ = tick(t, m, testStart)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd != nil {
		t.Error("copy should not schedule a command")
	}
	if copied != m.Screen().String() {
		t.Error("clipboard should hold the last frame")
	}
}

func TestModelCopyFrameDisabled(t *testing.T) {
	called := false
	orig := writeClipboard
	writeClipboard = func(string) error {
		called = true
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, err := NewModel(config.DefaultGameConfig(), Options{NoClipboard: true})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if called {
		t.Error("clipboard must not be used when disabled")
	}
}
