package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Options{
		Config:        config.DefaultSnakeConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1},
		ScreenshotDir: t.TempDir(),
	})
	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickAdvancesGame(t *testing.T) {
	m := newTestModel(t)
	head := m.Runner().State().Head()

	m, cmd := update(t, m, TickMsg{Gen: 1})
	if cmd == nil {
		t.Error("Accepted tick should schedule the next one")
	}
	if want := head.Add(-snake.DefaultCellSize, 0); m.Runner().State().Head() != want {
		t.Errorf("Expected head at %v, got %v", want, m.Runner().State().Head())
	}
}

func TestModelDropsStaleTick(t *testing.T) {
	m := newTestModel(t)
	head := m.Runner().State().Head()

	m, cmd := update(t, m, TickMsg{Gen: 42})
	if cmd != nil {
		t.Error("Stale tick should not schedule anything")
	}
	if m.Runner().State().Head() != head {
		t.Error("Stale tick should not move the snake")
	}
}

func TestModelPauseResume(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	if m.Runner().State().Status != snake.StatusPaused {
		t.Fatalf("Expected paused, got %v", m.Runner().State().Status)
	}

	head := m.Runner().State().Head()
	m, _ = update(t, m, TickMsg{Gen: 1})
	if m.Runner().State().Head() != head {
		t.Error("Tick from before the pause should be dropped")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Error("Resume should start a new tick generation")
	}
	m, _ = update(t, m, TickMsg{Gen: 2})
	if m.Runner().State().Head() == head {
		t.Error("Tick of the resumed generation should move the snake")
	}
}

func TestModelDirectionKey(t *testing.T) {
	m := newTestModel(t)
	head := m.Runner().State().Head()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{Gen: 1})
	if want := head.Add(0, -snake.DefaultCellSize); m.Runner().State().Head() != want {
		t.Errorf("Expected head at %v after up, got %v", want, m.Runner().State().Head())
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 100 && !m.Runner().Frame().Over(); i++ {
		m, _ = update(t, m, TickMsg{Gen: 1})
	}
	if !m.Runner().Frame().Over() {
		t.Fatal("Snake heading left should hit the wall")
	}

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Error("Restart should schedule ticks for the new run")
	}
	s := m.Runner().State()
	if s.Status != snake.StatusRunning || s.Score != 0 {
		t.Errorf("Expected a fresh run, got %+v", s)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(Options{
		Config:        config.DefaultSnakeConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1},
		ScreenshotDir: dir,
	})
	m.Init()

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "snake_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected one screenshot, got %d", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("Screenshot should not be empty")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Error("Quit should return tea.Quit")
	}
	if m.Runner().Ticking() {
		t.Error("Quit should stop the tick source")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	if m.View() == "" {
		t.Error("View should render the board")
	}
}
