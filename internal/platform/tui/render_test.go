package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/runner"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type fixedRand struct{ n int }

func (f fixedRand) Intn(n int) int { return f.n % n }

func startedFrame() snake.Frame {
	return snake.NewState(snake.DefaultRules(), fixedRand{}).Frame(snake.EventNone)
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestBoardDrawsSnakeAndFood(t *testing.T) {
	b := newBoard(snake.DefaultRules().Grid, 0)
	b.Render(startedFrame())

	screen := core.NewScreen(80, 24)
	b.Draw(screen)

	// 62 columns wide board box centered in 80 columns, below the HUD.
	boxX, boxY := 9, hudRows
	if screen.Get(boxX, boxY) != '┌' {
		t.Errorf("Expected box corner at (%d,%d), got %q", boxX, boxY, screen.Get(boxX, boxY))
	}

	// Head sits on cell (15, 9).
	hx, hy := boxX+1+15*cellW, boxY+1+9
	if cell := screen.GetCell(hx, hy); cell.Rune != '█' || cell.Color != core.ColorBrightWhite {
		t.Errorf("Expected head at (%d,%d), got %+v", hx, hy, cell)
	}
	if cell := screen.GetCell(hx+cellW, hy); cell.Rune != '▓' || cell.Color != core.ColorWhite {
		t.Errorf("Expected body right of the head, got %+v", cell)
	}

	// fixedRand{0} puts food on the top-left cell.
	if cell := screen.GetCell(boxX+1, boxY+1); cell.Rune != '<' || cell.Color != core.ColorBrightGreen {
		t.Errorf("Expected food on the top-left cell, got %+v", cell)
	}
}

func TestBoardHUD(t *testing.T) {
	b := newBoard(snake.DefaultRules().Grid, 700)
	b.Render(startedFrame())
	b.ShowScore(runner.ScoreText(300))

	screen := core.NewScreen(80, 24)
	b.Draw(screen)

	if !strings.Contains(screen.Row(0), "Score: 300") {
		t.Errorf("HUD should show the score line, got %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "Best: 700") {
		t.Errorf("HUD should show the best score, got %q", screen.Row(0))
	}
}

func TestBoardOverlays(t *testing.T) {
	b := newBoard(snake.DefaultRules().Grid, 0)
	f := startedFrame()

	f.Status = snake.StatusPaused
	b.Render(f)
	screen := core.NewScreen(80, 24)
	b.Draw(screen)
	if !screenContains(screen, "Paused") {
		t.Error("Paused frame should show the pause overlay")
	}

	f.Status = snake.StatusOver
	f.Event = snake.EventOver
	f.Score = 500
	f.Crash = snake.Cell{X: -20, Y: 180}
	b.Render(f)
	b.ShowScore(runner.GameOverText(500))
	b.Draw(screen)
	if !screenContains(screen, "Game Over! Score: 500") {
		t.Error("Finished frame should show the final score")
	}
	if b.best != 500 {
		t.Errorf("Expected best score to follow a better run, got %d", b.best)
	}
}

func TestBoardCrashCell(t *testing.T) {
	b := newBoard(snake.DefaultRules().Grid, 0)
	f := startedFrame()
	f.Status = snake.StatusOver
	f.Event = snake.EventOver
	f.Collision = snake.CollisionSelf
	// Top-left cell, clear of the centered overlay.
	f.Crash = snake.Cell{X: 0, Y: 0}
	b.Render(f)

	screen := core.NewScreen(80, 24)
	b.Draw(screen)

	x, y := 9+1, hudRows+1
	if cell := screen.GetCell(x, y); cell.Rune != 'X' || cell.Color != core.ColorBrightRed {
		t.Errorf("Expected crash marker at (%d,%d), got %+v", x, y, cell)
	}
}

func TestBoardTooSmall(t *testing.T) {
	b := newBoard(snake.DefaultRules().Grid, 0)
	b.Render(startedFrame())

	screen := core.NewScreen(40, 24)
	b.Draw(screen)
	if !screenContains(screen, "Window too small") {
		t.Error("Narrow screen should show the too small notice")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColored(0, 0, "ab", core.ColorRed)
	screen.DrawText(2, 0, "cd")

	out := RenderScreen(screen)
	if !strings.Contains(out, "cd") || !strings.Contains(out, "ab") {
		t.Errorf("Rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected 2 rows, got %q", out)
	}
}

func TestFormatRuns(t *testing.T) {
	if got := FormatRuns(nil); got != "No runs recorded yet." {
		t.Errorf("Unexpected empty output %q", got)
	}

	runs := []storage.Run{
		{Score: 300, Length: 9, Cause: "wall-collision", CreatedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)},
		{Score: 100, Length: 7},
	}
	out := FormatRuns(runs)
	for _, want := range []string{"SCORE", "#1", "300", "wall-collision", "Mar 01 12:30", "#2", "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}
