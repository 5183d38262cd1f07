package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/runner"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board cell glyphs. A board cell is two characters wide so it looks
// roughly square in a terminal.
const (
	cellW = 2

	glyphHead  = "██"
	glyphBody  = "▓▓"
	glyphFood  = "<>"
	glyphCrash = "XX"
)

// hudRows is the number of screen rows above the board box.
const hudRows = 2

// board is the terminal renderer and score display for a runner.
// It remembers the last frame and score line and draws them on demand.
type board struct {
	grid      snake.Grid
	frame     snake.Frame
	scoreLine string
	best      int
	hasFrame  bool
}

var (
	_ runner.Renderer     = (*board)(nil)
	_ runner.ScoreDisplay = (*board)(nil)
)

func newBoard(g snake.Grid, best int) *board {
	return &board{grid: g, best: best, scoreLine: runner.ScoreText(0)}
}

// Render implements runner.Renderer.
func (b *board) Render(f snake.Frame) {
	b.frame = f
	b.hasFrame = true
	if f.Over() && f.Score > b.best {
		b.best = f.Score
	}
}

// ShowScore implements runner.ScoreDisplay.
func (b *board) ShowScore(text string) {
	b.scoreLine = text
}

// size returns the screen area needed for the board and HUD.
func (b *board) size() (w, h int) {
	return b.grid.Cols()*cellW + 2, b.grid.Rows() + 2 + hudRows
}

// Draw renders the last frame onto dst.
func (b *board) Draw(dst *core.Screen) {
	dst.Clear()

	needW, needH := b.size()
	if dst.Width() < needW || dst.Height() < needH {
		b.drawOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	b.drawHUD(dst, needW)

	box := core.NewRect((dst.Width()-needW)/2, hudRows, needW, needH-hudRows)
	dst.DrawBox(box, core.ColorGray)
	if !b.hasFrame {
		return
	}

	f := b.frame
	b.drawCell(dst, box, f.Food, glyphFood, core.ColorBrightGreen)
	for i := len(f.Body) - 1; i >= 0; i-- {
		if i == 0 {
			b.drawCell(dst, box, f.Body[i], glyphHead, core.ColorBrightWhite)
		} else {
			b.drawCell(dst, box, f.Body[i], glyphBody, core.ColorWhite)
		}
	}

	switch f.Status {
	case snake.StatusOver:
		b.drawCell(dst, box, f.Crash, glyphCrash, core.ColorBrightRed)
		b.drawOverlay(dst, b.scoreLine, "Press R to restart")
	case snake.StatusPaused:
		b.drawOverlay(dst, "Paused", "Press Space to resume")
	}
}

// drawHUD draws the score line and the best score above the board.
func (b *board) drawHUD(dst *core.Screen, width int) {
	x := (dst.Width() - width) / 2
	dst.DrawTextColored(x, 0, " Snake  "+b.scoreLine, core.ColorYellow)

	best := fmt.Sprintf("Best: %d ", b.best)
	dst.DrawTextColored(x+width-len(best), 0, best, core.ColorGray)
}

// drawCell paints one board cell. Cells off the board are skipped, which
// covers the crash cell of a wall collision.
func (b *board) drawCell(dst *core.Screen, box core.Rect, c snake.Cell, glyph string, color core.Color) {
	if !b.grid.Contains(c) {
		return
	}
	col, row := b.grid.Index(c)
	dst.DrawTextColored(box.X+1+col*cellW, box.Y+1+row, glyph, color)
}

// drawOverlay draws a centered two-line message box.
func (b *board) drawOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	r := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorGray)
	dst.DrawHLine(r.X+1, r.Y+2, r.W-2, '─')
	dst.DrawTextCentered(r.Y+1, line1)
	dst.DrawTextCentered(r.Y+3, line2)
}
