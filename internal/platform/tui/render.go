package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jellyblocker/internal/board"
	"github.com/vovakirdan/jellyblocker/internal/core"
	"github.com/vovakirdan/jellyblocker/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// Board layout, in screen cells.
const (
	cellWidth = 2  // each jelly is drawn two runes wide
	hudGap    = 2  // space between the board box and the HUD
	hudWidth  = 14 // widest HUD line
)

// jellyColor returns the screen color for a board color.
func jellyColor(c board.Color) core.Color {
	switch c {
	case board.Red:
		return core.ColorRed
	case board.Green:
		return core.ColorGreen
	case board.Blue:
		return core.ColorBlue
	case board.Purple:
		return core.ColorMagenta
	case board.Yellow:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}

// jellyRune returns the rune used to fill a board cell.
func jellyRune(c board.Color) rune {
	switch {
	case c == board.Empty:
		return ' '
	case c == board.Garbage:
		return '▓'
	default:
		return '█'
	}
}

// drawJelly draws one board cell at (x, y).
func drawJelly(s *core.Screen, x, y int, c board.Color) {
	if c == board.Empty {
		s.SetCell(x, y, '·', core.ColorGray)
		s.SetCell(x+1, y, ' ', core.ColorDefault)
		return
	}
	r, col := jellyRune(c), jellyColor(c)
	for i := range cellWidth {
		s.SetCell(x+i, y, r, col)
	}
}

// boardRect returns the box around the visible board, centered on the screen
// together with the HUD.
func boardRect(s *core.Screen, snap session.Snapshot) core.Rect {
	w := snap.Width*cellWidth + 2
	h := snap.Height - 1 + 2 // row 0 stays hidden
	x := core.Clamp((s.Width()-w-hudGap-hudWidth)/2, 0, max(0, s.Width()-w))
	y := core.Clamp((s.Height()-h)/2, 0, max(0, s.Height()-h))
	return core.NewRect(x, y, w, h)
}

// DrawGame draws the board and the HUD (time, points, level, next group).
// It returns the board box so callers can place overlays around it.
func DrawGame(s *core.Screen, snap session.Snapshot) core.Rect {
	box := boardRect(s, snap)
	s.DrawBox(box, core.ColorWhite)

	for row := 1; row < snap.Height; row++ {
		for col := range snap.Width {
			drawJelly(s, box.X+1+col*cellWidth, box.Y+row, snap.Cells[row][col])
		}
	}

	hx := box.Right() + hudGap
	y := box.Y + 1
	lines := []string{
		"Time: " + FormatElapsed(snap.Elapsed),
		fmt.Sprintf("Points: %d", snap.Points),
		fmt.Sprintf("Level: %d", snap.Level),
		fmt.Sprintf("Popped: %d", snap.JelliesPopped),
	}
	for _, line := range lines {
		s.DrawText(hx, y, line)
		y++
	}

	y++
	s.DrawText(hx, y, "Next:")
	y++
	for i, c := range snap.Next {
		drawJelly(s, hx+1, y+i, c)
	}
	y += len(snap.Next) + 1

	if snap.Chain > 1 {
		s.DrawColorText(hx, y, fmt.Sprintf("Chain x%d", snap.Chain), core.ColorYellow)
	}
	y++
	if snap.FastDrop {
		s.DrawColorText(hx, y, "fast drop", core.ColorGray)
	}
	return box
}

// FormatElapsed formats a duration as seconds with hundredths.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("%d.%02d", d/time.Second, (d%time.Second)/(10*time.Millisecond))
}

const welcome = " Welcome to JellyBlocker "

// DrawTitle draws the welcome line framed by two jellies on each side.
func DrawTitle(s *core.Screen, y int, jellies []board.Color) {
	width := len(welcome) + 2*cellWidth*2
	x := max(0, (s.Width()-width)/2)
	for i, c := range jellies {
		if i == 2 {
			s.DrawColorText(x, y, welcome, core.ColorBrightWhite)
			x += len(welcome)
		}
		drawJelly(s, x, y, c)
		x += cellWidth
	}
}

// DrawBindings lists bindings one per line as "Name - [key]", centered
// starting at row y. Returns the row after the last line.
func DrawBindings(s *core.Screen, y int, bindings []key.Binding) int {
	for _, b := range bindings {
		s.DrawTextCentered(y, BindingLine(b), core.ColorWhite)
		y++
	}
	return y
}

// BindingLine formats a binding as "Move left - [←]".
func BindingLine(b key.Binding) string {
	desc := b.Help().Desc
	if desc != "" {
		desc = strings.ToUpper(desc[:1]) + desc[1:]
	}
	return fmt.Sprintf("%s - [%s]", desc, b.Help().Key)
}
