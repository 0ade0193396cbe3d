package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/jellyblocker/internal/board"
	"github.com/vovakirdan/jellyblocker/internal/core"
	"github.com/vovakirdan/jellyblocker/internal/session"
)

func testSnapshot() session.Snapshot {
	cells := make([][]board.Color, 13)
	for i := range cells {
		cells[i] = make([]board.Color, 6)
	}
	cells[0][2] = board.Red // hidden spawn row
	cells[12][0] = board.Blue
	cells[12][1] = board.Garbage

	return session.Snapshot{
		Phase:   session.PhaseFalling,
		Running: true,
		Elapsed: 61230 * time.Millisecond,
		Points:  28,
		Level:   3,
		Chain:   3,
		Width:   6,
		Height:  13,
		Cells:   cells,
		Next:    []board.Color{board.Green, board.Yellow},
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00"},
		{2500 * time.Millisecond, "2.50"},
		{61230 * time.Millisecond, "61.23"},
		{10 * time.Millisecond, "0.01"},
	}
	for _, tc := range tests {
		if got := FormatElapsed(tc.d); got != tc.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestDrawGame(t *testing.T) {
	s := core.NewScreen(60, 20)
	snap := testSnapshot()

	box := DrawGame(s, snap)

	if box.W != 6*cellWidth+2 || box.H != 12+2 {
		t.Fatalf("box = %+v, want 14x14 without the hidden row", box)
	}

	blue := s.GetCell(box.X+1, box.Y+12)
	if blue.Rune != '█' || blue.Color != core.ColorBlue {
		t.Errorf("bottom-left jelly = %+v, want blue block", blue)
	}
	garbage := s.GetCell(box.X+1+cellWidth, box.Y+12)
	if garbage.Rune != '▓' || garbage.Color != core.ColorGray {
		t.Errorf("garbage cell = %+v", garbage)
	}
	if top := s.GetCell(box.X+1+2*cellWidth, box.Y); top.Rune != '─' {
		t.Errorf("hidden row should not be drawn, got %q on the border", top.Rune)
	}

	text := s.String()
	for _, want := range []string{"Time: 61.23", "Points: 28", "Level: 3", "Next:", "Chain x3"} {
		if !strings.Contains(text, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
}

func TestDrawGameChainHiddenBelowTwo(t *testing.T) {
	s := core.NewScreen(60, 20)
	snap := testSnapshot()
	snap.Chain = 1

	DrawGame(s, snap)

	if strings.Contains(s.String(), "Chain") {
		t.Error("a single pop round is not a chain")
	}
}

func TestDrawTitle(t *testing.T) {
	s := core.NewScreen(60, 3)
	DrawTitle(s, 1, []board.Color{board.Red, board.Green, board.Blue, board.Purple})

	row := s.Row(1)
	if !strings.Contains(row, "██ Welcome to JellyBlocker ██") {
		t.Errorf("title row = %q", row)
	}
	x := strings.IndexRune(row, '█')
	if c := s.GetCell(x, 1).Color; c != core.ColorRed {
		t.Errorf("first jelly color = %v, want red", c)
	}
}

func TestBindingLine(t *testing.T) {
	keys := DefaultKeyMap()

	if got := BindingLine(keys.RotateLeft); got != "Rotate left - [z]" {
		t.Errorf("BindingLine = %q", got)
	}
	if got := BindingLine(keys.Start); got != "Start game - [enter]" {
		t.Errorf("BindingLine = %q", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawColorText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
