// Package presets provides starting board layouts.
// A preset is a set of rows of color letters, aligned to the bottom of the
// board: '.' is empty, '#' is garbage and R, G, B, P, Y are jellies.
package presets

import (
	"fmt"

	"github.com/vovakirdan/jellyblocker/internal/board"
)

// spawnClearance is the number of top rows a preset may never touch.
const spawnClearance = 2

// Preset is a parsed starting layout.
type Preset struct {
	ID          string
	Name        string
	Description string
	Rows        []string
	FilePath    string
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the preset against a board size.
func (p *Preset) Validate(width, height int) error {
	if p.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "preset has no id"}
	}
	if limit := height - spawnClearance; len(p.Rows) > limit {
		return ValidationError{
			Code:    "TOO_TALL",
			Message: fmt.Sprintf("preset %s has %d rows, board allows %d", p.ID, len(p.Rows), limit),
		}
	}
	for i, row := range p.Rows {
		cols := 0
		for _, ch := range row {
			if _, ok := board.ParseColor(string(ch)); !ok {
				return ValidationError{
					Code:    "INVALID_COLOR",
					Message: fmt.Sprintf("preset %s row %d: unknown cell %q", p.ID, i, ch),
				}
			}
			cols++
		}
		if cols > width {
			return ValidationError{
				Code:    "TOO_WIDE",
				Message: fmt.Sprintf("preset %s row %d has %d cells, board is %d wide", p.ID, i, cols, width),
			}
		}
	}
	return nil
}

// Apply validates the preset and places its cells on g, bottom-aligned.
// Floating cells are settled afterwards so the board starts at rest.
func (p *Preset) Apply(g *board.Grid) error {
	if err := p.Validate(g.Width(), g.Height()); err != nil {
		return err
	}

	top := g.Height() - len(p.Rows)
	for i, row := range p.Rows {
		col := 0
		for _, ch := range row {
			color, _ := board.ParseColor(string(ch))
			if color != board.Empty && !g.Place(top+i, col, color) {
				return fmt.Errorf("presets: %s: cell (%d,%d) already occupied", p.ID, top+i, col)
			}
			col++
		}
	}
	g.Settle()
	return nil
}

// Cells counts the non-empty cells of the layout.
func (p *Preset) Cells() int {
	n := 0
	for _, row := range p.Rows {
		for _, ch := range row {
			if ch != '.' {
				n++
			}
		}
	}
	return n
}
