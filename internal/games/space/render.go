package space

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// FormatFrame draws objects onto a grid of '.' cells, one line per row.
// The ship is drawn last so it stays visible when sharing a cell.
func FormatFrame(grid core.Grid, objects []ObjectView) string {
	rows := make([][]rune, grid.Height)
	for y := range rows {
		rows[y] = []rune(strings.Repeat(".", grid.Width))
	}

	place := func(o ObjectView) {
		if grid.Contains(o.Pos) {
			rows[o.Pos.Y][o.Pos.X] = o.Graphic.Glyph
		}
	}
	for _, o := range objects {
		if o.Kind != KindShip {
			place(o)
		}
	}
	for _, o := range objects {
		if o.Kind == KindShip {
			place(o)
		}
	}

	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// TextRenderer writes every frame it receives as plain text.
type TextRenderer struct {
	w      io.Writer
	grid   core.Grid
	frames int
	err    error
}

// NewTextRenderer creates a renderer writing frames for grid to w.
func NewTextRenderer(w io.Writer, grid core.Grid) *TextRenderer {
	return &TextRenderer{w: w, grid: grid}
}

// Render writes one frame. After the first write error further frames are
// dropped; the simulation does not depend on rendering succeeding.
func (r *TextRenderer) Render(objects []ObjectView) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "-- frame %d --\n%s\n", r.frames, FormatFrame(r.grid, objects))
	r.frames++
}

// Frames returns the number of frames written.
func (r *TextRenderer) Frames() int { return r.frames }

// Err returns the first write error, if any.
func (r *TextRenderer) Err() error { return r.err }
