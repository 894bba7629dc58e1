// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Each cell holds a rune and a StyleKey. At render time the caller
// provides a map[StyleKey]lipgloss.Style, so the buffer carries no colour
// scheme of its own.
//
// Coordinates are gridgeom.Coord with row 0 at the top of the output.
// A Buffer is a grid.Target[Cell], so every grid stamping helper can
// paint straight into it.
//
// Limitation: all runes are assumed to be single-width.
package cellbuf

import (
	"iter"
	"strings"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

// StyleKey identifies a visual style.
type StyleKey int

// Cell is a single character with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

var _ grid.Target[Cell] = (*Buffer)(nil)
var _ grid.Source[Cell] = (*Buffer)(nil)

// New creates a Buffer of the given size filled with spaces in
// defaultStyle. Negative sizes are clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// Bounds returns the buffer area as a rectangle anchored at the origin.
func (b *Buffer) Bounds() gridgeom.Rectangle {
	return gridgeom.RectangleFromSize(gridgeom.Coord{}, gridgeom.Sz(uint32(b.W), uint32(b.H)))
}

// InBounds reports whether c is inside the buffer.
func (b *Buffer) InBounds(c gridgeom.Coord) bool {
	return c.X >= 0 && int(c.X) < b.W && c.Y >= 0 && int(c.Y) < b.H
}

// At returns the cell at c, or nil when c is outside the buffer.
func (b *Buffer) At(c gridgeom.Coord) *Cell {
	if !b.InBounds(c) {
		return nil
	}
	return &b.Cells[c.Y][c.X]
}

// Get returns the cell at c.
func (b *Buffer) Get(c gridgeom.Coord) (Cell, bool) {
	if p := b.At(c); p != nil {
		return *p, true
	}
	return Cell{}, false
}

// Set writes one character at c. Out-of-bounds writes are ignored.
func (b *Buffer) Set(c gridgeom.Coord, ch rune, style StyleKey) {
	if p := b.At(c); p != nil {
		*p = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at c, one rune per column. Runes that fall
// outside the buffer are skipped.
func (b *Buffer) SetString(c gridgeom.Coord, s string, style StyleKey) {
	i := int32(0)
	for _, ch := range s {
		b.Set(gridgeom.C(c.X+i, c.Y), ch, style)
		i++
	}
}

// Paint writes ch at every coordinate of seq and returns the number of
// cells written.
func (b *Buffer) Paint(seq iter.Seq[gridgeom.Coord], ch rune, style StyleKey) int {
	return grid.CopyFromSeq(b, seq, gridgeom.Coord{}, Cell{Ch: ch, Style: style})
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Blit copies src into b with src's origin at dst. Cells with a space
// rune are treated as transparent.
func (b *Buffer) Blit(src *Buffer, dst gridgeom.Coord) {
	for y, row := range src.Cells {
		for x, cell := range row {
			if cell.Ch == ' ' {
				continue
			}
			b.Set(dst.Add(gridgeom.C(int32(x), int32(y))), cell.Ch, cell.Style)
		}
	}
}

// Plain returns the buffer text without styling, rows joined by "\n".
func (b *Buffer) Plain() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Ch)
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
