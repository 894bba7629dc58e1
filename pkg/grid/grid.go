// Package grid stores values on a dense rectangle of cells and stamps
// gridgeom shapes onto it.
//
// Anything with At (write access) or Get (read access) can take part in
// stamping, so a terminal cell buffer and a Grid share the same helpers.
package grid

import (
	"iter"

	"github.com/wesen/gridshape/pkg/gridgeom"
)

// Target is a grid that hands out a mutable cell. At returns nil for
// coordinates outside the grid.
type Target[T any] interface {
	At(c gridgeom.Coord) *T
}

// Source is a grid that can be read by coordinate.
type Source[T any] interface {
	Get(c gridgeom.Coord) (T, bool)
}

// Grid is a dense row-major grid whose cells run from (0, 0) to
// (Width-1, Height-1).
type Grid[T any] struct {
	size  gridgeom.Size
	cells []T
}

// New returns a grid of the given size with every cell set to fill.
func New[T any](size gridgeom.Size, fill T) *Grid[T] {
	g := &Grid[T]{
		size:  size,
		cells: make([]T, size.Area()),
	}
	g.Fill(fill)
	return g
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() gridgeom.Size { return g.size }

// Bounds returns the grid as a rectangle anchored at the origin.
func (g *Grid[T]) Bounds() gridgeom.Rectangle {
	return gridgeom.RectangleFromSize(gridgeom.Coord{}, g.size)
}

// InBounds reports whether c is a cell of the grid.
func (g *Grid[T]) InBounds(c gridgeom.Coord) bool {
	return c.X >= 0 && c.Y >= 0 &&
		int64(c.X) < int64(g.size.Width) && int64(c.Y) < int64(g.size.Height)
}

func (g *Grid[T]) index(c gridgeom.Coord) int {
	return int(c.Y)*int(g.size.Width) + int(c.X)
}

// Get returns the value at c.
func (g *Grid[T]) Get(c gridgeom.Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(c)], true
}

// At returns a pointer to the cell at c, or nil when c is out of bounds.
func (g *Grid[T]) At(c gridgeom.Coord) *T {
	if !g.InBounds(c) {
		return nil
	}
	return &g.cells[g.index(c)]
}

// Set writes v at c and reports whether c was in bounds.
func (g *Grid[T]) Set(c gridgeom.Coord, v T) bool {
	p := g.At(c)
	if p == nil {
		return false
	}
	*p = v
	return true
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// All yields every cell with its coordinate in row-major order.
func (g *Grid[T]) All() iter.Seq2[gridgeom.Coord, T] {
	return func(yield func(gridgeom.Coord, T) bool) {
		w := int(g.size.Width)
		for i, v := range g.cells {
			c := gridgeom.C(int32(i%w), int32(i/w))
			if !yield(c, v) {
				return
			}
		}
	}
}
