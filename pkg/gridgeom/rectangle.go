package gridgeom

import (
	"fmt"
	"iter"
)

// Rectangle is an axis-aligned block of cells. Position is the minimum
// (bottom-left) corner; all derived edges are inclusive.
type Rectangle struct {
	Position Coord `json:"position"`
	Size     Size  `json:"size"`
}

// NewRectangle returns the rectangle spanning two opposite corners given
// as raw coordinates, in any order.
func NewRectangle(x0, y0, x1, y1 int32) Rectangle {
	minC := Coord{X: min(x0, x1), Y: min(y0, y1)}
	maxC := Coord{X: max(x0, x1), Y: max(y0, y1)}
	return Rectangle{
		Position: minC,
		Size: Size{
			Width:  uint32(int64(maxC.X)-int64(minC.X)) + 1,
			Height: uint32(int64(maxC.Y)-int64(minC.Y)) + 1,
		},
	}
}

// RectangleFromCorners returns the rectangle spanning two opposite corners.
func RectangleFromCorners(a, b Coord) Rectangle {
	return NewRectangle(a.X, a.Y, b.X, b.Y)
}

// RectangleFromSize returns the rectangle with the given minimum corner
// and size.
func RectangleFromSize(position Coord, size Size) Rectangle {
	return Rectangle{Position: position, Size: size}
}

// Width returns the number of columns.
func (r Rectangle) Width() uint32 { return r.Size.Width }

// Height returns the number of rows.
func (r Rectangle) Height() uint32 { return r.Size.Height }

// Left returns the minimum x.
func (r Rectangle) Left() int32 { return r.Position.X }

// Right returns the maximum x. For an empty rectangle it is Left()-1.
func (r Rectangle) Right() int32 { return r.Position.X + int32(r.Size.Width) - 1 }

// Bottom returns the minimum y.
func (r Rectangle) Bottom() int32 { return r.Position.Y }

// Top returns the maximum y. For an empty rectangle it is Bottom()-1.
func (r Rectangle) Top() int32 { return r.Position.Y + int32(r.Size.Height) - 1 }

// Min returns the minimum corner.
func (r Rectangle) Min() Coord { return r.Position }

// Max returns the maximum corner.
func (r Rectangle) Max() Coord { return Coord{X: r.Right(), Y: r.Top()} }

// Center returns the middle cell, rounding towards zero.
func (r Rectangle) Center() Coord {
	return Coord{
		X: (r.Right() + r.Left()) / 2,
		Y: (r.Top() + r.Bottom()) / 2,
	}
}

// IsSquare reports whether width equals height.
func (r Rectangle) IsSquare() bool {
	return r.Size.Width == r.Size.Height
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rectangle) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Intersects reports whether the closed x and y intervals of r and o both
// overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Left() <= o.Right() &&
		r.Right() >= o.Left() &&
		r.Bottom() <= o.Top() &&
		r.Top() >= o.Bottom()
}

// Intersect returns the cells r and o share, or an empty rectangle.
func (r Rectangle) Intersect(o Rectangle) Rectangle {
	if r.IsEmpty() || o.IsEmpty() || !r.Intersects(o) {
		return Rectangle{}
	}
	return NewRectangle(
		max(r.Left(), o.Left()), max(r.Bottom(), o.Bottom()),
		min(r.Right(), o.Right()), min(r.Top(), o.Top()),
	)
}

// Contains reports whether c lies inside r.
func (r Rectangle) Contains(c Coord) bool {
	return c.X >= r.Left() && c.X <= r.Right() &&
		c.Y >= r.Bottom() && c.Y <= r.Top()
}

// Translate returns the rectangle moved by offset.
func (r Rectangle) Translate(offset Coord) Rectangle {
	return Rectangle{Position: r.Position.Add(offset), Size: r.Size}
}

// Iter returns a row-major fill iterator.
func (r Rectangle) Iter() *RectangleIter {
	return NewRectangleIter(r.Position, r.Size)
}

// BorderIter returns an iterator over the outermost ring of cells.
func (r Rectangle) BorderIter() *RectangleBorderIter {
	return NewRectangleBorderIter(r.Position, r.Size)
}

// All yields every cell in row-major order.
func (r Rectangle) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range Drain(r.Iter()) {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward yields every cell in reverse row-major order.
func (r Rectangle) Backward() iter.Seq[Coord] {
	return backward(r.All())
}

// ForEach calls f for each cell.
func (r Rectangle) ForEach(f func(Coord)) {
	for c := range r.All() {
		f(c)
	}
}

// Border yields the outermost ring of cells.
func (r Rectangle) Border() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range Drain(r.BorderIter()) {
			if !yield(c) {
				return
			}
		}
	}
}

// ForEachBorder calls f for each border cell.
func (r Rectangle) ForEachBorder(f func(Coord)) {
	for c := range r.Border() {
		f(c)
	}
}

// AABB returns r.
func (r Rectangle) AABB() Rectangle {
	return r
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle { position: (%d, %d), size: (%d, %d) }",
		r.Position.X, r.Position.Y, r.Size.Width, r.Size.Height)
}
