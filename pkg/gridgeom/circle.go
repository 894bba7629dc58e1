package gridgeom

import (
	"fmt"
	"iter"
)

// Circle is a disc of cells around Center. A zero radius is the single
// center cell.
type Circle struct {
	Center Coord  `json:"center"`
	Radius uint32 `json:"radius"`
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center Coord, radius uint32) Circle {
	return Circle{Center: center, Radius: radius}
}

// RadiusInSafeRange reports whether r is small enough for every circle
// operation to stay within int32.
func RadiusInSafeRange(r uint32) bool {
	return r <= MaxExtent
}

// Left returns the leftmost cell on the center row.
func (c Circle) Left() Coord {
	return Coord{X: c.Center.X - int32(c.Radius), Y: c.Center.Y}
}

// Right returns the rightmost cell on the center row.
func (c Circle) Right() Coord {
	return Coord{X: c.Center.X + int32(c.Radius), Y: c.Center.Y}
}

// Top returns the cell with maximum y on the center column.
func (c Circle) Top() Coord {
	return Coord{X: c.Center.X, Y: c.Center.Y + int32(c.Radius)}
}

// Bottom returns the cell with minimum y on the center column.
func (c Circle) Bottom() Coord {
	return Coord{X: c.Center.X, Y: c.Center.Y - int32(c.Radius)}
}

// Count returns the number of cells in the filled disc. It rasterizes the
// whole disc.
func (c Circle) Count() int {
	n := 0
	for range c.All() {
		n++
	}
	return n
}

// Contains reports whether p is one of the cells CircleIter produces.
//
// Membership is decided against the rasterized spans, O(radius), rather
// than by a distance test, so it always agrees with All.
func (c Circle) Contains(p Coord) bool {
	for l := range c.Spans() {
		if l.Start.X == p.X && p.Y >= min(l.Start.Y, l.End.Y) && p.Y <= max(l.Start.Y, l.End.Y) {
			return true
		}
	}
	return false
}

// Translate returns the circle moved by offset.
func (c Circle) Translate(offset Coord) Circle {
	return Circle{Center: c.Center.Add(offset), Radius: c.Radius}
}

// Iter returns an iterator over the filled disc.
func (c Circle) Iter() *CircleIter {
	return NewCircleIter(c.Center, c.Radius)
}

// CircumferenceIter returns an iterator over the outermost ring.
func (c Circle) CircumferenceIter() *CircleCircumferenceIter {
	return NewCircleCircumferenceIter(c.Center, c.Radius)
}

// All yields every cell of the filled disc.
func (c Circle) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for p := range Drain(c.Iter()) {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward yields the cells of All in reverse order.
func (c Circle) Backward() iter.Seq[Coord] {
	return backward(c.All())
}

// Spans yields the vertical spans CircleIter rasterizes, four per
// midpoint step. Their union is the filled disc; spans may overlap. There
// are O(radius) of them, so clipping or membership tests over spans avoid
// walking the whole area. It panics if the radius exceeds MaxRadius.
func (c Circle) Spans() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		m := newMidpoint(c.Radius)
		cx, cy := c.Center.X, c.Center.Y
		for {
			x, y := m.x, m.y
			spans := [4]Line{
				{Coord{cx + x, cy + y}, Coord{cx + x, cy - y}},
				{Coord{cx - x, cy + y}, Coord{cx - x, cy - y}},
				{Coord{cx + y, cy + x}, Coord{cx + y, cy - x}},
				{Coord{cx - y, cy + x}, Coord{cx - y, cy - x}},
			}
			for _, l := range spans {
				if !yield(l) {
					return
				}
			}
			if m.advance() {
				return
			}
		}
	}
}

// ForEach calls f for each cell of the filled disc.
func (c Circle) ForEach(f func(Coord)) {
	for p := range c.All() {
		f(p)
	}
}

// Circumference yields the outermost ring of cells.
func (c Circle) Circumference() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for p := range Drain(c.CircumferenceIter()) {
			if !yield(p) {
				return
			}
		}
	}
}

// ForEachCircumference calls f for each ring cell.
func (c Circle) ForEachCircumference(f func(Coord)) {
	for p := range c.Circumference() {
		f(p)
	}
}

// AABB returns [center-radius, center+radius] on both axes, computed
// directly rather than from the raster.
func (c Circle) AABB() Rectangle {
	r := int32(c.Radius)
	return NewRectangle(c.Center.X-r, c.Center.Y-r, c.Center.X+r, c.Center.Y+r)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle { center: (%d, %d), radius: %d }",
		c.Center.X, c.Center.Y, c.Radius)
}
