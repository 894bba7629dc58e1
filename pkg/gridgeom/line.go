package gridgeom

import (
	"fmt"
	"iter"
)

// Line is a segment between two cells, inclusive of both.
type Line struct {
	Start Coord `json:"start"`
	End   Coord `json:"end"`
}

// NewLine returns the line from start to end.
func NewLine(start, end Coord) Line {
	return Line{Start: start, End: end}
}

// Len returns the number of cells on the rasterized line,
// max(|dx|, |dy|)+1. A degenerate line has length 1.
func (l Line) Len() uint32 {
	dx := int64(l.End.X) - int64(l.Start.X)
	dy := int64(l.End.Y) - int64(l.Start.Y)
	return uint32(max(abs64(dx), abs64(dy)) + 1)
}

// Translate returns the line moved by offset.
func (l Line) Translate(offset Coord) Line {
	return Line{Start: l.Start.Add(offset), End: l.End.Add(offset)}
}

// Iter returns a Bresenham iterator over the line.
func (l Line) Iter() *BresenhamLineIter {
	return NewBresenhamLineIter(l.Start, l.End)
}

// TunnelHorizontalVerticalIter returns the horizontal-first L-shaped path
// from Start to End.
func (l Line) TunnelHorizontalVerticalIter() *TunnelHorizontalVerticalLineIter {
	return NewTunnelHorizontalVerticalLineIter(l.Start, l.End)
}

// TunnelVerticalHorizontalIter returns the vertical-first L-shaped path
// from Start to End.
func (l Line) TunnelVerticalHorizontalIter() *TunnelVerticalHorizontalLineIter {
	return NewTunnelVerticalHorizontalLineIter(l.Start, l.End)
}

// All yields the Bresenham cells from Start to End.
func (l Line) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range Drain(l.Iter()) {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward yields the Bresenham cells from End to Start. These are the
// cells of All reversed, which may differ from the line drawn End to Start.
func (l Line) Backward() iter.Seq[Coord] {
	return backward(l.All())
}

// ForEach calls f for each cell of the line.
func (l Line) ForEach(f func(Coord)) {
	for c := range l.All() {
		f(c)
	}
}

// TunnelHorizontalVertical yields the horizontal-first tunnel.
func (l Line) TunnelHorizontalVertical() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range Drain(l.TunnelHorizontalVerticalIter()) {
			if !yield(c) {
				return
			}
		}
	}
}

// TunnelVerticalHorizontal yields the vertical-first tunnel.
func (l Line) TunnelVerticalHorizontal() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range Drain(l.TunnelVerticalHorizontalIter()) {
			if !yield(c) {
				return
			}
		}
	}
}

// TunnelOrder selects which leg of an L-shaped tunnel is walked first.
type TunnelOrder uint8

const (
	HorizontalFirst TunnelOrder = iota
	VerticalFirst
)

func (o TunnelOrder) String() string {
	if o == VerticalFirst {
		return "vertical-first"
	}
	return "horizontal-first"
}

// Toggle returns the other order.
func (o TunnelOrder) Toggle() TunnelOrder {
	if o == VerticalFirst {
		return HorizontalFirst
	}
	return VerticalFirst
}

// Tunnel yields the tunnel for order o.
func (l Line) Tunnel(o TunnelOrder) iter.Seq[Coord] {
	if o == VerticalFirst {
		return l.TunnelVerticalHorizontal()
	}
	return l.TunnelHorizontalVertical()
}

// ForEachTunnelHorizontalVertical calls f for each cell of the
// horizontal-first tunnel.
func (l Line) ForEachTunnelHorizontalVertical(f func(Coord)) {
	for c := range l.TunnelHorizontalVertical() {
		f(c)
	}
}

// ForEachTunnelVerticalHorizontal calls f for each cell of the
// vertical-first tunnel.
func (l Line) ForEachTunnelVerticalHorizontal(f func(Coord)) {
	for c := range l.TunnelVerticalHorizontal() {
		f(c)
	}
}

// AABB returns the rectangle spanned by the two endpoints.
func (l Line) AABB() Rectangle {
	return RectangleFromCorners(l.Start, l.End)
}

func (l Line) String() string {
	return fmt.Sprintf("Line { start: (%d, %d), end: (%d, %d) }",
		l.Start.X, l.Start.Y, l.End.X, l.End.Y)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
