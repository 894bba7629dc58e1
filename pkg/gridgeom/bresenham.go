package gridgeom

// BresenhamLineIter rasterizes a line with Bresenham's integer algorithm.
//
// The line is transposed into octant 0 (0 <= dy <= dx) so that a single
// stepping rule applies: x advances every step, y advances whenever the
// error term is non-negative. Points are mapped back to world space as they
// are emitted, so the walk always runs from start to end and yields
// exactly max(|dx|, |dy|)+1 points.
type BresenhamLineIter struct {
	absX, absY int32
	endX       int32
	deltaStep  int32
	deltaX     int32
	deltaY     int32
	octant     octant
}

// NewBresenhamLineIter returns an iterator over the cells from start to end.
func NewBresenhamLineIter(start, end Coord) *BresenhamLineIter {
	o := newOctant(start, end)

	sx, sy := o.toOffset(start)
	ex, ey := o.toOffset(end)

	deltaX := ex - sx
	deltaY := ey - sy

	return &BresenhamLineIter{
		absX:      sx,
		absY:      sy,
		endX:      ex,
		deltaStep: deltaY - deltaX,
		deltaX:    deltaX,
		deltaY:    deltaY,
		octant:    o,
	}
}

// Next returns the next cell of the line.
func (it *BresenhamLineIter) Next() (Coord, bool) {
	if it.absX > it.endX {
		return Coord{}, false
	}

	x, y := it.absX, it.absY
	if it.deltaStep >= 0 {
		it.absY++
		it.deltaStep -= it.deltaX
	}
	it.deltaStep += it.deltaY
	it.absX++

	return it.octant.fromOffset(x, y), true
}
