package gridgeom

// TunnelHorizontalVerticalLineIter walks an L-shaped path: first along x at
// the start row, then along y at the end column. Both legs run in
// ascending order.
//
// The corner cell belongs to both legs and is emitted twice. Callers that
// stamp onto a grid are unaffected; callers that count points see
// (|dx|+1)+(|dy|+1).
type TunnelHorizontalVerticalLineIter struct {
	start, end Coord
	x, y       *LinearIter
}

// NewTunnelHorizontalVerticalLineIter returns the horizontal-first tunnel
// from start to end.
func NewTunnelHorizontalVerticalLineIter(start, end Coord) *TunnelHorizontalVerticalLineIter {
	return &TunnelHorizontalVerticalLineIter{
		start: start,
		end:   end,
		x:     NewLinearIter(start.X, end.X),
		y:     NewLinearIter(start.Y, end.Y),
	}
}

// Next returns the next cell of the tunnel.
func (it *TunnelHorizontalVerticalLineIter) Next() (Coord, bool) {
	if x, ok := it.x.Next(); ok {
		return Coord{X: x, Y: it.start.Y}, true
	}
	if y, ok := it.y.Next(); ok {
		return Coord{X: it.end.X, Y: y}, true
	}
	return Coord{}, false
}

// TunnelVerticalHorizontalLineIter is the vertical-first counterpart of
// TunnelHorizontalVerticalLineIter: along y at the start column, then
// along x at the end row. The corner is emitted twice here too.
type TunnelVerticalHorizontalLineIter struct {
	start, end Coord
	x, y       *LinearIter
}

// NewTunnelVerticalHorizontalLineIter returns the vertical-first tunnel
// from start to end.
func NewTunnelVerticalHorizontalLineIter(start, end Coord) *TunnelVerticalHorizontalLineIter {
	return &TunnelVerticalHorizontalLineIter{
		start: start,
		end:   end,
		x:     NewLinearIter(start.X, end.X),
		y:     NewLinearIter(start.Y, end.Y),
	}
}

// Next returns the next cell of the tunnel.
func (it *TunnelVerticalHorizontalLineIter) Next() (Coord, bool) {
	if y, ok := it.y.Next(); ok {
		return Coord{X: it.start.X, Y: y}, true
	}
	if x, ok := it.x.Next(); ok {
		return Coord{X: x, Y: it.end.Y}, true
	}
	return Coord{}, false
}
