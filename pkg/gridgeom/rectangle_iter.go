package gridgeom

// RectangleIter fills a rectangle in row-major order: every x of row 0,
// then row 1, and so on. A zero width or height yields nothing.
type RectangleIter struct {
	position      Coord
	offX, offY    int64
	width, height int64
}

// NewRectangleIter returns an iterator over the size.Width*size.Height
// cells whose minimum corner is position.
func NewRectangleIter(position Coord, size Size) *RectangleIter {
	return &RectangleIter{
		position: position,
		width:    int64(size.Width),
		height:   int64(size.Height),
	}
}

// Next returns the next cell of the rectangle.
func (it *RectangleIter) Next() (Coord, bool) {
	if it.width == 0 || it.offY >= it.height {
		return Coord{}, false
	}

	c := Coord{X: it.position.X + int32(it.offX), Y: it.position.Y + int32(it.offY)}

	it.offX++
	if it.offX >= it.width {
		it.offX = 0
		it.offY++
	}
	return c, true
}

// RectangleBorderIter walks the outermost ring of a rectangle, row by row.
// The first and last rows are emitted in full; every other row contributes
// its first and last column. Each cell is emitted once, so a rectangle
// that is at most two cells wide or tall yields the same cells as
// RectangleIter.
type RectangleBorderIter struct {
	position      Coord
	offX, offY    int64
	width, height int64
}

// NewRectangleBorderIter returns an iterator over the border of the
// rectangle at position with the given size.
func NewRectangleBorderIter(position Coord, size Size) *RectangleBorderIter {
	return &RectangleBorderIter{
		position: position,
		width:    int64(size.Width),
		height:   int64(size.Height),
	}
}

// Next returns the next border cell.
func (it *RectangleBorderIter) Next() (Coord, bool) {
	if it.width == 0 || it.offY >= it.height {
		return Coord{}, false
	}

	c := Coord{X: it.position.X + int32(it.offX), Y: it.position.Y + int32(it.offY)}

	lastX := it.width - 1
	switch {
	case it.offY == 0 || it.offY == it.height-1:
		it.offX++
	case it.offX == 0 && lastX > 0:
		it.offX = lastX
	default:
		it.offX = it.width
	}
	if it.offX >= it.width {
		it.offX = 0
		it.offY++
	}
	return c, true
}
