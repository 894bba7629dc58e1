package gridgeom

// octant identifies which of the eight symmetric transformations maps a
// line direction onto octant 0, where 0 <= dy <= dx.
//
// Adapted from http://codereview.stackexchange.com/a/95551.
type octant uint8

func newOctant(start, end Coord) octant {
	dx := end.X - start.X
	dy := end.Y - start.Y
	var o octant
	if dy < 0 {
		dx, dy = -dx, -dy
		o += 4
	}
	if dx < 0 {
		dx, dy = dy, -dx
		o += 2
	}
	if dx < dy {
		o++
	}
	return o
}

// toOffset maps a world coordinate into octant-0 space.
func (o octant) toOffset(c Coord) (int32, int32) {
	switch o {
	case 0:
		return c.X, c.Y
	case 1:
		return c.Y, c.X
	case 2:
		return c.Y, -c.X
	case 3:
		return -c.X, c.Y
	case 4:
		return -c.X, -c.Y
	case 5:
		return -c.Y, -c.X
	case 6:
		return -c.Y, c.X
	case 7:
		return c.X, -c.Y
	}
	panic("gridgeom: invalid octant")
}

// fromOffset is the inverse of toOffset.
func (o octant) fromOffset(x, y int32) Coord {
	switch o {
	case 0:
		return Coord{X: x, Y: y}
	case 1:
		return Coord{X: y, Y: x}
	case 2:
		return Coord{X: -y, Y: x}
	case 3:
		return Coord{X: -x, Y: y}
	case 4:
		return Coord{X: -x, Y: -y}
	case 5:
		return Coord{X: -y, Y: -x}
	case 6:
		return Coord{X: y, Y: -x}
	case 7:
		return Coord{X: x, Y: -y}
	}
	panic("gridgeom: invalid octant")
}
