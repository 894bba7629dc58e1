package drawutil

import "github.com/wesen/gridshape/pkg/gridgeom"

// EdgeExit returns the cell on the edge of r facing target. The side is
// chosen by comparing |dx|/width with |dy|/height, cross-multiplied so the
// whole computation stays in integers.
//
// For an empty rectangle, or a target at the centre, the centre is
// returned.
func EdgeExit(r gridgeom.Rectangle, target gridgeom.Coord) gridgeom.Coord {
	center := r.Center()
	if r.IsEmpty() {
		return r.Position
	}
	d := target.Sub(center)
	if d == (gridgeom.Coord{}) {
		return center
	}

	horizontal := int64(abs(d.X))*int64(r.Height()) > int64(abs(d.Y))*int64(r.Width())
	if horizontal {
		if d.X > 0 {
			return gridgeom.C(r.Right(), center.Y)
		}
		return gridgeom.C(r.Left(), center.Y)
	}
	if d.Y > 0 {
		return gridgeom.C(center.X, r.Top())
	}
	return gridgeom.C(center.X, r.Bottom())
}
