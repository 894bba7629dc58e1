package drawutil

import (
	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

// DrawGrid puts a '·' on every buffer cell whose world coordinate
// (buffer cell + cam) is a multiple of spacing on both axes.
func DrawGrid(buf *cellbuf.Buffer, cam gridgeom.Coord, spacing gridgeom.Size, style cellbuf.StyleKey) {
	sx, sy := int32(spacing.Width), int32(spacing.Height)
	for c := range buf.Bounds().All() {
		w := c.Add(cam)
		if mod(w.X, sx) == 0 && mod(w.Y, sy) == 0 {
			buf.Set(c, '·', style)
		}
	}
}

// mod returns a non-negative modulus.
func mod(a, m int32) int32 {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
