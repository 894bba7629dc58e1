package grid

import (
	"iter"

	"github.com/wesen/gridshape/pkg/gridgeom"
)

// CopyFromSeq writes value at every coordinate of seq shifted by offset.
// Cells that land outside dst are skipped. It returns the number of
// writes; a coordinate yielded twice is written twice.
func CopyFromSeq[T any](dst Target[T], seq iter.Seq[gridgeom.Coord], offset gridgeom.Coord, value T) int {
	written, clipped := 0, 0
	for c := range seq {
		p := dst.At(c.Add(offset))
		if p == nil {
			clipped++
			continue
		}
		*p = value
		written++
	}
	Logger().Debug("grid: stamp", "written", written, "clipped", clipped, "offset", offset)
	return written
}

// CopyFromShape stamps the cells of s.
func CopyFromShape[T any](dst Target[T], s gridgeom.Shape, offset gridgeom.Coord, value T) int {
	return CopyFromSeq(dst, s.All(), offset, value)
}

// CopyFromRectangleBorder stamps only the outermost ring of r.
func CopyFromRectangleBorder[T any](dst Target[T], r gridgeom.Rectangle, offset gridgeom.Coord, value T) int {
	return CopyFromSeq(dst, r.Border(), offset, value)
}

// CopyFromCircleCircumference stamps only the outermost ring of c.
func CopyFromCircleCircumference[T any](dst Target[T], c gridgeom.Circle, offset gridgeom.Coord, value T) int {
	return CopyFromSeq(dst, c.Circumference(), offset, value)
}

// CopyFromLineTunnelHorizontalVertical stamps the L-shaped tunnel that
// runs horizontally first.
func CopyFromLineTunnelHorizontalVertical[T any](dst Target[T], l gridgeom.Line, offset gridgeom.Coord, value T) int {
	return CopyFromSeq(dst, l.TunnelHorizontalVertical(), offset, value)
}

// CopyFromLineTunnelVerticalHorizontal stamps the L-shaped tunnel that
// runs vertically first.
func CopyFromLineTunnelVerticalHorizontal[T any](dst Target[T], l gridgeom.Line, offset gridgeom.Coord, value T) int {
	return CopyFromSeq(dst, l.TunnelVerticalHorizontal(), offset, value)
}

// ReadSeq yields the in-bounds cells of seq shifted by offset, paired with
// their values in src.
func ReadSeq[T any](src Source[T], seq iter.Seq[gridgeom.Coord], offset gridgeom.Coord) iter.Seq2[gridgeom.Coord, T] {
	return func(yield func(gridgeom.Coord, T) bool) {
		for c := range seq {
			p := c.Add(offset)
			v, ok := src.Get(p)
			if !ok {
				continue
			}
			if !yield(p, v) {
				return
			}
		}
	}
}

// ReadShape yields the in-bounds cells of s shifted by offset.
func ReadShape[T any](src Source[T], s gridgeom.Shape, offset gridgeom.Coord) iter.Seq2[gridgeom.Coord, T] {
	return ReadSeq(src, s.All(), offset)
}
