package gridgeom

import "iter"

// Iterator is the pull interface every rasterizer implements. Next returns
// the next coordinate, or false once the iterator is exhausted; after that
// it keeps returning false.
type Iterator interface {
	Next() (Coord, bool)
}

// Drain adapts a pull iterator to a range-over-func sequence. The sequence
// consumes it: ranging twice yields the remaining points only once.
func Drain(it Iterator) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect(it Iterator) []Coord {
	var pts []Coord
	for {
		c, ok := it.Next()
		if !ok {
			return pts
		}
		pts = append(pts, c)
	}
}

// backward yields the points of seq in reverse order. Rasterizers only
// step forward, so the points are materialized first.
func backward(seq iter.Seq[Coord]) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		var pts []Coord
		for c := range seq {
			pts = append(pts, c)
		}
		for i := len(pts) - 1; i >= 0; i-- {
			if !yield(pts[i]) {
				return
			}
		}
	}
}
