package gridgeom

import "iter"

// Shape is the capability set consumers such as grid stamping rely on.
type Shape interface {
	// All yields the shape's cells in rasterization order.
	All() iter.Seq[Coord]
	// Backward yields the same cells as All in reverse order.
	Backward() iter.Seq[Coord]
	// ForEach calls f for every cell yielded by All.
	ForEach(f func(Coord))
	// AABB returns the smallest axis-aligned rectangle containing the shape.
	AABB() Rectangle
}

var (
	_ Shape = Line{}
	_ Shape = Rectangle{}
	_ Shape = Circle{}
)
