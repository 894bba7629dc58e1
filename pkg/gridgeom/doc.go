// Package gridgeom rasterizes lines, circles and rectangles into
// sequences of integer grid coordinates.
//
// Every rasterizer is a small pull-based state machine: call Next until it
// reports false, or range over Drain(it). Iterators copy their inputs when
// they are built, keep no shared state and use integer arithmetic only, so
// the same input always yields the same points in the same order.
//
// Shapes (Line, Rectangle, Circle) are plain values that store only their
// defining fields and derive everything else by formula.
//
// Coordinates and radii whose magnitude is at most MaxExtent never overflow
// the int32 arithmetic used internally. Larger inputs are a precondition
// violation; circle iterators panic rather than wrap.
package gridgeom
