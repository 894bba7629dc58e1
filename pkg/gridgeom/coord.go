package gridgeom

import (
	"cmp"
	"fmt"
	"image"
	"iter"
)

// MaxExtent bounds |x|, |y| and radius for inputs that are guaranteed not
// to overflow: 2*(coordinate+radius) stays well inside int32.
const MaxExtent = 1 << 28

// Coord is a cell position on the grid.
type Coord struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

// FromPoint converts an image.Point. Values outside int32 are truncated.
func FromPoint(p image.Point) Coord {
	return Coord{X: int32(p.X), Y: int32(p.Y)}
}

// Point converts c to an image.Point.
func (c Coord) Point() image.Point {
	return image.Pt(int(c.X), int(c.Y))
}

// Position implements Positioner.
func (c Coord) Position() (x, y int32) {
	return c.X, c.Y
}

// Add returns c translated by o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns c translated by -o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Compare orders coordinates by X, then Y.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

// Less reports whether c sorts before o.
func (c Coord) Less(o Coord) bool {
	return c.Compare(o) < 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// InSafeRange reports whether both components are within MaxExtent.
func InSafeRange(c Coord) bool {
	return c.X >= -MaxExtent && c.X <= MaxExtent &&
		c.Y >= -MaxExtent && c.Y <= MaxExtent
}

// Positioner is implemented by coordinate types defined elsewhere (an
// existing grid-position type, for instance) that want to feed the
// rasterizers.
type Positioner interface {
	Position() (x, y int32)
}

// FromPositioner converts any Positioner to a Coord.
func FromPositioner(p Positioner) Coord {
	x, y := p.Position()
	return Coord{X: x, Y: y}
}

// Map converts a coordinate sequence into the caller's own position type.
func Map[P any](seq iter.Seq[Coord], f func(Coord) P) iter.Seq[P] {
	return func(yield func(P) bool) {
		for c := range seq {
			if !yield(f(c)) {
				return
			}
		}
	}
}

// Size is the extent of a rectangular region in cells.
type Size struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h uint32) Size {
	return Size{Width: w, Height: h}
}

// Area returns Width*Height.
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}

// IsEmpty reports whether the size covers no cells.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("(%d, %d)", s.Width, s.Height)
}
