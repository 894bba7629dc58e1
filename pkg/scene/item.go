// Package scene holds an ordered collection of placed shapes ("items")
// joined by L-shaped corridors, with stable insertion-order iteration,
// hit testing and stamping onto any grid.Target.
package scene

import (
	"errors"
	"fmt"
	"iter"

	"github.com/wesen/gridshape/pkg/gridgeom"
)

// Kind says how an item's shape is rasterized.
type Kind int

const (
	KindLine   Kind = iota // Bresenham line
	KindRect               // filled rectangle
	KindBorder             // rectangle outline
	KindDisc               // filled circle
	KindRing               // circle circumference
)

var kindNames = [...]string{"line", "rect", "border", "disc", "ring"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Sentinel errors for the scene package.
var (
	ErrUnknownKind  = errors.New("scene: unknown kind")
	ErrKindMismatch = errors.New("scene: shape does not match kind")
	ErrOutOfRange   = errors.New("scene: shape outside the safe coordinate range")
	ErrNoItem       = errors.New("scene: no such item")
	ErrSelfCorridor = errors.New("scene: corridor must join two different items")
)

// Item is a shape placed in the scene.
type Item struct {
	ID    int
	Kind  Kind
	Shape gridgeom.Shape // gridgeom.Line, gridgeom.Rectangle or gridgeom.Circle
	Label string
}

// NewLine returns an unplaced line item.
func NewLine(l gridgeom.Line, label string) Item {
	return Item{Kind: KindLine, Shape: l, Label: label}
}

// NewRect returns an unplaced filled-rectangle item.
func NewRect(r gridgeom.Rectangle, label string) Item {
	return Item{Kind: KindRect, Shape: r, Label: label}
}

// NewBorder returns an unplaced rectangle-outline item.
func NewBorder(r gridgeom.Rectangle, label string) Item {
	return Item{Kind: KindBorder, Shape: r, Label: label}
}

// NewDisc returns an unplaced filled-circle item.
func NewDisc(c gridgeom.Circle, label string) Item {
	return Item{Kind: KindDisc, Shape: c, Label: label}
}

// NewRing returns an unplaced circumference item.
func NewRing(c gridgeom.Circle, label string) Item {
	return Item{Kind: KindRing, Shape: c, Label: label}
}

// Validate checks that the shape matches the kind and that every
// coordinate it can produce stays within gridgeom.MaxExtent.
func (it Item) Validate() error {
	switch s := it.Shape.(type) {
	case gridgeom.Line:
		if it.Kind != KindLine {
			return fmt.Errorf("%w: %v with line", ErrKindMismatch, it.Kind)
		}
		if !gridgeom.InSafeRange(s.Start) || !gridgeom.InSafeRange(s.End) {
			return fmt.Errorf("%w: %v", ErrOutOfRange, s)
		}
	case gridgeom.Rectangle:
		if it.Kind != KindRect && it.Kind != KindBorder {
			return fmt.Errorf("%w: %v with rectangle", ErrKindMismatch, it.Kind)
		}
		if s.Size.Width > gridgeom.MaxExtent || s.Size.Height > gridgeom.MaxExtent ||
			!gridgeom.InSafeRange(s.Position) || !gridgeom.InSafeRange(s.Max()) {
			return fmt.Errorf("%w: %v", ErrOutOfRange, s)
		}
	case gridgeom.Circle:
		if it.Kind != KindDisc && it.Kind != KindRing {
			return fmt.Errorf("%w: %v with circle", ErrKindMismatch, it.Kind)
		}
		if !gridgeom.RadiusInSafeRange(s.Radius) || !gridgeom.InSafeRange(s.Center) ||
			!gridgeom.InSafeRange(s.AABB().Min()) || !gridgeom.InSafeRange(s.AABB().Max()) {
			return fmt.Errorf("%w: %v", ErrOutOfRange, s)
		}
	default:
		return fmt.Errorf("%w: %T", ErrKindMismatch, it.Shape)
	}
	return nil
}

// Cells yields the cells the item covers in rasterization order.
func (it Item) Cells() iter.Seq[gridgeom.Coord] {
	switch it.Kind {
	case KindBorder:
		return it.Shape.(gridgeom.Rectangle).Border()
	case KindRing:
		return it.Shape.(gridgeom.Circle).Circumference()
	}
	return it.Shape.All()
}

// Bounds returns the item's axis-aligned bounding box.
func (it Item) Bounds() gridgeom.Rectangle { return it.Shape.AABB() }

// Center returns the centre cell of the bounding box.
func (it Item) Center() gridgeom.Coord { return it.Bounds().Center() }

// Covers reports whether c is one of the item's cells. After a bounds
// check rectangles answer directly, circles walk their O(radius) spans and
// lines rasterize.
func (it Item) Covers(c gridgeom.Coord) bool {
	b := it.Bounds()
	if !b.Contains(c) {
		return false
	}
	switch it.Kind {
	case KindRect:
		return true
	case KindBorder:
		return c.X == b.Left() || c.X == b.Right() || c.Y == b.Bottom() || c.Y == b.Top()
	case KindDisc:
		return it.Shape.(gridgeom.Circle).Contains(c)
	case KindRing:
		for l := range it.Shape.(gridgeom.Circle).Spans() {
			if l.Start == c || l.End == c {
				return true
			}
		}
		return false
	}
	for p := range it.Cells() {
		if p == c {
			return true
		}
	}
	return false
}

// Translated returns a copy of the item moved by offset.
func (it Item) Translated(offset gridgeom.Coord) Item {
	switch s := it.Shape.(type) {
	case gridgeom.Line:
		it.Shape = s.Translate(offset)
	case gridgeom.Rectangle:
		it.Shape = s.Translate(offset)
	case gridgeom.Circle:
		it.Shape = s.Translate(offset)
	}
	return it
}

func (it Item) String() string {
	if it.Label != "" {
		return fmt.Sprintf("#%d %s %q %v", it.ID, it.Kind, it.Label, it.Shape)
	}
	return fmt.Sprintf("#%d %s %v", it.ID, it.Kind, it.Shape)
}
