// Package tealayout computes named terminal regions and builds the
// common Lipgloss chrome layers (toolbar, footer, separator, modal) for
// Bubble Tea v2 apps.
//
// Regions are gridgeom rectangles in terminal cells: Position is the
// upper-left cell and rows grow downward.
package tealayout

import "github.com/wesen/gridshape/pkg/gridgeom"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect gridgeom.Rectangle
}

// Contains reports whether the terminal cell c lies inside the region.
func (r Region) Contains(c gridgeom.Coord) bool {
	return r.Rect.Contains(c)
}

// Local converts a terminal cell to region-local coordinates.
func (r Region) Local(c gridgeom.Coord) gridgeom.Coord {
	return c.Sub(r.Rect.Position)
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	left, right  int // columns consumed from left/right
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: max(termW, 0), termH: max(termH, 0)}
}

// span returns the rectangle [x0, x1) × [y0, y1), or an empty one when
// either extent is not positive.
func span(x0, y0, x1, y1 int) gridgeom.Rectangle {
	if x1 <= x0 || y1 <= y0 {
		return gridgeom.Rectangle{}
	}
	return gridgeom.RectangleFromSize(
		gridgeom.C(int32(x0), int32(y0)),
		gridgeom.Sz(uint32(x1-x0), uint32(y1-y0)),
	)
}

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.regions = append(b.regions, Region{Name: name, Rect: span(0, y, b.termW, y+height)})
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.regions = append(b.regions, Region{Name: name, Rect: span(0, y, b.termW, y+height)})
	b.bottom += height
	return b
}

// LeftFixed reserves columns from the left, between the top and bottom
// regions.
func (b *LayoutBuilder) LeftFixed(name string, width int) *LayoutBuilder {
	x := b.left
	b.regions = append(b.regions, Region{Name: name, Rect: span(x, b.top, x+width, b.termH-b.bottom)})
	b.left += width
	return b
}

// RightFixed reserves columns from the right, between the top and bottom
// regions.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	x := b.termW - b.right - width
	b.regions = append(b.regions, Region{Name: name, Rect: span(x, b.top, x+width, b.termH-b.bottom)})
	b.right += width
	return b
}

// Remaining assigns whatever is left after fixed allocations. A
// degenerate remainder becomes an empty rectangle.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	b.regions = append(b.regions, Region{
		Name: name,
		Rect: span(b.left, b.top, b.termW-b.right, b.termH-b.bottom),
	})
	return b
}

// Build returns the final Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		l.Regions[r.Name] = r
	}
	return l
}
