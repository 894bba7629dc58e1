package drawutil

import (
	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
)

// Fill glyphs per item kind. Lines and borders use direction-aware
// glyphs instead.
const (
	RectFill = '▒'
	DiscFill = '░'
	RingMark = 'o'
)

// SceneStyle picks the style keys DrawScene uses.
type SceneStyle struct {
	Item     func(*scene.Item) cellbuf.StyleKey
	Corridor cellbuf.StyleKey
	Label    cellbuf.StyleKey
}

// DrawItem draws a single item in buffer coordinates.
func DrawItem(buf *cellbuf.Buffer, it scene.Item, style cellbuf.StyleKey) {
	switch s := it.Shape.(type) {
	case gridgeom.Line:
		DrawLine(buf, s, style)
	case gridgeom.Rectangle:
		if it.Kind == scene.KindBorder {
			DrawBorder(buf, s, style)
		} else {
			DrawRect(buf, s, RectFill, style)
		}
	case gridgeom.Circle:
		if it.Kind == scene.KindRing {
			DrawRing(buf, s, RingMark, style)
		} else {
			DrawDisc(buf, s, DiscFill, style)
		}
	}
}

// DrawScene draws the part of s visible through a buffer-sized window
// whose upper-left world cell is cam. Corridors go first, then items in
// draw order, then labels centred on each item's bounds.
func DrawScene(buf *cellbuf.Buffer, s *scene.Scene, cam gridgeom.Coord, st SceneStyle) {
	view := gridgeom.RectangleFromSize(cam, gridgeom.Sz(uint32(buf.W), uint32(buf.H)))
	shift := gridgeom.Coord{}.Sub(cam)

	for _, c := range s.Corridors() {
		l, ok := s.CorridorLine(c)
		if !ok || !l.AABB().Intersects(view) {
			continue
		}
		DrawTunnel(buf, l.Translate(shift), c.Order, st.Corridor)
	}

	visible := s.ItemsInRect(view)
	for _, it := range visible {
		style := st.Corridor
		if st.Item != nil {
			style = st.Item(it)
		}
		DrawItem(buf, it.Translated(shift), style)
	}
	for _, it := range visible {
		if it.Label == "" {
			continue
		}
		b := it.Bounds().Translate(shift)
		DrawLabel(buf, b, b.Center().Y, it.Label, st.Label)
	}
}
