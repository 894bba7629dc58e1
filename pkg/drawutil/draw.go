package drawutil

import (
	"slices"

	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

// TunnelPoints returns the cells of the L-shaped tunnel for l in order o.
func TunnelPoints(l gridgeom.Line, o gridgeom.TunnelOrder) []gridgeom.Coord {
	return slices.Collect(l.Tunnel(o))
}

// pointChar picks the glyph for pts[i] from the step to its successor, or
// from its predecessor for the last point.
func pointChar(pts []gridgeom.Coord, i int) rune {
	var d gridgeom.Coord
	if i < len(pts)-1 {
		d = pts[i+1].Sub(pts[i])
	} else if i > 0 {
		d = pts[i].Sub(pts[i-1])
	}
	return LineChar(d)
}

// DrawLine draws a Bresenham line with per-point glyphs. Points are
// streamed, so a long line costs its length but no memory.
func DrawLine(buf *cellbuf.Buffer, l gridgeom.Line, style cellbuf.StyleKey) {
	var prev, d gridgeom.Coord
	first := true
	for p := range l.All() {
		if !first {
			d = p.Sub(prev)
			buf.Set(prev, LineChar(d), style)
		}
		prev, first = p, false
	}
	if !first {
		buf.Set(prev, LineChar(d), style)
	}
}

// DrawArrowLine draws a line with an arrowhead at its end. The body uses
// lineStyle and the head arrowStyle.
func DrawArrowLine(buf *cellbuf.Buffer, l gridgeom.Line, lineStyle, arrowStyle cellbuf.StyleKey) {
	pts := slices.Collect(l.All())
	last := len(pts) - 1
	for i, p := range pts[:last] {
		buf.Set(p, pointChar(pts, i), lineStyle)
	}
	var d gridgeom.Coord
	if last > 0 {
		d = pts[last].Sub(pts[last-1])
	}
	buf.Set(pts[last], ArrowChar(d), arrowStyle)
}

// DrawDashedLine draws a line skipping every third point. Used for
// drag previews.
func DrawDashedLine(buf *cellbuf.Buffer, l gridgeom.Line, style cellbuf.StyleKey) {
	pts := slices.Collect(l.All())
	for i, p := range pts {
		if i%3 != 2 {
			buf.Set(p, pointChar(pts, i), style)
		}
	}
}

// DrawTunnel draws the L-shaped tunnel for l with box glyphs, so the
// corner gets a proper elbow.
func DrawTunnel(buf *cellbuf.Buffer, l gridgeom.Line, o gridgeom.TunnelOrder, style cellbuf.StyleKey) {
	pts := TunnelPoints(l, o)
	set := make(map[gridgeom.Coord]struct{}, len(pts))
	for _, p := range pts {
		set[p] = struct{}{}
	}
	for p := range set {
		buf.Set(p, BoxChar(neighbourMask(set, p)), style)
	}
}

// DrawBorder draws the outline of r with box corners. A one-cell-wide or
// one-cell-tall rectangle is drawn as a straight bar. Only the edge cells
// inside buf are visited.
func DrawBorder(buf *cellbuf.Buffer, r gridgeom.Rectangle, style cellbuf.StyleKey) {
	if r.IsEmpty() {
		return
	}
	view := buf.Bounds()
	edges := [4]gridgeom.Rectangle{
		gridgeom.NewRectangle(r.Left(), r.Bottom(), r.Right(), r.Bottom()),
		gridgeom.NewRectangle(r.Left(), r.Top(), r.Right(), r.Top()),
		gridgeom.NewRectangle(r.Left(), r.Bottom(), r.Left(), r.Top()),
		gridgeom.NewRectangle(r.Right(), r.Bottom(), r.Right(), r.Top()),
	}
	for _, e := range edges {
		for p := range e.Intersect(view).All() {
			buf.Set(p, borderChar(r, p), style)
		}
	}
}

func borderChar(r gridgeom.Rectangle, p gridgeom.Coord) rune {
	w, h := r.Width(), r.Height()
	switch {
	case w == 1 && h == 1:
		return '□'
	case h == 1:
		return '─'
	case w == 1:
		return '│'
	}
	// Rows grow downward: the minimum y is the upper edge on screen.
	upper, lower := p.Y == r.Bottom(), p.Y == r.Top()
	left, right := p.X == r.Left(), p.X == r.Right()
	switch {
	case upper && left:
		return '┌'
	case upper && right:
		return '┐'
	case lower && left:
		return '└'
	case lower && right:
		return '┘'
	case upper, lower:
		return '─'
	}
	return '│'
}

// DrawRect fills the part of r inside buf with ch.
func DrawRect(buf *cellbuf.Buffer, r gridgeom.Rectangle, ch rune, style cellbuf.StyleKey) {
	buf.Paint(r.Intersect(buf.Bounds()).All(), ch, style)
}

// DrawDisc fills the part of c inside buf with ch. The disc is walked as
// vertical spans, each clipped to buf, so cost grows with the radius and
// the visible area rather than the disc's area.
func DrawDisc(buf *cellbuf.Buffer, c gridgeom.Circle, ch rune, style cellbuf.StyleKey) {
	view := buf.Bounds()
	for l := range c.Spans() {
		if l.Start.X < view.Left() || l.Start.X > view.Right() {
			continue
		}
		for p := range l.AABB().Intersect(view).All() {
			buf.Set(p, ch, style)
		}
	}
}

// DrawRing draws the circumference of c with ch. Ring cells are the span
// ends of the disc, so no cell set is kept.
func DrawRing(buf *cellbuf.Buffer, c gridgeom.Circle, ch rune, style cellbuf.StyleKey) {
	for l := range c.Spans() {
		buf.Set(l.Start, ch, style)
		buf.Set(l.End, ch, style)
	}
}

// DrawLabel writes s centred horizontally on row y of r, clipped to r.
func DrawLabel(buf *cellbuf.Buffer, r gridgeom.Rectangle, y int32, s string, style cellbuf.StyleKey) {
	runes := []rune(s)
	if int64(len(runes)) > int64(r.Width()) {
		runes = runes[:r.Width()]
	}
	x := r.Left() + (int32(r.Width())-int32(len(runes)))/2
	buf.SetString(gridgeom.C(x, y), string(runes), style)
}
