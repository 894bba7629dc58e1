package drawutil

import (
	"testing"

	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

func line(x0, y0, x1, y1 int32) gridgeom.Line {
	return gridgeom.NewLine(gridgeom.C(x0, y0), gridgeom.C(x1, y1))
}

// ── Glyphs ──

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int32
		want   rune
	}{
		{0, 1, '│'},
		{0, -1, '│'},
		{1, 0, '─'},
		{-1, 0, '─'},
		{1, 1, '\\'},
		{-1, -1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tc := range tests {
		if got := LineChar(gridgeom.C(tc.dx, tc.dy)); got != tc.want {
			t.Errorf("LineChar(%d,%d) = %c, want %c", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestArrowChar(t *testing.T) {
	tests := []struct {
		dx, dy int32
		want   rune
	}{
		{0, 1, '▼'},
		{0, -1, '▲'},
		{1, 0, '►'},
		{-1, 0, '◄'},
		{1, 5, '▼'},  // steep → vertical arrow
		{5, 1, '►'},  // shallow → horizontal arrow
		{-3, 1, '◄'}, // dx dominant
	}
	for _, tc := range tests {
		if got := ArrowChar(gridgeom.C(tc.dx, tc.dy)); got != tc.want {
			t.Errorf("ArrowChar(%d,%d) = %c, want %c", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestBoxChar(t *testing.T) {
	tests := []struct {
		mask int
		want rune
	}{
		{0, '·'},
		{Left | Right, '─'},
		{Up, '│'},
		{Down | Right, '┌'},
		{Up | Left, '┘'},
		{Up | Down | Left | Right, '┼'},
	}
	for _, tc := range tests {
		if got := BoxChar(tc.mask); got != tc.want {
			t.Errorf("BoxChar(%04b) = %c, want %c", tc.mask, got, tc.want)
		}
	}
}

// ── EdgeExit ──

func TestEdgeExit(t *testing.T) {
	r := gridgeom.RectangleFromSize(gridgeom.C(10, 10), gridgeom.Sz(10, 4)) // centre (14, 11)
	tests := []struct {
		name   string
		target gridgeom.Coord
		want   gridgeom.Coord
	}{
		{"right", gridgeom.C(50, 12), gridgeom.C(19, 11)},
		{"left", gridgeom.C(0, 12), gridgeom.C(10, 11)},
		{"below", gridgeom.C(15, 50), gridgeom.C(14, 13)},
		{"above", gridgeom.C(15, 0), gridgeom.C(14, 10)},
		{"centre", gridgeom.C(14, 11), gridgeom.C(14, 11)},
	}
	for _, tc := range tests {
		if got := EdgeExit(r, tc.target); got != tc.want {
			t.Errorf("%s: EdgeExit = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEdgeExitEmpty(t *testing.T) {
	r := gridgeom.RectangleFromSize(gridgeom.C(3, 4), gridgeom.Sz(0, 0))
	if got := EdgeExit(r, gridgeom.C(50, 50)); got != gridgeom.C(3, 4) {
		t.Fatalf("EdgeExit(empty) = %v", got)
	}
}

// ── Lines ──

func TestDrawLine(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawLine(buf, line(0, 0, 9, 0), 1)
	for x, c := range buf.Cells[0] {
		if c.Style != 1 || c.Ch != '─' {
			t.Errorf("cell (%d,0) = %c/%d, want ─/1", x, c.Ch, c.Style)
		}
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	buf := cellbuf.New(3, 3, 0)
	DrawLine(buf, line(0, 2, 2, 0), 1)
	want := "  /\n / \n/  "
	if buf.Plain() != want {
		t.Fatalf("Plain =\n%s\nwant\n%s", buf.Plain(), want)
	}
}

func TestDrawArrowLine(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawArrowLine(buf, line(5, 0, 5, 5), 1, 2)
	if c := buf.Cells[5][5]; c.Ch != '▼' || c.Style != 2 {
		t.Errorf("arrowhead = %c/%d, want ▼/2", c.Ch, c.Style)
	}
	if c := buf.Cells[2][5]; c.Ch != '│' || c.Style != 1 {
		t.Errorf("body = %c/%d, want │/1", c.Ch, c.Style)
	}
}

func TestDrawArrowLineSinglePoint(t *testing.T) {
	buf := cellbuf.New(3, 1, 0)
	DrawArrowLine(buf, line(1, 0, 1, 0), 1, 2)
	if c := buf.Cells[0][1]; c.Style != 2 {
		t.Fatalf("single-point arrow style = %d, want 2", c.Style)
	}
}

func TestDrawDashedLine(t *testing.T) {
	buf := cellbuf.New(20, 1, 0)
	DrawDashedLine(buf, line(0, 0, 19, 0), 1)
	drawn := 0
	for _, c := range buf.Cells[0] {
		if c.Style == 1 {
			drawn++
		}
	}
	// 20 points, indices 2,5,8,11,14,17 skipped
	if drawn != 14 {
		t.Errorf("dashed line: expected 14 drawn points, got %d", drawn)
	}
}

// ── Tunnels ──

func TestDrawTunnel(t *testing.T) {
	tests := []struct {
		order gridgeom.TunnelOrder
		want  string
	}{
		{gridgeom.HorizontalFirst, "───┐\n   │\n   │"},
		{gridgeom.VerticalFirst, "│   \n│   \n└───"},
	}
	for _, tc := range tests {
		buf := cellbuf.New(4, 3, 0)
		DrawTunnel(buf, line(0, 0, 3, 2), tc.order, 1)
		if buf.Plain() != tc.want {
			t.Errorf("%v:\n%s\nwant\n%s", tc.order, buf.Plain(), tc.want)
		}
	}
}

func TestTunnelPoints(t *testing.T) {
	if n := len(TunnelPoints(line(0, 0, 3, 2), gridgeom.VerticalFirst)); n != 7 {
		t.Fatalf("tunnel points = %d, want 7", n)
	}
}

// ── Rectangles and circles ──

func TestDrawBorder(t *testing.T) {
	tests := []struct {
		r    gridgeom.Rectangle
		want string
	}{
		{gridgeom.NewRectangle(0, 0, 3, 2), "┌──┐\n│  │\n└──┘"},
		{gridgeom.NewRectangle(0, 0, 3, 0), "────\n    \n    "},
		{gridgeom.NewRectangle(1, 0, 1, 2), " │  \n │  \n │  "},
		{gridgeom.NewRectangle(2, 1, 2, 1), "    \n  □ \n    "},
	}
	for _, tc := range tests {
		buf := cellbuf.New(4, 3, 0)
		DrawBorder(buf, tc.r, 1)
		if buf.Plain() != tc.want {
			t.Errorf("%v:\n%s\nwant\n%s", tc.r, buf.Plain(), tc.want)
		}
	}
}

func TestDrawRectDiscRing(t *testing.T) {
	buf := cellbuf.New(5, 5, 0)
	DrawRect(buf, gridgeom.NewRectangle(0, 0, 4, 4), '.', 0)
	DrawDisc(buf, gridgeom.NewCircle(gridgeom.C(2, 2), 1), '#', 1)
	DrawRing(buf, gridgeom.NewCircle(gridgeom.C(2, 2), 2), 'o', 2)
	want := "..o..\n.o#o.\no###o\n.o#o.\n..o.."
	if buf.Plain() != want {
		t.Fatalf("Plain =\n%s\nwant\n%s", buf.Plain(), want)
	}
}

func TestDrawClippedToBuffer(t *testing.T) {
	const e = gridgeom.MaxExtent
	huge := gridgeom.RectangleFromSize(gridgeom.C(-e, -e), gridgeom.Sz(2*e, 2*e))
	tests := []struct {
		name string
		draw func(*cellbuf.Buffer)
		want string
	}{
		{"rect", func(b *cellbuf.Buffer) { DrawRect(b, huge, '#', 1) }, "####\n####\n####"},
		{"border off screen", func(b *cellbuf.Buffer) { DrawBorder(b, huge, 1) }, "    \n    \n    "},
		{"border edge", func(b *cellbuf.Buffer) {
			DrawBorder(b, gridgeom.NewRectangle(2, -e, e, e), 1)
		}, "  │ \n  │ \n  │ "},
		{"disc", func(b *cellbuf.Buffer) {
			DrawDisc(b, gridgeom.NewCircle(gridgeom.C(0, 0), 1<<20), '#', 1)
		}, "####\n####\n####"},
		{"ring bottom", func(b *cellbuf.Buffer) {
			DrawRing(b, gridgeom.NewCircle(gridgeom.C(1, 1+1<<20), 1<<20), 'o', 1)
		}, "    \noooo\n    "},
	}
	for _, tc := range tests {
		buf := cellbuf.New(4, 3, 0)
		tc.draw(buf)
		if buf.Plain() != tc.want {
			t.Errorf("%s:\n%s\nwant\n%s", tc.name, buf.Plain(), tc.want)
		}
	}
}

func TestDrawLineStreamsGlyphs(t *testing.T) {
	buf := cellbuf.New(4, 4, 0)
	DrawLine(buf, line(0, 0, 3, 3), 1)
	DrawLine(buf, line(3, 0, 3, 0), 1)
	want := "\\  │\n \\  \n  \\ \n   \\"
	if buf.Plain() != want {
		t.Fatalf("Plain =\n%s\nwant\n%s", buf.Plain(), want)
	}
}

func TestDrawLabel(t *testing.T) {
	buf := cellbuf.New(10, 1, 0)
	DrawLabel(buf, gridgeom.NewRectangle(0, 0, 9, 0), 0, "hi", 1)
	if buf.Plain() != "    hi    " {
		t.Fatalf("Plain = %q", buf.Plain())
	}
	buf = cellbuf.New(5, 1, 0)
	DrawLabel(buf, gridgeom.NewRectangle(1, 0, 3, 0), 0, "hello", 1)
	if buf.Plain() != " hel " {
		t.Fatalf("truncated Plain = %q", buf.Plain())
	}
}

// ── Background grid ──

func TestDrawGrid(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	DrawGrid(buf, gridgeom.Coord{}, gridgeom.Sz(5, 3), 1)
	for _, x := range []int{0, 5, 10, 15} {
		if buf.Cells[0][x].Ch != '·' {
			t.Errorf("expected dot at (%d,0), got %c", x, buf.Cells[0][x].Ch)
		}
	}
	if buf.Cells[0][1].Ch == '·' {
		t.Error("unexpected dot at (1,0)")
	}
	if buf.Cells[3][0].Ch != '·' {
		t.Error("expected dot at (0,3)")
	}
	if buf.Cells[1][0].Ch == '·' {
		t.Error("unexpected dot at (0,1)")
	}
}

func TestDrawGridWithCamera(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	DrawGrid(buf, gridgeom.C(2, 1), gridgeom.Sz(5, 3), 1)
	// World (2,1) is buffer (0,0).
	if buf.Cells[0][0].Ch == '·' {
		t.Error("unexpected dot at buf(0,0) = world(2,1)")
	}
	// World (5,3) is buffer (3,2).
	if buf.Cells[2][3].Ch != '·' {
		t.Error("expected dot at buf(3,2) = world(5,3)")
	}
}

func TestDrawGridNegativeCamera(t *testing.T) {
	buf := cellbuf.New(6, 1, 0)
	DrawGrid(buf, gridgeom.C(-3, 0), gridgeom.Sz(3, 1), 1)
	if buf.Plain() != "·  ·  " {
		t.Fatalf("Plain = %q", buf.Plain())
	}
}

func BenchmarkDrawLargeRect(b *testing.B) {
	buf := cellbuf.New(60, 30, 0)
	r := gridgeom.RectangleFromSize(gridgeom.C(-10000, -10000), gridgeom.Sz(20000, 20000))
	for b.Loop() {
		DrawRect(buf, r, '#', 1)
		DrawBorder(buf, r, 1)
	}
}

func BenchmarkDrawLargeDisc(b *testing.B) {
	buf := cellbuf.New(60, 30, 0)
	c := gridgeom.NewCircle(gridgeom.C(30, 15), 10000)
	for b.Loop() {
		DrawDisc(buf, c, '#', 1)
	}
}
