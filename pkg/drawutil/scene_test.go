package drawutil

import (
	"strings"
	"testing"
	"time"

	"github.com/wesen/gridshape/pkg/cellbuf"
	"github.com/wesen/gridshape/pkg/gridgeom"
	"github.com/wesen/gridshape/pkg/scene"
)

func twoRooms(t *testing.T) (*scene.Scene, int, int) {
	t.Helper()
	s := scene.New()
	a, err := s.Add(scene.NewRect(gridgeom.NewRectangle(0, 0, 2, 2), ""))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Add(scene.NewRect(gridgeom.NewRectangle(6, 3, 8, 5), "b"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Connect(a, b, gridgeom.HorizontalFirst); err != nil {
		t.Fatal(err)
	}
	return s, a, b
}

func TestDrawItemKinds(t *testing.T) {
	tests := []struct {
		it   scene.Item
		want string
	}{
		{scene.NewLine(line(0, 1, 2, 1), ""), "   \n───\n   "},
		{scene.NewRect(gridgeom.NewRectangle(0, 0, 1, 1), ""), "▒▒ \n▒▒ \n   "},
		{scene.NewBorder(gridgeom.NewRectangle(0, 0, 2, 2), ""), "┌─┐\n│ │\n└─┘"},
		{scene.NewDisc(gridgeom.NewCircle(gridgeom.C(1, 1), 1), ""), " ░ \n░░░\n ░ "},
		{scene.NewRing(gridgeom.NewCircle(gridgeom.C(1, 1), 1), ""), " o \no o\n o "},
	}
	for _, tc := range tests {
		buf := cellbuf.New(3, 3, 0)
		DrawItem(buf, tc.it, 1)
		if buf.Plain() != tc.want {
			t.Errorf("%v:\n%s\nwant\n%s", tc.it.Kind, buf.Plain(), tc.want)
		}
	}
}

func TestDrawScene(t *testing.T) {
	s, _, _ := twoRooms(t)
	buf := cellbuf.New(9, 6, 0)
	DrawScene(buf, s, gridgeom.Coord{}, SceneStyle{Corridor: 1, Label: 2})

	want := strings.Join([]string{
		"▒▒▒      ",
		"▒▒▒────┐ ",
		"▒▒▒    │ ",
		"      ▒▒▒",
		"      ▒b▒",
		"      ▒▒▒",
	}, "\n")
	if buf.Plain() != want {
		t.Fatalf("Plain =\n%s\nwant\n%s", buf.Plain(), want)
	}
	if got := buf.Cells[4][7].Style; got != 2 {
		t.Errorf("label style = %d, want 2", got)
	}
}

func TestDrawSceneCamera(t *testing.T) {
	s, a, b := twoRooms(t)
	var seen []int
	st := SceneStyle{
		Item: func(it *scene.Item) cellbuf.StyleKey {
			seen = append(seen, it.ID)
			return 3
		},
		Corridor: 1,
		Label:    2,
	}
	buf := cellbuf.New(3, 3, 0)
	DrawScene(buf, s, gridgeom.C(6, 3), st)

	if want := "▒▒▒\n▒b▒\n▒▒▒"; buf.Plain() != want {
		t.Fatalf("Plain =\n%s\nwant\n%s", buf.Plain(), want)
	}
	if len(seen) != 1 || seen[0] != b {
		t.Errorf("styled items = %v, want only %d (item %d is off screen)", seen, b, a)
	}
	if got := buf.Cells[0][0].Style; got != 3 {
		t.Errorf("item style = %d, want 3", got)
	}
}

func TestDrawSceneEmpty(t *testing.T) {
	buf := cellbuf.New(4, 2, 0)
	DrawScene(buf, scene.New(), gridgeom.C(-10, 7), SceneStyle{})
	if buf.Plain() != "    \n    " {
		t.Fatalf("Plain = %q", buf.Plain())
	}
}

func TestDrawSceneLargeItemsClipped(t *testing.T) {
	s := scene.New()
	items := []scene.Item{
		scene.NewRect(gridgeom.RectangleFromSize(gridgeom.C(-1<<27, -1<<27), gridgeom.Sz(1<<28, 1<<28)), ""),
		scene.NewBorder(gridgeom.NewRectangle(-1<<26, 10, 1<<26, 1<<26), ""),
		scene.NewRing(gridgeom.NewCircle(gridgeom.C(0, 0), 1<<20), ""),
	}
	for _, it := range items {
		if _, err := s.Add(it); err != nil {
			t.Fatalf("Add(%v): %v", it, err)
		}
	}

	buf := cellbuf.New(60, 30, 0)
	start := time.Now()
	DrawScene(buf, s, gridgeom.C(5, 5), SceneStyle{})
	if d := time.Since(start); d > 5*time.Second {
		t.Fatalf("clipped draw took %v", d)
	}

	// The border's upper edge is world row 10, buffer row 5.
	for y, row := range buf.Cells {
		for x, c := range row {
			want := RectFill
			if y == 5 {
				want = '─'
			}
			if c.Ch != want {
				t.Fatalf("cell (%d,%d) = %c, want %c", x, y, c.Ch, want)
			}
		}
	}
}

func BenchmarkDrawSceneLargeRoom(b *testing.B) {
	s := scene.New()
	if _, err := s.Add(scene.NewRect(gridgeom.NewRectangle(-10000, -10000, 10000, 10000), "hall")); err != nil {
		b.Fatal(err)
	}
	buf := cellbuf.New(60, 30, 0)
	for b.Loop() {
		DrawScene(buf, s, gridgeom.Coord{}, SceneStyle{})
	}
}
