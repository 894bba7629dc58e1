package scene

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

func rect(x0, y0, x1, y1 int32) gridgeom.Rectangle {
	return gridgeom.NewRectangle(x0, y0, x1, y1)
}

func mustAdd(t *testing.T, s *Scene, it Item) int {
	t.Helper()
	id, err := s.Add(it)
	if err != nil {
		t.Fatalf("Add(%v): %v", it, err)
	}
	return id
}

// ── Kinds ──

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindLine, KindRect, KindBorder, KindDisc, KindRing} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("hexagon"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(hexagon) err = %v", err)
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("unexpected String for unknown kind")
	}
}

// ── Add / validation ──

func TestAddIDsIncrement(t *testing.T) {
	s := New()
	id0 := mustAdd(t, s, NewRect(rect(0, 0, 4, 2), ""))
	id1 := mustAdd(t, s, NewRect(rect(10, 0, 14, 2), ""))
	id2 := mustAdd(t, s, NewDisc(gridgeom.NewCircle(gridgeom.C(20, 1), 1), ""))
	if id0 != 0 || id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 0,1,2, got %d,%d,%d", id0, id1, id2)
	}
	if s.Item(id1).ID != id1 {
		t.Errorf("stored item has ID %d, want %d", s.Item(id1).ID, id1)
	}
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want error
	}{
		{"ring with rectangle", Item{Kind: KindRing, Shape: rect(0, 0, 1, 1)}, ErrKindMismatch},
		{"border with circle", Item{Kind: KindBorder, Shape: gridgeom.NewCircle(gridgeom.C(0, 0), 1)}, ErrKindMismatch},
		{"nil shape", Item{Kind: KindLine}, ErrKindMismatch},
		{"far line", NewLine(gridgeom.NewLine(gridgeom.C(0, 0), gridgeom.C(gridgeom.MaxExtent+1, 0)), ""), ErrOutOfRange},
		{"huge circle", NewDisc(gridgeom.NewCircle(gridgeom.C(0, 0), gridgeom.MaxExtent+1), ""), ErrOutOfRange},
		{"circle crossing the limit", NewRing(gridgeom.NewCircle(gridgeom.C(gridgeom.MaxExtent, 0), 1), ""), ErrOutOfRange},
	}
	for _, tc := range tests {
		s := New()
		if _, err := s.Add(tc.item); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
		if s.Len() != 0 {
			t.Errorf("%s: rejected item was stored", tc.name)
		}
	}
}

func TestItemsInsertionOrder(t *testing.T) {
	s := New()
	mustAdd(t, s, NewRect(rect(30, 0, 34, 2), "c"))
	mustAdd(t, s, NewRect(rect(10, 0, 14, 2), "a"))
	mustAdd(t, s, NewRect(rect(20, 0, 24, 2), "b"))
	var labels []string
	for _, it := range s.Items() {
		labels = append(labels, it.Label)
	}
	if !slices.Equal(labels, []string{"c", "a", "b"}) {
		t.Fatalf("order = %v", labels)
	}
}

func TestItemNonExistent(t *testing.T) {
	if New().Item(99) != nil {
		t.Fatal("expected nil for missing item")
	}
}

// ── Remove / Move / Raise ──

func TestRemoveCleansCorridors(t *testing.T) {
	s := New()
	a := mustAdd(t, s, NewRect(rect(0, 0, 2, 2), "a"))
	b := mustAdd(t, s, NewRect(rect(10, 0, 12, 2), "b"))
	c := mustAdd(t, s, NewRect(rect(20, 0, 22, 2), "c"))
	s.Connect(a, b, gridgeom.HorizontalFirst)
	s.Connect(b, c, gridgeom.HorizontalFirst)
	s.Connect(a, c, gridgeom.VerticalFirst)

	if err := s.Remove(b); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Item(b) != nil || s.Len() != 2 {
		t.Fatal("item not removed")
	}
	if got := s.Corridors(); len(got) != 1 || got[0].From != a || got[0].To != c {
		t.Fatalf("corridors after remove = %v", got)
	}
	if err := s.Remove(b); !errors.Is(err, ErrNoItem) {
		t.Fatalf("second Remove err = %v", err)
	}
}

func TestMove(t *testing.T) {
	s := New()
	ids := []int{
		mustAdd(t, s, NewLine(gridgeom.NewLine(gridgeom.C(0, 0), gridgeom.C(3, 1)), "")),
		mustAdd(t, s, NewBorder(rect(0, 0, 3, 3), "")),
		mustAdd(t, s, NewRing(gridgeom.NewCircle(gridgeom.C(5, 5), 2), "")),
	}
	for _, id := range ids {
		before := s.Item(id).Bounds()
		if err := s.Move(id, gridgeom.C(4, -2)); err != nil {
			t.Fatalf("Move(%d): %v", id, err)
		}
		if got, want := s.Item(id).Bounds(), before.Translate(gridgeom.C(4, -2)); got != want {
			t.Errorf("Move(%d): bounds = %v, want %v", id, got, want)
		}
	}
	if err := s.Move(99, gridgeom.C(1, 1)); !errors.Is(err, ErrNoItem) {
		t.Errorf("Move(missing) err = %v", err)
	}
	if err := s.Move(ids[0], gridgeom.C(gridgeom.MaxExtent, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Move out of range err = %v", err)
	}
}

func TestRaise(t *testing.T) {
	s := New()
	a := mustAdd(t, s, NewRect(rect(0, 0, 4, 4), "a"))
	mustAdd(t, s, NewRect(rect(2, 2, 6, 6), "b"))
	s.Raise(a)
	if hit := s.HitTest(gridgeom.C(3, 3)); hit == nil || hit.ID != a {
		t.Fatalf("after Raise, HitTest = %v, want item %d", hit, a)
	}
}

// ── Corridors ──

func TestConnect(t *testing.T) {
	s := New()
	a := mustAdd(t, s, NewRect(rect(0, 0, 2, 2), ""))
	b := mustAdd(t, s, NewRect(rect(10, 4, 12, 6), ""))

	if err := s.Connect(a, b, gridgeom.VerticalFirst); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := s.Connect(a, b, gridgeom.HorizontalFirst); err != nil {
		t.Fatalf("duplicate Connect: %v", err)
	}
	if got := s.Corridors(); len(got) != 1 || got[0].Order != gridgeom.VerticalFirst {
		t.Fatalf("corridors = %v", got)
	}
	if err := s.Connect(a, a, 0); !errors.Is(err, ErrSelfCorridor) {
		t.Errorf("self corridor err = %v", err)
	}
	if err := s.Connect(a, 99, 0); !errors.Is(err, ErrNoItem) {
		t.Errorf("missing target err = %v", err)
	}

	l, ok := s.CorridorLine(s.Corridors()[0])
	if !ok || l != gridgeom.NewLine(gridgeom.C(1, 1), gridgeom.C(11, 5)) {
		t.Fatalf("CorridorLine = %v, %v", l, ok)
	}
	if n := len(s.CorridorsOf(b)); n != 1 {
		t.Fatalf("CorridorsOf(b) = %d, want 1", n)
	}

	s.Disconnect(a, b)
	if len(s.Corridors()) != 0 {
		t.Fatal("Disconnect left a corridor")
	}
}

func TestCorridorsReturnsCopy(t *testing.T) {
	s := New()
	a := mustAdd(t, s, NewRect(rect(0, 0, 2, 2), ""))
	b := mustAdd(t, s, NewRect(rect(10, 4, 12, 6), ""))
	if err := s.Connect(a, b, gridgeom.VerticalFirst); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	got := s.Corridors()
	got[0].Order = gridgeom.HorizontalFirst
	got[0].To = 99
	if c := s.Corridors()[0]; c.Order != gridgeom.VerticalFirst || c.To != b {
		t.Fatalf("scene corridor changed through returned slice: %v", c)
	}
}

// ── Spatial queries ──

func TestHitTest(t *testing.T) {
	s := New()
	ring := mustAdd(t, s, NewRing(gridgeom.NewCircle(gridgeom.C(10, 10), 3), ""))
	border := mustAdd(t, s, NewBorder(rect(0, 0, 4, 4), ""))

	tests := []struct {
		name string
		at   gridgeom.Coord
		want int // -1 for no hit
	}{
		{"ring cell", gridgeom.C(10, 13), ring},
		{"ring hole", gridgeom.C(10, 10), -1},
		{"border edge", gridgeom.C(0, 2), border},
		{"border inside", gridgeom.C(2, 2), -1},
		{"empty space", gridgeom.C(50, 50), -1},
	}
	for _, tc := range tests {
		hit := s.HitTest(tc.at)
		switch {
		case tc.want < 0 && hit != nil:
			t.Errorf("%s: unexpected hit %v", tc.name, hit)
		case tc.want >= 0 && (hit == nil || hit.ID != tc.want):
			t.Errorf("%s: hit = %v, want item %d", tc.name, hit, tc.want)
		}
	}
}

func TestHitTestTopmost(t *testing.T) {
	s := New()
	mustAdd(t, s, NewRect(rect(0, 0, 9, 9), "bottom"))
	top := mustAdd(t, s, NewDisc(gridgeom.NewCircle(gridgeom.C(5, 5), 2), "top"))
	if hit := s.HitTest(gridgeom.C(5, 5)); hit == nil || hit.ID != top {
		t.Fatalf("HitTest = %v, want top", hit)
	}
	if hit := s.HitTest(gridgeom.C(0, 0)); hit == nil || hit.Label != "bottom" {
		t.Fatalf("HitTest corner = %v, want bottom", hit)
	}
}

func TestItemCoversMatchesCells(t *testing.T) {
	items := []Item{
		NewLine(gridgeom.NewLine(gridgeom.C(-2, 1), gridgeom.C(4, -3)), ""),
		NewRect(rect(0, 0, 3, 2), ""),
		NewBorder(rect(0, 0, 4, 3), ""),
		NewDisc(gridgeom.NewCircle(gridgeom.C(1, 1), 3), ""),
		NewRing(gridgeom.NewCircle(gridgeom.C(1, 1), 3), ""),
	}
	for _, it := range items {
		cells := map[gridgeom.Coord]bool{}
		for c := range it.Cells() {
			cells[c] = true
		}
		for c := range it.Bounds().Translate(gridgeom.C(-1, -1)).All() {
			if got := it.Covers(c); got != cells[c] {
				t.Errorf("%v: Covers(%v) = %v, want %v", it, c, got, cells[c])
			}
		}
	}
}

func TestHitTestLargeCircles(t *testing.T) {
	const r = 1 << 20
	s := New()
	disc := mustAdd(t, s, NewDisc(gridgeom.NewCircle(gridgeom.C(0, 0), r), ""))
	ring := mustAdd(t, s, NewRing(gridgeom.NewCircle(gridgeom.C(4*r, 0), r), ""))

	tests := []struct {
		name string
		at   gridgeom.Coord
		want int
	}{
		{"disc center", gridgeom.C(0, 0), disc},
		{"disc edge", gridgeom.C(0, r), disc},
		{"disc corner", gridgeom.C(r-1, r-1), -1},
		{"ring edge", gridgeom.C(4*r, -r), ring},
		{"ring hole", gridgeom.C(4*r, 0), -1},
	}
	for _, tc := range tests {
		hit := s.HitTest(tc.at)
		switch {
		case tc.want < 0 && hit != nil:
			t.Errorf("%s: unexpected hit %v", tc.name, hit)
		case tc.want >= 0 && (hit == nil || hit.ID != tc.want):
			t.Errorf("%s: hit = %v, want item %d", tc.name, hit, tc.want)
		}
	}
}

func TestItemsInRect(t *testing.T) {
	s := New()
	mustAdd(t, s, NewRect(rect(0, 0, 4, 4), "a"))
	mustAdd(t, s, NewRect(rect(10, 10, 14, 14), "b"))
	mustAdd(t, s, NewDisc(gridgeom.NewCircle(gridgeom.C(7, 7), 2), "c"))

	var labels []string
	for _, it := range s.ItemsInRect(rect(4, 4, 6, 6)) {
		labels = append(labels, it.Label)
	}
	if !slices.Equal(labels, []string{"a", "c"}) {
		t.Fatalf("ItemsInRect = %v, want [a c]", labels)
	}
}

func TestBounds(t *testing.T) {
	if _, ok := New().Bounds(); ok {
		t.Fatal("empty scene reported bounds")
	}
	s := New()
	mustAdd(t, s, NewRect(rect(0, 0, 4, 4), ""))
	mustAdd(t, s, NewDisc(gridgeom.NewCircle(gridgeom.C(10, -3), 2), ""))
	b, ok := s.Bounds()
	if !ok || b != rect(0, -5, 12, 4) {
		t.Fatalf("Bounds = %v, %v", b, ok)
	}
}

// ── Stamping ──

func TestStamp(t *testing.T) {
	s := New()
	a := mustAdd(t, s, NewBorder(rect(0, 0, 2, 2), "a"))
	b := mustAdd(t, s, NewBorder(rect(6, 3, 8, 5), "b"))
	if err := s.Connect(a, b, gridgeom.HorizontalFirst); err != nil {
		t.Fatal(err)
	}

	g := grid.New(gridgeom.Sz(9, 6), '.')
	Stamp(g, s, gridgeom.Coord{}, func(*Item) rune { return '#' }, '+')

	var rows []string
	for y := range int32(6) {
		var sb strings.Builder
		for x := range int32(9) {
			r, _ := g.Get(gridgeom.C(x, y))
			sb.WriteRune(r)
		}
		rows = append(rows, sb.String())
	}
	want := []string{
		"###......",
		"#+#+++++.",
		"###....+.",
		"......###",
		"......#+#",
		"......###",
	}
	if !slices.Equal(rows, want) {
		t.Fatalf("stamped scene:\n%s\nwant\n%s", strings.Join(rows, "\n"), strings.Join(want, "\n"))
	}
}
