package scene

import (
	"fmt"
	"slices"

	"github.com/wesen/gridshape/pkg/grid"
	"github.com/wesen/gridshape/pkg/gridgeom"
)

// Corridor joins the centres of two items with an L-shaped tunnel.
type Corridor struct {
	From, To int
	Order    gridgeom.TunnelOrder
}

// Scene is an ordered set of items and the corridors between them.
// Iteration follows insertion order; later items are drawn on top.
type Scene struct {
	items     map[int]*Item
	order     []int
	corridors []Corridor
	nextID    int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{items: make(map[int]*Item)}
}

// ── Items ──

// Add validates it, assigns it an ID and appends it to the scene.
func (s *Scene) Add(it Item) (int, error) {
	if err := it.Validate(); err != nil {
		grid.Logger().Warn("scene: rejected item", "item", it, "error", err)
		return 0, err
	}
	it.ID = s.nextID
	s.nextID++
	s.items[it.ID] = &it
	s.order = append(s.order, it.ID)
	grid.Logger().Info("scene: add", "item", it)
	return it.ID, nil
}

// Item returns the item with the given ID, or nil.
func (s *Scene) Item(id int) *Item {
	return s.items[id]
}

// Items returns all items in insertion order.
func (s *Scene) Items() []*Item {
	result := make([]*Item, 0, len(s.order))
	for _, id := range s.order {
		if it, ok := s.items[id]; ok {
			result = append(result, it)
		}
	}
	return result
}

// Len returns the number of items.
func (s *Scene) Len() int { return len(s.order) }

// Remove deletes the item and every corridor touching it.
func (s *Scene) Remove(id int) error {
	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNoItem, id)
	}
	delete(s.items, id)
	s.order = slices.DeleteFunc(s.order, func(oid int) bool { return oid == id })
	s.corridors = slices.DeleteFunc(s.corridors, func(c Corridor) bool {
		return c.From == id || c.To == id
	})
	grid.Logger().Info("scene: remove", "id", id)
	return nil
}

// Move translates the item by offset. Corridors follow automatically
// because they are derived from item centres.
func (s *Scene) Move(id int, offset gridgeom.Coord) error {
	it, ok := s.items[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoItem, id)
	}
	moved := it.Translated(offset)
	if err := moved.Validate(); err != nil {
		return err
	}
	*it = moved
	return nil
}

// Raise moves the item to the end of the draw order.
func (s *Scene) Raise(id int) {
	i := slices.Index(s.order, id)
	if i < 0 {
		return
	}
	s.order = append(slices.Delete(s.order, i, i+1), id)
}

// ── Corridors ──

// Connect adds a corridor between two items. A second corridor between
// the same ordered pair is ignored.
func (s *Scene) Connect(from, to int, order gridgeom.TunnelOrder) error {
	if from == to {
		return ErrSelfCorridor
	}
	for _, id := range []int{from, to} {
		if _, ok := s.items[id]; !ok {
			return fmt.Errorf("%w: %d", ErrNoItem, id)
		}
	}
	for _, c := range s.corridors {
		if c.From == from && c.To == to {
			return nil
		}
	}
	s.corridors = append(s.corridors, Corridor{From: from, To: to, Order: order})
	grid.Logger().Info("scene: connect", "from", from, "to", to, "order", order)
	return nil
}

// Disconnect removes the corridor from → to, if any.
func (s *Scene) Disconnect(from, to int) {
	s.corridors = slices.DeleteFunc(s.corridors, func(c Corridor) bool {
		return c.From == from && c.To == to
	})
}

// Corridors returns a copy of all corridors in creation order.
func (s *Scene) Corridors() []Corridor {
	return slices.Clone(s.corridors)
}

// CorridorsOf returns the corridors that start or end at id.
func (s *Scene) CorridorsOf(id int) []Corridor {
	var result []Corridor
	for _, c := range s.corridors {
		if c.From == id || c.To == id {
			result = append(result, c)
		}
	}
	return result
}

// CorridorLine returns the centre-to-centre line of c.
func (s *Scene) CorridorLine(c Corridor) (gridgeom.Line, bool) {
	from, to := s.items[c.From], s.items[c.To]
	if from == nil || to == nil {
		return gridgeom.Line{}, false
	}
	return gridgeom.NewLine(from.Center(), to.Center()), true
}

// ── Spatial queries ──

// HitTest returns the topmost item covering c, or nil.
func (s *Scene) HitTest(c gridgeom.Coord) *Item {
	for i := len(s.order) - 1; i >= 0; i-- {
		it := s.items[s.order[i]]
		if it != nil && it.Covers(c) {
			return it
		}
	}
	return nil
}

// ItemsInRect returns the items whose bounds intersect r, in insertion
// order.
func (s *Scene) ItemsInRect(r gridgeom.Rectangle) []*Item {
	var result []*Item
	for _, it := range s.Items() {
		if it.Bounds().Intersects(r) {
			result = append(result, it)
		}
	}
	return result
}

// Bounds returns the smallest rectangle containing every item. ok is
// false for an empty scene.
func (s *Scene) Bounds() (r gridgeom.Rectangle, ok bool) {
	var lo, hi gridgeom.Coord
	for _, it := range s.Items() {
		b := it.Bounds()
		if b.IsEmpty() {
			continue
		}
		if !ok {
			lo, hi, ok = b.Min(), b.Max(), true
			continue
		}
		lo = gridgeom.C(min(lo.X, b.Left()), min(lo.Y, b.Bottom()))
		hi = gridgeom.C(max(hi.X, b.Right()), max(hi.Y, b.Top()))
	}
	if !ok {
		return gridgeom.Rectangle{}, false
	}
	return gridgeom.RectangleFromCorners(lo, hi), true
}

// ── Stamping ──

// Stamp writes the scene onto dst shifted by offset: corridors first with
// corridor, then every item in draw order with value(item). It returns
// the number of writes.
func Stamp[T any](dst grid.Target[T], s *Scene, offset gridgeom.Coord, value func(*Item) T, corridor T) int {
	n := 0
	for _, c := range s.corridors {
		l, ok := s.CorridorLine(c)
		if !ok {
			continue
		}
		n += grid.CopyFromSeq(dst, l.Tunnel(c.Order), offset, corridor)
	}
	for _, it := range s.Items() {
		n += grid.CopyFromSeq(dst, it.Cells(), offset, value(it))
	}
	return n
}
