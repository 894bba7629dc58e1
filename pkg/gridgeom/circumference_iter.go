package gridgeom

type circumferenceStep uint8

const (
	circumferenceLine1 circumferenceStep = iota
	circumferenceLine2
	circumferenceLine3
	circumferenceLine4
	circumferenceLine5
	circumferenceLine6
	circumferenceLine7
	circumferenceLine8
	circumferenceProcess
	circumferenceFinished
)

func (s circumferenceStep) next() circumferenceStep {
	switch {
	case s < circumferenceLine8:
		return s + 1
	case s == circumferenceLine8:
		return circumferenceProcess
	case s == circumferenceProcess:
		return circumferenceLine1
	}
	return circumferenceFinished
}

// CircleCircumferenceIter rasterizes the outermost ring of a circle with
// the midpoint algorithm, emitting the eight symmetric points of every
// step in the order (cx±x, cy±y), then (cx±y, cy±x).
//
// Where the symmetric formulas coincide (x == 0, x == y) the repeats are
// dropped, not reordered. The output is therefore not in angular order.
type CircleCircumferenceIter struct {
	center     Coord
	mid        midpoint
	step       circumferenceStep
	discovered map[Coord]struct{}
}

// NewCircleCircumferenceIter returns an iterator over the ring. It panics
// if radius exceeds MaxRadius.
func NewCircleCircumferenceIter(center Coord, radius uint32) *CircleCircumferenceIter {
	return &CircleCircumferenceIter{
		center:     center,
		mid:        newMidpoint(radius),
		step:       circumferenceLine1,
		discovered: make(map[Coord]struct{}),
	}
}

// Next returns the next ring cell.
func (it *CircleCircumferenceIter) Next() (Coord, bool) {
	for it.step != circumferenceFinished {
		p, ok := it.point()
		if !ok {
			continue
		}
		if _, seen := it.discovered[p]; seen {
			continue
		}
		it.discovered[p] = struct{}{}
		return p, true
	}
	return Coord{}, false
}

// point runs one transition of the step machine. It returns false for the
// process transition, which emits nothing.
func (it *CircleCircumferenceIter) point() (Coord, bool) {
	cx, cy := it.center.X, it.center.Y
	x, y := it.mid.x, it.mid.y

	var p Coord
	switch it.step {
	case circumferenceLine1:
		p = Coord{cx + x, cy + y}
	case circumferenceLine2:
		p = Coord{cx + x, cy - y}
	case circumferenceLine3:
		p = Coord{cx - x, cy + y}
	case circumferenceLine4:
		p = Coord{cx - x, cy - y}
	case circumferenceLine5:
		p = Coord{cx + y, cy + x}
	case circumferenceLine6:
		p = Coord{cx + y, cy - x}
	case circumferenceLine7:
		p = Coord{cx - y, cy + x}
	case circumferenceLine8:
		p = Coord{cx - y, cy - x}
	case circumferenceProcess:
		if it.mid.advance() {
			it.step = circumferenceFinished
		} else {
			it.step = it.step.next()
		}
		return Coord{}, false
	}
	it.step = it.step.next()
	return p, true
}
