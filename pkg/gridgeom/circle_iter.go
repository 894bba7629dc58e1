package gridgeom

import (
	"fmt"
	"math"
)

// MaxRadius is the largest radius the circle iterators accept. The
// midpoint initializer computes 4*r in int32.
const MaxRadius = math.MaxInt32 / 4

// midpoint holds the decision variable of the midpoint circle algorithm
// for the octant running from (0, r) towards the 45° diagonal.
type midpoint struct {
	d, x, y int32
}

func newMidpoint(radius uint32) midpoint {
	if radius > MaxRadius {
		panic(fmt.Sprintf("gridgeom: circle radius %d exceeds MaxRadius %d", radius, MaxRadius))
	}
	r := int32(radius)
	return midpoint{d: (5 - 4*r) / 4, x: 0, y: r}
}

// advance moves to the next column of the octant and reports whether the
// walk has passed the diagonal.
func (m *midpoint) advance() (done bool) {
	if m.d < 0 {
		m.d += 2*m.x + 1
	} else {
		m.d += 2*(m.x-m.y) + 1
		m.y--
	}
	m.x++
	return m.x > m.y
}

type circleStep uint8

const (
	circleLine1 circleStep = iota
	circleLine2
	circleLine3
	circleLine4
	circleProcess
	circleFinished
)

func (s circleStep) next() circleStep {
	switch s {
	case circleLine1, circleLine2, circleLine3:
		return s + 1
	case circleLine4:
		return circleProcess
	case circleProcess:
		return circleLine1
	}
	return circleFinished
}

// CircleIter rasterizes a filled disc.
//
// For every midpoint step it draws four vertical spans, each joining a
// point to its mirror across the center row:
//
//	(cx+x, cy+y)–(cx+x, cy−y)   (cx−x, cy+y)–(cx−x, cy−y)
//	(cx+y, cy+x)–(cx+y, cy−x)   (cx−y, cy+x)–(cx−y, cy−x)
//
// Spans are rasterized with BresenhamLineIter and may overlap; cells seen
// before are skipped, so every cell of the disc is emitted exactly once.
type CircleIter struct {
	center     Coord
	mid        midpoint
	step       circleStep
	line       *BresenhamLineIter
	discovered map[Coord]struct{}
}

// NewCircleIter returns an iterator over the disc. It panics if radius
// exceeds MaxRadius.
func NewCircleIter(center Coord, radius uint32) *CircleIter {
	return &CircleIter{
		center:     center,
		mid:        newMidpoint(radius),
		step:       circleLine1,
		discovered: make(map[Coord]struct{}),
	}
}

// Next returns the next cell of the disc.
func (it *CircleIter) Next() (Coord, bool) {
	for it.step != circleFinished || it.line != nil {
		if it.line != nil {
			p, ok := it.line.Next()
			if !ok {
				it.line = nil
				continue
			}
			if _, seen := it.discovered[p]; seen {
				continue
			}
			it.discovered[p] = struct{}{}
			return p, true
		}
		it.nextSpan()
	}
	return Coord{}, false
}

// nextSpan runs one transition of the step machine, either starting a new
// span or advancing the midpoint state.
func (it *CircleIter) nextSpan() {
	cx, cy := it.center.X, it.center.Y
	x, y := it.mid.x, it.mid.y

	switch it.step {
	case circleLine1:
		it.line = NewBresenhamLineIter(Coord{cx + x, cy + y}, Coord{cx + x, cy - y})
	case circleLine2:
		it.line = NewBresenhamLineIter(Coord{cx - x, cy + y}, Coord{cx - x, cy - y})
	case circleLine3:
		it.line = NewBresenhamLineIter(Coord{cx + y, cy + x}, Coord{cx + y, cy - x})
	case circleLine4:
		it.line = NewBresenhamLineIter(Coord{cx - y, cy + x}, Coord{cx - y, cy - x})
	case circleProcess:
		if it.mid.advance() {
			it.step = circleFinished
			return
		}
	}
	it.step = it.step.next()
}
