// Package drawutil draws gridgeom shapes into a cellbuf.Buffer with
// direction-aware glyphs: lines, arrows, dashed previews, L-shaped
// tunnels, box borders, discs and rings, plus a background dot grid and
// edge exit-point geometry.
//
// All coordinates are buffer-local; callers subtract their camera first.
package drawutil

import "github.com/wesen/gridshape/pkg/gridgeom"

// LineChar returns the glyph for a line segment with direction d.
func LineChar(d gridgeom.Coord) rune {
	if d.X == 0 {
		return '│'
	}
	if d.Y == 0 {
		return '─'
	}
	if (d.X > 0) == (d.Y > 0) {
		return '\\'
	}
	return '/'
}

// ArrowChar returns an arrowhead pointing along the dominant axis of d.
// Rows grow downward, so positive Y points down.
func ArrowChar(d gridgeom.Coord) rune {
	if abs(d.Y) > abs(d.X) {
		if d.Y > 0 {
			return '▼'
		}
		return '▲'
	}
	if d.X > 0 {
		return '►'
	}
	return '◄'
}

// Neighbour bits for BoxChar.
const (
	Up = 1 << iota
	Down
	Left
	Right
)

var boxChars = [16]rune{
	0:                          '·',
	Up:                         '│',
	Down:                       '│',
	Up | Down:                  '│',
	Left:                       '─',
	Right:                      '─',
	Left | Right:               '─',
	Down | Right:               '┌',
	Down | Left:                '┐',
	Up | Right:                 '└',
	Up | Left:                  '┘',
	Up | Down | Right:          '├',
	Up | Down | Left:           '┤',
	Left | Right | Down:        '┬',
	Left | Right | Up:          '┴',
	Up | Down | Left | Right:   '┼',
}

// BoxChar returns the box-drawing glyph joining the neighbours set in
// mask (a combination of Up, Down, Left and Right).
func BoxChar(mask int) rune {
	return boxChars[mask&0xf]
}

// neighbourMask reports which 4-neighbours of c are in set.
func neighbourMask(set map[gridgeom.Coord]struct{}, c gridgeom.Coord) int {
	mask := 0
	for _, n := range []struct {
		d   gridgeom.Coord
		bit int
	}{
		{gridgeom.C(0, -1), Up},
		{gridgeom.C(0, 1), Down},
		{gridgeom.C(-1, 0), Left},
		{gridgeom.C(1, 0), Right},
	} {
		if _, ok := set[c.Add(n.d)]; ok {
			mask |= n.bit
		}
	}
	return mask
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
