package gridgeom

// LinearIter walks the inclusive integer range between two values in
// ascending order, whichever way round they were given.
type LinearIter struct {
	current int64
	max     int64
}

// NewLinearIter returns an iterator over [min(a, b), max(a, b)].
func NewLinearIter(a, b int32) *LinearIter {
	return &LinearIter{
		current: int64(min(a, b)),
		max:     int64(max(a, b)),
	}
}

// Next returns the next value in the range.
func (it *LinearIter) Next() (int32, bool) {
	if it.current > it.max {
		return 0, false
	}
	v := it.current
	it.current++
	return int32(v), true
}
