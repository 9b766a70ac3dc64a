package sample

// FromPairs builds a Set from explicit samples, copying the input so
// the returned Set never aliases caller storage.
//
// Complexity: O(n) time, O(n) space.
func FromPairs(pairs []Sample) Set {
	s := make(Set, len(pairs))
	copy(s, pairs)

	return s
}

// FromSlices builds a Set by zipping parallel x and y slices.
// Returns ErrLengthMismatch when the slices differ in length.
//
// Complexity: O(n) time, O(n) space.
func FromSlices(xs, ys []float64) (Set, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	s := make(Set, len(xs))
	for i := range xs {
		s[i] = Sample{X: xs[i], Y: ys[i]}
	}

	return s, nil
}

// Xs returns the x values of all samples in insertion order.
func (s Set) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the y values of all samples in insertion order.
func (s Set) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y
	}

	return ys
}

// Bounds returns the x values of the first and last sample, by
// insertion order, not min/max. Integration over a Set
// uses exactly these bounds, so callers wanting true domain bounds must
// order their samples accordingly. ok is false for an empty Set.
func (s Set) Bounds() (lower, upper float64, ok bool) {
	if len(s) == 0 {
		return 0, 0, false
	}

	return s[0].X, s[len(s)-1].X, true
}
