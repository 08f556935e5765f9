package shade

// Mean accumulates the average HSV value of a set of pixels.
// The zero value is an empty accumulator.
//
// The sum is kept in integer channel units, so the result does not depend
// on the order in which pixels or partial means are combined.
type Mean struct {
	sum uint64
	n   int
}

// Add records one pixel.
func (m *Mean) Add(r, g, b uint8) {
	m.sum += uint64(max(r, g, b))
	m.n++
}

// Merge folds another accumulator into m.
func (m *Mean) Merge(o Mean) {
	m.sum += o.sum
	m.n += o.n
}

// Count returns the number of recorded pixels.
func (m Mean) Count() int { return m.n }

// Value returns the mean value in [0, 1]. ok is false when no pixels were
// recorded.
func (m Mean) Value() (mean float64, ok bool) {
	if m.n == 0 {
		return 0, false
	}
	return float64(m.sum) / (255 * float64(m.n)), true
}
