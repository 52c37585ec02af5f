package hist

// Range is a closed interval on one axis.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Shift moves the interval by d.
func (r Range) Shift(d float64) Range {
	return Range{Min: r.Min + d, Max: r.Max + d}
}

// Ordered returns a Range built from two values in any order.
func Ordered(a, b float64) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Min: a, Max: b}
}
