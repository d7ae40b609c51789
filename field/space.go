package field

import "math"

// Linspace returns n evenly spaced values from a to b inclusive.
func Linspace(a, b float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// Arange returns values from start up to but excluding stop, spaced by step.
// It returns nil for a zero step or an empty interval.
func Arange(start, stop, step float64) []float64 {
	if step == 0 {
		return nil
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Limits is an axis-aligned rectangle in data coordinates.
type Limits struct {
	XMin, XMax, YMin, YMax float64
}

// Lim is shorthand for Limits{x0, x1, y0, y1}.
func Lim(x0, x1, y0, y1 float64) Limits {
	return Limits{XMin: x0, XMax: x1, YMin: y0, YMax: y1}
}

// Width returns XMax - XMin.
func (l Limits) Width() float64 { return l.XMax - l.XMin }

// Height returns YMax - YMin.
func (l Limits) Height() float64 { return l.YMax - l.YMin }

// Contains reports whether (x, y) lies inside the closed rectangle.
func (l Limits) Contains(x, y float64) bool {
	return x >= math.Min(l.XMin, l.XMax) && x <= math.Max(l.XMin, l.XMax) &&
		y >= math.Min(l.YMin, l.YMax) && y <= math.Max(l.YMin, l.YMax)
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Normalize maps v from [lo, hi] to [0, 1] without clamping. A degenerate
// interval maps everything finite to 0.
func Normalize(v, lo, hi float64) float64 {
	if !Finite(v) {
		return math.NaN()
	}
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}
