package plot

import "github.com/gogpu/gg"

// Dash selects a stroke pattern.
type Dash int

const (
	Solid Dash = iota
	Dashed
	Dotted
)

// ParseDash maps "solid", "dashed" and "dotted" (or "-", "--", ":") to a
// Dash. Anything else is Solid.
func ParseDash(s string) Dash {
	switch s {
	case "dashed", "--":
		return Dashed
	case "dotted", ":":
		return Dotted
	}
	return Solid
}

// pattern returns the on/off lengths in units of the line width.
func (d Dash) pattern() []float64 {
	switch d {
	case Dashed:
		return []float64{3.7, 1.6}
	case Dotted:
		return []float64{1, 1.65}
	}
	return nil
}

// LineStyle describes a stroke. Width is in points. Alpha multiplies the
// colour's own alpha; zero means opaque.
type LineStyle struct {
	Color gg.RGBA
	Width float64
	Alpha float64
	Dash  Dash
	Cap   gg.LineCap
	Join  gg.LineJoin
}

// Line returns a solid line style.
func Line(c gg.RGBA, widthPt float64) LineStyle {
	return LineStyle{Color: c, Width: widthPt}
}

// WithAlpha returns a copy of s with its alpha set.
func (s LineStyle) WithAlpha(a float64) LineStyle {
	s.Alpha = a
	return s
}

func (s LineStyle) color() gg.RGBA {
	return applyAlpha(s.Color, s.Alpha)
}

// PatchStyle describes a filled shape with an optional outline. A fill
// with zero alpha is skipped, as is an edge with zero width.
type PatchStyle struct {
	Fill  gg.RGBA
	Edge  LineStyle
	Alpha float64
}

// Filled returns a patch style with only a fill.
func Filled(c gg.RGBA) PatchStyle {
	return PatchStyle{Fill: c}
}

// Outlined returns a patch style with only an edge.
func Outlined(edge LineStyle) PatchStyle {
	return PatchStyle{Edge: edge}
}

func applyAlpha(c gg.RGBA, a float64) gg.RGBA {
	if a > 0 {
		c.A *= a
	}
	return c
}
