// Package edgedescend draws nested regular shapes that shrink by a fixed
// ratio towards their common centre, cycling colour at every step.
package edgedescend

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the edge descend designs.
const Collection = "edge-descend"

// ErrTwoSides is returned for a shape with two sides.
var ErrTwoSides = errors.New("edgedescend: no two-sided regular polygon, choose another number of sides")

const (
	outerSize = 0.5
	shapes    = 500
	figureIn  = 5.0
)

var centre = gg.Pt(0.5, 0.5)

// Sizes returns n sizes, each ratio smaller than the one before, starting
// one step in from outer.
func Sizes(outer, ratio float64, n int) []float64 {
	out := make([]float64, n)
	s := outer
	for k := range out {
		s *= 1 - ratio
		out[k] = s
	}
	return out
}

// Style is a palette with its background and shrink ratio.
type Style struct {
	Background gg.RGBA
	Palette    []gg.RGBA
	Ratio      float64
}

var (
	// Standard is the black based palette of the main gallery.
	Standard = Style{
		Background: colormap.MustParse("black"),
		Palette:    colormap.MustParseAll("midnightblue", "lavender", "crimson", "dodgerblue", "indianred"),
		Ratio:      0.07,
	}
	// Alternative is the white based palette with finer steps.
	Alternative = Style{
		Background: colormap.MustParse("white"),
		Palette:    colormap.MustParseAll("black", "peru", "darkslategrey", "goldenrod", "teal", "wheat"),
		Ratio:      0.03,
	}
)

// Shape fills one regular shape of the given size centred on c. One side
// means a circle, drawn at 0.9 of size to sit well beside the polygons.
// Triangles are enlarged by 1.1 and dropped by 0.1 so they stay in the
// unit square. rotation is in radians counter-clockwise.
func Shape(ax *plot.Axes, c gg.Point, size float64, sides int, rotation float64, fill gg.RGBA) error {
	switch {
	case sides == 1:
		return ax.Circle(c.X, c.Y, 0.9*size, plot.Filled(fill))
	case sides == 2:
		return ErrTwoSides
	case sides < 1:
		return fmt.Errorf("edgedescend: %d sides", sides)
	case sides == 3:
		size *= 1.1
		c.Y -= 0.1
	}
	return ax.Polygon(plot.RegularPolygon(sides, c.X, c.Y, size, math.Pi/2+rotation), plot.Filled(fill))
}

// Panel is one nest of shapes.
type Panel struct {
	Sides int
	// Offset is the palette index of the outermost shape.
	Offset int
}

// Nest draws a full nest of shapes largest first. A non-nil rng rotates
// each shape by a uniform random angle.
func Nest(ax *plot.Axes, st Style, p Panel, rng *rand.Rand) error {
	for k, size := range Sizes(outerSize, st.Ratio, shapes) {
		var rot float64
		if rng != nil {
			rot = 2 * math.Pi * rng.Float64()
		}
		fill := st.Palette[(p.Offset+k)%len(st.Palette)]
		if err := Shape(ax, centre, size, p.Sides, rot, fill); err != nil {
			return err
		}
	}
	return nil
}

// Params is one design: a single nest or a 2x2 compound of nests.
type Params struct {
	Style    Style
	Panels   []Panel
	Closeup  bool
	Zoom     float64 // half width of the close-up window
	Random   bool
	Compound bool
}

var (
	unit = field.Lim(0, 1, 0, 1)
	// compoundGap is the space between compound panels as a fraction of
	// one panel.
	compoundGap = 0.2
)

// Draw renders p.
func Draw(dc *gg.Context, rng *rand.Rand, p Params) error {
	fig := plot.NewFigure(dc, figureIn, figureIn)
	fig.Background(p.Style.Background)
	if !p.Random {
		rng = nil
	}
	if !p.Compound {
		var ax *plot.Axes
		if p.Closeup {
			ax = fig.FullAxes(closeupLimits(p.Panels[0].Sides, p.Zoom))
		} else {
			ax = fig.Axes(plot.SubplotBox, unit)
			ax.SetAspectEqual()
		}
		return Nest(ax, p.Style, p.Panels[0], rng)
	}
	for i, ax := range compoundAxes(fig) {
		if i >= len(p.Panels) {
			break
		}
		ax.SetAspectEqual()
		if err := ax.Background(p.Style.Background); err != nil {
			return err
		}
		if err := Nest(ax, p.Style, p.Panels[i], rng); err != nil {
			return err
		}
	}
	return nil
}

func closeupLimits(sides int, zoom float64) field.Limits {
	cy := 0.5
	if sides == 3 {
		cy = 0.405
	}
	return field.Lim(0.5-zoom, 0.5+zoom, cy-zoom, cy+zoom)
}

// compoundAxes lays out a 2x2 grid inside the default subplot box.
func compoundAxes(fig *plot.Figure) []*plot.Axes {
	b := plot.SubplotBox
	w := (b.X1 - b.X0) / (2 + compoundGap)
	h := (b.Y1 - b.Y0) / (2 + compoundGap)
	var out []*plot.Axes
	for r := range 2 {
		for c := range 2 {
			x0 := b.X0 + float64(c)*w*(1+compoundGap)
			y1 := b.Y1 - float64(r)*h*(1+compoundGap)
			out = append(out, fig.Axes(plot.Box{X0: x0, Y0: y1 - h, X1: x0 + w, Y1: y1}, unit))
		}
	}
	return out
}
