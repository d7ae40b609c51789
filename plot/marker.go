package plot

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Marker is a scatter symbol, named by its single-character code.
type Marker rune

const (
	MarkerPoint        Marker = '.'
	MarkerCircle       Marker = 'o'
	MarkerTriangleDown Marker = 'v'
	MarkerSquare       Marker = 's'
	MarkerDiamond      Marker = 'D'
	MarkerHexagon      Marker = 'H'
	MarkerX            Marker = 'x'
	MarkerXFilled      Marker = 'X'
	MarkerTriRight     Marker = '4'
)

// ParseMarker converts a one-character code such as "v" into a Marker.
func ParseMarker(s string) (Marker, error) {
	if len([]rune(s)) == 1 {
		m := Marker([]rune(s)[0])
		if _, ok := markerShapes[m]; ok {
			return m, nil
		}
	}
	return 0, fmt.Errorf("plot: unknown marker %q", s)
}

// markerShape is a unit-size outline; filled shapes are filled and
// outlined, stroked ones are only outlined as open spokes.
type markerShape struct {
	filled bool
	paths  [][]gg.Point
}

// Every shape spans roughly [-0.5, 0.5] and is scaled by the marker size.
var markerShapes = map[Marker]markerShape{
	MarkerPoint:        {filled: true, paths: [][]gg.Point{CirclePoints(0, 0, 0.1, 16)}},
	MarkerCircle:       {filled: true, paths: [][]gg.Point{CirclePoints(0, 0, 0.5, 32)}},
	MarkerTriangleDown: {filled: true, paths: [][]gg.Point{{{X: 0, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}}}},
	MarkerSquare:       {filled: true, paths: [][]gg.Point{{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}}}},
	MarkerDiamond:      {filled: true, paths: [][]gg.Point{{{X: 0, Y: -0.5 * math.Sqrt2}, {X: 0.5 * math.Sqrt2, Y: 0}, {X: 0, Y: 0.5 * math.Sqrt2}, {X: -0.5 * math.Sqrt2, Y: 0}}}},
	MarkerHexagon:      {filled: true, paths: [][]gg.Point{RegularPolygon(6, 0, 0, 0.5, 0)}},
	MarkerXFilled:      {filled: true, paths: [][]gg.Point{xFilled()}},
	MarkerX:            {paths: [][]gg.Point{{{X: -0.5, Y: -0.5}, {X: 0.5, Y: 0.5}}, {{X: -0.5, Y: 0.5}, {X: 0.5, Y: -0.5}}}},
	MarkerTriRight: {paths: [][]gg.Point{
		{{X: 0, Y: 0}, {X: 0.5, Y: 0}},
		{{X: 0, Y: 0}, {X: -0.25, Y: 0.4}},
		{{X: 0, Y: 0}, {X: -0.25, Y: -0.4}},
	}},
}

// xFilled is a plus sign of arm half-width 0.125 turned 45 degrees.
func xFilled() []gg.Point {
	const a, w = 0.5, 0.125
	plus := []gg.Point{
		{X: w, Y: w}, {X: w, Y: a}, {X: -w, Y: a}, {X: -w, Y: w},
		{X: -a, Y: w}, {X: -a, Y: -w}, {X: -w, Y: -w}, {X: -w, Y: -a},
		{X: w, Y: -a}, {X: w, Y: -w}, {X: a, Y: -w}, {X: a, Y: w},
	}
	return Transform(plus, 0, 0, 45)
}

// MarkerStyle sizes and colours markers. Size is the nominal width in
// points; EdgeWidth is the outline width in points.
type MarkerStyle struct {
	Marker    Marker
	Size      float64
	EdgeWidth float64
	Color     gg.RGBA
	Alpha     float64
}

// Markers draws one marker per point. Points outside the axes are skipped.
// Each marker is painted separately so translucent markers build up where
// they overlap.
func (a *Axes) Markers(xs, ys []float64, s MarkerStyle) error {
	shape, ok := markerShapes[s.Marker]
	if !ok {
		return fmt.Errorf("plot: unknown marker %q", string(s.Marker))
	}
	size := a.fig.Points(s.Size)
	edge := a.fig.Points(s.EdgeWidth)
	col := applyAlpha(s.Color, s.Alpha).Color()
	pad := size + edge
	return a.with(func(dc *gg.Context) error {
		dc.SetColor(col)
		dc.SetLineWidth(edge)
		dc.SetLineCap(gg.LineCapButt)
		dc.SetLineJoin(gg.LineJoinMiter)
		dc.ClearDash()
		for i := range min(len(xs), len(ys)) {
			c := a.ToPixel(xs[i], ys[i])
			if c.X < a.x0-pad || c.X > a.x1+pad || c.Y < a.y0-pad || c.Y > a.y1+pad {
				continue
			}
			for _, path := range shape.paths {
				for k, p := range path {
					// Marker outlines are defined y-up; device space is y-down.
					x, y := c.X+p.X*size, c.Y-p.Y*size
					if k == 0 {
						dc.MoveTo(x, y)
					} else {
						dc.LineTo(x, y)
					}
				}
				if shape.filled {
					dc.ClosePath()
				}
			}
			var err error
			switch {
			case shape.filled && edge > 0:
				if err = dc.FillPreserve(); err == nil {
					err = dc.Stroke()
				}
			case shape.filled:
				err = dc.Fill()
			default:
				err = dc.Stroke()
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
