// Package kelly replicates selected works by Ellsworth Kelly. Most are
// matrices of colour indices drawn as flat cells; Cité is drawn as
// slanted bands.
package kelly

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the Kelly replications.
const Collection = "ellsworth-kelly-replications"

// Matrix holds colour indices, top row first.
type Matrix [][]float64

// NewMatrix returns a rows by cols matrix of zeros.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

// Size returns the row and column counts.
func (m Matrix) Size() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Range returns the smallest and largest entries.
func (m Matrix) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range m {
		for _, v := range row {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	return lo, hi
}

// Palette builds the listed colormap of a design, with the background
// first when it has one.
func Palette(background *gg.RGBA, colours ...gg.RGBA) *colormap.Listed {
	all := make([]gg.RGBA, 0, len(colours)+1)
	if background != nil {
		all = append(all, *background)
	}
	return colormap.NewListed("kelly", append(all, colours...)...)
}

// matrixLimits puts cell (r, c) centred on (c, rows-1-r).
func matrixLimits(m Matrix) field.Limits {
	rows, cols := m.Size()
	return field.Lim(-0.5, float64(cols)-0.5, -0.5, float64(rows)-0.5)
}

// DrawMatrix paints m into ax one flat cell per entry, normalising from
// the smallest to the largest entry into cm.
func DrawMatrix(ax *plot.Axes, m Matrix, cm colormap.Colormap) error {
	rows, cols := m.Size()
	if rows == 0 || cols == 0 {
		return nil
	}
	lim := matrixLimits(m)
	ax.SetLimits(lim)
	ax.SetAspectEqual()
	lo, hi := m.Range()
	cell := func(x, y float64) float64 {
		c := int(math.Floor(x + 0.5))
		r := rows - 1 - int(math.Floor(y+0.5))
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return math.NaN()
		}
		return m[r][c]
	}
	return ax.Field(cell, lim, cm, lo, hi)
}

// Border strokes a frame of width pt just outside the axes, so it touches
// the design without covering it.
func Border(ax *plot.Axes, widthPt float64, c gg.RGBA) error {
	if widthPt <= 0 {
		return nil
	}
	lim := ax.Limits()
	d := ax.Figure().Points(widthPt) / 2 / ax.Scale()
	ax.SetClip(false)
	defer ax.SetClip(true)
	frame := []gg.Point{
		{X: lim.XMin - d, Y: lim.YMin - d}, {X: lim.XMax + d, Y: lim.YMin - d},
		{X: lim.XMax + d, Y: lim.YMax + d}, {X: lim.XMin - d, Y: lim.YMax + d},
	}
	edge := plot.LineStyle{Color: c, Width: widthPt, Join: gg.LineJoinMiter}
	return ax.Polygon(frame, plot.Outlined(edge))
}

// gridStyle is the faint line between cells.
var gridStyle = plot.LineStyle{Color: colormap.MustParse("darkgrey"), Width: 0.8, Alpha: 0.4}

// CellGrid draws lines along every cell edge of an n by n matrix.
func CellGrid(ax *plot.Axes, n int) error {
	lim := ax.Limits()
	var lines [][]gg.Point
	for k := range n + 1 {
		v := float64(k) - 0.5
		lines = append(lines,
			[]gg.Point{{X: v, Y: lim.YMin}, {X: v, Y: lim.YMax}},
			[]gg.Point{{X: lim.XMin, Y: v}, {X: lim.XMax, Y: v}},
		)
	}
	return ax.Lines(lines, gridStyle)
}
