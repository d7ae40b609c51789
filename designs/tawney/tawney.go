// Package tawney draws string-art designs after Lenore Tawney: straight
// segments on squared paper joined by fans of evenly spaced lines, with
// optional regular polygons.
package tawney

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the Tawney designs.
const Collection = "lenore-tawney-replications"

// DefaultLines is the number of lines in a join when a design sets none.
const DefaultLines = 68

// Segment is a straight line from its first point to its second.
type Segment [2]gg.Point

// Join describes one fan of lines: from segment A to segment B, or from
// a fixed point to segment B.
type Join struct {
	A, B      int
	Point     gg.Point
	FromPoint bool
}

// Pair joins segments a and b. A negative index reverses the direction in
// which the first segment is walked.
func Pair(a, b int) Join {
	return Join{A: a, B: b}
}

// Anchor joins the point (x, y) to segment b.
func Anchor(x, y float64, b int) Join {
	return Join{Point: gg.Pt(x, y), B: b, FromPoint: true}
}

// resolve returns the absolute indices and whether the fan is reversed.
func (j Join) resolve() (a, b int, reverse bool) {
	a, b = j.A, j.B
	if a < 0 {
		a, reverse = -a, true
	}
	if b < 0 {
		b, reverse = -b, true
	}
	return a, b, reverse
}

// Polygon is a regular polygon outline. Rotation is the divisor n of the
// π/n phase of the first vertex. JoinAcross adds spokes from the centre
// to every vertex.
type Polygon struct {
	Sides      int
	Centre     gg.Point
	Radius     float64
	Rotation   float64
	Colour     gg.RGBA
	JoinAcross bool
}

// Params fully describes one design.
type Params struct {
	Name     string
	Segments []Segment
	Joins    []Join
	// FigSize is width and height in inches; Scale is the extent of the
	// shorter side in grid units.
	FigSize   [2]float64
	Scale     float64
	LineWidth float64
	Alpha     float64

	Background gg.RGBA
	Grid       gg.RGBA
	Line       gg.RGBA
	// Ghost hides the segments and draws only the joins.
	Ghost bool
	// Lines is the number of lines per join, DefaultLines when zero.
	Lines int
	// Overrides recolours the segment and the join with the same index.
	Overrides map[int]gg.RGBA
	Polygons  []Polygon
}

// Slug is the output file stem.
func (p Params) Slug() string {
	return ggart.Slug(p.Name)
}

// Limits scales the axes with the figure so the grid cells are square.
func (p Params) Limits() field.Limits {
	w, h := p.FigSize[0], p.FigSize[1]
	if w < h {
		return field.Lim(0, p.Scale, 0, p.Scale*h/w)
	}
	return field.Lim(0, p.Scale*w/h, 0, p.Scale)
}

func (p Params) lines() int {
	if p.Lines > 0 {
		return p.Lines
	}
	return DefaultLines
}

func (p Params) colour(i int) gg.RGBA {
	if c, ok := p.Overrides[i]; ok {
		return c
	}
	return p.Line
}

func (p Params) style(c gg.RGBA) plot.LineStyle {
	return plot.LineStyle{Color: c, Width: p.LineWidth, Alpha: p.Alpha, Cap: gg.LineCapSquare}
}

func linspace(a, b gg.Point, n int) []gg.Point {
	xs := field.Linspace(a.X, b.X, n)
	ys := field.Linspace(a.Y, b.Y, n)
	out := make([]gg.Point, n)
	for i := range out {
		out[i] = gg.Pt(xs[i], ys[i])
	}
	return out
}

// Between returns n lines from points walked along s1 to points walked
// backwards along s2, so the first line joins the start of s1 to the end
// of s2. reverse walks s1 from its end instead.
func Between(s1, s2 Segment, n int, reverse bool) []Segment {
	from := linspace(s1[0], s1[1], n)
	if reverse {
		from = linspace(s1[1], s1[0], n)
	}
	to := linspace(s2[1], s2[0], n)
	out := make([]Segment, n)
	for i := range out {
		out[i] = Segment{from[i], to[i]}
	}
	return out
}

// FromPoint returns n lines from p to points walked along s.
func FromPoint(p gg.Point, s Segment, n int) []Segment {
	to := linspace(s[0], s[1], n)
	out := make([]Segment, n)
	for i := range out {
		out[i] = Segment{p, to[i]}
	}
	return out
}

// PolygonVertices returns sides+1 vertices, the last repeating the first,
// for k = 1..sides+1 at angle 2kπ/sides + π/rotation.
func PolygonVertices(sides int, centre gg.Point, radius, rotation float64) []gg.Point {
	out := make([]gg.Point, 0, sides+1)
	for k := 1; k <= sides+1; k++ {
		a := 2*float64(k)*math.Pi/float64(sides) + math.Pi/rotation
		out = append(out, gg.Pt(centre.X+radius*math.Cos(a), centre.Y+radius*math.Sin(a)))
	}
	return out
}

func polylines(segs []Segment) [][]gg.Point {
	out := make([][]gg.Point, len(segs))
	for i, s := range segs {
		out[i] = []gg.Point{s[0], s[1]}
	}
	return out
}

// grid draws minor lines every unit and major lines every ten units.
func grid(ax *plot.Axes, c gg.RGBA) error {
	lim := ax.Limits()
	var minor [][]gg.Point
	for x := 1.0; x <= lim.XMax; x++ {
		if math.Mod(x, 10) != 0 {
			minor = append(minor, []gg.Point{{X: x, Y: lim.YMin}, {X: x, Y: lim.YMax}})
		}
	}
	for y := 1.0; y <= lim.YMax; y++ {
		if math.Mod(y, 10) != 0 {
			minor = append(minor, []gg.Point{{X: lim.XMin, Y: y}, {X: lim.XMax, Y: y}})
		}
	}
	if err := ax.Lines(minor, plot.Line(c, 0.5).WithAlpha(0.3)); err != nil {
		return err
	}
	return ax.GridLines(10, plot.Line(c, 0.8).WithAlpha(0.5))
}

// Draw renders p: grid, polygons, segments unless ghosted, then joins.
func Draw(dc *gg.Context, p Params) error {
	fig := plot.NewFigure(dc, p.FigSize[0], p.FigSize[1])
	fig.Background(p.Background)
	ax := fig.FullAxes(p.Limits())
	if err := grid(ax, p.Grid); err != nil {
		return err
	}

	for _, pg := range p.Polygons {
		vs := PolygonVertices(pg.Sides, pg.Centre, pg.Radius, pg.Rotation)
		edge := p.style(pg.Colour)
		edge.Cap = gg.LineCapButt
		if err := ax.Polygon(vs, plot.Outlined(edge)); err != nil {
			return err
		}
		if !pg.JoinAcross {
			continue
		}
		spokes := make([]Segment, 0, len(vs)-1)
		for _, v := range vs[:len(vs)-1] {
			spokes = append(spokes, Segment{pg.Centre, v})
		}
		if err := ax.Lines(polylines(spokes), p.style(pg.Colour)); err != nil {
			return err
		}
	}

	if !p.Ghost {
		for i, s := range p.Segments {
			if err := ax.Line(s[0].X, s[0].Y, s[1].X, s[1].Y, p.style(p.colour(i))); err != nil {
				return err
			}
		}
	}

	n := p.lines()
	for i, j := range p.Joins {
		var fan []Segment
		if j.FromPoint {
			fan = FromPoint(j.Point, p.Segments[j.B], n)
		} else {
			a, b, rev := j.resolve()
			fan = Between(p.Segments[a], p.Segments[b], n, rev)
		}
		if err := ax.Lines(polylines(fan), p.style(p.colour(i))); err != nil {
			return err
		}
	}
	return nil
}

func register(dir string, ps []Params) {
	for _, p := range ps {
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       p.Slug(),
			Title:      p.Name,
			Aspect:     p.FigSize[0] / p.FigSize[1],
			Path:       Collection + "/img/" + dir + "/" + p.Slug(),
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, p)
			},
		})
	}
}

func init() {
	register("replications", Replications)
	register("variations", Variations)
}
