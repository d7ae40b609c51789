// Package repolygon builds tiling designs from repeated regular polygons.
//
// A design stacks layers, each a grid of identical polygons, and draws
// them in z-order. Full-colour designs may also fill the overlap of tiles
// from two layers.
package repolygon

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the repolygon designs.
const Collection = "repolygon"

// DefaultRepeats is the number of tiles along each axis of a layer.
const DefaultRepeats = 20

// sizeIn is the side of the square figure in inches.
const sizeIn = 3.7

// Tones of the minimal designs.
const (
	Dark  = "midnightblue"
	Mid   = "royalblue"
	Light = "cornflowerblue"
)

// Tile is the geometry of one layer. Rotation is the divisor n of the π/n
// phase of vertex 0. Tile (p, q) is offset by (p*Spacing.X, q*Spacing.Y)
// plus Shift.
type Tile struct {
	Sides    int
	Scale    float64
	Rotation float64
	Spacing  gg.Point
	Shift    gg.Point
}

func (t Tile) vertex(p, q, k int) gg.Point {
	a := 2*float64(k)*math.Pi/float64(t.Sides) + math.Pi/t.Rotation
	return gg.Pt(
		t.Scale*math.Cos(a)+float64(p)*t.Spacing.X+t.Shift.X,
		t.Scale*math.Sin(a)+float64(q)*t.Spacing.Y+t.Shift.Y,
	)
}

// Path returns the outline of tile (p, q): vertices k = 0..Sides+1, the
// last two repeating the first two. Callers close the path.
func (t Tile) Path(p, q int) []gg.Point {
	out := make([]gg.Point, 0, t.Sides+2)
	for k := 0; k <= t.Sides+1; k++ {
		out = append(out, t.vertex(p, q, k))
	}
	return out
}

// Polygon returns the Sides distinct vertices of tile (p, q).
func (t Tile) Polygon(p, q int) []gg.Point {
	out := make([]gg.Point, t.Sides)
	for k := range out {
		out[k] = t.vertex(p, q, k)
	}
	return out
}

// Style is how a layer is drawn. Edge and Fill are palette keys or colour
// names; zero fields take the minimal-tone defaults.
type Style struct {
	Width   float64
	Line    plot.Dash
	Edge    string
	Fill    string
	Z       int
	Repeats int
}

func (s Style) withDefaults() Style {
	if s.Width == 0 {
		s.Width = 1
	}
	if s.Edge == "" {
		s.Edge = Light
	}
	if s.Fill == "" {
		s.Fill = "none"
	}
	if s.Repeats == 0 {
		s.Repeats = DefaultRepeats
	}
	return s
}

// Layer is a tiled polygon with its style.
type Layer struct {
	Tile
	Style
}

// Tiles returns the outline of every tile, in column-major order.
func (l Layer) Tiles() [][]gg.Point {
	return l.each(l.Path)
}

// Polygons is Tiles without the repeated closing vertices.
func (l Layer) Polygons() [][]gg.Point {
	return l.each(l.Polygon)
}

func (l Layer) each(tile func(p, q int) []gg.Point) [][]gg.Point {
	n := l.withDefaults().Repeats
	out := make([][]gg.Point, 0, n*n)
	for p := range n {
		for q := range n {
			out = append(out, tile(p, q))
		}
	}
	return out
}

// Intersection fills every overlap between a tile of layer I and a tile
// of layer J with Colour at z-order Z. I == J overlaps tiles of a single
// layer with each other.
type Intersection struct {
	I, J   int
	Colour string
	Z      int
}

// Design is one tiling.
type Design struct {
	Name          string
	Layers        []Layer
	Intersections []Intersection
	Cutoffs       field.Limits
	// Background defaults to Dark.
	Background string
	Palette    map[string]string
}

// Colour resolves a palette key, falling back to colour names and hex.
func (d Design) Colour(name string) (gg.RGBA, error) {
	if v, ok := d.Palette[name]; ok {
		name = v
	}
	c, err := colormap.Parse(name)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%s: %w", d.Name, err)
	}
	return c, nil
}

// Overlaps returns the non-empty intersections of every pair of distinct
// tiles taken one from a and one from b. With same set, a and b are the
// same layer and each unordered pair is tried once.
func Overlaps(a, b [][]gg.Point, same bool) [][]gg.Point {
	type box struct{ lo, hi gg.Point }
	boxes := func(ps [][]gg.Point) []box {
		out := make([]box, len(ps))
		for i, p := range ps {
			out[i].lo, out[i].hi = plot.Bounds(p)
		}
		return out
	}
	ba, bb := boxes(a), boxes(b)
	var out [][]gg.Point
	for i, p := range a {
		for j, q := range b {
			if same && j <= i {
				continue
			}
			if ba[i].hi.X <= bb[j].lo.X || bb[j].hi.X <= ba[i].lo.X ||
				ba[i].hi.Y <= bb[j].lo.Y || bb[j].hi.Y <= ba[i].lo.Y {
				continue
			}
			c := plot.ClipConvex(p, q)
			if len(c) >= 3 && math.Abs(plot.SignedArea(c)) > 1e-9 {
				out = append(out, c)
			}
		}
	}
	return out
}

// item is one z-ordered drawing step.
type item struct {
	z    int
	draw func(ax *plot.Axes) error
}

func (d Design) items() ([]item, error) {
	var items []item
	for _, l := range d.Layers {
		s := l.withDefaults()
		edge, err := d.Colour(s.Edge)
		if err != nil {
			return nil, err
		}
		fill, err := d.Colour(s.Fill)
		if err != nil {
			return nil, err
		}
		style := plot.PatchStyle{
			Fill: fill,
			Edge: plot.LineStyle{Color: edge, Width: s.Width, Dash: s.Line, Join: gg.LineJoinMiter},
		}
		if edge.A == 0 {
			style.Edge.Width = 0
		}
		tiles := l.Tiles()
		items = append(items, item{s.Z, func(ax *plot.Axes) error {
			for _, t := range tiles {
				if err := ax.Polygon(t, style); err != nil {
					return err
				}
			}
			return nil
		}})
	}
	for _, in := range d.Intersections {
		if in.I < 0 || in.I >= len(d.Layers) || in.J < 0 || in.J >= len(d.Layers) {
			return nil, fmt.Errorf("%s: intersection of layers %d and %d out of range", d.Name, in.I, in.J)
		}
		c, err := d.Colour(in.Colour)
		if err != nil {
			return nil, err
		}
		overlaps := Overlaps(d.Layers[in.I].Polygons(), d.Layers[in.J].Polygons(), in.I == in.J)
		items = append(items, item{in.Z, func(ax *plot.Axes) error {
			for _, o := range overlaps {
				if err := ax.Polygon(o, plot.Filled(c)); err != nil {
					return err
				}
			}
			return nil
		}})
	}
	slices.SortStableFunc(items, func(a, b item) int { return a.z - b.z })
	return items, nil
}

// Draw renders d on a square figure with equal-aspect axes.
func Draw(dc *gg.Context, d Design) error {
	bgName := d.Background
	if bgName == "" {
		bgName = Dark
	}
	bg, err := d.Colour(bgName)
	if err != nil {
		return err
	}
	items, err := d.items()
	if err != nil {
		return err
	}
	fig := plot.NewFigure(dc, sizeIn, sizeIn)
	fig.Background(gg.White)
	ax := fig.FullAxes(d.Cutoffs)
	ax.SetAspectEqual()
	if err := ax.Background(bg); err != nil {
		return err
	}
	for _, it := range items {
		if err := it.draw(ax); err != nil {
			return err
		}
	}
	return nil
}

func register(dir, prefix string, ds []Design) {
	for _, d := range ds {
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       prefix + d.Name,
			Path:       Collection + "/" + dir + "/" + d.Name,
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, d)
			},
		})
	}
}

func init() {
	register("minimal", "minimal_", Minimal)
	register("full-colour", "full_colour_", FullColour)
	register("replications", "", Shining)
}
