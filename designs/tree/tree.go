// Package tree draws canopy fractal tree profiles: a trunk that splits
// into two shorter branches at a fixed angle, recursively, until the
// branches are shorter than one unit.
package tree

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the tree profiles.
const Collection = "tree-profiles"

// Params defines one tree.
type Params struct {
	X, Y      float64 // base of the trunk
	Angle     float64 // trunk direction, radians
	Spread    float64 // angle between a branch and its parent
	Length    float64 // trunk length
	Scaling   float64 // child length / parent length
	Thickness float64 // line width in points per unit of segment length
}

// DefaultParams is the profile the whole collection varies from.
func DefaultParams() Params {
	return Params{
		X:         100,
		Y:         100,
		Angle:     0.5 * math.Pi,
		Spread:    0.05 * math.Pi,
		Length:    400,
		Scaling:   0.6,
		Thickness: 0.1,
	}
}

// Segment is one branch.
type Segment struct {
	From, To gg.Point
	Width    float64 // points
}

// Segments grows the tree depth first: each branch is followed by its
// counter-clockwise subtree, then its clockwise one.
func Segments(p Params) []Segment {
	var out []Segment
	var grow func(x, y, length, theta float64)
	grow = func(x, y, length, theta float64) {
		if length < 1 {
			return
		}
		nx, ny := x+length*math.Cos(theta), y+length*math.Sin(theta)
		out = append(out, Segment{
			From:  gg.Pt(x, y),
			To:    gg.Pt(nx, ny),
			Width: p.Thickness * math.Hypot(nx-x, ny-y),
		})
		next := length * p.Scaling
		grow(nx, ny, next, theta+p.Spread)
		grow(nx, ny, next, theta-p.Spread)
	}
	grow(p.X, p.Y, p.Length, p.Angle)
	return out
}

// limits autoscales the way a plotting library does: data bounds plus a
// 5% margin on each side.
func limits(segs []Segment) field.Limits {
	pts := make([]gg.Point, 0, 2*len(segs))
	for _, s := range segs {
		pts = append(pts, s.From, s.To)
	}
	lo, hi := plot.Bounds(pts)
	mx, my := 0.05*(hi.X-lo.X), 0.05*(hi.Y-lo.Y)
	return field.Lim(lo.X-mx, hi.X+mx, lo.Y-my, hi.Y+my)
}

// Draw renders a tree on a white 6.4 by 4.8 inch figure with a title
// naming its spread.
func Draw(dc *gg.Context, p Params, index int) error {
	fig := plot.NewFigure(dc, 6.4, 4.8)
	fig.Background(gg.White)

	segs := Segments(p)
	ax := fig.Axes(plot.SubplotBox, limits(segs))
	ax.SetAspectEqual()
	ax.SetClip(false)
	for _, s := range segs {
		style := plot.LineStyle{Color: gg.Black, Width: s.Width, Cap: gg.LineCapRound}
		if err := ax.Line(s.From.X, s.From.Y, s.To.X, s.To.Y, style); err != nil {
			return err
		}
	}
	title := "Tree " + strconv.Itoa(index) + ": parameter angle_between_segments is '" +
		strconv.FormatFloat(p.Spread, 'g', -1, 64) + "'"
	return ax.Title(title, 12, 6, gg.Black)
}

func init() {
	p := DefaultParams()
	for i := 1; i <= 5; i++ {
		params := p
		index := i
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       "basic-canopy-fractal-" + strconv.Itoa(i),
			Path:       Collection + "/example-profiles/basic-canopy-fractal-" + strconv.Itoa(i),
			Aspect:     6.4 / 4.8,
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, params, index)
			},
		})
		p.Spread *= 1.5
	}
}
