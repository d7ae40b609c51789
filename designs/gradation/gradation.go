// Package gradation renders the Bold Gradation designs: a slowly varying
// function of a two dimensional field, cropped to a window where its
// colour changes gently.
package gradation

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the gradations.
const Collection = "bold-gradation"

// Samples is the number of sample positions along each axis. Sample i
// sits at i/Samples - 0.5.
const Samples = 5000

// Coord maps a sample index to its field coordinate.
func Coord(i float64) float64 { return i/Samples - 0.5 }

// Params is one gradation. XLims and YLims crop the field in sample
// indices; YLims runs bottom to top.
type Params struct {
	Name     string
	XLims    [2]float64
	YLims    [2]float64
	R        func(x, y float64) float64
	A        func(r float64) float64
	Colormap string
}

// Value evaluates A(R(x, y)) at fractional sample indices.
func (p Params) Value(i, j float64) float64 {
	return p.A(p.R(Coord(i), Coord(j)))
}

// Draw renders p filling the figure.
func Draw(dc *gg.Context, p Params) error {
	cm, err := colormap.Lookup(p.Colormap)
	if err != nil {
		return err
	}
	lim := field.Lim(p.XLims[0], p.XLims[1], p.YLims[0], p.YLims[1])
	fig := plot.NewFigure(dc, 6, 6)
	fig.Background(gg.White)
	ax := fig.FullAxes(lim)
	return ax.FieldAuto(p.Value, lim, cm)
}

// Designs lists the finished gradations.
var Designs = []Params{
	{
		Name:  "Union",
		XLims: [2]float64{1400, 3600},
		YLims: [2]float64{1400, 3600},
		R: func(x, y float64) float64 {
			return 1.6*math.Cos(x-y) + 1.5*math.Sin(y*y)
		},
		A:        func(r float64) float64 { return math.Cos(math.Pi * math.Pow(r, 4)) },
		Colormap: "twilight_shifted",
	},
	{
		Name:  "Forth",
		XLims: [2]float64{350, 4850},
		YLims: [2]float64{0, 4500},
		R: func(x, y float64) float64 {
			u := math.Pow(x, 5) - x*x
			v := math.Pow(y, 6) - math.Pow(y, 4) - math.Pow(y, 3)
			return math.Pow(u*u+v*v, 0.1)
		},
		A:        func(r float64) float64 { return math.Cos(math.Pi * (5*r*r*r - 20*r*r)) },
		Colormap: "bone",
	},
	{
		Name:  "Vicinity",
		XLims: [2]float64{100, 1000},
		YLims: [2]float64{3800, 4700},
		R: func(x, y float64) float64 {
			return math.Cos((y*y*y+math.Pi-x*x)/(x*x*x-y*y)) / (math.Sinh(x-y*y) + 1)
		},
		A:        func(r float64) float64 { return math.Cos(r) - 1 },
		Colormap: "cubehelix_r",
	},
}

func init() {
	for _, p := range Designs {
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       p.Name,
			Path:       Collection + "/designs/" + p.Name,
			Aspect:     (p.XLims[1] - p.XLims[0]) / (p.YLims[1] - p.YLims[0]),
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, p)
			},
		})
	}
}
