// Package spindles plots bundles of Brownian motion paths in polar
// coordinates, so that time winds round the centre like yarn on a spool.
package spindles

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the spindles.
const Collection = "spindles"

// Params controls the simulation and its styling.
type Params struct {
	T          float64 // total simulated time, also the total angle wound
	Paths      int
	Steps      int
	Sigma      float64 // volatility: increments have scale Sigma*sqrt(T/Steps)
	RMax       float64
	Background gg.RGBA
	LineWidth  float64 // points
	Alpha      float64
}

// DefaultParams returns the settings used by every registered design.
func DefaultParams() Params {
	return Params{
		T:          300,
		Paths:      250,
		Steps:      10000,
		Sigma:      0.5,
		RMax:       5,
		Background: colormap.MustParse("#14001B"),
		LineWidth:  0.2,
		Alpha:      0.2,
	}
}

// Colourmaps lists the palettes of the registered designs.
var Colourmaps = []string{
	"bone", "twilight", "cividis", "gist_earth", "pink",
	"ocean", "terrain", "copper", "OrRd",
}

// SimulateBrownian returns paths Brownian motions of steps increments each. Every
// path starts at 0 and holds steps+1 positions.
func SimulateBrownian(rng *rand.Rand, paths, steps int, T, sigma float64) [][]float64 {
	scale := sigma * math.Sqrt(T/float64(steps))
	out := make([][]float64, paths)
	for i := range out {
		path := make([]float64, steps+1)
		for k := 1; k <= steps; k++ {
			path[k] = path[k-1] + scale*rng.NormFloat64()
		}
		out[i] = path
	}
	return out
}

// Times returns the sample times 0..T matching SimulateBrownian's positions.
func Times(T float64, steps int) []float64 {
	return field.Linspace(0, T, steps+1)
}

// Draw renders one spindle coloured by cm.
func Draw(dc *gg.Context, rng *rand.Rand, p Params, cm colormap.Colormap) error {
	fig := plot.NewFigure(dc, 4.8, 4.8)
	fig.Background(p.Background)

	paths := SimulateBrownian(rng, p.Paths, p.Steps, p.T, p.Sigma)
	rmin := math.Inf(1)
	for _, path := range paths {
		for _, r := range path {
			rmin = math.Min(rmin, r)
		}
	}
	ax := fig.Polar(plot.SubplotBox, rmin, p.RMax)
	if err := ax.Background(p.Background); err != nil {
		return err
	}
	theta := Times(p.T, p.Steps)
	colours := colormap.Sample(cm, p.Paths)
	for i, path := range paths {
		style := plot.LineStyle{Color: colours[i], Width: p.LineWidth, Alpha: p.Alpha}
		if err := ax.Polyline(theta, path, style); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	for _, name := range Colourmaps {
		cm := colormap.MustLookup(name)
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       "spindles-instance-in-" + name,
			Path:       Collection + "/outputs/spindles-instance-in-" + name,
			Title:      "Spindles in " + name,
			Draw: func(dc *gg.Context, rng *rand.Rand) error {
				return Draw(dc, rng, DefaultParams(), cm)
			},
		})
	}
}
