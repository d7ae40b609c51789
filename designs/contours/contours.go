// Package contours draws contour lines of one function over a colour
// gradient of another. Both are sampled on the same grid; the gradient can
// be stretched over a different extent than the contours occupy, and the
// view crops into the result.
package contours

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the contour designs.
const Collection = "contours-on-gradient-backgrounds"

// levelCount is the number of contour intervals asked of field.Levels.
const levelCount = 7

// sizeIn is the side of the square figure in inches.
const sizeIn = 3.7

// Params defines one design.
type Params struct {
	Name       string
	Contour    func(u, v float64) float64
	Background func(u, v float64) float64
	Resolution int

	Grid   field.Limits // where both functions are sampled
	View   field.Limits // axes limits
	Extent field.Limits // where the sampled background is drawn

	// LineWidths are arange(start, stop, step) in points, cycled over
	// the contour levels.
	LineWidths [3]float64

	ContourMap    string
	BackgroundMap string
}

// Draw renders p.
func Draw(dc *gg.Context, p Params) error {
	ccm, err := colormap.Lookup(p.ContourMap)
	if err != nil {
		return err
	}
	bcm, err := colormap.Lookup(p.BackgroundMap)
	if err != nil {
		return err
	}
	fig := plot.NewFigure(dc, sizeIn, sizeIn)
	fig.Background(gg.White)
	ax := fig.FullAxes(p.View)

	bg := field.Evaluate(p.Background, p.Resolution, p.Resolution, p.Grid)
	if lo, hi, ok := bg.Range(); ok {
		ext := p.Extent
		sample := func(x, y float64) float64 {
			fx := (x-ext.XMin)/ext.Width()*float64(bg.Nx) - 0.5
			fy := (y-ext.YMin)/ext.Height()*float64(bg.Ny) - 0.5
			return bg.Bilinear(fx, fy)
		}
		if err := ax.Field(sample, ext, bcm, lo, hi); err != nil {
			return err
		}
	}

	cg := field.Evaluate(p.Contour, p.Resolution, p.Resolution, p.Grid)
	lo, hi, ok := cg.Range()
	if !ok {
		return nil
	}
	levels := field.Levels(lo, hi, levelCount)
	widths := field.Arange(p.LineWidths[0], p.LineWidths[1], p.LineWidths[2])
	if len(widths) == 0 {
		widths = []float64{1}
	}
	first, last := levels[0], levels[len(levels)-1]
	for k, c := range field.Contours(cg, levels) {
		style := plot.Line(ccm.At(field.Normalize(c.Level, first, last)), widths[k%len(widths)])
		if err := ax.Lines(c.Lines, style); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	for _, p := range Designs {
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       p.Name,
			Aspect:     p.View.Width() / p.View.Height(),
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, p)
			},
		})
	}
}
