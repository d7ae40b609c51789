package kelly

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// CiteParams lays out Cité: a grid of panels, each crossed by a few dark
// bands at slightly random heights and slopes.
type CiteParams struct {
	Rows, Cols int
	Bands      int
	PanelIn    float64
	Face, Band gg.RGBA
}

// Cite is the registered layout.
var Cite = CiteParams{
	Rows:    4,
	Cols:    5,
	Bands:   4,
	PanelIn: 2,
	Face:    colormap.MustParse("#E7E3DE"),
	Band:    colormap.MustParse("#1D1D1F"),
}

// Band returns one band quadrilateral in unit panel coordinates, starting
// at height y on the left wall.
func Band(rng *rand.Rand, y float64) []gg.Point {
	y += 0.02 * rng.NormFloat64()
	top := 0.01 + 0.05*rng.NormFloat64()
	bottom := top + 0.05*rng.NormFloat64()
	thick := 0.05 + 0.2*rng.Float64()
	return []gg.Point{
		{X: 0, Y: y},
		{X: 0, Y: y + thick},
		{X: 1, Y: y + thick + bottom},
		{X: 1, Y: y + top},
	}
}

// DrawCite renders p.
func DrawCite(dc *gg.Context, rng *rand.Rand, p CiteParams) error {
	fig := plot.NewFigure(dc, float64(p.Cols)*p.PanelIn, float64(p.Rows)*p.PanelIn)
	fig.Background(p.Face)
	starts := field.Linspace(0, 1, p.Bands)
	for _, ax := range fig.Subplots(p.Rows, p.Cols, field.Lim(0, 1, 0, 1), 0) {
		if err := ax.Background(p.Face); err != nil {
			return err
		}
		for _, y := range starts {
			if err := ax.Polygon(Band(rng, y), plot.Filled(p.Band)); err != nil {
				return err
			}
		}
	}
	return nil
}
