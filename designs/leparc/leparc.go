// Package leparc replicates four 1959 works by Julio Le Parc as grids of
// rotated shapes, each with an animation in which every shape turns at
// the same rate.
package leparc

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the Le Parc replications.
const Collection = "julio-le-parc-replications"

const (
	// pad is the grid coordinate of the first point.
	pad = 2
	// Frames is the length of every animation.
	Frames = 240
	// FPS is the animation playback rate.
	FPS = 30
)

// FrameShift is the angle added to every shape at frame i, in the same
// degree units as the angle grids.
func FrameShift(i int) float64 {
	return 10 * float64(i) * math.Pi / 12
}

// Artwork is one replicated work.
type Artwork struct {
	Title      string
	Gridpoints int
	Background gg.RGBA
	// draw paints every point with all angles advanced by shift.
	draw func(ax *plot.Axes, shift float64) error
}

// Dir is the output directory under img/.
func (a Artwork) Dir() string {
	return ggart.Slug(a.Title)
}

// Draw renders the work with all shapes advanced by shift degrees.
func (a Artwork) Draw(dc *gg.Context, shift float64) error {
	fig := plot.NewFigure(dc, 6, 6)
	fig.Background(a.Background)
	hi := float64(a.Gridpoints + pad)
	ax := fig.FullAxes(field.Lim(1, hi, 1, hi))
	return a.draw(ax, shift)
}

func position(i, j int) (x, y float64) {
	return float64(pad + i), float64(pad + j)
}

// edge returns a thin outline in the background colour.
func edge(c gg.RGBA) plot.LineStyle {
	return plot.LineStyle{Color: c, Width: 1}
}

// Mutations is Mutation of Forms: a red and a blue wedge per point.
func Mutations() Artwork {
	const n = 10
	bg := colormap.MustParse("#FAEFDD")
	red, blue := colormap.MustParse("#CB0B22"), colormap.MustParse("#1D119B")
	reds, blues := MutationAngles(n, true), MutationAngles(n, false)
	return Artwork{
		Title:      "MUTATION OF FORMS",
		Gridpoints: n,
		Background: bg,
		draw: func(ax *plot.Axes, shift float64) error {
			for i := range n {
				for j := range n {
					x, y := position(i, j)
					r, b := reds[i][j], blues[i][j]
					if err := ax.Wedge(x, y, 0.475, r[0]+shift, r[1]+shift, plot.Filled(red)); err != nil {
						return err
					}
					if err := ax.Wedge(x, y, 0.475, b[0]+shift, b[1]+shift, plot.Filled(blue)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

// Rotations are dark discs, each with a light slab cut from one side.
func Rotations() Artwork {
	const n = 13
	bg, dark := colormap.MustParse("#F4EDE5"), colormap.MustParse("#161815")
	angles := RotationAngles(n)
	return Artwork{
		Title:      "ROTATIONS",
		Gridpoints: n,
		Background: bg,
		draw: func(ax *plot.Axes, shift float64) error {
			for i := range n {
				for j := range n {
					x, y := position(i, j)
					if err := ax.Circle(x, y, 0.45, plot.PatchStyle{Fill: dark, Edge: edge(bg)}); err != nil {
						return err
					}
					if err := ax.CircleSlab(x, y, 0.45, 0.3, 0.48, angles[i][j]+shift, plot.Filled(bg)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

// Fractioned is Rotation of Fractioned Circles: light discs, each half
// dark with a light line just off the diameter.
func Fractioned() Artwork {
	const n = 9
	bg := colormap.MustParse("#F5EFE3")
	light, dark := colormap.MustParse("#D3D2D0"), colormap.MustParse("#63676B")
	angles := FractionedAngles(n)
	return Artwork{
		Title:      "ROTATION OF FRACTIONED CIRCLES",
		Gridpoints: n,
		Background: bg,
		draw: func(ax *plot.Axes, shift float64) error {
			for i := range n {
				for j := range n {
					x, y := position(i, j)
					th := angles[i][j] + shift
					if err := ax.Circle(x, y, 0.45, plot.PatchStyle{Fill: light, Edge: edge(bg)}); err != nil {
						return err
					}
					if err := ax.CircleSlab(x, y, 0.45, 0.02, 0.47, th, plot.Filled(dark)); err != nil {
						return err
					}
					if err := ax.CircleSlab(x, y, 0.45, 0.02, 0.14, th, plot.Filled(bg)); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

// RedAndBlack is Rotation in Red and Black: a red and a black line
// crossing at right angles on every point, red on top.
func RedAndBlack() Artwork {
	const (
		n        = 10
		halfLine = 0.5
		width    = 0.05
	)
	bg := colormap.MustParse("#F2ECE0")
	black, red := colormap.MustParse("#100F0D"), colormap.MustParse("#983134")
	angles := RedAndBlackAngles(n)
	cross := func(ax *plot.Axes, x, y, angle float64, c gg.RGBA) error {
		for _, th := range []float64{angle, angle + 180} {
			if err := ax.RotatedRect(x, y, -width, -width/2, halfLine, width, th, plot.Filled(c)); err != nil {
				return err
			}
		}
		return nil
	}
	return Artwork{
		Title:      "ROTATION IN RED AND BLACK",
		Gridpoints: n,
		Background: bg,
		draw: func(ax *plot.Axes, shift float64) error {
			layers := []struct {
				offset float64
				colour gg.RGBA
			}{{90, black}, {0, red}}
			for _, l := range layers {
				for i := range n {
					for j := range n {
						x, y := position(i, j)
						if err := cross(ax, x, y, angles[i][j]+shift+l.offset, l.colour); err != nil {
							return err
						}
					}
				}
			}
			return nil
		},
	}
}

// Artworks lists the replications in gallery order.
func Artworks() []Artwork {
	return []Artwork{Mutations(), Rotations(), Fractioned(), RedAndBlack()}
}

func init() {
	for _, a := range Artworks() {
		dir := Collection + "/img/" + a.Dir()
		ggart.MustRegister(ggart.Design{
			Collection:    Collection,
			Name:          a.Dir(),
			Title:         ggart.DisplayName(strings.ToLower(a.Title)),
			Path:          dir + "/replication_of_original",
			AnimationPath: dir + "/animation_with_uniform_rotation",
			Frames:        Frames,
			FPS:           FPS,
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return a.Draw(dc, 0)
			},
			DrawFrame: func(dc *gg.Context, _ *rand.Rand, frame int) error {
				return a.Draw(dc, FrameShift(frame))
			},
		})
	}
}
