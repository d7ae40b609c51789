package kelly

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/plot"
)

// singleIn is the side of a one-matrix design in inches.
const singleIn = 3.7

func rgb(c ...[3]uint8) []gg.RGBA {
	out := make([]gg.RGBA, len(c))
	for i, v := range c {
		out[i] = colormap.RGB255(v[0], v[1], v[2])
	}
	return out
}

// Nine Squares.
var (
	nsBackground = colormap.RGB255(242, 233, 234)
	nsColours    = rgb(
		[3]uint8{57, 121, 87},   // green
		[3]uint8{253, 214, 49},  // yellow
		[3]uint8{22, 32, 91},    // blue
		[3]uint8{81, 123, 197},  // light blue
		[3]uint8{28, 26, 29},    // black
		[3]uint8{198, 85, 43},   // orange
		[3]uint8{231, 132, 5},   // light orange
		[3]uint8{165, 192, 141}, // light green
		[3]uint8{77, 50, 105},   // purple
	)
)

// NineSquares returns the Nine Squares matrix: a 3x3 arrangement of
// squares of side sq with gap between them, numbered 1 to 9 row by row on
// a background of 0.
func NineSquares(squares, sq, gap int) Matrix {
	size := squares*sq + (squares-1)*gap
	m := NewMatrix(size, size)
	v := 1.0
	for i := 0; i < size; i += sq + gap {
		for j := 0; j < size; j += sq + gap {
			for r := i; r < i+sq; r++ {
				for c := j; c < j+sq; c++ {
					m[r][c] = v
				}
			}
			v++
		}
	}
	return m
}

// Spectrum I.
var s1Colours = rgb(
	[3]uint8{253, 226, 24}, // yellow
	[3]uint8{89, 172, 80},  // light green
	[3]uint8{1, 146, 59},   // green
	[3]uint8{1, 124, 104},  // teal
	[3]uint8{1, 105, 166},  // lighter blue
	[3]uint8{46, 85, 162},  // blue
	[3]uint8{110, 66, 133}, // purple
	[3]uint8{156, 70, 107}, // puce
	[3]uint8{184, 49, 82},  // magenta
	[3]uint8{222, 38, 47},  // red
	[3]uint8{231, 71, 45},  // orange
	[3]uint8{236, 112, 52}, // lighter orange
	[3]uint8{247, 171, 25}, // dark yellow
)

// Stripes returns an n by n matrix whose columns count 0 to n-1, except
// the last which repeats the first.
func Stripes(n int) Matrix {
	m := NewMatrix(n, n)
	for r := range m {
		for c := range m[r] {
			m[r][c] = float64(c)
		}
		m[r][n-1] = 0
	}
	return m
}

// drawSingle renders one matrix with an optional border in a square
// figure.
func drawSingle(dc *gg.Context, m Matrix, cm colormap.Colormap, borderPt float64, borderColour gg.RGBA) error {
	borderIn := borderPt / 72
	side := singleIn + 2*borderIn
	fig := plot.NewFigure(dc, side, side)
	fig.Background(gg.White)
	inset := borderIn / side
	ax := fig.Axes(plot.Box{X0: inset, Y0: inset, X1: 1 - inset, Y1: 1 - inset}, matrixLimits(m))
	if err := DrawMatrix(ax, m, cm); err != nil {
		return err
	}
	return Border(ax, borderPt, borderColour)
}

func init() {
	ggart.MustRegister(
		ggart.Design{
			Collection: Collection,
			Name:       "NS",
			Title:      "Nine Squares",
			Path:       Collection + "/img/NS",
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return drawSingle(dc, NineSquares(3, 10, 6), Palette(&nsBackground, nsColours...), 5, nsBackground)
			},
		},
		ggart.Design{
			Collection: Collection,
			Name:       "S1",
			Title:      "Spectrum I",
			Path:       Collection + "/img/S1",
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return drawSingle(dc, Stripes(len(s1Colours)+1), Palette(nil, s1Colours...), 0, gg.White)
			},
		},
	)
	for _, c := range ByChance {
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       c.Name,
			Title:      c.Title,
			Path:       Collection + "/img/" + c.Name,
			Draw: func(dc *gg.Context, rng *rand.Rand) error {
				return DrawByChance(dc, rng, c)
			},
		})
	}
	ggart.MustRegister(ggart.Design{
		Collection: Collection,
		Name:       "cite",
		Title:      "Cité",
		Path:       Collection + "/img/cité",
		Aspect:     float64(Cite.Cols) / float64(Cite.Rows),
		Draw: func(dc *gg.Context, rng *rand.Rand) error {
			return DrawCite(dc, rng, Cite)
		},
	})
}
