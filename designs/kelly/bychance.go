package kelly

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/plot"
)

// Chance describes one of the works arranged by chance: a square of
// randomly coloured cells that turn to background more often away from
// the centre.
type Chance struct {
	Name, Title string

	Squares     int     // cells per side
	Circularity float64 // exponent on the distance from the centre
	Offset      float64 // subtracted from the background probability

	BorderPt   float64
	Grid       bool
	Background gg.RGBA
	Colours    []gg.RGBA
}

const (
	chancePanels  = 2
	chanceSpacing = 0.05
	chanceCellIn  = 3.38
)

// Cells returns a random matrix for c. Entries are uniform in [0, 1) and
// cell (i, j) is set to background 0 with probability
// 2*((s/2-i)^2 + (s/2-j)^2)^Circularity/s - Offset.
func (c Chance) Cells(rng *rand.Rand) Matrix {
	s := c.Squares
	m := NewMatrix(s, s)
	for i := range m {
		for j := range m[i] {
			m[i][j] = rng.Float64()
		}
	}
	half := float64(s) / 2
	for i := range m {
		for j := range m[i] {
			di, dj := half-float64(i), half-float64(j)
			dist := math.Pow(di*di+dj*dj, c.Circularity)
			if rng.Float64() < 2*dist/float64(s)-c.Offset {
				m[i][j] = 0
			}
		}
	}
	return m
}

// DrawByChance renders four independent arrangements of c in a 2x2 grid.
func DrawByChance(dc *gg.Context, rng *rand.Rand, c Chance) error {
	borderIn := c.BorderPt / 72
	content := chanceCellIn * (chancePanels + (chancePanels-1)*chanceSpacing)
	side := content + 2*borderIn
	fig := plot.NewFigure(dc, side, side)
	fig.Background(gg.White)
	cm := Palette(&c.Background, c.Colours...)
	inset := borderIn / side
	cell := chanceCellIn / side
	gap := chanceSpacing * cell
	for r := range chancePanels {
		for col := range chancePanels {
			x0 := inset + float64(col)*(cell+gap)
			y1 := 1 - inset - float64(r)*(cell+gap)
			m := c.Cells(rng)
			ax := fig.Axes(plot.Box{X0: x0, Y0: y1 - cell, X1: x0 + cell, Y1: y1}, matrixLimits(m))
			if err := DrawMatrix(ax, m, cm); err != nil {
				return err
			}
			if err := Border(ax, c.BorderPt, c.Background); err != nil {
				return err
			}
			if c.Grid {
				if err := CellGrid(ax, c.Squares); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

var scabcShared = rgb(
	[3]uint8{223, 196, 84},  // yellow
	[3]uint8{160, 50, 46},   // terracotta
	[3]uint8{182, 76, 56},   // light terracotta
	[3]uint8{221, 137, 60},  // orange
	[3]uint8{211, 156, 83},  // sand
	[3]uint8{123, 86, 59},   // brown
	[3]uint8{220, 167, 146}, // beige
	[3]uint8{136, 66, 101},  // plum
	[3]uint8{190, 170, 181}, // lilac
	[3]uint8{181, 188, 131}, // pale green
	[3]uint8{147, 179, 96},  // light green
	[3]uint8{112, 168, 201}, // light blue
)

func withShared(unique ...gg.RGBA) []gg.RGBA {
	return append(append([]gg.RGBA{}, scabcShared...), unique...)
}

// ByChance lists the registered chance arrangements.
var ByChance = []Chance{
	{
		Name: "CFALW", Title: "Colors for a Large Wall",
		Squares: 8, Circularity: 0.15, Offset: 0.05,
		Grid:       true,
		Background: colormap.RGB255(245, 245, 245),
		Colours: rgb(
			[3]uint8{8, 4, 3},
			[3]uint8{60, 10, 12},
			[3]uint8{73, 34, 98},
			[3]uint8{176, 141, 185},
			[3]uint8{238, 126, 138},
			[3]uint8{19, 71, 152},
			[3]uint8{13, 147, 208},
			[3]uint8{2, 39, 84},
			[3]uint8{1, 80, 80},
			[3]uint8{156, 192, 164},
			[3]uint8{254, 218, 35},
			[3]uint8{242, 133, 2},
			[3]uint8{230, 54, 30},
		),
	},
	{
		Name: "SCABC2", Title: "Spectrum Colors Arranged by Chance II",
		Squares: 38, Circularity: 0.48, Offset: 0.2,
		BorderPt:   3,
		Background: colormap.RGB255(233, 227, 213),
		Colours: withShared(rgb(
			[3]uint8{64, 68, 84},    // dark grey blue
			[3]uint8{49, 46, 42},    // black
			[3]uint8{69, 87, 162},   // blue
			[3]uint8{120, 137, 112}, // green
		)...),
	},
	{
		Name: "SCABC4", Title: "Spectrum Colors Arranged by Chance IV",
		Squares: 38, Circularity: 0.48, Offset: 0.2,
		BorderPt:   3,
		Background: colormap.RGB255(8, 11, 11),
		Colours: withShared(rgb(
			[3]uint8{26, 67, 150}, // lighter blue
			[3]uint8{27, 47, 115}, // blue
			[3]uint8{2, 54, 97},   // navy blue
			[3]uint8{206, 90, 23}, // bright orange
			[3]uint8{37, 106, 85}, // green
		)...),
	},
	{
		Name: "SCABC7", Title: "Spectrum Colors Arranged by Chance VII",
		Squares: 40,
		// No background as such, so bright yellow stands in.
		Background: colormap.RGB255(223, 200, 19),
		Colours: rgb(
			[3]uint8{0, 56, 82},
			[3]uint8{231, 184, 71},
			[3]uint8{241, 153, 0},
			[3]uint8{214, 79, 8},
			[3]uint8{157, 31, 7},
			[3]uint8{226, 50, 21},
			[3]uint8{241, 148, 156},
			[3]uint8{78, 17, 81},
			[3]uint8{97, 21, 58},
			[3]uint8{197, 183, 198},
			[3]uint8{175, 192, 38},
			[3]uint8{140, 193, 115},
			[3]uint8{0, 149, 101},
			[3]uint8{46, 174, 208},
			[3]uint8{76, 145, 176},
			[3]uint8{15, 64, 141},
			[3]uint8{33, 45, 122},
		),
	},
}
