// Package collatz builds textures from the scatter of Collatz stopping
// times. Each design overlays several linearly shifted copies of the same
// scatter at low opacity and crops to a window of it. No randomness is
// involved.
package collatz

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Collection is the registry name of the textiles.
const Collection = "collatz-pattern-textures"

// Limit bounds the starting values of the cached sequence.
const Limit = 50000

// Steps returns the number of iterations n takes to reach 1.
func Steps(n uint64) int {
	count := 0
	for n > 1 {
		if n%2 == 0 {
			n /= 2
		} else {
			n = 3*n + 1
		}
		count++
	}
	return count
}

// Sequence returns Steps(n) for n in [1, limit).
func Sequence(limit int) []float64 {
	out := make([]float64, 0, max(limit-1, 0))
	for n := 1; n < limit; n++ {
		out = append(out, float64(Steps(uint64(n))))
	}
	return out
}

var defaultSequence = sync.OnceValue(func() []float64 { return Sequence(Limit) })

// Shift returns m*x + c for each x in seq.
func Shift(seq []float64, m, c float64) []float64 {
	out := make([]float64, len(seq))
	for i, x := range seq {
		out[i] = m*x + c
	}
	return out
}

// Linear is one shifted copy of the scatter.
type Linear struct{ M, C float64 }

// Scheme pairs a background with the foreground colours its copies cycle
// through.
type Scheme struct {
	Background gg.RGBA
	Foreground []gg.RGBA
}

// Params is one textile.
type Params struct {
	Shifts []Linear
	Window field.Limits
	Scheme Scheme
	// Offset is where the foreground cycle starts.
	Offset int
	Marker plot.Marker
	Size   float64 // points
	Alpha  float64
}

// Draw renders a textile from seq.
func Draw(dc *gg.Context, seq []float64, p Params) error {
	fig := plot.NewFigure(dc, 6, 6)
	fig.Background(p.Scheme.Background)
	ax := fig.FullAxes(p.Window)
	if err := ax.Background(p.Scheme.Background); err != nil {
		return err
	}
	xs := make([]float64, len(seq))
	for i := range xs {
		xs[i] = float64(i)
	}
	fg := p.Scheme.Foreground
	for k, s := range p.Shifts {
		style := plot.MarkerStyle{
			Marker:    p.Marker,
			Size:      p.Size,
			EdgeWidth: 1,
			Color:     fg[(p.Offset+k)%len(fg)],
			Alpha:     p.Alpha,
		}
		if err := ax.Markers(xs, Shift(seq, s.M, s.C), style); err != nil {
			return err
		}
	}
	return nil
}

var (
	purple = Scheme{
		Background: colormap.MustParse("#452145"),
		Foreground: colormap.MustParseAll("#372248", "#5B85AA", "#414770", "#2F9C95", "#40C9A2", "#E5F9E0"),
	}
	black = Scheme{
		Background: colormap.MustParse("#0C0C0C"),
		Foreground: colormap.MustParseAll("#78E0DC", "#276FBF", "#5C80BC", "#FFEEE2", "#FFFD77", "#E26D5A"),
	}
	claret = Scheme{
		Background: colormap.MustParse("#751A2E"),
		Foreground: colormap.MustParseAll("#126E46", "#071836", "#0353A4", "#8CB369", "#F4D35E", "#F05D5E"),
	}
)

var (
	shift1 = []Linear{{1, 0}, {1.1, -5}, {0.89, -2}, {0.95, -20}, {0.99, 4}, {0.9, 12}}
	shift2 = []Linear{{0.96, 10}, {1.15, -3}, {0.98, 5}, {1.03, 0}, {0.94, -10}, {1, 3}}
	shift3 = []Linear{{1.03, -12}, {0.91, 10}, {1, -10}, {0.95, -20}, {1.2, -50}, {0.99, 0}}
	shiftAll = append(append(append([]Linear{}, shift1...), shift2...), shift3...)
)

var (
	window1 = field.Lim(7000, 21000, 10, 160)
	window2 = field.Lim(5000, 18000, 110, 190)
	window3 = field.Lim(1750, 20000, 5, 170)
)

// Textiles lists the registered designs in order.
var Textiles = []Params{
	{Shifts: shift1, Window: window1, Scheme: purple, Marker: plot.MarkerTriangleDown, Size: 8, Alpha: 0.05},
	{Shifts: shift3, Window: window3, Scheme: black, Marker: plot.MarkerTriangleDown, Size: 6, Alpha: 0.02},
	{Shifts: shift2, Window: window2, Scheme: claret, Marker: plot.MarkerTriangleDown, Size: 8, Alpha: 0.05},
	{Shifts: shift3, Window: window3, Scheme: black, Marker: plot.MarkerXFilled, Size: 11, Alpha: 0.03},
	{Shifts: shift2, Window: window2, Scheme: claret, Marker: plot.MarkerSquare, Size: 15, Alpha: 0.03},
	{Shifts: shift1, Window: window1, Scheme: purple, Marker: plot.MarkerDiamond, Size: 18, Alpha: 0.03},
	{Shifts: shiftAll, Window: field.Lim(9850, 10900, 27, 79), Scheme: black, Marker: plot.MarkerX, Size: 30, Alpha: 0.04},
	{Shifts: shiftAll, Window: field.Lim(13500, 15500, 20, 80), Scheme: claret, Marker: plot.MarkerHexagon, Size: 20, Alpha: 0.03},
	{Shifts: shiftAll, Window: field.Lim(13000, 19000, 10, 80), Scheme: purple, Marker: plot.MarkerTriRight, Size: 18, Alpha: 0.4},
}

// cycleOffsets gives each textile the foreground position it would reach
// if every textile sharing its scheme had been drawn before it, in order.
func cycleOffsets(ps []Params) []int {
	cycles := map[*gg.RGBA]*colormap.Cycle[gg.RGBA]{}
	out := make([]int, len(ps))
	for i, p := range ps {
		key := &p.Scheme.Foreground[0]
		c, ok := cycles[key]
		if !ok {
			c = colormap.NewCycle(p.Scheme.Foreground...)
			cycles[key] = c
		}
		out[i] = c.Pos()
		c.Advance(len(p.Shifts))
	}
	return out
}

func init() {
	offsets := cycleOffsets(Textiles)
	for i := range Textiles {
		p := Textiles[i]
		p.Offset = offsets[i]
		ggart.MustRegister(ggart.Design{
			Collection: Collection,
			Name:       fmt.Sprintf("collatz_textile_%d", i+1),
			Title:      fmt.Sprintf("Collatz textile %d", i+1),
			Draw: func(dc *gg.Context, _ *rand.Rand) error {
				return Draw(dc, defaultSequence(), p)
			},
		})
	}
}
