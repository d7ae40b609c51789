package colormap

import (
	"math"

	"github.com/gogpu/gg"
)

// gnuplotFormula evaluates the gnuplot palette formulae, numbered as in
// gnuplot's "set palette rgbformulae".
func gnuplotFormula(n int, x float64) float64 {
	switch n {
	case 0:
		return 0
	case 1:
		return 0.5
	case 2:
		return 1
	case 3:
		return x
	case 4:
		return x * x
	case 5:
		return x * x * x
	case 6:
		return x * x * x * x
	case 7:
		return math.Sqrt(x)
	case 8:
		return math.Sqrt(math.Sqrt(x))
	case 9:
		return math.Sin(x * math.Pi / 2)
	case 10:
		return math.Cos(x * math.Pi / 2)
	case 11:
		return math.Abs(x - 0.5)
	case 12:
		return (2*x - 1) * (2*x - 1)
	case 13:
		return math.Sin(x * math.Pi)
	case 14:
		return math.Abs(math.Cos(x * math.Pi))
	case 15:
		return math.Sin(x * 2 * math.Pi)
	case 16:
		return math.Cos(x * 2 * math.Pi)
	case 17:
		return math.Abs(math.Sin(x * 2 * math.Pi))
	case 18:
		return math.Abs(math.Cos(x * 2 * math.Pi))
	case 19:
		return math.Abs(math.Sin(x * 4 * math.Pi))
	case 20:
		return math.Abs(math.Cos(x * 4 * math.Pi))
	case 21:
		return 3 * x
	case 22:
		return 3*x - 1
	case 23:
		return 3*x - 2
	case 24:
		return math.Abs(3*x - 1)
	case 25:
		return math.Abs(3*x - 2)
	case 26:
		return (3*x - 1) / 2
	case 27:
		return (3*x - 2) / 2
	case 28:
		return math.Abs((3*x - 1) / 2)
	case 29:
		return math.Abs((3*x - 2) / 2)
	case 30:
		return x/0.32 - 0.78125
	case 31:
		return 2*x - 0.84
	case 32:
		switch {
		case x < 0.25:
			return 4 * x
		case x < 0.92:
			return -2*x + 1.84
		default:
			return x/0.08 - 11.5
		}
	case 33:
		return math.Abs(2*x - 0.5)
	case 34:
		return 2 * x
	case 35:
		return 2*x - 0.5
	case 36:
		return 2*x - 1
	}
	return 0
}

func gnuplot(name string, r, g, b int) *Func {
	return NewFunc(name, func(t float64) gg.RGBA {
		return gg.RGB(gnuplotFormula(r, t), gnuplotFormula(g, t), gnuplotFormula(b, t))
	})
}

// hot is the black-red-yellow-white ramp that pink is derived from.
func hot(t float64) (r, g, b float64) {
	return clip01(t / 0.365079), clip01((t - 0.365079) / 0.380953), clip01((t - 0.746032) / 0.253968)
}

// cubehelix is Green's (2011) scheme with gamma 1, start 0.5,
// rotations -1.5 and hue 1.
func cubehelix(t float64) gg.RGBA {
	const (
		gamma = 1.0
		start = 0.5
		rot   = -1.5
		hue   = 1.0
	)
	xg := math.Pow(t, gamma)
	a := hue * xg * (1 - xg) / 2
	phi := 2 * math.Pi * (start/3 + rot*t)
	ch := func(p0, p1 float64) float64 {
		return xg + a*(p0*math.Cos(phi)+p1*math.Sin(phi))
	}
	return gg.RGB(ch(-0.14861, 1.78277), ch(-0.29227, -0.90649), ch(1.97294, 0))
}

func rgb(r, g, b float64) gg.RGBA { return gg.RGB(r, g, b) }

var twilight = NewSegmented("twilight",
	Stop{0.000, rgb(0.886, 0.851, 0.886)},
	Stop{0.125, rgb(0.620, 0.710, 0.808)},
	Stop{0.250, rgb(0.380, 0.471, 0.749)},
	Stop{0.375, rgb(0.369, 0.251, 0.620)},
	Stop{0.500, rgb(0.188, 0.078, 0.216)},
	Stop{0.625, rgb(0.471, 0.153, 0.322)},
	Stop{0.750, rgb(0.710, 0.353, 0.310)},
	Stop{0.875, rgb(0.824, 0.651, 0.584)},
	Stop{1.000, rgb(0.886, 0.851, 0.886)},
)

var builtin = map[string]Colormap{}

func add(cms ...Colormap) {
	for _, cm := range cms {
		builtin[cm.Name()] = cm
	}
}

func init() {
	add(
		NewChannels("bone",
			[]Segment{{0, 0, 0}, {0.746032, 0.652778, 0.652778}, {1, 1, 1}},
			[]Segment{{0, 0, 0}, {0.365079, 0.319444, 0.319444}, {0.746032, 0.777778, 0.777778}, {1, 1, 1}},
			[]Segment{{0, 0, 0}, {0.365079, 0.444444, 0.444444}, {1, 1, 1}},
		),
		NewChannels("copper",
			[]Segment{{0, 0, 0}, {0.809524, 1, 1}, {1, 1, 1}},
			[]Segment{{0, 0, 0}, {1, 0.7812, 0.7812}},
			[]Segment{{0, 0, 0}, {1, 0.4975, 0.4975}},
		),
		NewChannels("gist_stern",
			[]Segment{{0, 0, 0}, {0.0547, 1, 1}, {0.250, 0.027, 0.250}, {1, 1, 1}},
			[]Segment{{0, 0, 0}, {1, 1, 1}},
			[]Segment{{0, 0, 0}, {0.5, 1, 1}, {0.735, 0, 0}, {1, 1, 1}},
		),
		NewFunc("pink", func(t float64) gg.RGBA {
			r, g, b := hot(t)
			return gg.RGB(math.Sqrt((2*t+r)/3), math.Sqrt((2*t+g)/3), math.Sqrt((2*t+b)/3))
		}),
		NewFunc("summer", func(t float64) gg.RGBA { return gg.RGB(t, 0.5+t/2, 0.4) }),
		NewFunc("gist_heat", func(t float64) gg.RGBA { return gg.RGB(1.5*t, 2*t-1, 4*t-3) }),
		NewFunc("cubehelix", cubehelix),
		gnuplot("gnuplot", 7, 5, 15),
		gnuplot("gnuplot2", 30, 31, 32),
		gnuplot("afmhot", 34, 35, 36),
		gnuplot("ocean", 23, 28, 3),
		gnuplot("rainbow", 33, 13, 10),
		NewSegmented("terrain",
			Stop{0.00, rgb(0.2, 0.2, 0.6)},
			Stop{0.15, rgb(0.0, 0.6, 1.0)},
			Stop{0.25, rgb(0.0, 0.8, 0.4)},
			Stop{0.50, rgb(1.0, 1.0, 0.6)},
			Stop{0.75, rgb(0.5, 0.36, 0.33)},
			Stop{1.00, rgb(1.0, 1.0, 1.0)},
		),
		Even("CMRmap",
			rgb(0, 0, 0), rgb(0.15, 0.15, 0.5), rgb(0.3, 0.15, 0.75),
			rgb(0.6, 0.2, 0.5), rgb(1, 0.25, 0.15), rgb(0.9, 0.5, 0),
			rgb(0.9, 0.75, 0.1), rgb(0.9, 0.9, 0.5), rgb(1, 1, 1),
		),
		Even("seismic", rgb(0, 0, 0.3), rgb(0, 0, 1), rgb(1, 1, 1), rgb(1, 0, 0), rgb(0.5, 0, 0)),
		NewSegmented("gist_earth",
			Stop{0.00, rgb(0, 0, 0)},
			Stop{0.13, rgb(0.10, 0.20, 0.47)},
			Stop{0.28, rgb(0.17, 0.44, 0.53)},
			Stop{0.42, rgb(0.27, 0.56, 0.42)},
			Stop{0.57, rgb(0.44, 0.64, 0.33)},
			Stop{0.71, rgb(0.63, 0.68, 0.38)},
			Stop{0.86, rgb(0.79, 0.68, 0.55)},
			Stop{1.00, rgb(0.99, 0.99, 0.99)},
		),
		twilight,
		NewFunc("twilight_shifted", func(t float64) gg.RGBA {
			return twilight.At(math.Mod(1.5-t, 1))
		}),
		EvenHex("magma",
			"#000004", "#1c1044", "#4f127b", "#812581", "#b5367a",
			"#e55064", "#fb8761", "#fec287", "#fcfdbf",
		),
		EvenHex("cividis", "#00204d", "#414d6b", "#7c7b78", "#bcaf6f", "#ffea46"),
		NewListed("tab20", MustParseAll(
			"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
			"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
			"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
			"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
		)...),
		EvenHex("OrRd",
			"#fff7ec", "#fee8c8", "#fdd49e", "#fdbb84", "#fc8d59",
			"#ef6548", "#d7301f", "#b30000", "#7f0000",
		),
		EvenHex("YlOrRd",
			"#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c",
			"#fc4e2a", "#e31a1c", "#bd0026", "#800026",
		),
		EvenHex("BuPu",
			"#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6",
			"#8c6bb1", "#88419d", "#810f7c", "#4d004b",
		),
		EvenHex("YlGnBu",
			"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
			"#1d91c0", "#225ea8", "#253494", "#081d58",
		),
		EvenHex("YlGn",
			"#ffffe5", "#f7fcb9", "#d9f0a3", "#addd8e", "#78c679",
			"#41ab5d", "#238443", "#006837", "#004529",
		),
		EvenHex("RdBu",
			"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
			"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
		),
		EvenHex("PRGn",
			"#40004b", "#762a83", "#9970ab", "#c2a5cf", "#e7d4e8", "#f7f7f7",
			"#d9f0d3", "#a6dba0", "#5aae61", "#1b7837", "#00441b",
		),
	)
}
