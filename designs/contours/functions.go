package contours

import (
	"math"

	"github.com/gogpu/ggart/field"
)

func sq(x float64) float64   { return x * x }
func cube(x float64) float64 { return x * x * x }

// Designs lists every registered design in gallery order.
var Designs = []Params{
	{
		Name: "1_vortices",
		Contour: func(u, v float64) float64 {
			return sq(math.Sinh(v/10)) - sq(math.Sin(u*v)*math.Cos(3*v)) + 0.1
		},
		Background: func(u, v float64) float64 { return -3*math.Pow(v, 4) + v*v - v },
		Resolution: 1000,
		Grid:       field.Lim(-9, 9, -9, 9),
		View:       field.Lim(-2.5, 2.5, 4, 9),
		Extent:     field.Lim(-2.5, 2.5, 4, 9),
		LineWidths: [3]float64{1.5, 4, 0.5},
		ContourMap: "afmhot", BackgroundMap: "YlOrRd",
	},
	{
		Name: "2_seams",
		Contour: func(u, v float64) float64 {
			return 0.002*math.Sin(1/(u+v))/sq(math.Cosh(u*v)) + math.Exp(-u*v*v)
		},
		Background: func(u, v float64) float64 { return math.Pow(u+v, 5) },
		Resolution: 30,
		Grid:       field.Lim(-0.06, 0.06, -0.06, 0.06),
		View:       field.Lim(-0.06, 0.06, -0.06, 0.06),
		Extent:     field.Lim(-0.06, 0.06, -0.06, 0.06),
		LineWidths: [3]float64{1, 3, 0.5},
		ContourMap: "seismic", BackgroundMap: "BuPu",
	},
	{
		Name: "3_star",
		Contour: func(u, v float64) float64 {
			return 0.001 * math.Tanh(math.Pow(math.Cos(-10*u*v*v), -3)*math.Exp(math.Pow(u, -2)*math.Pow(v, 5)))
		},
		Background: func(u, v float64) float64 { return math.Pow(u+v, 4) },
		Resolution: 300,
		Grid:       field.Lim(-5, 5, -5, 6),
		View:       field.Lim(-1.2, 1.2, 3.0, 5.4),
		Extent:     field.Lim(-5, 5, -5, 6),
		LineWidths: [3]float64{0.5, 2.0, 0.5},
		ContourMap: "gnuplot", BackgroundMap: "gnuplot2_r",
	},
	{
		Name: "4_sweep",
		Contour: func(u, v float64) float64 {
			return math.Asin(math.Exp(math.Sin(0.9999*u+v*v))/(v/u+u-0.001)) -
				0.001*v*math.Sinh(0.01*u*v)/u +
				v*math.Sin(u*v) - u
		},
		Background: func(u, v float64) float64 { return -0.5*cube(v)/u + math.Pow(u, 0.3) },
		Resolution: 700,
		Grid:       field.Lim(-12, 12, -12, 12),
		View:       field.Lim(4, 12, 4, 12),
		Extent:     field.Lim(-12, 12, -12, 12),
		LineWidths: [3]float64{3, 4, 1},
		ContourMap: "terrain", BackgroundMap: "CMRmap",
	},
	{
		Name: "5_circuitry",
		Contour: func(u, v float64) float64 {
			return math.Atan(math.Pow(v*math.Sin(30*u/v), -3))
		},
		Background: func(u, v float64) float64 { return 200000*u/math.Pow(v, 0.8) + 0.33 },
		Resolution: 800,
		Grid:       field.Lim(-0.5, 0.5, -0.5, 0.5),
		View:       field.Lim(0.37, 0.39, -0.003, 0.017),
		Extent:     field.Lim(-0.5, 0.5, -0.5, 0.5),
		LineWidths: [3]float64{2, 3, 0.5},
		ContourMap: "ocean_r", BackgroundMap: "gist_earth_r",
	},
	{
		Name:    "6_lattice",
		Contour: lattice,
		Background: func(u, v float64) float64 {
			return -math.Pow(u, 1.8)*v - math.Pow(u, 1.1)/math.Pow(v, 1.1) + math.Pow(v, 1.1)/math.Pow(u, 1.1)
		},
		Resolution: 1000,
		Grid:       field.Lim(-21.5, 21.5, -21.5, 21.5),
		View:       field.Lim(15, 21.5, 15, 21.5),
		Extent:     field.Lim(-21.5, 21.5, -21.5, 21.5),
		LineWidths: [3]float64{1, 1.5, 0.5},
		ContourMap: "tab20_r", BackgroundMap: "magma",
	},
	{
		Name:    "6_lattice_alt",
		Contour: lattice,
		Background: func(u, v float64) float64 {
			return -math.Pow(u, 1.15)*math.Pow(v, 1.15) - math.Pow(u, 1.1)/math.Pow(v, 1.1) + math.Pow(v, 1.1)/math.Pow(u, 1.1)
		},
		Resolution: 1000,
		Grid:       field.Lim(-21.5, 21.5, -21.5, 21.5),
		View:       field.Lim(15, 21.5, 15, 21.5),
		Extent:     field.Lim(-21.5, 21.5, -21.5, 21.5),
		LineWidths: [3]float64{1, 3, 0.5},
		ContourMap: "PRGn", BackgroundMap: "gnuplot2_r",
	},
	{
		Name: "7_warped",
		Contour: func(u, v float64) float64 {
			return v*v*math.Tan(u) - u*u*math.Sin(v)
		},
		Background: func(u, v float64) float64 { return math.Sin(v) * math.Sqrt(math.Abs(v)) },
		Resolution: 1000,
		Grid:       field.Lim(-150, 150, -150, 150),
		View:       field.Lim(-80, 80, -80, 80),
		Extent:     field.Lim(-150, 150, -150, 150),
		LineWidths: [3]float64{2, 3, 0.5},
		ContourMap: "terrain", BackgroundMap: "gist_heat",
	},
	{
		Name: "8_jagged",
		Contour: func(u, v float64) float64 {
			return math.Sin(math.Exp((u - v) / (u + u/v)))
		},
		Background: func(u, v float64) float64 { return u - v*v },
		Resolution: 600,
		Grid:       field.Lim(-20, 20, -20, 20),
		View:       field.Lim(0.3, 1.3, -2.3, -1.3),
		Extent:     field.Lim(-20, 20, -20, 20),
		LineWidths: [3]float64{2, 5, 1},
		ContourMap: "rainbow", BackgroundMap: "gnuplot_r",
	},
	{
		Name: "9_ripples",
		Contour: func(u, v float64) float64 {
			return math.Exp(-0.1/(v*v)) *
				(math.Pow(math.Cos(0.2*math.Pow(v, 5)-math.Pow(u, 4)+u*cube(v)), 7) +
					math.Cos(-0.01*u*v) - math.Sin(-0.2*u*v))
		},
		Background: func(u, v float64) float64 { return math.Pow(u+v, 1.5) },
		Resolution: 90,
		Grid:       field.Lim(2, 22, 2, 22),
		View:       field.Lim(2, 22, 2, 22),
		Extent:     field.Lim(2, 22, 2, 22),
		LineWidths: [3]float64{2, 3, 1},
		ContourMap: "terrain", BackgroundMap: "YlGnBu_r",
	},
	{
		Name: "10_whirls",
		Contour: func(u, v float64) float64 {
			w := (u - v) * math.Exp(v-u)
			return math.Sin(w*math.Cosh(v)) + math.Cos(w*math.Sinh(v))
		},
		Background: func(u, v float64) float64 { return -math.Pow(math.Abs(u), 0.3) },
		Resolution: 1000,
		Grid:       field.Lim(-5, 5, -5, 5),
		View:       field.Lim(-3.8, -2.6, -1.2, 0.0),
		Extent:     field.Lim(-5, 5, -5, 5),
		LineWidths: [3]float64{2, 3, 1},
		ContourMap: "gist_earth", BackgroundMap: "cubehelix",
	},
	{
		Name: "11_panels",
		Contour: func(u, v float64) float64 {
			return math.Tanh(3*u) * math.Tanh(3*v) * math.Sin(u+2*v)
		},
		Background: func(u, v float64) float64 { return 2*v + u },
		Resolution: 800,
		Grid:       field.Lim(-8.1, 8.1, -8.1, 8.1),
		View:       field.Lim(-8, 8, -8, 8),
		Extent:     field.Lim(-8.1, 8.1, -8.1, 8.1),
		LineWidths: [3]float64{2, 6, 2},
		ContourMap: "RdBu_r", BackgroundMap: "RdBu",
	},
	{
		Name: "12_cellular",
		Contour: func(u, v float64) float64 {
			return math.Atanh((v/(u*u))/(u*v)) *
				math.Cos(cube(u)/(math.Pow(u, -0.5)*v*v)) *
				math.Pow(u, -v)
		},
		Background: func(u, v float64) float64 { return math.Pow(u-v, 4) },
		Resolution: 1500,
		Grid:       field.Lim(1, 1.05, 0, 1),
		View:       field.Lim(1.01, 1.025, 0.015, 0.03),
		Extent:     field.Lim(1, 1.05, 0, 1),
		LineWidths: [3]float64{2, 6, 2},
		ContourMap: "summer", BackgroundMap: "YlGn_r",
	},
	{
		Name: "13_interlocking",
		Contour: func(u, v float64) float64 {
			return math.Cosh(math.Sin(-100*u+10*v)) / (math.Log(math.Abs(1/v)) + 1)
		},
		Background: func(u, v float64) float64 { return u - 3*v },
		Resolution: 1000,
		Grid:       field.Lim(1, 2.02, 1, 2.02),
		View:       field.Lim(1.02, 1.98, 1.02, 1.98),
		Extent:     field.Lim(1, 2.02, 1, 2.02),
		LineWidths: [3]float64{3, 5, 1},
		ContourMap: "gist_stern", BackgroundMap: "BuPu_r",
	},
}

func lattice(u, v float64) float64 {
	return (v*v/math.Sin(u*u) - u*u/math.Cos(v*v)) * math.Tanh(u*v)
}
