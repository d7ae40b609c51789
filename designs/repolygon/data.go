package repolygon

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/plot"
)

// Minimal is every design in three tones of blue, with transparent fills
// unless a layer sets one.
var Minimal = []Design{
	{
		Name: "repolygon_design_1",
		Layers: []Layer{
			{Tile{4, 15.125, 1, gg.Pt(15, 48), gg.Pt(0, 0)}, Style{}},
			{Tile{6, 15.125, 1, gg.Pt(15, 48), gg.Pt(7.5, 24)}, Style{}},
			{Tile{12, 22, 12, gg.Pt(15, 48), gg.Pt(7.5, 24)}, Style{}},
		},
		Cutoffs: field.Lim(40, 200, 40, 200),
	},
	{
		Name: "repolygon_design_2",
		Layers: []Layer{
			{Tile{6, 2, 1, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{}},
			{Tile{6, 2, 1, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{}},
			{Tile{12, 6, 1, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{}},
			{Tile{12, 6, 1, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{}},
			{Tile{50, 3.5, 6, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{}},
			{Tile{50, 3.5, 6, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{}},
		},
		Cutoffs: field.Lim(6.1, 42.7, 6.1, 42.7),
	},
	{
		Name: "repolygon_design_3",
		Layers: []Layer{
			{Tile{4, 1, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75}},
			{Tile{6, 2, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75}},
			{Tile{6, 2.75, 1, gg.Pt(6, 6), gg.Pt(5, 5)}, Style{Width: 0.75}},
			{Tile{8, 5, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75}},
			{Tile{12, 3.5, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75}},
		},
		Cutoffs: field.Lim(2, 26, 2, 26),
	},
	{
		Name: "repolygon_design_4",
		Layers: []Layer{
			{Tile{16, 0.9, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 1.5}},
			{Tile{16, 0.9, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 1.5}},
			{Tile{16, 0.9, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 1.5}},
			{Tile{16, 0.9, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 1.5}},
			{Tile{16, 1.8, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 3}},
			{Tile{16, 1.8, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 3}},
			{Tile{16, 1.8, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 3}},
			{Tile{16, 1.8, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 3}},
			{Tile{16, 2.7, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 4.5}},
			{Tile{16, 2.7, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 5.5}},
			{Tile{16, 2.7, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 4.5}},
			{Tile{16, 2.7, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 4.5}},
			{Tile{16, 3.6, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 6}},
			{Tile{16, 3.6, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 6}},
			{Tile{16, 3.6, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 6}},
			{Tile{16, 3.6, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 6}},
		},
		Cutoffs: field.Lim(6, 24, 6, 24),
	},
	{
		Name: "repolygon_design_5",
		Layers: []Layer{
			{Tile{8, 1.6, 8, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 3}},
			{Tile{8, 2.5, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 2}},
			{Tile{8, 4, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 2}},
		},
		Cutoffs: field.Lim(0, 20, 0, 20),
	},
	{
		Name: "repolygon_design_6",
		Layers: []Layer{
			{Tile{4, 1.28, -2.58, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2}},
			{Tile{8, 8.5, 4.25, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 6}},
			{Tile{8, 10, 4.25, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2}},
		},
		Cutoffs: field.Lim(11.2, 28, 11.2, 28),
	},
	{
		Name: "repolygon_design_7",
		Layers: []Layer{
			{Tile{12, 0.56, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 7}},
			{Tile{12, 1.4, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 6}},
			{Tile{12, 2.24, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 5}},
			{Tile{12, 3.08, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 4}},
			{Tile{12, 3.92, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 3}},
			{Tile{12, 4.72, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2}},
			{Tile{12, 5.6, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{}},
		},
		Cutoffs: field.Lim(2.8, 19.6, 2.8, 19.6),
	},
	{
		Name: "repolygon_design_8",
		Layers: []Layer{
			{Tile{4, 0.45, 1, gg.Pt(5.6, 5.6), gg.Pt(0, 2.8)}, Style{}},
			{Tile{4, 0.7, 1, gg.Pt(5.6, 5.6), gg.Pt(0, 2.8)}, Style{}},
			{Tile{6, 0.8, 6, gg.Pt(5.6, 5.6), gg.Pt(2.8, 0)}, Style{}},
			{Tile{6, 1, 6, gg.Pt(5.6, 5.6), gg.Pt(2.8, 0)}, Style{}},
			{Tile{6, 1.8, 6, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{}},
			{Tile{6, 2, 6, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{}},
			{Tile{12, 7.8, 12, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{}},
			{Tile{12, 8, 12, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{}},
		},
		Cutoffs: field.Lim(2.8, 19.6, 2.8, 19.6),
	},
	{
		Name: "repolygon_design_9",
		Layers: []Layer{
			{Tile{4, 0.7, 4, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{}},
			{Tile{4, 1.1, 4, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{}},
			{Tile{8, 1.7, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{}},
			{Tile{8, 2, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{}},
			{Tile{12, 5.7, 12, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{}},
			{Tile{12, 6, 12, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{}},
		},
		Cutoffs: field.Lim(4, 24, 4, 24),
	},
	{
		Name: "repolygon_design_10",
		Layers: []Layer{
			{Tile{4, 1, 1, gg.Pt(8, 8), gg.Pt(0, 4)}, Style{Width: 3, Edge: "none", Fill: Dark, Z: 1}},
			{Tile{4, 1, 1, gg.Pt(8, 8), gg.Pt(4, 0)}, Style{Width: 3, Edge: "none", Fill: Dark, Z: 2}},
			{Tile{4, 2.5, 1, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 10, Edge: "none", Fill: Dark, Z: 9}},
			{Tile{4, 2.5, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: Light, Z: 5}},
			{Tile{4, 2.5, 4, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 3, Edge: "none", Fill: Dark, Z: 10}},
			{Tile{4, 2.5, 4, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 3, Edge: "none", Fill: Light, Z: 6}},
			{Tile{4, 3, 1, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 10, Edge: "none", Fill: Light, Z: 7}},
			{Tile{4, 3, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: Mid, Z: 3}},
			{Tile{4, 3, 4, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 3, Edge: "none", Fill: Light, Z: 8}},
			{Tile{4, 3, 4, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 3, Edge: "none", Fill: Mid, Z: 4}},
			{Tile{8, 3, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: Dark}},
		},
		Cutoffs:    field.Lim(4, 36, 4, 36),
		Background: Mid,
	},
	{
		Name: "repolygon_design_11",
		Layers: []Layer{
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 2.5, Line: plot.Dashed, Edge: Dark, Fill: "none", Z: 11}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 9, Edge: Light, Fill: Mid}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 2.5, Line: plot.Dashed, Edge: Dark, Fill: "none", Z: 4}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 9, Edge: Light, Fill: "none", Z: 1}},
			{Tile{50, 1.8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: Light, Fill: "none", Z: 10}},
			{Tile{50, 1.8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 1.5, Edge: Light, Fill: "none", Z: 7}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 2.5, Line: plot.Dotted, Edge: Dark, Fill: "none", Z: 8}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 7, Edge: Light, Fill: "none", Z: 3}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 2.5, Line: plot.Dotted, Edge: Mid, Fill: "none", Z: 5}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 7, Edge: Light, Fill: "none", Z: 2}},
			{Tile{50, 4.4, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: Light, Fill: "none", Z: 9}},
			{Tile{50, 4.4, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 1.5, Edge: Light, Fill: "none", Z: 6}},
		},
		Cutoffs:    field.Lim(0, 55.44, 3.5, 57.94),
		Background: Dark,
	},
}

var palettes = map[string]map[string]string{
	"repolygon_design_1": {
		"BLACK":       "#000000",
		"WHITE":       "#FFFFFF",
		"DARK BLUE":   "#2C254F",
		"LIGHT BLUE":  "#617E83",
		"DARK BROWN":  "#321D1C",
		"LIGHT BROWN": "#55423F",
	},
	"repolygon_design_2": {
		"OFF WHITE":    "#DEF7FF",
		"BLUE":         "#8788B9",
		"TEAL":         "#232A31",
		"MINT":         "#C6D2B6",
		"DARK BROWN":   "#321E1E",
		"MEDIUM BROWN": "#662B1E",
		"SAND":         "#AC9371",
	},
	"repolygon_design_3": {
		"OFF BLACK":     "#080303",
		"GREY":          "#2E2830",
		"DARK PURPLE":   "#2B1931",
		"LIGHT PURPLE":  "#604980",
		"DARK RED":      "#611E15",
		"MEDIUM RED":    "#8C2B23",
		"LIGHT RED":     "#B93B2F",
		"DARK BROWN":    "#30130D",
		"MEDIUM BROWN":  "#612E16",
		"LIGHT BROWN":   "#8B4B2C",
		"DARK YELLOW":   "#858310",
		"MEDIUM YELLOW": "#E2CC20",
		"LIGHT YELLOW":  "#E3D372",
		"DARK GREEN":    "#232905",
		"MEDIUM GREEN":  "#4D4F0D",
		"LIGHT GREEN":   "#778811",
	},
	"repolygon_design_4": {
		"DARK RED":   "#6C0C02",
		"MEDIUM RED": "#A71A03",
		"ORANGE":     "#D95505",
		"SAND":       "#EDB279",
		"BLUE":       "#3947FF",
	},
	"repolygon_design_5": {
		"BLACK":         "#000000",
		"YELLOW":        "#EFEF83",
		"DARK BLUE":     "#110E20",
		"LIGHT BLUE":    "#425182",
		"DARK MAROON":   "#1F040A",
		"MEDIUM MAROON": "#3D0B16",
		"LIGHT MAROON":  "#771721",
	},
	"repolygon_design_6": {
		"OFF BLACK":    "#060606",
		"DARK GREEN":   "#176621",
		"MEDIUM GREEN": "#77B06B",
		"LIGHT GREEN":  "#B8EFB1",
	},
	"repolygon_design_7": {
		"OFF BLACK": "#071510",
		"KHAKI":     "#1E301A",
		"BROWN":     "#5C2616",
		"SAND":      "#B57F31",
		"YELLOW":    "#FBFC80",
	},
	"repolygon_design_8": {
		"OFF BLACK": "#030306",
		"WHITE":     "#FFFFFF",
		"GREY":      "#332D3F",
		"TEAL":      "#002627",
		"BLUE":      "#00249A",
		"PURPLE":    "#37264B",
		"PINK":      "#982B47",
		"RED":       "#96231E",
		"BROWN":     "#672A1E",
	},
	"repolygon_design_9": {
		"BLACK":       "#000000",
		"WHITE":       "#FFFFFF",
		"BLUE":        "#083C6C",
		"GREEN":       "#00765E",
		"DARK TEAL":   "#002A3A",
		"MEDIUM TEAL": "#00979C",
		"LIGHT TEAL":  "#00BAC6",
	},
	"repolygon_design_10": {
		"BLACK":     "#000000",
		"OFF WHITE": "#FAE7B5",
		"YELLOW":    "#E3A857",
		"ORANGE":    "#AF4035",
		"GREEN":     "#1C352D",
	},
	"repolygon_design_11": {
		"OFF BLACK": "#101D18",
		"OFF WHITE": "#F0EAD6",
		"MAROON":    "#662628",
		"GREEN":     "#144C2E",
	},
}

// FullColour is every design in its own palette, with intersection fills.
var FullColour = []Design{
	{
		Name: "repolygon_design_1",
		Layers: []Layer{
			{Tile{4, 15.125, 1, gg.Pt(15, 48), gg.Pt(0, 0)}, Style{Width: 1, Edge: "WHITE", Fill: "none", Z: -1}},
			{Tile{6, 15.125, 1, gg.Pt(15, 48), gg.Pt(7.5, 24)}, Style{Width: 1, Edge: "WHITE", Fill: "none"}},
			{Tile{12, 22, 12, gg.Pt(15, 48), gg.Pt(7.5, 24)}, Style{Width: 1, Edge: "WHITE", Fill: "none"}},
		},
		Intersections: []Intersection{
			{0, 1, "DARK BROWN", -1},
			{0, 2, "DARK BLUE", -2},
		},
		Cutoffs:    field.Lim(40, 200, 40, 200),
		Background: "LIGHT BLUE",
		Palette:    palettes["repolygon_design_1"],
	},
	{
		Name: "repolygon_design_2",
		Layers: []Layer{
			{Tile{6, 2, 1, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{Width: 1, Edge: "SAND", Fill: "OFF WHITE"}},
			{Tile{6, 2, 1, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{Width: 1, Edge: "SAND", Fill: "OFF WHITE"}},
			{Tile{12, 6, 1, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{Width: 1, Edge: "SAND", Fill: "none"}},
			{Tile{12, 6, 1, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{Width: 1, Edge: "SAND", Fill: "none"}},
			{Tile{50, 3.5, 6, gg.Pt(12.2, 7), gg.Pt(0, 0)}, Style{Width: 1, Edge: "SAND", Fill: "TEAL", Z: -1}},
			{Tile{50, 3.5, 6, gg.Pt(12.2, 7), gg.Pt(6.1, 3.5)}, Style{Width: 1, Edge: "SAND", Fill: "TEAL", Z: -1}},
		},
		Cutoffs:    field.Lim(6.1, 42.7, 6.1, 42.7),
		Background: "DARK BROWN",
		Palette:    palettes["repolygon_design_2"],
	},
	{
		Name: "repolygon_design_3",
		Layers: []Layer{
			{Tile{4, 1, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75, Edge: "LIGHT PURPLE", Fill: "GREY"}},
			{Tile{6, 2, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75, Edge: "LIGHT PURPLE", Fill: "none"}},
			{Tile{6, 2.75, 1, gg.Pt(6, 6), gg.Pt(5, 5)}, Style{Width: 0.75, Edge: "LIGHT PURPLE", Fill: "none"}},
			{Tile{8, 5, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75, Edge: "LIGHT PURPLE", Fill: "none"}},
			{Tile{12, 3.5, 1, gg.Pt(6, 6), gg.Pt(2, 2)}, Style{Width: 0.75, Edge: "LIGHT PURPLE", Fill: "none"}},
		},
		Intersections: []Intersection{
			{4, 4, "DARK PURPLE", -1},
		},
		Cutoffs:    field.Lim(2, 26, 2, 26),
		Background: "OFF BLACK",
		Palette:    palettes["repolygon_design_3"],
	},
	{
		Name: "repolygon_design_4",
		Layers: []Layer{
			{Tile{16, 0.9, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: "SAND", Fill: "MEDIUM RED", Z: 4}},
			{Tile{16, 0.9, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 1.5, Edge: "SAND", Fill: "MEDIUM RED", Z: 4}},
			{Tile{16, 0.9, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: "SAND", Fill: "SAND", Z: 3}},
			{Tile{16, 0.9, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 1.5, Edge: "SAND", Fill: "SAND", Z: 3}},
			{Tile{16, 1.8, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 3, Edge: "SAND", Fill: "DARK RED", Z: 2}},
			{Tile{16, 1.8, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 3, Edge: "SAND", Fill: "DARK RED", Z: 2}},
			{Tile{16, 1.8, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 3, Edge: "SAND", Fill: "BLUE", Z: 1}},
			{Tile{16, 1.8, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 3, Edge: "SAND", Fill: "BLUE", Z: 1}},
			{Tile{16, 2.7, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 4.5, Edge: "SAND", Fill: "ORANGE"}},
			{Tile{16, 2.7, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 5.5, Edge: "SAND", Fill: "ORANGE"}},
			{Tile{16, 2.7, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 4.5, Edge: "SAND", Fill: "none", Z: 8}},
			{Tile{16, 2.7, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 4.5, Edge: "SAND", Fill: "none", Z: 8}},
			{Tile{16, 3.6, 1, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 6, Edge: "SAND", Fill: "none", Z: 9}},
			{Tile{16, 3.6, 1, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 6, Edge: "SAND", Fill: "none", Z: 9}},
			{Tile{16, 3.6, 8, gg.Pt(6, 6), gg.Pt(0, 0)}, Style{Width: 6, Edge: "SAND", Fill: "none", Z: 10}},
			{Tile{16, 3.6, 8, gg.Pt(6, 6), gg.Pt(3, 3)}, Style{Width: 6, Edge: "SAND", Fill: "none", Z: 10}},
		},
		Intersections: []Intersection{
			{15, 1, "BLUE", -7},
		},
		Cutoffs:    field.Lim(6, 24, 6, 24),
		Background: "MEDIUM RED",
		Palette:    palettes["repolygon_design_4"],
	},
	{
		Name: "repolygon_design_5",
		Layers: []Layer{
			{Tile{8, 1.6, 8, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 3, Edge: "BLACK", Fill: "LIGHT BLUE"}},
			{Tile{8, 2.5, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 2, Edge: "BLACK", Fill: "none"}},
			{Tile{8, 4, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 2, Edge: "BLACK", Fill: "none"}},
		},
		Intersections: []Intersection{
			{0, 1, "DARK BLUE", -1},
		},
		Cutoffs:    field.Lim(0, 20, 0, 20),
		Background: "LIGHT MAROON",
		Palette:    palettes["repolygon_design_5"],
	},
	{
		Name: "repolygon_design_6",
		Layers: []Layer{
			{Tile{4, 1.28, -2.58, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2, Edge: "OFF BLACK", Fill: "DARK GREEN", Z: -1}},
			{Tile{8, 8.5, 4.25, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 6, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{8, 10, 4.25, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2, Edge: "OFF BLACK", Fill: "none"}},
		},
		Cutoffs:    field.Lim(11.2, 28, 11.2, 28),
		Background: "MEDIUM GREEN",
		Palette:    palettes["repolygon_design_6"],
	},
	{
		Name: "repolygon_design_7",
		Layers: []Layer{
			{Tile{12, 0.56, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 7, Edge: "OFF BLACK", Fill: "YELLOW"}},
			{Tile{12, 1.4, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 6, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 2.24, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 5, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 3.08, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 4, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 3.92, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 3, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 4.72, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 2, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 5.6, -2.8, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "none"}},
		},
		Intersections: []Intersection{
			{0, 3, "KHAKI", -1},
		},
		Cutoffs:    field.Lim(2.8, 19.6, 2.8, 19.6),
		Background: "SAND",
		Palette:    palettes["repolygon_design_7"],
	},
	{
		Name: "repolygon_design_8",
		Layers: []Layer{
			{Tile{4, 0.45, 1, gg.Pt(5.6, 5.6), gg.Pt(0, 2.8)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "PINK", Z: 1}},
			{Tile{4, 0.7, 1, gg.Pt(5.6, 5.6), gg.Pt(0, 2.8)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "WHITE"}},
			{Tile{6, 0.8, 6, gg.Pt(5.6, 5.6), gg.Pt(2.8, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "RED", Z: 1}},
			{Tile{6, 1, 6, gg.Pt(5.6, 5.6), gg.Pt(2.8, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "WHITE"}},
			{Tile{6, 1.8, 6, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "BROWN", Z: 1}},
			{Tile{6, 2, 6, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "WHITE"}},
			{Tile{12, 7.8, 12, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "none"}},
			{Tile{12, 8, 12, gg.Pt(5.6, 5.6), gg.Pt(0, 0)}, Style{Width: 1, Edge: "OFF BLACK", Fill: "none"}},
		},
		Cutoffs:    field.Lim(2.8, 19.6, 2.8, 19.6),
		Background: "TEAL",
		Palette:    palettes["repolygon_design_8"],
	},
	{
		Name: "repolygon_design_9",
		Layers: []Layer{
			{Tile{4, 0.7, 4, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{Width: 1, Edge: "BLACK", Fill: "MEDIUM TEAL", Z: 2}},
			{Tile{4, 1.1, 4, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{Width: 1, Edge: "BLACK", Fill: "WHITE", Z: 1}},
			{Tile{8, 1.7, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 1, Edge: "BLACK", Fill: "BLUE", Z: 4}},
			{Tile{8, 2, 1, gg.Pt(4, 4), gg.Pt(0, 0)}, Style{Width: 1, Edge: "BLACK", Fill: "WHITE", Z: 3}},
			{Tile{12, 5.7, 12, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{Width: 1, Edge: "BLACK", Fill: "none", Z: 6}},
			{Tile{12, 6, 12, gg.Pt(8, 8), gg.Pt(2, 2)}, Style{Width: 1, Edge: "BLACK", Fill: "none", Z: 6}},
		},
		Cutoffs:    field.Lim(4, 24, 4, 24),
		Background: "LIGHT TEAL",
		Palette:    palettes["repolygon_design_9"],
	},
	{
		Name: "repolygon_design_10",
		Layers: []Layer{
			{Tile{4, 1, 1, gg.Pt(8, 8), gg.Pt(0, 4)}, Style{Width: 3, Edge: "none", Fill: "BLACK", Z: 1}},
			{Tile{4, 1, 1, gg.Pt(8, 8), gg.Pt(4, 0)}, Style{Width: 3, Edge: "none", Fill: "BLACK", Z: 2}},
			{Tile{4, 2.5, 1, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 10, Edge: "none", Fill: "GREEN", Z: 9}},
			{Tile{4, 2.5, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: "OFF WHITE", Z: 5}},
			{Tile{4, 2.5, 4, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 3, Edge: "none", Fill: "GREEN", Z: 10}},
			{Tile{4, 2.5, 4, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 3, Edge: "none", Fill: "OFF WHITE", Z: 6}},
			{Tile{4, 3, 1, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 10, Edge: "none", Fill: "OFF WHITE", Z: 7}},
			{Tile{4, 3, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: "BLACK", Z: 3}},
			{Tile{4, 3, 4, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Width: 3, Edge: "none", Fill: "OFF WHITE", Z: 8}},
			{Tile{4, 3, 4, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 3, Edge: "none", Fill: "BLACK", Z: 4}},
			{Tile{8, 3, 1, gg.Pt(8, 8), gg.Pt(4, 4)}, Style{Width: 10, Edge: "none", Fill: "ORANGE"}},
		},
		Cutoffs:    field.Lim(4, 36, 4, 36),
		Background: "YELLOW",
		Palette:    palettes["repolygon_design_10"],
	},
	{
		Name: "repolygon_design_11",
		Layers: []Layer{
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 2.5, Line: plot.Dashed, Edge: "OFF BLACK", Fill: "none", Z: 11}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 9, Edge: "OFF WHITE", Fill: "GREEN"}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 2.5, Line: plot.Dashed, Edge: "OFF BLACK", Fill: "none", Z: 4}},
			{Tile{6, 8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 9, Edge: "OFF WHITE", Fill: "none", Z: 1}},
			{Tile{50, 1.8, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: "OFF WHITE", Fill: "none", Z: 10}},
			{Tile{50, 1.8, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 1.5, Edge: "OFF WHITE", Fill: "none", Z: 7}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 2.5, Line: plot.Dotted, Edge: "MAROON", Fill: "none", Z: 8}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 7, Edge: "OFF WHITE", Fill: "none", Z: 3}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 2.5, Line: plot.Dotted, Edge: "GREEN", Fill: "none", Z: 5}},
			{Tile{50, 3.1, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 7, Edge: "OFF WHITE", Fill: "none", Z: 2}},
			{Tile{50, 4.4, 6, gg.Pt(13.86, 24), gg.Pt(0, 0)}, Style{Width: 1.5, Edge: "OFF WHITE", Fill: "none", Z: 9}},
			{Tile{50, 4.4, 6, gg.Pt(13.86, 24), gg.Pt(6.93, 12)}, Style{Width: 1.5, Edge: "OFF WHITE", Fill: "none", Z: 6}},
		},
		Cutoffs:    field.Lim(0, 55.44, 3.5, 57.94),
		Background: "MAROON",
		Palette:    palettes["repolygon_design_11"],
	},
}

// The carpet from Kubrick's The Shining.
var shiningCarpet = map[string]string{
	"ORANGE": "#B0522E",
	"BROWN":  "#40221A",
	"MAROON": "#772120",
}

var shiningAlternative = map[string]string{
	"DARK NAVY":         "#0C0A3E",
	"BRIGHT MINT GREEN": "#ADF1D2",
	"DARK MINT GREEN":   "#669982",
	"BRIGHT CERISE":     "#D74264",
	"DARK CERISE":       "#7E1B32",
}

// Shining holds the carpet replication and an alternative colouring built
// from the same layers.
var Shining = []Design{
	{
		Name: "the_shining_carpet",
		Layers: []Layer{
			{Tile{6, 16, 6, gg.Pt(27.72, 40), gg.Pt(0, 16)}, Style{Width: 6.5, Edge: "BROWN", Fill: "none", Z: 1}},
			{Tile{6, 16, 1.2, gg.Pt(27.72, 40), gg.Pt(13.86, 0)}, Style{Width: 6.5, Edge: "BROWN", Fill: "none"}},
			{Tile{6, 7, 6, gg.Pt(27.72, 40), gg.Pt(13.86, 0.4)}, Style{Width: 6.5, Edge: "BROWN", Fill: "MAROON", Z: 20}},
			{Tile{6, 7, 6, gg.Pt(27.72, 40), gg.Pt(0, 15.6)}, Style{Width: 6.5, Edge: "BROWN", Fill: "MAROON", Z: 21}},
		},
		Cutoffs:    field.Lim(40, 200, 40, 200),
		Background: "ORANGE",
		Palette:    shiningCarpet,
	},
	{
		Name: "the_shining_carpet_alternative",
		Layers: []Layer{
			{Tile{6, 16, 6, gg.Pt(27.72, 40), gg.Pt(0, 16)}, Style{Width: 6.5, Edge: "BRIGHT MINT GREEN", Fill: "none", Z: 1}},
			{Tile{6, 16, 1.2, gg.Pt(27.72, 40), gg.Pt(13.86, 0)}, Style{Width: 6.5, Edge: "DARK MINT GREEN", Fill: "none"}},
			{Tile{6, 7, 6, gg.Pt(27.72, 40), gg.Pt(13.86, 0.4)}, Style{Width: 6.5, Edge: "BRIGHT MINT GREEN", Fill: "BRIGHT CERISE", Z: 20}},
			{Tile{6, 7, 6, gg.Pt(27.72, 40), gg.Pt(0, 15.6)}, Style{Width: 6.5, Edge: "DARK MINT GREEN", Fill: "DARK CERISE", Z: 21}},
		},
		Cutoffs:    field.Lim(40, 200, 40, 200),
		Background: "DARK NAVY",
		Palette:    shiningAlternative,
	},
}
