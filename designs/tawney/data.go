package tawney

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
)

// Rows of the triangular lattice in Angry Eyes and Mouth of a God.
var (
	eyeY1 = 180 - (12 + 10*math.Sqrt(27))
	eyeY2 = 180 - (12 + 20*math.Sqrt(27))
	eyeY3 = 180 - (12 + 30*math.Sqrt(27))
)

// Replications of works by Lenore Tawney.
var Replications = []Params{
	{
		Name: "The Great Breath",
		Segments: []Segment{
			{gg.Pt(9, 81), gg.Pt(80, 92)},
			{gg.Pt(80, 92), gg.Pt(150, 81)},
			{gg.Pt(10, 15), gg.Pt(80, 6)},
			{gg.Pt(80, 6), gg.Pt(150, 15)},
			{gg.Pt(10, 40), gg.Pt(80, 6)},
			{gg.Pt(80, 6), gg.Pt(150, 40)},
		},
		Joins: []Join{
			Pair(0, 3),
			Pair(1, 2),
			Pair(1, 4),
			Pair(0, 5),
		},
		FigSize:    [2]float64{11, 6.75},
		Scale:      100,
		LineWidth:  0.4,
		Alpha:      0.6,
		Background: colormap.MustParse("#E7DACB"),
		Grid:       colormap.MustParse("#9EC3EA"),
		Line:       colormap.MustParse("#2F1E1E"),
	},
	{
		Name: "Wings of the Wind",
		Segments: []Segment{
			{gg.Pt(25, 50), gg.Pt(105, 25)},
			{gg.Pt(105, 25), gg.Pt(185, 50)},
			{gg.Pt(25, 129), gg.Pt(105, 121)},
			{gg.Pt(105, 121), gg.Pt(185, 129)},
		},
		Joins: []Join{
			Pair(0, 3),
			Pair(1, 2),
		},
		FigSize:    [2]float64{8, 6},
		Scale:      160,
		LineWidth:  0.35,
		Alpha:      0.7,
		Background: colormap.MustParse("#E6DFD5"),
		Grid:       colormap.MustParse("#BCB9A9"),
		Line:       colormap.MustParse("#37272A"),
	},
	{
		Name: "From Its Center",
		Segments: []Segment{
			{gg.Pt(5, 15), gg.Pt(65, 15)},
			{gg.Pt(5, 75), gg.Pt(35, 95)},
			{gg.Pt(35, 95), gg.Pt(65, 75)},
		},
		Joins: []Join{
			Pair(0, 1),
			Pair(0, 2),
		},
		FigSize:    [2]float64{4, 5.75},
		Scale:      70,
		LineWidth:  0.5,
		Alpha:      1,
		Background: colormap.MustParse("#F7F3F0"),
		Grid:       colormap.MustParse("#1C1815"),
		Line:       colormap.MustParse("#030000"),
	},
	{
		Name: "Union of Water and Fire II",
		Segments: []Segment{
			{gg.Pt(20, 130), gg.Pt(140, 130)},
			{gg.Pt(20, 70), gg.Pt(140, 70)},
		},
		Joins: []Join{
			Anchor(80, 40, 0),
			Anchor(80, 160, 1),
		},
		FigSize:    [2]float64{5, 6.25},
		Scale:      160,
		LineWidth:  0.5,
		Alpha:      0.4,
		Background: colormap.MustParse("#E8E3DD"),
		Grid:       colormap.MustParse("#E0A66C"),
		Line:       colormap.MustParse("#464476"),
		Lines:      100,
		Overrides:  map[int]gg.RGBA{1: colormap.MustParse("#E75136")},
	},
	{
		Name: "The Eternal Band",
		Segments: []Segment{
			{gg.Pt(60, 60), gg.Pt(60.26126851, 99.99914673)},
			{gg.Pt(60, 60), gg.Pt(28.89030607, 85.14332801)},
			{gg.Pt(60, 60), gg.Pt(20.94557768, 51.35407047)},
			{gg.Pt(60, 60), gg.Pt(42.40962587, 24.07537421)},
			{gg.Pt(60, 60), gg.Pt(77.11958455, 23.8486539)},
			{gg.Pt(60, 60), gg.Pt(98.93814689, 50.84463455)},
			{gg.Pt(60, 60), gg.Pt(91.43549043, 84.73479212)},
		},
		Joins: []Join{
			Anchor(60.26126851, 99.99914673, 6),
			Anchor(28.89030607, 85.14332801, 0),
			Anchor(20.94557768, 51.35407047, 1),
			Anchor(42.40962587, 24.07537421, 2),
			Anchor(77.11958455, 23.8486539, 3),
			Anchor(98.93814689, 50.84463455, 4),
			Anchor(91.43549043, 84.73479212, 5),
		},
		FigSize:    [2]float64{8, 8},
		Scale:      120,
		LineWidth:  0.5,
		Alpha:      0.7,
		Background: colormap.MustParse("#ECEDEF"),
		Grid:       colormap.MustParse("#ECEDEF"),
		Line:       colormap.MustParse("#C8431E"),
		Lines:      30,
		Polygons: []Polygon{
			{Sides: 1000, Centre: gg.Pt(60, 60), Radius: 40, Rotation: 1, Colour: colormap.MustParse("#C8431E")},
			{Sides: 4, Centre: gg.Pt(60, 60), Radius: 56.568542494923804, Rotation: 4, Colour: colormap.MustParse("#827876")},
		},
	},
	{
		Name: "Blue Circle",
		Segments: []Segment{
			{gg.Pt(195, 80), gg.Pt(585, 80)},
			{gg.Pt(195, 470), gg.Pt(585, 470)},
			{gg.Pt(195, 80), gg.Pt(195, 470)},
			{gg.Pt(585, 80), gg.Pt(585, 470)},
		},
		Joins: []Join{
			Pair(0, 1),
			Pair(2, 3),
		},
		FigSize:    [2]float64{8.5, 6},
		Scale:      550,
		LineWidth:  0.5,
		Alpha:      0.6,
		Background: colormap.MustParse("#E1D9CC"),
		Grid:       colormap.MustParse("#B4AD9D"),
		Line:       colormap.MustParse("#2D2306"),
		Lines:      120,
		Polygons: []Polygon{
			{Sides: 480, Centre: gg.Pt(390, 275), Radius: 70, Rotation: 1, Colour: colormap.MustParse("#2541C1"), JoinAcross: true},
		},
	},
}

// Variations are new designs in the same manner.
var Variations = []Params{
	{
		Name: "Treble Clef",
		Segments: []Segment{
			{gg.Pt(0, 30), gg.Pt(60, 80)},
			{gg.Pt(50, 0), gg.Pt(100, 0)},
			{gg.Pt(30, 70), gg.Pt(100, 20)},
			{gg.Pt(0, 0), gg.Pt(50, 0)},
			{gg.Pt(100, 70), gg.Pt(40, 20)},
			{gg.Pt(50, 100), gg.Pt(0, 100)},
			{gg.Pt(70, 30), gg.Pt(0, 80)},
			{gg.Pt(100, 100), gg.Pt(50, 100)},
			{gg.Pt(40, 20), gg.Pt(50, 0)},
			{gg.Pt(50, 100), gg.Pt(60, 80)},
		},
		Joins: []Join{
			Pair(0, 3),
			Pair(1, 2),
			Pair(4, 7),
			Pair(5, 6),
			Pair(8, 9),
		},
		FigSize:    [2]float64{8, 8},
		Scale:      100,
		LineWidth:  1,
		Alpha:      0.7,
		Background: colormap.MustParse("#D7DEE4"),
		Grid:       colormap.MustParse("#7C86B9"),
		Line:       colormap.MustParse("#0C2027"),
	},
	{
		Name: "Softening",
		Segments: []Segment{
			{gg.Pt(15, 5), gg.Pt(35, 5)},
			{gg.Pt(35, 45), gg.Pt(15, 45)},
			{gg.Pt(5, 15), gg.Pt(5, 35)},
			{gg.Pt(45, 35), gg.Pt(45, 15)},
			{gg.Pt(15, 45), gg.Pt(5, 35)},
			{gg.Pt(35, 45), gg.Pt(45, 35)},
			{gg.Pt(15, 5), gg.Pt(5, 15)},
			{gg.Pt(35, 5), gg.Pt(45, 15)},
			{gg.Pt(10, 30), gg.Pt(10, 20)},
			{gg.Pt(10, 30), gg.Pt(20, 40)},
			{gg.Pt(20, 40), gg.Pt(30, 40)},
			{gg.Pt(40, 30), gg.Pt(30, 40)},
			{gg.Pt(40, 20), gg.Pt(40, 30)},
			{gg.Pt(40, 20), gg.Pt(30, 10)},
			{gg.Pt(30, 10), gg.Pt(20, 10)},
			{gg.Pt(10, 20), gg.Pt(20, 10)},
			{gg.Pt(15, 30), gg.Pt(15, 20)},
			{gg.Pt(15, 30), gg.Pt(20, 35)},
			{gg.Pt(20, 35), gg.Pt(30, 35)},
			{gg.Pt(35, 30), gg.Pt(30, 35)},
			{gg.Pt(35, 20), gg.Pt(35, 30)},
			{gg.Pt(35, 20), gg.Pt(30, 15)},
			{gg.Pt(30, 15), gg.Pt(20, 15)},
			{gg.Pt(15, 20), gg.Pt(20, 15)},
			{gg.Pt(17.5, 27.5), gg.Pt(17.5, 22.5)},
			{gg.Pt(17.5, 27.5), gg.Pt(22.5, 32.5)},
			{gg.Pt(22.5, 32.5), gg.Pt(27.5, 32.5)},
			{gg.Pt(32.5, 27.5), gg.Pt(27.5, 32.5)},
			{gg.Pt(32.5, 22.5), gg.Pt(32.5, 27.5)},
			{gg.Pt(32.5, 22.5), gg.Pt(27.5, 17.5)},
			{gg.Pt(27.5, 17.5), gg.Pt(22.5, 17.5)},
			{gg.Pt(17.5, 22.5), gg.Pt(22.5, 17.5)},
		},
		Joins: []Join{
			Pair(0, 3),
			Pair(1, 2),
			Pair(0, 2),
			Pair(1, 3),
			Pair(4, 5),
			Pair(6, 7),
			Pair(4, 6),
			Pair(5, 7),
			Pair(8, 10),
			Pair(8, 14),
			Pair(10, 12),
			Pair(12, 14),
			Pair(9, 11),
			Pair(11, 13),
			Pair(13, 15),
			Pair(9, 15),
			Pair(16, 18),
			Pair(16, 22),
			Pair(18, 20),
			Pair(20, 22),
			Pair(17, 19),
			Pair(19, 21),
			Pair(21, 23),
			Pair(17, 23),
			Pair(24, 26),
			Pair(24, 30),
			Pair(26, 28),
			Pair(28, 30),
			Pair(25, 27),
			Pair(27, 29),
			Pair(29, 31),
			Pair(25, 31),
		},
		FigSize:    [2]float64{8, 8},
		Scale:      50,
		LineWidth:  0.6,
		Alpha:      0.6,
		Background: colormap.MustParse("#FBF4EA"),
		Grid:       colormap.MustParse("powderblue"),
		Line:       colormap.MustParse("#180202"),
		Lines:      50,
	},
	{
		Name: "Crosses on our Eyes",
		Segments: []Segment{
			{gg.Pt(60, 20), gg.Pt(60, 80)},
			{gg.Pt(0, 0), gg.Pt(20, 80)},
			{gg.Pt(100, 100), gg.Pt(20, 80)},
			{gg.Pt(80, 40), gg.Pt(20, 40)},
			{gg.Pt(40, 80), gg.Pt(40, 20)},
			{gg.Pt(100, 100), gg.Pt(80, 20)},
			{gg.Pt(0, 0), gg.Pt(80, 20)},
			{gg.Pt(20, 60), gg.Pt(80, 60)},
			{gg.Pt(40, 20), gg.Pt(60, 20)},
			{gg.Pt(40, 80), gg.Pt(60, 80)},
			{gg.Pt(20, 40), gg.Pt(20, 60)},
			{gg.Pt(80, 40), gg.Pt(80, 60)},
		},
		Joins: []Join{
			Pair(0, 1),
			Pair(2, 3),
			Pair(4, 5),
			Pair(6, 7),
			Pair(0, 7),
			Pair(3, 4),
			Pair(1, 6),
			Pair(2, 5),
		},
		FigSize:    [2]float64{6, 6},
		Scale:      100,
		LineWidth:  0.3,
		Alpha:      0.5,
		Background: colormap.MustParse("#F3FAF1"),
		Grid:       colormap.MustParse("#7BCBEE"),
		Line:       colormap.MustParse("#313036"),
		Lines:      70,
		Polygons: []Polygon{
			{Sides: 1000, Centre: gg.Pt(50, 50), Radius: 6, Rotation: 1, Colour: colormap.MustParse("#313036"), JoinAcross: true},
		},
	},
	{
		Name: "Owl",
		Segments: []Segment{
			{gg.Pt(10, 0), gg.Pt(10, 50)},
			{gg.Pt(10, 65), gg.Pt(10, 80)},
			{gg.Pt(70, 0), gg.Pt(70, 60)},
			{gg.Pt(70, 65), gg.Pt(70, 80)},
			{gg.Pt(10, 0.1), gg.Pt(27.5, 0.1)},
			{gg.Pt(70, 0.1), gg.Pt(35, 0.1)},
			{gg.Pt(30, 80), gg.Pt(10, 80)},
			{gg.Pt(50, 80), gg.Pt(70, 80)},
			{gg.Pt(35, 5), gg.Pt(35, 50)},
			{gg.Pt(35, 50), gg.Pt(35, 70)},
			{gg.Pt(17.5, 50), gg.Pt(35, 50)},
			{gg.Pt(35, 50), gg.Pt(55, 50)},
			{gg.Pt(35, 77.5), gg.Pt(35, 50)},
			{gg.Pt(35, 50), gg.Pt(35, 25)},
			{gg.Pt(22.5, 50), gg.Pt(35, 50)},
			{gg.Pt(35, 50), gg.Pt(45, 50)},
		},
		Joins: []Join{
			Pair(0, 4),
			Pair(1, 6),
			Pair(2, 5),
			Pair(3, 7),
			Pair(8, 10),
			Pair(9, 11),
			Pair(12, 14),
			Pair(13, 15),
		},
		FigSize:    [2]float64{6, 6},
		Scale:      80,
		LineWidth:  0.5,
		Alpha:      1,
		Background: colormap.MustParse("#e6e6cb"),
		Grid:       colormap.MustParse("#428a42"),
		Line:       colormap.MustParse("#030000"),
		Lines:      60,
		Polygons: []Polygon{
			{Sides: 100, Centre: gg.Pt(55, 65), Radius: 6, Rotation: 1, Colour: colormap.MustParse("#030000"), JoinAcross: true},
			{Sides: 63, Centre: gg.Pt(22.5, 65), Radius: 5, Rotation: 1, Colour: colormap.MustParse("#030000"), JoinAcross: true},
		},
	},
	{
		Name: "Jaws of Resonance",
		Segments: []Segment{
			{gg.Pt(10, 37.5), gg.Pt(45, 2.5)},
			{gg.Pt(20, 37.5), gg.Pt(45, 12.5)},
			{gg.Pt(30, 37.5), gg.Pt(45, 22.5)},
			{gg.Pt(40, 37.5), gg.Pt(45, 32.5)},
			{gg.Pt(50, 37.5), gg.Pt(45, 32.5)},
			{gg.Pt(60, 37.5), gg.Pt(45, 22.5)},
			{gg.Pt(70, 37.5), gg.Pt(45, 12.5)},
			{gg.Pt(80, 37.5), gg.Pt(45, 2.5)},
			{gg.Pt(20, 47.5), gg.Pt(10, 37.5)},
			{gg.Pt(30, 47.5), gg.Pt(20, 37.5)},
			{gg.Pt(40, 47.5), gg.Pt(30, 37.5)},
			{gg.Pt(50, 47.5), gg.Pt(40, 37.5)},
			{gg.Pt(60, 47.5), gg.Pt(50, 37.5)},
			{gg.Pt(70, 47.5), gg.Pt(60, 37.5)},
			{gg.Pt(20, 47.5), gg.Pt(30, 37.5)},
			{gg.Pt(30, 47.5), gg.Pt(40, 37.5)},
			{gg.Pt(40, 47.5), gg.Pt(50, 37.5)},
			{gg.Pt(50, 47.5), gg.Pt(60, 37.5)},
			{gg.Pt(60, 47.5), gg.Pt(70, 37.5)},
			{gg.Pt(70, 47.5), gg.Pt(80, 37.5)},
			{gg.Pt(25, 47.5), gg.Pt(35, 57.5)},
			{gg.Pt(35, 47.5), gg.Pt(45, 57.5)},
			{gg.Pt(45, 47.5), gg.Pt(55, 57.5)},
			{gg.Pt(55, 47.5), gg.Pt(65, 57.5)},
			{gg.Pt(65, 47.5), gg.Pt(75, 57.5)},
			{gg.Pt(25, 47.5), gg.Pt(15, 57.5)},
			{gg.Pt(35, 47.5), gg.Pt(25, 57.5)},
			{gg.Pt(45, 47.5), gg.Pt(35, 57.5)},
			{gg.Pt(55, 47.5), gg.Pt(45, 57.5)},
			{gg.Pt(65, 47.5), gg.Pt(55, 57.5)},
			{gg.Pt(15, 57.5), gg.Pt(45, 87.5)},
			{gg.Pt(25, 57.5), gg.Pt(45, 77.5)},
			{gg.Pt(35, 57.5), gg.Pt(45, 67.5)},
			{gg.Pt(55, 57.5), gg.Pt(45, 67.5)},
			{gg.Pt(65, 57.5), gg.Pt(45, 77.5)},
			{gg.Pt(75, 57.5), gg.Pt(45, 87.5)},
		},
		Joins: []Join{
			Pair(0, 7),
			Pair(1, 6),
			Pair(2, 5),
			Pair(3, 4),
			Pair(30, 35),
			Pair(31, 34),
			Pair(32, 33),
			Pair(8, 14),
			Pair(9, 15),
			Pair(10, 16),
			Pair(11, 17),
			Pair(12, 18),
			Pair(13, 19),
			Pair(20, 25),
			Pair(21, 26),
			Pair(22, 27),
			Pair(23, 28),
			Pair(24, 29),
		},
		FigSize:    [2]float64{6, 6},
		Scale:      90,
		LineWidth:  0.8,
		Alpha:      0.4,
		Background: colormap.MustParse("#03301a"),
		Grid:       colormap.MustParse("#28a4a4"),
		Line:       colormap.MustParse("#cff1fc"),
		Lines:      26,
	},
	{
		Name:       "Always the Hourglass",
		Segments:   hourglassSegments(),
		Joins:      hourglassJoins(),
		FigSize:    [2]float64{8.5, 8.5},
		Scale:      540,
		LineWidth:  0.4,
		Alpha:      0.65,
		Background: colormap.MustParse("#faffff"),
		Grid:       colormap.MustParse("#6bc7c7"),
		Line:       colormap.MustParse("#333333"),
		Ghost:      true,
		Lines:      12,
	},
	{
		Name: "Angry Eyes and Mouth of a God",
		Segments: []Segment{
			{gg.Pt(0, 168), gg.Pt(60, 168)},
			{gg.Pt(0, 168), gg.Pt(30, eyeY1)},
			{gg.Pt(60, 168), gg.Pt(30, eyeY1)},
			{gg.Pt(60, 168), gg.Pt(90, eyeY1)},
			{gg.Pt(30, eyeY1), gg.Pt(90, eyeY1)},
			{gg.Pt(60, 168), gg.Pt(120, 168)},
			{gg.Pt(120, 168), gg.Pt(90, eyeY1)},
			{gg.Pt(120, 168), gg.Pt(150, eyeY1)},
			{gg.Pt(90, eyeY1), gg.Pt(150, eyeY1)},
			{gg.Pt(120, 168), gg.Pt(180, 168)},
			{gg.Pt(180, 168), gg.Pt(150, eyeY1)},
			{gg.Pt(30, eyeY1), gg.Pt(60, eyeY2)},
			{gg.Pt(90, eyeY1), gg.Pt(60, eyeY2)},
			{gg.Pt(90, eyeY1), gg.Pt(120, eyeY2)},
			{gg.Pt(60, eyeY2), gg.Pt(120, eyeY2)},
			{gg.Pt(90, eyeY1), gg.Pt(150, eyeY1)},
			{gg.Pt(150, eyeY1), gg.Pt(120, eyeY2)},
			{gg.Pt(60, eyeY2), gg.Pt(90, eyeY3)},
			{gg.Pt(120, eyeY2), gg.Pt(90, eyeY3)},
			{gg.Pt(0, 168), gg.Pt(120, 168)},
			{gg.Pt(0, 168), gg.Pt(60, eyeY2)},
			{gg.Pt(120, 168), gg.Pt(60, eyeY2)},
			{gg.Pt(60, 168), gg.Pt(180, 168)},
			{gg.Pt(60, 168), gg.Pt(120, eyeY2)},
			{gg.Pt(180, 168), gg.Pt(120, eyeY2)},
			{gg.Pt(30, eyeY1), gg.Pt(150, eyeY1)},
			{gg.Pt(30, eyeY1), gg.Pt(90, eyeY3)},
			{gg.Pt(150, eyeY1), gg.Pt(90, eyeY3)},
			{gg.Pt(0, 168), gg.Pt(180, 168)},
			{gg.Pt(0, 168), gg.Pt(90, eyeY3)},
			{gg.Pt(180, 168), gg.Pt(90, eyeY3)},
		},
		Joins: []Join{
			Pair(0, 1),
			Pair(17, 18),
			Pair(-9, 10),
			Pair(0, 20),
			Pair(0, 29),
			Pair(1, 19),
			Pair(1, 28),
			Pair(17, 30),
			Pair(17, 27),
			Pair(18, 29),
			Pair(18, 26),
			Pair(-9, 24),
			Pair(-9, 30),
			Pair(-10, 28),
			Pair(-10, 22),
			Pair(20, 21),
			Pair(-19, 21),
			Pair(22, 23),
			Pair(24, 23),
			Pair(26, 25),
			Pair(-27, 25),
			Pair(12, 13),
			Pair(3, 4),
			Pair(-6, 8),
		},
		FigSize:    [2]float64{12, 12},
		Scale:      180,
		LineWidth:  0.3,
		Alpha:      0.4,
		Background: colormap.MustParse("#fffcfc"),
		Grid:       colormap.MustParse("#ff8080"),
		Line:       colormap.MustParse("#3b443f"),
		Ghost:      true,
		Lines:      201,
	},
	{
		Name: "Primitive Surveillance",
		Segments: []Segment{
			{gg.Pt(10, 10), gg.Pt(40, 40)},
			{gg.Pt(40, 40), gg.Pt(10, 70)},
			{gg.Pt(10, 70), gg.Pt(40, 100)},
			{gg.Pt(40, 100), gg.Pt(10, 130)},
			{gg.Pt(10, 130), gg.Pt(40, 160)},
			{gg.Pt(40, 160), gg.Pt(10, 190)},
			{gg.Pt(70, 10), gg.Pt(40, 40)},
			{gg.Pt(40, 40), gg.Pt(70, 70)},
			{gg.Pt(70, 70), gg.Pt(40, 100)},
			{gg.Pt(40, 100), gg.Pt(70, 130)},
			{gg.Pt(70, 130), gg.Pt(40, 160)},
			{gg.Pt(40, 160), gg.Pt(70, 190)},
			{gg.Pt(70, 10), gg.Pt(100, 40)},
			{gg.Pt(100, 40), gg.Pt(70, 70)},
			{gg.Pt(70, 70), gg.Pt(100, 100)},
			{gg.Pt(100, 100), gg.Pt(70, 130)},
			{gg.Pt(70, 130), gg.Pt(100, 160)},
			{gg.Pt(100, 160), gg.Pt(70, 190)},
			{gg.Pt(130, 10), gg.Pt(100, 40)},
			{gg.Pt(100, 40), gg.Pt(130, 70)},
			{gg.Pt(130, 70), gg.Pt(100, 100)},
			{gg.Pt(100, 100), gg.Pt(130, 130)},
			{gg.Pt(130, 130), gg.Pt(100, 160)},
			{gg.Pt(100, 160), gg.Pt(130, 190)},
			{gg.Pt(130, 10), gg.Pt(160, 40)},
			{gg.Pt(160, 40), gg.Pt(130, 70)},
			{gg.Pt(130, 70), gg.Pt(160, 100)},
			{gg.Pt(160, 100), gg.Pt(130, 130)},
			{gg.Pt(130, 130), gg.Pt(160, 160)},
			{gg.Pt(160, 160), gg.Pt(130, 190)},
			{gg.Pt(190, 10), gg.Pt(160, 40)},
			{gg.Pt(160, 40), gg.Pt(190, 70)},
			{gg.Pt(190, 70), gg.Pt(160, 100)},
			{gg.Pt(160, 100), gg.Pt(190, 130)},
			{gg.Pt(190, 130), gg.Pt(160, 160)},
			{gg.Pt(160, 160), gg.Pt(190, 190)},
		},
		Joins: []Join{
			Pair(5, 11),
			Pair(17, 23),
			Pair(29, 35),
			Pair(11, 17),
			Pair(23, 29),
			Pair(4, 10),
			Pair(16, 22),
			Pair(28, 34),
			Pair(10, 16),
			Pair(22, 28),
			Pair(3, 9),
			Pair(15, 21),
			Pair(27, 33),
			Pair(9, 15),
			Pair(21, 27),
			Pair(2, 8),
			Pair(14, 20),
			Pair(26, 32),
			Pair(8, 14),
			Pair(20, 26),
			Pair(1, 7),
			Pair(13, 19),
			Pair(25, 31),
			Pair(7, 13),
			Pair(19, 25),
			Pair(0, 6),
			Pair(12, 18),
			Pair(24, 30),
			Pair(6, 12),
			Pair(18, 24),
			Pair(0, -1),
			Pair(-2, 3),
			Pair(-4, 5),
			Pair(-30, 31),
			Pair(-32, 33),
			Pair(-34, 35),
		},
		FigSize:    [2]float64{6, 6},
		Scale:      200,
		LineWidth:  0.45,
		Alpha:      0.7,
		Background: colormap.MustParse("#eee3dc"),
		Grid:       colormap.MustParse("#c1803e"),
		Line:       colormap.MustParse("#240f00"),
		Lines:      39,
		Polygons: []Polygon{
			{Sides: 66, Centre: gg.Pt(68, 30), Radius: 4, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(132, 35), Radius: 6, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(36, 70), Radius: 10, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(103, 75), Radius: 7, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(158, 80), Radius: 3, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(74, 90), Radius: 4, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(127, 95), Radius: 6, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(45, 130), Radius: 10, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(96, 135), Radius: 7, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(162, 140), Radius: 3, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(65, 150), Radius: 4, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
			{Sides: 66, Centre: gg.Pt(134, 155), Radius: 6, Rotation: 1, Colour: colormap.MustParse("#240f00"), JoinAcross: true},
		},
	},
}

// run returns count collinear segments of length step starting at start.
func run(start, step gg.Point, count int) []Segment {
	out := make([]Segment, count)
	p := start
	for i := range out {
		q := gg.Pt(p.X+step.X, p.Y+step.Y)
		out[i] = Segment{p, q}
		p = q
	}
	return out
}

const hourglassRun = 25

// hourglassSegments lays out the diagonal, the top and bottom edges, the
// reflected diagonal and the two sides, each as 25 short segments.
func hourglassSegments() []Segment {
	var segs []Segment
	for _, r := range [][2]gg.Point{
		{gg.Pt(20, 20), gg.Pt(20, 20)},
		{gg.Pt(20, 20), gg.Pt(20, 0)},
		{gg.Pt(20, 520), gg.Pt(20, 0)},
		{gg.Pt(20, 520), gg.Pt(20, -20)},
		{gg.Pt(20, 20), gg.Pt(0, 20)},
		{gg.Pt(520, 20), gg.Pt(0, 20)},
	} {
		segs = append(segs, run(r[0], r[1], hourglassRun)...)
	}
	return segs
}

// hourglassJoins joins even diagonal segments to the top edge and odd ones
// to the bottom edge, for both diagonals.
func hourglassJoins() []Join {
	var joins []Join
	for _, diag := range []int{0, 3 * hourglassRun} {
		for k := 0; k < hourglassRun; k += 2 {
			joins = append(joins, Pair(diag+k, hourglassRun+k))
		}
		for k := 1; k < hourglassRun; k += 2 {
			joins = append(joins, Pair(diag+k, 2*hourglassRun+k))
		}
	}
	return joins
}
