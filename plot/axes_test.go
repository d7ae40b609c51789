package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
)

func newFig(w, h int) *Figure {
	return NewFigure(gg.NewContext(w, h), float64(w)/100, float64(h)/100)
}

func pixel(t *testing.T, f *Figure, x, y int) gg.RGBA {
	t.Helper()
	return gg.FromColor(f.Context().Image().At(x, y))
}

func near(a, b gg.RGBA) bool {
	const tol = 0.02
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func TestFigureDPI(t *testing.T) {
	f := newFig(600, 300)
	if got := f.DPI(); got != 100 {
		t.Errorf("DPI() = %v, want 100", got)
	}
	if got := f.Points(72); got != 100 {
		t.Errorf("Points(72) = %v, want 100", got)
	}
}

func TestAxesMapping(t *testing.T) {
	f := newFig(200, 100)
	a := f.FullAxes(field.Lim(0, 4, 0, 2))
	tests := []struct {
		x, y float64
		want gg.Point
	}{
		{0, 0, gg.Pt(0, 100)},
		{4, 2, gg.Pt(200, 0)},
		{2, 1, gg.Pt(100, 50)},
	}
	for _, tt := range tests {
		got := a.ToPixel(tt.x, tt.y)
		if got.Distance(tt.want) > 1e-9 {
			t.Errorf("ToPixel(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		back := a.FromPixel(got.X, got.Y)
		if back.Distance(gg.Pt(tt.x, tt.y)) > 1e-9 {
			t.Errorf("FromPixel(ToPixel(%v, %v)) = %v", tt.x, tt.y, back)
		}
	}
	if a.Scale() != 50 {
		t.Errorf("Scale() = %v, want 50", a.Scale())
	}
}

func TestSetAspectEqual(t *testing.T) {
	f := newFig(200, 100)
	a := f.FullAxes(field.Lim(0, 1, 0, 1))
	a.SetAspectEqual()
	x0, y0, x1, y1 := a.PixelBox()
	if x0 != 50 || x1 != 150 || y0 != 0 || y1 != 100 {
		t.Errorf("PixelBox() = %v %v %v %v, want 50 0 150 100", x0, y0, x1, y1)
	}
}

func TestSubplots(t *testing.T) {
	f := newFig(210, 210)
	axes := f.Subplots(2, 2, field.Lim(0, 1, 0, 1), 0.05)
	if len(axes) != 4 {
		t.Fatalf("len = %d, want 4", len(axes))
	}
	// Cell width 210/2.05 = 102.44; the second column starts after a gap.
	x0, y0, _, _ := axes[0].PixelBox()
	if x0 != 0 || y0 != 0 {
		t.Errorf("first subplot should start at the top left, got %v, %v", x0, y0)
	}
	x0, _, x1, _ := axes[1].PixelBox()
	if math.Abs(x1-210) > 1e-9 || math.Abs(x0-210*1.05/2.05) > 1e-9 {
		t.Errorf("second subplot spans %v..%v", x0, x1)
	}
	_, y0, _, y1 := axes[2].PixelBox()
	if math.Abs(y1-210) > 1e-9 || y0 <= 105 {
		t.Errorf("bottom row spans %v..%v", y0, y1)
	}
}

func TestDrawCircleAndClip(t *testing.T) {
	f := newFig(100, 100)
	f.Background(gg.White)
	a := f.Axes(Box{0, 0, 0.5, 1}, field.Lim(0, 1, 0, 2))
	// Circle centred on the right edge of the axes: its right half is clipped.
	if err := a.Circle(1, 1, 0.4, Filled(gg.Red)); err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, f, 45, 50); !near(got, gg.Red) {
		t.Errorf("inside circle = %+v, want red", got)
	}
	if got := pixel(t, f, 55, 50); !near(got, gg.White) {
		t.Errorf("clipped half = %+v, want white", got)
	}
}

func TestPolygonEdgeOnly(t *testing.T) {
	f := newFig(100, 100)
	f.Background(gg.White)
	a := f.FullAxes(field.Lim(0, 10, 0, 10))
	sq := []gg.Point{{X: 2, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 8}, {X: 2, Y: 8}}
	if err := a.Polygon(sq, Outlined(Line(gg.Black, 3))); err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, f, 50, 50); !near(got, gg.White) {
		t.Errorf("interior = %+v, want white (no fill)", got)
	}
	if got := pixel(t, f, 20, 50); !near(got, gg.Black) {
		t.Errorf("edge = %+v, want black", got)
	}
}

func TestMarkers(t *testing.T) {
	f := newFig(100, 100)
	f.Background(gg.White)
	a := f.FullAxes(field.Lim(0, 10, 0, 10))
	err := a.Markers([]float64{5, 50}, []float64{5, 50}, MarkerStyle{Marker: MarkerSquare, Size: 14.4, Color: gg.Blue})
	if err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, f, 50, 50); !near(got, gg.Blue) {
		t.Errorf("marker centre = %+v, want blue", got)
	}
	if got := pixel(t, f, 65, 50); !near(got, gg.White) {
		t.Errorf("outside 20px marker = %+v, want white", got)
	}
	if err := a.Markers([]float64{1}, []float64{1}, MarkerStyle{Marker: 'q', Size: 1}); err == nil {
		t.Error("unknown marker should fail")
	}
}

func TestField(t *testing.T) {
	f := newFig(40, 40)
	f.Background(gg.White)
	a := f.FullAxes(field.Lim(0, 1, 0, 1))
	cm := colormap.MustLookup("bone")
	err := a.Field(func(x, y float64) float64 { return x }, field.Lim(0, 0.5, 0, 1), cm, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, f, 0, 20); got.R > 0.1 || got.G > 0.1 || got.B > 0.1 {
		t.Errorf("left edge = %+v, want near black", got)
	}
	if got := pixel(t, f, 35, 20); !near(got, gg.White) {
		t.Errorf("outside extent = %+v, want white background", got)
	}
}

func TestFieldAuto(t *testing.T) {
	f := newFig(40, 40)
	a := f.FullAxes(field.Lim(0, 1, 0, 1))
	err := a.FieldAuto(func(x, y float64) float64 { return 10 + x }, field.Lim(0, 1, 0, 1), colormap.MustLookup("bone"))
	if err != nil {
		t.Fatal(err)
	}
	if got := pixel(t, f, 0, 20); !near(got, gg.Black) {
		t.Errorf("left edge = %+v, want black", got)
	}
	if got := pixel(t, f, 39, 20); !near(got, gg.White) {
		t.Errorf("right edge = %+v, want white", got)
	}
}

func TestParseMarker(t *testing.T) {
	for _, s := range []string{"v", "X", "s", "D", "x", "H", "4", "o", "."} {
		if _, err := ParseMarker(s); err != nil {
			t.Errorf("ParseMarker(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "vv", "q"} {
		if _, err := ParseMarker(s); err == nil {
			t.Errorf("ParseMarker(%q) succeeded", s)
		}
	}
}

func TestParseDash(t *testing.T) {
	tests := map[string]Dash{"solid": Solid, "dashed": Dashed, "--": Dashed, "dotted": Dotted, ":": Dotted, "": Solid}
	for in, want := range tests {
		if got := ParseDash(in); got != want {
			t.Errorf("ParseDash(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPolarMapping(t *testing.T) {
	f := newFig(100, 100)
	p := f.Polar(FullBox, -5, 5)
	if got := p.ToPixel(0, -5); got.Distance(gg.Pt(50, 50)) > 1e-9 {
		t.Errorf("rmin maps to %v, want centre", got)
	}
	if got := p.ToPixel(math.Pi/2, 5); got.Distance(gg.Pt(50, 0)) > 1e-9 {
		t.Errorf("(pi/2, rmax) maps to %v, want top", got)
	}
}
