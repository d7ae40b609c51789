package colormap

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

const eps = 1e-3

func near(a, b gg.RGBA) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLookupKnown(t *testing.T) {
	// Every name the designs rely on must resolve, reversed too.
	names := []string{
		"bone", "pink", "copper", "summer", "afmhot", "gist_heat", "gnuplot",
		"gnuplot2", "ocean", "rainbow", "cubehelix", "terrain", "gist_earth",
		"gist_stern", "CMRmap", "seismic", "twilight", "twilight_shifted",
		"magma", "cividis", "tab20", "OrRd", "YlOrRd", "BuPu", "YlGnBu",
		"RdBu", "YlGn",
	}
	for _, n := range names {
		for _, name := range []string{n, n + "_r"} {
			cm, err := Lookup(name)
			if err != nil {
				t.Errorf("Lookup(%q) error = %v", name, err)
				continue
			}
			if cm.Name() != name {
				t.Errorf("Lookup(%q).Name() = %q", name, cm.Name())
			}
			for _, v := range []float64{-1, 0, 0.3, 0.5, 1, 2} {
				c := cm.At(v)
				for _, ch := range []float64{c.R, c.G, c.B, c.A} {
					if ch < 0 || ch > 1 || math.IsNaN(ch) {
						t.Fatalf("%s.At(%v) = %+v out of range", name, v, c)
					}
				}
			}
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "nope", "nope_r", "_r"} {
		if _, err := Lookup(name); !errors.Is(err, ErrUnknownColormap) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownColormap", name, err)
		}
	}
}

func TestEndpoints(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want gg.RGBA
	}{
		{"bone", 0, gg.Black},
		{"bone", 1, gg.White},
		{"copper", 1, gg.RGB(1, 0.7812, 0.4975)},
		{"summer", 0, gg.RGB(0, 0.5, 0.4)},
		{"summer", 1, gg.RGB(1, 1, 0.4)},
		{"gist_heat", 1, gg.RGB(1, 1, 1)},
		{"gist_heat", 0.5, gg.RGB(0.75, 0, 0)},
		{"afmhot", 0.5, gg.RGB(1, 0.5, 0)},
		{"gnuplot", 0.25, gg.RGB(0.5, 0.015625, 1)},
		{"terrain", 0.5, gg.RGB(1, 1, 0.6)},
		{"seismic", 0.5, gg.White},
		{"seismic_r", 0, gg.RGB(0.5, 0, 0)},
		{"OrRd", 0, MustParse("#fff7ec")},
		{"RdBu", 1, MustParse("#053061")},
		{"pink", 1, gg.White},
		{"cubehelix", 0, gg.Black},
		{"cubehelix", 1, gg.White},
	}
	for _, tt := range tests {
		got := MustLookup(tt.name).At(tt.t)
		if !near(got, tt.want) {
			t.Errorf("%s.At(%v) = %+v, want %+v", tt.name, tt.t, got, tt.want)
		}
	}
}

func TestNaNIsTransparent(t *testing.T) {
	for _, name := range []string{"bone", "pink", "tab20", "terrain_r"} {
		if got := MustLookup(name).At(math.NaN()); got != gg.Transparent {
			t.Errorf("%s.At(NaN) = %+v, want transparent", name, got)
		}
	}
}

func TestChannelsDiscontinuity(t *testing.T) {
	// gist_stern red drops from 0.027 to 0.25 at x = 0.25.
	cm := MustLookup("gist_stern")
	below := cm.At(0.2499)
	above := cm.At(0.2501)
	if below.R > 0.05 {
		t.Errorf("gist_stern red just below 0.25 = %v, want about 0.027", below.R)
	}
	if above.R < 0.24 {
		t.Errorf("gist_stern red just above 0.25 = %v, want about 0.25", above.R)
	}
}

func TestListed(t *testing.T) {
	a, b, c := gg.Red, gg.Green, gg.Blue
	cm := NewListed("three", a, b, c)
	tests := []struct {
		t    float64
		want gg.RGBA
	}{
		{0, a}, {0.33, a}, {0.34, b}, {0.66, b}, {0.67, c}, {1, c}, {5, c}, {-1, a},
	}
	for _, tt := range tests {
		if got := cm.At(tt.t); got != tt.want {
			t.Errorf("At(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
	if cm.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cm.Len())
	}
}

func TestReverseTwice(t *testing.T) {
	cm := MustLookup("terrain")
	if Reverse(Reverse(cm)) != cm {
		t.Error("Reverse(Reverse(cm)) should return cm")
	}
}

func TestTwilightShiftedIsDarkAtEnds(t *testing.T) {
	cm := MustLookup("twilight_shifted")
	lum := func(c gg.RGBA) float64 { return (c.R + c.G + c.B) / 3 }
	if lum(cm.At(0)) > 0.3 || lum(cm.At(1)) > 0.3 {
		t.Error("twilight_shifted should be dark at both ends")
	}
	if lum(cm.At(0.5)) < 0.8 {
		t.Error("twilight_shifted should be light in the middle")
	}
}

func TestSample(t *testing.T) {
	cols := Sample(MustLookup("bone"), 5)
	if len(cols) != 5 {
		t.Fatalf("len = %d, want 5", len(cols))
	}
	if !near(cols[0], gg.Black) || !near(cols[4], gg.White) {
		t.Errorf("Sample endpoints = %+v, %+v", cols[0], cols[4])
	}
	if got := Sample(MustLookup("bone"), 1); !near(got[0], gg.Black) {
		t.Errorf("Sample(1) = %+v, want black", got[0])
	}
}
