package edgedescend

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/internal/designtest"
	"github.com/gogpu/ggart/plot"
)

func TestSizes(t *testing.T) {
	got := Sizes(0.5, 0.1, 3)
	want := []float64{0.45, 0.405, 0.3645}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Sizes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShapeTwoSides(t *testing.T) {
	fig := plot.NewFigure(gg.NewContext(20, 20), 1, 1)
	ax := fig.FullAxes(field.Lim(0, 1, 0, 1))
	err := Shape(ax, gg.Pt(0.5, 0.5), 0.4, 2, 0, gg.Red)
	if !errors.Is(err, ErrTwoSides) {
		t.Errorf("Shape(sides=2) = %v, want ErrTwoSides", err)
	}
	if err := Shape(ax, gg.Pt(0.5, 0.5), 0.4, 0, 0, gg.Red); err == nil {
		t.Error("Shape(sides=0) succeeded")
	}
}

func TestShapeFillsCentre(t *testing.T) {
	for _, sides := range []int{1, 3, 4, 12} {
		dc := gg.NewContext(40, 40)
		fig := plot.NewFigure(dc, 1, 1)
		fig.Background(gg.Black)
		ax := fig.FullAxes(field.Lim(0, 1, 0, 1))
		if err := Shape(ax, gg.Pt(0.5, 0.5), 0.4, sides, 0, gg.White); err != nil {
			t.Fatal(err)
		}
		if got := gg.FromColor(dc.Image().At(20, 20)); got.R < 0.9 {
			t.Errorf("sides=%d: centre = %+v, want white", sides, got)
		}
		dc.Close()
	}
}

func TestGalleryOffsets(t *testing.T) {
	// 500 shapes per nest are a whole number of five colour cycles, but
	// leave two colours over with the six colour alternative palette.
	for _, e := range variants[0].entries() {
		for _, p := range e.params.Panels {
			if p.Offset != 0 {
				t.Errorf("%s: offset = %d, want 0", e.name, p.Offset)
			}
		}
	}
	var got []int
	for _, e := range variants[1].entries() {
		for _, p := range e.params.Panels {
			got = append(got, p.Offset)
		}
	}
	want := []int{
		0, 2, 4, 0, 2, 4, // singles
		0, 2, 4, 0, // compound
		2, 4, 0, 2, 4, 0, // close-ups
	}
	if len(got) != len(want) {
		t.Fatalf("alt panels = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("alt offset[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCloseupLimits(t *testing.T) {
	lim := closeupLimits(3, 0.18)
	if math.Abs(lim.YMin-0.225) > 1e-12 || math.Abs(lim.YMax-0.585) > 1e-12 {
		t.Errorf("triangle close-up = %+v, want y in [0.225, 0.585]", lim)
	}
	lim = closeupLimits(4, 0.215)
	if math.Abs(lim.XMin-0.285) > 1e-12 || lim.YMin != lim.XMin {
		t.Errorf("square close-up = %+v", lim)
	}
}

func TestRegistered(t *testing.T) {
	ds := ggart.Designs(Collection)
	if len(ds) != 13*len(variants) {
		t.Fatalf("registered %d designs, want %d", len(ds), 13*len(variants))
	}
	for _, d := range ds {
		if strings.HasPrefix(d.Name, "alt_") && !strings.HasSuffix(d.OutputPath(), "_alt") {
			t.Errorf("%s: path %q lacks _alt", d.ID(), d.OutputPath())
		}
	}
	designtest.RenderAll(t, Collection, len(ds), 48)
}
