package contours

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/internal/designtest"
)

func TestDesignsAreComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Designs {
		if seen[p.Name] {
			t.Errorf("duplicate design %q", p.Name)
		}
		seen[p.Name] = true
		for _, name := range []string{p.ContourMap, p.BackgroundMap} {
			if _, err := colormap.Lookup(name); err != nil {
				t.Errorf("%s: %v", p.Name, err)
			}
		}
		if math.Abs(p.View.Width()-p.View.Height()) > 1e-9 {
			t.Errorf("%s: view %v is not square", p.Name, p.View)
		}
	}
	if len(Designs) != 14 {
		t.Errorf("len(Designs) = %d, want 14", len(Designs))
	}
}

func TestRegistered(t *testing.T) {
	ds := ggart.Designs(Collection)
	if len(ds) != len(Designs) {
		t.Fatalf("registered %d designs, want %d", len(ds), len(Designs))
	}
	full, ok := ggart.Lookup(Collection, "9_ripples")
	if !ok {
		t.Fatal("9_ripples not registered")
	}
	designtest.Render(t, full, 64)
}

func TestDrawCoarse(t *testing.T) {
	// Every design at a coarse grid, to keep the test quick.
	for _, p := range Designs {
		t.Run(p.Name, func(t *testing.T) {
			p.Resolution = 80
			dc := gg.NewContext(64, 64)
			defer dc.Close()
			if err := Draw(dc, p); err != nil {
				t.Fatalf("Draw() = %v", err)
			}
		})
	}
}

func TestConstantContourField(t *testing.T) {
	p := Designs[0]
	p.Contour = func(u, v float64) float64 { return 0 }
	p.Resolution = 10
	dc := gg.NewContext(32, 32)
	defer dc.Close()
	// A constant contour field has no levels to trace but still draws.
	if err := Draw(dc, p); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
}
