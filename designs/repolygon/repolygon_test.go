package repolygon

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/field"
	"github.com/gogpu/ggart/internal/designtest"
	"github.com/gogpu/ggart/plot"
)

func TestTilePath(t *testing.T) {
	tile := Tile{Sides: 4, Scale: 1, Rotation: 4, Spacing: gg.Pt(10, 20), Shift: gg.Pt(1, 2)}
	path := tile.Path(1, 2)
	if len(path) != 6 {
		t.Fatalf("len = %d, want 6", len(path))
	}
	h := math.Sqrt2 / 2
	want := gg.Pt(h+10+1, h+40+2)
	if math.Abs(path[0].X-want.X) > 1e-9 || math.Abs(path[0].Y-want.Y) > 1e-9 {
		t.Errorf("vertex 0 = %v, want %v", path[0], want)
	}
	for _, k := range []int{4, 5} {
		if math.Abs(path[k].X-path[k-4].X) > 1e-9 || math.Abs(path[k].Y-path[k-4].Y) > 1e-9 {
			t.Errorf("vertex %d = %v, want repeat of %v", k, path[k], path[k-4])
		}
	}
	if got := len(tile.Polygon(0, 0)); got != 4 {
		t.Errorf("Polygon has %d vertices, want 4", got)
	}
}

func TestLayerTiles(t *testing.T) {
	l := Layer{Tile{4, 1, 1, gg.Pt(8, 8), gg.Pt(0, 0)}, Style{Repeats: 3}}
	if got := len(l.Tiles()); got != 9 {
		t.Errorf("len(Tiles()) = %d, want 9", got)
	}
	if got := len((Layer{Tile: l.Tile}).Polygons()); got != DefaultRepeats*DefaultRepeats {
		t.Errorf("default repeats gave %d tiles", got)
	}
}

func square(x, y float64) []gg.Point {
	return []gg.Point{gg.Pt(x, y), gg.Pt(x+2, y), gg.Pt(x+2, y+2), gg.Pt(x, y+2)}
}

func TestOverlaps(t *testing.T) {
	a := [][]gg.Point{square(0, 0), square(10, 0)}
	b := [][]gg.Point{square(1, 1), square(2, 0), square(20, 20)}
	got := Overlaps(a, b, false)
	// Only the first pair overlaps with area; the second only touches.
	if len(got) != 1 {
		t.Fatalf("got %d overlaps, want 1", len(got))
	}
	if area := math.Abs(plot.SignedArea(got[0])); math.Abs(area-1) > 1e-9 {
		t.Errorf("overlap area = %v, want 1", area)
	}

	same := [][]gg.Point{square(0, 0), square(1, 0), square(5, 5)}
	if got := Overlaps(same, same, true); len(got) != 1 {
		t.Errorf("same-layer overlaps = %d, want 1", len(got))
	}
}

func TestStyleDefaults(t *testing.T) {
	s := Style{}.withDefaults()
	if s.Width != 1 || s.Edge != Light || s.Fill != "none" || s.Repeats != DefaultRepeats {
		t.Errorf("withDefaults() = %+v", s)
	}
}

func TestColoursResolve(t *testing.T) {
	all := append(append(append([]Design{}, Minimal...), FullColour...), Shining...)
	for _, d := range all {
		if _, err := d.items(); err != nil {
			t.Errorf("%s: %v", d.Name, err)
		}
		if d.Background != "" {
			if _, err := d.Colour(d.Background); err != nil {
				t.Errorf("%s: background: %v", d.Name, err)
			}
		}
	}
}

func TestItemsSortedByZ(t *testing.T) {
	d := Design{
		Name: "z",
		Layers: []Layer{
			{Tile{4, 1, 1, gg.Pt(2, 2), gg.Pt(0, 0)}, Style{Z: 3, Repeats: 1}},
			{Tile{4, 1, 1, gg.Pt(2, 2), gg.Pt(0, 0)}, Style{Z: -1, Repeats: 1}},
			{Tile{4, 1, 1, gg.Pt(2, 2), gg.Pt(0, 0)}, Style{Z: 3, Repeats: 1}},
		},
		Intersections: []Intersection{{0, 1, "red", 0}},
		Cutoffs:       field.Lim(-2, 2, -2, 2),
	}
	items, err := d.items()
	if err != nil {
		t.Fatal(err)
	}
	var zs []int
	for _, it := range items {
		zs = append(zs, it.z)
	}
	want := []int{-1, 0, 3, 3}
	for i := range want {
		if zs[i] != want[i] {
			t.Fatalf("z order = %v, want %v", zs, want)
		}
	}
}

func TestBadIntersection(t *testing.T) {
	d := Design{Name: "bad", Intersections: []Intersection{{0, 1, "red", 0}}}
	if _, err := d.items(); err == nil {
		t.Error("expected error for missing layers")
	}
}

func TestRegistered(t *testing.T) {
	designtest.RenderAll(t, Collection, len(Minimal)+len(FullColour)+len(Shining), 48)
}
