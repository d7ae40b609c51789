package plot

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestRegularPolygon(t *testing.T) {
	pts := RegularPolygon(4, 1, 2, 1, math.Pi/4)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	h := math.Sqrt2 / 2
	want := gg.Pt(1+h, 2+h)
	if pts[0].Distance(want) > 1e-12 {
		t.Errorf("first vertex = %v, want %v", pts[0], want)
	}
	if area := math.Abs(SignedArea(pts)); math.Abs(area-2) > 1e-12 {
		t.Errorf("area = %v, want 2", area)
	}
}

func TestWedgePoints(t *testing.T) {
	tests := []struct {
		name           string
		theta1, theta2 float64
		wantFrac       float64
	}{
		{"half", -135, 45, 0.5},
		{"quarter", 0, 90, 0.25},
		{"wrapped", 45, -45, 0.75},
		{"empty", -45, -45, 0},
		{"full", 10, 370, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := WedgePoints(0, 0, 1, tt.theta1, tt.theta2, 720)
			if tt.wantFrac == 0 {
				if pts != nil {
					t.Errorf("got %d points, want nil", len(pts))
				}
				return
			}
			got := math.Abs(SignedArea(pts)) / math.Pi
			if math.Abs(got-tt.wantFrac) > 1e-3 {
				t.Errorf("area fraction = %v, want %v", got, tt.wantFrac)
			}
		})
	}
}

func TestClipHalfPlane(t *testing.T) {
	square := []gg.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	got := ClipHalfPlane(square, gg.Pt(1, 0), 1)
	if area := math.Abs(SignedArea(got)); math.Abs(area-2) > 1e-12 {
		t.Errorf("clipped area = %v, want 2", area)
	}
	if got := ClipHalfPlane(square, gg.Pt(1, 0), 5); len(got) != 0 {
		t.Errorf("fully clipped polygon has %d points", len(got))
	}
}

func TestClipConvex(t *testing.T) {
	a := []gg.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	b := []gg.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}
	got := ClipConvex(a, b)
	if area := math.Abs(SignedArea(got)); math.Abs(area-1) > 1e-12 {
		t.Errorf("overlap area = %v, want 1", area)
	}

	// Clockwise clip polygons work too.
	rev := []gg.Point{b[3], b[2], b[1], b[0]}
	if area := math.Abs(SignedArea(ClipConvex(a, rev))); math.Abs(area-1) > 1e-12 {
		t.Errorf("overlap with clockwise clip = %v, want 1", area)
	}

	far := []gg.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	if got := ClipConvex(a, far); len(got) != 0 {
		t.Errorf("disjoint polygons intersect in %v", got)
	}
}

func TestSlabPoints(t *testing.T) {
	// A slab through the centre of width 2r*... covering half the disc.
	pts := SlabPoints(0, 0, 1, 0, 2, 0, 720)
	if got := math.Abs(SignedArea(pts)) / math.Pi; math.Abs(got-0.5) > 1e-3 {
		t.Errorf("half-disc slab fraction = %v, want 0.5", got)
	}
	// Rotating by 90 degrees moves the slab to the upper half.
	pts = SlabPoints(0, 0, 1, 0.5, 1, 90, 720)
	lo, _ := Bounds(pts)
	if lo.Y < 0.5-1e-9 {
		t.Errorf("rotated slab reaches y = %v, want >= 0.5", lo.Y)
	}
	if SlabPoints(0, 0, 1, 1.5, 2, 0, 64) != nil {
		t.Error("slab outside the disc should be nil")
	}
}

func TestTransform(t *testing.T) {
	got := Transform([]gg.Point{{X: 1, Y: 0}}, 2, 3, 90)
	if got[0].Distance(gg.Pt(2, 4)) > 1e-12 {
		t.Errorf("Transform = %v, want (2, 4)", got[0])
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]gg.Point{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}})
	if lo != gg.Pt(-2, -1) || hi != gg.Pt(4, 5) {
		t.Errorf("Bounds = %v, %v", lo, hi)
	}
}
