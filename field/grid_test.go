package field

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	g := Evaluate(func(x, y float64) float64 { return x + 10*y }, 3, 2, Lim(0, 2, 0, 1))
	if g.Nx != 3 || g.Ny != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.Nx, g.Ny)
	}
	if got := g.At(2, 1); got != 12 {
		t.Errorf("At(2, 1) = %v, want 12", got)
	}
	if got := g.At(1, 0); got != 1 {
		t.Errorf("At(1, 0) = %v, want 1", got)
	}
}

func TestFromRows(t *testing.T) {
	g := FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	// The first row is the top of the picture.
	if g.At(0, 1) != 1 || g.At(1, 0) != 4 {
		t.Errorf("FromRows layout wrong: %v", g.Values)
	}
}

func TestRangeSkipsNonFinite(t *testing.T) {
	g := &Grid{Nx: 4, Ny: 1, Values: []float64{math.NaN(), -2, math.Inf(1), 7}}
	lo, hi, ok := g.Range()
	if !ok || lo != -2 || hi != 7 {
		t.Errorf("Range() = %v, %v, %v, want -2, 7, true", lo, hi, ok)
	}
	empty := &Grid{Nx: 1, Ny: 1, Values: []float64{math.NaN()}}
	if _, _, ok := empty.Range(); ok {
		t.Error("Range() on all-NaN grid reported ok")
	}
}

func TestBilinear(t *testing.T) {
	g := Evaluate(func(x, y float64) float64 { return x + 2*y }, 3, 3, Lim(0, 2, 0, 2))
	tests := []struct {
		fx, fy, want float64
	}{
		{0, 0, 0},
		{0.5, 0, 0.5},
		{0.5, 0.5, 1.5},
		{2, 2, 6},
		{5, 5, 6}, // clamped
		{-1, 0, 0},
	}
	for _, tt := range tests {
		if got := g.Bilinear(tt.fx, tt.fy); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Bilinear(%v, %v) = %v, want %v", tt.fx, tt.fy, got, tt.want)
		}
	}

	g.Set(1, 1, math.NaN())
	if got := g.Bilinear(0.5, 0.5); !math.IsNaN(got) {
		t.Errorf("Bilinear next to NaN = %v, want NaN", got)
	}
	if got := g.Bilinear(0, 0); got != 0 {
		t.Errorf("Bilinear exactly on a finite sample = %v, want 0", got)
	}
}

func TestNearest(t *testing.T) {
	g := FromRows([][]float64{{1, 2}, {3, 4}})
	if got := g.Nearest(0.4, 0.4); got != 3 {
		t.Errorf("Nearest(0.4, 0.4) = %v, want 3", got)
	}
	if got := g.Nearest(-0.6, 0); !math.IsNaN(got) {
		t.Errorf("Nearest outside = %v, want NaN", got)
	}
}
