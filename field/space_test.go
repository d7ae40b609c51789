package field

import (
	"math"
	"testing"
)

func equalish(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestLinspace(t *testing.T) {
	tests := []struct {
		a, b float64
		n    int
		want []float64
	}{
		{0, 1, 5, []float64{0, 0.25, 0.5, 0.75, 1}},
		{-1, 1, 3, []float64{-1, 0, 1}},
		{3, 3, 1, []float64{3}},
		{2, 0, 3, []float64{2, 1, 0}},
		{0, 1, 0, nil},
	}
	for _, tt := range tests {
		if got := Linspace(tt.a, tt.b, tt.n); !equalish(got, tt.want) {
			t.Errorf("Linspace(%v, %v, %d) = %v, want %v", tt.a, tt.b, tt.n, got, tt.want)
		}
	}
}

func TestArange(t *testing.T) {
	tests := []struct {
		start, stop, step float64
		want              []float64
	}{
		{1.5, 4, 0.5, []float64{1.5, 2, 2.5, 3, 3.5}},
		{1, 1.5, 0.5, []float64{1}},
		{2, 6, 2, []float64{2, 4}},
		{3, 4, 1, []float64{3}},
		{0, 1, 0, nil},
		{4, 1, 1, nil},
	}
	for _, tt := range tests {
		if got := Arange(tt.start, tt.stop, tt.step); !equalish(got, tt.want) {
			t.Errorf("Arange(%v, %v, %v) = %v, want %v", tt.start, tt.stop, tt.step, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(5, 0, 10); got != 0.5 {
		t.Errorf("Normalize(5, 0, 10) = %v, want 0.5", got)
	}
	if got := Normalize(3, 3, 3); got != 0 {
		t.Errorf("Normalize on degenerate interval = %v, want 0", got)
	}
	if got := Normalize(math.Inf(1), 0, 1); !math.IsNaN(got) {
		t.Errorf("Normalize(Inf) = %v, want NaN", got)
	}
}

func TestLimits(t *testing.T) {
	l := Lim(0, 2, -1, 1)
	if l.Width() != 2 || l.Height() != 2 {
		t.Errorf("size = %vx%v, want 2x2", l.Width(), l.Height())
	}
	if !l.Contains(1, 0) || l.Contains(3, 0) || !l.Contains(2, 1) {
		t.Error("Contains gave the wrong answer")
	}
}
