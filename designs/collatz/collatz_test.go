package collatz

import (
	"testing"

	"github.com/gogpu/ggart/internal/designtest"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		n    uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 7},
		{6, 8},
		{7, 16},
		{27, 111},
	}
	for _, tt := range tests {
		if got := Steps(tt.n); got != tt.want {
			t.Errorf("Steps(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSequence(t *testing.T) {
	seq := Sequence(10)
	want := []float64{0, 1, 7, 2, 5, 8, 16, 3, 19}
	if len(seq) != len(want) {
		t.Fatalf("len = %d, want %d", len(seq), len(want))
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Errorf("seq[%d] = %v, want %v", i, seq[i], want[i])
		}
	}
	if n := len(defaultSequence()); n != Limit-1 {
		t.Errorf("default sequence length = %d, want %d", n, Limit-1)
	}
}

func TestShift(t *testing.T) {
	got := Shift([]float64{0, 1, 2}, 1.5, -2)
	want := []float64{-2, -0.5, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Shift()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCycleOffsets(t *testing.T) {
	// Every scheme is consumed six or eighteen colours at a time, so each
	// textile starts its cycle from the first colour.
	for i, off := range cycleOffsets(Textiles) {
		if off != 0 {
			t.Errorf("offset[%d] = %d, want 0", i, off)
		}
	}
	short := []Params{
		{Shifts: shift1[:2], Scheme: purple},
		{Shifts: shift1[:3], Scheme: black},
		{Shifts: shift1[:1], Scheme: purple},
	}
	got := cycleOffsets(short)
	want := []int{0, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("short offset[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRegistered(t *testing.T) {
	designtest.RenderAll(t, Collection, len(Textiles), 96)
}
