package colormap

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
	}{
		{"#000", gg.Black},
		{"#ffffff", gg.White},
		{"#FF0000", gg.Red},
		{"#ff000080", gg.RGBA2(1, 0, 0, 128.0/255)},
		{"white", gg.White},
		{"MidnightBlue", RGB255(25, 25, 112)},
		{"darkslategrey", RGB255(47, 79, 79)},
		{"none", gg.Transparent},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if !near(got, tt.want) {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "notacolour", "#1234567"} {
		if _, err := Parse(in); !errors.Is(err, ErrBadColour) {
			t.Errorf("Parse(%q) error = %v, want ErrBadColour", in, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("bogus")
}

func TestCycle(t *testing.T) {
	c := NewCycle("a", "b", "c")
	var got []string
	for range 7 {
		got = append(got, c.Next())
	}
	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Next sequence = %v, want %v", got, want)
		}
	}
	c.Reset()
	if c.Next() != "a" {
		t.Error("Reset did not rewind")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	c.Advance(10)
	if c.Pos() != 2 || c.Next() != "c" {
		t.Errorf("after Advance(10) Pos() = %d", c.Pos())
	}
}

func TestWithAlpha(t *testing.T) {
	if got := WithAlpha(gg.Red, 0.25); got.A != 0.25 || got.R != 1 {
		t.Errorf("WithAlpha = %+v", got)
	}
}
