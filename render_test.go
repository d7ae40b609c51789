package ggart

import (
	"errors"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func redSquare(dc *gg.Context, _ *rand.Rand) error {
	dc.ClearWithColor(gg.White)
	dc.SetColor(gg.Red)
	dc.DrawRectangle(0, 0, float64(dc.Width())/2, float64(dc.Height())/2)
	return dc.Fill()
}

func TestDesignSize(t *testing.T) {
	tests := []struct {
		aspect float64
		width  int
		wantH  int
	}{
		{0, 100, 100},
		{1, 100, 100},
		{2, 100, 50},
		{0.8, 100, 125},
		{10.0 / 8, 1000, 800},
	}
	for _, tt := range tests {
		_, h := Design{Aspect: tt.aspect}.Size(tt.width)
		if h != tt.wantH {
			t.Errorf("Size(%d) with aspect %v: h = %d, want %d", tt.width, tt.aspect, h, tt.wantH)
		}
	}
}

func TestRender(t *testing.T) {
	d := Design{Collection: "t", Name: "red", Draw: redSquare, Aspect: 2}
	for _, ss := range []int{1, 2} {
		img, err := Render(d, Options{Width: 64, Supersample: ss})
		if err != nil {
			t.Fatalf("Render(ss=%d) = %v", ss, err)
		}
		b := img.Bounds()
		if b.Dx() != 64 || b.Dy() != 32 {
			t.Fatalf("bounds = %v, want 64x32", b)
		}
		r, g, _, _ := img.At(8, 8).RGBA()
		if r>>8 < 240 || g>>8 > 15 {
			t.Errorf("ss=%d: pixel (8,8) = %v, want red", ss, img.At(8, 8))
		}
		r, g, _, _ = img.At(56, 24).RGBA()
		if r>>8 < 240 || g>>8 < 240 {
			t.Errorf("ss=%d: pixel (56,24) = %v, want white", ss, img.At(56, 24))
		}
	}
}

func TestRenderPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	d := Design{Collection: "t", Name: "err", Draw: func(*gg.Context, *rand.Rand) error { return boom }}
	if _, err := Render(d, Options{Width: 8}); !errors.Is(err, boom) {
		t.Errorf("Render() error = %v, want %v", err, boom)
	}
}

func TestRenderFrame(t *testing.T) {
	var got []int
	d := Design{
		Collection: "t", Name: "anim", Draw: nopDraw, Frames: 3,
		DrawFrame: func(_ *gg.Context, _ *rand.Rand, frame int) error {
			got = append(got, frame)
			return nil
		},
	}
	for i := range 3 {
		if _, err := RenderFrame(d, Options{Width: 4}, i); err != nil {
			t.Fatalf("RenderFrame(%d) = %v", i, err)
		}
	}
	if len(got) != 3 || got[2] != 2 {
		t.Errorf("frames drawn = %v, want [0 1 2]", got)
	}
	if _, err := RenderFrame(d, Options{Width: 4}, 3); !errors.Is(err, ErrFrameRange) {
		t.Errorf("RenderFrame(3) error = %v, want ErrFrameRange", err)
	}
	still := Design{Collection: "t", Name: "still", Draw: nopDraw}
	if _, err := RenderFrame(still, Options{Width: 4}, 0); !errors.Is(err, ErrNotAnimated) {
		t.Errorf("RenderFrame(still) error = %v, want ErrNotAnimated", err)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := Design{Collection: "t", Name: "a"}
	b := Design{Collection: "t", Name: "b"}
	if RNG(a, 7).Uint64() != RNG(a, 7).Uint64() {
		t.Error("RNG is not deterministic for the same design and seed")
	}
	if RNG(a, 7).Uint64() == RNG(b, 7).Uint64() {
		t.Error("RNG streams for different designs should differ")
	}
	if RNG(a, 7).Uint64() == RNG(a, 8).Uint64() {
		t.Error("RNG streams for different seeds should differ")
	}
}

func TestSavePNG(t *testing.T) {
	img, err := Render(Design{Collection: "t", Name: "red", Draw: redSquare}, Options{Width: 16})
	if err != nil {
		t.Fatal(err)
	}
	path := OutputPath(t.TempDir(), "nested/dir/red", ".png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if filepath.Base(path) != "red.png" {
		t.Errorf("OutputPath base = %q, want red.png", filepath.Base(path))
	}
}

func TestDesignPaths(t *testing.T) {
	d := Design{Collection: "leparc", Name: "mutations"}
	if got := d.OutputPath(); got != "leparc/mutations" {
		t.Errorf("OutputPath() = %q", got)
	}
	if got := d.AnimationOutputPath(); got != "leparc/mutations_animation" {
		t.Errorf("AnimationOutputPath() = %q", got)
	}
	d.Path = "leparc/mutations/replication_of_original"
	d.AnimationPath = "leparc/mutations/animation_with_uniform_rotation"
	if got := d.OutputPath(); got != d.Path {
		t.Errorf("OutputPath() = %q, want %q", got, d.Path)
	}
	if got := d.AnimationOutputPath(); got != d.AnimationPath {
		t.Errorf("AnimationOutputPath() = %q, want %q", got, d.AnimationPath)
	}
}
