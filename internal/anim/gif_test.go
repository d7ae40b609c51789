package anim

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestDelay(t *testing.T) {
	tests := []struct {
		fps  float64
		want int
	}{
		{30, 3},
		{25, 4},
		{10, 10},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Delay(tt.fps); got != tt.want {
			t.Errorf("Delay(%v) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	img := solid(4, 4, color.RGBA{255, 0, 0, 255})
	img.Set(0, 0, color.RGBA{0, 0, 255, 255})
	if p := Palette(img); len(p) != 2 {
		t.Errorf("len(Palette) = %d, want 2", len(p))
	}

	noisy := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := range 32 {
		for x := range 32 {
			noisy.Set(x, y, color.RGBA{uint8(x * 8), uint8(y * 8), 0, 255})
		}
	}
	if p := Palette(noisy); len(p) != len(palette.Plan9) {
		t.Errorf("busy image palette has %d colours, want Plan9", len(p))
	}
}

func TestEncodeGIF(t *testing.T) {
	red, blue := color.RGBA{255, 0, 0, 255}, color.RGBA{0, 0, 255, 255}
	first := solid(8, 6, red)
	first.Set(1, 1, blue)
	frames := []image.Image{first, solid(8, 6, blue), solid(8, 6, red)}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 30); err != nil {
		t.Fatal(err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("decoded %d frames, want 3", len(g.Image))
	}
	for i, d := range g.Delay {
		if d != 3 {
			t.Errorf("delay[%d] = %d, want 3", i, d)
		}
	}
	r, _, b, _ := g.Image[1].At(4, 4).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("frame 1 pixel = %v, want blue", g.Image[1].At(4, 4))
	}
}

func TestEncodeNoFrames(t *testing.T) {
	if err := EncodeGIF(&bytes.Buffer{}, nil, 30); !errors.Is(err, ErrNoFrames) {
		t.Errorf("EncodeGIF(nil) = %v, want ErrNoFrames", err)
	}
}
