// Package designtest holds test helpers shared by the design packages.
package designtest

import (
	"image"
	"testing"

	"github.com/gogpu/ggart"
)

// RenderAll renders every design of collection at width and fails if the
// collection does not hold want designs or any image is a single flat
// colour.
func RenderAll(t *testing.T, collection string, want, width int) {
	t.Helper()
	ds := ggart.Designs(collection)
	if len(ds) != want {
		t.Fatalf("%s registered %d designs, want %d", collection, len(ds), want)
	}
	for _, d := range ds {
		t.Run(d.Name, func(t *testing.T) {
			Render(t, d, width)
		})
	}
}

// Render renders d at width and fails if it errors or comes out as a
// single flat colour.
func Render(t *testing.T, d ggart.Design, width int) image.Image {
	t.Helper()
	img, err := ggart.Render(d, ggart.Options{Width: width})
	if err != nil {
		t.Fatalf("Render(%s) = %v", d.ID(), err)
	}
	if Flat(img) {
		t.Errorf("%s rendered a single flat colour", d.ID())
	}
	return img
}

// Flat reports whether every pixel of img has the same colour.
func Flat(img image.Image) bool {
	b := img.Bounds()
	r0, g0, b0, a0 := img.At(b.Min.X, b.Min.Y).RGBA()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			if r != r0 || g != g0 || bb != b0 || a != a0 {
				return false
			}
		}
	}
	return true
}
