// Package anim encodes rendered frame sequences.
package anim

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrNoFrames is returned when there is nothing to encode.
var ErrNoFrames = errors.New("anim: no frames")

// maxColours is the largest GIF palette.
const maxColours = 256

// Palette returns the distinct colours of img when there are at most 256
// of them, and palette.Plan9 otherwise.
func Palette(img image.Image) color.Palette {
	seen := make(map[color.RGBA]struct{}, maxColours)
	var p color.Palette
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == maxColours {
				return palette.Plan9
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}

// Delay converts a frame rate to a GIF delay in hundredths of a second.
func Delay(fps float64) int {
	if fps <= 0 {
		return 0
	}
	return int(math.Round(100 / fps))
}

// EncodeGIF writes frames as a looping animated GIF. Every frame is mapped
// onto the palette of the first.
func EncodeGIF(w io.Writer, frames []image.Image, fps float64) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	pal := Palette(frames[0])
	delay := Delay(fps)
	out := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, f := range frames {
		dst := image.NewPaletted(f.Bounds(), pal)
		xdraw.Draw(dst, dst.Bounds(), f, f.Bounds().Min, xdraw.Src)
		out.Image[i] = dst
		out.Delay[i] = delay
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}
