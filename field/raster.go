package field

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
)

// Raster colours a w by h image from sample, normalising values from
// [lo, hi] into cm. Non-finite samples become transparent. Rows are
// evaluated in parallel, so sample must be safe for concurrent use.
func Raster(w, h int, sample func(px, py int) float64, cm colormap.Colormap, lo, hi float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	rows := make(chan int)
	var wg sync.WaitGroup
	for range runtime.GOMAXPROCS(0) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for py := range rows {
				for px := 0; px < w; px++ {
					v := sample(px, py)
					if !Finite(v) {
						continue
					}
					img.SetNRGBA(px, py, toNRGBA(cm.At(Normalize(v, lo, hi))))
				}
			}
		}()
	}
	for py := 0; py < h; py++ {
		rows <- py
	}
	close(rows)
	wg.Wait()
	return img
}

// Sample evaluates fn at every pixel of a w by h raster in parallel and
// returns the values row-major, top row first.
func Sample(w, h int, fn func(px, py int) float64) []float64 {
	out := make([]float64, w*h)
	rows := make(chan int)
	var wg sync.WaitGroup
	for range runtime.GOMAXPROCS(0) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for py := range rows {
				for px := 0; px < w; px++ {
					out[py*w+px] = fn(px, py)
				}
			}
		}()
	}
	for py := 0; py < h; py++ {
		rows <- py
	}
	close(rows)
	wg.Wait()
	return out
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c.Color()).(color.NRGBA)
}
