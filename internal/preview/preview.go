//go:build !nopreview

package preview

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ggart"
)

// Available reports whether this build can open a preview window.
const Available = true

// Show renders d and displays it in a window until the window is closed.
// Animated designs loop through their frames at the design's frame rate.
func Show(d ggart.Design, opts ggart.Options) error {
	still, err := ggart.Render(d, opts)
	if err != nil {
		return err
	}
	g := &game{d: d, opts: opts}
	g.set(still)

	w, h := windowSize(g.w, g.h, maxWindow)
	ebiten.SetWindowTitle(d.DisplayTitle())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if d.Animated() {
		ebiten.SetTPS(tps(d.FPS))
	}
	ggart.Logger().Info("opening preview", "design", d.ID(), "width", g.w, "height", g.h)
	return ebiten.RunGame(g)
}

type game struct {
	d     ggart.Design
	opts  ggart.Options
	frame int
	img   *ebiten.Image
	w, h  int
}

func (g *game) set(img image.Image) {
	if g.img != nil {
		g.img.Deallocate()
	}
	g.img = ebiten.NewImageFromImage(img)
	g.w, g.h = img.Bounds().Dx(), img.Bounds().Dy()
}

func (g *game) Update() error {
	if !g.d.Animated() {
		return nil
	}
	img, err := ggart.RenderFrame(g.d, g.opts, g.frame)
	if err != nil {
		return err
	}
	g.set(img)
	g.frame = (g.frame + 1) % g.d.Frames
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h
}

func tps(fps float64) int {
	if fps <= 0 {
		return ebiten.DefaultTPS
	}
	return int(math.Max(1, math.Round(fps)))
}
