package plot

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/field"
)

// Box is a rectangle in figure fractions, origin at the bottom left.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// FullBox covers the whole figure.
var FullBox = Box{0, 0, 1, 1}

// SubplotBox is the default single-subplot area: figure margins of 12.5%
// left, 10% right, 11% bottom and 12% top.
var SubplotBox = Box{0.125, 0.11, 0.9, 0.88}

// Figure is a canvas with a physical size.
type Figure struct {
	dc       *gg.Context
	widthIn  float64
	heightIn float64
}

// NewFigure wraps dc as a widthIn by heightIn inch figure. The canvas
// aspect ratio is expected to match.
func NewFigure(dc *gg.Context, widthIn, heightIn float64) *Figure {
	return &Figure{dc: dc, widthIn: widthIn, heightIn: heightIn}
}

// Context returns the underlying drawing context.
func (f *Figure) Context() *gg.Context { return f.dc }

// Size returns the figure size in inches.
func (f *Figure) Size() (w, h float64) { return f.widthIn, f.heightIn }

// DPI returns device pixels per inch.
func (f *Figure) DPI() float64 {
	return float64(f.dc.Width()) / f.widthIn
}

// Points converts a length in points (1/72 inch) to device pixels.
func (f *Figure) Points(pt float64) float64 {
	return pt * f.DPI() / 72
}

// Background fills the entire canvas.
func (f *Figure) Background(c gg.RGBA) {
	f.dc.ClearWithColor(c)
}

// pixelBox converts figure fractions to device pixels (y down).
func (f *Figure) pixelBox(b Box) (x0, y0, x1, y1 float64) {
	w, h := float64(f.dc.Width()), float64(f.dc.Height())
	return b.X0 * w, (1 - b.Y1) * h, b.X1 * w, (1 - b.Y0) * h
}

// Axes adds axes occupying box with data limits lim.
func (f *Figure) Axes(box Box, lim field.Limits) *Axes {
	a := &Axes{fig: f, clip: true}
	a.x0, a.y0, a.x1, a.y1 = f.pixelBox(box)
	a.SetLimits(lim)
	return a
}

// FullAxes adds axes covering the whole figure.
func (f *Figure) FullAxes(lim field.Limits) *Axes {
	return f.Axes(FullBox, lim)
}

// Subplots tiles the figure with rows by cols axes, row major with the top
// row first. spacing is the gap between neighbours as a fraction of one
// axes' width (or height).
func (f *Figure) Subplots(rows, cols int, lim field.Limits, spacing float64) []*Axes {
	w := 1 / (float64(cols) + float64(cols-1)*spacing)
	h := 1 / (float64(rows) + float64(rows-1)*spacing)
	axes := make([]*Axes, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			x0 := float64(c) * w * (1 + spacing)
			y1 := 1 - float64(r)*h*(1+spacing)
			axes = append(axes, f.Axes(Box{x0, y1 - h, x0 + w, y1}, lim))
		}
	}
	return axes
}

// Text draws s centred on (fx, fy) in figure fractions.
func (f *Figure) Text(s string, fx, fy, sizePt float64, c gg.RGBA) error {
	face, err := fontFace(f.Points(sizePt))
	if err != nil {
		return err
	}
	x0, y0, x1, y1 := f.pixelBox(Box{fx, fy, fx, fy})
	f.dc.SetFont(face)
	f.dc.SetColor(c.Color())
	f.dc.DrawStringAnchored(s, (x0+x1)/2, (y0+y1)/2, 0.5, 0.5)
	return nil
}
