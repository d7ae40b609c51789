package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// Polar is a circular axes: angle in radians counter-clockwise from east,
// radius mapped linearly from [RMin, RMax] onto the disc. Drawing is
// clipped to the disc.
type Polar struct {
	fig        *Figure
	cx, cy, rp float64 // device centre and radius
	rmin, rmax float64
}

// Polar adds polar axes inscribed in box (equal aspect, centred).
func (f *Figure) Polar(box Box, rmin, rmax float64) *Polar {
	x0, y0, x1, y1 := f.pixelBox(box)
	return &Polar{
		fig:  f,
		cx:   (x0 + x1) / 2,
		cy:   (y0 + y1) / 2,
		rp:   math.Min(x1-x0, y1-y0) / 2,
		rmin: rmin,
		rmax: rmax,
	}
}

// ToPixel maps (theta, r) to device coordinates.
func (p *Polar) ToPixel(theta, r float64) gg.Point {
	d := (r - p.rmin) / (p.rmax - p.rmin) * p.rp
	return gg.Pt(p.cx+d*math.Cos(theta), p.cy-d*math.Sin(theta))
}

func (p *Polar) with(draw func(dc *gg.Context) error) error {
	dc := p.fig.dc
	dc.Push()
	defer dc.Pop()
	dc.DrawCircle(p.cx, p.cy, p.rp)
	dc.Clip()
	return draw(dc)
}

// Background fills the disc.
func (p *Polar) Background(c gg.RGBA) error {
	dc := p.fig.dc
	dc.SetColor(c.Color())
	dc.DrawCircle(p.cx, p.cy, p.rp)
	return dc.Fill()
}

// Polyline strokes the curve through (thetas[i], rs[i]).
func (p *Polar) Polyline(thetas, rs []float64, s LineStyle) error {
	n := min(len(thetas), len(rs))
	if n < 2 || s.Width <= 0 {
		return nil
	}
	return p.with(func(dc *gg.Context) error {
		dc.SetColor(s.color().Color())
		dc.SetLineWidth(p.fig.Points(s.Width))
		dc.SetLineCap(s.Cap)
		dc.SetLineJoin(s.Join)
		dc.ClearDash()
		for i := range n {
			q := p.ToPixel(thetas[i], rs[i])
			if i == 0 {
				dc.MoveTo(q.X, q.Y)
			} else {
				dc.LineTo(q.X, q.Y)
			}
		}
		return dc.Stroke()
	})
}
