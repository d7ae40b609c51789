package plot

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart/colormap"
	"github.com/gogpu/ggart/field"
)

// Axes maps a data rectangle onto a box of the figure.
type Axes struct {
	fig            *Figure
	x0, y0, x1, y1 float64 // device pixels, y down
	lim            field.Limits
	m              gg.Matrix
	clip           bool
}

// Figure returns the owning figure.
func (a *Axes) Figure() *Figure { return a.fig }

// Limits returns the data limits.
func (a *Axes) Limits() field.Limits { return a.lim }

// PixelBox returns the device-space box of the axes.
func (a *Axes) PixelBox() (x0, y0, x1, y1 float64) { return a.x0, a.y0, a.x1, a.y1 }

// SetLimits changes the data limits. Reversed limits flip the axis.
func (a *Axes) SetLimits(lim field.Limits) {
	a.lim = lim
	sx := (a.x1 - a.x0) / lim.Width()
	sy := (a.y1 - a.y0) / lim.Height()
	a.m = gg.Translate(a.x0, a.y1).
		Multiply(gg.Scale(sx, -sy)).
		Multiply(gg.Translate(-lim.XMin, -lim.YMin))
}

// SetAspectEqual shrinks the box about its centre so one data unit spans
// the same number of pixels on both axes.
func (a *Axes) SetAspectEqual() {
	w, h := a.x1-a.x0, a.y1-a.y0
	s := math.Min(w/math.Abs(a.lim.Width()), h/math.Abs(a.lim.Height()))
	nw, nh := s*math.Abs(a.lim.Width()), s*math.Abs(a.lim.Height())
	cx, cy := (a.x0+a.x1)/2, (a.y0+a.y1)/2
	a.x0, a.x1 = cx-nw/2, cx+nw/2
	a.y0, a.y1 = cy-nh/2, cy+nh/2
	a.SetLimits(a.lim)
}

// SetClip turns clipping to the axes box on or off.
func (a *Axes) SetClip(on bool) { a.clip = on }

// ToPixel maps a data point to device coordinates.
func (a *Axes) ToPixel(x, y float64) gg.Point {
	return a.m.TransformPoint(gg.Pt(x, y))
}

// FromPixel maps device coordinates back to data.
func (a *Axes) FromPixel(px, py float64) gg.Point {
	return a.m.Invert().TransformPoint(gg.Pt(px, py))
}

// Scale returns device pixels per data unit along x.
func (a *Axes) Scale() float64 {
	return math.Abs(a.m.A)
}

// with runs draw inside a saved state clipped to the axes box.
func (a *Axes) with(draw func(dc *gg.Context) error) error {
	dc := a.fig.dc
	dc.Push()
	defer dc.Pop()
	if a.clip {
		dc.ClipRect(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
	}
	return draw(dc)
}

func (a *Axes) trace(dc *gg.Context, pts []gg.Point, closed bool) {
	for i, p := range pts {
		q := a.ToPixel(p.X, p.Y)
		if i == 0 {
			dc.MoveTo(q.X, q.Y)
		} else {
			dc.LineTo(q.X, q.Y)
		}
	}
	if closed {
		dc.ClosePath()
	}
}

func (a *Axes) setStroke(dc *gg.Context, s LineStyle) {
	w := a.fig.Points(s.Width)
	dc.SetColor(s.color().Color())
	dc.SetLineWidth(w)
	dc.SetLineCap(s.Cap)
	dc.SetLineJoin(s.Join)
	if p := s.Dash.pattern(); p != nil {
		scaled := make([]float64, len(p))
		for i, v := range p {
			scaled[i] = v * math.Max(w, 1e-3)
		}
		dc.SetDash(scaled...)
	} else {
		dc.ClearDash()
	}
}

func (a *Axes) strokePath(dc *gg.Context, pts []gg.Point, closed bool, s LineStyle) error {
	if len(pts) < 2 || s.Width <= 0 {
		return nil
	}
	a.setStroke(dc, s)
	a.trace(dc, pts, closed)
	return dc.Stroke()
}

func (a *Axes) patch(dc *gg.Context, pts []gg.Point, s PatchStyle) error {
	if len(pts) < 3 {
		return nil
	}
	if fill := applyAlpha(s.Fill, s.Alpha); fill.A > 0 {
		dc.SetColor(fill.Color())
		a.trace(dc, pts, true)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	if s.Edge.Width > 0 {
		edge := s.Edge
		if s.Alpha > 0 && edge.Alpha == 0 {
			edge.Alpha = s.Alpha
		}
		return a.strokePath(dc, pts, true, edge)
	}
	return nil
}

// Background fills the axes box.
func (a *Axes) Background(c gg.RGBA) error {
	return a.with(func(dc *gg.Context) error {
		dc.SetColor(c.Color())
		dc.DrawRectangle(a.x0, a.y0, a.x1-a.x0, a.y1-a.y0)
		return dc.Fill()
	})
}

// Line strokes the segment from (x1, y1) to (x2, y2).
func (a *Axes) Line(x1, y1, x2, y2 float64, s LineStyle) error {
	return a.Polyline([]gg.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, s)
}

// Polyline strokes an open path through pts.
func (a *Axes) Polyline(pts []gg.Point, s LineStyle) error {
	return a.with(func(dc *gg.Context) error {
		return a.strokePath(dc, pts, false, s)
	})
}

// Lines strokes many independent polylines sharing one style.
func (a *Axes) Lines(lines [][]gg.Point, s LineStyle) error {
	return a.with(func(dc *gg.Context) error {
		for _, l := range lines {
			if err := a.strokePath(dc, l, false, s); err != nil {
				return err
			}
		}
		return nil
	})
}

// Polygon fills and/or strokes the closed polygon pts.
func (a *Axes) Polygon(pts []gg.Point, s PatchStyle) error {
	return a.with(func(dc *gg.Context) error {
		return a.patch(dc, pts, s)
	})
}

// Circle draws a circle of radius r data units (measured along x).
func (a *Axes) Circle(cx, cy, r float64, s PatchStyle) error {
	return a.Polygon(CirclePoints(cx, cy, r, circleSegments(r*a.Scale())), s)
}

// Wedge draws a pie slice from theta1 to theta2 degrees counter-clockwise
// from east. theta2 is unwrapped into (theta1, theta1+360]; equal angles
// give an empty wedge and a span of exactly 360 a full disc.
func (a *Axes) Wedge(cx, cy, r, theta1, theta2 float64, s PatchStyle) error {
	pts := WedgePoints(cx, cy, r, theta1, theta2, circleSegments(r*a.Scale()))
	if pts == nil {
		return nil
	}
	return a.Polygon(pts, s)
}

// RotatedRect draws the rectangle [x0, x0+w] by [y0, y0+h] given in a
// frame centred on (cx, cy) and rotated angleDeg counter-clockwise.
func (a *Axes) RotatedRect(cx, cy, x0, y0, w, h, angleDeg float64, s PatchStyle) error {
	local := []gg.Point{{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: y0 + h}, {X: x0, Y: y0 + h}}
	return a.Polygon(Transform(local, cx, cy, angleDeg), s)
}

// CircleSlab draws the part of the disc of radius r about (cx, cy) lying
// between offsets lo and hi along the direction angleDeg.
func (a *Axes) CircleSlab(cx, cy, r, lo, hi, angleDeg float64, s PatchStyle) error {
	pts := SlabPoints(cx, cy, r, lo, hi, angleDeg, circleSegments(r*a.Scale()))
	if pts == nil {
		return nil
	}
	return a.Polygon(pts, s)
}

// GridLines strokes vertical and horizontal lines at every multiple of
// step inside the limits.
func (a *Axes) GridLines(step float64, s LineStyle) error {
	if step <= 0 {
		return nil
	}
	var lines [][]gg.Point
	lo, hi := math.Min(a.lim.XMin, a.lim.XMax), math.Max(a.lim.XMin, a.lim.XMax)
	for x := math.Ceil(lo/step) * step; x <= hi; x += step {
		lines = append(lines, []gg.Point{{X: x, Y: a.lim.YMin}, {X: x, Y: a.lim.YMax}})
	}
	lo, hi = math.Min(a.lim.YMin, a.lim.YMax), math.Max(a.lim.YMin, a.lim.YMax)
	for y := math.Ceil(lo/step) * step; y <= hi; y += step {
		lines = append(lines, []gg.Point{{X: a.lim.XMin, Y: y}, {X: a.lim.XMax, Y: y}})
	}
	return a.Lines(lines, s)
}

// Field colours every device pixel of the axes by sampling fn at the
// pixel centre's data coordinates. Values are normalised from [lo, hi]
// into cm. Points outside extent and non-finite values stay transparent.
// fn may be called concurrently.
func (a *Axes) Field(fn func(x, y float64) float64, extent field.Limits, cm colormap.Colormap, lo, hi float64) error {
	bx0, by0 := math.Floor(a.x0), math.Floor(a.y0)
	w := int(math.Ceil(a.x1) - bx0)
	h := int(math.Ceil(a.y1) - by0)
	if w <= 0 || h <= 0 {
		return nil
	}
	inv := a.m.Invert()
	img := field.Raster(w, h, func(px, py int) float64 {
		p := inv.TransformPoint(gg.Pt(bx0+float64(px)+0.5, by0+float64(py)+0.5))
		if !extent.Contains(p.X, p.Y) {
			return math.NaN()
		}
		return fn(p.X, p.Y)
	}, cm, lo, hi)
	return a.Image(img, bx0, by0)
}

// FieldAuto is Field with the colour range taken from the finite minimum
// and maximum of the values actually rendered.
func (a *Axes) FieldAuto(fn func(x, y float64) float64, extent field.Limits, cm colormap.Colormap) error {
	bx0, by0 := math.Floor(a.x0), math.Floor(a.y0)
	w := int(math.Ceil(a.x1) - bx0)
	h := int(math.Ceil(a.y1) - by0)
	if w <= 0 || h <= 0 {
		return nil
	}
	inv := a.m.Invert()
	vals := field.Sample(w, h, func(px, py int) float64 {
		p := inv.TransformPoint(gg.Pt(bx0+float64(px)+0.5, by0+float64(py)+0.5))
		if !extent.Contains(p.X, p.Y) {
			return math.NaN()
		}
		return fn(p.X, p.Y)
	})
	lo, hi, ok := field.FiniteRange(vals)
	if !ok {
		return nil
	}
	img := field.Raster(w, h, func(px, py int) float64 { return vals[py*w+px] }, cm, lo, hi)
	return a.Image(img, bx0, by0)
}

// Image composites a device-resolution image with its top-left corner at
// device pixel (px, py), clipped to the axes.
func (a *Axes) Image(img image.Image, px, py float64) error {
	return a.with(func(dc *gg.Context) error {
		b := img.Bounds()
		dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
			X:             px,
			Y:             py,
			DstWidth:      float64(b.Dx()),
			DstHeight:     float64(b.Dy()),
			Interpolation: gg.InterpBilinear,
			Opacity:       1,
		})
		return nil
	})
}

// circleSegments picks a vertex count giving sub-pixel flattening error
// for a circle of radius rPx device pixels.
func circleSegments(rPx float64) int {
	n := int(math.Ceil(2 * math.Pi * math.Sqrt(math.Max(rPx, 1))))
	return max(24, min(n, 720))
}

// Title draws s centred above the axes box, its baseline padPt points
// above the top edge.
func (a *Axes) Title(s string, sizePt, padPt float64, c gg.RGBA) error {
	face, err := fontFace(a.fig.Points(sizePt))
	if err != nil {
		return err
	}
	dc := a.fig.dc
	dc.SetFont(face)
	dc.SetColor(c.Color())
	dc.DrawStringAnchored(s, (a.x0+a.x1)/2, a.y0-a.fig.Points(padPt), 0.5, 0)
	return nil
}
