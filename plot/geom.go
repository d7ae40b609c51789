package plot

import (
	"math"

	"github.com/gogpu/gg"
)

func deg(d float64) float64 { return d * math.Pi / 180 }

// RegularPolygon returns the n vertices of a regular polygon of
// circumradius r. Vertex i sits at angle 2πi/n + rotation radians.
func RegularPolygon(n int, cx, cy, r, rotation float64) []gg.Point {
	pts := make([]gg.Point, n)
	for i := range pts {
		th := 2*math.Pi*float64(i)/float64(n) + rotation
		pts[i] = gg.Pt(cx+r*math.Cos(th), cy+r*math.Sin(th))
	}
	return pts
}

// CirclePoints approximates a circle with n vertices.
func CirclePoints(cx, cy, r float64, n int) []gg.Point {
	return RegularPolygon(n, cx, cy, r, 0)
}

// WedgePoints returns a pie slice polygon from theta1 to theta2 degrees,
// or nil for an empty wedge.
func WedgePoints(cx, cy, r, theta1, theta2 float64, n int) []gg.Point {
	span := theta2 - theta1
	if math.Abs(span-360) <= 1e-12 {
		return CirclePoints(cx, cy, r, n)
	}
	eta2 := theta2 - 360*math.Floor(span/360)
	if theta2 != theta1 && eta2 <= theta1 {
		eta2 += 360
	}
	span = eta2 - theta1
	if span <= 0 {
		return nil
	}
	steps := max(2, int(math.Ceil(float64(n)*span/360)))
	pts := make([]gg.Point, 0, steps+2)
	pts = append(pts, gg.Pt(cx, cy))
	for i := 0; i <= steps; i++ {
		th := deg(theta1 + span*float64(i)/float64(steps))
		pts = append(pts, gg.Pt(cx+r*math.Cos(th), cy+r*math.Sin(th)))
	}
	return pts
}

// Transform rotates pts by angleDeg about the origin and then translates
// them by (dx, dy).
func Transform(pts []gg.Point, dx, dy, angleDeg float64) []gg.Point {
	m := gg.Translate(dx, dy).Multiply(gg.Rotate(deg(angleDeg)))
	out := make([]gg.Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// SlabPoints returns the region of a disc between two parallel chords: the
// points whose coordinate along direction angleDeg, measured from the
// centre, lies in [lo, hi]. It returns nil when the slab misses the disc.
func SlabPoints(cx, cy, r, lo, hi, angleDeg float64, n int) []gg.Point {
	circle := CirclePoints(0, 0, r, n)
	slab := ClipHalfPlane(circle, gg.Pt(1, 0), lo)
	slab = ClipHalfPlane(slab, gg.Pt(-1, 0), -hi)
	if len(slab) < 3 {
		return nil
	}
	return Transform(slab, cx, cy, angleDeg)
}

// ClipHalfPlane keeps the part of polygon poly where dot(p, normal) >= off
// (Sutherland-Hodgman against one edge).
func ClipHalfPlane(poly []gg.Point, normal gg.Point, off float64) []gg.Point {
	if len(poly) == 0 {
		return nil
	}
	var out []gg.Point
	prev := poly[len(poly)-1]
	prevIn := prev.Dot(normal) >= off
	for _, cur := range poly {
		curIn := cur.Dot(normal) >= off
		if curIn != prevIn {
			dp, dc := prev.Dot(normal)-off, cur.Dot(normal)-off
			t := dp / (dp - dc)
			out = append(out, prev.Lerp(cur, t))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// ClipConvex intersects subject with the convex polygon clip. Either
// winding order is accepted for clip.
func ClipConvex(subject, clip []gg.Point) []gg.Point {
	if len(clip) < 3 {
		return nil
	}
	sign := 1.0
	if SignedArea(clip) < 0 {
		sign = -1
	}
	out := subject
	for i := range clip {
		a, b := clip[i], clip[(i+1)%len(clip)]
		edge := b.Sub(a)
		// Inward normal of a counter-clockwise edge.
		normal := gg.Pt(-edge.Y, edge.X).Mul(sign)
		out = ClipHalfPlane(out, normal, a.Dot(normal))
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// SignedArea is the shoelace area, positive for counter-clockwise
// polygons in a y-up frame.
func SignedArea(poly []gg.Point) float64 {
	area := 0.0
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.Cross(q)
	}
	return area / 2
}

// Bounds returns the bounding rectangle of pts.
func Bounds(pts []gg.Point) (lo, hi gg.Point) {
	if len(pts) == 0 {
		return gg.Point{}, gg.Point{}
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
