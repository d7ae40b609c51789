package field

import (
	"math"

	"github.com/gogpu/gg"
)

// Contour is the level set of a grid at one level, as polylines.
// A polyline whose last point equals its first is closed.
type Contour struct {
	Level float64
	Lines [][]gg.Point
}

// edge identifies a lattice edge: the horizontal one from (i, j) to
// (i+1, j), or the vertical one from (i, j) to (i, j+1).
type edge struct {
	i, j     int
	vertical bool
}

// Contours traces each level through g with marching squares. Cells with
// any non-finite corner are skipped. Ambiguous saddle cells are resolved
// by the mean of their four corners.
func Contours(g *Grid, levels []float64) []Contour {
	out := make([]Contour, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, Contour{Level: lvl, Lines: trace(g, lvl)})
	}
	return out
}

func trace(g *Grid, lvl float64) [][]gg.Point {
	var segs [][2]edge
	pts := make(map[edge]gg.Point)

	cross := func(e edge) edge {
		if _, ok := pts[e]; ok {
			return e
		}
		i2, j2 := e.i+1, e.j
		if e.vertical {
			i2, j2 = e.i, e.j+1
		}
		a, b := g.At(e.i, e.j), g.At(i2, j2)
		t := 0.5
		if b != a {
			t = (lvl - a) / (b - a)
		}
		pts[e] = gg.Point{
			X: g.X[e.i] + t*(g.X[i2]-g.X[e.i]),
			Y: g.Y[e.j] + t*(g.Y[j2]-g.Y[e.j]),
		}
		return e
	}

	for j := 0; j+1 < g.Ny; j++ {
		for i := 0; i+1 < g.Nx; i++ {
			v00, v10 := g.At(i, j), g.At(i+1, j)
			v11, v01 := g.At(i+1, j+1), g.At(i, j+1)
			if !Finite(v00) || !Finite(v10) || !Finite(v11) || !Finite(v01) {
				continue
			}
			idx := 0
			if v00 > lvl {
				idx |= 1
			}
			if v10 > lvl {
				idx |= 2
			}
			if v11 > lvl {
				idx |= 4
			}
			if v01 > lvl {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}
			bottom := edge{i, j, false}
			top := edge{i, j + 1, false}
			left := edge{i, j, true}
			right := edge{i + 1, j, true}
			add := func(a, b edge) {
				segs = append(segs, [2]edge{cross(a), cross(b)})
			}
			centreAbove := (v00+v10+v11+v01)/4 > lvl
			switch idx {
			case 1, 14:
				add(left, bottom)
			case 2, 13:
				add(bottom, right)
			case 3, 12:
				add(left, right)
			case 4, 11:
				add(right, top)
			case 6, 9:
				add(bottom, top)
			case 7, 8:
				add(left, top)
			case 5:
				if centreAbove {
					add(bottom, right)
					add(left, top)
				} else {
					add(left, bottom)
					add(right, top)
				}
			case 10:
				if centreAbove {
					add(left, bottom)
					add(right, top)
				} else {
					add(bottom, right)
					add(left, top)
				}
			}
		}
	}
	return chain(segs, pts)
}

// chain joins segments that share an edge crossing into polylines.
func chain(segs [][2]edge, pts map[edge]gg.Point) [][]gg.Point {
	ends := make(map[edge][]int, len(pts))
	for k, s := range segs {
		ends[s[0]] = append(ends[s[0]], k)
		ends[s[1]] = append(ends[s[1]], k)
	}
	used := make([]bool, len(segs))
	next := func(at edge) (edge, bool) {
		for _, k := range ends[at] {
			if used[k] {
				continue
			}
			used[k] = true
			if segs[k][0] == at {
				return segs[k][1], true
			}
			return segs[k][0], true
		}
		return edge{}, false
	}

	var lines [][]gg.Point
	for k, s := range segs {
		if used[k] {
			continue
		}
		used[k] = true
		fwd := []edge{s[0], s[1]}
		for e, ok := next(s[1]); ok; e, ok = next(e) {
			fwd = append(fwd, e)
		}
		var back []edge
		for e, ok := next(s[0]); ok; e, ok = next(e) {
			back = append(back, e)
		}
		line := make([]gg.Point, 0, len(back)+len(fwd))
		for i := len(back) - 1; i >= 0; i-- {
			line = append(line, pts[back[i]])
		}
		for _, e := range fwd {
			line = append(line, pts[e])
		}
		lines = append(lines, line)
	}
	return lines
}

// Levels picks round contour levels for data spanning [lo, hi]: at most
// n+1 intervals on a 1, 2, 2.5, 5 step ladder, keeping only the levels
// strictly between lo and hi. If none qualify the result is [lo].
func Levels(lo, hi float64, n int) []float64 {
	if !Finite(lo) || !Finite(hi) || hi <= lo || n < 1 {
		return []float64{lo}
	}
	nbins := float64(n + 1)
	raw := (hi - lo) / nbins
	if !Finite(raw) || raw == 0 {
		return []float64{lo}
	}
	scale := math.Pow(10, math.Floor(math.Log10(raw)))
	step := 10 * scale
	for _, s := range []float64{1, 2, 2.5, 5, 10} {
		if s*scale >= raw*(1-1e-10) {
			step = s * scale
			break
		}
	}
	var out []float64
	start := math.Floor(lo/step) * step
	for k := 0; k <= int(nbins)+2; k++ {
		v := start + float64(k)*step
		if v > lo && v < hi {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []float64{lo}
	}
	return out
}
