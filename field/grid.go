package field

import "math"

// Grid holds samples of a function on a regular Nx by Ny lattice. Sample
// (i, j) sits at (X[i], Y[j]); row j = 0 is YMin.
type Grid struct {
	Nx, Ny int
	X, Y   []float64
	Values []float64
}

// Evaluate samples fn at nx by ny points spanning lim, edges included.
func Evaluate(fn func(x, y float64) float64, nx, ny int, lim Limits) *Grid {
	g := &Grid{
		Nx:     nx,
		Ny:     ny,
		X:      Linspace(lim.XMin, lim.XMax, nx),
		Y:      Linspace(lim.YMin, lim.YMax, ny),
		Values: make([]float64, nx*ny),
	}
	for j, y := range g.Y {
		row := g.Values[j*nx : (j+1)*nx]
		for i, x := range g.X {
			row[i] = fn(x, y)
		}
	}
	return g
}

// FromRows builds a grid from a matrix given top row first, the way images
// are written down. X and Y are the column and row indices with row 0 at
// the bottom, so Rows[0] ends up at the highest Y.
func FromRows(rows [][]float64) *Grid {
	ny := len(rows)
	if ny == 0 {
		return &Grid{}
	}
	nx := len(rows[0])
	g := &Grid{Nx: nx, Ny: ny, Values: make([]float64, nx*ny)}
	g.X = Linspace(0, float64(nx-1), nx)
	g.Y = Linspace(0, float64(ny-1), ny)
	for r, row := range rows {
		copy(g.Values[(ny-1-r)*nx:], row)
	}
	return g
}

// At returns sample (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.Values[j*g.Nx+i]
}

// Set replaces sample (i, j).
func (g *Grid) Set(i, j int, v float64) {
	g.Values[j*g.Nx+i] = v
}

// Range returns the smallest and largest finite samples. ok is false when
// no sample is finite.
func (g *Grid) Range() (lo, hi float64, ok bool) {
	return FiniteRange(g.Values)
}

// FiniteRange returns the finite extremes of vs.
func FiniteRange(vs []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if !Finite(v) {
			continue
		}
		ok = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Bilinear interpolates at fractional sample indices (fx, fy). Indices are
// clamped to the grid. The result is NaN if any sample that contributes
// to it is non-finite.
func (g *Grid) Bilinear(fx, fy float64) float64 {
	if g.Nx == 0 || g.Ny == 0 || math.IsNaN(fx) || math.IsNaN(fy) {
		return math.NaN()
	}
	fx = math.Max(0, math.Min(float64(g.Nx-1), fx))
	fy = math.Max(0, math.Min(float64(g.Ny-1), fy))
	i0, j0 := int(fx), int(fy)
	i1, j1 := min(i0+1, g.Nx-1), min(j0+1, g.Ny-1)
	tx, ty := fx-float64(i0), fy-float64(j0)

	v := 0.0
	acc := func(i, j int, w float64) bool {
		if w == 0 {
			return true
		}
		s := g.At(i, j)
		if !Finite(s) {
			return false
		}
		v += w * s
		return true
	}
	if !acc(i0, j0, (1-tx)*(1-ty)) || !acc(i1, j0, tx*(1-ty)) ||
		!acc(i0, j1, (1-tx)*ty) || !acc(i1, j1, tx*ty) {
		return math.NaN()
	}
	return v
}

// Nearest returns the sample whose cell contains fractional index
// (fx, fy), NaN outside the grid.
func (g *Grid) Nearest(fx, fy float64) float64 {
	i, j := int(math.Floor(fx+0.5)), int(math.Floor(fy+0.5))
	if i < 0 || j < 0 || i >= g.Nx || j >= g.Ny {
		return math.NaN()
	}
	return g.At(i, j)
}
