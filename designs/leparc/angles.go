package leparc

import "github.com/gogpu/ggart/field"

// Angle grids are indexed [i][j] for the point at (2+i, 2+j). Each is
// built the same way: fix the first and last rows, then fill every row i
// by interpolating between entry i of the first and last rows. Rows are
// overwritten as they are filled, so later rows read the updated first
// row.

type pair = [2]float64

func linspacePairs(from, to pair, n int) []pair {
	a := field.Linspace(from[0], to[0], n)
	b := field.Linspace(from[1], to[1], n)
	out := make([]pair, n)
	for k := range out {
		out[k] = pair{a[k], b[k]}
	}
	return out
}

// MutationAngles returns the (theta1, theta2) wedge angles in degrees of
// Mutation of Forms. Red wedges sweep between -135..45 and -45..-45, blue
// ones between 45..225 and 135..135, in the opposite direction.
func MutationAngles(n int, red bool) [][]pair {
	widest, narrowest := pair{-135, 45}, pair{-45, -45}
	if !red {
		widest, narrowest = pair{45, 225}, pair{135, 135}
	}
	spaced := linspacePairs(widest, narrowest, n)
	if !red {
		for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
			spaced[l], spaced[r] = spaced[r], spaced[l]
		}
	}
	a := make([][]pair, n)
	for i := range a {
		a[i] = make([]pair, n)
	}
	for j := range n {
		a[0][j] = spaced[j]
		a[n-1][j] = spaced[n-1-j]
	}
	for i := range n {
		a[i] = linspacePairs(a[0][i], a[n-1][i], n)
	}
	return a
}

func grid(n int) [][]float64 {
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	return a
}

// RotationAngles returns the slab angles of Rotations in degrees. Rows
// turn clockwise from first to last entry.
func RotationAngles(n int) [][]float64 {
	spaced := field.Linspace(0, 180, n)
	a := grid(n)
	for j := range n {
		a[0][j] = spaced[j]
		a[n-1][j] = spaced[n-1-j]
	}
	for i := range n {
		copy(a[i], field.Linspace(-a[0][i], a[n-1][i], n))
	}
	return a
}

// FractionedAngles returns the slab angles of Rotation of Fractioned
// Circles in degrees, negated and mirrored along j.
func FractionedAngles(n int) [][]float64 {
	first := field.Linspace(-70, 70, n)
	last := field.Linspace(70, 3*360+290, n)
	a := grid(n)
	for j := range n {
		a[0][j] = first[j]
		a[n-1][j] = last[j]
	}
	for i := range n {
		copy(a[i], field.Linspace(a[0][i], a[n-1][i], n))
	}
	out := grid(n)
	for i := range n {
		for j := range n {
			out[i][j] = -a[i][n-1-j]
		}
	}
	return out
}

// RedAndBlackAngles returns the cross angles of Rotation in Red and Black
// in degrees. The first and last rows alternate between 45 and -45, out
// of phase, and column i winds (i/2)+7 extra turns between them.
func RedAndBlackAngles(n int) [][]float64 {
	a := grid(n)
	for j := range n {
		first, last := 45.0, -45.0
		if j%2 == 1 {
			first, last = -45, 45
		}
		a[0][j] = first
		a[n-1][j] = last
	}
	for i := range n {
		turns := float64(i/2 + 7)
		col := field.Linspace(a[0][i], a[n-1][i]+360*turns, n)
		for k := range n {
			a[k][i] = col[k]
		}
	}
	return a
}
