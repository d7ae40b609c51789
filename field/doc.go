// Package field samples scalar functions of two variables and extracts
// their level sets.
//
// Functions under study are allowed to divide by zero: non-finite samples
// are carried through as NaN or ±Inf, ignored by [Grid.Range], skipped by
// [Contours] and rendered transparent by [Raster].
package field
