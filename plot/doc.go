// Package plot is a thin figure and axes layer over a gg.Context.
//
// # Overview
//
// A [Figure] gives the canvas a physical size in inches, so line widths
// and marker sizes can be written in typographic points and come out the
// same relative size at any output resolution. An [Axes] maps a data
// rectangle onto part of the figure with the y axis pointing up and clips
// everything drawn through it to its box.
//
//	fig := plot.NewFigure(dc, 6, 6)
//	fig.Background(colormap.MustParse("#14001b"))
//	ax := fig.FullAxes(field.Lim(0, 1, 0, 1))
//	ax.SetAspectEqual()
//	_ = ax.Circle(0.5, 0.5, 0.25, plot.Filled(gg.White))
//
// Drawing methods return the error reported by gg's Fill or Stroke.
package plot
