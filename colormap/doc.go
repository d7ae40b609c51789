// Package colormap maps scalars in [0, 1] to colours.
//
// The built-in maps reproduce the look of the classic scientific colormaps
// (bone, terrain, gist_stern, the ColorBrewer sequences and so on) closely
// enough for artwork. Any name may carry an "_r" suffix to reverse it.
//
//	cm, err := colormap.Lookup("YlGnBu_r")
//	c := cm.At(0.25)
//
// Colours are [gg.RGBA] values so they can be passed straight to a
// gg.Context.
package colormap
