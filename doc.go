// Package ggart renders collections of generative artwork with gg.
//
// # Overview
//
// A [Design] is a single artwork: a draw function plus the metadata needed
// to size and name its output. Design packages under designs/ register
// their artworks from init, and the ggart command renders any selection
// of them to PNG (or, for animated designs, GIF).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggart"
//	    _ "github.com/gogpu/ggart/designs/all"
//	)
//
//	d, ok := ggart.Lookup("tree", "basic-canopy-fractal-1")
//	if !ok {
//	    log.Fatal("no such design")
//	}
//	img, err := ggart.Render(d, ggart.Options{Width: 800})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = ggart.SavePNG(img, "tree.png")
//
// # Determinism
//
// Every design receives a *rand.Rand seeded from [Options.Seed] and the
// design's own identifier. The same seed always reproduces the same image,
// regardless of which other designs were rendered before it.
//
// # Coordinates
//
// Draw functions receive a bare *gg.Context in device pixels. Most designs
// wrap it in a [github.com/gogpu/ggart/plot.Figure] to work in data units
// with the y axis pointing up.
package ggart
