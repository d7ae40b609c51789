package edgedescend

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/colormap"
)

var (
	// Singles are the side counts drawn on their own.
	Singles = []int{1, 4, 3, 5, 7, 12}
	// Compound is the side counts of the 2x2 design, read row by row.
	Compound = []int{1, 4, 3, 5}
	// Zoom is the half width of each close-up window. The larger the
	// value the less it zooms, up to 0.5 for the whole square.
	Zoom = map[int]float64{1: 0.27, 3: 0.18, 4: 0.215, 5: 0.24, 7: 0.25, 12: 0.27}
)

// variant is one full gallery: singles, the compound and the close-ups,
// drawn in that order from one shared palette cycle.
type variant struct {
	style  Style
	random bool
	dir    string
	suffix string
	prefix string
}

var variants = []variant{
	{style: Standard, dir: "img/without-random-edge-alignment"},
	{style: Alternative, dir: "img/without-random-edge-alignment-alt", suffix: "_alt", prefix: "alt_"},
	{style: Standard, random: true, dir: "img/with-random-edge-alignment", prefix: "random_"},
}

type entry struct {
	name, path string
	params     Params
}

// entries lists every design of v with the palette offsets the shared
// cycle would have reached when drawing them in order.
func (v variant) entries() []entry {
	var out []entry
	cycle := colormap.NewCycle(v.style.Palette...)
	take := func(sides ...int) []Panel {
		ps := make([]Panel, len(sides))
		for i, s := range sides {
			ps[i] = Panel{Sides: s, Offset: cycle.Pos()}
			cycle.Advance(shapes)
		}
		return ps
	}
	for _, s := range Singles {
		name := fmt.Sprintf("single_design_with_%d_sides", s)
		out = append(out, entry{name, v.dir + "/" + name, Params{Style: v.style, Panels: take(s), Random: v.random}})
	}
	out = append(out, entry{"compound_design", v.dir + "/compound_design",
		Params{Style: v.style, Panels: take(Compound...), Random: v.random, Compound: true}})
	for _, s := range Singles {
		name := fmt.Sprintf("single_design_with_%d_sides_closeup", s)
		out = append(out, entry{name, v.dir + "-closeups/" + name, Params{
			Style: v.style, Panels: take(s), Random: v.random, Closeup: true, Zoom: Zoom[s],
		}})
	}
	return out
}

func (v variant) designs() []ggart.Design {
	var out []ggart.Design
	for _, e := range v.entries() {
		p := e.params
		out = append(out, ggart.Design{
			Collection: Collection,
			Name:       v.prefix + e.name + v.suffix,
			Path:       Collection + "/" + e.path + v.suffix,
			Draw: func(dc *gg.Context, rng *rand.Rand) error {
				return Draw(dc, rng, p)
			},
		})
	}
	return out
}

func init() {
	for _, v := range variants {
		ggart.MustRegister(v.designs()...)
	}
}
