package colormap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/gg"
)

// ErrUnknownColormap is returned by Lookup for names it does not know.
var ErrUnknownColormap = errors.New("colormap: unknown colormap")

// Colormap maps a scalar in [0, 1] to a colour.
type Colormap interface {
	// At returns the colour for t. Values outside [0, 1] are clamped;
	// NaN maps to transparent.
	At(t float64) gg.RGBA

	// Name returns the registered name of the map.
	Name() string
}

// Stop is a colour at a position in [0, 1].
type Stop struct {
	Pos   float64
	Color gg.RGBA
}

// Segmented interpolates linearly between sorted stops.
type Segmented struct {
	name  string
	stops []Stop
}

// NewSegmented builds a map from stops. Stops are sorted by position.
func NewSegmented(name string, stops ...Stop) *Segmented {
	s := append([]Stop(nil), stops...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Pos < s[j].Pos })
	return &Segmented{name: name, stops: s}
}

// Even builds a segmented map from colours spaced evenly over [0, 1].
func Even(name string, colors ...gg.RGBA) *Segmented {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Pos: pos, Color: c}
	}
	return &Segmented{name: name, stops: stops}
}

// EvenHex is Even for "#rrggbb" strings. It panics on malformed input.
func EvenHex(name string, hexes ...string) *Segmented {
	colors := make([]gg.RGBA, len(hexes))
	for i, h := range hexes {
		colors[i] = MustParse(h)
	}
	return Even(name, colors...)
}

func (s *Segmented) Name() string { return s.name }

func (s *Segmented) At(t float64) gg.RGBA {
	t, ok := clampUnit(t)
	if !ok {
		return gg.Transparent
	}
	n := len(s.stops)
	switch {
	case n == 0:
		return gg.Transparent
	case t <= s.stops[0].Pos:
		return s.stops[0].Color
	case t >= s.stops[n-1].Pos:
		return s.stops[n-1].Color
	}
	i := sort.Search(n, func(i int) bool { return s.stops[i].Pos >= t })
	a, b := s.stops[i-1], s.stops[i]
	if b.Pos == a.Pos {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Pos)/(b.Pos-a.Pos))
}

// Segment is one row of a per-channel table: at position X the channel
// approaches Left from below and leaves with Right. Left != Right encodes
// a discontinuity.
type Segment struct {
	X, Left, Right float64
}

// Channels interpolates each colour channel through its own table.
type Channels struct {
	name    string
	r, g, b []Segment
}

// NewChannels builds a map from red, green and blue tables. Each table
// must start at X=0 and end at X=1.
func NewChannels(name string, r, g, b []Segment) *Channels {
	return &Channels{name: name, r: r, g: g, b: b}
}

func (c *Channels) Name() string { return c.name }

func (c *Channels) At(t float64) gg.RGBA {
	t, ok := clampUnit(t)
	if !ok {
		return gg.Transparent
	}
	return gg.RGB(channel(c.r, t), channel(c.g, t), channel(c.b, t))
}

func channel(segs []Segment, t float64) float64 {
	if len(segs) == 0 {
		return 0
	}
	if t <= segs[0].X {
		return segs[0].Right
	}
	for i := 1; i < len(segs); i++ {
		if t <= segs[i].X {
			a, b := segs[i-1], segs[i]
			if b.X == a.X {
				return b.Left
			}
			f := (t - a.X) / (b.X - a.X)
			return a.Right + f*(b.Left-a.Right)
		}
	}
	return segs[len(segs)-1].Left
}

// Func evaluates a closed-form function of t.
type Func struct {
	name string
	fn   func(t float64) gg.RGBA
}

// NewFunc wraps fn as a colormap. Channel values are clipped to [0, 1].
func NewFunc(name string, fn func(t float64) gg.RGBA) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string { return f.name }

func (f *Func) At(t float64) gg.RGBA {
	t, ok := clampUnit(t)
	if !ok {
		return gg.Transparent
	}
	c := f.fn(t)
	return gg.RGBA2(clip01(c.R), clip01(c.G), clip01(c.B), clip01(c.A))
}

// Listed picks one of N discrete colours: index floor(t*N), clamped.
type Listed struct {
	name   string
	colors []gg.RGBA
}

// NewListed builds a discrete map.
func NewListed(name string, colors ...gg.RGBA) *Listed {
	return &Listed{name: name, colors: append([]gg.RGBA(nil), colors...)}
}

func (l *Listed) Name() string { return l.name }

// Len returns the number of colours.
func (l *Listed) Len() int { return len(l.colors) }

func (l *Listed) At(t float64) gg.RGBA {
	t, ok := clampUnit(t)
	if !ok || len(l.colors) == 0 {
		return gg.Transparent
	}
	i := int(t * float64(len(l.colors)))
	if i >= len(l.colors) {
		i = len(l.colors) - 1
	}
	return l.colors[i]
}

type reversed struct {
	Colormap
}

func (r reversed) At(t float64) gg.RGBA {
	if math.IsNaN(t) {
		return gg.Transparent
	}
	return r.Colormap.At(1 - t)
}

func (r reversed) Name() string { return r.Colormap.Name() + "_r" }

// Reverse returns cm traversed from 1 to 0.
func Reverse(cm Colormap) Colormap {
	if r, ok := cm.(reversed); ok {
		return r.Colormap
	}
	return reversed{cm}
}

// Lookup resolves a built-in colormap by name. A "_r" suffix reverses it.
func Lookup(name string) (Colormap, error) {
	if cm, ok := builtin[name]; ok {
		return cm, nil
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if cm, ok := builtin[base]; ok {
			return Reverse(cm), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
}

// MustLookup is like Lookup but panics if the name is unknown.
func MustLookup(name string) Colormap {
	cm, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return cm
}

// Names returns the built-in colormap names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sample returns n colours evenly spaced over the map, first and last
// included.
func Sample(cm Colormap, n int) []gg.RGBA {
	out := make([]gg.RGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = cm.At(t)
	}
	return out
}

func clampUnit(t float64) (float64, bool) {
	if math.IsNaN(t) {
		return 0, false
	}
	return clip01(t), true
}

func clip01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
