package colormap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrBadColour is returned by Parse for strings that are neither a hex
// colour nor a known colour name.
var ErrBadColour = errors.New("colormap: bad colour")

// Parse converts "#rgb", "#rrggbb", "#rrggbbaa", an SVG colour keyword
// such as "midnightblue", or "none" into a colour.
func Parse(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "none" || s == "transparent" {
		return gg.Transparent, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		switch len(hex) {
		case 3, 6, 8:
			if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
				return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColour, s)
			}
			return gg.Hex(hex), nil
		}
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColour, s)
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColour, s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) gg.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseAll parses every string with MustParse.
func MustParseAll(ss ...string) []gg.RGBA {
	out := make([]gg.RGBA, len(ss))
	for i, s := range ss {
		out[i] = MustParse(s)
	}
	return out
}

// RGB255 builds an opaque colour from 8-bit channels.
func RGB255(r, g, b uint8) gg.RGBA {
	return gg.RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}

// Cycle hands out items round-robin forever. The zero value is not usable;
// create one with NewCycle. A Cycle is not safe for concurrent use.
type Cycle[T any] struct {
	items []T
	next  int
}

// NewCycle returns a cycle over items. It panics if items is empty.
func NewCycle[T any](items ...T) *Cycle[T] {
	if len(items) == 0 {
		panic("colormap: empty cycle")
	}
	return &Cycle[T]{items: append([]T(nil), items...)}
}

// Next returns the next item and advances the cycle.
func (c *Cycle[T]) Next() T {
	v := c.items[c.next]
	c.next = (c.next + 1) % len(c.items)
	return v
}

// Pos returns the index of the item Next will return.
func (c *Cycle[T]) Pos() int { return c.next }

// Advance skips n items.
func (c *Cycle[T]) Advance(n int) {
	c.next = (c.next + n%len(c.items)) % len(c.items)
}

// Reset rewinds the cycle to its first item.
func (c *Cycle[T]) Reset() { c.next = 0 }

// Len returns the number of distinct items.
func (c *Cycle[T]) Len() int { return len(c.items) }
