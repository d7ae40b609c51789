package ggart

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// DrawFunc renders a still design onto dc.
type DrawFunc func(dc *gg.Context, rng *rand.Rand) error

// FrameFunc renders a single animation frame onto dc.
type FrameFunc func(dc *gg.Context, rng *rand.Rand, frame int) error

// Design describes one artwork.
type Design struct {
	// Collection groups related designs, usually one art series.
	Collection string

	// Name identifies the design inside its collection.
	Name string

	// Title is a human readable label. Defaults to DisplayName(Name).
	Title string

	// Aspect is width divided by height. Zero means square.
	Aspect float64

	// Path is the output path without extension, relative to the output
	// directory, using forward slashes. Defaults to Collection/Name.
	Path string

	// Draw renders the still image.
	Draw DrawFunc

	// Frames is the number of animation frames. Zero for still designs.
	Frames int

	// FPS is the animation playback rate.
	FPS float64

	// DrawFrame renders animation frames. Required when Frames > 0.
	DrawFrame FrameFunc

	// AnimationPath is the output path of the animation, without
	// extension. Defaults to Path + "_animation".
	AnimationPath string
}

// ID returns "collection/name".
func (d Design) ID() string {
	return d.Collection + "/" + d.Name
}

// Animated reports whether the design has animation frames.
func (d Design) Animated() bool {
	return d.Frames > 0
}

// OutputPath returns the still image path relative to an output directory.
func (d Design) OutputPath() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Collection + "/" + d.Name
}

// AnimationOutputPath returns the animation path relative to an output
// directory.
func (d Design) AnimationOutputPath() string {
	if d.AnimationPath != "" {
		return d.AnimationPath
	}
	return d.OutputPath() + "_animation"
}

// DisplayTitle returns Title, falling back to a title-cased Name.
func (d Design) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return DisplayName(d.Name)
}

// Size returns the pixel dimensions for the given width.
func (d Design) Size(width int) (w, h int) {
	aspect := d.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	h = int(float64(width)/aspect + 0.5)
	if h < 1 {
		h = 1
	}
	return width, h
}

func (d Design) validate() error {
	switch {
	case d.Collection == "" || d.Name == "":
		return fmt.Errorf("%w: empty collection or name %q", ErrInvalidDesign, d.ID())
	case d.Draw == nil:
		return fmt.Errorf("%w: %s has no draw function", ErrInvalidDesign, d.ID())
	case d.Frames < 0:
		return fmt.Errorf("%w: %s has negative frame count", ErrInvalidDesign, d.ID())
	case d.Frames > 0 && d.DrawFrame == nil:
		return fmt.Errorf("%w: %s is animated but has no frame function", ErrInvalidDesign, d.ID())
	}
	return nil
}
