package ggart

import "errors"

var (
	// ErrUnknownDesign is returned when a selection pattern matches nothing.
	ErrUnknownDesign = errors.New("ggart: unknown design")

	// ErrDuplicateDesign is returned by Register for a collection/name pair
	// that is already registered.
	ErrDuplicateDesign = errors.New("ggart: duplicate design")

	// ErrInvalidDesign is returned by Register for a design that is missing
	// its identifiers or draw functions.
	ErrInvalidDesign = errors.New("ggart: invalid design")

	// ErrNotAnimated is returned by RenderFrame for still designs.
	ErrNotAnimated = errors.New("ggart: design is not animated")

	// ErrFrameRange is returned by RenderFrame for a frame outside [0, Frames).
	ErrFrameRange = errors.New("ggart: frame out of range")
)
