//go:build nopreview

package preview

import (
	"errors"

	"github.com/gogpu/ggart"
)

// Available reports whether this build can open a preview window.
const Available = false

// ErrUnavailable is returned by Show in builds tagged nopreview.
var ErrUnavailable = errors.New("preview: built with the nopreview tag; rebuild without it to open windows")

// Show always fails in this build.
func Show(ggart.Design, ggart.Options) error {
	return ErrUnavailable
}
