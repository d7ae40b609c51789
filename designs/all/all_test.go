package all

import (
	"slices"
	"testing"

	"github.com/gogpu/ggart"
)

func TestCollections(t *testing.T) {
	want := []string{
		"bold-gradation",
		"collatz-pattern-textures",
		"contours-on-gradient-backgrounds",
		"edge-descend",
		"ellsworth-kelly-replications",
		"julio-le-parc-replications",
		"lenore-tawney-replications",
		"repolygon",
		"spindles",
		"tree-profiles",
	}
	if got := ggart.Collections(); !slices.Equal(got, want) {
		t.Errorf("Collections() = %v, want %v", got, want)
	}
}

func TestPathsUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, d := range ggart.All() {
		p := d.OutputPath()
		if other, ok := seen[p]; ok {
			t.Errorf("%s and %s share output path %s", d.ID(), other, p)
		}
		seen[p] = d.ID()
	}
}
