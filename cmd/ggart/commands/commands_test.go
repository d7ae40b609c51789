package commands

import (
	"bytes"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/ggart"
	_ "github.com/gogpu/ggart/designs/all"
	"github.com/gogpu/ggart/internal/manifest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "julio-le-parc-replications")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"COLLECTION", "julio-le-parc-replications", "rotations"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestListUnknown(t *testing.T) {
	if _, err := run(t, "list", "no-such-collection"); !errors.Is(err, ggart.ErrUnknownDesign) {
		t.Errorf("err = %v, want ErrUnknownDesign", err)
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	const id = "lenore-tawney-replications/the_great_breath"
	if _, err := run(t, "render", "--out", dir, "--width", "48", id); err != nil {
		t.Fatal(err)
	}
	png := filepath.Join(dir, "lenore-tawney-replications", "img", "replications", "the_great_breath.png")
	if _, err := os.Stat(png); err != nil {
		t.Fatal(err)
	}
	entries, err := manifest.Read(filepath.Join(dir, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Width != 48 || entries[0].Seed != ggart.DefaultSeed {
		t.Errorf("manifest = %+v", entries)
	}
}

func TestRenderNoManifest(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "render", "--out", dir, "--width", "32", "--no-manifest", "lenore-tawney-replications/the_great*"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("manifest written: %v", err)
	}
}

func TestRenderInvalidWidth(t *testing.T) {
	if _, err := run(t, "render", "--out", t.TempDir(), "--width", "0", "repolygon"); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	frames := filepath.Join(dir, "frames")
	_, err := run(t, "animate", "--out", dir, "--width", "32", "--limit", "4", "--stride", "2",
		"--frames-dir", frames, "julio-le-parc-replications/rotations")
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir, "julio-le-parc-replications", "img", "rotations", "animation_with_uniform_rotation.gif"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Image) != 2 {
		t.Errorf("gif has %d frames, want 2", len(g.Image))
	}
	pngs, err := filepath.Glob(filepath.Join(frames, "julio-le-parc-replications", "img", "rotations", "animation_with_uniform_rotation", "frame_*.png"))
	if err != nil || len(pngs) != 2 {
		t.Errorf("frame pngs = %v, %v", pngs, err)
	}
}

func TestAnimateStill(t *testing.T) {
	_, err := run(t, "animate", "--out", t.TempDir(), "lenore-tawney-replications")
	if !errors.Is(err, ggart.ErrNotAnimated) {
		t.Errorf("err = %v, want ErrNotAnimated", err)
	}
}

func TestBadLogLevel(t *testing.T) {
	if _, err := run(t, "--log-level", "loud", "list"); err == nil {
		t.Error("expected error for unknown log level")
	}
}
