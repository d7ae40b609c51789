package commands

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/internal/anim"
)

func animateCmd() *cobra.Command {
	var (
		rf        renderFlags
		stride    int
		limit     int
		framesDir string
	)
	cmd := &cobra.Command{
		Use:   "animate [patterns...]",
		Short: "Render animated designs as GIFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rf.apply(cmd, cfg)
			if cmd.Flags().Changed("stride") {
				c.Animation.Stride = stride
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if framesDir == "" && c.Animation.Frames {
				framesDir = c.OutputDir
			}
			if len(args) == 0 {
				args = c.Collections
			}
			ds, err := ggart.Select(args...)
			if err != nil {
				return err
			}
			var animated []ggart.Design
			for _, d := range ds {
				if d.Animated() {
					animated = append(animated, d)
				}
			}
			if len(animated) == 0 {
				return fmt.Errorf("%w: no animated design matches %q", ggart.ErrNotAnimated, args)
			}
			for _, d := range animated {
				path, err := animate(d, c.Options(), c.OutputDir, framesDir, c.Animation.Stride, limit)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	rf.register(cmd)
	cmd.Flags().IntVar(&stride, "stride", 1, "keep every n-th frame")
	cmd.Flags().IntVar(&limit, "limit", 0, "render at most this many source frames (0 for all)")
	cmd.Flags().StringVar(&framesDir, "frames-dir", "", "also write each frame as a PNG under this directory")
	return cmd
}

// animate renders the frames of d and writes the GIF, returning its path.
func animate(d ggart.Design, opts ggart.Options, outDir, framesDir string, stride, limit int) (string, error) {
	n := d.Frames
	if limit > 0 && limit < n {
		n = limit
	}
	var frames []image.Image
	for i := 0; i < n; i += stride {
		img, err := ggart.RenderFrame(d, opts, i)
		if err != nil {
			return "", err
		}
		frames = append(frames, img)
		if framesDir != "" {
			p := ggart.OutputPath(framesDir, d.AnimationOutputPath()+fmt.Sprintf("/frame_%04d", i), ".png")
			if err := ggart.SavePNG(img, p); err != nil {
				return "", err
			}
		}
	}

	path := ggart.OutputPath(outDir, d.AnimationOutputPath(), ".gif")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := anim.EncodeGIF(f, frames, d.FPS/float64(stride)); err != nil {
		return "", errors.Join(err, f.Close())
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	ggart.Logger().Info("saved animation", "path", path, "frames", len(frames))
	return path, nil
}
