package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/internal/batch"
	"github.com/gogpu/ggart/internal/manifest"
)

func renderCmd() *cobra.Command {
	var (
		rf         renderFlags
		noManifest bool
		jobsN      int
	)
	cmd := &cobra.Command{
		Use:   "render [patterns...]",
		Short: "Render still images",
		Long: `Render still images to <out>/<design path>.png.

A pattern is a collection, collection/name or collection/prefix*. With no
patterns the config's collections are used, or every design.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rf.apply(cmd, cfg)
			if noManifest {
				c.Manifest = false
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if len(args) == 0 {
				args = c.Collections
			}
			ds, err := ggart.Select(args...)
			if err != nil {
				return err
			}

			entries := make([]manifest.Entry, len(ds))
			paths := make([]string, len(ds))
			jobs := make([]func() error, len(ds))
			for i, d := range ds {
				jobs[i] = func() error {
					start := time.Now()
					img, err := ggart.Render(d, c.Options())
					if err != nil {
						return err
					}
					path := ggart.OutputPath(c.OutputDir, d.OutputPath(), ".png")
					if err := ggart.SavePNG(img, path); err != nil {
						return err
					}
					b := img.Bounds()
					entries[i] = manifest.NewEntry(d, path, b.Dx(), b.Dy(), c.Seed, 0, time.Since(start))
					paths[i] = path
					return nil
				}
			}
			pool := batch.New(jobsN)
			err = pool.Run(jobs)
			pool.Close()
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			if !c.Manifest {
				return nil
			}
			return manifest.Write(filepath.Join(c.OutputDir, manifest.FileName), entries)
		},
	}
	rf.register(cmd)
	cmd.Flags().IntVarP(&jobsN, "jobs", "j", 0, "designs rendered in parallel (0 for GOMAXPROCS)")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "do not write manifest.json")
	return cmd
}
