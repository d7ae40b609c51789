// Package commands implements the ggart command line.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/internal/config"
)

var (
	configPath string
	logLevel   string
	outDir     string
	cfg        config.Config
)

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "ggart",
		Short:        "Render generative art collections",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cmd.ErrOrStderr(), logLevel); err != nil {
				return err
			}
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				c.OutputDir = outDir
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultFile, "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&outDir, "out", "", "output directory (default from config, img)")

	root.AddCommand(listCmd(), renderCmd(), animateCmd(), showCmd())
	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRoot().Execute()
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	ggart.SetLogger(l)
	return nil
}

// renderFlags are the options shared by render, animate and show.
type renderFlags struct {
	width       int
	seed        uint64
	supersample int
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", ggart.DefaultWidth, "output width in pixels")
	cmd.Flags().Uint64Var(&f.seed, "seed", ggart.DefaultSeed, "random seed")
	cmd.Flags().IntVar(&f.supersample, "supersample", 1, "render at this multiple and downscale")
}

// apply overlays the flags the user set on c.
func (f *renderFlags) apply(cmd *cobra.Command, c config.Config) config.Config {
	if cmd.Flags().Changed("width") {
		c.Width = f.width
	}
	if cmd.Flags().Changed("seed") {
		c.Seed = f.seed
	}
	if cmd.Flags().Changed("supersample") {
		c.Supersample = f.supersample
	}
	return c
}
