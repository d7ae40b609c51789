package commands

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ggart"
	"github.com/gogpu/ggart/internal/preview"
)

func showCmd() *cobra.Command {
	var rf renderFlags
	cmd := &cobra.Command{
		Use:   "show <collection/name>",
		Short: "Open a design in a preview window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rf.apply(cmd, cfg)
			if err := c.Validate(); err != nil {
				return err
			}
			ds, err := ggart.Select(args[0])
			if err != nil {
				return err
			}
			return preview.Show(ds[0], c.Options())
		},
	}
	rf.register(cmd)
	return cmd
}
