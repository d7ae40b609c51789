package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggart"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [collection]",
		Short: "List registered designs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := ggart.Select(args...)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "COLLECTION\tNAME\tTITLE")
			for _, d := range ds {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Collection, d.Name, d.DisplayTitle())
			}
			return tw.Flush()
		},
	}
}
