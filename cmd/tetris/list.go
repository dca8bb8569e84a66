package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		games := registry.List()
		if len(games) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No games available.")
			return
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION")
		for _, g := range games {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", g.ID, g.Title, g.Summary)
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	},
}
