package main

import (
	"falling-sand/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	tps := 30
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "run the engine interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			return tui.Run(eng, tps)
		},
	}
	cmd.Flags().IntVar(&tps, "tps", tps, "ticks per second")
	return cmd
}
