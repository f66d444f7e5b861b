//go:build !ebiten

package main

import (
	"fmt"

	"falling-sand/internal/app"

	"github.com/spf13/cobra"
)

func newGUICmd() *cobra.Command {
	opts := app.NewOptions()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "open the engine in a window (requires -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("%w; rebuild with `go build -tags ebiten ./cmd/sand`", app.ErrNoGUI)
		},
	}
	opts.Bind(cmd.Flags())
	return cmd
}
