//go:build ebiten

package main

import (
	"errors"

	"falling-sand/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newGUICmd() *cobra.Command {
	opts := app.NewOptions()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "open the engine in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine()
			if err != nil {
				return err
			}
			opts.Normalize()
			game := app.New(eng, *opts, eng.Seed())
			size := eng.Size()

			ebiten.SetWindowTitle("falling sand")
			ebiten.SetTPS(opts.TPS)
			ebiten.SetWindowSize(size.W*opts.Scale+opts.Panel, size.H*opts.Scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	opts.Bind(cmd.Flags())
	return cmd
}
