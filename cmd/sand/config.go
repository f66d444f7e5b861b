package main

import (
	"fmt"

	"falling-sand/internal/sims/sand"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	var (
		out    string
		params bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print or save the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if out != "" {
				if err := sand.SaveConfig(out, cfg); err != nil {
					return err
				}
				newLogger(cmd).Printf("wrote %s", out)
				return nil
			}
			w := cmd.OutOrStdout()
			if params {
				eng, err := sand.New(cfg)
				if err != nil {
					return err
				}
				for _, group := range eng.Parameters().Groups {
					fmt.Fprintf(w, "%s:\n", group.Name)
					for _, p := range group.Params {
						fmt.Fprintf(w, "  %-18s %-8s %s\n", p.Key, p.Type, p.Value)
					}
				}
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the configuration to this YAML file")
	cmd.Flags().BoolVar(&params, "params", false, "list the tunable parameters instead")
	return cmd
}
