package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	"github.com/spf13/cobra"
)

var (
	configFile string
	overrides  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sand",
		Short:         "falling-sand cellular automaton",
		Long:          "Falling-sand cellular automaton. Registered sims: " + strings.Join(core.Names(), ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringArrayVar(&overrides, "set", nil, "config override in key=value form (repeatable)")

	rootCmd.AddCommand(
		newRunCmd(),
		newTUICmd(),
		newGUICmd(),
		newSweepCmd(),
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.New(os.Stderr, "sand: ", 0).Print(err)
		os.Exit(1)
	}
}

// loadConfig resolves the defaults, the optional config file and the --set
// overrides, in that order.
func loadConfig() (sand.Config, error) {
	cfg := sand.DefaultConfig()
	if configFile != "" {
		loaded, err := sand.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	kv, err := parseOverrides(overrides)
	if err != nil {
		return cfg, err
	}
	cfg.Override(kv)
	return cfg, cfg.Validate()
}

func parseOverrides(list []string) (map[string]string, error) {
	kv := make(map[string]string, len(list))
	for _, item := range list {
		key, value, ok := strings.Cut(item, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: override %q is not key=value", sand.ErrInvalidConfig, item)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return kv, nil
}

func newEngine() (*sand.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return sand.New(cfg)
}

func newLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "", log.Ltime)
}
