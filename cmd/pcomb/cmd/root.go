// Package cmd holds the pcomb CLI's Cobra command tree, grouped the
// way keurnel-assembler's cmd/cli/cmd/root.go groups its own
// subcommands (there with an "arch" group; here the group is
// "grammar", since every subcommand picks one of the example grammars
// to run).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clarete/pcomb/pconfig"
	"github.com/clarete/pcomb/plog"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pcomb",
	Short: "pcomb parser combinator demos",
	Long:  "pcomb is a CPS parser-combinator library; this CLI runs its example grammars.",
}

// Execute runs the CLI, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: "grammar", Title: "Grammars"})
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a pcomb.toml config file")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(traceCmd)
}

// loadConfig reads --config if given, otherwise falls back to
// pconfig.Default().
func loadConfig() pconfig.Config {
	if cfgPath == "" {
		return pconfig.Default()
	}
	cfg, err := pconfig.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return pconfig.Default()
	}
	return cfg
}

// newLogger builds a *zap.Logger from cfg, falling back to zap.NewNop
// if construction fails — a demo CLI should still run without a
// logger, it just runs silently.
func newLogger(cfg pconfig.Config) *zap.Logger {
	logger, err := plog.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return zap.NewNop()
	}
	return logger
}
