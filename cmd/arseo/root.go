package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the root command for arseo.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arseo",
		Short: "SEO content analysis for Arabic articles",
		Long: `arseo checks Arabic articles against on-page SEO rules: keyword
density and placement, heading and paragraph structure, repeated phrases,
and spacing and punctuation.

Settings come from flags, ARSEO_* environment variables, and the config
file ($XDG_CONFIG_HOME/arseo/config.yaml by default).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path")

	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewPhrasesCmd())
	cmd.AddCommand(NewReplaceCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger logs warnings and errors as JSON, or everything in the
// development format when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
