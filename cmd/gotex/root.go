package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/growler/go-tex/internal/config"
	"github.com/growler/go-tex/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "gotex",
	Short: "Build LaTeX documents with latexmk",
	Long: `gotex compiles LaTeX sources to PDF through latexmk, with asset
bundling, TEXINPUTS management and a watch mode that rebuilds on change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"config file (default: gotex.yaml in this or a parent directory)")
	rootCmd.PersistentFlags().String("log-level", "",
		"log level (debug, info, warn, error)")
}

// Loads the layered configuration, applies the persistent flags and builds
// the logger every command shares.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewLoader(logging.New(slog.LevelWarn)).Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(level)
	slog.SetDefault(log)
	return cfg, log, nil
}
