package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/growler/go-tex"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input.tex>",
	Short: "Rebuild the PDF whenever an input changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addToolchainFlags(watchCmd)
	watchCmd.Flags().StringP("output", "o", "",
		"output PDF path (default: input with .pdf extension)")
	watchCmd.Flags().Duration("debounce", 0,
		"quiet period after a change before rebuilding")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	conf, err := toolchainConf(cmd, cfg, log)
	if err != nil {
		return err
	}
	debounce := cfg.Watch.Debounce
	if v, _ := cmd.Flags().GetDuration("debounce"); v > 0 {
		debounce = v
	}
	input := args[0]
	output := outputPath(cmd, cfg, input)
	if output == "-" {
		return errors.New("watch cannot write to stdout")
	}
	w, err := tex.NewWatcher(tex.WatchConfig{
		Source:   input,
		Output:   output,
		Assets:   assetPatterns(cmd, cfg),
		Extra:    cfg.Watch.Extra,
		Debounce: debounce,
		Conf:     conf,
	})
	if err != nil {
		return err
	}
	if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
