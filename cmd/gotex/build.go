package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/growler/go-tex"
	"github.com/growler/go-tex/internal/config"
)

var buildCmd = &cobra.Command{
	Use:   "build <input.tex>",
	Short: "Compile a LaTeX document to PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addToolchainFlags(buildCmd)
	buildCmd.Flags().StringP("output", "o", "",
		"output PDF path, - for stdout (default: input with .pdf extension)")
}

func addToolchainFlags(cmd *cobra.Command) {
	cmd.Flags().String("engine", "", "TeX engine (pdflatex, xelatex, lualatex)")
	cmd.Flags().String("latexmk", "", "path to the latexmk executable")
	cmd.Flags().StringArray("texinput", nil, "extra TEXINPUTS directory (repeatable)")
	cmd.Flags().StringArray("asset", nil, "asset file or glob attached to the build (repeatable)")
	cmd.Flags().Bool("shell-escape", false, "allow \\write18 shell escape")
}

// Applies the toolchain flags over the loaded configuration.
func toolchainConf(cmd *cobra.Command, cfg *config.Config, log *slog.Logger) (tex.Conf, error) {
	if v, _ := cmd.Flags().GetString("engine"); v != "" {
		cfg.Toolchain.Engine = v
	}
	if v, _ := cmd.Flags().GetString("latexmk"); v != "" {
		cfg.Toolchain.LatexMk = v
	}
	if v, _ := cmd.Flags().GetStringArray("texinput"); len(v) > 0 {
		cfg.Toolchain.TexInputs = append(cfg.Toolchain.TexInputs, v...)
	}
	if ok, _ := cmd.Flags().GetBool("shell-escape"); ok {
		cfg.Toolchain.ShellEscape = true
	}
	if err := cfg.Validate(); err != nil {
		return tex.Conf{}, err
	}
	return cfg.Conf().WithLogger(log), nil
}

func assetPatterns(cmd *cobra.Command, cfg *config.Config) []string {
	assets := cfg.Build.Assets
	if v, _ := cmd.Flags().GetStringArray("asset"); len(v) > 0 {
		assets = append(assets, v...)
	}
	return assets
}

func outputPath(cmd *cobra.Command, cfg *config.Config, input string) string {
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		return v
	}
	if cfg.Build.Output != "" {
		return cfg.Build.Output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	conf, err := toolchainConf(cmd, cfg, log)
	if err != nil {
		return err
	}
	input := args[0]
	src, err := tex.SourceFromFile(input)
	if err != nil {
		return err
	}
	for _, pat := range assetPatterns(cmd, cfg) {
		if err := src.AddAssetGlob(pat); err != nil {
			return err
		}
	}
	pdf, err := tex.Compile(cmd.Context(), src, conf)
	if err != nil {
		return err
	}
	output := outputPath(cmd, cfg, input)
	if output == "-" {
		_, err := os.Stdout.Write(pdf)
		return err
	}
	if err := os.WriteFile(output, pdf, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	log.Info("built", "input", input, "output", output, "bytes", len(pdf))
	return nil
}
