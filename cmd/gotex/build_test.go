package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growler/go-tex/internal/config"
	"github.com/growler/go-tex/internal/logging"
)

func newToolchainCmd() *cobra.Command {
	cmd := &cobra.Command{}
	addToolchainFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "")
	return cmd
}

func TestOutputPath(t *testing.T) {
	cmd := newToolchainCmd()
	cfg := config.DefaultConfig()

	// derived from the input by default
	assert.Equal(t, "thesis.pdf", outputPath(cmd, cfg, "thesis.tex"))

	// the config file value wins over the derived path
	cfg.Build.Output = "out/main.pdf"
	assert.Equal(t, "out/main.pdf", outputPath(cmd, cfg, "thesis.tex"))

	// the flag wins over everything
	require.NoError(t, cmd.Flags().Set("output", "-"))
	assert.Equal(t, "-", outputPath(cmd, cfg, "thesis.tex"))
}

func TestToolchainConf(t *testing.T) {
	cmd := newToolchainCmd()
	require.NoError(t, cmd.Flags().Set("engine", "xelatex"))
	require.NoError(t, cmd.Flags().Set("texinput", "styles"))
	require.NoError(t, cmd.Flags().Set("shell-escape", "true"))

	cfg := config.DefaultConfig()
	cfg.Toolchain.TexInputs = []string{"shared"}

	conf, err := toolchainConf(cmd, cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "xelatex", conf.Engine)
	assert.True(t, conf.ShellEscape)
	assert.Equal(t, []string{"shared", "styles"}, conf.TexInputs)
}

func TestToolchainConfBadEngine(t *testing.T) {
	cmd := newToolchainCmd()
	require.NoError(t, cmd.Flags().Set("engine", "tex2pdf"))

	_, err := toolchainConf(cmd, config.DefaultConfig(), logging.NewNop())
	assert.Error(t, err)
}

func TestAssetPatterns(t *testing.T) {
	cmd := newToolchainCmd()
	cfg := config.DefaultConfig()
	assert.Empty(t, assetPatterns(cmd, cfg))

	cfg.Build.Assets = []string{"img/**"}
	require.NoError(t, cmd.Flags().Set("asset", "logo.png"))
	assert.Equal(t, []string{"img/**", "logo.png"}, assetPatterns(cmd, cfg))
}
