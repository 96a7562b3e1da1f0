// Package config loads gotex configuration with layered precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/growler/go-tex"
	"github.com/growler/go-tex/internal/logging"
)

// Config is the complete gotex configuration.
type Config struct {
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Build     BuildConfig     `yaml:"build"`
	Watch     WatchConfig     `yaml:"watch"`
	LogLevel  string          `yaml:"log_level"`
}

// ToolchainConfig configures the latexmk invocation.
type ToolchainConfig struct {
	// LatexMk is the path to the latexmk executable (PATH lookup if empty)
	LatexMk string `yaml:"latexmk"`
	// Engine is pdflatex, xelatex or lualatex
	Engine string `yaml:"engine"`
	// ShellEscape allows \write18 shell escape
	ShellEscape bool `yaml:"shell_escape"`
	// TexInputs lists extra TEXINPUTS search directories
	TexInputs []string `yaml:"texinputs"`
}

// BuildConfig configures the build command.
type BuildConfig struct {
	// Output is the default output path (derived from the input if empty)
	Output string `yaml:"output"`
	// Assets are glob patterns attached to every build
	Assets []string `yaml:"assets"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a change before rebuilding
	Debounce time.Duration `yaml:"debounce"`
	// Extra files or directories to watch
	Extra []string `yaml:"extra"`
}

// DefaultConfig returns a Config with the defaults filled in.
func DefaultConfig() *Config {
	return &Config{
		Toolchain: ToolchainConfig{
			Engine: tex.PDFLaTeX,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		LogLevel: "info",
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Toolchain.Engine {
	case "", tex.PDFLaTeX, tex.XeLaTeX, tex.LuaLaTeX:
	default:
		return fmt.Errorf("toolchain.engine %q is not one of pdflatex, xelatex, lualatex", c.Toolchain.Engine)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Conf assembles the toolchain settings into a [tex.Conf].
func (c *Config) Conf() tex.Conf {
	conf := tex.Conf{
		LatexMk:     c.Toolchain.LatexMk,
		Engine:      c.Toolchain.Engine,
		ShellEscape: c.Toolchain.ShellEscape,
	}
	for _, dir := range c.Toolchain.TexInputs {
		conf = conf.WithTexInput(dir)
	}
	return conf
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// parseFile reads a single configuration layer. Unlike [LoadFromFile] it
// does not fill in defaults, so merging sees only the values the file
// actually sets.
func parseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &config, nil
}

// SaveToFile writes the configuration as YAML.
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Merge merges another config into this one; non-zero values of other take
// precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Toolchain.LatexMk != "" {
		c.Toolchain.LatexMk = other.Toolchain.LatexMk
	}
	if other.Toolchain.Engine != "" {
		c.Toolchain.Engine = other.Toolchain.Engine
	}
	if other.Toolchain.ShellEscape {
		c.Toolchain.ShellEscape = true
	}
	if len(other.Toolchain.TexInputs) > 0 {
		c.Toolchain.TexInputs = other.Toolchain.TexInputs
	}
	if other.Build.Output != "" {
		c.Build.Output = other.Build.Output
	}
	if len(other.Build.Assets) > 0 {
		c.Build.Assets = other.Build.Assets
	}
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
	if len(other.Watch.Extra) > 0 {
		c.Watch.Extra = other.Watch.Extra
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
}
