package tex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/growler/go-tex/internal/logging"
)

// Supported TeX engines.
const (
	PDFLaTeX = "pdflatex"
	XeLaTeX  = "xelatex"
	LuaLaTeX = "lualatex"
)

// A configuration for running the latexmk executable.
type Conf struct {
	LatexMk     string   // Path to latexmk executable
	Engine      string   // TeX engine: pdflatex (default), xelatex or lualatex
	ShellEscape bool     // Allow \write18 shell escape
	TexInputs   []string // Extra directories for the TEXINPUTS search path
	Logger      *slog.Logger
}

var DefaultConf = Conf{
	Engine: PDFLaTeX,
}

// Makes a new Conf for TeX engine e.
func Engine(e string) Conf {
	return Conf{Engine: e}
}

// Returns a Conf with a specified path to latexmk executable.
func (c Conf) WithLatexMk(path string) Conf {
	c.LatexMk = path
	return c
}

func (c Conf) WithEngine(e string) Conf {
	c.Engine = e
	return c
}

func (c Conf) WithShellEscape() Conf {
	c.ShellEscape = true
	return c
}

// Adds a directory to the TEXINPUTS search path.
func (c Conf) WithTexInput(dir string) Conf {
	c.TexInputs = append(c.TexInputs, dir)
	return c
}

func (c Conf) WithLogger(l *slog.Logger) Conf {
	c.Logger = l
	return c
}

func (c *Conf) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.NewNop()
}

func (c *Conf) latexmkExecutable() (string, error) {
	if c.LatexMk != "" {
		return c.LatexMk, nil
	}
	if this, err := os.Executable(); err == nil {
		mk, err := exec.LookPath(filepath.Join(filepath.Dir(this), "latexmk"))
		if err == nil || errors.Is(err, exec.ErrDot) {
			return mk, nil
		}
	}
	if mk, err := exec.LookPath("latexmk"); err == nil {
		return mk, nil
	} else {
		return "", fmt.Errorf("latexmk executable is not found: %w", err)
	}
}

func (c *Conf) compileArgs(input string) []string {
	args := []string{
		"-interaction=batchmode",
		"-halt-on-error",
		"-file-line-error",
	}
	switch c.Engine {
	case XeLaTeX:
		args = append(args, "-pdfxe")
	case LuaLaTeX:
		args = append(args, "-pdflua")
	default:
		args = append(args, "-pdf")
	}
	if !c.ShellEscape {
		args = append(args, "-no-shell-escape")
	}
	return append(args, input)
}

// The TEXINPUTS value: a leading empty entry keeps the default search path
// in front of the configured directories.
func (c *Conf) texInputsEnv() string {
	if len(c.TexInputs) == 0 {
		return ""
	}
	return ":" + strings.Join(c.TexInputs, ":")
}

// LatexError reports a toolchain run that started but did not produce a
// document.
type LatexError struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

func (e *LatexError) Error() string {
	out := e.Stderr
	if len(bytes.TrimSpace(out)) == 0 {
		out = e.Stdout
	}
	if line := lastLine(out); line != "" {
		return fmt.Sprintf("latexmk exited with status %d: %s", e.ExitCode, line)
	}
	return fmt.Sprintf("latexmk exited with status %d", e.ExitCode)
}

func lastLine(out []byte) string {
	out = bytes.TrimSpace(out)
	if i := bytes.LastIndexByte(out, '\n'); i >= 0 {
		out = out[i+1:]
	}
	return string(bytes.TrimSpace(out))
}

// A LaTeX source document together with the assets it references.
type Source struct {
	input  []byte
	assets []asset
}

type asset struct {
	name string
	data []byte
}

// Makes a Source from raw LaTeX bytes.
func NewSource(input []byte) *Source {
	return &Source{input: input}
}

// Reads a Source from a file.
func SourceFromFile(path string) (*Source, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return &Source{input: input}, nil
}

// Renders e and wraps the result as a Source.
func SourceFromElement(e Element) (*Source, error) {
	var b bytes.Buffer
	if err := e.WriteTex(&b); err != nil {
		return nil, err
	}
	return &Source{input: b.Bytes()}, nil
}

// Attaches an asset placed next to the document at compile time. The name
// may contain subdirectories but must stay inside the compile directory.
func (s *Source) AddAsset(name string, data []byte) error {
	if !filepath.IsLocal(name) {
		return fmt.Errorf("asset name %q escapes the compile directory", name)
	}
	s.assets = append(s.assets, asset{name: filepath.ToSlash(name), data: data})
	return nil
}

// Attaches the file at path as an asset named after its base name.
func (s *Source) AddAssetFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read asset: %w", err)
	}
	return s.AddAsset(filepath.Base(path), data)
}

// Attaches every file matching pattern, which may use doublestar ** globs.
// Local match paths keep their directory structure as the asset name, so a
// document referring to img/logo.png finds it after AddAssetGlob("img/*").
func (s *Source) AddAssetGlob(pattern string) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		data, err := os.ReadFile(m)
		if err != nil {
			return fmt.Errorf("read asset: %w", err)
		}
		name := m
		if !filepath.IsLocal(m) {
			name = filepath.Base(m)
		}
		if err := s.AddAsset(name, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) materialize(dir string) error {
	if err := os.WriteFile(filepath.Join(dir, "input.tex"), s.input, 0o644); err != nil {
		return fmt.Errorf("write input file: %w", err)
	}
	for _, a := range s.assets {
		dst := filepath.Join(dir, filepath.FromSlash(a.name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("write asset %s: %w", a.name, err)
		}
		if err := os.WriteFile(dst, a.data, 0o644); err != nil {
			return fmt.Errorf("write asset %s: %w", a.name, err)
		}
	}
	return nil
}

// Compile runs the LaTeX toolchain over src and returns the produced PDF.
// The work happens in a scoped temporary directory that is removed on every
// exit path. A run that started but failed comes back as a [*LatexError];
// any other failure wraps its underlying cause.
func Compile(ctx context.Context, src *Source, conf Conf) ([]byte, error) {
	mk, err := conf.latexmkExecutable()
	if err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp("", "gotex-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)
	if err := src.materialize(dir); err != nil {
		return nil, err
	}
	log := conf.logger()
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, mk, conf.compileArgs("input.tex")...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "TEXINPUTS="+conf.texInputsEnv())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	log.Debug("running latexmk", "path", mk, "args", cmd.Args[1:], "dir", dir)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &LatexError{
				ExitCode: exitErr.ExitCode(),
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
			}
		}
		return nil, fmt.Errorf("run latexmk: %w", err)
	}
	pdf, err := os.ReadFile(filepath.Join(dir, "input.pdf"))
	if err != nil {
		return nil, fmt.Errorf("read output file: %w", err)
	}
	log.Debug("latexmk finished", "pdf_bytes", len(pdf))
	return pdf, nil
}
