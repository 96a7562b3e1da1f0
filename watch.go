package tex

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// The outcome of one watch-mode build.
type BuildResult struct {
	Output  string // Path the PDF was written to
	Err     error
	Elapsed time.Duration
}

// WatchConfig configures a [Watcher].
type WatchConfig struct {
	// Source is the root .tex file to compile.
	Source string

	// Output is the path the produced PDF is written to. Defaults to the
	// source path with a .pdf extension.
	Output string

	// Assets are glob patterns (doublestar ** supported) attached to every
	// build. The directories of matching files are watched as well.
	Assets []string

	// Extra files or directories to watch besides the source directory and
	// the configured TEXINPUTS directories.
	Extra []string

	// Debounce is the quiet period after a change before rebuilding.
	// Defaults to 200ms.
	Debounce time.Duration

	Conf Conf
}

// Watcher recompiles a document whenever one of its inputs changes,
// the -pvc mode of latexmk done in-process.
type Watcher struct {
	cfg     WatchConfig
	fsw     *fsnotify.Watcher
	log     *slog.Logger
	results chan BuildResult
}

// NewWatcher creates a watcher for cfg.Source. It does not build anything
// until [Watcher.Run] is called.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("watch: no source file")
	}
	if cfg.Output == "" {
		cfg.Output = strings.TrimSuffix(cfg.Source, filepath.Ext(cfg.Source)) + ".pdf"
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 200 * time.Millisecond
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		cfg:     cfg,
		fsw:     fsw,
		log:     cfg.Conf.logger(),
		results: make(chan BuildResult, 16),
	}
	if err := w.addPaths(); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addPaths() error {
	// Watch the directory rather than the file itself: editors that
	// replace on save would otherwise detach the watch.
	if err := w.fsw.Add(filepath.Dir(w.cfg.Source)); err != nil {
		return fmt.Errorf("watch %s: %w", w.cfg.Source, err)
	}
	for _, dir := range w.cfg.Conf.TexInputs {
		if err := w.fsw.Add(dir); err != nil {
			w.log.Warn("cannot watch texinput directory", "dir", dir, "err", err)
		}
	}
	for _, p := range w.cfg.Extra {
		if err := w.fsw.Add(p); err != nil {
			w.log.Warn("cannot watch path", "path", p, "err", err)
		}
	}
	seen := make(map[string]struct{})
	for _, pat := range w.cfg.Assets {
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			w.log.Warn("bad asset pattern", "pattern", pat, "err", err)
			continue
		}
		for _, m := range matches {
			dir := filepath.Dir(m)
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			if err := w.fsw.Add(dir); err != nil {
				w.log.Warn("cannot watch asset directory", "dir", dir, "err", err)
			}
		}
	}
	return nil
}

// Results delivers one BuildResult per completed build. The channel is
// buffered and results are dropped when nobody listens, so consuming it is
// optional.
func (w *Watcher) Results() <-chan BuildResult {
	return w.results
}

// Run builds once, then rebuilds after every debounced change until ctx is
// done. The returned error is ctx.Err() on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	w.log.Info("watching", "source", w.cfg.Source, "output", w.cfg.Output,
		"debounce", w.cfg.Debounce)
	w.build(ctx)
	timer := time.NewTimer(w.cfg.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("change detected", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(w.cfg.Debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		case <-timer.C:
			w.build(ctx)
		}
	}
}

// Filters out events that must not trigger a rebuild: chmods, the output
// file itself and TeX byproducts.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if out, err := filepath.Abs(w.cfg.Output); err == nil {
		if abs, err := filepath.Abs(ev.Name); err == nil && abs == out {
			return false
		}
	}
	switch filepath.Ext(ev.Name) {
	case ".pdf", ".log", ".aux", ".out", ".toc", ".fls":
		return false
	}
	return true
}

func (w *Watcher) build(ctx context.Context) {
	start := time.Now()
	err := w.compile(ctx)
	if ctx.Err() != nil {
		return
	}
	res := BuildResult{Output: w.cfg.Output, Err: err, Elapsed: time.Since(start)}
	if err != nil {
		w.log.Error("build failed", "err", err)
	} else {
		w.log.Info("build done", "output", res.Output, "elapsed", res.Elapsed)
	}
	select {
	case w.results <- res:
	default:
	}
}

func (w *Watcher) compile(ctx context.Context) error {
	src, err := SourceFromFile(w.cfg.Source)
	if err != nil {
		return err
	}
	for _, pat := range w.cfg.Assets {
		if err := src.AddAssetGlob(pat); err != nil {
			return err
		}
	}
	pdf, err := Compile(ctx, src, w.cfg.Conf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.cfg.Output, pdf, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
