package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce groups bursts of editor writes into one conversion.
const watchDebounce = 200 * time.Millisecond

// inputWatcher converts inputs again when they change on disk.
type inputWatcher struct {
	watcher   *fsnotify.Watcher
	input     string
	baseDir   string // Set for directory inputs
	outputDir string
	debounce  time.Duration
}

// newInputWatcher starts watching inputPath. Directory inputs are watched
// recursively; a single file is watched through its parent directory so
// that editors replacing the file by rename are still seen.
func newInputWatcher(inputPath, outputDir string) (*inputWatcher, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &inputWatcher{
		watcher:   watcher,
		input:     filepath.Clean(inputPath),
		outputDir: outputDir,
		debounce:  watchDebounce,
	}

	if info.IsDir() {
		w.baseDir = inputPath
		err = w.addTree(inputPath)
	} else {
		err = watcher.Add(filepath.Dir(inputPath))
	}
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", inputPath, err)
	}

	return w, nil
}

// addTree watches root and every directory below it.
func (w *inputWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}

// Close stops watching.
func (w *inputWatcher) Close() error {
	return w.watcher.Close()
}

// Run converts changed inputs until ctx is done. Conversion failures are
// reported and watching continues.
func (w *inputWatcher) Run(ctx context.Context, conv CLIConverter, opts batchOptions, flags *convertFlags, env *Environment) error {
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Watching %s for changes (Ctrl+C to stop)\n", w.input)
	}

	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.baseDir != "" && event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addTree(event.Name); err != nil {
					env.Logger.Warn("cannot watch new directory", "path", event.Name, "error", err)
				}
				continue
			}
			if !w.isRelevant(event) {
				continue
			}
			env.Logger.Debug("input changed", "file", event.Name, "op", event.Op.String())
			pending[filepath.Clean(event.Name)] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			env.Logger.Error("file watcher error", "error", err)

		case <-timer.C:
			files := w.filesFor(pending)
			clear(pending)
			if len(files) == 0 {
				continue
			}
			results := convertBatch(ctx, conv, files, opts)
			printResults(results, flags, env)
		}
	}
}

// isRelevant reports whether event touches an input this watcher converts.
func (w *inputWatcher) isRelevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if w.baseDir == "" {
		return filepath.Clean(event.Name) == w.input
	}
	return isSupportedInput(event.Name)
}

// filesFor turns the pending paths that still exist into sorted conversion
// jobs.
func (w *inputWatcher) filesFor(pending map[string]bool) []FileToConvert {
	paths := make([]string, 0, len(pending))
	for path := range pending {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	files := make([]FileToConvert, 0, len(paths))
	for _, path := range paths {
		files = append(files, newFileToConvert(path, w.outputDir, w.baseDir))
	}
	return files
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
