package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	html2text "github.com/alnah/go-html2text"
	"github.com/alnah/go-html2text/internal/fileutil"
	"github.com/alnah/go-html2text/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Input extensions by source format.
var (
	htmlExtensions     = []string{".html", ".htm"}
	markdownExtensions = []string{".md", ".markdown"}
)

// outputExtension is the extension of converted files.
const outputExtension = ".txt"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Markdown   bool // Render the source as Markdown first
}

// discoverFiles finds all HTML and Markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{newFileToConvert(inputPath, outputDir, "")}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !isSupportedInput(path) {
			return nil
		}
		files = append(files, newFileToConvert(path, outputDir, inputPath))
		return nil
	})

	return files, err
}

func newFileToConvert(path, outputDir, baseInputDir string) FileToConvert {
	return FileToConvert{
		InputPath:  path,
		OutputPath: resolveOutputPath(path, outputDir, baseInputDir),
		Markdown:   hasExtension(path, markdownExtensions),
	}
}

// resolveOutputPath determines the text output path for an input file.
// Directory inputs keep their layout under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outputExtension)
	}

	if strings.HasSuffix(outputDir, outputExtension) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+outputExtension)
		}
	}

	return filepath.Join(outputDir, base+outputExtension)
}

func supportedExtensions() []string {
	return append(append([]string{}, htmlExtensions...), markdownExtensions...)
}

func isSupportedInput(path string) bool {
	return hasExtension(path, supportedExtensions())
}

func hasExtension(path string, exts []string) bool {
	return fileutil.HasExtension(path, exts...)
}

// validateInputExtension checks that the file is HTML or Markdown.
func validateInputExtension(path string) error {
	if !isSupportedInput(path) {
		return fmt.Errorf("%w: got %q%s", ErrInvalidExtension, filepath.Ext(path), hints.ForUnsupportedInput(supportedExtensions()))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > html2text.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, html2text.MaxPoolSize)
	}
	return nil
}
