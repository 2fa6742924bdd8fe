package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	html2text "github.com/alnah/go-html2text"
)

// newTestEnv returns an environment reading stdin from the given string and
// capturing stdout and stderr.
func newTestEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:             func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdin:           strings.NewReader(stdin),
		Stdout:          &stdout,
		Stderr:          &stderr,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		StdinIsTerminal: func() bool { return false },
	}
	return env, &stdout, &stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// mockConverter records calls and returns a fixed result or error.
type mockConverter struct {
	calls atomic.Int32
	text  string
	err   error
}

func (m *mockConverter) Convert(_ context.Context, input html2text.Input) (*html2text.ConvertResult, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	if m.text != "" {
		return &html2text.ConvertResult{Text: m.text}, nil
	}
	return &html2text.ConvertResult{Text: "converted:" + input.HTML + input.Markdown}, nil
}
