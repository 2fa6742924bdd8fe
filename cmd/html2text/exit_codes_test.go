package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	html2text "github.com/alnah/go-html2text"
	"github.com/alnah/go-html2text/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"not exist", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", fmt.Errorf("%w: disk full", ErrWriteOutput), ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no files", ErrNoFiles, ExitIO},
		{"stdin terminal", ErrStdinTerminal, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"link mode", html2text.ErrInvalidLinkMode, ExitUsage},
		{"width", html2text.ErrInvalidWidth, ExitUsage},
		{"replace", fmt.Errorf("element h1: %w", html2text.ErrInvalidReplace), ExitUsage},
		{"extension", ErrInvalidExtension, ExitUsage},
		{"workers", ErrInvalidWorkerCount, ExitUsage},
		{"shell", ErrUnsupportedShell, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"other", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	if got := hintFor(context.Canceled); got != "" {
		t.Errorf("hintFor(Canceled) = %q, want empty", got)
	}
	if got := hintFor(errors.New("boom")); got != "" {
		t.Errorf("hintFor(other) = %q, want empty", got)
	}
	if got := hintFor(ErrNoInput); !strings.Contains(got, ".html") {
		t.Errorf("hintFor(ErrNoInput) = %q, want supported extensions", got)
	}
	if got := hintFor(fmt.Errorf("write: %w", os.ErrPermission)); got == "" {
		t.Error("hintFor(ErrPermission) should return a hint")
	}
}
