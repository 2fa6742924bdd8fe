package main

import (
	"context"
	"errors"
	"os"

	html2text "github.com/alnah/go-html2text"
	"github.com/alnah/go-html2text/internal/config"
	"github.com/alnah/go-html2text/internal/hints"
)

// Exit codes for the html2text CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) ||
		errors.Is(err, ErrStdinTerminal) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, html2text.ErrInvalidLinkMode) ||
		errors.Is(err, html2text.ErrInvalidWidth) ||
		errors.Is(err, html2text.ErrInvalidCaseMode) ||
		errors.Is(err, html2text.ErrInvalidElement) ||
		errors.Is(err, html2text.ErrInvalidReplace) ||
		errors.Is(err, html2text.ErrAmbiguousInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrEnvFile) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns a hint for errors whose fix is not obvious from the
// message. Errors that carry their own hint return "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, ErrNoInput):
		return hints.ForUnsupportedInput(supportedExtensions())
	case errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	}
	return ""
}
