package html2text

import "runtime"

// Worker sizing constants for batch conversion.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps concurrent conversions. Conversion is CPU-bound and
	// holds whole documents in memory.
	MaxPoolSize = 32
)

// ResolvePoolSize determines how many files to convert concurrently.
// Priority: explicit workers > GOMAXPROCS (adjusted by automaxprocs for containers).
// Exported for use by servers and CLIs.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
