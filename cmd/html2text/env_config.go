package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-html2text/internal/config"
)

// ErrEnvFile indicates the --env-file could not be read or parsed.
var ErrEnvFile = errors.New("invalid env file")

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // HTML2TEXT_CONFIG: config file name or path
	Links      string // HTML2TEXT_LINKS: link mode
	Width      int    // HTML2TEXT_WIDTH: wrap width (-1 = unset)
	BaseURL    string // HTML2TEXT_BASE_URL: base URL for relative links
	InputDir   string // HTML2TEXT_INPUT_DIR: default input directory
	OutputDir  string // HTML2TEXT_OUTPUT_DIR: default output directory
	Workers    int    // HTML2TEXT_WORKERS: parallel workers
}

// knownEnvVars lists valid HTML2TEXT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2TEXT_CONFIG":     true,
	"HTML2TEXT_LINKS":      true,
	"HTML2TEXT_WIDTH":      true,
	"HTML2TEXT_BASE_URL":   true,
	"HTML2TEXT_INPUT_DIR":  true,
	"HTML2TEXT_OUTPUT_DIR": true,
	"HTML2TEXT_WORKERS":    true,
}

// readEnvFile parses a dotenv file without touching the process
// environment. An empty path reads nothing.
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEnvFile, path, err)
	}
	return vars, nil
}

// loadEnvConfig reads configuration from environment variables. Values in
// dotenv fill variables the process environment leaves unset.
// Malformed numbers are ignored rather than reported.
func loadEnvConfig(dotenv map[string]string) *envConfig {
	getenv := func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return dotenv[name]
	}

	cfg := &envConfig{
		ConfigPath: getenv("HTML2TEXT_CONFIG"),
		Links:      getenv("HTML2TEXT_LINKS"),
		Width:      widthUnset,
		BaseURL:    getenv("HTML2TEXT_BASE_URL"),
		InputDir:   getenv("HTML2TEXT_INPUT_DIR"),
		OutputDir:  getenv("HTML2TEXT_OUTPUT_DIR"),
	}

	if width := getenv("HTML2TEXT_WIDTH"); width != "" {
		if w, err := strconv.Atoi(width); err == nil && w >= 0 {
			cfg.Width = w
		}
	}

	if workers := getenv("HTML2TEXT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized HTML2TEXT_* variables
// in the environment or the dotenv file.
// Helps catch typos like HTML2TEXT_WIDHT.
func warnUnknownEnvVars(w io.Writer, dotenv map[string]string) {
	names := make([]string, 0, len(dotenv))
	for name := range dotenv {
		names = append(names, name)
	}
	for _, env := range os.Environ() {
		names = append(names, strings.SplitN(env, "=", 2)[0])
	}
	sort.Strings(names)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] || !strings.HasPrefix(name, "HTML2TEXT_") || knownEnvVars[name] {
			continue
		}
		seen[name] = true
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies environment variable values to config.
// Environment values override the config file; CLI flags are applied later
// via mergeFlags. Priority: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Links != "" {
		cfg.Links = env.Links
	}
	if env.Width != widthUnset {
		cfg.Width = env.Width
	}
	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
