package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-html2text/internal/fileutil"
	"github.com/alnah/go-html2text/internal/pipeline"
	"github.com/alnah/go-html2text/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxURLLength     = 2048 // Browser limit
	MaxTextLength    = 500  // Links header, image prefix
	MaxAffixLength   = 100  // Element prepend/append
	MaxPatternLength = 1000 // Replace pattern or replacement
	MaxWidth         = 1000 // Columns
	MaxElements      = 100  // Configured elements
)

// appDir is the directory searched under the user config directory.
const appDir = "go-html2text"

var elementName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Config holds all configuration for text conversion.
type Config struct {
	Input       InputConfig              `yaml:"input"`
	Output      OutputConfig             `yaml:"output"`
	Links       string                   `yaml:"links"`       // none, inline, nextline, table, bbcode (default: inline)
	Width       int                      `yaml:"width"`       // 0 = no wrapping
	BaseURL     string                   `yaml:"baseUrl"`     // Prefix for relative links
	LinksHeader string                   `yaml:"linksHeader"` // Empty = "\n\nLinks:\n------\n"
	ImagePrefix string                   `yaml:"imagePrefix"` // Empty = "Image: "
	Elements    map[string]ElementConfig `yaml:"elements,omitempty"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ElementConfig overrides the formatting of one element.
// Keys left empty keep the built-in value unless Reset is set.
type ElementConfig struct {
	Reset   bool           `yaml:"reset,omitempty"` // Discard the built-in formatting first
	Case    string         `yaml:"case"`            // upper, lower, ucfirst, title, none
	Prepend string         `yaml:"prepend"`
	Append  string         `yaml:"append"`
	Replace *ReplaceConfig `yaml:"replace,omitempty"`
}

// ReplaceConfig is a single pattern substitution applied to element text.
type ReplaceConfig struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Delimiter   string `yaml:"delimiter,omitempty"` // Default "@"
}

// Validate checks enum values, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Links) {
	case "", "none", "inline", "nextline", "table", "bbcode":
	default:
		return fmt.Errorf("%w: links: %q (must be none, inline, nextline, table, or bbcode)", ErrInvalidValue, c.Links)
	}

	if c.Width < 0 || c.Width > MaxWidth {
		return fmt.Errorf("%w: width: must be between 0 and %d, got %d", ErrInvalidValue, MaxWidth, c.Width)
	}

	if err := validateFieldLength("baseUrl", c.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("linksHeader", c.LinksHeader, MaxTextLength); err != nil {
		return err
	}
	if err := validateFieldLength("imagePrefix", c.ImagePrefix, MaxTextLength); err != nil {
		return err
	}

	if len(c.Elements) > MaxElements {
		return fmt.Errorf("%w: elements: at most %d entries, got %d", ErrInvalidValue, MaxElements, len(c.Elements))
	}
	for _, name := range c.ElementNames() {
		if err := c.Elements[name].validate(name); err != nil {
			return err
		}
	}

	return nil
}

func (e ElementConfig) validate(name string) error {
	if !elementName.MatchString(name) {
		return fmt.Errorf("%w: elements: invalid element name %q", ErrInvalidValue, name)
	}

	field := "elements." + name
	switch strings.ToLower(e.Case) {
	case "", "upper", "lower", "ucfirst", "title", "none":
	default:
		return fmt.Errorf("%w: %s.case: %q (must be upper, lower, ucfirst, title, or none)", ErrInvalidValue, field, e.Case)
	}
	if err := validateFieldLength(field+".prepend", e.Prepend, MaxAffixLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".append", e.Append, MaxAffixLength); err != nil {
		return err
	}

	if e.Replace == nil {
		return nil
	}
	if err := validateFieldLength(field+".replace.pattern", e.Replace.Pattern, MaxPatternLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".replace.replacement", e.Replace.Replacement, MaxPatternLength); err != nil {
		return err
	}
	if _, err := pipeline.CompileReplace(e.Replace.Pattern, e.Replace.Replacement, e.Replace.Delimiter); err != nil {
		return fmt.Errorf("%w: %s.replace: %v", ErrInvalidValue, field, err)
	}
	return nil
}

// ElementNames returns the configured element names in sorted order.
func (c *Config) ElementNames() []string {
	names := make([]string, 0, len(c.Elements))
	for name := range c.Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: inline links, no wrapping
// and the built-in element formatting.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: ""},
		Links:  "inline",
		Width:  0,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-html2text/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
