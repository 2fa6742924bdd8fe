package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	html2text "github.com/alnah/go-html2text"
	"github.com/alnah/go-html2text/internal/config"
	"github.com/alnah/go-html2text/internal/fileutil"
	"github.com/alnah/go-html2text/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage         = errors.New("invalid usage")
	ErrNoInput       = errors.New("no input specified")
	ErrNoFiles       = errors.New("no convertible files found")
	ErrReadInput     = errors.New("failed to read input file")
	ErrWriteOutput   = errors.New("failed to write text file")
	ErrStdinTerminal = errors.New("stdin is a terminal")
)

// stdinArg is the input argument that selects stdin.
const stdinArg = "-"

// maxStdinSize caps the document read from stdin.
const maxStdinSize = 64 << 20

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	dotenv, err := readEnvFile(flags.common.envFile)
	if err != nil {
		return err
	}
	envCfg := loadEnvConfig(dotenv)
	warnUnknownEnvVars(env.Stderr, dotenv)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Priority: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	conv, err := buildConverter(cfg, env)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if inputPath == stdinArg {
		if flags.watch {
			return fmt.Errorf("%w: --watch needs a file or directory input", ErrUsage)
		}
		return convertStdin(ctx, conv, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoFiles, inputPath, hints.ForNoInputs())
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := html2text.ResolvePoolSize(workers)
	env.Logger.Debug("starting conversion", "files", len(files), "workers", poolSize)

	opts := batchOptions{
		workers: poolSize,
		stdout:  flags.stdout,
		now:     env.Now,
	}
	results := convertBatch(ctx, conv, files, opts)

	failedCount := printResults(results, flags, env)
	if flags.watch && ctx.Err() == nil {
		return watchInputs(ctx, conv, inputPath, outputDir, opts, flags, env)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion interrupted: %w", err)
	}
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// loadConfig loads the config named by the flag, falling back to the
// environment. With neither set, defaults are returned.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(configSearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configSearchPaths lists the user-level locations tried for a config name.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-html2text", name+".yaml")}
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.text.links != "" {
		cfg.Links = flags.text.links
	}
	if flags.text.width != widthUnset {
		cfg.Width = flags.text.width
	}
	if flags.text.baseURL != "" {
		cfg.BaseURL = flags.text.baseURL
	}
	if flags.text.linksHeader != "" {
		cfg.LinksHeader = flags.text.linksHeader
	}
	if flags.text.imagePrefix != "" {
		cfg.ImagePrefix = flags.text.imagePrefix
	}
}

// buildConverter translates the merged config into converter options.
// Elements marked reset replace the built-in formatting; others merge over it.
func buildConverter(cfg *config.Config, env *Environment) (*html2text.Converter, error) {
	mode := html2text.LinkInline
	if cfg.Links != "" {
		m, err := html2text.ParseLinkMode(cfg.Links)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForLinkMode())
		}
		mode = m
	}

	opts := []html2text.Option{
		html2text.WithLinkMode(mode),
		html2text.WithWidth(cfg.Width),
		html2text.WithBaseURL(cfg.BaseURL),
		html2text.WithLogger(env.Logger),
	}
	// Empty config texts mean unset, not omitted.
	if cfg.LinksHeader != "" {
		opts = append(opts, html2text.WithLinksHeader(cfg.LinksHeader))
	}
	if cfg.ImagePrefix != "" {
		opts = append(opts, html2text.WithImagePrefix(cfg.ImagePrefix))
	}

	for _, name := range cfg.ElementNames() {
		e := cfg.Elements[name]
		ec := html2text.ElementConfig{
			Case:    html2text.CaseMode(strings.ToLower(e.Case)),
			Prepend: e.Prepend,
			Append:  e.Append,
		}
		if e.Replace != nil {
			ec.Replace = &html2text.Replace{
				Pattern:     e.Replace.Pattern,
				Replacement: e.Replace.Replacement,
				Delimiter:   e.Replace.Delimiter,
			}
		}

		if e.Reset {
			opts = append(opts, html2text.WithElement(name, ec))
		} else {
			opts = append(opts, html2text.WithElements(map[string]html2text.ElementConfig{name: ec}))
		}
	}

	conv, err := html2text.NewConverter(opts...)
	if errors.Is(err, html2text.ErrInvalidReplace) {
		return nil, fmt.Errorf("%w%s", err, hints.ForReplacePattern(""))
	}
	return conv, err
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin converts HTML read from stdin and prints the text.
func convertStdin(ctx context.Context, conv CLIConverter, env *Environment) error {
	if env.StdinIsTerminal != nil && env.StdinIsTerminal() {
		return fmt.Errorf("%w%s", ErrStdinTerminal, hints.ForStdinTerminal())
	}

	data, err := readLimited(env.Stdin, maxStdinSize)
	if err != nil {
		return err
	}

	result, err := conv.Convert(ctx, html2text.Input{HTML: string(data)})
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, result.Text)
	return nil
}

// readLimited reads r to the end and fails once it yields more than limit
// bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: stdin exceeds %d bytes", ErrReadInput, limit)
	}
	return data, nil
}

// watchInputs keeps converting inputPath as it changes. Cancelling ctx is
// the normal way out and is not an error.
func watchInputs(ctx context.Context, conv CLIConverter, inputPath, outputDir string, opts batchOptions, flags *convertFlags, env *Environment) error {
	w, err := newInputWatcher(inputPath, outputDir)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	return w.Run(ctx, conv, opts, flags, env)
}
