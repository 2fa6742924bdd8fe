package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	html2text "github.com/alnah/go-html2text"
	"github.com/alnah/go-html2text/internal/fileutil"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input html2text.Input) (*html2text.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*html2text.Converter)(nil)

// batchOptions groups settings shared across a batch.
type batchOptions struct {
	workers int
	stdout  bool             // Keep text in results instead of writing files
	now     func() time.Time // Clock for durations; time.Now when nil
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Text       string // Set in stdout mode only
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The converter is immutable, so
// every worker shares it. Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, opts batchOptions) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(opts.workers, 1)
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, opts batchOptions) ConversionResult {
	now := opts.now
	if now == nil {
		now = time.Now
	}
	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = now().Sub(start)
		return result
	}

	input := html2text.Input{HTML: string(content)}
	if f.Markdown {
		input = html2text.Input{Markdown: string(content)}
	}

	convResult, err := conv.Convert(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = now().Sub(start)
		return result
	}

	if opts.stdout {
		result.OutputPath = ""
		result.Text = convResult.Text
		result.Duration = now().Sub(start)
		return result
	}

	// #nosec G306 -- text files are meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.Text+"\n", filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = now().Sub(start)
		return result
	}

	result.Duration = now().Sub(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
// In stdout mode the converted texts are printed in input order, separated
// by a blank line, and progress lines are suppressed.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) int {
	summary := countResults(results)
	quiet := flags.common.quiet || flags.stdout

	printed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if flags.stdout {
			if printed > 0 {
				fmt.Fprintln(env.Stdout)
			}
			fmt.Fprintln(env.Stdout, r.Text)
			printed++
			continue
		}

		if quiet {
			continue
		}

		if flags.common.verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
