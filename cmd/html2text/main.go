package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		env.Logger.Debug(fmt.Sprintf(format, args...))
	}))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command named in args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch cmd {
	case "convert":
		return runConvertCmd(rest, env)
	case "config":
		return reportErr(runConfigCmd(rest, env), env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "html2text %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	case "completion":
		return reportErr(runCompletion(rest, env), env)
	}

	fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// runConvertCmd parses convert flags, sets up logging and signal handling,
// then runs the conversion.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	env.Logger = newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return reportErr(runConvert(ctx, positional, flags, env), env)
}

// reportErr prints err with its hint and maps it to an exit code.
func reportErr(err error, env *Environment) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// newLogger returns a text logger on w. Quiet keeps errors only and verbose
// enables debug records.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
