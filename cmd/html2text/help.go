package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2text <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert HTML or Markdown files to plain text")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'html2text help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2text convert <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML (.html, .htm) or Markdown (.md, .markdown) files to plain text.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           Use - to read HTML from stdin and write text to stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --stdout              Print text instead of writing files")
	fmt.Fprintln(w, "      --watch               Convert again when inputs change (Ctrl+C stops)")
	fmt.Fprintln(w, "      --env-file <path>     Read HTML2TEXT_* variables from a .env file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text:")
	fmt.Fprintln(w, "  -l, --links <mode>        Links: none, inline, nextline, table, bbcode")
	fmt.Fprintln(w, "      --width <n>           Wrap width in columns (0 = no wrapping)")
	fmt.Fprintln(w, "      --base-url <url>      Base URL for relative links")
	fmt.Fprintln(w, "      --links-header <s>    Text before the link table")
	fmt.Fprintln(w, "      --image-prefix <s>    Label before image alt text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2TEXT_CONFIG, HTML2TEXT_LINKS, HTML2TEXT_WIDTH, HTML2TEXT_BASE_URL,")
	fmt.Fprintln(w, "  HTML2TEXT_INPUT_DIR, HTML2TEXT_OUTPUT_DIR, HTML2TEXT_WORKERS")
	fmt.Fprintln(w, "  Variables already set in the environment win over --env-file values.")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2text config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, as YAML.")
	fmt.Fprintln(w, "Applies the config file, then HTML2TEXT_* variables.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --env-file <path>     Read HTML2TEXT_* variables from a .env file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: html2text version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: html2text help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case "completion":
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
