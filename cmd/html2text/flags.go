package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// widthUnset detects if --width was explicitly set.
// Since 0 is a valid width (no wrapping), we use an out-of-range sentinel.
const widthUnset = -1

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	envFile string
	quiet   bool
	verbose bool
}

// textFlags holds flags that shape the converted text.
type textFlags struct {
	links       string
	width       int
	baseURL     string
	linksHeader string
	imagePrefix string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	stdout  bool
	watch   bool
	text    textFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.envFile, "env-file", "", "read HTML2TEXT_* variables from a .env file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addTextFlags adds text formatting flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.StringVarP(&f.links, "links", "l", "", "link mode: none, inline, nextline, table, bbcode")
	fs.IntVar(&f.width, "width", widthUnset, "wrap width in columns (0 = no wrapping)")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL for relative links")
	fs.StringVar(&f.linksHeader, "links-header", "", "text before the link table")
	fs.StringVar(&f.imagePrefix, "image-prefix", "", "label before image alt text")
}

// newConvertFlagSet registers every convert flag on a new FlagSet bound to f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.stdout, "stdout", false, "print text to stdout instead of writing files")
	fs.BoolVar(&f.watch, "watch", false, "convert again when inputs change")

	addCommonFlags(fs, &f.common)
	addTextFlags(fs, &f.text)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
