package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// formatMD2Array selects the Markdown-to-array conversion. It is not a
// tabtex.Format because its input is Markdown text rather than a grid.
const formatMD2Array = "md2array"

// cliFlags holds all command-line flags.
type cliFlags struct {
	config      string
	format      string
	inputFormat string
	title       []string
	scale       float64
	hrows       []int
	hcols       []int
	noCopy      bool
	gfm         bool
	verbose     bool
	version     bool
	help        bool

	fs *flag.FlagSet
}

// changed reports whether the named flag was set on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// parseFlags parses args (without the program name) and returns the flags
// and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("tabtex", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.StringVarP(&f.format, "format", "f", "", "output format")
	fs.StringVarP(&f.inputFormat, "input-format", "i", "", "input format: csv, tsv, json, yaml")
	fs.StringSliceVarP(&f.title, "title", "t", nil, "comma-separated title cells")
	fs.Float64VarP(&f.scale, "scale", "s", 1, "latex-table scale factor")
	fs.IntSliceVar(&f.hrows, "hrows", nil, "latex-matrix row rule indices")
	fs.IntSliceVar(&f.hcols, "hcols", nil, "latex-matrix column rule indices")
	fs.BoolVar(&f.noCopy, "no-copy", false, "do not copy the result to the clipboard")
	fs.BoolVar(&f.gfm, "gfm", false, "parse md2array input as GitHub-flavored Markdown")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.fs = fs
	return f, fs.Args(), nil
}
