package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tabtex [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a table read from file (or stdin) to LaTeX or Markdown markup.")
	fmt.Fprintln(w, "The result is printed and copied to the clipboard.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          latex-table, latex-matrix, latex-array, markdown, md2array")
	fmt.Fprintln(w, "  -t, --title <a,b,...>     Title row")
	fmt.Fprintln(w, "  -s, --scale <f>           latex-table scale factor (default 1)")
	fmt.Fprintln(w, "      --hrows <i,j,...>     latex-matrix rules after rows (0 also rules the top)")
	fmt.Fprintln(w, "      --hcols <i,j,...>     latex-matrix rules left of columns (n = after last)")
	fmt.Fprintln(w, "      --no-copy             Do not copy to the clipboard")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -i, --input-format <s>    csv, tsv, json, yaml (default from file extension)")
	fmt.Fprintln(w, "      --gfm                 Parse md2array input as GitHub-flavored Markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <path>       YAML config file (default $TABTEX_CONFIG)")
	fmt.Fprintln(w, "  -v, --verbose             Print progress to stderr")
	fmt.Fprintln(w, "      --version             Print version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
}
