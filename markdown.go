package tabtex

import (
	"fmt"
	"strings"
)

const markdownCenter = ":-:"

// MarkdownTable renders grid as a pipe-delimited Markdown table with every
// column centered.
//
// Without [WithTitle] the first row is the header and the rest is the body.
// With a title, the title is the header and the whole grid is the body. The
// separator row always has one marker per cell of the grid's first row.
func MarkdownTable[T any](grid [][]T, opts ...Option) (string, error) {
	o := newOptions(opts)
	rows, err := Normalize(grid)
	if err != nil {
		return "", fmt.Errorf("%w: format %q", err, MarkdownFormat)
	}

	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = markdownCenter
	}

	header, body := rows[0], rows[1:]
	if o.hasTitle {
		header, body = titleText(o.title), rows
	}

	lines := make([]string, 0, len(body)+2)
	lines = append(lines, strings.Join(header, "|"), strings.Join(sep, "|"))
	for _, row := range body {
		lines = append(lines, strings.Join(row, "|"))
	}
	return finish(o, strings.Join(lines, "\n")), nil
}

func titleText(title []any) []string {
	out := make([]string, len(title))
	for i, c := range title {
		out[i] = DisplayText(c)
	}
	return out
}
