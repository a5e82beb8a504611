package tabtex

import (
	"fmt"
	"strings"
)

// LatexArray renders grid as a bare array environment for use inside a
// larger math expression. The first column is ruled off from the rest and
// every row is followed by \hline. A [WithTitle] row is prepended as in
// [LatexTable].
func LatexArray[T any](grid [][]T, opts ...Option) (string, error) {
	o := newOptions(opts)
	rows, err := Normalize(titled(o, grid))
	if err != nil {
		return "", fmt.Errorf("%w: format %q", err, LatexArrayFormat)
	}
	return finish(o, latexArray(rows)), nil
}

func latexArray(rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(`\begin{array}{`)
	sb.WriteString(arrayColumnSpec(len(rows[0])))
	sb.WriteString("}\n\\hline\n")
	writeLatexRows(&sb, rows)
	sb.WriteString("\n\\end{array}")
	return sb.String()
}

// arrayColumnSpec returns |c|cc...c| for n columns. A single column is
// ruled on both edges only: |c|.
func arrayColumnSpec(n int) string {
	switch n {
	case 0:
		return "||"
	case 1:
		return "|c|"
	}
	return "|c|" + strings.Repeat("c", n-1) + "|"
}
