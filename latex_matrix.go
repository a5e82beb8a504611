package tabtex

import (
	"fmt"
	"strings"
)

// LatexMatrix renders grid as a parenthesized array inside an align*
// block.
//
// [WithColRules] places a vertical rule to the left of each listed column;
// index n, the column count, places one after the last column.
// [WithRowRules] places \hline after each listed row, and index 0 also puts
// one above the first row. The last row carries no trailing \\ unless a rule
// follows it.
func LatexMatrix[T any](grid [][]T, opts ...Option) (string, error) {
	o := newOptions(opts)
	rows, err := Normalize(grid)
	if err != nil {
		return "", fmt.Errorf("%w: format %q", err, LatexMatrixFormat)
	}

	var sb strings.Builder
	sb.WriteString("\\begin{align*}\n\\left(\\begin{array}{")
	sb.WriteString(matrixColumnSpec(len(rows[0]), o.colRules))
	sb.WriteString("}\n")
	if o.rowRules.Has(0) {
		sb.WriteString("\\hline\n")
	}
	last := len(rows) - 1
	for i, row := range rows {
		sb.WriteString(strings.Join(row, "&"))
		switch {
		case o.rowRules.Has(i):
			sb.WriteString(`\\\hline`)
		case i < last:
			sb.WriteString(`\\`)
		}
		if i < last {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("\n\\end{array}\\right)\n\\end{align*}")
	return finish(o, sb.String()), nil
}

func matrixColumnSpec(n int, cols RuleSet) string {
	var sb strings.Builder
	for i := range n {
		if cols.Has(i) {
			sb.WriteByte('|')
		}
		sb.WriteByte('c')
	}
	if cols.Has(n) {
		sb.WriteByte('|')
	}
	return sb.String()
}
