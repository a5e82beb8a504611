package tabtex

import (
	"fmt"
	"strings"
)

const latexTableHead = `\begin{table}[h]
\centering
\scalebox{%.3f}{
\rowcolors{2}{gray!25}{white}
\begin{tabular}{|%s|}
\rowcolor{gray!50}
\hline
`

const latexTableTail = "\n\\end{tabular}}\n\\end{table}"

// LatexTable renders grid as a centered, scaled LaTeX table environment.
// The header row is shaded gray!50 and the remaining rows alternate between
// gray!25 and white. Every row, the header included, is followed by \hline.
//
// With [WithTitle] the title becomes an additional first row. The column
// count is taken from the first row after the title is prepended.
func LatexTable[T any](grid [][]T, opts ...Option) (string, error) {
	o := newOptions(opts)
	rows, err := Normalize(titled(o, grid))
	if err != nil {
		return "", fmt.Errorf("%w: format %q", err, LatexTableFormat)
	}
	if !validScale(o.scale) {
		return "", fmt.Errorf("%w: %v", ErrInvalidScale, o.scale)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, latexTableHead, o.scale, strings.Repeat("c", len(rows[0])))
	writeLatexRows(&sb, rows)
	sb.WriteString(latexTableTail)
	return finish(o, sb.String()), nil
}

// writeLatexRows writes each row &-joined and terminated by \\\hline, one
// row per line.
func writeLatexRows(sb *strings.Builder, rows [][]string) {
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(row, "&"))
		sb.WriteString(`\\\hline`)
	}
}
