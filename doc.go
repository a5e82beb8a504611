// Package tabtex renders row/column grids as LaTeX and Markdown markup.
//
// Four renderers share one data model, a [][]T grid whose cells are turned
// into text with [DisplayText]:
//
//   - [LatexTable] → a scaled, banded table environment
//   - [LatexMatrix] → a parenthesized array in align*, with optional rules
//   - [LatexArray] → a bare array environment for use inside math
//   - [MarkdownTable] → a pipe-delimited table with centered columns
//
// [MarkdownToArray] goes the other way, parsing a Markdown table and handing
// the cells to [LatexArray].
//
//	out, err := tabtex.LatexTable(grid, tabtex.WithTitle("Name", "Age"))
//
// # Titles
//
// [WithTitle] behaves differently per renderer. LatexTable and LatexArray
// prepend the title as an extra row. MarkdownTable uses it as the header
// instead of the grid's first row.
//
// # Rules
//
// LatexMatrix takes rule boundaries as index sets. [WithRowRules] (0, 1)
// draws a rule above the first row and after rows 0 and 1.
// [WithColRules] (1) draws a rule left of column 1; the column count itself
// means "after the last column".
//
// # Clipboard
//
// Every renderer copies its result to [DefaultClipboard] unless
// [WithCopy](false) is given. Use [WithClipboard] to inject another sink and
// [WithCopyErrorHandler] to observe failures. Nothing is copied when a call
// fails.
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format], then
// [Render], [Write], or [Marshal]:
//
//	f, err := tabtex.ParseFormat(flagValue)
//	tabtex.Write(os.Stdout, f, grid)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrEmptyInput] — the grid has no rows
//   - [ErrMalformedMarkdown] — Markdown input lacks a header and separator
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidScale] — non-positive or non-finite scale
//   - [ErrClipboard] — clipboard failure, reported only to the error handler
//
// Rows are not checked for equal length. The column count comes from the
// first row and shorter or longer rows render as they are.
package tabtex
