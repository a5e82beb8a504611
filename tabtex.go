package tabtex

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyInput        = errors.New("empty input")
	ErrMalformedMarkdown = errors.New("malformed markdown table")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidScale      = errors.New("invalid scale")
	ErrClipboard         = errors.New("clipboard write failed")

	errNoClipboard = errors.New("no clipboard utility available")
)

// Format represents an output markup format.
type Format string

const (
	LatexTableFormat  Format = "latex-table"
	LatexMatrixFormat Format = "latex-matrix"
	LatexArrayFormat  Format = "latex-array"
	MarkdownFormat    Format = "markdown"
)

var formats = []Format{LatexTableFormat, LatexMatrixFormat, LatexArrayFormat, MarkdownFormat}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// --- Options ---

// Option configures a single render call.
type Option func(*options)

type options struct {
	title    []any
	hasTitle bool
	scale    float64
	rowRules RuleSet
	colRules RuleSet
	copy     bool
	sink     Clipboard
	onCopy   func(error)
	gfm      bool
}

func newOptions(opts []Option) *options {
	o := &options{
		scale: 1,
		copy:  true,
		sink:  DefaultClipboard,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithTitle sets the title row. LatexTable and LatexArray prepend it as an
// extra first row; MarkdownTable uses it as the header in place of the
// grid's first row. The title is not checked against the column count.
func WithTitle(cells ...any) Option {
	return func(o *options) {
		o.title = cells
		o.hasTitle = true
	}
}

// WithTitleRow is [WithTitle] for a title held in a typed slice.
func WithTitleRow[T any](row []T) Option {
	cells := make([]any, len(row))
	for i, c := range row {
		cells[i] = c
	}
	return WithTitle(cells...)
}

// WithScale sets the scalebox factor for LatexTable. Default: 1.
func WithScale(scale float64) Option {
	return func(o *options) { o.scale = scale }
}

// WithRowRules draws a horizontal rule after each listed row of a
// LatexMatrix. Index 0 additionally draws a rule above the first row.
func WithRowRules(idx ...int) Option {
	return func(o *options) { o.rowRules = NewRuleSet(idx...) }
}

// WithColRules draws a vertical rule to the left of each listed column of a
// LatexMatrix. Index n (the column count) draws a rule after the last column.
func WithColRules(idx ...int) Option {
	return func(o *options) { o.colRules = NewRuleSet(idx...) }
}

// WithCopy controls whether the result is written to the clipboard.
// Default: true.
func WithCopy(enabled bool) Option {
	return func(o *options) { o.copy = enabled }
}

// WithClipboard replaces [DefaultClipboard] for this call.
func WithClipboard(c Clipboard) Option {
	return func(o *options) { o.sink = c }
}

// WithCopyErrorHandler receives clipboard failures wrapped in [ErrClipboard].
// The rendered string is returned regardless. Default: failures are dropped.
func WithCopyErrorHandler(fn func(error)) Option {
	return func(o *options) { o.onCopy = fn }
}

// WithGFM makes MarkdownToArray parse its input with [ParseGFMTable] instead
// of [ParseMarkdownTable].
func WithGFM() Option {
	return func(o *options) { o.gfm = true }
}

// titled returns grid with the title prepended as row 0 when one is set.
func titled[T any](o *options, grid [][]T) [][]any {
	rows := make([][]any, 0, len(grid)+1)
	if o.hasTitle {
		rows = append(rows, o.title)
	}
	for _, row := range grid {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		rows = append(rows, cells)
	}
	return rows
}

func validScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// --- Dispatch ---

// Render formats grid in format f.
func Render[T any](f Format, grid [][]T, opts ...Option) (string, error) {
	switch f {
	case LatexTableFormat:
		return LatexTable(grid, opts...)
	case LatexMatrixFormat:
		return LatexMatrix(grid, opts...)
	case LatexArrayFormat:
		return LatexArray(grid, opts...)
	case MarkdownFormat:
		return MarkdownTable(grid, opts...)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write formats grid and writes the markup to w.
func Write[T any](w io.Writer, f Format, grid [][]T, opts ...Option) error {
	out, err := Render(f, grid, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Marshal formats grid and returns the bytes.
func Marshal[T any](f Format, grid [][]T, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, grid, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// finish hands the rendered markup to the clipboard when copying is enabled.
func finish(o *options, out string) string {
	if !o.copy || o.sink == nil {
		return out
	}
	if err := o.sink.WriteText(out); err != nil && o.onCopy != nil {
		o.onCopy(fmt.Errorf("%w: %w", ErrClipboard, err))
	}
	return out
}
