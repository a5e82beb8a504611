package tabtex

import (
	"fmt"
	"io"
	"iter"
)

// WriteIter collects rows from an iterator and writes the rendered markup to
// w. Every format needs the whole grid for its layout, so nothing is written
// until the sequence ends. An empty sequence fails with [ErrEmptyInput].
func WriteIter[T any](w io.Writer, f Format, seq iter.Seq[[]T], opts ...Option) error {
	grid := collectRows(seq)
	if len(grid) == 0 {
		return fmt.Errorf("%w: format %q", ErrEmptyInput, f)
	}
	return Write(w, f, grid, opts...)
}

// WriteChan formats rows from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, f Format, ch <-chan []T, opts ...Option) error {
	return WriteIter(w, f, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collectRows[T any](seq iter.Seq[[]T]) [][]T {
	var grid [][]T
	for row := range seq {
		grid = append(grid, row)
	}
	return grid
}
