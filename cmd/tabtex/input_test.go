package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputFormat(t *testing.T) {
	t.Parallel()
	cfg := &Config{InputFormat: "json"}
	tests := []struct {
		name string
		flag string
		path string
		want string
	}{
		{name: "flag wins", flag: "tsv", path: "x.csv", want: "tsv"},
		{name: "extension", path: "data.YAML", want: "yaml"},
		{name: "yml alias", flag: "yml", want: "yaml"},
		{name: "tab extension", path: "t.tab", want: "tsv"},
		{name: "config fallback", path: "data.txt", want: "json"},
		{name: "stdin uses config", want: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveInputFormat(tt.flag, tt.path, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := resolveInputFormat("xml", "", cfg)
	assert.ErrorIs(t, err, ErrUnknownInputFormat)
}

func TestReadGrid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		format string
		data   string
		want   [][]any
	}{
		{name: "csv", format: "csv", data: "a,b\n\"c,d\",e\n", want: [][]any{{"a", "b"}, {"c,d", "e"}}},
		{name: "csv ragged", format: "csv", data: "a,b\nc\n", want: [][]any{{"a", "b"}, {"c"}}},
		{name: "tsv", format: "tsv", data: "a\tb\n1\tx\"2\n", want: [][]any{{"a", "b"}, {"1", "x\"2"}}},
		{name: "json", format: "json", data: `[["a", 1], [true, null]]`, want: [][]any{{"a", 1.0}, {true, nil}}},
		{name: "yaml", format: "yaml", data: "- [a, 1]\n- [2.5, x]\n", want: [][]any{{"a", 1}, {2.5, "x"}}},
		{name: "empty csv", format: "csv", data: "", want: [][]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := readGrid([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadGridErrors(t *testing.T) {
	t.Parallel()
	_, err := readGrid([]byte(`{"a":1}`), "json")
	assert.ErrorIs(t, err, ErrParseInput)

	_, err = readGrid([]byte("a: b\n"), "yaml")
	assert.ErrorIs(t, err, ErrParseInput)

	_, err = readGrid([]byte("\"unterminated\n"), "csv")
	assert.ErrorIs(t, err, ErrParseInput)

	_, err = readGrid(nil, "xml")
	assert.ErrorIs(t, err, ErrUnknownInputFormat)
}
