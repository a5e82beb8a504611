package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()
	flags, pos, err := parseFlags([]string{
		"-f", "latex-matrix", "--hrows", "0,2", "--hcols=1", "-i", "json", "-v", "in.json",
	})
	require.NoError(t, err)
	assert.Equal(t, "latex-matrix", flags.format)
	assert.Equal(t, []int{0, 2}, flags.hrows)
	assert.Equal(t, []int{1}, flags.hcols)
	assert.Equal(t, "json", flags.inputFormat)
	assert.True(t, flags.verbose)
	assert.False(t, flags.changed("scale"))
	assert.Equal(t, []string{"in.json"}, pos)
}

func TestParseFlagsErrors(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{{"--nope"}, {"--hrows", "x"}, {"-s", "big"}} {
		_, _, err := parseFlags(args)
		assert.ErrorIs(t, err, ErrUsage, "%v", args)
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ExitSuccess, exitCodeFor(nil))
	assert.Equal(t, ExitGeneral, exitCodeFor(errClipboardDown))
	assert.Equal(t, ExitIO, exitCodeFor(ErrReadInput))
	assert.Equal(t, ExitUsage, exitCodeFor(ErrConfigParse))
}
