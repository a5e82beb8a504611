package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"full.yaml":  "format: latex-matrix\ninputFormat: tsv\ntitle: [a, b]\nscale: 0.5\ncopy: false\ngfm: true\n",
		"part.yaml":  "scale: 2\n",
		"empty.yaml": "",
	}
	env := newTestEnv("", files, nil)

	cfg, err := LoadConfig(env.Environment, "full.yaml")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Format:      "latex-matrix",
		InputFormat: "tsv",
		Title:       []string{"a", "b"},
		Scale:       0.5,
		Copy:        false,
		GFM:         true,
	}, cfg)

	cfg, err = LoadConfig(env.Environment, "part.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Scale)
	assert.True(t, cfg.Copy)
	assert.Equal(t, "latex-table", cfg.Format)

	cfg, err = LoadConfig(env.Environment, "empty.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	env := newTestEnv("", map[string]string{"bad.yaml": "scale: [1"}, nil)

	_, err := LoadConfig(env.Environment, "missing.yaml")
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = LoadConfig(env.Environment, "bad.yaml")
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestResolveConfigPrecedence(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"flag.yaml": "format: markdown\n",
		"env.yaml":  "format: latex-array\n",
	}
	env := newTestEnv("", files, map[string]string{configEnvVar: "env.yaml"})

	cfg, err := resolveConfig(env.Environment, "flag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)

	cfg, err = resolveConfig(env.Environment, "")
	require.NoError(t, err)
	assert.Equal(t, "latex-array", cfg.Format)

	cfg, err = resolveConfig(newTestEnv("", nil, nil).Environment, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()
	flags, _, err := parseFlags([]string{"-f", "markdown", "-t", "x,y", "--no-copy", "--gfm"})
	require.NoError(t, err)
	cfg := &Config{Format: "latex-table", Scale: 3, Copy: true}
	mergeFlags(flags, cfg)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, []string{"x", "y"}, cfg.Title)
	assert.Equal(t, 3.0, cfg.Scale, "unset scale flag keeps config value")
	assert.False(t, cfg.Copy)
	assert.True(t, cfg.GFM)

	flags, _, err = parseFlags([]string{"--scale", "1"})
	require.NoError(t, err)
	mergeFlags(flags, cfg)
	assert.Equal(t, 1.0, cfg.Scale)
}
