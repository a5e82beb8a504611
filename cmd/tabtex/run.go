package main

import (
	"fmt"
	"io"

	"github.com/bjaus/tabtex"
)

// run parses args, converts the input, and prints the markup to
// env.Stdout.
func run(args []string, env *Environment) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}
	if flags.help {
		printUsage(env.Stdout)
		return nil
	}
	if flags.version {
		fmt.Fprintln(env.Stdout, "tabtex", Version)
		return nil
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one input file, got %d", ErrUsage, len(positional))
	}

	cfg, err := resolveConfig(env, flags.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	path := ""
	if len(positional) == 1 && positional[0] != "-" {
		path = positional[0]
	}
	data, err := readInput(env, path)
	if err != nil {
		return err
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Read %d bytes from %s\n", len(data), displayName(path))
	}

	copyFailed := false
	opts := []tabtex.Option{
		tabtex.WithCopy(cfg.Copy),
		tabtex.WithClipboard(env.Clipboard),
		tabtex.WithCopyErrorHandler(func(err error) {
			copyFailed = true
			fmt.Fprintf(env.Stderr, "warning: %v\n", err)
		}),
	}

	var out string
	if cfg.Format == formatMD2Array {
		if cfg.GFM {
			opts = append(opts, tabtex.WithGFM())
		}
		out, err = tabtex.MarkdownToArray(string(data), opts...)
	} else {
		out, err = renderGrid(env, flags, cfg, path, data, opts)
	}
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(env.Stdout, out); err != nil {
		return err
	}
	if flags.verbose && cfg.Copy && !copyFailed {
		fmt.Fprintln(env.Stderr, "Copied to clipboard")
	}
	return nil
}

func renderGrid(env *Environment, flags *cliFlags, cfg *Config, path string, data []byte, opts []tabtex.Option) (string, error) {
	format, err := tabtex.ParseFormat(cfg.Format)
	if err != nil {
		return "", fmt.Errorf("%w; valid formats: %v and %s", err, tabtex.Formats(), formatMD2Array)
	}
	inputFormat, err := resolveInputFormat(flags.inputFormat, path, cfg)
	if err != nil {
		return "", err
	}
	grid, err := readGrid(data, inputFormat)
	if err != nil {
		return "", err
	}
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d %s row(s) as %s\n", len(grid), inputFormat, format)
	}

	if len(cfg.Title) > 0 {
		opts = append(opts, tabtex.WithTitleRow(cfg.Title))
	}
	opts = append(opts,
		tabtex.WithScale(cfg.Scale),
		tabtex.WithRowRules(flags.hrows...),
		tabtex.WithColRules(flags.hcols...),
	)
	return tabtex.Render(format, grid, opts...)
}

func readInput(env *Environment, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", ErrReadInput, err)
		}
		return data, nil
	}
	data, err := env.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

func displayName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
