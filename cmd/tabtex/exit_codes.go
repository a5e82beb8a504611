package main

import (
	"errors"
	"os"

	"github.com/bjaus/tabtex"
)

// Exit codes for the tabtex CLI.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input content
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrUnknownInputFormat) ||
		errors.Is(err, ErrParseInput) ||
		errors.Is(err, tabtex.ErrEmptyInput) ||
		errors.Is(err, tabtex.ErrMalformedMarkdown) ||
		errors.Is(err, tabtex.ErrUnsupportedFormat) ||
		errors.Is(err, tabtex.ErrInvalidScale) {
		return ExitUsage
	}

	return ExitGeneral
}
