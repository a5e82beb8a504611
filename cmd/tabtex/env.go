package main

import (
	"io"
	"os"

	"github.com/bjaus/tabtex"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard tabtex.Clipboard
	Getenv    func(string) string
	ReadFile  func(string) ([]byte, error)
}

// DefaultEnv returns the production environment backed by the process
// streams and the system clipboard.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: tabtex.SystemClipboard{},
		Getenv:    os.Getenv,
		ReadFile:  os.ReadFile,
	}
}
