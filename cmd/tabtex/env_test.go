package main

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"sync"
)

// fakeClipboard captures clipboard writes.
type fakeClipboard struct {
	mu     sync.Mutex
	writes []string
	err    error
}

func (c *fakeClipboard) WriteText(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.writes = append(c.writes, s)
	return nil
}

// testEnv is an Environment backed by in-memory files and buffers.
type testEnv struct {
	*Environment
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard *fakeClipboard
}

func newTestEnv(stdin string, files map[string]string, vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cb := &fakeClipboard{}
	return &testEnv{
		Environment: &Environment{
			Stdin:     strings.NewReader(stdin),
			Stdout:    stdout,
			Stderr:    stderr,
			Clipboard: cb,
			Getenv:    func(k string) string { return vars[k] },
			ReadFile: func(name string) ([]byte, error) {
				data, ok := files[name]
				if !ok {
					return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
				}
				return []byte(data), nil
			},
		},
		stdout:    stdout,
		stderr:    stderr,
		clipboard: cb,
	}
}

var errClipboardDown = errors.New("no display")
