package main

import (
	"fmt"
	"os"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, "tabtex:", err)
		os.Exit(exitCodeFor(err))
	}
}
