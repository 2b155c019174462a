package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/marmos91/mountinfo/cmd/mountinfo/commands"
	"github.com/marmos91/mountinfo/pkg/query"
)

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		// No match is an answer, not a failure: exit 1 without a diagnostic.
		if !errors.Is(err, query.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
