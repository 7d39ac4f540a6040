package main

import (
	"errors"
	"os"

	"github.com/pkglist-dev/pkglist/internal/cli"
	"github.com/pkglist-dev/pkglist/internal/runner"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
