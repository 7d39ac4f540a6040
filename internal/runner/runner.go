package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Runner runs the external command with the assembled arguments.
type Runner interface {
	Run(ctx context.Context, args []string) (*Output, error)
}

// Output captures the result of a run.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ExitError carries a non-zero exit code from the external command up to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("external command exited with code %d", e.Code)
}

// Dispatch returns the Runner for the given mode. command is the external
// program followed by any fixed leading arguments.
func Dispatch(dryRun bool, command []string, stdout, stderr io.Writer) Runner {
	if len(command) == 0 {
		return &emptyRunner{}
	}
	if dryRun {
		return &DryRunner{Command: command, Out: stdout}
	}
	return &ExecRunner{Command: command, Stdout: stdout, Stderr: stderr}
}

// emptyRunner is returned when no external command is configured.
type emptyRunner struct{}

func (emptyRunner) Run(context.Context, []string) (*Output, error) {
	return nil, errors.New("no external command configured")
}

// FormatCommandLine renders words as a shell-safe command line.
func FormatCommandLine(words []string) (string, error) {
	quoted := make([]string, len(words))
	for i, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			return "", fmt.Errorf("quoting %q: %w", w, err)
		}
		quoted[i] = q
	}
	return strings.Join(quoted, " "), nil
}
