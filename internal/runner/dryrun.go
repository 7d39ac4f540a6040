package runner

import (
	"context"
	"fmt"
	"io"
	"os"
)

// DryRunner prints the command line instead of running it.
type DryRunner struct {
	Command []string
	Out     io.Writer
}

// Run writes the full command line to Out and reports success.
func (r *DryRunner) Run(_ context.Context, args []string) (*Output, error) {
	line, err := FormatCommandLine(append(append([]string(nil), r.Command...), args...))
	if err != nil {
		return nil, err
	}

	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return nil, fmt.Errorf("writing command line: %w", err)
	}
	return &Output{Stdout: line + "\n"}, nil
}
