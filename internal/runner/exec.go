package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkglist-dev/pkglist/internal/logging"
)

// ExecRunner runs Command followed by the assembled arguments.
type ExecRunner struct {
	Command []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command, streaming its output to the configured writers
// while also capturing it. A non-zero exit is reported in Output.ExitCode,
// not as an error.
func (r *ExecRunner) Run(ctx context.Context, args []string) (*Output, error) {
	bin, err := exec.LookPath(r.Command[0])
	if err != nil {
		return nil, fmt.Errorf("external command %q not found: %w", r.Command[0], err)
	}

	argv := append(append([]string(nil), r.Command[1:]...), args...)
	logging.Default().Debug("running external command", "bin", bin, "args", argv)

	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Dir = r.Dir
	cmd.Stdin = os.Stdin

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", r.Command[0], err)
	}

	return output, nil
}
