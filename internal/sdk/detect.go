package sdk

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Detect runs "<command> --version" and returns the reported SDK version.
// command is the configured external command split into words.
func Detect(ctx context.Context, command []string) (string, error) {
	if len(command) == 0 {
		return "", fmt.Errorf("no command to probe")
	}

	bin, err := exec.LookPath(command[0])
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", command[0], err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "--version")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s --version: %w: %s", command[0], err, strings.TrimSpace(stderr.String()))
	}

	version := firstLine(stdout.String())
	if _, err := ParseVersion(version); err != nil {
		return "", fmt.Errorf("unexpected version output %q: %w", version, err)
	}
	return version, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(line)
}
