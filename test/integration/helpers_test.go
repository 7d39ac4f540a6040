//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // PKGLIST_HOME: config.yaml and profiles.yaml
	ProjectDir string // A mock .NET project directory
	BinDir     string // Holds the fake listing command
}

// setupTestEnv creates isolated temp directories and points PKGLIST_HOME at
// them so no test touches the real user config. Env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	t.Setenv("PKGLIST_HOME", env.HomeDir)
	return env
}

// writeFakeDotnet installs a shell script that prints each argument on its
// own line and exits with code. Returns the script path.
func writeFakeDotnet(t *testing.T, binDir string, code int) string {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	path := filepath.Join(binDir, "dotnet")
	script := "#!/bin/sh\nfor a in \"$@\"; do echo \"$a\"; done\nexit " + strconv.Itoa(code) + "\n"
	writeFile(t, path, script)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
	return path
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertLines checks output split on newlines equals want.
func assertLines(t *testing.T, output string, want []string) {
	t.Helper()
	got := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
