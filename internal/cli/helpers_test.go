package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkglist-dev/pkglist/internal/config"
	"github.com/spf13/viper"
)

// setupHome points the config directory at a temp dir and loads defaults.
func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PKGLIST_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.Load()
	return dir
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

func chmodExec(path string) error {
	return os.Chmod(path, 0755)
}
