package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestReportSDKSupport(t *testing.T) {
	tests := []struct {
		version     string
		unsupported int
		warn        string
	}{
		{"8.0.404", 0, ""},
		{"5.0.100", 1, "--vulnerable needs SDK 5.0.200 or later"},
		{"3.1.100", 2, "--deprecated needs SDK 3.1.200 or later"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			var buf bytes.Buffer
			got := reportSDKSupport(&buf, tt.version)
			if got != tt.unsupported {
				t.Errorf("reportSDKSupport(%s) = %d, want %d\n%s", tt.version, got, tt.unsupported, buf.String())
			}
			if tt.warn != "" && !strings.Contains(buf.String(), tt.warn) {
				t.Errorf("output missing %q:\n%s", tt.warn, buf.String())
			}
		})
	}
}

func TestRunProfilesCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		if got := runProfilesCheck(&buf, filepath.Join(dir, "none.yaml")); got != 0 {
			t.Errorf("problems = %d, want 0", got)
		}
	})

	t.Run("conflicting profile", func(t *testing.T) {
		path := filepath.Join(dir, "profiles.yaml")
		writeFile(t, path, `profiles:
  - name: good
    flags: [outdated, include-prerelease]
  - name: bad
    flags: [outdated, vulnerable]
`)
		var buf bytes.Buffer
		if got := runProfilesCheck(&buf, path); got != 1 {
			t.Errorf("problems = %d, want 1\n%s", got, buf.String())
		}
		if !strings.Contains(buf.String(), "[FAIL] bad") {
			t.Errorf("output missing failing profile:\n%s", buf.String())
		}
	})
}

func TestRunConfigCheck_ShowsDefaults(t *testing.T) {
	setupHome(t)
	var buf bytes.Buffer
	runConfigCheck(&buf)

	out := buf.String()
	for _, want := range []string{"not created yet", "command = dotnet", "log_level = info"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
