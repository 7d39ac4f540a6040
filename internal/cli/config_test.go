package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestListSettings(t *testing.T) {
	setupHome(t)
	t.Setenv("PKGLIST_COMMAND", "/opt/dotnet/dotnet")

	var buf bytes.Buffer
	listSettings(&buf)

	got := buf.String()
	want := "command = /opt/dotnet/dotnet\nlog_level = info\n"
	if !strings.HasPrefix(got, want) {
		t.Errorf("output = %q, want prefix %q", got, want)
	}
}
