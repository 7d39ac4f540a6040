package runner

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
)

func TestDispatch(t *testing.T) {
	if _, ok := Dispatch(false, []string{"dotnet"}, nil, nil).(*ExecRunner); !ok {
		t.Error("Dispatch(false) did not return *ExecRunner")
	}
	if _, ok := Dispatch(true, []string{"dotnet"}, nil, nil).(*DryRunner); !ok {
		t.Error("Dispatch(true) did not return *DryRunner")
	}

	rt := Dispatch(false, nil, nil, nil)
	if _, ok := rt.(*emptyRunner); !ok {
		t.Fatalf("Dispatch with no command returned %T, want *emptyRunner", rt)
	}
	if _, err := rt.Run(context.Background(), nil); err == nil {
		t.Error("expected error from empty runner, got nil")
	}
}

func TestFormatCommandLine(t *testing.T) {
	got, err := FormatCommandLine([]string{"dotnet", "package", "list", "/src/My App/app.sln", "--source", "https://x.example/v3/index.json?a=1&b=2"})
	if err != nil {
		t.Fatalf("FormatCommandLine error: %v", err)
	}
	want := `dotnet package list '/src/My App/app.sln' --source 'https://x.example/v3/index.json?a=1&b=2'`
	if got != want {
		t.Errorf("FormatCommandLine() = %q, want %q", got, want)
	}
}

func TestDryRunner(t *testing.T) {
	var buf bytes.Buffer
	r := &DryRunner{Command: []string{"dotnet"}, Out: &buf}

	out, err := r.Run(context.Background(), []string{"package", "list", "/src/app.csproj", "--outdated"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := "dotnet package list /src/app.csproj --outdated\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
}

func TestExecRunner_PassesArgsAndExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var stdout, stderr bytes.Buffer
	r := &ExecRunner{
		Command: []string{"sh", "-c", `echo "$@"; echo oops >&2; exit 3`, "sh"},
		Stdout:  &stdout,
		Stderr:  &stderr,
	}

	out, err := r.Run(context.Background(), []string{"package", "list", "app.sln"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
	if strings.TrimSpace(out.Stdout) != "package list app.sln" {
		t.Errorf("captured stdout = %q", out.Stdout)
	}
	if stdout.String() != out.Stdout {
		t.Errorf("streamed stdout %q differs from captured %q", stdout.String(), out.Stdout)
	}
	if strings.TrimSpace(stderr.String()) != "oops" {
		t.Errorf("streamed stderr = %q", stderr.String())
	}
}

func TestExecRunner_MissingCommand(t *testing.T) {
	r := &ExecRunner{Command: []string{"pkglist-definitely-not-installed"}}
	if _, err := r.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for missing command, got nil")
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 2}
	if err.Error() != "external command exited with code 2" {
		t.Errorf("Error() = %q", err.Error())
	}
}
