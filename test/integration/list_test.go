//go:build integration

package integration_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/pkglist-dev/pkglist/internal/command"
	"github.com/pkglist-dev/pkglist/internal/options"
	"github.com/pkglist-dev/pkglist/internal/profile"
	"github.com/pkglist-dev/pkglist/internal/runner"
	"github.com/pkglist-dev/pkglist/internal/target"
)

// TestListFlow runs the full pipeline against a real directory and a fake
// listing command: resolve the solution, validate options, run the command.
func TestListFlow(t *testing.T) {
	env := setupTestEnv(t)
	dotnet := writeFakeDotnet(t, env.BinDir, 0)

	sln := filepath.Join(env.ProjectDir, "App.sln")
	writeFile(t, sln, "")
	writeFile(t, filepath.Join(env.ProjectDir, "App.csproj"), "<Project />")
	writeFile(t, filepath.Join(env.ProjectDir, "src", "Lib", "Lib.csproj"), "<Project />")

	flags := options.NewFlagSet()
	flags.Set(options.Outdated)
	flags.Set(options.Source, "https://api.nuget.org/v3/index.json")
	flags.Set(options.IncludePrerelease)

	resolver := target.NewResolver(target.NewOSFileSystem())
	argv, err := command.Build(resolver, env.ProjectDir, flags)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := &runner.ExecRunner{Command: []string{dotnet}, Stdout: io.Discard, Stderr: io.Discard}
	out, err := r.Run(context.Background(), argv)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", out.ExitCode)
	}

	assertLines(t, out.Stdout, []string{
		"package", "list", sln,
		"--outdated",
		"--source", "https://api.nuget.org/v3/index.json",
		"--include-prerelease",
	})
}

// TestListFlowWithProfile loads a profiles file from PKGLIST_HOME and checks
// profile options come before command-line options.
func TestListFlowWithProfile(t *testing.T) {
	env := setupTestEnv(t)
	dotnet := writeFakeDotnet(t, env.BinDir, 0)

	proj := filepath.Join(env.ProjectDir, "Web.fsproj")
	writeFile(t, proj, "<Project />")

	profilesPath := filepath.Join(env.HomeDir, "profiles.yaml")
	writeFile(t, profilesPath, `profiles:
  - name: audit
    description: Vulnerable packages including transitive ones
    flags:
      - vulnerable
      - include-transitive
      - format=json
`)

	file, err := profile.Load(profilesPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := file.Find("audit")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	base, err := p.FlagSet()
	if err != nil {
		t.Fatalf("FlagSet: %v", err)
	}

	cli := options.NewFlagSet()
	cli.Set(options.Framework, "net8.0", "net9.0")
	cli.Set(options.Format, "console")

	argv, err := command.Build(target.NewResolver(target.NewOSFileSystem()), proj, options.Merge(base, cli))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := &runner.ExecRunner{Command: []string{dotnet}, Stdout: io.Discard, Stderr: io.Discard}
	out, err := r.Run(context.Background(), argv)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	assertLines(t, out.Stdout, []string{
		"package", "list", proj,
		"--vulnerable",
		"--include-transitive",
		"--format", "console",
		"--framework", "net8.0",
		"--framework", "net9.0",
	})
}

// TestListFlowExitCode checks a failing listing command surfaces its code.
func TestListFlowExitCode(t *testing.T) {
	env := setupTestEnv(t)
	dotnet := writeFakeDotnet(t, env.BinDir, 3)
	writeFile(t, filepath.Join(env.ProjectDir, "App.vbproj"), "")

	argv, err := command.Build(target.NewResolver(target.NewOSFileSystem()), env.ProjectDir, options.NewFlagSet())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := &runner.ExecRunner{Command: []string{dotnet}, Stdout: io.Discard, Stderr: io.Discard}
	out, err := r.Run(context.Background(), argv)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
}

// TestListFlowRejectsBeforeRunning checks that resolution and validation
// failures stop the pipeline before any command is built.
func TestListFlowRejectsBeforeRunning(t *testing.T) {
	env := setupTestEnv(t)
	writeFile(t, filepath.Join(env.ProjectDir, "A.csproj"), "")
	writeFile(t, filepath.Join(env.ProjectDir, "B.csproj"), "")
	writeFile(t, filepath.Join(env.ProjectDir, "Old.xproj"), "")

	resolver := target.NewResolver(target.NewOSFileSystem())

	argv, err := command.Build(resolver, env.ProjectDir, options.NewFlagSet())
	var ambiguous *target.AmbiguousTargetError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("expected *target.AmbiguousTargetError, got %T (%v)", err, err)
	}
	if ambiguous.Kind != target.KindProject || len(ambiguous.Candidates) != 2 {
		t.Errorf("ambiguous = %+v, want 2 projects", ambiguous)
	}
	if argv != nil {
		t.Errorf("argv = %v, want nil", argv)
	}

	flags := options.NewFlagSet()
	flags.Set(options.HighestMinor)
	_, err = command.Build(resolver, filepath.Join(env.ProjectDir, "A.csproj"), flags)
	var depErr *options.DependentFlagError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected *options.DependentFlagError, got %T (%v)", err, err)
	}
}
