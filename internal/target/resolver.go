package target

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkglist-dev/pkglist/internal/logging"
)

// Default candidate patterns. Directory search is top-level only.
var (
	SolutionPattern       = "*.sln"
	ProjectPattern        = "*.*proj"
	LegacyProjectSuffixes = []string{".xproj"}
)

// Resolver turns a user-supplied path into a single solution or project file.
type Resolver struct {
	FS FileSystem
}

// NewResolver returns a Resolver that searches fs.
func NewResolver(fs FileSystem) *Resolver {
	return &Resolver{FS: fs}
}

// Resolve returns the absolute path of the solution or project file path
// refers to. Errors are *NoTargetError or *AmbiguousTargetError, or a wrapped
// I/O failure.
func (r *Resolver) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path of %s: %w", path, err)
	}

	isDir, err := r.FS.IsDir(abs)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", abs, err)
	}
	if isDir {
		return r.resolveDir(abs)
	}

	exists, err := r.FS.Exists(abs)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", abs, err)
	}
	if !exists {
		return "", &NoTargetError{Path: abs, Reason: ReasonFileNotFound}
	}
	return abs, nil
}

func (r *Resolver) resolveDir(dir string) (string, error) {
	solutions, err := r.FS.Match(dir, SolutionPattern)
	if err != nil {
		return "", err
	}
	logging.Default().Debug("scanned for solutions", "dir", dir, "found", len(solutions))

	switch len(solutions) {
	case 0:
	case 1:
		return solutions[0], nil
	default:
		return "", &AmbiguousTargetError{Dir: dir, Kind: KindSolution, Candidates: solutions}
	}

	matches, err := r.FS.Match(dir, ProjectPattern)
	if err != nil {
		return "", err
	}
	projects := withoutLegacy(matches)
	logging.Default().Debug("scanned for projects", "dir", dir, "found", len(projects), "legacy", len(matches)-len(projects))

	switch len(projects) {
	case 0:
		return "", &NoTargetError{Path: dir, Reason: ReasonNoCandidates}
	case 1:
		return projects[0], nil
	default:
		return "", &AmbiguousTargetError{Dir: dir, Kind: KindProject, Candidates: projects}
	}
}

// IsLegacyProject reports whether path uses a legacy project-file extension.
// The comparison ignores case.
func IsLegacyProject(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range LegacyProjectSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			return true
		}
	}
	return false
}

func withoutLegacy(paths []string) []string {
	var kept []string
	for _, p := range paths {
		if !IsLegacyProject(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
