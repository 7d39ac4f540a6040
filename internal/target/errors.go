package target

import "fmt"

// CandidateKind names the kind of file found more than once in a directory.
type CandidateKind string

const (
	KindSolution CandidateKind = "solution"
	KindProject  CandidateKind = "project"
)

// AmbiguousTargetError reports a directory holding more than one candidate
// of the same kind.
type AmbiguousTargetError struct {
	Dir        string
	Kind       CandidateKind
	Candidates []string
}

func (e *AmbiguousTargetError) Error() string {
	if e.Kind == KindSolution {
		return fmt.Sprintf("found more than one solution file in %s. Specify which one to use.", e.Dir)
	}
	return fmt.Sprintf("found more than one project in %s. Specify which one to use.", e.Dir)
}

// NoTargetReason distinguishes the ways resolution can find nothing.
type NoTargetReason int

const (
	// ReasonFileNotFound means a non-directory path does not exist.
	ReasonFileNotFound NoTargetReason = iota
	// ReasonNoCandidates means a directory has no solution or project file.
	ReasonNoCandidates
)

// NoTargetError reports that no project or solution could be identified.
type NoTargetError struct {
	Path   string
	Reason NoTargetReason
}

func (e *NoTargetError) Error() string {
	if e.Reason == ReasonNoCandidates {
		return fmt.Sprintf("found no project or solution file in %s", e.Path)
	}
	return fmt.Sprintf("could not find file %s", e.Path)
}
