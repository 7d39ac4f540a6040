package options

import (
	"fmt"
	"strings"
)

// DependentFlagError reports an option supplied without any of the options
// it depends on.
type DependentFlagError struct {
	Flag     string
	Requires []string
}

func (e *DependentFlagError) Error() string {
	return fmt.Sprintf("option \"--%s\" requires one of the following options: %s", e.Flag, dashed(e.Requires))
}

// ConflictingFlagsError reports two mutually exclusive options supplied together.
type ConflictingFlagsError struct {
	First  string
	Second string
}

func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("options \"--%s\" and \"--%s\" cannot be combined", e.First, e.Second)
}

// InvalidValueError reports a value outside an option's allowed set.
type InvalidValueError struct {
	Flag    string
	Value   string
	Allowed []string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option \"--%s\": must be one of %s", e.Value, e.Flag, strings.Join(e.Allowed, ", "))
}

// UnknownOptionError reports an option name that is not registered.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Name)
}

func dashed(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "--" + n
	}
	return strings.Join(out, ", ")
}
