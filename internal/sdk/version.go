package sdk

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkglist-dev/pkglist/internal/options"
)

// minimumVersions maps each gating option to the first SDK that supports it.
var minimumVersions = map[string]string{
	options.Outdated:   "2.2.0",
	options.Deprecated: "3.1.200",
	options.Vulnerable: "5.0.200",
}

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// CompareVersions returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := ParseVersion(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := ParseVersion(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// MinimumFor returns the first SDK version supporting the gating option,
// or false when the option has no minimum.
func MinimumFor(option string) (string, bool) {
	v, ok := minimumVersions[option]
	return v, ok
}

// Supports reports whether an SDK at version can run option. Options with no
// recorded minimum are always supported. Prerelease SDKs count as their
// release version.
func Supports(version, option string) (bool, error) {
	minimum, ok := MinimumFor(option)
	if !ok {
		return true, nil
	}
	v, err := ParseVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing SDK version %q: %w", version, err)
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return false, err
	}
	floor, err := ParseVersion(minimum)
	if err != nil {
		return false, err
	}
	return !release.LessThan(floor), nil
}
