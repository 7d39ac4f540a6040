package options

// GatingFlags select the query mode. At most one may be supplied.
var GatingFlags = []string{Outdated, Deprecated, Vulnerable}

// Dependency states that Flag is only meaningful alongside one of Requires.
type Dependency struct {
	Flag     string
	Requires []string
}

// Conflict names two options that cannot be supplied together.
type Conflict struct {
	First  string
	Second string
}

// Choice restricts an option's value to a fixed set.
type Choice struct {
	Flag    string
	Allowed []string
}

// Dependencies are checked in declaration order.
var Dependencies = []Dependency{
	{IncludePrerelease, GatingFlags},
	{HighestPatch, GatingFlags},
	{HighestMinor, GatingFlags},
	{Config, GatingFlags},
	{Source, GatingFlags},
	{OutputVersion, []string{Format}},
}

// Conflicts are every pair of gating flags, in declaration order.
var Conflicts = pairwise(GatingFlags)

// Choices are checked after dependencies and conflicts.
var Choices = []Choice{
	{Format, []string{"console", "json"}},
	{Verbosity, []string{"q", "quiet", "m", "minimal", "n", "normal", "d", "detailed", "diag", "diagnostic"}},
}

// Validate checks flags against the rule tables and returns the first
// violation: dependencies first, then conflicts, then value choices.
func Validate(flags *FlagSet) error {
	if err := checkDependencies(flags); err != nil {
		return err
	}
	return ValidatePartial(flags)
}

// ValidatePartial checks a set that is combined with other options before
// use, such as a profile. Dependencies are skipped since the companion
// option may come later; conflicts and value choices still apply.
func ValidatePartial(flags *FlagSet) error {
	if err := checkConflicts(flags); err != nil {
		return err
	}
	return checkChoices(flags)
}

func checkDependencies(flags *FlagSet) error {
	for _, dep := range Dependencies {
		if flags.Has(dep.Flag) && !hasAny(flags, dep.Requires) {
			return &DependentFlagError{Flag: dep.Flag, Requires: dep.Requires}
		}
	}
	return nil
}

func checkConflicts(flags *FlagSet) error {
	for _, c := range Conflicts {
		if flags.Has(c.First) && flags.Has(c.Second) {
			return &ConflictingFlagsError{First: c.First, Second: c.Second}
		}
	}
	return nil
}

func checkChoices(flags *FlagSet) error {
	for _, c := range Choices {
		for _, v := range flags.Values(c.Flag) {
			if !contains(c.Allowed, v) {
				return &InvalidValueError{Flag: c.Flag, Value: v, Allowed: c.Allowed}
			}
		}
	}
	return nil
}

func pairwise(names []string) []Conflict {
	var pairs []Conflict
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			pairs = append(pairs, Conflict{First: names[i], Second: names[j]})
		}
	}
	return pairs
}

func hasAny(flags *FlagSet, names []string) bool {
	for _, n := range names {
		if flags.Has(n) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
