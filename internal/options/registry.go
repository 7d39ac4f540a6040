package options

// Kind describes how an option takes values.
type Kind int

const (
	// KindBool options are switches with no value.
	KindBool Kind = iota
	// KindValue options take exactly one value.
	KindValue
	// KindMulti options may be given several times.
	KindMulti
)

// Spec declares one recognized option.
type Spec struct {
	Name  string
	Kind  Kind
	Usage string
}

// Option names.
const (
	Outdated          = "outdated"
	Deprecated        = "deprecated"
	Vulnerable        = "vulnerable"
	IncludePrerelease = "include-prerelease"
	HighestPatch      = "highest-patch"
	HighestMinor      = "highest-minor"
	Config            = "config"
	Source            = "source"
	Framework         = "framework"
	IncludeTransitive = "include-transitive"
	Interactive       = "interactive"
	Verbosity         = "verbosity"
	Format            = "format"
	OutputVersion     = "output-version"
)

// Registry lists every option forwarded to the external command, in the
// order they are shown in help output.
var Registry = []Spec{
	{Outdated, KindBool, "Lists packages that have newer versions"},
	{Deprecated, KindBool, "Lists packages that have been deprecated"},
	{Vulnerable, KindBool, "Lists packages that have known vulnerabilities"},
	{Framework, KindMulti, "Chooses a framework to show its packages (can be specified multiple times)"},
	{IncludeTransitive, KindBool, "Lists transitive and top-level packages"},
	{IncludePrerelease, KindBool, "Considers packages with prerelease versions when searching for newer packages"},
	{HighestPatch, KindBool, "Considers only the packages with a matching major and minor version number"},
	{HighestMinor, KindBool, "Considers only the packages with a matching major version number"},
	{Config, KindValue, "The path to the NuGet config file to use"},
	{Source, KindMulti, "The NuGet sources to use when searching for newer packages (can be specified multiple times)"},
	{Interactive, KindBool, "Allows the command to stop and wait for user input or action"},
	{Verbosity, KindValue, "Sets the verbosity level of the external command"},
	{Format, KindValue, "Specifies the output format: console or json"},
	{OutputVersion, KindValue, "Specifies the version of the json output"},
}

// Lookup returns the Spec registered under name.
func Lookup(name string) (Spec, bool) {
	for _, s := range Registry {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// IsKnown reports whether name is a registered option.
func IsKnown(name string) bool {
	_, ok := Lookup(name)
	return ok
}
