// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; renaming the tool, its home
// directory or its env prefix only takes an edit there.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Identity holds the values read from branding.yaml.
type Identity struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	DefaultCommand string `yaml:"default_command"`
}

var fallback = Identity{
	CLIName:        "pkglist",
	DisplayName:    "pkglist",
	Description:    "List package references of a .NET project or solution",
	HomeDir:        ".pkglist",
	EnvPrefix:      "PKGLIST",
	DefaultCommand: "dotnet",
}

// Current returns the embedded identity. Fields missing from branding.yaml
// keep their built-in values.
var Current = sync.OnceValue(func() Identity {
	id := fallback
	_ = yaml.Unmarshal(rawBranding, &id)
	return id
})

// CLIName returns the root command name.
func CLIName() string { return Current().CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { return Current().DisplayName }

// Description returns the one-line summary shown in help output.
func Description() string { return Current().Description }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { return Current().HomeDir }

// EnvPrefix returns the prefix of every environment setting (e.g., "PKGLIST").
func EnvPrefix() string { return Current().EnvPrefix }

// DefaultCommand is the external listing command used when the "command"
// setting is empty.
func DefaultCommand() string { return Current().DefaultCommand }

// EnvVar qualifies a setting name with the env prefix: "log_level" becomes
// "PKGLIST_LOG_LEVEL".
func EnvVar(name string) string {
	return Current().EnvPrefix + "_" + strings.ToUpper(name)
}
