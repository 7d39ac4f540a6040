// Package profile loads named flag profiles from a YAML file. A profile is a
// reusable list of listing options ("vulnerable", "source=https://...") that
// the list command applies before the options given on the command line.
// Files are checked against an embedded JSON schema before they are used.
package profile
