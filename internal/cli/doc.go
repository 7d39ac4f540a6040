// Package cli defines the Cobra command tree for the pkglist CLI. Each file
// in this package registers one top-level command (list, profile, doctor, etc.)
// with the root command. Commands delegate to internal packages for the
// resolution and validation logic and only handle flags, I/O and exit codes.
package cli
