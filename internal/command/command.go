// Package command assembles the argument list handed to the external
// package-listing command once the target and options have been validated.
package command

import (
	"github.com/pkglist-dev/pkglist/internal/logging"
	"github.com/pkglist-dev/pkglist/internal/options"
)

// Prefix is the fixed subcommand that precedes the target.
var Prefix = []string{"package", "list"}

// Resolver turns a user path into a single project or solution file.
type Resolver interface {
	Resolve(path string) (string, error)
}

// Assemble returns Prefix, then target, then the forwarded option tokens in
// the order they were supplied.
func Assemble(target string, flags *options.FlagSet) []string {
	forwarded := flags.Forwarded()
	args := make([]string, 0, len(Prefix)+1+len(forwarded))
	args = append(args, Prefix...)
	args = append(args, target)
	return append(args, forwarded...)
}

// Build resolves path, validates flags and assembles the argument list.
// It stops at the first failure.
func Build(r Resolver, path string, flags *options.FlagSet) ([]string, error) {
	target, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}
	logging.Default().Debug("resolved target", "path", path, "target", target)

	if err := options.Validate(flags); err != nil {
		return nil, err
	}

	args := Assemble(target, flags)
	logging.Default().Debug("assembled arguments", "args", args)
	return args, nil
}
