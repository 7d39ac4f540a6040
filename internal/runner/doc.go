// Package runner executes the external package-listing command. Dispatch
// picks between ExecRunner, which runs the command and streams its output,
// and DryRunner, which only prints the command line that would run.
package runner
