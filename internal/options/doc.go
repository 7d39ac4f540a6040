// Package options holds the recognized listing options, the ordered FlagSet
// built from user input, and the rule tables that decide which combinations
// are valid. Rules are data: adding a dependent or gating option means adding
// a table entry, not a new branch in Validate.
package options
