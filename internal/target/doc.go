// Package target resolves the project or solution file a listing runs
// against. A file path is accepted as-is when it exists. A directory is
// searched one level deep: a single solution file wins; otherwise a single
// non-legacy project file is used. Ambiguity is always reported, never guessed.
package target
