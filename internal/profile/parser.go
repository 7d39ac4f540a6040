package profile

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads, schema-checks and parses a profiles file. A missing file
// yields an empty File.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profiles file %s: %w", path, err)
	}

	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating profiles file %s: %w", path, err)
	}
	if len(issues) > 0 {
		return nil, &InvalidFileError{Path: path, Issues: issues}
	}

	return Parse(data, path)
}

// Parse unmarshals profiles YAML without schema validation.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profiles file %s: %w", path, err)
	}
	seen := make(map[string]bool, len(f.Profiles))
	for _, p := range f.Profiles {
		if seen[p.Name] {
			return nil, fmt.Errorf("profiles file %s: duplicate profile %q", path, p.Name)
		}
		seen[p.Name] = true
	}
	return &f, nil
}

// InvalidFileError reports schema violations in a profiles file.
type InvalidFileError struct {
	Path   string
	Issues []Issue
}

func (e *InvalidFileError) Error() string {
	switch len(e.Issues) {
	case 0:
		return fmt.Sprintf("profiles file %s is invalid", e.Path)
	case 1:
		return fmt.Sprintf("profiles file %s is invalid: %s", e.Path, e.Issues[0])
	default:
		return fmt.Sprintf("profiles file %s is invalid: %s (and %d more)", e.Path, e.Issues[0], len(e.Issues)-1)
	}
}
