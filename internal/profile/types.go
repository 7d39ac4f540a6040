package profile

import (
	"fmt"

	"github.com/pkglist-dev/pkglist/internal/options"
)

// File is the top-level structure of a profiles file.
type File struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Profile is a named set of listing options.
type Profile struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Flags       []string `yaml:"flags" json:"flags"`
}

// Find returns the profile called name.
func (f *File) Find(name string) (*Profile, error) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile %q not found", name)
}

// FlagSet converts the profile's entries into an ordered FlagSet.
func (p *Profile) FlagSet() (*options.FlagSet, error) {
	set := options.NewFlagSet()
	for _, entry := range p.Flags {
		if err := set.Apply(entry); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	return set, nil
}
