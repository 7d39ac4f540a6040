package options

import (
	"fmt"
	"strconv"
	"strings"
)

// Flag is one supplied option. Switches carry no values.
type Flag struct {
	Name   string
	Values []string
}

// FlagSet is an ordered collection of supplied options. Order is the order
// in which each option was first set.
type FlagSet struct {
	flags []Flag
}

// NewFlagSet returns an empty FlagSet.
func NewFlagSet() *FlagSet {
	return &FlagSet{}
}

func (s *FlagSet) index(name string) int {
	for i, f := range s.flags {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Set records name with values. An existing entry keeps its position and has
// its values replaced.
func (s *FlagSet) Set(name string, values ...string) {
	vals := append([]string(nil), values...)
	if i := s.index(name); i >= 0 {
		s.flags[i].Values = vals
		return
	}
	s.flags = append(s.flags, Flag{Name: name, Values: vals})
}

// Unset removes name if present.
func (s *FlagSet) Unset(name string) {
	if i := s.index(name); i >= 0 {
		s.flags = append(s.flags[:i], s.flags[i+1:]...)
	}
}

// Has reports whether name was supplied.
func (s *FlagSet) Has(name string) bool {
	return s != nil && s.index(name) >= 0
}

// Values returns the values supplied for name.
func (s *FlagSet) Values(name string) []string {
	if s == nil {
		return nil
	}
	if i := s.index(name); i >= 0 {
		return append([]string(nil), s.flags[i].Values...)
	}
	return nil
}

// Len returns the number of supplied options.
func (s *FlagSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.flags)
}

// Names returns the supplied option names in order.
func (s *FlagSet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.flags))
	for i, f := range s.flags {
		names[i] = f.Name
	}
	return names
}

// Forwarded returns the tokens passed verbatim to the external command:
// "--name" for switches and "--name value" for each value otherwise.
func (s *FlagSet) Forwarded() []string {
	if s == nil {
		return nil
	}
	var tokens []string
	for _, f := range s.flags {
		if len(f.Values) == 0 {
			tokens = append(tokens, "--"+f.Name)
			continue
		}
		for _, v := range f.Values {
			tokens = append(tokens, "--"+f.Name, v)
		}
	}
	return tokens
}

// Apply parses a "name" or "name=value" entry and records it. Repeatable
// options accumulate values; a switch given "=false" is removed.
func (s *FlagSet) Apply(entry string) error {
	name, value, hasValue := strings.Cut(strings.TrimSpace(entry), "=")
	name = strings.TrimPrefix(name, "--")

	spec, ok := Lookup(name)
	if !ok {
		return &UnknownOptionError{Name: name}
	}

	switch spec.Kind {
	case KindBool:
		if !hasValue {
			s.Set(name)
			return nil
		}
		on, err := strconv.ParseBool(value)
		if err != nil {
			return &InvalidValueError{Flag: name, Value: value, Allowed: []string{"true", "false"}}
		}
		if on {
			s.Set(name)
		} else {
			s.Unset(name)
		}
	case KindValue:
		if !hasValue || value == "" {
			return fmt.Errorf("option \"--%s\" requires a value", name)
		}
		s.Set(name, value)
	case KindMulti:
		if !hasValue || value == "" {
			return fmt.Errorf("option \"--%s\" requires a value", name)
		}
		s.Set(name, append(s.Values(name), value)...)
	}
	return nil
}

// Merge returns a new FlagSet holding base followed by overlay. Options in
// both keep base's position and take overlay's values.
func Merge(base, overlay *FlagSet) *FlagSet {
	merged := NewFlagSet()
	for _, src := range []*FlagSet{base, overlay} {
		if src == nil {
			continue
		}
		for _, f := range src.flags {
			merged.Set(f.Name, f.Values...)
		}
	}
	return merged
}
