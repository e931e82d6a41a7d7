// Package capset holds the per-request capability set: an ordered list of
// named parameters projected from a command's TLVs.
package capset

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrMissing = errors.New("capset: capability not present")
	ErrNotInt  = errors.New("capset: capability is not an integer")
)

// Capability is one named entry. Values keep wire order for repeated tags.
type Capability struct {
	Name   string
	Values []string
}

// Value returns the first value.
func (c Capability) Value() string {
	if len(c.Values) == 0 {
		return ""
	}
	return c.Values[0]
}

// Set is ordered by first insertion. The zero value is ready to use.
type Set struct {
	entries []Capability
}

// New builds a set from name/value pairs. It panics on an odd argument count.
func New(kv ...string) Set {
	if len(kv)%2 != 0 {
		panic("capset: odd argument count")
	}
	var s Set
	for i := 0; i < len(kv); i += 2 {
		s.Append(kv[i], kv[i+1])
	}
	return s
}

func (s *Set) index(name string) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}

// Append adds value under name, keeping the position of an existing entry.
func (s *Set) Append(name, value string) {
	if i := s.index(name); i >= 0 {
		s.entries[i].Values = append(s.entries[i].Values, value)
		return
	}
	s.entries = append(s.entries, Capability{Name: name, Values: []string{value}})
}

// Set replaces the values of name, or appends a new entry.
func (s *Set) Set(name, value string) {
	if i := s.index(name); i >= 0 {
		s.entries[i].Values = []string{value}
		return
	}
	s.entries = append(s.entries, Capability{Name: name, Values: []string{value}})
}

func (s *Set) Delete(name string) {
	if i := s.index(name); i >= 0 {
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	}
}

// Get returns the first value of name.
func (s Set) Get(name string) (string, bool) {
	if i := s.index(name); i >= 0 {
		return s.entries[i].Value(), true
	}
	return "", false
}

// Values returns a copy of every value of name.
func (s Set) Values(name string) []string {
	if i := s.index(name); i >= 0 {
		out := make([]string, len(s.entries[i].Values))
		copy(out, s.entries[i].Values)
		return out
	}
	return nil
}

func (s Set) Has(name string) bool {
	return s.index(name) >= 0
}

// Int parses the first value of name as a base-10 integer.
func (s Set) Int(name string) (int, error) {
	v, ok := s.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrNotInt, name, v)
	}
	return n, nil
}

// Entries returns a copy of the set in order.
func (s Set) Entries() []Capability {
	out := make([]Capability, len(s.entries))
	for i, e := range s.entries {
		out[i] = Capability{Name: e.Name, Values: append([]string(nil), e.Values...)}
	}
	return out
}

func (s Set) Len() int {
	return len(s.entries)
}

// Clone returns a deep copy.
func (s Set) Clone() Set {
	return Set{entries: s.Entries()}
}
