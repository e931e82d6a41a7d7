package iface

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSpec = errors.New("iface: invalid interface spec")

// Spec is the parsed -interface option.
type Spec struct {
	Default string
	Slots   []Slot
}

// ParseSpec accepts either a plain interface name or a comma list of
// band:name entries where band is 2, 5 or 6.
func ParseSpec(raw string) (Spec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Spec{}, nil
	}
	if !strings.Contains(raw, ":") {
		return Spec{Default: raw}, nil
	}
	var spec Spec
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		prefix, name, ok := strings.Cut(part, ":")
		if !ok || name == "" {
			return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, part)
		}
		var band Band
		switch prefix {
		case "2":
			band = Band24G
		case "5":
			band = Band5G
		case "6":
			band = Band6G
		default:
			return Spec{}, fmt.Errorf("%w: unknown band %q in %q", ErrInvalidSpec, prefix, part)
		}
		spec.Slots = append(spec.Slots, Slot{Band: band, Name: name})
	}
	return spec, nil
}

// Names returns the default name or every slot name.
func (s Spec) Names() []string {
	if len(s.Slots) == 0 {
		if s.Default == "" {
			return nil
		}
		return []string{s.Default}
	}
	out := make([]string, 0, len(s.Slots))
	for _, slot := range s.Slots {
		out = append(out, slot.Name)
	}
	return out
}

// Allocator builds a fresh allocator over the parsed slots.
func (s Spec) Allocator() *Allocator {
	return New(s.Default, s.Slots...)
}
