package iface

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Slot is one physical interface bound to a band. BSSID holds the
// allocation key of the BSS using it; 0 means free.
type Slot struct {
	Band  Band   `json:"band"`
	Name  string `json:"name"`
	BSSID int    `json:"bss_id"`
}

// Allocator owns the slot table. Command handling is the only writer; the
// mutex exists for concurrent snapshot readers.
type Allocator struct {
	mu          sync.RWMutex
	defaultName string
	slots       []Slot
	count       int
	log         zerolog.Logger
}

// New returns an allocator with every slot free.
func New(defaultName string, slots ...Slot) *Allocator {
	a := &Allocator{
		defaultName: defaultName,
		log:         log.Logger.With().Str("component", "iface").Logger(),
	}
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, dup := seen[s.Name]; dup {
			continue
		}
		seen[s.Name] = struct{}{}
		a.slots = append(a.slots, Slot{Band: s.Band, Name: s.Name})
	}
	return a
}

// Assign binds id to the first free slot on band. Ids must be positive and
// not already held by any slot.
func (a *Allocator) Assign(band Band, id int) (string, bool) {
	if id <= 0 {
		return "", false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, s := range a.slots {
		if s.BSSID == id {
			return "", false
		}
	}
	for i := range a.slots {
		if a.slots[i].Band == band && a.slots[i].BSSID == 0 {
			a.slots[i].BSSID = id
			a.count++
			return a.slots[i].Name, true
		}
	}
	return "", false
}

// Lookup returns the interface holding id.
func (a *Allocator) Lookup(id int) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, s := range a.slots {
		if s.BSSID != 0 && s.BSSID == id {
			return s.Name, true
		}
	}
	return "", false
}

// Resolve returns the interface for id, assigning one on band if needed.
// When no slot is free the default interface is returned with fellBack set.
func (a *Allocator) Resolve(band Band, id int) (name string, fellBack bool) {
	if name, ok := a.Lookup(id); ok {
		return name, false
	}
	if name, ok := a.Assign(band, id); ok {
		return name, false
	}
	name = a.Default()
	a.log.Warn().
		Str("band", band.String()).
		Int("bss_id", id).
		Str("fallback", name).
		Msg("no free interface for band, check -interface; using default wireless interface")
	return name, true
}

// Primary returns the first assigned slot, else the first slot.
func (a *Allocator) Primary() (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, s := range a.slots {
		if s.BSSID > 0 {
			return s.Name, true
		}
	}
	if len(a.slots) > 0 {
		return a.slots[0].Name, true
	}
	return "", false
}

// Default returns the logical default name, else Primary.
func (a *Allocator) Default() string {
	a.mu.RLock()
	name := a.defaultName
	a.mu.RUnlock()
	if name != "" {
		return name
	}
	if name, ok := a.Primary(); ok {
		return name
	}
	a.log.Error().Msg("no valid interface, check -interface")
	return ""
}

// SetDefault replaces the logical default name.
func (a *Allocator) SetDefault(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.defaultName = name
}

// Reset frees every slot and zeroes the count.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.slots {
		a.slots[i].BSSID = 0
	}
	a.count = 0
}

// Count is the number of successful assignments since the last Reset.
func (a *Allocator) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}

// Slots returns a copy of the slot table.
func (a *Allocator) Slots() []Slot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]Slot, len(a.slots))
	copy(out, a.slots)
	return out
}

// Names returns every slot name in table order.
func (a *Allocator) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, 0, len(a.slots))
	for _, s := range a.slots {
		out = append(out, s.Name)
	}
	return out
}

// Assigned returns the names of slots holding a BSS id.
func (a *Allocator) Assigned() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []string
	for _, s := range a.slots {
		if s.BSSID > 0 {
			out = append(out, s.Name)
		}
	}
	return out
}
