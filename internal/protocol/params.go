package protocol

import "github.com/danmuck/dutctl/internal/protocol/schema"

// Params is an ordered multimap from tag to values. Tags keep first-appearance
// order and each tag keeps its values in arrival order.
type Params struct {
	order  []schema.Tag
	values map[schema.Tag][]string
}

// NewParams builds Params from pairs in order.
func NewParams(pairs ...Param) Params {
	var p Params
	for _, pair := range pairs {
		p.Add(pair.Tag, pair.Value)
	}
	return p
}

// Add appends value under tag. Repeated tags aggregate.
func (p *Params) Add(tag schema.Tag, value string) {
	if p.values == nil {
		p.values = make(map[schema.Tag][]string)
	}
	if _, ok := p.values[tag]; !ok {
		p.order = append(p.order, tag)
	}
	p.values[tag] = append(p.values[tag], value)
}

// Get returns the first value for tag.
func (p Params) Get(tag schema.Tag) (string, bool) {
	vals := p.values[tag]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Values returns a copy of every value for tag.
func (p Params) Values(tag schema.Tag) []string {
	vals := p.values[tag]
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

func (p Params) Has(tag schema.Tag) bool {
	_, ok := p.values[tag]
	return ok
}

// Tags returns tags in first-appearance order.
func (p Params) Tags() []schema.Tag {
	out := make([]schema.Tag, len(p.order))
	copy(out, p.order)
	return out
}

// Len is the total number of values.
func (p Params) Len() int {
	n := 0
	for _, vals := range p.values {
		n += len(vals)
	}
	return n
}

// Each visits values in encode order.
func (p Params) Each(fn func(tag schema.Tag, value string)) {
	for _, tag := range p.order {
		for _, v := range p.values[tag] {
			fn(tag, v)
		}
	}
}

// Pairs flattens p in encode order.
func (p Params) Pairs() []Param {
	out := make([]Param, 0, p.Len())
	p.Each(func(tag schema.Tag, value string) {
		out = append(out, Param{Tag: tag, Value: value})
	})
	return out
}
