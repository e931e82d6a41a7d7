package dispatch

import (
	"errors"
	"fmt"

	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

var ErrUnknownParameter = errors.New("dispatch: parameter not accepted by command")

// UnknownParameterError names the first tag a projection table did not map.
type UnknownParameterError struct {
	Tag schema.Tag
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("dispatch: unknown parameter %s (0x%04x)", schema.TagName(schema.RoleRequest, e.Tag), uint16(e.Tag))
}

func (e *UnknownParameterError) Unwrap() error { return ErrUnknownParameter }

// Project maps params through table into a capability set. Tag order and
// repeated values are preserved.
func Project(params protocol.Params, table map[schema.Tag]string) (capset.Set, error) {
	var caps capset.Set
	for _, p := range params.Pairs() {
		name, ok := table[p.Tag]
		if !ok {
			return capset.Set{}, &UnknownParameterError{Tag: p.Tag}
		}
		caps.Append(name, p.Value)
	}
	return caps, nil
}
