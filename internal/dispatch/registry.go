package dispatch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danmuck/dutctl/internal/protocol/schema"
)

var (
	ErrCommandExists  = errors.New("dispatch: command already registered")
	ErrNilHandler     = errors.New("dispatch: command handler is nil")
	ErrInvalidCommand = errors.New("dispatch: not a request message type")
)

// Registry stores commands by message type.
type Registry struct {
	items map[schema.MessageType]Command
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[schema.MessageType]Command)}
}

// Register adds cmd. Each request type may be registered once.
func (r *Registry) Register(cmd Command) error {
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, cmd.Type)
	}
	if !cmd.Type.IsRequest() {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd.Type)
	}
	if _, ok := r.items[cmd.Type]; ok {
		return fmt.Errorf("%w: %s", ErrCommandExists, cmd.Type)
	}
	r.items[cmd.Type] = cmd
	return nil
}

// MustRegister panics on a registration error. Used for the static table.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Resolve(t schema.MessageType) (Command, bool) {
	cmd, ok := r.items[t]
	return cmd, ok
}

// List returns commands ordered by message type.
func (r *Registry) List() []Command {
	list := make([]Command, 0, len(r.items))
	for _, cmd := range r.items {
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Type < list[j].Type
	})
	return list
}

// Names returns the registered type names in List order.
func (r *Registry) Names() []string {
	list := r.List()
	out := make([]string, 0, len(list))
	for _, cmd := range list {
		out = append(out, cmd.Type.String())
	}
	return out
}
