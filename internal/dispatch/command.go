package dispatch

import (
	"context"
	"fmt"

	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/protocol"
	"github.com/danmuck/dutctl/internal/protocol/schema"
)

// Handler runs one command. It must not block past ctx.
type Handler func(ctx context.Context, req Request) Result

// Command binds a message type to its handler. A nil Projection means the
// handler reads Request.Params directly and Request.Caps is empty.
type Command struct {
	Type       schema.MessageType
	Label      string
	Projection map[schema.Tag]string
	Handler    Handler
}

// Name is the label used in replies, falling back to the type name.
func (c Command) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Type.String()
}

// Request is what a handler sees.
type Request struct {
	Type          schema.MessageType
	CorrelationID uint16
	Params        protocol.Params
	Caps          capset.Set
}

// Result becomes the RESPONSE message.
type Result struct {
	Status  int
	Message string
	TLVs    []protocol.Param
}

func OK(msg string, tlvs ...protocol.Param) Result {
	return Result{Status: protocol.StatusSuccess, Message: msg, TLVs: tlvs}
}

func Fail(msg string) Result {
	return Result{Status: protocol.StatusError, Message: msg}
}

func Failf(format string, args ...any) Result {
	return Fail(fmt.Sprintf(format, args...))
}

// Succeeded reports a zero status.
func (r Result) Succeeded() bool {
	return r.Status == protocol.StatusSuccess
}
