package protocol

import (
	"errors"
	"fmt"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/protocol/tlv"
)

var (
	ErrMalformedMessage   = errors.New("protocol: malformed message")
	ErrUnknownMessageType = errors.New("protocol: unknown message type")
	ErrUnknownTag         = errors.New("protocol: unknown tag")
	ErrValueTooLong       = tlv.ErrValueTooLong
)

// UnknownTagError names the tag that failed role validation.
type UnknownTagError struct {
	Role schema.Role
	Tag  schema.Tag
}

func (e *UnknownTagError) Error() string {
	set := "request"
	if e.Role == schema.RoleReply {
		set = "response"
	}
	return fmt.Sprintf("protocol: unknown %s tag 0x%04x", set, uint16(e.Tag))
}

func (e *UnknownTagError) Unwrap() error { return ErrUnknownTag }

// DecodeError is returned once the header has been read. Header carries
// enough to build a reply even though the body was rejected.
type DecodeError struct {
	Header Header
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("protocol: decode type=%s id=%d: %v", e.Header.Type, e.Header.CorrelationID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
