package protocol

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/protocol/tlv"
)

// Decode parses one datagram. Input shorter than the header returns
// ErrMalformedMessage directly; every later failure is a *DecodeError.
func Decode(b []byte) (Message, error) {
	head, err := parseHeader(b)
	if err != nil {
		return Message{}, err
	}
	if !head.Type.Known() {
		return Message{}, &DecodeError{
			Header: head,
			Err:    fmt.Errorf("%w: 0x%04x", ErrUnknownMessageType, uint16(head.Type)),
		}
	}

	fields, err := tlv.DecodeFields(b[HeaderSize:])
	if err != nil {
		return Message{}, &DecodeError{Header: head, Err: fmt.Errorf("%w: %w", ErrMalformedMessage, err)}
	}
	params, err := checkTags(schema.RoleOf(head.Type), fields)
	if err != nil {
		return Message{}, &DecodeError{Header: head, Err: err}
	}

	return Message{
		Version:       head.Version,
		Type:          head.Type,
		CorrelationID: head.CorrelationID,
		Params:        params,
	}, nil
}

func parseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrMalformedMessage, len(b))
	}
	return Header{
		Version:       b[0],
		Type:          schema.MessageType(binary.BigEndian.Uint16(b[1:3])),
		CorrelationID: binary.BigEndian.Uint16(b[3:5]),
	}, nil
}

// checkTags validates fields against the role's tag set and aggregates them.
// Values must be UTF-8; leading NUL padding is stripped.
func checkTags(role schema.Role, fields []tlv.Field) (Params, error) {
	var p Params
	for _, f := range fields {
		tag := schema.Tag(f.Tag)
		if !schema.KnownTag(role, tag) {
			return Params{}, &UnknownTagError{Role: role, Tag: tag}
		}
		if !utf8.Valid(f.Value) {
			return Params{}, fmt.Errorf("%w: tag 0x%04x value is not UTF-8", ErrMalformedMessage, uint16(tag))
		}
		p.Add(tag, strings.TrimLeft(string(f.Value), "\x00"))
	}
	return p, nil
}
