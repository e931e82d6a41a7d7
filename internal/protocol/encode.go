package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/protocol/tlv"
)

// Encode serializes msg. The version byte is written as given and the
// reserved bytes are always 0xFFFF.
func Encode(msg Message) ([]byte, error) {
	if !msg.Type.Known() {
		return nil, fmt.Errorf("%w: 0x%04x", ErrUnknownMessageType, uint16(msg.Type))
	}

	fields := make([]tlv.Field, 0, msg.Params.Len())
	msg.Params.Each(func(tag schema.Tag, value string) {
		fields = append(fields, tlv.Field{Tag: uint16(tag), Value: []byte(value)})
	})
	body, err := tlv.EncodeFields(fields)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, HeaderSize, HeaderSize+len(body))
	buf[0] = msg.Version
	binary.BigEndian.PutUint16(buf[1:3], uint16(msg.Type))
	binary.BigEndian.PutUint16(buf[3:5], msg.CorrelationID)
	binary.BigEndian.PutUint16(buf[5:7], Reserved)
	return append(buf, body...), nil
}

// NewReply builds an ACK or RESPONSE carrying STATUS and MESSAGE followed by
// any extra parameters.
func NewReply(t schema.MessageType, correlationID uint16, status int, message string, extra ...Param) Message {
	var p Params
	p.Add(schema.TagStatus, fmt.Sprintf("%d", status))
	p.Add(schema.TagMessage, message)
	for _, e := range extra {
		p.Add(e.Tag, e.Value)
	}
	return Message{Version: Version, Type: t, CorrelationID: correlationID, Params: p}
}
