package protocol

import "github.com/danmuck/dutctl/internal/protocol/schema"

const (
	// Version is the only header version the agent emits.
	Version uint8 = 0x01
	// HeaderSize is version(1) + type(2) + correlation id(2) + reserved(2).
	HeaderSize = 7
	// Reserved is written into the reserved header bytes.
	Reserved uint16 = 0xFFFF
)

// Header is the decoded fixed header. Reserved bytes are not kept.
type Header struct {
	Version       uint8
	Type          schema.MessageType
	CorrelationID uint16
}

// Message is one datagram of the control API.
type Message struct {
	Version       uint8
	Type          schema.MessageType
	CorrelationID uint16
	Params        Params
}

// Header returns the message header.
func (m Message) Header() Header {
	return Header{Version: m.Version, Type: m.Type, CorrelationID: m.CorrelationID}
}

// Param is a single tag/value pair.
type Param struct {
	Tag   schema.Tag
	Value string
}

// Status values carried in the STATUS response tag.
const (
	StatusSuccess = 0
	StatusError   = 1
)
