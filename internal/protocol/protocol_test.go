package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/danmuck/dutctl/internal/protocol/schema"
	"github.com/danmuck/dutctl/internal/protocol/tlv"
	"github.com/danmuck/dutctl/internal/testutil/testlog"
)

func TestRoundTripEncodeDecode(t *testing.T) {
	testlog.Start(t)
	msg := Message{
		Version:       Version,
		Type:          schema.MsgAPConfigure,
		CorrelationID: 0x0102,
		Params: NewParams(
			Param{Tag: schema.TagSSID, Value: "QuickTrack"},
			Param{Tag: schema.TagChannel, Value: "36"},
			Param{Tag: schema.TagWPAKeyMgmt, Value: "WPA-PSK SAE"},
		),
	}
	b, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b2, err := Encode(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(b, b2) {
		t.Fatalf("round-trip mismatch:\n%x\n%x", b, b2)
	}
	if decoded.CorrelationID != 0x0102 || decoded.Type != schema.MsgAPConfigure {
		t.Fatalf("unexpected header: %+v", decoded.Header())
	}
}

func TestEncodeHeaderLayout(t *testing.T) {
	testlog.Start(t)
	b, err := Encode(Message{Version: Version, Type: schema.MsgGetControlAppVersion, CorrelationID: 7})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x01, 0x50, 0x02, 0x00, 0x07, 0xFF, 0xFF}
	if !bytes.Equal(b, want) {
		t.Fatalf("unexpected header bytes %x", b)
	}
}

func TestRepeatedTagsAggregateInOrder(t *testing.T) {
	testlog.Start(t)
	fields := []tlv.Field{
		{Tag: uint16(schema.TagSSID), Value: []byte("a")},
		{Tag: uint16(schema.TagChannel), Value: []byte("6")},
		{Tag: uint16(schema.TagSSID), Value: []byte("b")},
	}
	body, err := tlv.EncodeFields(fields)
	if err != nil {
		t.Fatalf("encode fields: %v", err)
	}
	raw := append([]byte{0x01, 0x10, 0x02, 0x00, 0x01, 0xFF, 0xFF}, body...)
	msg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := msg.Params.Values(schema.TagSSID)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected aggregated [a b], got %v", got)
	}
	tags := msg.Params.Tags()
	if len(tags) != 2 || tags[0] != schema.TagSSID || tags[1] != schema.TagChannel {
		t.Fatalf("unexpected tag order %v", tags)
	}
	if msg.Params.Len() != 3 {
		t.Fatalf("expected 3 values, got %d", msg.Params.Len())
	}
}

func TestDecodeShortInputIsMalformed(t *testing.T) {
	testlog.Start(t)
	for n := 0; n < HeaderSize; n++ {
		_, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrMalformedMessage) {
			t.Fatalf("len=%d: expected ErrMalformedMessage, got %v", n, err)
		}
		var de *DecodeError
		if errors.As(err, &de) {
			t.Fatalf("len=%d: short input must not carry a header", n)
		}
	}
}

func TestDecodeUnknownTypeKeepsHeader(t *testing.T) {
	testlog.Start(t)
	_, err := Decode([]byte{0x01, 0x10, 0x07, 0x00, 0x2a, 0xFF, 0xFF})
	if !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("expected ErrUnknownMessageType, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Header.CorrelationID != 0x2a {
		t.Fatalf("expected DecodeError with correlation id, got %v", err)
	}
}

func TestDecodeTruncatedTLV(t *testing.T) {
	testlog.Start(t)
	raw := []byte{0x01, 0x10, 0x02, 0x00, 0x01, 0xFF, 0xFF, 0x00, 0x01, 0x05, 'a'}
	_, err := Decode(raw)
	if !errors.Is(err, ErrMalformedMessage) || !errors.Is(err, tlv.ErrShortFieldValue) {
		t.Fatalf("expected malformed short value, got %v", err)
	}
}

func TestDecodeTagRoleValidation(t *testing.T) {
	testlog.Start(t)
	// STATUS is a response tag; inside a command it is unknown.
	raw := []byte{0x01, 0x10, 0x02, 0x00, 0x01, 0xFF, 0xFF, 0xa0, 0x01, 0x01, '0'}
	_, err := Decode(raw)
	var ute *UnknownTagError
	if !errors.As(err, &ute) || ute.Tag != schema.TagStatus || !errors.Is(err, ErrUnknownTag) {
		t.Fatalf("expected UnknownTagError for STATUS, got %v", err)
	}

	reply, err := Encode(NewReply(schema.MsgResponse, 1, StatusSuccess, "ok"))
	if err != nil {
		t.Fatalf("encode reply: %v", err)
	}
	msg, err := Decode(reply)
	if err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if v, _ := msg.Params.Get(schema.TagStatus); v != "0" {
		t.Fatalf("unexpected status %q", v)
	}
}

func TestDecodeStripsLeadingNul(t *testing.T) {
	testlog.Start(t)
	raw := []byte{0x01, 0x10, 0x02, 0x00, 0x01, 0xFF, 0xFF, 0x00, 0x02, 0x03, 0x00, '3', '6'}
	msg, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v, _ := msg.Params.Get(schema.TagChannel); v != "36" {
		t.Fatalf("expected stripped value, got %q", v)
	}
}

func TestEncodeRejectsLongValueAndUnknownType(t *testing.T) {
	testlog.Start(t)
	long := Message{Type: schema.MsgAPConfigure, Params: NewParams(Param{Tag: schema.TagSSID, Value: strings.Repeat("x", 256)})}
	if _, err := Encode(long); !errors.Is(err, ErrValueTooLong) {
		t.Fatalf("expected ErrValueTooLong, got %v", err)
	}
	if _, err := Encode(Message{Type: schema.MessageType(0x4242)}); !errors.Is(err, ErrUnknownMessageType) {
		t.Fatalf("expected ErrUnknownMessageType, got %v", err)
	}
}

func TestRoundTripKeepsVersionByte(t *testing.T) {
	testlog.Start(t)
	for _, v := range []uint8{0x00, Version, 0x7f} {
		msg := Message{Version: v, Type: schema.MsgAPStop, CorrelationID: 3}
		b, err := Encode(msg)
		if err != nil {
			t.Fatalf("encode v%d: %v", v, err)
		}
		if b[0] != v {
			t.Fatalf("version byte = 0x%02x want 0x%02x", b[0], v)
		}
		got, err := Decode(b)
		if err != nil {
			t.Fatalf("decode v%d: %v", v, err)
		}
		if got.Header() != msg.Header() || got.Params.Len() != 0 {
			t.Fatalf("round-trip v%d: %+v", v, got)
		}
	}
}

func TestDecodeRejectsInvalidUTF8(t *testing.T) {
	testlog.Start(t)
	raw := []byte{0x01, 0x10, 0x02, 0x00, 0x09, 0xFF, 0xFF, 0x00, 0x01, 0x02, 0xc3, 0x28}
	_, err := Decode(raw)
	if !errors.Is(err, ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) || de.Header.CorrelationID != 9 {
		t.Fatalf("expected DecodeError carrying the header, got %v", err)
	}

	ok := []byte{0x01, 0x10, 0x02, 0x00, 0x09, 0xFF, 0xFF, 0x00, 0x01, 0x02, 0xc3, 0xa9}
	msg, err := Decode(ok)
	if err != nil {
		t.Fatalf("decode utf-8: %v", err)
	}
	if v, _ := msg.Params.Get(schema.TagSSID); v != "é" {
		t.Fatalf("value = %q", v)
	}
}
