package tlv

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeFieldsRoundTripPreservesOrder(t *testing.T) {
	in := []Field{
		{Tag: 0x0001, Value: []byte("QuickTrack")},
		{Tag: 0x000c, Value: []byte("WPA-PSK")},
		{Tag: 0x000c, Value: []byte("SAE")},
		{Tag: 0x9999, Value: []byte{0xAA, 0xBB}}, // unknown tag
	}
	b, err := EncodeFields(in)
	if err != nil {
		t.Fatalf("encode fields: %v", err)
	}
	out, err := DecodeFields(b)
	if err != nil {
		t.Fatalf("decode fields: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d fields, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i].Tag != in[i].Tag || !bytes.Equal(out[i].Value, in[i].Value) {
			t.Fatalf("field %d mismatch: got %+v want %+v", i, out[i], in[i])
		}
	}
}

func TestEncodeFieldWireLayout(t *testing.T) {
	b, err := EncodeField(Field{Tag: 0x0102, Value: []byte("ab")})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x01, 0x02, 0x02, 'a', 'b'}
	if !bytes.Equal(b, want) {
		t.Fatalf("unexpected layout: %x", b)
	}
}

func TestEncodeFieldRejectsOversizedValue(t *testing.T) {
	_, err := EncodeField(Field{Tag: 1, Value: []byte(strings.Repeat("x", 256))})
	if !errors.Is(err, ErrValueTooLong) {
		t.Fatalf("expected ErrValueTooLong, got %v", err)
	}
	if _, err := EncodeField(Field{Tag: 1, Value: []byte(strings.Repeat("x", 255))}); err != nil {
		t.Fatalf("255 bytes must encode: %v", err)
	}
}

func TestDecodeFieldsMalformedHeaderIsDeterministic(t *testing.T) {
	_, err := DecodeFields([]byte{1, 2})
	if !errors.Is(err, ErrShortFieldHeader) {
		t.Fatalf("expected ErrShortFieldHeader, got %v", err)
	}
}

func TestDecodeFieldsMalformedLengthIsDeterministic(t *testing.T) {
	// tag=1, len=5, value only 2 bytes
	payload := []byte{0, 1, 5, 'a', 'b'}
	_, err := DecodeFields(payload)
	if !errors.Is(err, ErrShortFieldValue) {
		t.Fatalf("expected ErrShortFieldValue, got %v", err)
	}
}

func TestDecodeFieldsZeroLengthValue(t *testing.T) {
	out, err := DecodeFields([]byte{0x00, 0xd3, 0x00})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Tag != 0x00d3 || len(out[0].Value) != 0 {
		t.Fatalf("unexpected fields: %+v", out)
	}
	if _, ok := GetField(out, 0x00d3); !ok {
		t.Fatalf("expected GetField hit")
	}
}
