package tlv

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderLen is tag(2) + length(1).
const HeaderLen = 3

// MaxValueLen is the largest value a one-byte length can describe.
const MaxValueLen = 0xFF

var (
	ErrShortFieldHeader = errors.New("tlv: short field header")
	ErrShortFieldValue  = errors.New("tlv: short field value")
	ErrValueTooLong     = errors.New("tlv: value exceeds 255 bytes")
)

// Field is one decoded TLV field.
type Field struct {
	Tag   uint16
	Value []byte
}

func EncodeField(f Field) ([]byte, error) {
	if len(f.Value) > MaxValueLen {
		return nil, fmt.Errorf("%w: tag=0x%04x len=%d", ErrValueTooLong, f.Tag, len(f.Value))
	}
	buf := make([]byte, HeaderLen+len(f.Value))
	binary.BigEndian.PutUint16(buf[0:2], f.Tag)
	buf[2] = uint8(len(f.Value))
	copy(buf[HeaderLen:], f.Value)
	return buf, nil
}

func EncodeFields(fields []Field) ([]byte, error) {
	out := make([]byte, 0)
	for _, f := range fields {
		b, err := EncodeField(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeFields walks payload until exhausted. Tags are not validated here.
func DecodeFields(payload []byte) ([]Field, error) {
	fields := make([]Field, 0)
	i := 0
	for i < len(payload) {
		if len(payload)-i < HeaderLen {
			return nil, ErrShortFieldHeader
		}
		tag := binary.BigEndian.Uint16(payload[i : i+2])
		l := int(payload[i+2])
		i += HeaderLen
		if len(payload)-i < l {
			return nil, fmt.Errorf("%w: tag=0x%04x want=%d have=%d", ErrShortFieldValue, tag, l, len(payload)-i)
		}
		val := make([]byte, l)
		copy(val, payload[i:i+l])
		i += l
		fields = append(fields, Field{Tag: tag, Value: val})
	}
	return fields, nil
}

func GetField(fields []Field, tag uint16) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}
