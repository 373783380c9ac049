package wire

import "fmt"

// Encoder handles low-level protobuf wire format encoding
type Encoder struct {
	buf []byte
}

// NewEncoder creates a new wire format encoder
func NewEncoder() *Encoder {
	return &Encoder{
		buf: make([]byte, 0),
	}
}

// Bytes returns the encoded bytes
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Reset clears the encoder buffer
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// EncodeTag - convenience method for main encoder
func (e *Encoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	ve := NewVarintEncoder(e)
	ve.EncodeTag(fieldNumber, wireType)
}

// EncodeRecord appends rec in wire form. Payloads are written untouched, so a
// varint payload keeps whatever encoding it was read with.
func (e *Encoder) EncodeRecord(rec Record) error {
	switch rec.Type {
	case WireVarint:
		if len(rec.Payload) == 0 {
			return fmt.Errorf("field %d: empty varint payload", rec.Field)
		}
	case WireFixed32:
		if len(rec.Payload) != 4 {
			return fmt.Errorf("field %d: fixed32 payload has %d bytes", rec.Field, len(rec.Payload))
		}
	case WireFixed64:
		if len(rec.Payload) != 8 {
			return fmt.Errorf("field %d: fixed64 payload has %d bytes", rec.Field, len(rec.Payload))
		}
	case WireBytes, WireStartGroup, WireEndGroup:
	default:
		return fmt.Errorf("field %d: %w", rec.Field, ErrInvalidWireType)
	}

	e.EncodeTag(rec.Field, rec.Type)
	if rec.Type == WireBytes {
		e.EncodeBytes(rec.Payload)
		return nil
	}
	e.buf = append(e.buf, rec.Payload...)
	return nil
}

// EncodeRecords encodes a record stream - the inverse of ReadRecords
func EncodeRecords(records []Record) ([]byte, error) {
	encoder := NewEncoder()
	for _, rec := range records {
		if err := encoder.EncodeRecord(rec); err != nil {
			return nil, err
		}
	}
	return encoder.Bytes(), nil
}
