package wire

import (
	"errors"
	"fmt"
)

// Decoder handles low-level protobuf wire format decoding over one span.
// It never copies: every Record payload aliases buf.
type Decoder struct {
	buf        []byte
	pos        int
	maxRecords int

	minimalVarints bool
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// NewDecoderWithLimit creates a decoder that fails with ErrTooManyRecords once
// more than maxRecords records have been read. A non-positive limit disables
// the check.
func NewDecoderWithLimit(data []byte, maxRecords int) *Decoder {
	return &Decoder{
		buf:        data,
		pos:        0,
		maxRecords: maxRecords,
	}
}

// RequireMinimalVarints makes the decoder reject varints with redundant
// trailing zero groups, such as 0x81 0x00 for 1. Encoders never produce
// them, so a span holding one is unlikely to be a message.
func (d *Decoder) RequireMinimalVarints() *Decoder {
	d.minimalVarints = true
	return d
}

// ReadRecords frames data into records - main entry point
func ReadRecords(data []byte) ([]Record, error) {
	return NewDecoder(data).ReadAll()
}

// Pos returns the current cursor offset.
func (d *Decoder) Pos() int { return d.pos }

// Done reports whether the cursor reached the end of the span.
func (d *Decoder) Done() bool { return d.pos >= len(d.buf) }

// ReadAll reads records until the span is exhausted. It succeeds only when
// the cursor lands exactly on the end of the span.
func (d *Decoder) ReadAll() ([]Record, error) {
	var records []Record
	for !d.Done() {
		if d.maxRecords > 0 && len(records) >= d.maxRecords {
			return nil, newDecodeError(ErrTooManyRecords, d.pos, 0,
				fmt.Sprintf("limit is %d", d.maxRecords))
		}
		rec, err := d.ReadRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadRecord decodes a single record from the current position
func (d *Decoder) ReadRecord() (Record, error) {
	start := d.pos
	tag, err := d.DecodeVarint()
	if err != nil {
		return Record{}, err
	}

	num, wireType := ParseTag(Tag(tag))
	if !wireType.Valid() {
		return Record{}, newDecodeError(ErrInvalidWireType, start, clampField(num),
			fmt.Sprintf("wire type %d", wireType))
	}
	if num < uint64(MinFieldNumber) || num > uint64(MaxFieldNumber) {
		return Record{}, newDecodeError(ErrInvalidFieldNumber, start, 0,
			fmt.Sprintf("field number %d", num))
	}
	field := FieldNumber(num)

	payload, err := d.readPayload(wireType)
	if err != nil {
		return Record{}, withField(err, field)
	}

	return Record{
		Field:   field,
		Type:    wireType,
		Offset:  start,
		Payload: payload,
	}, nil
}

// readPayload reads the payload that follows a tag of the given wire type
func (d *Decoder) readPayload(wireType WireType) ([]byte, error) {
	switch wireType {
	case WireVarint:
		vd := NewVarintDecoder(d)
		_, raw, err := vd.DecodeRawVarint()
		return raw, err
	case WireFixed64:
		fd := NewFixedDecoder(d)
		return fd.raw(8)
	case WireBytes:
		bd := NewBytesDecoder(d)
		return bd.DecodeRawBytes()
	case WireFixed32:
		fd := NewFixedDecoder(d)
		return fd.raw(4)
	case WireStartGroup, WireEndGroup:
		return nil, nil
	default:
		return nil, newDecodeError(ErrInvalidWireType, d.pos, 0, fmt.Sprintf("wire type %d", wireType))
	}
}

func withField(err error, field FieldNumber) error {
	var de *DecodeError
	if errors.As(err, &de) && de.Field == 0 {
		out := *de
		out.Field = field
		return &out
	}
	return err
}

// clampField keeps an out-of-range field number out of error reports.
func clampField(num uint64) FieldNumber {
	if num > uint64(MaxFieldNumber) {
		return 0
	}
	return FieldNumber(num)
}
