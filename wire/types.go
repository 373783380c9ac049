package wire

import "fmt"

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int8

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated group start marker
	WireEndGroup   WireType = 4 // deprecated group end marker
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// Valid reports whether t is one of the six known wire types.
func (t WireType) Valid() bool {
	return t >= WireVarint && t <= WireFixed32
}

func (t WireType) String() string {
	switch t {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "64bit"
	case WireBytes:
		return "chunk"
	case WireStartGroup:
		return "startgroup"
	case WireEndGroup:
		return "endgroup"
	case WireFixed32:
		return "32bit"
	default:
		return fmt.Sprintf("wiretype(%d)", int8(t))
	}
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	MinFieldNumber FieldNumber = 1
	MaxFieldNumber FieldNumber = 1<<29 - 1
)

// Tag represents a protobuf field tag (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type. The field number is
// returned as uint64 so callers can reject values that overflow FieldNumber.
func ParseTag(tag Tag) (uint64, WireType) {
	return uint64(tag >> 3), WireType(tag & 0x7)
}

// Record is one field occurrence at a single nesting level.
//
// Payload borrows from the buffer handed to the decoder: raw varint bytes for
// WireVarint, the 4 or 8 little-endian bytes for fixed types, the contents
// (without the length prefix) for WireBytes and nil for group markers.
type Record struct {
	Field   FieldNumber
	Type    WireType
	Offset  int // offset of the tag within the decoded span
	Payload []byte
}
