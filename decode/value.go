// Package decode turns a raw protobuf byte span into a tree of decoded
// fields without a schema, guessing the meaning of every length-delimited
// payload on the way down.
package decode

import "github.com/anirudhraja/protopeek/wire"

// Value is the decoded interpretation of one field. The set of
// implementations is closed: Varint, Fixed32, Fixed64, GroupStart, GroupEnd,
// Bytes, Str, Message and Packed.
type Value interface {
	isValue()
}

// Varint is a base-128 varint field.
type Varint struct{ V uint64 }

// Fixed32 is a 4-byte little-endian field.
type Fixed32 struct{ V uint32 }

// Fixed64 is an 8-byte little-endian field.
type Fixed64 struct{ V uint64 }

// GroupStart opens a group; End is the field number of the marker closing it.
type GroupStart struct{ End wire.FieldNumber }

// GroupEnd closes the group opened at field Start.
type GroupEnd struct{ Start wire.FieldNumber }

// Bytes is a length-delimited payload no better reading was found for.
type Bytes struct{ B []byte }

// Str is a length-delimited payload read as UTF-8 text.
type Str struct{ S string }

// Message is a length-delimited payload that parsed as an embedded message.
type Message struct{ Nodes []Node }

// Packed is a length-delimited payload read as a packed array of fixed-width
// numbers. Width is 4 or 8; each value holds the raw little-endian bits.
type Packed struct {
	Width  int
	Values []uint64
}

func (Varint) isValue()     {}
func (Fixed32) isValue()    {}
func (Fixed64) isValue()    {}
func (GroupStart) isValue() {}
func (GroupEnd) isValue()   {}
func (Bytes) isValue()      {}
func (Str) isValue()        {}
func (Message) isValue()    {}
func (Packed) isValue()     {}
