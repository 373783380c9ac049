package decode

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// Classify picks the most plausible reading of a length-delimited payload.
// It is total: every input, including an empty one, yields exactly one Value.
// A payload that would nest past the limits in opts is read as something
// other than a message; use Build to have that reported as an error.
//
// Candidates, first acceptable wins:
//  1. an embedded message (subject to the tie-break policy against text)
//  2. non-empty valid UTF-8 text
//  3. a packed array of 4- or 8-byte numbers
//  4. opaque bytes
func Classify(data []byte, opts Options) Value {
	return newBuilder(data, opts).classify(data, 0)
}

func (b *builder) classify(data []byte, depth int) Value {
	saved := b.limitErr
	nodes, err := b.build(data, depth+1)
	if err == nil {
		msg := Message{Nodes: nodes}
		if !b.preferText(data, msg) {
			return msg
		}
		// Limits hit inside a discarded reading do not count.
		b.limitErr = saved
		return Str{S: string(data)}
	}
	b.noteLimit(data, err)

	if isText(data) {
		return Str{S: string(data)}
	}
	if p, ok := readPacked(data); ok {
		return p
	}
	return Bytes{B: bytes.Clone(data)}
}

// preferText applies the tie-break policy to a span that parsed as msg.
func (b *builder) preferText(data []byte, msg Message) bool {
	if !isText(data) {
		return false
	}
	if allOpaque(msg.Nodes) {
		return true
	}
	if b.opts.TieBreak == TieBreakScored {
		return scoreMessage(msg.Nodes).implausible() && probablyText(data)
	}
	return false
}

func isText(data []byte) bool {
	return len(data) > 0 && utf8.Valid(data)
}

// allOpaque reports whether nothing meaningful was recovered from nodes:
// every field is opaque bytes, a group marker, or a message made only of
// those. An empty list is vacuously opaque.
func allOpaque(nodes []Node) bool {
	for _, n := range nodes {
		switch v := n.Value.(type) {
		case Bytes, GroupStart, GroupEnd:
		case Message:
			if !allOpaque(v.Nodes) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// readPacked reads data as a packed fixed-width array. Width 4 is the
// default; a span that is also a multiple of 8 is read 8 wide only when that
// reading scores strictly better.
func readPacked(data []byte) (Packed, bool) {
	if len(data) == 0 || len(data)%4 != 0 {
		return Packed{}, false
	}
	four := unpack(data, 4)
	if len(data)%8 == 0 {
		eight := unpack(data, 8)
		if packedScore(eight) > packedScore(four) {
			return eight, true
		}
	}
	return four, true
}

func unpack(data []byte, width int) Packed {
	values := make([]uint64, 0, len(data)/width)
	for off := 0; off < len(data); off += width {
		if width == 4 {
			values = append(values, uint64(binary.LittleEndian.Uint32(data[off:])))
		} else {
			values = append(values, binary.LittleEndian.Uint64(data[off:]))
		}
	}
	return Packed{Width: width, Values: values}
}
