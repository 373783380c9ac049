package decode

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/anirudhraja/protopeek/wire"
)

const (
	maxPlausibleChunk     = 500
	reservedFieldLow      = 19000
	reservedFieldHigh     = 19999
	maxControlRatio       = 0.05
	minPrintableRatio     = 0.8
	minPlausibleMagnitude = 1e-4
)

// messageScore counts how odd a message reading looks.
type messageScore struct {
	fields    int
	anomalies int
}

// implausible is true when more than half the fields look odd.
func (s messageScore) implausible() bool {
	return s.anomalies*2 > s.fields
}

// scoreMessage scores one level of a message reading. Anomalies are a
// fixed64 whose most significant byte is neither 0x00 nor 0xFF, an empty or
// very large chunk, a field number in the reserved range, and a field number
// reused with a different wire type.
func scoreMessage(nodes []Node) messageScore {
	var s messageScore
	seen := make(map[wire.FieldNumber]wire.WireType)

	for _, n := range nodes {
		if n.Type == wire.WireEndGroup {
			continue
		}
		s.fields++

		if n.Field >= reservedFieldLow && n.Field <= reservedFieldHigh {
			s.anomalies++
		}
		if n.Type != wire.WireStartGroup {
			if prev, ok := seen[n.Field]; ok && prev != n.Type {
				s.anomalies++
			} else if !ok {
				seen[n.Field] = n.Type
			}
		}

		switch n.Type {
		case wire.WireFixed64:
			if top := n.Value.(Fixed64).V >> 56; top != 0x00 && top != 0xFF {
				s.anomalies++
			}
		case wire.WireBytes:
			if l := len(n.Payload); l == 0 || l > maxPlausibleChunk {
				s.anomalies++
			}
		}
	}
	return s
}

// probablyText reports whether valid UTF-8 data reads like human text: few
// control characters and mostly printable runes.
func probablyText(data []byte) bool {
	total := utf8.RuneCount(data)
	if total == 0 {
		return false
	}

	var control, printable int
	for _, r := range string(data) {
		if (r < 0x20 && r != '\n' && r != '\t' && r != '\r') || r == 0x7f {
			control++
		}
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}

	if float64(control)/float64(total) > maxControlRatio {
		return false
	}
	return float64(printable)/float64(total) >= minPrintableRatio
}

// packedScore is the share of elements that look like a real number: a small
// signed integer (top byte 0x00 or 0xFF) or a normal float of sane magnitude.
// A 4-wide reading whose elements pair up into 64-bit values is halved.
func packedScore(p Packed) float64 {
	if len(p.Values) == 0 {
		return 0
	}

	plausible := 0
	for _, v := range p.Values {
		if plausibleElement(v, p.Width) {
			plausible++
		}
	}
	score := float64(plausible) / float64(len(p.Values))
	if p.Width == 4 && halvesLookWide(p.Values) {
		score /= 2
	}
	return score
}

func plausibleElement(v uint64, width int) bool {
	var top uint64
	var f float64
	if width == 4 {
		top = v >> 24
		f = float64(math.Float32frombits(uint32(v)))
	} else {
		top = v >> 56
		f = math.Float64frombits(v)
	}
	if top == 0x00 || top == 0xFF {
		return true
	}
	a := math.Abs(f)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if width == 4 {
		return a >= minPlausibleMagnitude && a < 1e9
	}
	return a >= minPlausibleMagnitude && a < 1e15
}

// halvesLookWide reports whether consecutive 32-bit values pair up into 64-bit
// ones: a high half that only sign-extends the low half, or a zero low half
// under a non-zero high half (a round double).
func halvesLookWide(values []uint64) bool {
	if len(values) < 2 || len(values)%2 != 0 {
		return false
	}
	nonzero := false
	for i := 0; i < len(values); i += 2 {
		lo, hi := values[i], values[i+1]
		signExtended := (hi == 0 && lo < 1<<31) || (hi == 0xFFFFFFFF && lo >= 1<<31)
		roundDouble := lo == 0 && hi != 0
		if !signExtended && !roundDouble {
			return false
		}
		if lo|hi != 0 {
			nonzero = true
		}
	}
	return nonzero
}
