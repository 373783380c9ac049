package decode

import (
	"fmt"
	"strings"
)

// TieBreak decides between a span that parses as a message and also reads
// as valid UTF-8 text.
type TieBreak int

const (
	// TieBreakOpaque keeps the message unless every field it recovers is
	// opaque bytes, in which case the text wins.
	TieBreakOpaque TieBreak = iota
	// TieBreakScored also lets printable text win over a message reading
	// whose validity score marks it as implausible.
	TieBreakScored
)

func (t TieBreak) String() string {
	switch t {
	case TieBreakOpaque:
		return "opaque"
	case TieBreakScored:
		return "scored"
	default:
		return fmt.Sprintf("tiebreak(%d)", int(t))
	}
}

// ParseTieBreak maps a policy name to its TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "opaque":
		return TieBreakOpaque, nil
	case "scored":
		return TieBreakScored, nil
	default:
		return 0, fmt.Errorf("unknown tie-break policy %q (want opaque or scored)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TieBreak) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TieBreak) UnmarshalText(text []byte) error {
	v, err := ParseTieBreak(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Options bound and steer a Build.
type Options struct {
	// MaxDepth caps message nesting; Build reports ErrDepthExceeded past it.
	// Non-positive disables the cap.
	MaxDepth int
	// MaxRecords caps the records framed in any single span. Non-positive
	// disables the cap.
	MaxRecords int
	TieBreak   TieBreak
}

const (
	DefaultMaxDepth   = 64
	DefaultMaxRecords = 1 << 20
)

// DefaultOptions returns the options used by Build callers that have no
// configuration of their own.
func DefaultOptions() Options {
	return Options{
		MaxDepth:   DefaultMaxDepth,
		MaxRecords: DefaultMaxRecords,
		TieBreak:   TieBreakOpaque,
	}
}
