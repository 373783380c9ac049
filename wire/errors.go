package wire

import (
	"errors"
	"fmt"
)

// Decode error kinds. A *DecodeError always unwraps to one of these.
var (
	ErrUnexpectedEOF      = errors.New("unexpected EOF")
	ErrInvalidWireType    = errors.New("invalid wire type")
	ErrInvalidVarint      = errors.New("invalid varint")
	ErrInvalidFieldNumber = errors.New("invalid field number")
	ErrUnmatchedGroup     = errors.New("unmatched group")
	ErrDepthExceeded      = errors.New("nesting depth exceeded")
	ErrTooManyRecords     = errors.New("too many records")
)

// DecodeError reports where framing failed.
type DecodeError struct {
	Kind   error       // one of the Err* kinds above
	Offset int         // byte offset within the span being decoded
	Field  FieldNumber // field being read, 0 when the tag itself failed
	Detail string      // optional extra context
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
	if e.Field != 0 {
		msg += fmt.Sprintf(" (field %d)", e.Field)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the error kind.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}

// Is implements errors.Is for compatibility.
func (e *DecodeError) Is(target error) bool {
	_, ok := target.(*DecodeError)
	return ok
}

func newDecodeError(kind error, offset int, field FieldNumber, detail string) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Field: field, Detail: detail}
}
