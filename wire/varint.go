package wire

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// VarintEncoder handles varint encoding operations
type VarintEncoder struct {
	encoder *Encoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// NewVarintEncoder creates a new varint encoder
func NewVarintEncoder(e *Encoder) *VarintEncoder {
	return &VarintEncoder{encoder: e}
}

// DECODER METHODS

// DecodeVarint decodes a varint from the current position
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	v, _, err := vd.decodeRaw()
	return v, err
}

// DecodeRawVarint decodes a varint and also returns the bytes it occupied.
func (vd *VarintDecoder) DecodeRawVarint() (uint64, []byte, error) {
	return vd.decodeRaw()
}

func (vd *VarintDecoder) decodeRaw() (uint64, []byte, error) {
	d := vd.decoder
	start := d.pos
	v, n := protowire.ConsumeVarint(d.buf[d.pos:])
	if n < 0 {
		return 0, nil, varintError(n, start)
	}
	if d.minimalVarints && n > 1 && d.buf[start+n-1] == 0 {
		return 0, nil, newDecodeError(ErrInvalidVarint, start, 0, "non-minimal varint")
	}
	d.pos += n
	return v, d.buf[start:d.pos], nil
}

// varintError maps a negative protowire length code. -1 is truncation;
// anything else is an over-long or overflowing encoding.
func varintError(code, offset int) error {
	if code == -1 {
		return newDecodeError(ErrUnexpectedEOF, offset, 0, "truncated varint")
	}
	return newDecodeError(ErrInvalidVarint, offset, 0, protowire.ParseError(code).Error())
}

// ENCODER METHODS

// EncodeVarint encodes a uint64 as varint
func (ve *VarintEncoder) EncodeVarint(v uint64) {
	ve.encoder.buf = protowire.AppendVarint(ve.encoder.buf, v)
}

// EncodeTag encodes a field tag
func (ve *VarintEncoder) EncodeTag(fieldNumber FieldNumber, wireType WireType) {
	ve.encoder.buf = protowire.AppendTag(ve.encoder.buf, protowire.Number(fieldNumber), protowire.Type(wireType))
}

// Convenience methods for direct access (maintains backward compatibility)

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	vd := NewVarintDecoder(d)
	return vd.DecodeVarint()
}

// EncodeVarint - convenience method for main encoder
func (e *Encoder) EncodeVarint(v uint64) {
	ve := NewVarintEncoder(e)
	ve.EncodeVarint(v)
}
