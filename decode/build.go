package decode

import (
	"encoding/binary"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/protopeek/wire"
)

// Build decodes data as a root message - main entry point
//
// Any framing failure at the root is returned as a *wire.DecodeError; no
// partial tree is produced. Other failures inside length-delimited payloads
// never escape: they only steer how that payload is classified. The
// exception is a limit: a payload that frames as a message but nests past
// MaxDepth, or holds more than MaxRecords records, fails the whole Build with
// ErrDepthExceeded or ErrTooManyRecords at its offset in data.
func Build(data []byte, opts Options) (Tree, error) {
	b := newBuilder(data, opts)
	nodes, err := b.build(data, 0)
	if err != nil {
		return Tree{}, err
	}
	if b.limitErr != nil {
		return Tree{}, b.limitErr
	}
	return Tree{Nodes: nodes}, nil
}

// builder carries configuration plus the first limit hit by a reading that
// was kept. A failed speculative build changes nothing else.
type builder struct {
	opts     Options
	rootCap  int
	limitErr *wire.DecodeError
}

func newBuilder(root []byte, opts Options) *builder {
	return &builder{opts: opts, rootCap: cap(root)}
}

// build frames one span and decodes every record in it. Each recursive call
// works on a strict sub-span of its caller, so recursion always terminates.
// Nested spans must use minimal varints.
func (b *builder) build(data []byte, depth int) ([]Node, error) {
	d := wire.NewDecoderWithLimit(data, b.opts.MaxRecords)
	if depth > 0 {
		d.RequireMinimalVarints()
	}
	records, err := d.ReadAll()
	if err != nil {
		return nil, err
	}
	pairs, err := wire.MatchGroups(records)
	if err != nil {
		return nil, err
	}

	// Only a span that frames is cut short by the depth limit.
	if b.opts.MaxDepth > 0 && depth > b.opts.MaxDepth {
		return nil, &wire.DecodeError{
			Kind:   wire.ErrDepthExceeded,
			Detail: fmt.Sprintf("limit is %d", b.opts.MaxDepth),
		}
	}

	nodes := make([]Node, 0, len(records))
	for i, rec := range records {
		nodes = append(nodes, Node{
			Record: rec,
			Value:  b.value(records, pairs, i, depth),
		})
	}
	return nodes, nil
}

// noteLimit remembers err if it is a limit hit while framing span. Its
// offset is made absolute: payloads are sub-slices of the root, so the
// difference in capacity is the payload's position in it.
func (b *builder) noteLimit(span []byte, err error) {
	if b.limitErr != nil {
		return
	}
	var de *wire.DecodeError
	if !errors.As(err, &de) {
		return
	}
	if !errors.Is(de.Kind, wire.ErrDepthExceeded) && !errors.Is(de.Kind, wire.ErrTooManyRecords) {
		return
	}
	out := *de
	out.Offset += b.rootCap - cap(span)
	b.limitErr = &out
}

func (b *builder) value(records []wire.Record, pairs []int, i, depth int) Value {
	rec := records[i]
	switch rec.Type {
	case wire.WireVarint:
		// The reader already validated the encoding.
		v, _ := protowire.ConsumeVarint(rec.Payload)
		return Varint{V: v}
	case wire.WireFixed32:
		return Fixed32{V: binary.LittleEndian.Uint32(rec.Payload)}
	case wire.WireFixed64:
		return Fixed64{V: binary.LittleEndian.Uint64(rec.Payload)}
	case wire.WireStartGroup:
		return GroupStart{End: records[pairs[i]].Field}
	case wire.WireEndGroup:
		return GroupEnd{Start: records[pairs[i]].Field}
	default:
		return b.classify(rec.Payload, depth)
	}
}
