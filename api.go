// Package protopeek decodes protobuf messages without a schema and renders
// them as an indented text report.
//
//	out, err := protopeek.Parse(data)
//
// Every length-delimited field is classified as an embedded message, text,
// a packed numeric array or opaque bytes, whichever reading is most
// plausible. Field names cannot be recovered; fields are shown by number.
package protopeek

import (
	"github.com/anirudhraja/protopeek/decode"
	"github.com/anirudhraja/protopeek/render"
)

// Protopeek decodes and renders with a fixed Config.
type Protopeek struct {
	cfg Config
}

// New creates a new Protopeek instance
func New(cfg Config) *Protopeek {
	return &Protopeek{cfg: cfg}
}

// Config returns the configuration p was created with.
func (p *Protopeek) Config() Config { return p.cfg }

// ParseTree decodes data into a tree without rendering it. Errors are
// *wire.DecodeError.
func (p *Protopeek) ParseTree(data []byte) (decode.Tree, error) {
	return decode.Build(data, p.cfg.DecodeOptions())
}

// Format renders a decoded tree.
func (p *Protopeek) Format(t decode.Tree) string {
	return render.Format(t, p.cfg.FormatOptions()...)
}

// Parse decodes data and renders it. On error no text is returned.
func (p *Protopeek) Parse(data []byte) (string, error) {
	tree, err := p.ParseTree(data)
	if err != nil {
		return "", err
	}
	return p.Format(tree), nil
}

// Parse decodes data with DefaultConfig - main entry point
func Parse(data []byte) (string, error) {
	return New(DefaultConfig()).Parse(data)
}
