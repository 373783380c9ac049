// Package render turns a decoded tree into the indented text report, plus
// the hex and fixed-width views the report is built from.
package render

import (
	"strconv"
	"strings"

	"github.com/anirudhraja/protopeek/decode"
)

// DefaultIndent is the number of spaces added per nesting level.
const DefaultIndent = 3

// Option configures a Formatter.
type Option func(*Formatter)

// WithColor paints field numbers, numbers and strings with ANSI colors.
func WithColor() Option {
	return func(f *Formatter) { f.style = colorStyle() }
}

// WithIndent sets the spaces per nesting level. Non-positive values are
// ignored.
func WithIndent(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.indent = n
		}
	}
}

// Formatter writes a decode.Tree in the report grammar:
//
//	root:
//	   1 <chunk> = message:
//	      1 <varint> = 150
//	   2 <chunk> = "text"
type Formatter struct {
	indent int
	style  style
}

// NewFormatter creates a formatter with the given options applied over the
// defaults: three-space indent, no color.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{indent: DefaultIndent, style: plainStyle()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders t with the given options - main entry point
func Format(t decode.Tree, opts ...Option) string {
	return NewFormatter(opts...).Format(t)
}

// Format renders t. Lines are joined by "\n" without a trailing newline.
func (f *Formatter) Format(t decode.Tree) string {
	var sb strings.Builder
	sb.WriteString("root:")
	f.writeNodes(&sb, t.Nodes, 1)
	return sb.String()
}

func (f *Formatter) writeNodes(sb *strings.Builder, nodes []decode.Node, depth int) {
	for _, n := range nodes {
		if _, ok := n.Value.(decode.GroupEnd); ok {
			continue
		}

		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", f.indent*depth))
		sb.WriteString(f.style.field(strconv.FormatInt(int64(n.Field), 10)))
		sb.WriteString(" <")
		sb.WriteString(n.Type.String())
		sb.WriteString("> = ")

		if m, ok := n.Value.(decode.Message); ok {
			sb.WriteString("message:")
			f.writeNodes(sb, m.Nodes, depth+1)
			continue
		}
		sb.WriteString(f.value(n.Value))
	}
}

func (f *Formatter) value(v decode.Value) string {
	switch v := v.(type) {
	case decode.Varint:
		return f.style.number(strconv.FormatUint(v.V, 10))
	case decode.Fixed32:
		return f.style.number(RenderFixed32(v.V))
	case decode.Fixed64:
		return f.style.number(RenderFixed64(v.V))
	case decode.GroupStart:
		return "group (end " + f.style.number(strconv.FormatInt(int64(v.End), 10)) + ")"
	case decode.Str:
		return f.style.text(quote(v.S))
	case decode.Bytes:
		values := make([]uint64, len(v.B))
		for i, b := range v.B {
			values[i] = uint64(b)
		}
		return f.style.number(list(values))
	case decode.Packed:
		return f.style.number(list(v.Values))
	default:
		return ""
	}
}

// quote wraps s in double quotes, escaping only '"' and '\'.
func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func list(values []uint64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
