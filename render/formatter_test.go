package render

import (
	"regexp"
	"strings"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/protopeek/decode"
	"github.com/anirudhraja/protopeek/wire"
)

func mustBuild(t *testing.T, data []byte) decode.Tree {
	t.Helper()
	tree, err := decode.Build(data, decode.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

func TestFormat_Reports(t *testing.T) {
	var textFields []byte
	textFields = protowire.AppendTag(textFields, 1, protowire.BytesType)
	textFields = protowire.AppendString(textFields, "人类有三大欲望：饮食、繁殖、睡眠")
	textFields = protowire.AppendTag(textFields, 2, protowire.VarintType)
	textFields = protowire.AppendVarint(textFields, 114)
	textFields = protowire.AppendTag(textFields, 3, protowire.BytesType)
	textFields = protowire.AppendString(textFields, "李田所")

	var group []byte
	group = protowire.AppendTag(group, 10, protowire.StartGroupType)
	group = protowire.AppendTag(group, 10, protowire.Fixed32Type)
	group = append(group, 0x43, 0x43, 0x45, 0x53)
	group = protowire.AppendTag(group, 10, protowire.EndGroupType)

	var nested []byte
	nested = protowire.AppendTag(nested, 1, protowire.BytesType)
	nested = protowire.AppendBytes(nested, group)
	nested = protowire.AppendTag(nested, 2, protowire.BytesType)
	nested = protowire.AppendString(nested, "hello world")
	nested = protowire.AppendTag(nested, 3, protowire.VarintType)
	nested = protowire.AppendVarint(nested, 42)

	tests := []struct {
		name     string
		data     []byte
		expected []string
	}{
		{
			name: "text fields",
			data: textFields,
			expected: []string{
				"root:",
				`   1 <chunk> = "人类有三大欲望：饮食、繁殖、睡眠"`,
				"   2 <varint> = 114",
				`   3 <chunk> = "李田所"`,
			},
		},
		{
			name: "group inside nested message",
			data: nested,
			expected: []string{
				"root:",
				"   1 <chunk> = message:",
				"      10 <startgroup> = group (end 10)",
				"      10 <32bit> = 0x53454343 / 1397048131 / +847237000000.0",
				`   2 <chunk> = "hello world"`,
				"   3 <varint> = 42",
			},
		},
		{
			name:     "empty input",
			data:     nil,
			expected: []string{"root:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(mustBuild(t, tt.data))
			if expected := strings.Join(tt.expected, "\n"); got != expected {
				t.Errorf("Format mismatch:\n got:\n%s\nwant:\n%s", got, expected)
			}
		})
	}
}

func TestFormat_Values(t *testing.T) {
	tests := []struct {
		name     string
		node     decode.Node
		expected string
	}{
		{
			name:     "escaped string",
			node:     chunk(1, decode.Str{S: `say "hi" \o/`}),
			expected: `   1 <chunk> = "say \"hi\" \\o/"`,
		},
		{
			name:     "opaque bytes",
			node:     chunk(2, decode.Bytes{B: []byte{0xff, 0x00, 0x7f}}),
			expected: "   2 <chunk> = [255, 0, 127]",
		},
		{
			name:     "packed values",
			node:     chunk(3, decode.Packed{Width: 4, Values: []uint64{1, 4294967295}}),
			expected: "   3 <chunk> = [1, 4294967295]",
		},
		{
			name:     "empty message",
			node:     chunk(4, decode.Message{}),
			expected: "   4 <chunk> = message:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(decode.Tree{Nodes: []decode.Node{tt.node}})
			if expected := "root:\n" + tt.expected; got != expected {
				t.Errorf("Format mismatch:\n got %q\nwant %q", got, expected)
			}
		})
	}
}

func chunk(field wire.FieldNumber, v decode.Value) decode.Node {
	return decode.Node{
		Record: wire.Record{Field: field, Type: wire.WireBytes},
		Value:  v,
	}
}

func TestFormat_GroupsStayFlat(t *testing.T) {
	// Group 10 wraps field 11; the closing marker prints nothing.
	data := []byte{0x53, 0x58, 0x01, 0x54, 0x60, 0x02}
	expected := strings.Join([]string{
		"root:",
		"   10 <startgroup> = group (end 10)",
		"   11 <varint> = 1",
		"   12 <varint> = 2",
	}, "\n")

	if got := Format(mustBuild(t, data)); got != expected {
		t.Errorf("Format mismatch:\n got:\n%s\nwant:\n%s", got, expected)
	}
}

func TestFormat_Indent(t *testing.T) {
	data := []byte{0x0a, 0x03, 0x08, 0x96, 0x01}
	expected := "root:\n  1 <chunk> = message:\n    1 <varint> = 150"

	if got := Format(mustBuild(t, data), WithIndent(2)); got != expected {
		t.Errorf("Format mismatch:\n got %q\nwant %q", got, expected)
	}
	if got := Format(mustBuild(t, data), WithIndent(0)); !strings.Contains(got, "\n   1 <chunk>") {
		t.Errorf("non-positive indent should keep the default, got %q", got)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestFormat_Color(t *testing.T) {
	var data []byte
	data = protowire.AppendTag(data, 1, protowire.BytesType)
	data = protowire.AppendString(data, "hello world")
	data = protowire.AppendTag(data, 2, protowire.VarintType)
	data = protowire.AppendVarint(data, 7)
	tree := mustBuild(t, data)

	plain := Format(tree)
	colored := Format(tree, WithColor())

	if !strings.Contains(colored, "\x1b[34;1m1") {
		t.Errorf("field numbers should be bold blue: %q", colored)
	}
	if !strings.Contains(colored, "\x1b[32m\"hello world\"") {
		t.Errorf("strings should be green: %q", colored)
	}
	if stripped := ansi.ReplaceAllString(colored, ""); stripped != plain {
		t.Errorf("colored output differs from plain once stripped:\n got %q\nwant %q", stripped, plain)
	}
}
