package render

import (
	"fmt"
	"strings"
)

const hexDumpWidth = 24

// HexDump renders data as offset, hex and ASCII columns, 24 bytes per line.
// Bytes outside printable ASCII show as '.'.
func HexDump(data []byte) string {
	var sb strings.Builder
	for off := 0; off < len(data); off += hexDumpWidth {
		line := data[off:min(off+hexDumpWidth, len(data))]
		if off > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%04x   ", off)

		for i, b := range line {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02X", b)
		}
		sb.WriteString(strings.Repeat("   ", hexDumpWidth-len(line)))

		sb.WriteString("  ")
		for _, b := range line {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
