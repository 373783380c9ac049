package render

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RenderFixed32 renders a 32-bit field as hex / signed int32 / float32.
func RenderFixed32(v uint32) string {
	return fmt.Sprintf("0x%08X / %d / %s", v, int32(v), formatFloat(float64(math.Float32frombits(v)), 32))
}

// RenderFixed64 renders a 64-bit field as hex / signed int64 / float64.
func RenderFixed64(v uint64) string {
	return fmt.Sprintf("0x%016X / %d / %s", v, int64(v), formatFloat(math.Float64frombits(v), 64))
}

// RenderFixed renders 4 or 8 little-endian bytes. It reports false for any
// other length.
func RenderFixed(b []byte) (string, bool) {
	switch len(b) {
	case 4:
		return RenderFixed32(binary.LittleEndian.Uint32(b)), true
	case 8:
		return RenderFixed64(binary.LittleEndian.Uint64(b)), true
	default:
		return "", false
	}
}

// formatFloat writes the shortest text that reads back as f at the given bit
// size, always signed. Magnitudes in [1e-4, 1e16) and zero are plain decimals
// with a fractional part; the rest use a compact exponent like +1e-7.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	var s string
	if a := math.Abs(f); a == 0 || (a >= 1e-4 && a < 1e16) {
		s = strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
	} else {
		s = compactExponent(strconv.FormatFloat(f, 'e', -1, bitSize))
	}

	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// compactExponent turns strconv's 1e-07 and 3.4e+38 into 1e-7 and 3.4e38.
func compactExponent(s string) string {
	mant, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mant + "e" + exp
}
