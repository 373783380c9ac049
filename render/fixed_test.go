package render

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		f        float64
		bitSize  int
		expected string
	}{
		{"one", 1, 64, "+1.0"},
		{"negative fraction", -2.5, 64, "-2.5"},
		{"zero", 0, 64, "+0.0"},
		{"negative zero", math.Copysign(0, -1), 64, "-0.0"},
		{"small plain", 0.0001, 64, "+0.0001"},
		{"tiny", 1e-7, 64, "+1e-7"},
		{"large", 1e16, 64, "+1e16"},
		{"float32 shortest", float64(float32(0.1)), 32, "+0.1"},
		{"float32 max", -math.MaxFloat32, 32, "-3.4028235e38"},
		{"nan", math.NaN(), 64, "NaN"},
		{"positive infinity", math.Inf(1), 64, "+inf"},
		{"negative infinity", math.Inf(-1), 32, "-inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFloat(tt.f, tt.bitSize); got != tt.expected {
				t.Errorf("formatFloat(%v, %d) = %q, expected %q", tt.f, tt.bitSize, got, tt.expected)
			}
		})
	}
}

func TestRenderFixed(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"float32 one", []byte{0x00, 0x00, 0x80, 0x3f}, "0x3F800000 / 1065353216 / +1.0"},
		{"int32 minus one", []byte{0xff, 0xff, 0xff, 0xff}, "0xFFFFFFFF / -1 / NaN"},
		{"float32 subnormal", []byte{0x01, 0x00, 0x00, 0x00}, "0x00000001 / 1 / +1e-45"},
		{"ascii bytes", []byte{0x43, 0x43, 0x45, 0x53}, "0x53454343 / 1397048131 / +847237000000.0"},
		{"double", []byte{0, 0, 0, 0, 0, 0, 0x04, 0xc0}, "0xC004000000000000 / -4610560118520545280 / -2.5"},
		{"int64 minus one", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "0xFFFFFFFFFFFFFFFF / -1 / NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RenderFixed(tt.data)
			if !ok {
				t.Fatalf("RenderFixed(%x) rejected its input", tt.data)
			}
			if got != tt.expected {
				t.Errorf("RenderFixed(%x) = %q, expected %q", tt.data, got, tt.expected)
			}
		})
	}

	if _, ok := RenderFixed([]byte{1, 2, 3}); ok {
		t.Errorf("RenderFixed should reject 3 bytes")
	}
}
