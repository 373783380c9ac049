package protopeek

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/anirudhraja/protopeek/decode"
	"github.com/anirudhraja/protopeek/render"
)

// Config controls decoding limits and output layout.
type Config struct {
	// Indent is the number of spaces per nesting level in the report.
	Indent int `toml:"indent"`

	// MaxDepth caps how deep embedded messages are followed. Parsing fails
	// with ErrDepthExceeded when a payload read as a message would nest deeper.
	MaxDepth int `toml:"max_depth"`

	// MaxRecords caps the records read from any one span, including the
	// payloads of embedded messages.
	MaxRecords int `toml:"max_records"`

	// TieBreak picks between a message and a text reading of the same
	// payload: "opaque" (default) or "scored".
	TieBreak decode.TieBreak `toml:"tie_break"`

	// Color paints the report with ANSI escapes.
	Color bool `toml:"color"`
}

// DefaultConfig returns the configuration used by Parse.
func DefaultConfig() Config {
	return Config{
		Indent:     render.DefaultIndent,
		MaxDepth:   decode.DefaultMaxDepth,
		MaxRecords: decode.DefaultMaxRecords,
		TieBreak:   decode.TieBreakOpaque,
	}
}

// LoadConfigFile overlays the keys set in a TOML file on base. Unknown keys
// are an error.
func LoadConfigFile(path string, base Config) (Config, error) {
	cfg := base
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ConfigFromEnv overlays the PROTOPEEK_* environment variables that are set
// on base.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	ints := []struct {
		name string
		dst  *int
	}{
		{"PROTOPEEK_INDENT", &cfg.Indent},
		{"PROTOPEEK_MAX_DEPTH", &cfg.MaxDepth},
		{"PROTOPEEK_MAX_RECORDS", &cfg.MaxRecords},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", e.name, err)
		}
		*e.dst = n
	}

	if v, ok := os.LookupEnv("PROTOPEEK_TIE_BREAK"); ok {
		if err := cfg.TieBreak.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse PROTOPEEK_TIE_BREAK: %w", err)
		}
	}
	if v := os.Getenv("PROTOPEEK_COLOR"); v == "1" || v == "true" {
		cfg.Color = true
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Indent < 1 || c.Indent > 16 {
		return fmt.Errorf("indent must be between 1 and 16, got %d", c.Indent)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.MaxRecords <= 0 {
		return fmt.Errorf("max_records must be positive, got %d", c.MaxRecords)
	}
	if c.TieBreak != decode.TieBreakOpaque && c.TieBreak != decode.TieBreakScored {
		return fmt.Errorf("unknown tie-break policy %s", c.TieBreak)
	}
	return nil
}

// DecodeOptions returns the decode settings of c.
func (c Config) DecodeOptions() decode.Options {
	return decode.Options{
		MaxDepth:   c.MaxDepth,
		MaxRecords: c.MaxRecords,
		TieBreak:   c.TieBreak,
	}
}

// FormatOptions returns the render settings of c.
func (c Config) FormatOptions() []render.Option {
	opts := []render.Option{render.WithIndent(c.Indent)}
	if c.Color {
		opts = append(opts, render.WithColor())
	}
	return opts
}
