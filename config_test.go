package protopeek

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anirudhraja/protopeek/decode"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "protopeek.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.Indent)
	require.Equal(t, decode.DefaultOptions(), cfg.DecodeOptions())
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
indent = 2
tie_break = "scored"
color = true
`)
	cfg, err := LoadConfigFile(path, DefaultConfig())
	require.NoError(t, err)

	expected := DefaultConfig()
	expected.Indent = 2
	expected.TieBreak = decode.TieBreakScored
	expected.Color = true
	require.Equal(t, expected, cfg)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "indnet = 2\n")
		_, err := LoadConfigFile(path, DefaultConfig())
		require.ErrorContains(t, err, "unknown keys indnet")
	})

	t.Run("bad tie-break", func(t *testing.T) {
		path := writeConfig(t, `tie_break = "random"`)
		_, err := LoadConfigFile(path, DefaultConfig())
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.toml"), DefaultConfig())
		require.Error(t, err)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PROTOPEEK_INDENT", "4")
	t.Setenv("PROTOPEEK_MAX_DEPTH", " 8 ")
	t.Setenv("PROTOPEEK_TIE_BREAK", "Scored")
	t.Setenv("PROTOPEEK_COLOR", "1")

	cfg, err := ConfigFromEnv(DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Indent)
	require.Equal(t, 8, cfg.MaxDepth)
	require.Equal(t, decode.DefaultMaxRecords, cfg.MaxRecords)
	require.Equal(t, decode.TieBreakScored, cfg.TieBreak)
	require.True(t, cfg.Color)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("PROTOPEEK_MAX_RECORDS", "lots")
	_, err := ConfigFromEnv(DefaultConfig())
	require.ErrorContains(t, err, "PROTOPEEK_MAX_RECORDS")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"zero indent", func(c *Config) { c.Indent = 0 }, "indent"},
		{"wide indent", func(c *Config) { c.Indent = 17 }, "indent"},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, "max_depth"},
		{"negative records", func(c *Config) { c.MaxRecords = -1 }, "max_records"},
		{"unknown policy", func(c *Config) { c.TieBreak = 7 }, "tie-break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
