package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestNew_Filters(t *testing.T) {
	tests := []struct {
		lvl      string
		expected []string
		dropped  []string
	}{
		{"debug", []string{"msg=d", "msg=i", "msg=w", "msg=e"}, nil},
		{"info", []string{"msg=i", "msg=w", "msg=e"}, []string{"msg=d"}},
		{"WARN", []string{"msg=w", "msg=e"}, []string{"msg=d", "msg=i"}},
		{"error", []string{"msg=e"}, []string{"msg=d", "msg=i", "msg=w"}},
		{"none", nil, []string{"msg=d", "msg=i", "msg=w", "msg=e"}},
	}

	for _, tt := range tests {
		t.Run(tt.lvl, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, tt.lvl)
			require.NoError(t, err)

			level.Debug(logger).Log("msg", "d")
			level.Info(logger).Log("msg", "i")
			level.Warn(logger).Log("msg", "w")
			level.Error(logger).Log("msg", "e")

			out := buf.String()
			for _, s := range tt.expected {
				require.Contains(t, out, s)
			}
			for _, s := range tt.dropped {
				require.NotContains(t, out, s)
			}
		})
	}
}

func TestNew_Logfmt(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "info")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "decoded", "size", "12 B")
	line := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(line, "ts="), line)
	require.Contains(t, line, `level=info msg=decoded size="12 B"`)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.ErrorContains(t, err, "unknown log level")
}

func TestLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	require.Equal(t, DefaultLevel, Level(""))

	t.Setenv(EnvLogLevel, "debug")
	require.Equal(t, "debug", Level(""))
	require.Equal(t, "error", Level("error"))
}
