// Package logging builds the leveled logfmt logger used by the command line
// tool. Library packages never log.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// EnvLogLevel overrides the default level when no flag sets one.
const EnvLogLevel = "PROTOPEEK_LOG_LEVEL"

// DefaultLevel is used when neither flag nor environment set a level.
const DefaultLevel = "warn"

// Levels lists the accepted level names.
var Levels = []string{"debug", "info", "warn", "error", "none"}

// New returns a logfmt logger on w that drops records below lvl.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, ok := parseLevel(lvl)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q (want one of %s)", lvl, strings.Join(Levels, ", "))
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, opt), nil
}

// Level picks the effective level name: flag first, then the environment,
// then DefaultLevel.
func Level(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return flag
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		return v
	}
	return DefaultLevel
}

func parseLevel(raw string) (level.Option, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return level.AllowDebug(), true
	case "info":
		return level.AllowInfo(), true
	case "warn", "warning":
		return level.AllowWarn(), true
	case "error":
		return level.AllowError(), true
	case "none", "off", "disabled":
		return level.AllowNone(), true
	default:
		return nil, false
	}
}
