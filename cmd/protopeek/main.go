// Command protopeek prints the structure of a protobuf message read from a
// file or stdin, without a schema.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/anirudhraja/protopeek"
	"github.com/anirudhraja/protopeek/decode"
	"github.com/anirudhraja/protopeek/internal/logging"
	"github.com/anirudhraja/protopeek/render"
	"github.com/anirudhraja/protopeek/wire"
)

const (
	exitOK          = 0
	exitDecodeError = 1
	exitUsage       = 2
)

type flags struct {
	configFile string
	file       string
	hexInput   bool
	hexDump    bool
	logLevel   string

	// Layered over the config file only when set on the command line.
	color       bool
	colorSet    bool
	indent      int
	indentSet   bool
	maxDepth    int
	maxDepthSet bool
	tieBreak    string
	tieBreakSet bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := kingpin.New("protopeek", "Print the structure of a protobuf message without a schema.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	var f flags
	app.Flag("config", "TOML config file.").StringVar(&f.configFile)
	app.Flag("color", "Color the output.").IsSetByUser(&f.colorSet).BoolVar(&f.color)
	app.Flag("hexdump", "Print a hex dump of the input before the report.").BoolVar(&f.hexDump)
	app.Flag("indent", "Spaces per nesting level.").IsSetByUser(&f.indentSet).IntVar(&f.indent)
	app.Flag("max-depth", "Maximum nesting depth of embedded messages.").IsSetByUser(&f.maxDepthSet).IntVar(&f.maxDepth)
	app.Flag("tie-break", "How to choose between a message and a text reading.").
		IsSetByUser(&f.tieBreakSet).EnumVar(&f.tieBreak, "opaque", "scored")
	app.Flag("hex", "Input is hex text; whitespace is ignored.").BoolVar(&f.hexInput)
	app.Flag("log.level", "Log level on stderr.").EnumVar(&f.logLevel, logging.Levels...)
	app.Arg("file", "Input file; - or nothing reads stdin.").StringVar(&f.file)

	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "protopeek: %v\n", err)
		return exitUsage
	}

	logger, err := logging.New(stderr, logging.Level(f.logLevel))
	if err != nil {
		fmt.Fprintf(stderr, "protopeek: %v\n", err)
		return exitUsage
	}

	cfg, err := loadConfig(f, logger)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		fmt.Fprintf(stderr, "protopeek: %v\n", err)
		return exitUsage
	}

	data, err := readInput(f.file, stdin, f.hexInput)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read input", "source", sourceName(f.file), "err", err)
		fmt.Fprintf(stderr, "protopeek: %v\n", err)
		return exitUsage
	}
	level.Debug(logger).Log("msg", "read input", "source", sourceName(f.file), "size", humanize.Bytes(uint64(len(data))))

	if f.hexDump && len(data) > 0 {
		fmt.Fprintln(stdout, render.HexDump(data))
		fmt.Fprintln(stdout)
	}

	p := protopeek.New(cfg)
	tree, err := p.ParseTree(data)
	if err != nil {
		logDecodeError(logger, err)
		fmt.Fprintf(stderr, "protopeek: %v\n", err)
		return exitDecodeError
	}
	logSummary(logger, tree)

	fmt.Fprintln(stdout, p.Format(tree))
	return exitOK
}

// loadConfig layers defaults, the config file, the environment and finally
// explicitly set flags.
func loadConfig(f flags, logger log.Logger) (protopeek.Config, error) {
	cfg := protopeek.DefaultConfig()
	source := "defaults"

	if f.configFile != "" {
		var err error
		if cfg, err = protopeek.LoadConfigFile(f.configFile, cfg); err != nil {
			return protopeek.Config{}, err
		}
		source = f.configFile
	}

	cfg, err := protopeek.ConfigFromEnv(cfg)
	if err != nil {
		return protopeek.Config{}, err
	}

	if f.colorSet {
		cfg.Color = f.color
	}
	if f.indentSet {
		cfg.Indent = f.indent
	}
	if f.maxDepthSet {
		cfg.MaxDepth = f.maxDepth
	}
	if f.tieBreakSet {
		if cfg.TieBreak, err = decode.ParseTieBreak(f.tieBreak); err != nil {
			return protopeek.Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return protopeek.Config{}, errors.Wrap(err, "invalid configuration")
	}
	level.Debug(logger).Log("msg", "loaded configuration", "source", source,
		"indent", cfg.Indent, "max_depth", cfg.MaxDepth, "tie_break", cfg.TieBreak)
	return cfg, nil
}

func logDecodeError(logger log.Logger, err error) {
	var de *wire.DecodeError
	if !errors.As(err, &de) {
		level.Error(logger).Log("msg", "decode failed", "err", err)
		return
	}
	level.Error(logger).Log("msg", "decode failed", "kind", de.Kind, "offset", de.Offset, "field", de.Field)
}

func logSummary(logger log.Logger, tree decode.Tree) {
	var fields, messages, maxDepth int
	tree.Walk(func(n decode.Node, depth int) {
		fields++
		if _, ok := n.Value.(decode.Message); ok {
			messages++
		}
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	level.Debug(logger).Log("msg", "decoded", "fields", humanize.Comma(int64(fields)),
		"messages", messages, "depth", maxDepth)
}
