// Package main is the shape command: it groups and orders JSON records as
// declared by a plan file.
//
//	shape -plan plan.yaml -input people.json -path data.people -output yaml
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-shaping-utils/arr"
	"github.com/hasbyte1/go-shaping-utils/plan"
	"github.com/hasbyte1/go-shaping-utils/render"
)

// Version information (set at build time).
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

// cliFlags holds command line flags.
type cliFlags struct {
	planPath    string
	inputPath   string
	path        string
	output      string
	logLevel    string
	logFormat   string
	digest      bool
	stringify   bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if flags.showVersion {
		printVersion(stdout)
		return 0
	}

	logger, err := initLogger(flags, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if err := execute(flags, stdin, stdout, logger); err != nil {
		logger.Error("shape failed", zap.Error(err))
		return 1
	}
	return 0
}

// parseFlags parses command line flags.
func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var flags cliFlags
	fs := flag.NewFlagSet("shape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.planPath, "plan", getEnvOrDefault("SHAPE_PLAN", "plan.yaml"),
		"Path to the plan file")
	fs.StringVar(&flags.inputPath, "input", "-",
		"Path to the JSON input, - for stdin")
	fs.StringVar(&flags.path, "path", "",
		"gjson path of the record array inside the input")
	fs.StringVar(&flags.output, "output", getEnvOrDefault("SHAPE_OUTPUT", formatJSON),
		"Output format (json, yaml)")
	fs.StringVar(&flags.logLevel, "log-level", getEnvOrDefault("SHAPE_LOG_LEVEL", "info"),
		"Log level (debug, info, warn, error)")
	fs.StringVar(&flags.logFormat, "log-format", getEnvOrDefault("SHAPE_LOG_FORMAT", "console"),
		"Log format (json, console)")
	fs.BoolVar(&flags.digest, "digest", false, "Print the BLAKE2b-256 digest of the output instead of the output")
	fs.BoolVar(&flags.stringify, "stringify", false, "Render every record value as a string")
	fs.BoolVar(&flags.showVersion, "version", false, "Show version information")

	err := fs.Parse(args)
	return flags, err
}

// printVersion prints version information.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "shape version %s\n", version)
	fmt.Fprintf(w, "  Build time: %s\n", buildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", gitCommit)
}

// initLogger builds a zap logger writing to w.
func initLogger(flags cliFlags, w io.Writer) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(flags.logLevel)); err != nil {
		return nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	}

	var encoder zapcore.Encoder
	switch flags.logFormat {
	case "console":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unknown log format %q", flags.logFormat)
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level)), nil
}

// execute loads the plan, runs it over the input and writes the result.
func execute(flags cliFlags, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	if flags.output != formatJSON && flags.output != formatYAML {
		return fmt.Errorf("%w: %q", errUnknownFormat, flags.output)
	}

	p, err := plan.Load(flags.planPath)
	if err != nil {
		return err
	}
	compiled, err := p.Compile()
	if err != nil {
		return err
	}

	data, err := readInput(flags.inputPath, stdin)
	if err != nil {
		return err
	}
	records, err := decodeRecords(data, flags.path)
	if err != nil {
		return err
	}
	logger.Info("input loaded",
		zap.String("plan", flags.planPath),
		zap.String("input", flags.inputPath),
		zap.Int("records", len(records)),
	)

	res := plan.NewRunner(plan.WithLogger(logger)).Run(compiled, records)
	if flags.stringify {
		for _, rec := range res.Records {
			arr.Stringify(rec)
		}
	}
	out, err := encode(res, flags.output)
	if err != nil {
		return err
	}

	if flags.digest {
		_, err = fmt.Fprintln(stdout, render.Digest(out))
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// encode renders groups with package render, or the plain ordered records
// when the plan does not group.
func encode(res plan.Result, format string) ([]byte, error) {
	if res.Grouped() {
		if format == formatYAML {
			return render.YAML(res.Groups)
		}
		out, err := render.JSON(res.Groups)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}

	records := res.Records
	if records == nil {
		records = []plan.Record{}
	}
	if format == formatYAML {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	out, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return append(out, '\n'), nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
