package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/jsonschema"
	"github.com/reoring/schemadoc/source/gojson"
	"github.com/reoring/schemadoc/source/yaml"
)

// errIssuesFound is returned by a command after it printed shape issues.
var errIssuesFound = errors.New("schema issues found")

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

type options struct {
	inputFormat string
	jsonDriver  string
	dup         string
	unknown     string
	maxDepth    int
	maxBytes    int64
	failFast    bool
	verbose     bool
}

type app struct {
	opts   options
	decode jsonschema.DecodeOpt
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a := &app{stdin: stdin, stdout: stdout, log: log}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errIssuesFound):
		return 1
	default:
		log.Error(err)
		return 2
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "schemadoc",
		Short:         "Check, format and inspect JSON Schema documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.configure()
		},
	}
	f := root.PersistentFlags()
	f.StringVar(&a.opts.inputFormat, "input-format", formatAuto, "input format: json, yaml or auto")
	f.StringVar(&a.opts.jsonDriver, "json-driver", "go-json", "JSON token driver: go-json or encoding/json")
	f.StringVar(&a.opts.dup, "dup", "ignore", "duplicate key policy: ignore, warn or error")
	f.StringVar(&a.opts.unknown, "unknown", "preserve", "unknown keyword policy: preserve, strip or strict")
	f.IntVar(&a.opts.maxDepth, "max-depth", 0, "maximum nesting depth (0 = default, negative = unlimited)")
	f.Int64Var(&a.opts.maxBytes, "max-bytes", 0, "maximum input size in bytes (0 = unlimited)")
	f.BoolVar(&a.opts.failFast, "fail-fast", false, "stop at the first issue")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.checkCommand(), a.fmtCommand(), a.walkCommand(), a.lintCommand())
	return root
}

// configure turns the persistent flags into decode options.
func (a *app) configure() error {
	if a.opts.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}
	switch a.opts.jsonDriver {
	case "go-json":
		schemadoc.SetJSONDriver(gojson.Driver())
	case "encoding/json":
		schemadoc.UseDefaultJSONDriver()
	default:
		return fmt.Errorf("unknown --json-driver %q", a.opts.jsonDriver)
	}
	switch a.opts.inputFormat {
	case formatAuto, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown --input-format %q", a.opts.inputFormat)
	}

	var dup schemadoc.Severity
	switch a.opts.dup {
	case "ignore":
		dup = schemadoc.Ignore
	case "warn":
		dup = schemadoc.Warn
	case "error":
		dup = schemadoc.Error
	default:
		return fmt.Errorf("unknown --dup policy %q", a.opts.dup)
	}
	var unknown schemadoc.UnknownPolicy
	switch a.opts.unknown {
	case "preserve":
		unknown = schemadoc.UnknownPreserve
	case "strip":
		unknown = schemadoc.UnknownStrip
	case "strict":
		unknown = schemadoc.UnknownStrict
	default:
		return fmt.Errorf("unknown --unknown policy %q", a.opts.unknown)
	}

	a.decode = jsonschema.DecodeOpt{
		Parse: schemadoc.ParseOpt{
			Strictness: schemadoc.Strictness{OnDuplicateKey: dup},
			MaxDepth:   a.opts.maxDepth,
			MaxBytes:   a.opts.maxBytes,
			FailFast:   a.opts.failFast,
		},
		Unknown:  unknown,
		MaxDepth: a.opts.maxDepth,
	}
	a.log.WithFields(logrus.Fields{
		"driver":  schemadoc.CurrentJSONDriver().Name(),
		"dup":     dup,
		"unknown": unknown,
	}).Debug("configured")
	return nil
}

// read returns the contents of name, or of stdin for "-".
func (a *app) read(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(a.stdin)
	}
	return os.ReadFile(name)
}

// detectFormat picks the decoder for name. Extensions win; otherwise a
// document starting with '{' or '[' is JSON.
func (a *app) detectFormat(name string, data []byte) string {
	if a.opts.inputFormat != formatAuto {
		return a.opts.inputFormat
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return formatJSON
	case ".yaml", ".yml":
		return formatYAML
	}
	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return formatJSON
	}
	return formatYAML
}

// load reads and shape-validates one document. Shape issues are printed and
// reported as errIssuesFound; decoder warnings are logged.
func (a *app) load(ctx context.Context, name string) (*jsonschema.Schema, error) {
	data, err := a.read(name)
	if err != nil {
		return nil, err
	}
	format := a.detectFormat(name, data)
	a.log.WithFields(logrus.Fields{"file": name, "format": format, "bytes": len(data)}).Debug("loading schema")

	var src schemadoc.Source
	if format == formatYAML {
		src = yaml.NewBytes(data)
	} else {
		src = schemadoc.JSONBytes(data)
	}
	s, diag, err := jsonschema.Parse(ctx, src, a.decode)
	if diag != nil {
		for _, w := range diag.Issues() {
			a.log.WithFields(logrus.Fields{"file": name, "path": w.Path, "code": w.Code}).Warn(w.Message)
		}
	}
	if err != nil {
		iss, ok := schemadoc.AsIssues(err)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		a.printIssues(name, iss)
		return nil, errIssuesFound
	}
	return s, nil
}

func (a *app) printIssues(name string, iss schemadoc.Issues) {
	for _, is := range iss {
		fmt.Fprintf(a.stdout, "%s: %s\n", name, is)
	}
}
