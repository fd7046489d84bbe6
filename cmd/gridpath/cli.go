package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// parse turns args into a Config. Precedence is defaults, then the -config
// file, then flags given explicitly on the command line. The bool result
// reports a clean exit (help was printed).
func parse(args []string, out io.Writer) (Config, bool, error) {
	def := DefaultConfig()
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
gridpath - best-first path search on weighted grid graphs.

Usage:
  gridpath [options] [GRAPH_FILE]

Arguments:
  GRAPH_FILE
    Optional HCL graph file. Without it a random grid is generated.

Options:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a YAML run configuration.")
	graph := fs.String("graph", "", "Path to an HCL graph file.")
	width := fs.Int("width", def.Width, "Generated grid width.")
	height := fs.Int("height", def.Height, "Generated grid height.")
	seed := fs.Int64("seed", def.Seed, "Seed for the grid generator.")
	export := fs.String("export", "", "Write the graph as HCL to this path.")
	trace := fs.Bool("trace", def.Trace, "Print every search decision.")
	verify := fs.Bool("verify", def.Verify, "Cross-check the result with Dijkstra and gonum.")
	maxIter := fs.Int("max-iterations", def.MaxIterations, "Abort after this many expansions. 0 is unbounded.")
	logLevel := fs.String("log-level", def.LogLevel, "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", def.LogFormat, "Log output format: 'text' or 'json'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return def, true, nil
		}
		return def, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.Graph = *graph
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "seed":
			cfg.Seed = *seed
		case "export":
			cfg.Export = *export
		case "trace":
			cfg.Trace = *trace
		case "verify":
			cfg.Verify = *verify
		case "max-iterations":
			cfg.MaxIterations = *maxIter
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if fs.NArg() > 0 && cfg.Graph == "" {
		cfg.Graph = fs.Arg(0)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return cfg, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
