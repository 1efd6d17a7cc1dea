package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
	"time"

	"github.com/marcelocantos/sift/internal/atom"
	"github.com/marcelocantos/sift/internal/config"
	"github.com/marcelocantos/sift/internal/program"
	"github.com/marcelocantos/sift/internal/trace"
)

// Run parses and executes a program: sift [flags] ATOM [ARG...] ...
// Configuration errors (bad keyword, arity, regex, selector, template,
// config file) exit 1 before any input line is read; runtime I/O errors
// exit 2 and leave already-emitted lines in place.
func Run(ctx context.Context, opts *RootOptions, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "sift: missing program (try 'sift list')")
		return 1
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFrom(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "sift: config: %v\n", err)
		return 1
	}

	reg := atom.Default()
	if err := cfg.Validate(reg); err != nil {
		fmt.Fprintf(stderr, "sift: config: %v\n", err)
		return 1
	}

	tokens, err := cfg.ExpandMacros(reg, args)
	if err != nil {
		fmt.Fprintf(stderr, "sift: %v\n", err)
		return 1
	}

	prog, err := program.Parse(tokens, reg)
	if err != nil {
		fmt.Fprintf(stderr, "sift: %v\n", err)
		return 1
	}

	logger := openTrace(opts, cfg, stderr)
	defer logger.Close()
	if h := logger.Hook(); h != nil {
		prog.SetHook(h)
	}

	in := stdin
	source := "stdin"
	if opts.File != "" {
		f, err := os.Open(opts.File)
		if err != nil {
			fmt.Fprintf(stderr, "sift: %v\n", err)
			return 2
		}
		defer f.Close()
		in = f
		source = opts.File
	}

	start := time.Now()
	stats, err := prog.Execute(ctx, in, stdout)
	duration := time.Since(start)

	code, errMsg := resolveError(err, stderr)
	logger.Run(tokens, prog.AtomNames(), source, stats, code, errMsg, duration)
	return code
}

// resolveError maps an execution error to an exit code. A broken pipe on the
// sink means the reader went away (sift ... | head); that is a normal end of
// output, not a failure.
func resolveError(err error, stderr io.Writer) (exitCode int, errMsg string) {
	if err == nil {
		return 0, ""
	}
	if errors.Is(err, syscall.EPIPE) {
		return 0, ""
	}
	fmt.Fprintf(stderr, "sift: %v\n", err)
	return 2, err.Error()
}

// openTrace opens the trace log when enabled by flag or config. Tracing is
// best effort: failures are reported and the run continues without it.
func openTrace(opts *RootOptions, cfg *config.Config, stderr io.Writer) *trace.Logger {
	path := opts.TracePath
	if path == "" {
		path = cfg.Trace.Path
	}
	if path == "" {
		return nil
	}
	level := opts.TraceLevel
	if level == "" {
		level = cfg.Trace.Level
	}
	logger, err := trace.New(path, level)
	if err != nil {
		fmt.Fprintf(stderr, "sift: trace: %v\n", err)
		return nil
	}
	return logger
}
