// Package trace appends an optional JSONL log of sift runs. Tracing is best
// effort: a failure to open or write the log never fails the run, and trace
// output goes only to the configured file so the output stream stays clean.
package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/marcelocantos/sift/internal/atom"
	"github.com/marcelocantos/sift/internal/program"
)

// Logger writes run and verdict events to an append-only JSONL file.
// A nil *Logger is valid and silently discards everything.
type Logger struct {
	zl    zerolog.Logger
	f     *os.File
	debug bool
}

// New opens or creates a trace log at the given path. Level is "info"
// (one event per run) or "debug" (additionally one event per atom
// application).
func New(path, level string) (*Logger, error) {
	lvl := zerolog.InfoLevel
	switch level {
	case "", "info":
	case "debug":
		lvl = zerolog.DebugLevel
	default:
		return nil, fmt.Errorf("unknown trace level %q", level)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create trace dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open trace log: %w", err)
	}

	zl := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return &Logger{zl: zl, f: f, debug: lvl == zerolog.DebugLevel}, nil
}

// Hook returns a program hook emitting one debug event per atom application,
// or nil when per-line tracing is off so the hot loop skips the call.
func (l *Logger) Hook() program.Hook {
	if l == nil || !l.debug {
		return nil
	}
	return func(lineNo, pos int, name string, v atom.Verdict) {
		l.zl.Debug().
			Str("event", "verdict").
			Int("line", lineNo).
			Int("pos", pos).
			Str("atom", name).
			Str("verdict", v.Kind()).
			Bool("new_block", v.StartsBlock()).
			Send()
	}
}

// Run records the outcome of one invocation.
func (l *Logger) Run(tokens, atoms []string, source string, stats program.Stats, exitCode int, errMsg string, duration time.Duration) {
	if l == nil {
		return
	}
	ev := l.zl.Info().
		Str("event", "run").
		Strs("program", tokens).
		Strs("atoms", atoms).
		Str("source", source).
		Int("lines_read", stats.LinesRead).
		Int("lines_emitted", stats.LinesEmitted).
		Int("exit_code", exitCode).
		Float64("duration_ms", float64(duration.Microseconds())/1000.0)
	if errMsg != "" {
		ev = ev.Str("error", errMsg)
	}
	ev.Send()
}

// Close releases the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.f == nil {
		return nil
	}
	return l.f.Close()
}
