// Package logging builds zerolog loggers for fitreport and carries them,
// together with a per-command trace ID, through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables that override the configured logging settings.
const (
	EnvLogLevel  = "FITREPORT_LOG_LEVEL"
	EnvLogFormat = "FITREPORT_LOG_FORMAT"
)

// Output and format names accepted in Config.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	OutputStderr  = "stderr"
	OutputFile    = "file"
)

// Config describes how a logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// LogPathResult is the outcome of NewLoggerWithPath. When file output was
// requested but the file could not be opened, the logger falls back to
// stderr and FallbackUsed is set.
type LogPathResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *LogPathResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ParseLevel parses a zerolog level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// NewLogger builds a logger writing to w.
func NewLogger(cfg Config, w io.Writer) zerolog.Logger {
	if cfg.Format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		Hook(TraceHook{}).
		With().
		Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// NewLoggerWithPath builds a logger for cfg, opening cfg.File when file
// output is requested.
func NewLoggerWithPath(cfg Config) LogPathResult {
	if cfg.Output != OutputFile || cfg.File == "" {
		return LogPathResult{Logger: NewLogger(cfg, os.Stderr)}
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return LogPathResult{
			Logger:         NewLogger(cfg, os.Stderr),
			FallbackUsed:   true,
			FallbackReason: err.Error(),
		}
	}

	return LogPathResult{
		Logger:    NewLogger(cfg, f),
		UsingFile: true,
		FilePath:  cfg.File,
		file:      f,
	}
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		l := zerolog.Nop()
		return &l
	}
	return zerolog.Ctx(ctx)
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user file logging failed and stderr is used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
