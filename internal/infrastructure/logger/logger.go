// Package logger builds the zerolog loggers shared by the quote server and the
// cruisequote CLI.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal, panic)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is stamped on every entry as "service"
	ServiceName string `env:"SERVICE_NAME" envDefault:"cruise-quote"`
}

// DefaultConfig returns the server's logging defaults.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "cruise-quote",
	}
}

// Logger wraps zerolog.Logger with the fields the service tags entries with.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output. An unknown level falls
// back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	zctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		zctx = zctx.Caller()
	}

	return &Logger{Logger: zctx.Logger()}
}

// NewCLI returns the console logger the CLI writes to w, usually stderr.
// Only warnings and errors are shown unless verbose is set.
func NewCLI(w io.Writer, verbose bool) *Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return NewWithOutput(Config{
		Level:       level,
		Format:      "console",
		ServiceName: "cruisequote",
	}, w)
}

// From wraps an existing zerolog logger.
func From(l zerolog.Logger) *Logger {
	return &Logger{Logger: l}
}

// WithRequestID returns a logger whose entries carry request_id.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With().Str("request_id", requestID).Logger()}
}

// WithComponent returns a logger tagged with the emitting component
// (e.g. "catalog", "http").
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With().Str("component", component).Logger()}
}

// Attach returns a copy of ctx carrying l, for retrieval with zerolog.Ctx.
func (l *Logger) Attach(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// Install makes l the process logger: the zerolog/log global and the logger
// zerolog.Ctx returns for a context that carries none.
func (l *Logger) Install() {
	log.Logger = l.Logger
	zerolog.DefaultContextLogger = &l.Logger
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
