package log

import (
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Logger is the interface that the loggers used by the application will use.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	// WithValues returns a new logger that will log the key values on every entry.
	WithValues(kv map[string]interface{}) Logger
}

// Dummy logger doesn't log anything.
var Dummy = &dummy{}

type dummy struct{}

func (dummy) Infof(string, ...interface{})                {}
func (dummy) Warningf(string, ...interface{})             {}
func (dummy) Errorf(string, ...interface{})               {}
func (dummy) Debugf(string, ...interface{})               {}
func (d dummy) WithValues(map[string]interface{}) Logger { return d }

// Format is the format the logger will write the entries.
type Format string

const (
	// FormatConsole writes human readable entries.
	FormatConsole Format = "console"
	// FormatJSON writes one JSON object per entry.
	FormatJSON Format = "json"
)

// Config is the configuration of the zerolog based logger.
type Config struct {
	Out    io.Writer
	Format Format
	Debug  bool
}

type logger struct {
	zl zerolog.Logger
}

// NewZerolog returns a new logger based on zerolog.
func NewZerolog(cfg Config) (Logger, error) {
	out := cfg.Out
	switch cfg.Format {
	case FormatConsole, "":
		out = zerolog.ConsoleWriter{Out: cfg.Out}
	case FormatJSON:
	default:
		return nil, errors.Errorf("unknown log format %q", cfg.Format)
	}

	lvl := zerolog.InfoLevel
	if cfg.Debug {
		lvl = zerolog.DebugLevel
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &logger{zl: zl}, nil
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *logger) WithValues(kv map[string]interface{}) Logger {
	return &logger{zl: l.zl.With().Fields(kv).Logger()}
}
