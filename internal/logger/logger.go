package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	GoVersionKey = "go_version"
	PIDKey       = "pid"
)

// Options selects where log records go and how verbose they are.
type Options struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string
	// File receives JSON records. Empty disables logging: the terminal
	// belongs to the UI, so there is no stderr fallback.
	File string
}

// Logger bundles the logr front end with the zap core behind it.
type Logger struct {
	logr.Logger
	zap *zap.Logger
	out *os.File
}

// New builds a logger from opts. A zero Options yields a discarding logger.
func New(opts Options) (*Logger, error) {
	if opts.File == "" {
		return &Logger{Logger: logr.Discard()}, nil
	}

	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	out, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(out),
		zap.NewAtomicLevelAt(level),
	).With([]zapcore.Field{
		zap.String(GoVersionKey, goVersion),
		zap.Int(PIDKey, os.Getpid()),
	})

	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)

	return &Logger{Logger: zapr.NewLogger(zl), zap: zl, out: out}, nil
}

// Close flushes buffered records and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.zap == nil {
		return nil
	}
	var errs []error
	if err := l.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		errs = append(errs, err)
	}
	if l.out != nil {
		if err := l.out.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}

// WithLogger returns a new context with the provided logr.Logger attached.
func WithLogger(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext retrieves the logger stored by WithLogger, or a discarding
// logger when there is none.
func FromContext(ctx context.Context) logr.Logger {
	if log, err := logr.FromContext(ctx); err == nil {
		return log
	}
	return logr.Discard()
}
