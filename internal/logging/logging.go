package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogFile = "servarr-tui.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	logLevel     = zapcore.WarnLevel
	logger       *zap.Logger
	tracer       *zap.Logger
	closeSink    func()
)

// ParseLevel maps a level name onto a zap level. Empty means warn.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zapcore.WarnLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.WarnLevel, fmt.Errorf("unknown log level %q", level)
}

// Configure sets the log destination and level and opens the sink. Empty
// paths fall back to the default file. Directories are created when missing.
// The TUI owns the terminal, so nothing is ever written to stdout.
func Configure(path, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	sink, closer, err := zap.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc := zapcore.NewJSONEncoder(cfg)

	shutdownLocked()
	logPath = path
	logLevel = lvl
	logger = zap.New(zapcore.NewCore(enc, sink, lvl))
	tracer = zap.New(zapcore.NewCore(enc.Clone(), sink, zapcore.InfoLevel)).Named("trace")
	closeSink = closer
	return nil
}

// Path returns the configured log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Level returns the configured level.
func Level() zapcore.Level {
	mu.Lock()
	defer mu.Unlock()
	return logLevel
}

// Sync flushes buffered entries and closes the sink.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	shutdownLocked()
}

func shutdownLocked() {
	if logger != nil {
		_ = logger.Sync()
	}
	if tracer != nil {
		_ = tracer.Sync()
	}
	if closeSink != nil {
		closeSink()
	}
	logger, tracer, closeSink = nil, nil, nil
}

// GetLogger returns the process logger, a no-op logger until Configure runs.
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether trace entries are emitted.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured entry to the log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	enabled, t := traceEnabled, tracer
	mu.Unlock()
	if !enabled || t == nil {
		return
	}
	fields := make([]zap.Field, 0, len(payload))
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	t.Info(event, fields...)
}

// Error records err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	GetLogger().Error(err.Error(), zap.Error(err))
}

func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}
