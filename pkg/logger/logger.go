package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Leveled logging facade for the user service, backed by zap.
// Init(level, environment) configures the global logger; the printf-style
// helpers below are what the rest of the codebase calls.

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	lvl   zap.AtomicLevel
)

func init() {
	lvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	l, _ := cfg.Build(zap.AddCallerSkip(1))
	sugar = l.Sugar()
}

// Init sets the global log level (case-insensitive: debug, info, warn, error,
// fatal) and the output encoding. Production mode emits JSON, anything else
// uses the console encoder. Call early during startup; default level is Info.
func Init(level, environment string) {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		lvl.SetLevel(zapcore.WarnLevel)
	case "error":
		lvl.SetLevel(zapcore.ErrorLevel)
	case "fatal":
		lvl.SetLevel(zapcore.FatalLevel)
	default:
		lvl.SetLevel(zapcore.InfoLevel)
	}

	var cfg zap.Config
	if strings.EqualFold(environment, "production") {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cfg.Level = lvl

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// keep the previous logger rather than crash over log cosmetics
		return
	}
	sugar = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }

// Fatalf logs at fatal level and exits the process.
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

// Debug/Info/Warn/Error helpers that accept a single string
func Debug(v string) { get().Debug(v) }
func Info(v string)  { get().Info(v) }
func Warn(v string)  { get().Warn(v) }
func Error(v string) { get().Error(v) }

// Sync flushes buffered log entries. Best effort; stdout sync errors are ignored.
func Sync() { _ = get().Sync() }

// LevelString returns the current level as text.
func LevelString() string {
	switch lvl.Level() {
	case zapcore.DebugLevel:
		return "debug"
	case zapcore.WarnLevel:
		return "warn"
	case zapcore.ErrorLevel:
		return "error"
	case zapcore.FatalLevel:
		return "fatal"
	default:
		return "info"
	}
}
