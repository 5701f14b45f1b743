// Package logging provides the process-wide structured logger and the HTTP
// middleware that scopes it to individual requests.
package logging

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RFC3339Micros is the log timestamp layout: RFC 3339 UTC with fixed
// microsecond precision.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Service identifies the running binary. It is attached to every entry as
// serviceContext so Cloud Error Reporting can group errors by service and
// version.
type Service struct {
	Name    string
	Version string
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Service) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("service", s.Name)
	if s.Version != "" {
		enc.AddString("version", s.Version)
	}
	return nil
}

var (
	loggerOnce sync.Once
	baseLogger *zap.Logger
)

var severities = map[zapcore.Level]string{
	zapcore.DebugLevel:  "DEBUG",
	zapcore.InfoLevel:   "INFO",
	zapcore.WarnLevel:   "WARNING",
	zapcore.ErrorLevel:  "ERROR",
	zapcore.DPanicLevel: "CRITICAL",
	zapcore.PanicLevel:  "ALERT",
	zapcore.FatalLevel:  "EMERGENCY",
}

// encodeSeverity maps zap levels to Cloud Logging severity names.
func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	severity, ok := severities[level]
	if !ok {
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = encodeTimeMicros
	cfg.LevelKey = "severity"
	cfg.EncodeLevel = encodeSeverity
	cfg.MessageKey = "message"
	cfg.CallerKey = "caller"
	return cfg
}

// newLogger builds an INFO-level JSON logger writing to out. Entries carry
// svc when it has a name.
func newLogger(svc Service, out zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), out, zapcore.InfoLevel)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.ErrorOutput(out),
	)
	if svc.Name != "" {
		logger = logger.With(zap.Object("serviceContext", svc))
	}
	return logger
}

// Init builds the process-wide logger for svc. Only the first call to Init or
// Logger configures it; Init reports whether this call did.
func Init(svc Service) bool {
	initialized := false
	loggerOnce.Do(func() {
		baseLogger = newLogger(svc, zapcore.Lock(os.Stdout))
		initialized = true
	})
	return initialized
}

// Logger returns the process-wide logger, building an anonymous one if Init
// has not run.
func Logger() *zap.Logger {
	Init(Service{})
	return baseLogger
}

// Sync flushes buffered log entries. Call during shutdown.
func Sync() error {
	return Logger().Sync()
}
