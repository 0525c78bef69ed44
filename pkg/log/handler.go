package log

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
)

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// ErrFmtHandler is a slog handler to format stacktrace from cockroachdb/errors.
type ErrFmtHandler struct {
	handler slog.Handler
}

// WrapByErrFmtHandler function wraps the standard slog handler.
// This function returns the slog handler which emits logs with a stacktrace attribute.
func WrapByErrFmtHandler(handler slog.Handler) slog.Handler {
	return &ErrFmtHandler{
		handler: handler,
	}
}

func (eh *ErrFmtHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return eh.handler.Enabled(ctx, l)
}

func (eh *ErrFmtHandler) Handle(ctx context.Context, r slog.Record) error {
	var stacktrace string
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == ErrAttrKey {
			err, ok := attr.Value.Any().(error)
			if ok {
				stacktrace = extractStacktrace(err)
			}
			return false
		}
		return true
	})
	if stacktrace != "" {
		r.AddAttrs(slog.String(StacktraceAttrKey, stacktrace))
	}
	return eh.handler.Handle(ctx, r)
}

func (eh *ErrFmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithAttrs(attrs)}
}

func (eh *ErrFmtHandler) WithGroup(g string) slog.Handler {
	return &ErrFmtHandler{handler: eh.handler.WithGroup(g)}
}

func extractStacktrace(err error) string {
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	return ""
}

// SlogLogger implements Logger on top of a slog.Handler. The handler is
// wrapped by ErrFmtHandler so that errors carry their stack trace.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger creates a Logger backed by the given slog handler.
func NewSlogLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(WrapByErrFmtHandler(handler))}
}

// Debug implements Logger.Debug.
func (s *SlogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, slogArgs(fields)...)
}

// Info implements Logger.Info.
func (s *SlogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, slogArgs(fields)...)
}

// Warn implements Logger.Warn.
func (s *SlogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, slogArgs(fields)...)
}

// Error implements Logger.Error.
func (s *SlogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, slogArgs(fields)...)
}

// With implements Logger.With.
func (s *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{logger: s.logger.With(slogArgs(fields)...)}
}

// Enabled implements Logger.Enabled.
func (s *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// slogArgs turns a leading error into an ErrAttr so ErrFmtHandler can find it.
func slogArgs(fields []any) []any {
	if len(fields) == 0 {
		return fields
	}
	err, ok := fields[0].(error)
	if !ok {
		return fields
	}
	args := make([]any, 0, len(fields))
	args = append(args, ErrAttr(err))
	for i := 1; i+1 < len(fields); i += 2 {
		args = append(args, slog.Any(fmt.Sprint(fields[i]), fields[i+1]))
	}
	return args
}
