package diagnostics

import "go.uber.org/zap"

// Logger is a thin wrapper around a *zap.SugaredLogger, giving the rest of
// this module a narrow, dependency-light surface for recoverable notices.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps z for use by this module's packages. A nil z is not valid; use
// Nop for a logger that discards everything.
func New(z *zap.Logger) *Logger {
	return &Logger{sugar: z.Sugar()}
}

// Nop returns a Logger that discards every call. Safe as a default for
// callers that don't care to wire a real logger through.
func Nop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Info records a recoverable, expected-in-normal-operation notice.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn records a notice worth a human's attention but not worth failing
// the computation over.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}

// AsDiagnostic adapts l into a graph.Diagnostic callback, so a *graph.Graph
// built with graph.WithDiagnostics(log.AsDiagnostic()) routes its release-mode
// invariant-skip notices through the same sink as the rest of this module.
func (l *Logger) AsDiagnostic() func(event string, fields map[string]string) {
	return func(event string, fields map[string]string) {
		kv := make([]interface{}, 0, len(fields)*2)
		for k, v := range fields {
			kv = append(kv, k, v)
		}
		l.Warn(event, kv...)
	}
}
