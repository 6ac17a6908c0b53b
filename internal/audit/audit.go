package audit

import (
	"context"
	"log/slog"
)

// Event represents an audit entry for request handling.
type Event struct {
	// Type describes the event kind (request, denied, result).
	Type string
	// Verb is the requested verb.
	Verb string
	// RequestID links related events.
	RequestID string
	// Tag is the failure tag, if any.
	Tag string
	// Detail provides additional context.
	Detail string
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(_ context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info("audit",
		"type", event.Type,
		"verb", event.Verb,
		"request_id", event.RequestID,
		"tag", event.Tag,
		"detail", event.Detail,
	)
}
