// Package logging writes audit events as structured log records. It is the
// run-event sink when no broker is configured.
package logging

import (
	"context"
	"log/slog"

	audit "partnerplan/pkg/platform/audit"
)

// Sink implements audit.Sink on top of a *slog.Logger.
type Sink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSink logs completed runs at info and failed runs at warn.
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger, level: slog.LevelInfo}
}

func (s *Sink) Append(ctx context.Context, event audit.Event) error {
	level := s.level
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.Time("event_time", event.Timestamp),
		slog.String("action", string(event.Action)),
		slog.String("run_id", event.RunID.String()),
		slog.Int("partners", event.Partners),
		slog.Int("countries", event.Countries),
		slog.Int("scheduled", event.Scheduled),
		slog.Int("unscheduled", event.Unscheduled),
		slog.String("log_type", "audit"),
	}
	if event.Action == audit.ActionRunFailed {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("reason", event.Reason))
	}
	s.logger.LogAttrs(ctx, level, "audit event", attrs...)
	return nil
}
