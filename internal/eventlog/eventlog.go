// Package eventlog records every inbound notification and its terminal
// processing status. Storage failures are logged and swallowed so that
// acknowledging the provider never depends on the log.
package eventlog

import (
	"context"

	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/store"
)

// Repository is the slice of the store the event log writes through
type Repository interface {
	AppendWebhookEvent(ctx context.Context, payload store.RawJSON) (store.WebhookEvent, error)
	MarkWebhookEventProcessed(ctx context.Context, match store.WebhookEventMatch) (int64, error)
	MarkWebhookEventFailed(ctx context.Context, match store.WebhookEventMatch, message string) (int64, error)
}

// Ref identifies a logged event. ID is the correlation id assigned at
// ingestion; Payload is used to find the row when ID is zero.
type Ref struct {
	ID      int64
	Payload store.RawJSON
}

type Log struct {
	repo   Repository
	logger *observability.Logger
}

func New(repo Repository, logger *observability.Logger) *Log {
	return &Log{repo: repo, logger: logger}
}

// LogEvent appends a pending row and returns its id, or 0 when the write
// failed
func (l *Log) LogEvent(ctx context.Context, payload store.RawJSON) int64 {
	event, err := l.repo.AppendWebhookEvent(ctx, payload)
	if err != nil {
		metrics.EventLogFailures.Inc()
		l.logger.Error(ctx, "failed to log webhook event", err)
		return 0
	}
	return event.ID
}

// MarkProcessed records a successful outcome. No matching pending row is a
// silent no-op.
func (l *Log) MarkProcessed(ctx context.Context, ref Ref) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: ref.ID})

	rows, err := l.repo.MarkWebhookEventProcessed(ctx, ref.match())
	if err != nil {
		metrics.EventLogFailures.Inc()
		l.logger.Error(ctx, "failed to mark webhook event processed", err)
		return
	}
	if rows == 0 {
		l.logger.Debug(ctx, "no pending webhook event matched")
	}
}

// MarkFailed records a failed outcome with its message
func (l *Log) MarkFailed(ctx context.Context, ref Ref, message string) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: ref.ID})

	rows, err := l.repo.MarkWebhookEventFailed(ctx, ref.match(), message)
	if err != nil {
		metrics.EventLogFailures.Inc()
		l.logger.Error(ctx, "failed to mark webhook event failed", err)
		return
	}
	if rows == 0 {
		l.logger.Debug(ctx, "no pending webhook event matched")
	}
}

func (r Ref) match() store.WebhookEventMatch {
	return store.WebhookEventMatch{ID: r.ID, Payload: r.Payload}
}
