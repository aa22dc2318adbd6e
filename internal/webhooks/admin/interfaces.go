//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=admin

package admin

import (
	"context"
	"time"

	"league-server/internal/store"
	"league-server/internal/webhooks/events"
)

// EventStore defines the database operations required by the admin Service
type EventStore interface {
	ListWebhookEvents(ctx context.Context, params store.ListWebhookEventsParams) ([]store.WebhookEvent, int, error)
	GetWebhookEventByID(ctx context.Context, id int64) (store.WebhookEvent, error)
	AppendWebhookEvent(ctx context.Context, payload store.RawJSON) (store.WebhookEvent, error)
	ResetWebhookEventForRetry(ctx context.Context, id int64) (store.WebhookEvent, error)
	PurgeWebhookEvents(ctx context.Context, olderThan *time.Time) (int64, error)
	GetParticipantByAthleteID(ctx context.Context, athleteID int64) (store.Participant, error)
	GetActivitiesByStravaID(ctx context.Context, stravaActivityID int64) ([]store.Activity, error)
	GetWeeksContainingTime(ctx context.Context, ts time.Time) ([]store.Week, error)
}

// Enqueuer hands jobs to the processing queue
type Enqueuer interface {
	Enqueue(job events.Job) bool
}
