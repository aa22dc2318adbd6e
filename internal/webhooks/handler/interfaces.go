package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"
	"time"

	"league-server/internal/capacity"
	"league-server/internal/clients/strava"
	"league-server/internal/store"
	"league-server/internal/webhooks/admin"
	"league-server/internal/webhooks/events"
	"league-server/internal/webhooks/subscription"
)

// EventLogger records raw notifications before they are queued
type EventLogger interface {
	LogEvent(ctx context.Context, payload store.RawJSON) int64
}

// Enqueuer hands logged notifications to the processing queue
type Enqueuer interface {
	Enqueue(job events.Job) bool
}

// CapacityService guards event acceptance on storage usage
type CapacityService interface {
	AcceptingEvents(ctx context.Context) bool
	GetStatus(ctx context.Context) (capacity.Status, error)
	CheckAndAutoDisable(ctx context.Context) (bool, error)
	Enable(ctx context.Context) error
	Disable(ctx context.Context, message string) error
}

// AdminService inspects and re-drives logged events
type AdminService interface {
	ListEvents(ctx context.Context, params admin.ListParams) (admin.EventPage, error)
	GetEnrichedEvent(ctx context.Context, id int64) (admin.EnrichedEvent, error)
	Replay(ctx context.Context, id int64) (store.WebhookEvent, error)
	Retry(ctx context.Context, id int64) (store.WebhookEvent, error)
	Purge(ctx context.Context, olderThan *time.Time) (int64, error)
}

// SubscriptionService manages the provider push subscription
type SubscriptionService interface {
	View(ctx context.Context) (subscription.View, error)
	Renew(ctx context.Context) (strava.Subscription, error)
	Teardown(ctx context.Context) error
}
