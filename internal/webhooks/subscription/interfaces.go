package subscription

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=subscription

import (
	"context"

	"league-server/internal/clients/strava"
	"league-server/internal/store"
)

// Provider manages the push subscription on the provider side
type Provider interface {
	ListSubscriptions(ctx context.Context) ([]strava.Subscription, error)
	CreateSubscription(ctx context.Context, callbackURL, verifyToken string) (strava.Subscription, error)
	DeleteSubscription(ctx context.Context, id int64) error
}

// StatusStore persists the local subscription record
type StatusStore interface {
	GetWebhookSubscriptionStatus(ctx context.Context) (store.SubscriptionStatus, error)
	UpsertWebhookSubscriptionStatus(ctx context.Context, subscriptionID *int64) (store.SubscriptionStatus, error)
}
