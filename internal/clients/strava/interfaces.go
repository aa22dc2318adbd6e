package strava

import (
	"context"

	"golang.org/x/oauth2"
)

// ActivityAPI defines the provider calls made while reconciling a notification
type ActivityAPI interface {
	// RefreshToken returns tok unchanged while valid, or a refreshed token
	RefreshToken(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error)

	// GetActivity fetches an activity with all segment efforts
	GetActivity(ctx context.Context, accessToken string, activityID int64) (Activity, error)
}

// SubscriptionAPI defines the push subscription calls
type SubscriptionAPI interface {
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
	CreateSubscription(ctx context.Context, callbackURL, verifyToken string) (Subscription, error)
	DeleteSubscription(ctx context.Context, id int64) error
}

var (
	_ ActivityAPI     = (*Client)(nil)
	_ SubscriptionAPI = (*Client)(nil)
)
