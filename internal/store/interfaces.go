package store

import (
	"context"
	"time"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Webhook event log
	AppendWebhookEvent(ctx context.Context, payload RawJSON) (WebhookEvent, error)
	MarkWebhookEventProcessed(ctx context.Context, match WebhookEventMatch) (int64, error)
	MarkWebhookEventFailed(ctx context.Context, match WebhookEventMatch, message string) (int64, error)
	ListWebhookEvents(ctx context.Context, params ListWebhookEventsParams) ([]WebhookEvent, int, error)
	GetWebhookEventByID(ctx context.Context, id int64) (WebhookEvent, error)
	ResetWebhookEventForRetry(ctx context.Context, id int64) (WebhookEvent, error)
	PurgeWebhookEvents(ctx context.Context, olderThan *time.Time) (int64, error)
	CountWebhookEventsSince(ctx context.Context, since time.Time) (int64, error)

	// Weeks
	GetWeeksContainingTime(ctx context.Context, ts time.Time) ([]Week, error)
	GetWeekByID(ctx context.Context, id int64) (Week, error)
	UpdateWeekWindow(ctx context.Context, params UpdateWeekWindowParams) (Week, error)

	// Participants
	GetParticipantByAthleteID(ctx context.Context, athleteID int64) (Participant, error)
	GetParticipantToken(ctx context.Context, athleteID int64) (ParticipantToken, error)
	UpdateParticipantToken(ctx context.Context, params UpdateParticipantTokenParams) error
	DeleteParticipantToken(ctx context.Context, athleteID int64) (int64, error)

	// Activities
	ReplaceQualifiedActivity(ctx context.Context, params ReplaceQualifiedActivityParams) (Activity, error)
	DeleteActivityByStravaID(ctx context.Context, stravaActivityID int64) (DeleteActivityResult, error)
	GetActivitiesByStravaID(ctx context.Context, stravaActivityID int64) ([]Activity, error)
	GetSegmentEffortsByActivityID(ctx context.Context, activityID int64) ([]SegmentEffort, error)
	GetResultsByAthlete(ctx context.Context, athleteID int64) ([]Result, error)

	// Subscription status
	GetWebhookSubscriptionStatus(ctx context.Context) (SubscriptionStatus, error)
	UpsertWebhookSubscriptionStatus(ctx context.Context, subscriptionID *int64) (SubscriptionStatus, error)
	SetWebhookAcceptance(ctx context.Context, enabled bool, message *string) (SubscriptionStatus, error)

	// Footprint
	GetDatabaseSizeBytes(ctx context.Context) (int64, error)
}

// Ensure Store implements Storer
var _ Storer = (*Store)(nil)
