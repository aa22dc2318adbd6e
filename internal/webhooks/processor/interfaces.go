//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"
	"time"

	"league-server/internal/clients/strava"
	"league-server/internal/eventlog"
	"league-server/internal/qualification"
	"league-server/internal/store"

	"golang.org/x/oauth2"
)

// ReconcileStore defines the database operations required by the Processor
type ReconcileStore interface {
	GetParticipantByAthleteID(ctx context.Context, athleteID int64) (store.Participant, error)
	GetParticipantToken(ctx context.Context, athleteID int64) (store.ParticipantToken, error)
	UpdateParticipantToken(ctx context.Context, params store.UpdateParticipantTokenParams) error
	DeleteParticipantToken(ctx context.Context, athleteID int64) (int64, error)
	GetWeeksContainingTime(ctx context.Context, ts time.Time) ([]store.Week, error)
	ReplaceQualifiedActivity(ctx context.Context, params store.ReplaceQualifiedActivityParams) (store.Activity, error)
	DeleteActivityByStravaID(ctx context.Context, stravaActivityID int64) (store.DeleteActivityResult, error)
}

// ActivityClient defines the provider calls required by the Processor
type ActivityClient interface {
	RefreshToken(ctx context.Context, tok *oauth2.Token) (*oauth2.Token, error)
	GetActivity(ctx context.Context, accessToken string, activityID int64) (strava.Activity, error)
}

// Qualifier evaluates an activity against one week
type Qualifier interface {
	FindBest(ctx context.Context, params qualification.Params) (*qualification.Result, error)
}

// EventLog records the terminal status of a processed notification
type EventLog interface {
	MarkProcessed(ctx context.Context, ref eventlog.Ref)
	MarkFailed(ctx context.Context, ref eventlog.Ref, message string)
}
