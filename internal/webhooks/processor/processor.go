package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-server/internal/clients/strava"
	"league-server/internal/eventlog"
	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/qualification"
	"league-server/internal/store"
	"league-server/internal/timewindow"
	"league-server/internal/webhooks/events"

	"golang.org/x/oauth2"
)

// Actions reported in an Outcome
const (
	ActionIgnored      = "ignored"
	ActionSkipped      = "skipped"
	ActionReconciled   = "reconciled"
	ActionDeleted      = "deleted"
	ActionDeauthorized = "deauthorized"
)

var ErrAllWeeksFailed = errors.New("every matching week failed")

// Outcome summarises what processing one notification did
type Outcome struct {
	Kind          string                      `json:"kind"`
	Action        string                      `json:"action"`
	Reason        string                      `json:"reason,omitempty"`
	WeeksMatched  int                         `json:"weeks_matched"`
	WeeksStored   int                         `json:"weeks_stored"`
	WeeksSkipped  int                         `json:"weeks_skipped"`
	WeeksFailed   int                         `json:"weeks_failed"`
	Deleted       *store.DeleteActivityResult `json:"deleted,omitempty"`
	TokensRemoved int64                       `json:"tokens_removed,omitempty"`
}

// Processor reconciles provider notifications against competition weeks
type Processor struct {
	store     ReconcileStore
	strava    ActivityClient
	qualifier Qualifier
	eventLog  EventLog
	logger    *observability.Logger
	now       func() time.Time
}

// New creates a new Processor
func New(store ReconcileStore, strava ActivityClient, qualifier Qualifier, eventLog EventLog, logger *observability.Logger) *Processor {
	return &Processor{
		store:     store,
		strava:    strava,
		qualifier: qualifier,
		eventLog:  eventLog,
		logger:    logger,
		now:       time.Now,
	}
}

// Process reconciles one queued job and writes its terminal status to the
// event log. The error is still returned for alerting.
func (p *Processor) Process(ctx context.Context, job events.Job) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: job.EventID})
	ref := eventlog.Ref{ID: job.EventID, Payload: job.Payload}

	n, err := job.Decode()
	if err != nil {
		metrics.EventsProcessed.WithLabelValues("failed").Inc()
		p.eventLog.MarkFailed(ctx, ref, err.Error())
		p.logger.Error(ctx, "failed to decode queued notification", err)
		return err
	}

	outcome, err := p.Reconcile(ctx, n)
	if err != nil {
		metrics.EventsProcessed.WithLabelValues("failed").Inc()
		p.eventLog.MarkFailed(ctx, ref, err.Error())
		p.logger.Error(ctx, "failed to process webhook event", err)
		return err
	}

	metrics.EventsProcessed.WithLabelValues(outcome.Action).Inc()
	p.eventLog.MarkProcessed(ctx, ref)
	p.logger.Metrics(ctx,
		observability.MetricField{Key: "kind", Value: outcome.Kind},
		observability.MetricField{Key: "action", Value: outcome.Action},
		observability.MetricField{Key: "reason", Value: outcome.Reason},
		observability.MetricField{Key: "weeks_matched", Value: outcome.WeeksMatched},
		observability.MetricField{Key: "weeks_stored", Value: outcome.WeeksStored},
		observability.MetricField{Key: "weeks_failed", Value: outcome.WeeksFailed},
	)
	return nil
}

// Reconcile dispatches on the notification shape without touching the event
// log
func (p *Processor) Reconcile(ctx context.Context, n events.Notification) (Outcome, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "kind", Value: n.Kind()},
		observability.Field{Key: "object_id", Value: n.ObjectID},
		observability.Field{Key: "owner_id", Value: n.OwnerID},
	)

	switch {
	case n.ObjectType == events.ObjectTypeActivity &&
		(n.AspectType == events.AspectTypeCreate || n.AspectType == events.AspectTypeUpdate):
		return p.reconcileActivity(ctx, n)
	case n.ObjectType == events.ObjectTypeActivity && n.AspectType == events.AspectTypeDelete:
		return p.deleteActivity(ctx, n)
	case n.IsDeauthorization():
		return p.deauthorize(ctx, n)
	default:
		p.logger.Debug(ctx, "ignoring notification")
		return Outcome{Kind: n.Kind(), Action: ActionIgnored}, nil
	}
}

func (p *Processor) reconcileActivity(ctx context.Context, n events.Notification) (Outcome, error) {
	outcome := Outcome{Kind: n.Kind(), Action: ActionSkipped}

	if _, err := p.store.GetParticipantByAthleteID(ctx, n.OwnerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			outcome.Reason = "athlete is not a participant"
			p.logger.Info(ctx, outcome.Reason)
			return outcome, nil
		}
		return outcome, fmt.Errorf("failed to look up participant: %w", err)
	}

	accessToken, ok, err := p.accessToken(ctx, n.OwnerID)
	if err != nil {
		return outcome, err
	}
	if !ok {
		outcome.Reason = "participant has no stored credentials"
		p.logger.Info(ctx, outcome.Reason)
		return outcome, nil
	}

	activity, err := p.strava.GetActivity(ctx, accessToken, n.ObjectID)
	if err != nil {
		if errors.Is(err, strava.ErrNotFound) {
			outcome.Reason = "activity no longer available upstream"
			p.logger.Info(ctx, outcome.Reason)
			return outcome, nil
		}
		return outcome, fmt.Errorf("failed to fetch activity: %w", err)
	}
	if len(activity.SegmentEfforts) == 0 {
		outcome.Reason = "activity has no segment efforts"
		p.logger.Info(ctx, outcome.Reason)
		return outcome, nil
	}

	startUTC := activity.StartDate.UTC()
	weeks, err := p.store.GetWeeksContainingTime(ctx, startUTC)
	if err != nil {
		return outcome, fmt.Errorf("failed to find weeks: %w", err)
	}

	outcome.Action = ActionReconciled
	outcome.WeeksMatched = len(weeks)
	now := p.now()
	attempted := 0
	for _, week := range weeks {
		weekCtx := observability.WithFields(ctx,
			observability.Field{Key: "week_id", Value: week.ID},
			observability.Field{Key: "season", Value: week.SeasonName},
		)

		if reason, skip := skipWeek(week, startUTC, now); skip {
			outcome.WeeksSkipped++
			p.logger.Info(weekCtx, "skipping week: "+reason)
			continue
		}

		attempted++
		stored, err := p.reconcileWeek(weekCtx, n.OwnerID, activity, accessToken, week)
		if err != nil {
			outcome.WeeksFailed++
			metrics.WeekWriteFailures.Inc()
			p.logger.Error(weekCtx, "failed to reconcile week", err)
			continue
		}
		if stored {
			outcome.WeeksStored++
		} else {
			outcome.WeeksSkipped++
		}
	}

	// Partial failures are isolated; only a total failure fails the event
	if attempted > 0 && outcome.WeeksFailed == attempted {
		return outcome, fmt.Errorf("%w (%d)", ErrAllWeeksFailed, outcome.WeeksFailed)
	}
	return outcome, nil
}

// skipWeek rejects weeks that are closed or whose window does not contain
// the activity start
func skipWeek(week store.Week, startUTC, now time.Time) (string, bool) {
	if week.EndAt.Before(now) {
		return "week has ended", true
	}
	if check := timewindow.IsTimestampWithinWindow(startUTC, week.StartAt, week.EndAt); !check.Valid {
		return check.Reason, true
	}
	return "", false
}

// reconcileWeek stores the best qualifying run for the participant resolved
// from the notification owner, not the athlete echoed in the activity body.
func (p *Processor) reconcileWeek(ctx context.Context, athleteID int64, activity strava.Activity, accessToken string, week store.Week) (bool, error) {
	res, err := p.qualifier.FindBest(ctx, qualification.Params{
		Activity:     activity,
		SegmentID:    week.SegmentID,
		RequiredLaps: week.RequiredLaps,
		AccessToken:  accessToken,
		WindowStart:  week.StartAt,
		WindowEnd:    week.EndAt,
	})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate qualification: %w", err)
	}
	if res == nil {
		p.logger.Info(ctx, "activity does not qualify for week")
		return false, nil
	}

	efforts := make([]store.EffortParams, 0, len(res.Efforts))
	for _, e := range res.Efforts {
		efforts = append(efforts, store.EffortParams{
			StravaEffortID: e.ID,
			ElapsedSeconds: e.ElapsedTime,
			StartAt:        e.StartDate,
			PRAchieved:     qualification.IsPR(e),
		})
	}

	_, err = p.store.ReplaceQualifiedActivity(ctx, store.ReplaceQualifiedActivityParams{
		WeekID:           week.ID,
		StravaAthleteID:  athleteID,
		StravaActivityID: activity.ID,
		StartAt:          activity.StartDate,
		DeviceName:       activity.DeviceName,
		TotalTimeSeconds: res.TotalTimeSeconds,
		PRBonusPoints:    res.PRCount,
		Efforts:          efforts,
	})
	if err != nil {
		return false, fmt.Errorf("failed to store qualified activity: %w", err)
	}
	p.logger.Info(ctx, fmt.Sprintf("stored qualified activity, total %ds", res.TotalTimeSeconds))
	return true, nil
}

// accessToken returns a valid access token for the athlete, refreshing and
// persisting it when expired. ok is false when no credentials are stored.
func (p *Processor) accessToken(ctx context.Context, athleteID int64) (string, bool, error) {
	stored, err := p.store.GetParticipantToken(ctx, athleteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load credentials: %w", err)
	}

	current := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		Expiry:       stored.ExpiresAt,
	}
	tok, err := p.strava.RefreshToken(ctx, current)
	if err != nil {
		return "", false, fmt.Errorf("failed to refresh credentials: %w", err)
	}

	if tok.AccessToken != stored.AccessToken {
		refreshToken := tok.RefreshToken
		if refreshToken == "" {
			refreshToken = stored.RefreshToken
		}
		err := p.store.UpdateParticipantToken(ctx, store.UpdateParticipantTokenParams{
			StravaAthleteID: athleteID,
			AccessToken:     tok.AccessToken,
			RefreshToken:    refreshToken,
			ExpiresAt:       tok.Expiry,
		})
		if err != nil {
			// The fresh token is still usable for this event
			p.logger.Error(ctx, "failed to persist refreshed credentials", err)
		}
	}
	return tok.AccessToken, true, nil
}

func (p *Processor) deleteActivity(ctx context.Context, n events.Notification) (Outcome, error) {
	res, err := p.store.DeleteActivityByStravaID(ctx, n.ObjectID)
	if err != nil {
		return Outcome{Kind: n.Kind(), Action: ActionDeleted}, fmt.Errorf("failed to delete activity: %w", err)
	}
	p.logger.Metrics(ctx,
		observability.MetricField{Key: "deleted", Value: res.Deleted},
		observability.MetricField{Key: "changes", Value: res.Changes},
	)
	return Outcome{Kind: n.Kind(), Action: ActionDeleted, Deleted: &res}, nil
}

// deauthorize removes the stored credentials only. Activities and results
// stay so that closed standings cannot be rewritten by disconnecting.
func (p *Processor) deauthorize(ctx context.Context, n events.Notification) (Outcome, error) {
	removed, err := p.store.DeleteParticipantToken(ctx, n.OwnerID)
	if err != nil {
		return Outcome{Kind: n.Kind(), Action: ActionDeauthorized}, fmt.Errorf("failed to remove credentials: %w", err)
	}
	p.logger.Info(ctx, "athlete deauthorized, credentials removed")
	return Outcome{Kind: n.Kind(), Action: ActionDeauthorized, TokensRemoved: removed}, nil
}
