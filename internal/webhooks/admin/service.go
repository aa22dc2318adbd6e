package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-server/internal/observability"
	"league-server/internal/store"
	"league-server/internal/webhooks/events"

	"golang.org/x/sync/errgroup"
)

var (
	ErrEventNotFound = errors.New("webhook event not found")
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrQueueClosed   = errors.New("processing queue is shutting down")
)

const maxPageSize = 500

// Service exposes operator actions over the event log
type Service struct {
	store           EventStore
	queue           Enqueuer
	logger          *observability.Logger
	defaultPageSize int
}

// New creates a new admin Service
func New(store EventStore, queue Enqueuer, logger *observability.Logger, defaultPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = 50
	}
	return &Service{
		store:           store,
		queue:           queue,
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// ListParams filters and pages the event log. Page is 1-based.
type ListParams struct {
	Status   string
	Since    *time.Time
	Until    *time.Time
	Page     int
	PageSize int
}

// EventPage is one page of the event log
type EventPage struct {
	Events   []store.WebhookEvent `json:"events"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// ListEvents returns a page of events, newest first
func (s *Service) ListEvents(ctx context.Context, params ListParams) (EventPage, error) {
	filter := store.ListWebhookEventsParams{Since: params.Since, Until: params.Until}

	if params.Status != "" {
		status := store.WebhookEventStatus(params.Status)
		switch status {
		case store.WebhookEventStatusPending, store.WebhookEventStatusSuccess, store.WebhookEventStatusFailed:
			filter.Status = &status
		default:
			return EventPage{}, fmt.Errorf("%w: %q", ErrInvalidStatus, params.Status)
		}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	evts, total, err := s.store.ListWebhookEvents(ctx, filter)
	if err != nil {
		return EventPage{}, fmt.Errorf("failed to list events: %w", err)
	}
	return EventPage{Events: evts, Total: total, Page: page, PageSize: pageSize}, nil
}

// EnrichedEvent is a logged event resolved against current competition data
type EnrichedEvent struct {
	Event          store.WebhookEvent   `json:"event"`
	Notification   *events.Notification `json:"notification,omitempty"`
	DecodeError    string               `json:"decode_error,omitempty"`
	Participant    *store.Participant   `json:"participant,omitempty"`
	Activities     []store.Activity     `json:"activities"`
	CandidateWeeks []store.Week         `json:"candidate_weeks"`
}

// GetEnrichedEvent loads an event with the participant, stored activities
// and weeks it relates to. The lookups run concurrently.
func (s *Service) GetEnrichedEvent(ctx context.Context, id int64) (EnrichedEvent, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return EnrichedEvent{}, err
	}

	enriched := EnrichedEvent{Event: event, Activities: []store.Activity{}, CandidateWeeks: []store.Week{}}
	n, err := events.NewJob(event.ID, event.Payload).Decode()
	if err != nil {
		enriched.DecodeError = err.Error()
		return enriched, nil
	}
	enriched.Notification = &n

	g, gctx := errgroup.WithContext(ctx)

	if n.OwnerID != 0 {
		g.Go(func() error {
			participant, err := s.store.GetParticipantByAthleteID(gctx, n.OwnerID)
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load participant: %w", err)
			}
			enriched.Participant = &participant
			return nil
		})
	}

	if n.ObjectType == events.ObjectTypeActivity && n.ObjectID != 0 {
		g.Go(func() error {
			activities, err := s.store.GetActivitiesByStravaID(gctx, n.ObjectID)
			if err != nil {
				return fmt.Errorf("failed to load activities: %w", err)
			}
			if activities != nil {
				enriched.Activities = activities
			}
			return nil
		})
	}

	if at := n.OccurredAt(); !at.IsZero() {
		g.Go(func() error {
			weeks, err := s.store.GetWeeksContainingTime(gctx, at)
			if err != nil {
				return fmt.Errorf("failed to load weeks: %w", err)
			}
			if weeks != nil {
				enriched.CandidateWeeks = weeks
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return EnrichedEvent{}, err
	}
	return enriched, nil
}

// Replay logs a new event with the payload of id and queues it. The
// original row is left untouched.
func (s *Service) Replay(ctx context.Context, id int64) (store.WebhookEvent, error) {
	original, err := s.getEvent(ctx, id)
	if err != nil {
		return store.WebhookEvent{}, err
	}

	replayed, err := s.store.AppendWebhookEvent(ctx, original.Payload)
	if err != nil {
		return store.WebhookEvent{}, fmt.Errorf("failed to log replayed event: %w", err)
	}
	if !s.queue.Enqueue(events.NewJob(replayed.ID, replayed.Payload)) {
		return store.WebhookEvent{}, ErrQueueClosed
	}

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: id},
		observability.Field{Key: "replay_event_id", Value: replayed.ID},
	), "webhook event replayed")
	return replayed, nil
}

// Retry clears the outcome of id and queues it again under the same id
func (s *Service) Retry(ctx context.Context, id int64) (store.WebhookEvent, error) {
	event, err := s.store.ResetWebhookEventForRetry(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WebhookEvent{}, ErrEventNotFound
		}
		return store.WebhookEvent{}, fmt.Errorf("failed to reset event: %w", err)
	}
	if !s.queue.Enqueue(events.NewJob(event.ID, event.Payload)) {
		return store.WebhookEvent{}, ErrQueueClosed
	}

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: id},
		observability.Field{Key: "retry_count", Value: event.RetryCount},
	), "webhook event retried")
	return event, nil
}

// Purge deletes every event, or those created before olderThan
func (s *Service) Purge(ctx context.Context, olderThan *time.Time) (int64, error) {
	deleted, err := s.store.PurgeWebhookEvents(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("failed to purge events: %w", err)
	}
	s.logger.Info(observability.WithFields(ctx, observability.Field{Key: "deleted", Value: deleted}), "webhook events purged")
	return deleted, nil
}

func (s *Service) getEvent(ctx context.Context, id int64) (store.WebhookEvent, error) {
	event, err := s.store.GetWebhookEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WebhookEvent{}, ErrEventNotFound
		}
		return store.WebhookEvent{}, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}
