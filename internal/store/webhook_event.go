package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const webhookEventColumns = `id, payload, status, error_message, retry_count, created_at, processed_at`

const sqlAppendWebhookEvent = `
INSERT INTO webhook_events (payload, status)
VALUES ($1, 'pending')
RETURNING ` + webhookEventColumns

// AppendWebhookEvent stores a new pending notification
func (s *Store) AppendWebhookEvent(ctx context.Context, payload RawJSON) (WebhookEvent, error) {
	var event WebhookEvent
	err := s.db.GetContext(ctx, &event, sqlAppendWebhookEvent, payload)
	if err != nil {
		s.logger.Error(ctx, "failed to append webhook event", err)
		return WebhookEvent{}, fmt.Errorf("failed to append webhook event: %w", err)
	}
	return event, nil
}

// WebhookEventMatch identifies the row a status update applies to. ID is
// preferred; when zero the most recent pending row with an equal payload is
// used.
type WebhookEventMatch struct {
	ID      int64
	Payload RawJSON
}

const sqlCompleteWebhookEventByID = `
UPDATE webhook_events
SET status = $2,
    error_message = $3,
    processed_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
`

const sqlCompleteWebhookEventByPayload = `
UPDATE webhook_events
SET status = $2,
    error_message = $3,
    processed_at = CURRENT_TIMESTAMP
WHERE id = (
    SELECT id FROM webhook_events
    WHERE payload = $1::jsonb AND status = 'pending'
    ORDER BY created_at DESC, id DESC
    LIMIT 1
)
`

// MarkWebhookEventProcessed moves a pending row to success and clears its
// error. Returns the number of rows changed.
func (s *Store) MarkWebhookEventProcessed(ctx context.Context, match WebhookEventMatch) (int64, error) {
	return s.completeWebhookEvent(ctx, match, WebhookEventStatusSuccess, nil)
}

// MarkWebhookEventFailed moves a pending row to failed with a message
func (s *Store) MarkWebhookEventFailed(ctx context.Context, match WebhookEventMatch, message string) (int64, error) {
	return s.completeWebhookEvent(ctx, match, WebhookEventStatusFailed, &message)
}

func (s *Store) completeWebhookEvent(ctx context.Context, match WebhookEventMatch, status WebhookEventStatus, message *string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	switch {
	case match.ID > 0:
		res, err = s.db.ExecContext(ctx, sqlCompleteWebhookEventByID, match.ID, status, message)
	case len(match.Payload) > 0:
		res, err = s.db.ExecContext(ctx, sqlCompleteWebhookEventByPayload, match.Payload, status, message)
	default:
		return 0, nil
	}
	if err != nil {
		s.logger.Error(ctx, "failed to update webhook event status", err)
		return 0, fmt.Errorf("failed to update webhook event status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows, nil
}

// ListWebhookEventsParams filters and pages the event log
type ListWebhookEventsParams struct {
	Status *WebhookEventStatus
	Since  *time.Time
	Until  *time.Time
	Limit  int
	Offset int
}

// ListWebhookEvents returns one page of events, newest first, with the total
// number of rows matching the filters
func (s *Store) ListWebhookEvents(ctx context.Context, params ListWebhookEventsParams) ([]WebhookEvent, int, error) {
	where, args := webhookEventFilters(params)

	countQuery := `SELECT COUNT(*) FROM webhook_events` + where
	var total int
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to count webhook events", err)
		return nil, 0, fmt.Errorf("failed to count webhook events: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	listQuery := fmt.Sprintf(`SELECT %s FROM webhook_events%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		webhookEventColumns, where, len(args)-1, len(args))

	events := []WebhookEvent{}
	if err := s.db.SelectContext(ctx, &events, listQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to list webhook events", err)
		return nil, 0, fmt.Errorf("failed to list webhook events: %w", err)
	}
	return events, total, nil
}

func webhookEventFilters(params ListWebhookEventsParams) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if params.Status != nil {
		args = append(args, *params.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.Since != nil {
		args = append(args, *params.Since)
		clauses = append(clauses, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if params.Until != nil {
		args = append(args, *params.Until)
		clauses = append(clauses, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

const sqlGetWebhookEventByID = `
SELECT ` + webhookEventColumns + `
FROM webhook_events
WHERE id = $1
`

// GetWebhookEventByID retrieves a logged event
func (s *Store) GetWebhookEventByID(ctx context.Context, id int64) (WebhookEvent, error) {
	var event WebhookEvent
	err := s.db.GetContext(ctx, &event, sqlGetWebhookEventByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WebhookEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get webhook event", err)
		return WebhookEvent{}, fmt.Errorf("failed to get webhook event: %w", err)
	}
	return event, nil
}

const sqlResetWebhookEventForRetry = `
UPDATE webhook_events
SET status = 'pending',
    error_message = NULL,
    processed_at = NULL,
    retry_count = retry_count + 1
WHERE id = $1
RETURNING ` + webhookEventColumns

// ResetWebhookEventForRetry clears the outcome of an event so it can be
// processed again
func (s *Store) ResetWebhookEventForRetry(ctx context.Context, id int64) (WebhookEvent, error) {
	var event WebhookEvent
	err := s.db.GetContext(ctx, &event, sqlResetWebhookEventForRetry, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WebhookEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to reset webhook event", err)
		return WebhookEvent{}, fmt.Errorf("failed to reset webhook event: %w", err)
	}
	return event, nil
}

const sqlPurgeAllWebhookEvents = `DELETE FROM webhook_events`

const sqlPurgeWebhookEventsBefore = `DELETE FROM webhook_events WHERE created_at < $1`

// PurgeWebhookEvents deletes every event, or only those created before
// olderThan when it is set
func (s *Store) PurgeWebhookEvents(ctx context.Context, olderThan *time.Time) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if olderThan == nil {
		res, err = s.db.ExecContext(ctx, sqlPurgeAllWebhookEvents)
	} else {
		res, err = s.db.ExecContext(ctx, sqlPurgeWebhookEventsBefore, *olderThan)
	}
	if err != nil {
		s.logger.Error(ctx, "failed to purge webhook events", err)
		return 0, fmt.Errorf("failed to purge webhook events: %w", err)
	}
	return res.RowsAffected()
}

const sqlCountWebhookEventsSince = `SELECT COUNT(*) FROM webhook_events WHERE created_at >= $1`

// CountWebhookEventsSince counts events received at or after since. A zero
// since counts every row.
func (s *Store) CountWebhookEventsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.GetContext(ctx, &count, sqlCountWebhookEventsSince, since)
	if err != nil {
		s.logger.Error(ctx, "failed to count webhook events", err)
		return 0, fmt.Errorf("failed to count webhook events: %w", err)
	}
	return count, nil
}
