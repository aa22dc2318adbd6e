package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const subscriptionStatusColumns = `subscription_id, enabled, status_message, last_refreshed_at, updated_at`

const sqlGetWebhookSubscriptionStatus = `
SELECT ` + subscriptionStatusColumns + `
FROM webhook_subscription_status
WHERE id = 1
`

// GetWebhookSubscriptionStatus returns the singleton status record, or
// ErrNotFound before it has ever been written
func (s *Store) GetWebhookSubscriptionStatus(ctx context.Context) (SubscriptionStatus, error) {
	var status SubscriptionStatus
	err := s.db.GetContext(ctx, &status, sqlGetWebhookSubscriptionStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SubscriptionStatus{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get webhook subscription status", err)
		return SubscriptionStatus{}, fmt.Errorf("failed to get webhook subscription status: %w", err)
	}
	return status, nil
}

const sqlUpsertWebhookSubscriptionID = `
INSERT INTO webhook_subscription_status (id, subscription_id, enabled, last_refreshed_at)
VALUES (1, $1, TRUE, CURRENT_TIMESTAMP)
ON CONFLICT (id) DO UPDATE
SET subscription_id = EXCLUDED.subscription_id,
    last_refreshed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + subscriptionStatusColumns

// UpsertWebhookSubscriptionStatus records the active provider subscription id.
// A nil id marks the subscription as removed. The acceptance flag is left
// untouched on existing rows.
func (s *Store) UpsertWebhookSubscriptionStatus(ctx context.Context, subscriptionID *int64) (SubscriptionStatus, error) {
	var status SubscriptionStatus
	err := s.db.GetContext(ctx, &status, sqlUpsertWebhookSubscriptionID, subscriptionID)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert webhook subscription status", err)
		return SubscriptionStatus{}, fmt.Errorf("failed to upsert webhook subscription status: %w", err)
	}
	return status, nil
}

const sqlSetWebhookAcceptance = `
INSERT INTO webhook_subscription_status (id, enabled, status_message)
VALUES (1, $1, $2)
ON CONFLICT (id) DO UPDATE
SET enabled = EXCLUDED.enabled,
    status_message = EXCLUDED.status_message,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + subscriptionStatusColumns

// SetWebhookAcceptance persists the accept-new-events flag with an optional
// human readable reason
func (s *Store) SetWebhookAcceptance(ctx context.Context, enabled bool, message *string) (SubscriptionStatus, error) {
	var status SubscriptionStatus
	err := s.db.GetContext(ctx, &status, sqlSetWebhookAcceptance, enabled, message)
	if err != nil {
		s.logger.Error(ctx, "failed to set webhook acceptance", err)
		return SubscriptionStatus{}, fmt.Errorf("failed to set webhook acceptance: %w", err)
	}
	return status, nil
}
