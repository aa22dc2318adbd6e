package capacity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"league-server/internal/config"
	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/store"
)

// bytesPerEvent is the assumed footprint of one logged notification
const bytesPerEvent = 1024

// Repository is the slice of the store the guard reads and writes
type Repository interface {
	GetDatabaseSizeBytes(ctx context.Context) (int64, error)
	CountWebhookEventsSince(ctx context.Context, since time.Time) (int64, error)
	GetWebhookSubscriptionStatus(ctx context.Context) (store.SubscriptionStatus, error)
	SetWebhookAcceptance(ctx context.Context, enabled bool, message *string) (store.SubscriptionStatus, error)
}

// Status is a recomputed snapshot of storage usage
type Status struct {
	SizeBytes               int64     `json:"size_bytes"`
	AllocationBytes         int64     `json:"allocation_bytes"`
	UsagePercent            float64   `json:"usage_percent"`
	TotalEvents             int64     `json:"total_events"`
	EventsLast7Days         int64     `json:"events_last_7_days"`
	EventsPerDay            float64   `json:"events_per_day"`
	EstimatedWeeksRemaining *float64  `json:"estimated_weeks_remaining"`
	ThresholdPercent        float64   `json:"threshold_percent"`
	Enabled                 bool      `json:"enabled"`
	StatusMessage           *string   `json:"status_message,omitempty"`
	CheckedAt               time.Time `json:"checked_at"`
}

type Guard struct {
	repo            Repository
	cfg             config.CapacityConfig
	webhooksEnabled bool
	logger          *observability.Logger
	now             func() time.Time
}

func New(repo Repository, cfg config.CapacityConfig, webhooksEnabled bool, logger *observability.Logger) *Guard {
	return &Guard{
		repo:            repo,
		cfg:             cfg,
		webhooksEnabled: webhooksEnabled,
		logger:          logger,
		now:             time.Now,
	}
}

// GetStatus measures the backing store and extrapolates the runway left at
// the ingestion rate of the last seven days
func (g *Guard) GetStatus(ctx context.Context) (Status, error) {
	now := g.now().UTC()

	size, err := g.repo.GetDatabaseSizeBytes(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("failed to measure storage: %w", err)
	}
	total, err := g.repo.CountWebhookEventsSince(ctx, time.Time{})
	if err != nil {
		return Status{}, fmt.Errorf("failed to count events: %w", err)
	}
	recent, err := g.repo.CountWebhookEventsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return Status{}, fmt.Errorf("failed to count recent events: %w", err)
	}

	enabled, message, err := g.persistedAcceptance(ctx)
	if err != nil {
		return Status{}, err
	}

	status := Status{
		SizeBytes:        size,
		AllocationBytes:  g.cfg.AllocationBytes,
		TotalEvents:      total,
		EventsLast7Days:  recent,
		EventsPerDay:     round(float64(recent)/7, 2),
		ThresholdPercent: g.cfg.ThresholdPercent,
		Enabled:          enabled,
		StatusMessage:    message,
		CheckedAt:        now,
	}
	if g.cfg.AllocationBytes > 0 {
		status.UsagePercent = round(float64(size)/float64(g.cfg.AllocationBytes)*100, 2)
	}
	if weeklyBytes := float64(recent) * bytesPerEvent; weeklyBytes > 0 {
		remaining := math.Max(float64(g.cfg.AllocationBytes-size), 0)
		weeks := round(remaining/weeklyBytes, 1)
		status.EstimatedWeeksRemaining = &weeks
	}

	metrics.StorageUsagePercent.Set(status.UsagePercent)
	return status, nil
}

// CheckAndAutoDisable turns acceptance off once usage reaches the threshold.
// It never turns acceptance back on.
func (g *Guard) CheckAndAutoDisable(ctx context.Context) (bool, error) {
	status, err := g.GetStatus(ctx)
	if err != nil {
		g.logger.Error(ctx, "capacity check failed", err)
		return false, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "usage_percent", Value: status.UsagePercent},
		observability.Field{Key: "threshold_percent", Value: status.ThresholdPercent},
	)

	if status.UsagePercent < status.ThresholdPercent {
		g.logger.Debug(ctx, "storage usage below threshold")
		return false, nil
	}
	if !status.Enabled {
		g.logger.Warn(ctx, "storage usage above threshold, webhooks already disabled")
		return false, nil
	}

	message := fmt.Sprintf("Webhooks auto-disabled: storage usage %.1f%% reached the %.0f%% threshold (%s of %s). Purge old events, then re-enable.",
		status.UsagePercent, status.ThresholdPercent, formatBytes(status.SizeBytes), formatBytes(status.AllocationBytes))
	if err := g.Disable(ctx, message); err != nil {
		return false, err
	}
	g.logger.Warn(ctx, message)
	return true, nil
}

// Enable is the operator action that resumes acceptance and clears the
// status message
func (g *Guard) Enable(ctx context.Context) error {
	if _, err := g.repo.SetWebhookAcceptance(ctx, true, nil); err != nil {
		return fmt.Errorf("failed to enable webhooks: %w", err)
	}
	metrics.AcceptingEvents.Set(metrics.BoolGauge(g.webhooksEnabled))
	g.logger.Info(ctx, "webhook acceptance enabled")
	return nil
}

// Disable stops acceptance and records why
func (g *Guard) Disable(ctx context.Context, message string) error {
	if _, err := g.repo.SetWebhookAcceptance(ctx, false, &message); err != nil {
		return fmt.Errorf("failed to disable webhooks: %w", err)
	}
	metrics.AcceptingEvents.Set(0)
	return nil
}

// AcceptingEvents reports whether new notifications should be taken. Both
// the configured feature flag and the persisted flag must be on. A store
// failure counts as accepting.
func (g *Guard) AcceptingEvents(ctx context.Context) bool {
	if !g.webhooksEnabled {
		return false
	}
	enabled, _, err := g.persistedAcceptance(ctx)
	if err != nil {
		g.logger.WarnWithError(ctx, "could not read webhook acceptance, accepting", err)
		return true
	}
	return enabled
}

func (g *Guard) persistedAcceptance(ctx context.Context) (bool, *string, error) {
	status, err := g.repo.GetWebhookSubscriptionStatus(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to read subscription status: %w", err)
	}
	return status.Enabled, status.StatusMessage, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
