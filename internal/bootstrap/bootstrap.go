package bootstrap

import (
	"context"
	"fmt"

	"league-server/internal/auth/handler"
	"league-server/internal/auth/processor"
	"league-server/internal/capacity"
	"league-server/internal/clients/redis"
	"league-server/internal/clients/strava"
	"league-server/internal/config"
	"league-server/internal/eventlog"
	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/qualification"
	"league-server/internal/ratelimit"
	"league-server/internal/schedule"
	"league-server/internal/store"
	"league-server/internal/webhooks/admin"
	webhookHandler "league-server/internal/webhooks/handler"
	webhookProcessor "league-server/internal/webhooks/processor"
	"league-server/internal/webhooks/queue"
	"league-server/internal/webhooks/subscription"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger
	Redis  *redis.Client

	// Webhook pipeline
	Strava        *strava.Client
	EventLog      *eventlog.Log
	Guard         *capacity.Guard
	Processor     *webhookProcessor.Processor
	Queue         *queue.Queue
	Admin         *admin.Service
	Subscriptions *subscription.Manager

	// Competition calendar
	Schedule *schedule.Service

	// Handlers
	AuthHandler    handler.Handler
	AuthProcessor  processor.AuthProcessor
	RateLimiter    *ratelimit.Service
	WebhookHandler *webhookHandler.Handler

	// Background workers
	CapacityMonitor *capacity.Monitor
}

// Initialize sets up all application dependencies. ctx bounds the lifetime
// of queued processing.
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	metrics.Register()

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis only backs admin throttling, so a failure degrades to no throttling
	deps.Redis, err = redis.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "failed to connect to Redis, admin rate limiting disabled", err)
		deps.Redis = nil
	}

	deps.Strava = strava.NewClient(cfg.Strava, logger)
	deps.EventLog = eventlog.New(&deps.Store, logger)

	// Capacity guard and its periodic check
	deps.Guard = capacity.New(&deps.Store, cfg.Capacity, cfg.Webhook.Enabled, logger)
	deps.CapacityMonitor = capacity.NewMonitor(deps.Guard, logger, cfg.Capacity.CheckInterval)

	// Reconciliation runs on a single queue lane
	deps.Processor = webhookProcessor.New(&deps.Store, deps.Strava, qualification.NewLapFinder(), deps.EventLog, logger)
	deps.Queue = queue.New(ctx, deps.Processor, logger)

	deps.Admin = admin.New(&deps.Store, deps.Queue, logger, cfg.Admin.DefaultPageSize)
	deps.Subscriptions = subscription.New(cfg, deps.Strava, &deps.Store, logger)
	deps.Schedule = schedule.New(&deps.Store, logger)

	// Operator auth and throttling
	deps.AuthProcessor = processor.New(cfg.Admin.JWTSecret, logger)
	deps.AuthHandler = handler.New(deps.AuthProcessor, logger)
	deps.RateLimiter = ratelimit.NewService(deps.Redis, cfg.Admin.ActionsPerMinute, logger)

	deps.WebhookHandler = webhookHandler.New(
		cfg.Webhook.VerifyToken,
		deps.Guard,
		deps.EventLog,
		deps.Queue,
		deps.Admin,
		deps.Subscriptions,
		logger,
	)

	metrics.AcceptingEvents.Set(metrics.BoolGauge(deps.Guard.AcceptingEvents(ctx)))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	_ = d.Store.Close()
}
