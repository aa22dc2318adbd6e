package subscription

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"league-server/internal/clients/strava"
	"league-server/internal/config"
	"league-server/internal/observability"
	"league-server/internal/store"
)

var (
	ErrNotConfigured = errors.New("webhook subscription is not configured")
	ErrDisabled      = errors.New("webhooks are disabled")
)

// Manager creates, inspects, renews and removes the provider push
// subscription. It never runs as part of per-event processing.
type Manager struct {
	enabled     bool
	callbackURL string
	verifyToken string
	missing     []string
	provider    Provider
	store       StatusStore
	logger      *observability.Logger
}

func New(cfg *config.Config, provider Provider, store StatusStore, logger *observability.Logger) *Manager {
	return &Manager{
		enabled:     cfg.Webhook.Enabled,
		callbackURL: cfg.Webhook.CallbackURL,
		verifyToken: cfg.Webhook.VerifyToken,
		missing:     cfg.MissingSubscriptionSettings(),
		provider:    provider,
		store:       store,
		logger:      logger,
	}
}

// View is the combined local and provider-side subscription state
type View struct {
	Enabled       bool                      `json:"enabled"`
	CallbackURL   string                    `json:"callback_url,omitempty"`
	Missing       []string                  `json:"missing_settings,omitempty"`
	Status        *store.SubscriptionStatus `json:"status,omitempty"`
	Subscriptions []strava.Subscription     `json:"subscriptions"`
	ProviderError string                    `json:"provider_error,omitempty"`
}

// Setup makes sure a subscription exists at startup. Webhooks are optional, so
// every failure is logged and Setup always returns nil.
func (m *Manager) Setup(ctx context.Context) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "component", Value: "webhook_subscription"})

	if !m.enabled {
		m.logger.Info(ctx, "webhooks disabled, skipping subscription setup")
		return nil
	}
	if len(m.missing) > 0 {
		ctx = observability.WithFields(ctx, observability.Field{Key: "missing", Value: strings.Join(m.missing, ",")})
		m.logger.Warn(ctx, "webhook subscription settings missing, webhooks inactive")
		return nil
	}

	subs, err := m.provider.ListSubscriptions(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to list webhook subscriptions, webhooks inactive", err)
		return nil
	}

	var sub strava.Subscription
	if existing, ok := m.pick(ctx, subs); ok {
		sub = existing
		m.logger.Info(observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: sub.ID}),
			"reusing existing webhook subscription")
	} else {
		sub, err = m.provider.CreateSubscription(ctx, m.callbackURL, m.verifyToken)
		if err != nil {
			m.logger.Error(ctx, "failed to create webhook subscription, webhooks inactive", err)
			return nil
		}
		m.logger.Info(observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: sub.ID}),
			"created webhook subscription")
	}

	id := sub.ID
	if _, err := m.store.UpsertWebhookSubscriptionStatus(ctx, &id); err != nil {
		m.logger.Error(ctx, "failed to persist webhook subscription id", err)
	}
	return nil
}

// pick prefers a subscription pointing at the configured callback. The
// provider allows one subscription per application, so any other one is
// reused as well.
func (m *Manager) pick(ctx context.Context, subs []strava.Subscription) (strava.Subscription, bool) {
	if len(subs) == 0 {
		return strava.Subscription{}, false
	}
	for _, s := range subs {
		if s.CallbackURL == m.callbackURL {
			return s, true
		}
	}
	m.logger.Warn(observability.WithFields(ctx,
		observability.Field{Key: "subscription_id", Value: subs[0].ID},
		observability.Field{Key: "subscription_callback", Value: subs[0].CallbackURL},
	), "existing webhook subscription has a different callback url")
	return subs[0], true
}

// View reports the local status record and the provider's subscriptions.
// Provider failures are reported in the view rather than returned.
func (m *Manager) View(ctx context.Context) (View, error) {
	view := View{
		Enabled:       m.enabled,
		CallbackURL:   m.callbackURL,
		Missing:       m.missing,
		Subscriptions: []strava.Subscription{},
	}

	status, err := m.store.GetWebhookSubscriptionStatus(ctx)
	switch {
	case err == nil:
		view.Status = &status
	case !errors.Is(err, store.ErrNotFound):
		return View{}, fmt.Errorf("failed to get subscription status: %w", err)
	}

	if len(m.missing) > 0 {
		return view, nil
	}
	subs, err := m.provider.ListSubscriptions(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to list webhook subscriptions", err)
		view.ProviderError = err.Error()
		return view, nil
	}
	view.Subscriptions = subs
	return view, nil
}

// Renew deletes every existing subscription and creates a fresh one
func (m *Manager) Renew(ctx context.Context) (strava.Subscription, error) {
	if err := m.ready(); err != nil {
		return strava.Subscription{}, err
	}
	if err := m.deleteAll(ctx); err != nil {
		return strava.Subscription{}, err
	}

	sub, err := m.provider.CreateSubscription(ctx, m.callbackURL, m.verifyToken)
	if err != nil {
		m.logger.Error(ctx, "failed to create webhook subscription", err)
		return strava.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}

	id := sub.ID
	if _, err := m.store.UpsertWebhookSubscriptionStatus(ctx, &id); err != nil {
		return strava.Subscription{}, fmt.Errorf("failed to persist subscription id: %w", err)
	}
	m.logger.Info(observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: sub.ID}),
		"renewed webhook subscription")
	return sub, nil
}

// Teardown removes every provider subscription and clears the stored id
func (m *Manager) Teardown(ctx context.Context) error {
	if len(m.missing) > 0 {
		return ErrNotConfigured
	}
	if err := m.deleteAll(ctx); err != nil {
		return err
	}
	if _, err := m.store.UpsertWebhookSubscriptionStatus(ctx, nil); err != nil {
		return fmt.Errorf("failed to clear subscription id: %w", err)
	}
	m.logger.Info(ctx, "removed webhook subscription")
	return nil
}

func (m *Manager) ready() error {
	if !m.enabled {
		return ErrDisabled
	}
	if len(m.missing) > 0 {
		return ErrNotConfigured
	}
	return nil
}

func (m *Manager) deleteAll(ctx context.Context) error {
	subs, err := m.provider.ListSubscriptions(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to list webhook subscriptions", err)
		return fmt.Errorf("failed to list subscriptions: %w", err)
	}
	for _, s := range subs {
		if err := m.provider.DeleteSubscription(ctx, s.ID); err != nil && !errors.Is(err, strava.ErrNotFound) {
			m.logger.Error(ctx, "failed to delete webhook subscription", err)
			return fmt.Errorf("failed to delete subscription %d: %w", s.ID, err)
		}
	}
	return nil
}
