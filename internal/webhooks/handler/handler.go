package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"league-server/internal/apierrors"
	"league-server/internal/metrics"
	"league-server/internal/observability"
	"league-server/internal/store"
	"league-server/internal/webhooks/events"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes bounds a notification body; real ones are a few hundred bytes
const maxBodyBytes = 64 << 10

// Handler serves the provider callback and the operator endpoints
type Handler struct {
	verifyToken   string
	capacity      CapacityService
	eventLog      EventLogger
	queue         Enqueuer
	admin         AdminService
	subscriptions SubscriptionService
	logger        *observability.Logger
	inflight      sync.WaitGroup
}

// New creates a new Handler
func New(
	verifyToken string,
	capacity CapacityService,
	eventLog EventLogger,
	queue Enqueuer,
	admin AdminService,
	subscriptions SubscriptionService,
	logger *observability.Logger,
) *Handler {
	return &Handler{
		verifyToken:   verifyToken,
		capacity:      capacity,
		eventLog:      eventLog,
		queue:         queue,
		admin:         admin,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// HandleVerifySubscription handles GET /webhooks/strava. The handshake stays
// reachable while acceptance is off so the provider can always validate the
// callback.
func (h *Handler) HandleVerifySubscription(c *gin.Context) {
	ctx := c.Request.Context()

	mode := c.Query("hub.mode")
	challenge := c.Query("hub.challenge")
	token := c.Query("hub.verify_token")

	if challenge == "" || token == "" || mode != "subscribe" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "hub.mode=subscribe, hub.challenge and hub.verify_token are required")
		return
	}
	if h.verifyToken == "" || token != h.verifyToken {
		h.logger.Warn(ctx, "webhook handshake with wrong verify token")
		apierrors.Forbidden(c, apierrors.CodeForbidden, "verify token mismatch")
		return
	}

	h.logger.Info(ctx, "webhook subscription handshake verified")
	c.JSON(http.StatusOK, gin.H{"hub.challenge": challenge})
}

// HandleReceiveEvent handles POST /webhooks/strava. It acknowledges first;
// logging and queueing happen after the response is written.
func (h *Handler) HandleReceiveEvent(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.capacity.AcceptingEvents(ctx) {
		metrics.EventsRejected.WithLabelValues("not_accepting").Inc()
		apierrors.ServiceUnavailable(c, apierrors.CodeWebhooksDisabled, "Webhook event receipt is disabled", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		metrics.EventsRejected.WithLabelValues("unreadable").Inc()
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "could not read request body")
		return
	}

	n, payload, err := events.ParseNotification(body)
	if err != nil {
		if !errors.Is(err, events.ErrMalformedNotification) {
			h.logger.Error(ctx, "unexpected notification parse error", err)
		}
		metrics.EventsRejected.WithLabelValues("malformed").Inc()
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "request body is not a JSON object")
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_kind", Value: n.Kind()},
		observability.Field{Key: "object_id", Value: n.ObjectID},
		observability.Field{Key: "owner_id", Value: n.OwnerID},
	)
	metrics.EventsReceived.Inc()
	c.JSON(http.StatusOK, gin.H{"received": true})

	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		h.ingest(context.WithoutCancel(ctx), payload)
	}()
}

// ingest logs the payload and queues it under the assigned event id
func (h *Handler) ingest(ctx context.Context, payload store.RawJSON) {
	eventID := h.eventLog.LogEvent(ctx, payload)
	ctx = observability.WithFields(ctx, observability.Field{Key: "event_id", Value: eventID})

	if !h.queue.Enqueue(events.NewJob(eventID, payload)) {
		h.logger.Warn(ctx, "processing queue closed, event left pending")
		return
	}
	h.logger.Debug(ctx, "webhook event queued")
}

// Wait blocks until every acknowledged notification has been handed to the
// queue
func (h *Handler) Wait() {
	h.inflight.Wait()
}
