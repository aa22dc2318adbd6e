package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"league-server/internal/apierrors"
	"league-server/internal/clients/strava"
	"league-server/internal/observability"
	"league-server/internal/webhooks/admin"
	"league-server/internal/webhooks/subscription"

	"github.com/gin-gonic/gin"
)

// ListEventsRequest is the query of GET /admin/webhooks/events
type ListEventsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending success failed"`
	Since    string `form:"since" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Until    string `form:"until" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Page     int    `form:"page" binding:"omitempty,gte=1"`
	PageSize int    `form:"page_size" binding:"omitempty,gte=1,lte=500"`
}

// PurgeEventsRequest is the query of DELETE /admin/webhooks/events
type PurgeEventsRequest struct {
	OlderThan string `form:"older_than" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// DisableRequest is the body of POST /admin/webhooks/disable
type DisableRequest struct {
	Message string `json:"message" binding:"required,max=500"`
}

// CheckResponse is returned by POST /admin/webhooks/storage/check
type CheckResponse struct {
	Disabled bool        `json:"disabled"`
	Status   interface{} `json:"status"`
}

// handleError maps service errors to API error responses
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, admin.ErrEventNotFound):
		apierrors.NotFound(c, "Webhook event not found")
	case errors.Is(err, admin.ErrInvalidStatus):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, err.Error())
	case errors.Is(err, admin.ErrQueueClosed):
		apierrors.ServiceUnavailable(c, apierrors.CodeWebhooksDisabled, "Processing queue is shutting down", err)
	case errors.Is(err, subscription.ErrDisabled):
		apierrors.BadRequest(c, apierrors.CodeWebhooksDisabled, "Webhooks are disabled")
	case errors.Is(err, subscription.ErrNotConfigured):
		apierrors.BadRequest(c, apierrors.CodeWebhooksDisabled, "Webhook subscription settings are missing")
	case errors.Is(err, strava.ErrUnauthorized), errors.Is(err, strava.ErrNotFound):
		apierrors.BadGateway(c, "The provider rejected the request", err)
	default:
		apierrors.InternalError(c, err)
	}
}

func eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "invalid event id")
		return 0, false
	}
	return id, true
}

func parseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &t
}

// HandleListEvents handles GET /admin/webhooks/events
func (h *Handler) HandleListEvents(c *gin.Context) {
	var req ListEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	page, err := h.admin.ListEvents(c.Request.Context(), admin.ListParams{
		Status:   req.Status,
		Since:    parseOptionalTime(req.Since),
		Until:    parseOptionalTime(req.Until),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// HandleGetEvent handles GET /admin/webhooks/events/:id
func (h *Handler) HandleGetEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	enriched, err := h.admin.GetEnrichedEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, enriched)
}

// HandleReplayEvent handles POST /admin/webhooks/events/:id/replay
func (h *Handler) HandleReplayEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.admin.Replay(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"replayed_from": id, "event": event})
}

// HandleRetryEvent handles POST /admin/webhooks/events/:id/retry
func (h *Handler) HandleRetryEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.admin.Retry(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"event": event})
}

// HandlePurgeEvents handles DELETE /admin/webhooks/events
func (h *Handler) HandlePurgeEvents(c *gin.Context) {
	ctx := c.Request.Context()

	var req PurgeEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	olderThan := parseOptionalTime(req.OlderThan)
	if olderThan != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "older_than", Value: olderThan})
	}
	deleted, err := h.admin.Purge(ctx, olderThan)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// HandleStorageStatus handles GET /admin/webhooks/storage
func (h *Handler) HandleStorageStatus(c *gin.Context) {
	status, err := h.capacity.GetStatus(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleStorageCheck handles POST /admin/webhooks/storage/check
func (h *Handler) HandleStorageCheck(c *gin.Context) {
	ctx := c.Request.Context()

	disabled, err := h.capacity.CheckAndAutoDisable(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}
	status, err := h.capacity.GetStatus(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckResponse{Disabled: disabled, Status: status})
}

// HandleEnable handles POST /admin/webhooks/enable
func (h *Handler) HandleEnable(c *gin.Context) {
	if err := h.capacity.Enable(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true})
}

// HandleDisable handles POST /admin/webhooks/disable
func (h *Handler) HandleDisable(c *gin.Context) {
	var req DisableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.capacity.Disable(c.Request.Context(), req.Message); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": false, "status_message": req.Message})
}

// HandleGetSubscription handles GET /admin/webhooks/subscription
func (h *Handler) HandleGetSubscription(c *gin.Context) {
	view, err := h.subscriptions.View(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleRenewSubscription handles POST /admin/webhooks/subscription/renew
func (h *Handler) HandleRenewSubscription(c *gin.Context) {
	sub, err := h.subscriptions.Renew(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// HandleDeleteSubscription handles DELETE /admin/webhooks/subscription
func (h *Handler) HandleDeleteSubscription(c *gin.Context) {
	if err := h.subscriptions.Teardown(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
