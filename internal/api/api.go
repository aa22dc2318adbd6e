package api

import (
	"context"
	"net/http"

	authHandler "league-server/internal/auth/handler"
	"league-server/internal/ratelimit"
	webhookHandler "league-server/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports database reachability for /health
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router         *gin.RouterGroup
	authHandler    authHandler.Handler
	rateLimiter    *ratelimit.Service
	webhookHandler *webhookHandler.Handler
	db             Pinger
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	rateLimiter *ratelimit.Service,
	webhookHandler *webhookHandler.Handler,
	db Pinger,
) API {
	return API{
		router:         router,
		authHandler:    authHandler,
		rateLimiter:    rateLimiter,
		webhookHandler: webhookHandler,
		db:             db,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Provider callback. The handshake never depends on acceptance.
	webhookGroup := a.router.Group("/webhooks")
	{
		webhookGroup.GET("/strava", a.webhookHandler.HandleVerifySubscription)
		webhookGroup.POST("/strava", a.webhookHandler.HandleReceiveEvent)
	}

	adminGroup := a.router.Group("/api/admin/webhooks", a.authHandler.HandleAdminMiddleware)
	{
		adminGroup.GET("/events", a.webhookHandler.HandleListEvents)
		adminGroup.GET("/events/:id", a.webhookHandler.HandleGetEvent)
		adminGroup.GET("/storage", a.webhookHandler.HandleStorageStatus)
		adminGroup.GET("/subscription", a.webhookHandler.HandleGetSubscription)
	}

	// Actions that write or call the provider are throttled per operator
	actionGroup := adminGroup.Group("", a.rateLimiter.Middleware("admin", authHandler.AdminSubjectKey))
	{
		actionGroup.POST("/events/:id/replay", a.webhookHandler.HandleReplayEvent)
		actionGroup.POST("/events/:id/retry", a.webhookHandler.HandleRetryEvent)
		actionGroup.DELETE("/events", a.webhookHandler.HandlePurgeEvents)
		actionGroup.POST("/storage/check", a.webhookHandler.HandleStorageCheck)
		actionGroup.POST("/enable", a.webhookHandler.HandleEnable)
		actionGroup.POST("/disable", a.webhookHandler.HandleDisable)
		actionGroup.POST("/subscription/renew", a.webhookHandler.HandleRenewSubscription)
		actionGroup.DELETE("/subscription", a.webhookHandler.HandleDeleteSubscription)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		if a.db != nil {
			if err := a.db.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
