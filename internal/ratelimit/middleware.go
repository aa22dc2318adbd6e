package ratelimit

import (
	"fmt"

	"league-server/internal/apierrors"
	"league-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware throttles a route group per authenticated subject, read from the
// gin context under subjectKey. Requests without a subject share the client
// IP bucket.
func (s *Service) Middleware(scope, subjectKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		subject := c.GetString(subjectKey)
		if subject == "" {
			subject = "ip:" + observability.GetRealClientIP(c)
		}

		result := s.CheckRateLimit(ctx, scope+":"+subject)

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")
			apierrors.TooManyRequests(c, "Rate limit exceeded")
			return
		}

		c.Next()
	}
}
