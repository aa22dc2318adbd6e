package handler

import (
	"errors"
	"strings"

	"league-server/internal/apierrors"
	"league-server/internal/auth/processor"
	"league-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// AdminSubjectKey is the gin context key holding the authenticated operator
const AdminSubjectKey = "Admin-Subject"

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleAdminMiddleware requires a bearer token carrying the admin role
func (h *Handler) HandleAdminMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}
	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateAdminToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, processor.ErrNotAdmin) {
			apierrors.Forbidden(c, apierrors.CodeForbidden, "Admin access required")
			return
		}
		apierrors.Unauthorized(c, err.Error())
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "admin_subject", Value: claims.Subject})
	c.Request = c.Request.WithContext(ctx)
	c.Set(AdminSubjectKey, claims.Subject)
	c.Next()
}
