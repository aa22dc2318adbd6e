package processor

import (
	"errors"
	"time"

	"league-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = "admin"
	issuer    = "league-server"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrNotAdmin        = errors.New("token does not grant admin access")
	ErrMissingSecret   = errors.New("jwt secret is not configured")
	ErrFailedSignToken = errors.New("failed to sign token")
)

// AdminClaims are the claims carried by operator tokens
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
	now       func() time.Time
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}
