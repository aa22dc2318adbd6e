package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"league-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAdminToken signs an operator token for subject valid for ttl
func (p *AuthProcessor) GenerateAdminToken(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if p.jwtSecret == "" {
		return "", ErrMissingSecret
	}

	now := p.now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}
	return tokenString, nil
}

// ValidateAdminToken parses an HS256 token and requires the admin role
func (p *AuthProcessor) ValidateAdminToken(ctx context.Context, token string) (AdminClaims, error) {
	if p.jwtSecret == "" {
		return AdminClaims{}, ErrMissingSecret
	}

	var claims AdminClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(issuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return AdminClaims{}, ErrExpiredToken
		}
		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return AdminClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return AdminClaims{}, ErrInvalidJWTToken
	}
	if claims.Role != RoleAdmin {
		ctx = observability.WithFields(ctx, observability.Field{Key: "subject", Value: claims.Subject})
		p.logger.Warn(ctx, "token without admin role rejected")
		return AdminClaims{}, ErrNotAdmin
	}
	return claims, nil
}
