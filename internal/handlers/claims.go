package handlers

import (
	"context"
	"net/http"

	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/logger"
)

// claimsTokener is the common token surface the handlers need.
type claimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest extracts and verifies the caller identity.
func claimsFromRequest(ctx context.Context, tokener claimsTokener, r *http.Request) (*jwt.Claims, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		return nil, err
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		return nil, err
	}

	return claims, nil
}
