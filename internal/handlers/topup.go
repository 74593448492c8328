package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/services"
)

// TopupTokener defines only the methods needed by this handler.
type TopupTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TopupWriter defines the interface that the service must implement.
type TopupWriter interface {
	Topup(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
}

// TopupRequest represents the JSON body for topping up the balance
// swagger:model TopupRequest
type TopupRequest struct {
	// Amount to credit, in the smallest denomination
	// required: true
	// default: 100
	Amount int64 `json:"amount"`
}

// TopupResponse represents a successful topup response
// swagger:model TopupResponse
type TopupResponse struct {
	// Success message
	// default: Account topped up successfully
	Message string `json:"message"`

	// New balance of the account
	NewBalance int64 `json:"new_balance"`
}

// TopupErrorResponse represents an error response for topup
// swagger:model TopupErrorResponse
type TopupErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewTopupHandler returns an HTTP handler for crediting the caller's balance.
// Payment capture is mocked: the credited amount is taken from the request.
// @Summary Top up balance
// @Description Credits the caller's account with the given amount
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.TopupRequest true "Topup Request"
// @Success 200 {object} handlers.TopupResponse "Account topped up successfully"
// @Failure 400 {object} handlers.TopupErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.TopupErrorResponse "Unauthorized"
// @Router /wallet/topup [post]
// @Security BearerAuth
func NewTopupHandler(svc TopupWriter, tokenGetter TopupTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TopupErrorResponse{Error: "Unauthorized"})
			return
		}

		var req TopupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TopupErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Amount <= 0 {
			logger.Log.Warnw("invalid topup amount", "amount", req.Amount)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TopupErrorResponse{Error: "Invalid amount"})
			return
		}

		balance, err := svc.Topup(ctx, claims.UserID, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TopupErrorResponse{Error: "Account not found"})
				return
			}
			logger.Log.Errorw("failed to top up", "userID", claims.UserID, "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TopupErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TopupResponse{
			Message:    "Account topped up successfully",
			NewBalance: balance,
		})
	}
}
