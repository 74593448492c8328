package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/jwt"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
	"github.com/inklore/economy-service/internal/services"
)

// GiftTokener defines only the methods needed by the gift handlers.
type GiftTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// GiftSender defines the interface that the gift service must implement.
type GiftSender interface {
	Send(ctx context.Context, senderID, receiverID uuid.UUID, kind string, amount int64, itemID *uuid.UUID) (*models.GiftDB, error)
}

// SendGiftRequest represents the JSON body for sending a gift. The kind
// tags the payload: a money gift carries amount, an item gift carries
// item_id.
// swagger:model SendGiftRequest
type SendGiftRequest struct {
	// Receiving user
	// required: true
	ReceiverID uuid.UUID `json:"receiver_id"`

	// Gift kind: money or item
	// required: true
	// default: money
	Kind string `json:"kind"`

	// Amount for money gifts
	// default: 100
	Amount int64 `json:"amount,omitempty"`

	// Owned item for item gifts
	ItemID *uuid.UUID `json:"item_id,omitempty"`
}

// SendGiftResponse represents a successful gift send
// swagger:model SendGiftResponse
type SendGiftResponse struct {
	// Success message
	// default: Gift sent
	Message string `json:"message"`

	// Created gift
	Gift *models.GiftDB `json:"gift"`
}

// GiftErrorResponse represents an error response for gift operations
// swagger:model GiftErrorResponse
type GiftErrorResponse struct {
	// Error message
	// default: Gifting not permitted
	Error string `json:"error"`
}

// NewSendGiftHandler returns an HTTP handler for placing a gift in escrow.
// @Summary Send a gift
// @Description Debits the sender and holds the value in escrow until the receiver resolves it or the window expires
// @Tags gifts
// @Accept json
// @Produce json
// @Param request body handlers.SendGiftRequest true "Send Gift Request"
// @Success 201 {object} handlers.SendGiftResponse "Gift sent"
// @Failure 400 {object} handlers.GiftErrorResponse "Invalid request"
// @Failure 401 {object} handlers.GiftErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.GiftErrorResponse "Insufficient funds"
// @Failure 403 {object} handlers.GiftErrorResponse "Gifting not permitted"
// @Failure 404 {object} handlers.GiftErrorResponse "Item not found or not owned"
// @Router /gifts [post]
// @Security BearerAuth
func NewSendGiftHandler(svc GiftSender, tokenGetter GiftTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SendGiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.ReceiverID == uuid.Nil || req.ReceiverID == claims.UserID {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Invalid receiver"})
			return
		}

		gift, err := svc.Send(ctx, claims.UserID, req.ReceiverID, req.Kind, req.Amount, req.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidGiftPayload):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Invalid gift payload"})
			case errors.Is(err, services.ErrNoChannel):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Gifting not permitted"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Item not found"})
			case errors.Is(err, services.ErrNotOwned):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Item not owned"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to send gift", "senderID", claims.UserID, "receiverID", req.ReceiverID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SendGiftResponse{
			Message: "Gift sent",
			Gift:    gift,
		})
	}
}
