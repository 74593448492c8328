package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// GiftLister defines the interface that the gift service must implement.
type GiftLister interface {
	ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]models.GiftDB, error)
	ListOutgoing(ctx context.Context, senderID uuid.UUID) ([]models.GiftDB, error)
}

// GiftListResponse represents a gift listing
// swagger:model GiftListResponse
type GiftListResponse struct {
	Gifts []models.GiftDB `json:"gifts"`
}

// listGifts runs one listing with shared error mapping. Expired pending
// gifts are resolved by the service before the listing is returned.
func listGifts(
	tokenGetter GiftTokener,
	list func(ctx context.Context, accountID uuid.UUID) ([]models.GiftDB, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Unauthorized"})
			return
		}

		gifts, err := list(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list gifts", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GiftListResponse{Gifts: gifts})
	}
}

// NewListIncomingGiftsHandler returns an HTTP handler for gifts addressed to the caller.
// @Summary List incoming gifts
// @Description Returns gifts addressed to the caller, newest first
// @Tags gifts
// @Produce json
// @Success 200 {object} handlers.GiftListResponse "Incoming gifts"
// @Failure 401 {object} handlers.GiftErrorResponse "Unauthorized"
// @Router /gifts/incoming [get]
// @Security BearerAuth
func NewListIncomingGiftsHandler(svc GiftLister, tokenGetter GiftTokener) http.HandlerFunc {
	return listGifts(tokenGetter, svc.ListIncoming)
}

// NewListOutgoingGiftsHandler returns an HTTP handler for gifts sent by the caller.
// @Summary List outgoing gifts
// @Description Returns gifts sent by the caller, newest first
// @Tags gifts
// @Produce json
// @Success 200 {object} handlers.GiftListResponse "Outgoing gifts"
// @Failure 401 {object} handlers.GiftErrorResponse "Unauthorized"
// @Router /gifts/outgoing [get]
// @Security BearerAuth
func NewListOutgoingGiftsHandler(svc GiftLister, tokenGetter GiftTokener) http.HandlerFunc {
	return listGifts(tokenGetter, svc.ListOutgoing)
}
