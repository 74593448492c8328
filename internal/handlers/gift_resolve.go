package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
	"github.com/inklore/economy-service/internal/services"
)

// GiftResolver defines the interface that the gift service must implement.
type GiftResolver interface {
	Accept(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error)
	Reject(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error)
}

// ResolveGiftResponse represents a successful gift resolution
// swagger:model ResolveGiftResponse
type ResolveGiftResponse struct {
	// Success message
	// default: Gift accepted
	Message string `json:"message"`

	// Resolved gift
	Gift *models.GiftDB `json:"gift"`
}

// resolveGift runs accept or reject with shared parsing and error mapping.
func resolveGift(
	tokenGetter GiftTokener,
	action func(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error),
	successMessage string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Unauthorized"})
			return
		}

		giftID, err := uuid.Parse(chi.URLParam(r, "giftID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Invalid gift ID"})
			return
		}

		gift, err := action(ctx, giftID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGiftNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Gift not found"})
			case errors.Is(err, services.ErrNotYourGift):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Gift addressed to another user"})
			case errors.Is(err, services.ErrGiftExpired):
				w.WriteHeader(http.StatusGone)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Gift expired"})
			case errors.Is(err, services.ErrAlreadyResolved):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Gift already resolved"})
			case errors.Is(err, services.ErrAlreadyOwned):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Item already owned"})
			default:
				logger.Log.Errorw("failed to resolve gift", "giftID", giftID, "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GiftErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ResolveGiftResponse{
			Message: successMessage,
			Gift:    gift,
		})
	}
}

// NewAcceptGiftHandler returns an HTTP handler for accepting a pending gift.
// Expired gifts are returned to the sender before the acceptance is
// considered, so accepting one fails with 410.
// @Summary Accept a gift
// @Description Credits the escrowed value to the caller and marks the gift accepted
// @Tags gifts
// @Produce json
// @Param giftID path string true "Gift ID"
// @Success 200 {object} handlers.ResolveGiftResponse "Gift accepted"
// @Failure 401 {object} handlers.GiftErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GiftErrorResponse "Gift addressed to another user"
// @Failure 404 {object} handlers.GiftErrorResponse "Gift not found"
// @Failure 409 {object} handlers.GiftErrorResponse "Already resolved or item already owned"
// @Failure 410 {object} handlers.GiftErrorResponse "Gift expired"
// @Router /gifts/{giftID}/accept [post]
// @Security BearerAuth
func NewAcceptGiftHandler(svc GiftResolver, tokenGetter GiftTokener) http.HandlerFunc {
	return resolveGift(tokenGetter, svc.Accept, "Gift accepted")
}

// NewRejectGiftHandler returns an HTTP handler for rejecting a pending gift.
// Rejection reverses the escrow back to the sender.
// @Summary Reject a gift
// @Description Returns the escrowed value to the sender and marks the gift rejected
// @Tags gifts
// @Produce json
// @Param giftID path string true "Gift ID"
// @Success 200 {object} handlers.ResolveGiftResponse "Gift rejected"
// @Failure 401 {object} handlers.GiftErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.GiftErrorResponse "Gift addressed to another user"
// @Failure 404 {object} handlers.GiftErrorResponse "Gift not found"
// @Failure 409 {object} handlers.GiftErrorResponse "Already resolved"
// @Failure 410 {object} handlers.GiftErrorResponse "Gift expired"
// @Router /gifts/{giftID}/reject [post]
// @Security BearerAuth
func NewRejectGiftHandler(svc GiftResolver, tokenGetter GiftTokener) http.HandlerFunc {
	return resolveGift(tokenGetter, svc.Reject, "Gift rejected")
}
