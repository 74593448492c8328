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

// PurchaseTokener defines only the methods needed by this handler.
type PurchaseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Purchaser defines the interface that the store service must implement.
type Purchaser interface {
	Purchase(ctx context.Context, accountID, itemID uuid.UUID) (int64, error)
	ListPurchases(ctx context.Context, accountID uuid.UUID) ([]models.PurchaseDB, error)
}

// PurchaseRequest represents the JSON body for buying a store item
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Catalog item to buy
	// required: true
	ItemID uuid.UUID `json:"item_id"`
}

// PurchaseResponse represents a successful purchase response
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// Success message
	// default: Item purchased successfully
	Message string `json:"message"`

	// New balance after the debit
	NewBalance int64 `json:"new_balance"`
}

// PurchaseErrorResponse represents an error response for purchase
// swagger:model PurchaseErrorResponse
type PurchaseErrorResponse struct {
	// Error message
	// default: Insufficient funds
	Error string `json:"error"`
}

// PurchaseListResponse represents the purchase history
// swagger:model PurchaseListResponse
type PurchaseListResponse struct {
	Purchases []models.PurchaseDB `json:"purchases"`
}

// NewPurchaseHandler returns an HTTP handler for buying a catalog item.
// The debit, the inventory grant and the audit record commit or roll
// back together with the request transaction.
// @Summary Buy a store item
// @Description Exchanges balance for a catalog item
// @Tags store
// @Accept json
// @Produce json
// @Param request body handlers.PurchaseRequest true "Purchase Request"
// @Success 200 {object} handlers.PurchaseResponse "Item purchased successfully"
// @Failure 400 {object} handlers.PurchaseErrorResponse "Invalid request"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.PurchaseErrorResponse "Insufficient funds"
// @Failure 404 {object} handlers.PurchaseErrorResponse "Item not found"
// @Failure 409 {object} handlers.PurchaseErrorResponse "Already owned"
// @Router /store/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc Purchaser, tokenGetter PurchaseTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Invalid request body"})
			return
		}

		balance, err := svc.Purchase(ctx, claims.UserID, req.ItemID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Item not found"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrAlreadyOwned):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Item already owned"})
			case errors.Is(err, services.ErrAccountNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Account not found"})
			default:
				logger.Log.Errorw("failed to purchase item", "userID", claims.UserID, "itemID", req.ItemID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseResponse{
			Message:    "Item purchased successfully",
			NewBalance: balance,
		})
	}
}

// NewListPurchasesHandler returns an HTTP handler for the caller's purchase history.
// @Summary List purchases
// @Description Returns the caller's purchase history, newest first
// @Tags store
// @Produce json
// @Success 200 {object} handlers.PurchaseListResponse "Purchase history"
// @Failure 401 {object} handlers.PurchaseErrorResponse "Unauthorized"
// @Router /store/purchases [get]
// @Security BearerAuth
func NewListPurchasesHandler(svc Purchaser, tokenGetter PurchaseTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Unauthorized"})
			return
		}

		purchases, err := svc.ListPurchases(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list purchases", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PurchaseErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PurchaseListResponse{Purchases: purchases})
	}
}
