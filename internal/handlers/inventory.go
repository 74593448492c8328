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

// InventoryTokener defines only the methods needed by these handlers.
type InventoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// InventoryManager defines the interface that the inventory service must implement.
type InventoryManager interface {
	List(ctx context.Context, accountID uuid.UUID) ([]models.InventoryEntryDB, error)
	Equip(ctx context.Context, accountID, itemID uuid.UUID) error
	Unequip(ctx context.Context, accountID, itemID uuid.UUID) error
}

// InventoryListResponse represents the caller's inventory
// swagger:model InventoryListResponse
type InventoryListResponse struct {
	Items []models.InventoryEntryDB `json:"items"`
}

// EquipRequest represents the JSON body for equip and unequip
// swagger:model EquipRequest
type EquipRequest struct {
	// Owned item to equip or unequip
	// required: true
	ItemID uuid.UUID `json:"item_id"`
}

// EquipResponse represents a successful equip or unequip response
// swagger:model EquipResponse
type EquipResponse struct {
	// Success message
	// default: Item equipped
	Message string `json:"message"`
}

// InventoryErrorResponse represents an error response for inventory operations
// swagger:model InventoryErrorResponse
type InventoryErrorResponse struct {
	// Error message
	// default: Item not owned
	Error string `json:"error"`
}

// NewListInventoryHandler returns an HTTP handler for listing the caller's items.
// @Summary List inventory
// @Description Returns the caller's inventory entries, newest first
// @Tags inventory
// @Produce json
// @Success 200 {object} handlers.InventoryListResponse "Inventory entries"
// @Failure 401 {object} handlers.InventoryErrorResponse "Unauthorized"
// @Router /inventory [get]
// @Security BearerAuth
func NewListInventoryHandler(svc InventoryManager, tokenGetter InventoryTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Unauthorized"})
			return
		}

		items, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list inventory", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InventoryListResponse{Items: items})
	}
}

// equipAction runs one equip-style mutation with shared decoding and
// error mapping.
func equipAction(
	tokenGetter InventoryTokener,
	action func(ctx context.Context, accountID, itemID uuid.UUID) error,
	successMessage string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := claimsFromRequest(ctx, tokenGetter, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Unauthorized"})
			return
		}

		var req EquipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ItemID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := action(ctx, claims.UserID, req.ItemID); err != nil {
			if errors.Is(err, services.ErrNotOwned) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Item not owned"})
				return
			}
			logger.Log.Errorw("inventory action failed", "userID", claims.UserID, "itemID", req.ItemID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(InventoryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(EquipResponse{Message: successMessage})
	}
}

// NewEquipHandler returns an HTTP handler for equipping an owned item.
// Equipping clears every other equipped item of the same type.
// @Summary Equip an item
// @Description Marks an owned item as equipped, at most one per item type
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body handlers.EquipRequest true "Equip Request"
// @Success 200 {object} handlers.EquipResponse "Item equipped"
// @Failure 400 {object} handlers.InventoryErrorResponse "Invalid request"
// @Failure 401 {object} handlers.InventoryErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.InventoryErrorResponse "Item not owned"
// @Router /inventory/equip [post]
// @Security BearerAuth
func NewEquipHandler(svc InventoryManager, tokenGetter InventoryTokener) http.HandlerFunc {
	return equipAction(tokenGetter, svc.Equip, "Item equipped")
}

// NewUnequipHandler returns an HTTP handler for unequipping an owned item.
// @Summary Unequip an item
// @Description Clears the equipped flag on an owned item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body handlers.EquipRequest true "Unequip Request"
// @Success 200 {object} handlers.EquipResponse "Item unequipped"
// @Failure 400 {object} handlers.InventoryErrorResponse "Invalid request"
// @Failure 401 {object} handlers.InventoryErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.InventoryErrorResponse "Item not owned"
// @Router /inventory/unequip [post]
// @Security BearerAuth
func NewUnequipHandler(svc InventoryManager, tokenGetter InventoryTokener) http.HandlerFunc {
	return equipAction(tokenGetter, svc.Unequip, "Item unequipped")
}
