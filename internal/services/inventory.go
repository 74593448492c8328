package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

var (
	// ErrAlreadyOwned is returned when an account already holds the item.
	ErrAlreadyOwned = errors.New("item already owned")
	// ErrNotOwned is returned when an account does not hold the item.
	ErrNotOwned = errors.New("item not owned")
)

// InventoryMutator mutates inventory rows.
type InventoryMutator interface {
	Grant(ctx context.Context, accountID, itemID uuid.UUID, itemType string) (bool, error) // Creates an entry; false if one exists
	Revoke(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)                 // Deletes the entry; false if absent
	Equip(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)                  // Equips the item, clearing others of its type
	Unequip(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)                // Clears the equipped flag
}

// InventoryLister reads inventory rows.
type InventoryLister interface {
	Exists(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.InventoryEntryDB, error)
}

// InventoryService owns per-account item ownership and per-type equip
// exclusivity.
type InventoryService struct {
	mutator InventoryMutator
	lister  InventoryLister
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(mutator InventoryMutator, lister InventoryLister) *InventoryService {
	return &InventoryService{
		mutator: mutator,
		lister:  lister,
	}
}

// Grant creates an inventory entry for the account. Fails with
// ErrAlreadyOwned when the account already holds the item.
func (s *InventoryService) Grant(ctx context.Context, accountID, itemID uuid.UUID, itemType string) error {
	granted, err := s.mutator.Grant(ctx, accountID, itemID, itemType)
	if err != nil {
		logger.Log.Errorw("failed to grant item", "accountID", accountID, "itemID", itemID, "error", err)
		return err
	}
	if !granted {
		return ErrAlreadyOwned
	}
	return nil
}

// Revoke removes the entry. Fails with ErrNotOwned when absent.
func (s *InventoryService) Revoke(ctx context.Context, accountID, itemID uuid.UUID) error {
	revoked, err := s.mutator.Revoke(ctx, accountID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to revoke item", "accountID", accountID, "itemID", itemID, "error", err)
		return err
	}
	if !revoked {
		return ErrNotOwned
	}
	return nil
}

// Equip marks the item as equipped and clears every other entry of the
// same type in one statement. Equipping an already-equipped item is a
// no-op success.
func (s *InventoryService) Equip(ctx context.Context, accountID, itemID uuid.UUID) error {
	equipped, err := s.mutator.Equip(ctx, accountID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to equip item", "accountID", accountID, "itemID", itemID, "error", err)
		return err
	}
	if !equipped {
		return ErrNotOwned
	}
	return nil
}

// Unequip clears the equipped flag. Unequipping an already-unequipped
// item is a no-op success.
func (s *InventoryService) Unequip(ctx context.Context, accountID, itemID uuid.UUID) error {
	unequipped, err := s.mutator.Unequip(ctx, accountID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to unequip item", "accountID", accountID, "itemID", itemID, "error", err)
		return err
	}
	if !unequipped {
		return ErrNotOwned
	}
	return nil
}

// Owns reports whether the account holds the item.
func (s *InventoryService) Owns(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	return s.lister.Exists(ctx, accountID, itemID)
}

// List returns all inventory entries for the account.
func (s *InventoryService) List(ctx context.Context, accountID uuid.UUID) ([]models.InventoryEntryDB, error) {
	entries, err := s.lister.ListByAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list inventory", "accountID", accountID, "error", err)
		return nil, err
	}
	return entries, nil
}
