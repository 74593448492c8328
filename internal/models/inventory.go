package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryEntryDB represents ownership of one catalog item by one account.
// The (account_id, item_id) pair is unique, and per item type at most one
// entry is equipped for a given account.
type InventoryEntryDB struct {
	EntryID    uuid.UUID `json:"entry_id" db:"entry_id"`       // Primary key
	AccountID  uuid.UUID `json:"account_id" db:"account_id"`   // Owning account
	ItemID     uuid.UUID `json:"item_id" db:"item_id"`         // Catalog item
	ItemType   string    `json:"item_type" db:"item_type"`     // Type snapshot taken at grant time
	Equipped   bool      `json:"equipped" db:"equipped"`       // Whether the item is currently equipped
	AcquiredAt time.Time `json:"acquired_at" db:"acquired_at"` // Timestamp of the grant
}
