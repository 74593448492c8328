package models

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseDB represents a completed store transaction. Rows are
// append-only audit records created in the same transaction as the
// matching debit and inventory grant.
type PurchaseDB struct {
	PurchaseID uuid.UUID `json:"purchase_id" db:"purchase_id"` // Primary key
	AccountID  uuid.UUID `json:"account_id" db:"account_id"`   // Buyer
	ItemID     uuid.UUID `json:"item_id" db:"item_id"`         // Purchased item
	Price      int64     `json:"price" db:"price"`             // Price paid
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Purchase timestamp
}
