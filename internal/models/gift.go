package models

import (
	"time"

	"github.com/google/uuid"
)

// Gift kinds. The kind is the tag of the payload union: a money gift
// carries an amount, an item gift carries the item columns.
const (
	GiftKindMoney = "money"
	GiftKindItem  = "item"
)

// Gift statuses. A gift starts pending and transitions exactly once to
// one of the terminal statuses.
const (
	GiftStatusPending  = "pending"
	GiftStatusAccepted = "accepted"
	GiftStatusRejected = "rejected"
	GiftStatusReturned = "returned"
)

// GiftDB represents a gift row in the database. While status is pending
// the transferred value is held in escrow: the money has already been
// debited from the sender, or the item has left the sender's inventory.
// Item gifts snapshot type, rarity and price at send time so reversal
// never depends on a live catalog read.
type GiftDB struct {
	GiftID     uuid.UUID  `json:"gift_id" db:"gift_id"`         // Primary key
	SenderID   uuid.UUID  `json:"sender_id" db:"sender_id"`     // Debited account
	ReceiverID uuid.UUID  `json:"receiver_id" db:"receiver_id"` // Account eligible to accept
	Kind       string     `json:"kind" db:"kind"`               // Payload tag: money or item
	Amount     *int64     `json:"amount,omitempty" db:"amount"` // Money payload
	ItemID     *uuid.UUID `json:"item_id,omitempty" db:"item_id"`
	ItemType   *string    `json:"item_type,omitempty" db:"item_type"`
	ItemRarity *string    `json:"item_rarity,omitempty" db:"item_rarity"`
	ItemPrice  *int64     `json:"item_price,omitempty" db:"item_price"` // Catalog price at send time
	Status     string     `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// Expired reports whether a pending gift has outlived its window.
// Callers must resolve an expired gift before acting on its status.
func (g *GiftDB) Expired(now time.Time) bool {
	return g.Status == GiftStatusPending && now.After(g.ExpiresAt)
}
