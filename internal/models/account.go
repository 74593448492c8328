package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account row in the database.
// One account exists per user; balance is stored in the smallest
// currency denomination and never goes negative.
type AccountDB struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"` // Primary key, equals the owning user's ID
	Balance   int64     `json:"balance" db:"balance"`       // Spendable balance, non-negative
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the account was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last balance change
}
