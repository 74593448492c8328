package models

import "github.com/google/uuid"

// Known item types from the catalog service.
const (
	ItemTypeFrame      = "FRAME"
	ItemTypeBubble     = "BUBBLE"
	ItemTypeBackground = "BACKGROUND"
)

// Item is a catalog item definition as served by the catalog service.
// The economy core treats it as read-only.
type Item struct {
	ItemID uuid.UUID `json:"item_id"` // Catalog identifier
	Type   string    `json:"type"`    // Item type (FRAME, BUBBLE, BACKGROUND, ...)
	Rarity string    `json:"rarity"`  // Rarity label
	Price  int64     `json:"price"`   // Store price in balance units
}
