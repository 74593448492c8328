package models

// Economy event types published to the notification stream.
const (
	EventTopup        = "topup"
	EventPurchase     = "purchase"
	EventGiftSent     = "gift_sent"
	EventGiftAccepted = "gift_accepted"
	EventGiftRejected = "gift_rejected"
	EventGiftReturned = "gift_returned"
)

// Event is a best-effort notification about an economic operation.
// Delivery failures are logged and discarded; events never affect the
// outcome of the operation that produced them.
type Event struct {
	EventID   string `json:"event_id"`           // Unique event identifier
	Type      string `json:"type"`               // One of the Event* constants
	AccountID string `json:"account_id"`         // Account the event is addressed to
	GiftID    string `json:"gift_id,omitempty"`  // Related gift, if any
	ItemID    string `json:"item_id,omitempty"`  // Related item, if any
	Amount    int64  `json:"amount,omitempty"`   // Related amount, if any
	Timestamp int64  `json:"timestamp"`          // Unix seconds
}
