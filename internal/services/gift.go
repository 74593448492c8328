package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

var (
	// ErrNoChannel is returned when the social graph does not permit gifting between the two users.
	ErrNoChannel = errors.New("gifting not permitted between these users")
	// ErrGiftNotFound is returned when the gift does not exist.
	ErrGiftNotFound = errors.New("gift not found")
	// ErrNotYourGift is returned when the caller is not the gift's receiver.
	ErrNotYourGift = errors.New("gift addressed to another user")
	// ErrAlreadyResolved is returned when the gift has already reached a terminal status.
	ErrAlreadyResolved = errors.New("gift already resolved")
	// ErrGiftExpired is returned when the gift expired and was returned to the sender.
	ErrGiftExpired = errors.New("gift expired")
	// ErrInvalidGiftPayload is returned when the payload does not match the gift kind.
	ErrInvalidGiftPayload = errors.New("invalid gift payload")
)

// GiftChannelChecker asks the social graph whether two users may
// exchange gifts.
type GiftChannelChecker interface {
	CanExchangeGifts(ctx context.Context, senderID, receiverID uuid.UUID) (bool, error)
}

// EscrowLedger applies balance deltas for escrow debits and credits.
type EscrowLedger interface {
	Adjust(ctx context.Context, accountID uuid.UUID, delta int64) (int64, error)
}

// EscrowInventory moves items in and out of escrow.
type EscrowInventory interface {
	Grant(ctx context.Context, accountID, itemID uuid.UUID, itemType string) error
	Revoke(ctx context.Context, accountID, itemID uuid.UUID) error
}

// GiftCatalogReader snapshots item definitions at send time.
type GiftCatalogReader interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
}

// GiftWriter persists gift rows and status transitions.
type GiftWriter interface {
	Save(ctx context.Context, gift *models.GiftDB) error
	Resolve(ctx context.Context, giftID uuid.UUID, status string) (bool, error) // CAS from pending; false if already terminal
}

// GiftReader reads gift rows.
type GiftReader interface {
	GetByIDForUpdate(ctx context.Context, giftID uuid.UUID) (*models.GiftDB, error)
	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]models.GiftDB, error)
	ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.GiftDB, error)
}

// GiftService implements the peer-to-peer gift escrow. A sent gift
// holds the transferred value in escrow until the receiver accepts or
// rejects it, or until the expiry window passes and a read resolves it
// back to the sender. Expiry is detected lazily: every path that reads
// a pending gift resolves it first. Statuses are terminal once set.
type GiftService struct {
	social    GiftChannelChecker
	ledger    EscrowLedger
	inventory EscrowInventory
	catalog   GiftCatalogReader
	writeRepo GiftWriter
	readRepo  GiftReader
	events    Publisher
	window    time.Duration
}

// NewGiftService creates a new GiftService with the given expiry window.
func NewGiftService(
	social GiftChannelChecker,
	ledger EscrowLedger,
	inventory EscrowInventory,
	catalog GiftCatalogReader,
	writeRepo GiftWriter,
	readRepo GiftReader,
	events Publisher,
	window time.Duration,
) *GiftService {
	return &GiftService{
		social:    social,
		ledger:    ledger,
		inventory: inventory,
		catalog:   catalog,
		writeRepo: writeRepo,
		readRepo:  readRepo,
		events:    events,
		window:    window,
	}
}

// Send places a gift in escrow. The channel-of-trust check runs before
// any debit. For a money gift the sender is debited exactly once; for
// an item gift the entry leaves the sender's inventory the instant it
// enters escrow, with type, rarity and price snapshotted for reversal.
// All effects share the caller's transaction.
func (s *GiftService) Send(ctx context.Context, senderID, receiverID uuid.UUID, kind string, amount int64, itemID *uuid.UUID) (*models.GiftDB, error) {
	allowed, err := s.social.CanExchangeGifts(ctx, senderID, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to check gift channel", "senderID", senderID, "receiverID", receiverID, "error", err)
		return nil, err
	}
	if !allowed {
		return nil, ErrNoChannel
	}

	now := time.Now()
	gift := &models.GiftDB{
		GiftID:     uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Kind:       kind,
		Status:     models.GiftStatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.window),
	}

	switch kind {
	case models.GiftKindMoney:
		if amount <= 0 {
			return nil, ErrInvalidGiftPayload
		}
		if _, err := s.ledger.Adjust(ctx, senderID, -amount); err != nil {
			logger.Log.Errorw("failed to debit gift escrow", "senderID", senderID, "amount", amount, "error", err)
			return nil, err
		}
		gift.Amount = &amount

	case models.GiftKindItem:
		if itemID == nil {
			return nil, ErrInvalidGiftPayload
		}
		item, err := s.catalog.GetItem(ctx, *itemID)
		if err != nil {
			logger.Log.Errorw("failed to fetch gifted item from catalog", "itemID", *itemID, "error", err)
			return nil, err
		}
		if item == nil {
			return nil, ErrItemNotFound
		}
		if err := s.inventory.Revoke(ctx, senderID, *itemID); err != nil {
			logger.Log.Errorw("failed to move item into escrow", "senderID", senderID, "itemID", *itemID, "error", err)
			return nil, err
		}
		gift.ItemID = itemID
		gift.ItemType = &item.Type
		gift.ItemRarity = &item.Rarity
		gift.ItemPrice = &item.Price

	default:
		return nil, ErrInvalidGiftPayload
	}

	if err := s.writeRepo.Save(ctx, gift); err != nil {
		logger.Log.Errorw("failed to save gift", "giftID", gift.GiftID, "error", err)
		return nil, err
	}

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventGiftSent,
			AccountID: receiverID.String(),
			GiftID:    gift.GiftID.String(),
			Amount:    amount,
		})
	}

	return gift, nil
}

// reverseToSender credits the escrowed value back to the sender. When
// an item cannot be re-granted because the sender re-acquired it in the
// meantime, the sender is credited the item's price as snapshotted at
// send time instead.
func (s *GiftService) reverseToSender(ctx context.Context, gift *models.GiftDB) error {
	switch gift.Kind {
	case models.GiftKindMoney:
		_, err := s.ledger.Adjust(ctx, gift.SenderID, *gift.Amount)
		return err

	case models.GiftKindItem:
		err := s.inventory.Grant(ctx, gift.SenderID, *gift.ItemID, *gift.ItemType)
		if errors.Is(err, ErrAlreadyOwned) {
			logger.Log.Warnw("sender re-acquired gifted item, crediting snapshot price instead",
				"giftID", gift.GiftID, "senderID", gift.SenderID, "itemID", *gift.ItemID, "price", *gift.ItemPrice)
			_, err = s.ledger.Adjust(ctx, gift.SenderID, *gift.ItemPrice)
		}
		return err

	default:
		return ErrInvalidGiftPayload
	}
}

// resolveExpiry returns an expired pending gift to its sender. It must
// run before any caller acts on a gift's status. The pending-to-
// returned transition is a compare-and-swap, so a second resolver
// observes false and does not credit the sender twice. Reports whether
// this call resolved the gift.
func (s *GiftService) resolveExpiry(ctx context.Context, gift *models.GiftDB) (bool, error) {
	if !gift.Expired(time.Now()) {
		return false, nil
	}

	claimed, err := s.writeRepo.Resolve(ctx, gift.GiftID, models.GiftStatusReturned)
	if err != nil {
		logger.Log.Errorw("failed to mark gift returned", "giftID", gift.GiftID, "error", err)
		return false, err
	}
	if !claimed {
		// Another request resolved the gift concurrently.
		return false, nil
	}

	if err := s.reverseToSender(ctx, gift); err != nil {
		logger.Log.Errorw("failed to reverse expired gift", "giftID", gift.GiftID, "error", err)
		return false, err
	}

	gift.Status = models.GiftStatusReturned

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventGiftReturned,
			AccountID: gift.SenderID.String(),
			GiftID:    gift.GiftID.String(),
		})
	}

	return true, nil
}

// loadForResolution locks the gift row and applies lazy expiry before
// the caller acts on it.
func (s *GiftService) loadForResolution(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error) {
	gift, err := s.readRepo.GetByIDForUpdate(ctx, giftID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGiftNotFound
		}
		logger.Log.Errorw("failed to load gift", "giftID", giftID, "error", err)
		return nil, err
	}

	if gift.ReceiverID != receiverID {
		return nil, ErrNotYourGift
	}

	returned, err := s.resolveExpiry(ctx, gift)
	if err != nil {
		return nil, err
	}
	if returned {
		return nil, ErrGiftExpired
	}

	if gift.Status != models.GiftStatusPending {
		return nil, ErrAlreadyResolved
	}

	return gift, nil
}

// Accept credits the escrowed value to the receiver and marks the gift
// accepted. If the receiver already owns a gifted item the call fails
// with ErrAlreadyOwned and the gift stays pending: unlike an expiry
// return this case cannot auto-resolve and must surface to the caller.
func (s *GiftService) Accept(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error) {
	gift, err := s.loadForResolution(ctx, giftID, receiverID)
	if err != nil {
		return nil, err
	}

	switch gift.Kind {
	case models.GiftKindMoney:
		if _, err := s.ledger.Adjust(ctx, receiverID, *gift.Amount); err != nil {
			logger.Log.Errorw("failed to credit accepted gift", "giftID", giftID, "receiverID", receiverID, "error", err)
			return nil, err
		}
	case models.GiftKindItem:
		if err := s.inventory.Grant(ctx, receiverID, *gift.ItemID, *gift.ItemType); err != nil {
			logger.Log.Errorw("failed to grant accepted gift", "giftID", giftID, "receiverID", receiverID, "error", err)
			return nil, err
		}
	default:
		return nil, ErrInvalidGiftPayload
	}

	claimed, err := s.writeRepo.Resolve(ctx, giftID, models.GiftStatusAccepted)
	if err != nil {
		logger.Log.Errorw("failed to mark gift accepted", "giftID", giftID, "error", err)
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyResolved
	}

	gift.Status = models.GiftStatusAccepted

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventGiftAccepted,
			AccountID: gift.SenderID.String(),
			GiftID:    giftID.String(),
		})
	}

	return gift, nil
}

// Reject reverses the escrow back to the sender and marks the gift
// rejected. Escrowed value can never vanish: rejection performs the
// same reversal as an expiry return.
func (s *GiftService) Reject(ctx context.Context, giftID, receiverID uuid.UUID) (*models.GiftDB, error) {
	gift, err := s.loadForResolution(ctx, giftID, receiverID)
	if err != nil {
		return nil, err
	}

	if err := s.reverseToSender(ctx, gift); err != nil {
		logger.Log.Errorw("failed to reverse rejected gift", "giftID", giftID, "error", err)
		return nil, err
	}

	claimed, err := s.writeRepo.Resolve(ctx, giftID, models.GiftStatusRejected)
	if err != nil {
		logger.Log.Errorw("failed to mark gift rejected", "giftID", giftID, "error", err)
		return nil, err
	}
	if !claimed {
		return nil, ErrAlreadyResolved
	}

	gift.Status = models.GiftStatusRejected

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventGiftRejected,
			AccountID: gift.SenderID.String(),
			GiftID:    giftID.String(),
		})
	}

	return gift, nil
}

// resolveExpired applies lazy expiry to every pending gift in a listing.
func (s *GiftService) resolveExpired(ctx context.Context, gifts []models.GiftDB) error {
	for i := range gifts {
		if _, err := s.resolveExpiry(ctx, &gifts[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListIncoming returns gifts addressed to the account, resolving
// expired ones first.
func (s *GiftService) ListIncoming(ctx context.Context, receiverID uuid.UUID) ([]models.GiftDB, error) {
	gifts, err := s.readRepo.ListByReceiver(ctx, receiverID)
	if err != nil {
		logger.Log.Errorw("failed to list incoming gifts", "receiverID", receiverID, "error", err)
		return nil, err
	}
	if err := s.resolveExpired(ctx, gifts); err != nil {
		return nil, err
	}
	return gifts, nil
}

// ListOutgoing returns gifts sent by the account, resolving expired
// ones first.
func (s *GiftService) ListOutgoing(ctx context.Context, senderID uuid.UUID) ([]models.GiftDB, error) {
	gifts, err := s.readRepo.ListBySender(ctx, senderID)
	if err != nil {
		logger.Log.Errorw("failed to list outgoing gifts", "senderID", senderID, "error", err)
		return nil, err
	}
	if err := s.resolveExpired(ctx, gifts); err != nil {
		return nil, err
	}
	return gifts, nil
}
