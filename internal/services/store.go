package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

var (
	// ErrItemNotFound is returned when the catalog does not know the item.
	ErrItemNotFound = errors.New("item not found")
)

// CatalogReader fetches item definitions from the catalog service.
// A nil item with a nil error means the item does not exist.
type CatalogReader interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
}

// CatalogCacheReader caches item definitions.
type CatalogCacheReader interface {
	GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error)
	SetItem(ctx context.Context, item *models.Item) error
}

// BalanceAdjuster applies signed balance deltas through the ledger.
type BalanceAdjuster interface {
	Adjust(ctx context.Context, accountID uuid.UUID, delta int64) (int64, error)
}

// ItemGranter creates inventory entries.
type ItemGranter interface {
	Grant(ctx context.Context, accountID, itemID uuid.UUID, itemType string) error
	Owns(ctx context.Context, accountID, itemID uuid.UUID) (bool, error)
}

// PurchaseWriter appends purchase audit records.
type PurchaseWriter interface {
	Save(ctx context.Context, accountID, itemID uuid.UUID, price int64) error
}

// PurchaseReader reads purchase history.
type PurchaseReader interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.PurchaseDB, error)
}

// StoreService composes the ledger debit and the inventory grant into
// one all-or-nothing purchase. The surrounding request transaction
// makes the composition atomic: any failed step rolls back every
// effect.
type StoreService struct {
	catalog   CatalogReader
	cache     CatalogCacheReader
	ledger    BalanceAdjuster
	inventory ItemGranter
	writeRepo PurchaseWriter
	readRepo  PurchaseReader
	events    Publisher
}

// NewStoreService creates a new StoreService.
func NewStoreService(
	catalog CatalogReader,
	cache CatalogCacheReader,
	ledger BalanceAdjuster,
	inventory ItemGranter,
	writeRepo PurchaseWriter,
	readRepo PurchaseReader,
	events Publisher,
) *StoreService {
	return &StoreService{
		catalog:   catalog,
		cache:     cache,
		ledger:    ledger,
		inventory: inventory,
		writeRepo: writeRepo,
		readRepo:  readRepo,
		events:    events,
	}
}

// getItem resolves an item definition through the cache, falling back
// to the catalog service and refreshing the cache on a miss.
func (s *StoreService) getItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if item, err := s.cache.GetItem(ctx, itemID); err == nil {
			return item, nil
		}
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("failed to fetch item from catalog", "itemID", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetItem(ctx, item); err != nil {
			logger.Log.Errorw("failed to cache catalog item", "itemID", itemID, "error", err)
		}
	}

	return item, nil
}

// Purchase exchanges balance for a catalog item: price lookup,
// ownership check, guarded debit, grant and the audit record, all
// within the caller's transaction. Returns the new balance.
func (s *StoreService) Purchase(ctx context.Context, accountID, itemID uuid.UUID) (int64, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return 0, err
	}

	owned, err := s.inventory.Owns(ctx, accountID, itemID)
	if err != nil {
		logger.Log.Errorw("failed to check ownership", "accountID", accountID, "itemID", itemID, "error", err)
		return 0, err
	}
	if owned {
		return 0, ErrAlreadyOwned
	}

	balance, err := s.ledger.Adjust(ctx, accountID, -item.Price)
	if err != nil {
		logger.Log.Errorw("failed to debit purchase", "accountID", accountID, "itemID", itemID, "price", item.Price, "error", err)
		return 0, err
	}

	if err := s.inventory.Grant(ctx, accountID, itemID, item.Type); err != nil {
		logger.Log.Errorw("failed to grant purchased item", "accountID", accountID, "itemID", itemID, "error", err)
		return 0, err
	}

	if err := s.writeRepo.Save(ctx, accountID, itemID, item.Price); err != nil {
		logger.Log.Errorw("failed to record purchase", "accountID", accountID, "itemID", itemID, "error", err)
		return 0, err
	}

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventPurchase,
			AccountID: accountID.String(),
			ItemID:    itemID.String(),
			Amount:    item.Price,
		})
	}

	return balance, nil
}

// ListPurchases returns the account's purchase history.
func (s *StoreService) ListPurchases(ctx context.Context, accountID uuid.UUID) ([]models.PurchaseDB, error) {
	purchases, err := s.readRepo.ListByAccount(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to list purchases", "accountID", accountID, "error", err)
		return nil, err
	}
	return purchases, nil
}
