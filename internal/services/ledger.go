package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

var (
	// ErrInsufficientFunds is returned when a debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound is returned when the account row does not exist.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountAdjuster applies guarded balance deltas.
type AccountAdjuster interface {
	Adjust(ctx context.Context, accountID uuid.UUID, delta int64) (int64, error) // Applies a signed delta, returns the new balance
}

// AccountReader reads account rows.
type AccountReader interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) // Returns the account row
	Exists(ctx context.Context, accountID uuid.UUID) (bool, error)               // Reports row presence
}

// LedgerService owns each account's spendable balance. All balance
// mutations in the system go through Adjust.
type LedgerService struct {
	adjuster AccountAdjuster
	reader   AccountReader
	events   Publisher
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(adjuster AccountAdjuster, reader AccountReader, events Publisher) *LedgerService {
	return &LedgerService{
		adjuster: adjuster,
		reader:   reader,
		events:   events,
	}
}

// Adjust applies a signed delta to the account balance and returns the
// new balance. A debit fails with ErrInsufficientFunds when it would
// drive the balance negative; the guard and the write are a single
// atomic statement, so concurrent debits on the same account serialize
// at the row.
func (s *LedgerService) Adjust(ctx context.Context, accountID uuid.UUID, delta int64) (int64, error) {
	balance, err := s.adjuster.Adjust(ctx, accountID, delta)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to adjust balance", "accountID", accountID, "delta", delta, "error", err)
		return 0, err
	}

	// The guarded update matched no row: either the account is missing
	// or the debit guard rejected it.
	exists, existsErr := s.reader.Exists(ctx, accountID)
	if existsErr != nil {
		logger.Log.Errorw("failed to check account existence", "accountID", accountID, "error", existsErr)
		return 0, existsErr
	}
	if !exists {
		return 0, ErrAccountNotFound
	}
	return 0, ErrInsufficientFunds
}

// GetBalance returns the current balance for the account.
func (s *LedgerService) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	account, err := s.reader.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		logger.Log.Errorw("failed to get account", "accountID", accountID, "error", err)
		return 0, err
	}
	return account.Balance, nil
}

// Topup credits the account with a mock payment capture and publishes
// the event. Amount validation happens at the handler boundary.
func (s *LedgerService) Topup(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	balance, err := s.Adjust(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}

	if s.events != nil {
		s.events.Publish(ctx, models.Event{
			Type:      models.EventTopup,
			AccountID: accountID.String(),
			Amount:    amount,
		})
	}

	return balance, nil
}
