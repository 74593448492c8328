package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

func (r *AccountWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates an account row with a zero balance. Called in the same
// transaction that creates the user row.
func (r *AccountWriteRepository) Save(ctx context.Context, accountID uuid.UUID) error {
	query := `
		INSERT INTO accounts (account_id, balance, created_at, updated_at)
		VALUES ($1, 0, NOW(), NOW())
		ON CONFLICT (account_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"error", err,
	)

	return err
}

// Adjust applies a signed delta to the balance in a single guarded
// statement: the row is updated only if the resulting balance stays
// non-negative, so the check and the write are indivisible with respect
// to concurrent callers. Returns sql.ErrNoRows when the guard rejects
// the update or the account does not exist; callers disambiguate.
func (r *AccountWriteRepository) Adjust(ctx context.Context, accountID uuid.UUID, delta int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, updated_at = NOW()
		WHERE account_id = $1 AND balance + $2 >= 0
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, accountID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, delta},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

func (r *AccountReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the account row, or sql.ErrNoRows if absent.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	const query = `
		SELECT account_id, balance, created_at, updated_at
		FROM accounts
		WHERE account_id = $1
	`

	var account models.AccountDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &account, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", account,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &account, nil
}

// Exists reports whether the account row is present.
func (r *AccountReadRepository) Exists(ctx context.Context, accountID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM accounts WHERE account_id = $1)
	`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
