package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// PurchaseWriteRepository appends purchase audit records.
type PurchaseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseWriteRepository {
	return &PurchaseWriteRepository{db: db, txGetter: txGetter}
}

func (r *PurchaseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends a purchase record in the same transaction as the debit
// and the inventory grant.
func (r *PurchaseWriteRepository) Save(ctx context.Context, accountID, itemID uuid.UUID, price int64) error {
	query := `
		INSERT INTO purchases (purchase_id, account_id, item_id, price, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{uuid.New(), accountID, itemID, price}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// PurchaseReadRepository reads purchase history.
type PurchaseReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseReadRepository {
	return &PurchaseReadRepository{db: db, txGetter: txGetter}
}

func (r *PurchaseReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// ListByAccount returns the account's purchases, newest first.
func (r *PurchaseReadRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.PurchaseDB, error) {
	const query = `
		SELECT purchase_id, account_id, item_id, price, created_at
		FROM purchases
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	var purchases []models.PurchaseDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &purchases, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(purchases),
		"error", err,
	)

	return purchases, err
}
