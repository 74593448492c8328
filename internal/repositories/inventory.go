package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// InventoryWriteRepository handles inventory write operations.
type InventoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInventoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InventoryWriteRepository {
	return &InventoryWriteRepository{db: db, txGetter: txGetter}
}

func (r *InventoryWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Grant creates an inventory entry for the account. The item type is
// snapshotted from the catalog so equip fan-out needs no catalog read.
// Returns false without error when the account already owns the item:
// the unique (account_id, item_id) constraint makes the check and the
// insert a single atomic step.
func (r *InventoryWriteRepository) Grant(ctx context.Context, accountID, itemID uuid.UUID, itemType string) (bool, error) {
	query := `
		INSERT INTO inventory_entries (entry_id, account_id, item_id, item_type, equipped, acquired_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		ON CONFLICT (account_id, item_id) DO NOTHING
	`
	args := []any{uuid.New(), accountID, itemID, itemType}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Revoke removes the entry. Returns false without error when the
// account does not own the item.
func (r *InventoryWriteRepository) Revoke(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM inventory_entries
		WHERE account_id = $1 AND item_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, accountID, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, itemID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Equip clears the equipped flag on every entry of the target's type
// and sets it on the target, in one statement. The single statement
// closes the race window between the fan-out clear and the final set:
// two concurrent equips of the same type leave exactly one entry
// equipped. Returns false without error when the account does not own
// the item (the type subquery yields no rows to update).
func (r *InventoryWriteRepository) Equip(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	query := `
		UPDATE inventory_entries
		SET equipped = (item_id = $2)
		WHERE account_id = $1
		  AND item_type = (
			SELECT item_type FROM inventory_entries
			WHERE account_id = $1 AND item_id = $2
		  )
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, accountID, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, itemID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Unequip clears the equipped flag on a single entry. Returns false
// without error when the account does not own the item. Clearing an
// already-unequipped entry still matches the row, so the call is
// idempotent.
func (r *InventoryWriteRepository) Unequip(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	query := `
		UPDATE inventory_entries
		SET equipped = FALSE
		WHERE account_id = $1 AND item_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, accountID, itemID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, itemID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// InventoryReadRepository handles inventory read operations.
type InventoryReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewInventoryReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *InventoryReadRepository {
	return &InventoryReadRepository{db: db, txGetter: txGetter}
}

func (r *InventoryReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Exists reports whether the account owns the item.
func (r *InventoryReadRepository) Exists(ctx context.Context, accountID, itemID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM inventory_entries
			WHERE account_id = $1 AND item_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, r.executor(ctx), &exists, query, accountID, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID, itemID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ListByAccount returns all inventory entries for the account, newest first.
func (r *InventoryReadRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]models.InventoryEntryDB, error) {
	const query = `
		SELECT entry_id, account_id, item_id, item_type, equipped, acquired_at
		FROM inventory_entries
		WHERE account_id = $1
		ORDER BY acquired_at DESC
	`

	var entries []models.InventoryEntryDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &entries, query, accountID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountID},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}
