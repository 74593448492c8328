package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// GiftWriteRepository handles gift write operations.
type GiftWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGiftWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GiftWriteRepository {
	return &GiftWriteRepository{db: db, txGetter: txGetter}
}

func (r *GiftWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new gift row. Gift rows are never deleted; they remain
// as the audit record of the transfer.
func (r *GiftWriteRepository) Save(ctx context.Context, gift *models.GiftDB) error {
	query := `
		INSERT INTO gifts (
			gift_id, sender_id, receiver_id, kind,
			amount, item_id, item_type, item_rarity, item_price,
			status, created_at, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	args := []any{
		gift.GiftID, gift.SenderID, gift.ReceiverID, gift.Kind,
		gift.Amount, gift.ItemID, gift.ItemType, gift.ItemRarity, gift.ItemPrice,
		gift.Status, gift.CreatedAt, gift.ExpiresAt,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Resolve transitions a gift from pending to a terminal status. The
// status predicate makes the update a compare-and-swap: once a gift has
// left pending, no further transition can match. Returns false without
// error when another resolver already claimed the row.
func (r *GiftWriteRepository) Resolve(ctx context.Context, giftID uuid.UUID, status string) (bool, error) {
	query := `
		UPDATE gifts
		SET status = $2, resolved_at = NOW()
		WHERE gift_id = $1 AND status = 'pending'
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, giftID, status)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{giftID, status},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// GiftReadRepository handles gift read operations.
type GiftReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGiftReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GiftReadRepository {
	return &GiftReadRepository{db: db, txGetter: txGetter}
}

func (r *GiftReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const giftColumns = `
	gift_id, sender_id, receiver_id, kind,
	amount, item_id, item_type, item_rarity, item_price,
	status, created_at, expires_at, resolved_at
`

// GetByIDForUpdate loads a gift and takes a row lock for the duration
// of the surrounding transaction, serializing concurrent accept, reject
// and expiry resolution of the same gift. Returns sql.ErrNoRows when
// the gift does not exist.
func (r *GiftReadRepository) GetByIDForUpdate(ctx context.Context, giftID uuid.UUID) (*models.GiftDB, error) {
	query := `
		SELECT ` + giftColumns + `
		FROM gifts
		WHERE gift_id = $1
		FOR UPDATE
	`

	var gift models.GiftDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &gift, query, giftID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{giftID},
		"result", gift.Status,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &gift, nil
}

// ListByReceiver returns gifts addressed to the account, newest first.
func (r *GiftReadRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]models.GiftDB, error) {
	query := `
		SELECT ` + giftColumns + `
		FROM gifts
		WHERE receiver_id = $1
		ORDER BY created_at DESC
	`

	var gifts []models.GiftDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &gifts, query, receiverID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{receiverID},
		"result", len(gifts),
		"error", err,
	)

	return gifts, err
}

// ListBySender returns gifts sent by the account, newest first.
func (r *GiftReadRepository) ListBySender(ctx context.Context, senderID uuid.UUID) ([]models.GiftDB, error) {
	query := `
		SELECT ` + giftColumns + `
		FROM gifts
		WHERE sender_id = $1
		ORDER BY created_at DESC
	`

	var gifts []models.GiftDB
	err := sqlx.SelectContext(ctx, r.executor(ctx), &gifts, query, senderID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{senderID},
		"result", len(gifts),
		"error", err,
	)

	return gifts, err
}
