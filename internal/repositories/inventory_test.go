package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func equippedItems(t *testing.T, db *sqlx.DB, accountID uuid.UUID) []uuid.UUID {
	var itemIDs []uuid.UUID
	err := db.Select(&itemIDs, `SELECT item_id FROM inventory_entries WHERE account_id=$1 AND equipped`, accountID)
	assert.NoError(t, err)
	return itemIDs
}

func TestInventoryWriteRepository_Grant(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	accountID := uuid.New()
	itemID := uuid.New()

	granted, err := writer.Grant(ctx, accountID, itemID, models.ItemTypeFrame)
	assert.NoError(t, err)
	assert.True(t, granted)

	// Granting the same item again hits the unique constraint
	granted, err = writer.Grant(ctx, accountID, itemID, models.ItemTypeFrame)
	assert.NoError(t, err)
	assert.False(t, granted)

	// A different account can own the same item
	granted, err = writer.Grant(ctx, uuid.New(), itemID, models.ItemTypeFrame)
	assert.NoError(t, err)
	assert.True(t, granted)
}

func TestInventoryWriteRepository_Revoke(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	reader := NewInventoryReadRepository(db, nil)
	accountID := uuid.New()
	itemID := uuid.New()

	_, err := writer.Grant(ctx, accountID, itemID, models.ItemTypeBubble)
	assert.NoError(t, err)

	revoked, err := writer.Revoke(ctx, accountID, itemID)
	assert.NoError(t, err)
	assert.True(t, revoked)

	exists, err := reader.Exists(ctx, accountID, itemID)
	assert.NoError(t, err)
	assert.False(t, exists)

	revoked, err = writer.Revoke(ctx, accountID, itemID)
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestInventoryWriteRepository_Equip(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	accountID := uuid.New()
	frame1 := uuid.New()
	frame2 := uuid.New()
	bubble := uuid.New()

	for _, g := range []struct {
		itemID   uuid.UUID
		itemType string
	}{
		{frame1, models.ItemTypeFrame},
		{frame2, models.ItemTypeFrame},
		{bubble, models.ItemTypeBubble},
	} {
		granted, err := writer.Grant(ctx, accountID, g.itemID, g.itemType)
		assert.NoError(t, err)
		assert.True(t, granted)
	}

	equippedBubble, err := writer.Equip(ctx, accountID, bubble)
	assert.NoError(t, err)
	assert.True(t, equippedBubble)

	ok, err := writer.Equip(ctx, accountID, frame1)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{frame1, bubble}, equippedItems(t, db, accountID))

	// Equipping the second frame displaces the first, bubble untouched
	ok, err = writer.Equip(ctx, accountID, frame2)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{frame2, bubble}, equippedItems(t, db, accountID))

	// Unowned item equips nothing
	ok, err = writer.Equip(ctx, accountID, uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{frame2, bubble}, equippedItems(t, db, accountID))
}

func TestInventoryWriteRepository_EquipConcurrency(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	accountID := uuid.New()

	const numItems = 20
	itemIDs := make([]uuid.UUID, numItems)
	for i := range itemIDs {
		itemIDs[i] = uuid.New()
		granted, err := writer.Grant(ctx, accountID, itemIDs[i], models.ItemTypeFrame)
		assert.NoError(t, err)
		assert.True(t, granted)
	}

	var wg sync.WaitGroup
	wg.Add(numItems)
	for _, itemID := range itemIDs {
		go func(itemID uuid.UUID) {
			defer wg.Done()
			_, _ = writer.Equip(ctx, accountID, itemID)
		}(itemID)
	}
	wg.Wait()

	// Concurrent equips of the same type must leave exactly one winner
	assert.Len(t, equippedItems(t, db, accountID), 1)
}

func TestInventoryWriteRepository_Unequip(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	accountID := uuid.New()
	itemID := uuid.New()

	_, err := writer.Grant(ctx, accountID, itemID, models.ItemTypeBackground)
	assert.NoError(t, err)
	_, err = writer.Equip(ctx, accountID, itemID)
	assert.NoError(t, err)

	ok, err := writer.Unequip(ctx, accountID, itemID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, equippedItems(t, db, accountID))

	// Unequipping an already-unequipped item still succeeds
	ok, err = writer.Unequip(ctx, accountID, itemID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = writer.Unequip(ctx, accountID, uuid.New())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestInventoryReadRepository_ListByAccount(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewInventoryWriteRepository(db, nil)
	reader := NewInventoryReadRepository(db, nil)
	accountID := uuid.New()

	first := uuid.New()
	second := uuid.New()

	_, err := writer.Grant(ctx, accountID, first, models.ItemTypeFrame)
	assert.NoError(t, err)
	// Force distinct acquisition timestamps for a stable order
	_, err = db.Exec(`UPDATE inventory_entries SET acquired_at = acquired_at - INTERVAL '1 hour' WHERE item_id=$1`, first)
	assert.NoError(t, err)
	_, err = writer.Grant(ctx, accountID, second, models.ItemTypeBubble)
	assert.NoError(t, err)

	entries, err := reader.ListByAccount(ctx, accountID)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, second, entries[0].ItemID)
	assert.Equal(t, first, entries[1].ItemID)

	entries, err = reader.ListByAccount(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
