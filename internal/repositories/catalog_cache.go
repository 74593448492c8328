package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// CatalogCacheRepository provides cached catalog item definitions using Redis.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached items
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetItem fetches a cached item definition. Returns an error on cache miss.
func (r *CatalogCacheRepository) GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	key := fmt.Sprintf("catalog_item:%s", itemID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("catalog item %s not found in cache", itemID)
		}
		return nil, err
	}

	var item models.Item
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", item,
		"error", nil,
	)

	return &item, nil
}

// SetItem caches an item definition in Redis with expiration.
func (r *CatalogCacheRepository) SetItem(ctx context.Context, item *models.Item) error {
	key := fmt.Sprintf("catalog_item:%s", item.ItemID)

	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"item", item.ItemID,
		"result", "ok",
		"error", err,
	)

	return err
}
