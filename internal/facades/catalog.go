package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
	"github.com/inklore/economy-service/internal/models"
)

// CatalogHTTPFacade reads item definitions from the catalog service
// over its internal HTTP API. The catalog is read-only for the economy
// core.
type CatalogHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewCatalogHTTPFacade creates a facade for the catalog service at baseURL.
func NewCatalogHTTPFacade(baseURL string) *CatalogHTTPFacade {
	return &CatalogHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// GetItem fetches an item definition. Returns (nil, nil) when the
// catalog does not know the item.
func (f *CatalogHTTPFacade) GetItem(ctx context.Context, itemID uuid.UUID) (*models.Item, error) {
	url := fmt.Sprintf("%s/internal/items/%s", f.baseURL, itemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog request failed", "item_id", itemID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("catalog returned unexpected status", "item_id", itemID, "status", resp.StatusCode)
		return nil, fmt.Errorf("catalog service returned status %d", resp.StatusCode)
	}

	var item models.Item
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		logger.Log.Errorw("failed to decode catalog response", "item_id", itemID, "error", err)
		return nil, err
	}

	return &item, nil
}
