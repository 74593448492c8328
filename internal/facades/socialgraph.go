package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/inklore/economy-service/internal/logger"
)

// SocialGraphHTTPFacade asks the social-graph service whether two users
// are eligible to exchange gifts.
type SocialGraphHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewSocialGraphHTTPFacade creates a facade for the social-graph service at baseURL.
func NewSocialGraphHTTPFacade(baseURL string) *SocialGraphHTTPFacade {
	return &SocialGraphHTTPFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// CanExchangeGifts reports whether senderID may send gifts to
// receiverID. The check runs before any escrow debit.
func (f *SocialGraphHTTPFacade) CanExchangeGifts(ctx context.Context, senderID, receiverID uuid.UUID) (bool, error) {
	url := fmt.Sprintf("%s/internal/relations/can-gift?from=%s&to=%s", f.baseURL, senderID, receiverID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("social graph request failed", "sender_id", senderID, "receiver_id", receiverID, "error", err)
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("social graph returned unexpected status", "status", resp.StatusCode)
		return false, fmt.Errorf("social graph service returned status %d", resp.StatusCode)
	}

	var body struct {
		Allowed bool `json:"allowed"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode social graph response", "error", err)
		return false, err
	}

	return body.Allowed, nil
}
