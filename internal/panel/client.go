// Package panel talks to the external game-panel API that records staff
// online time per account UUID.
package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrUnauthorized means the panel rejected the supplied token.
	ErrUnauthorized = errors.New("panel: unauthorized")
	// ErrUnavailable means the panel could not be reached or answered 5xx.
	ErrUnavailable = errors.New("panel: unavailable")
)

const dateLayout = "2006-01-02"

// Client fetches bulk online time from the panel.
// The result maps account uuid -> ISO date -> online seconds; dates with no
// recorded activity may be absent.
type Client interface {
	BulkOnlineTime(ctx context.Context, token string, uuids []string, start, end time.Time) (map[string]map[string]int64, error)
}

type bulkRequest struct {
	UUIDs []string `json:"uuids"`
	Start string   `json:"start"`
	End   string   `json:"end"`
}

type bulkResponse struct {
	Players map[string]map[string]int64 `json:"players"`
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates a panel client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BulkOnlineTime requests online seconds for all uuids across [start, end]
// in a single call. No retries; callers re-trigger manually.
func (c *HTTPClient) BulkOnlineTime(ctx context.Context, token string, uuids []string, start, end time.Time) (map[string]map[string]int64, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no base URL configured", ErrUnavailable)
	}

	payload, err := json.Marshal(bulkRequest{
		UUIDs: uuids,
		Start: start.Format(dateLayout),
		End:   end.Format(dateLayout),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/online/bulk", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: panel returned %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("panel returned unexpected status %d", resp.StatusCode)
	}

	var body bulkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("panel: decoding response: %w", err)
	}
	if body.Players == nil {
		return map[string]map[string]int64{}, nil
	}
	return body.Players, nil
}
