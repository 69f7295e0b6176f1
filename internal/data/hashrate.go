// Package data fetches and derives the historical inputs the valuation model
// consumes: network hashrate, fleet efficiency, and the resulting yearly share
// of world electricity.
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultMempoolURL is the public mempool.space instance.
const DefaultMempoolURL = "https://mempool.space"

// Periods accepted by the mempool.space hashrate endpoint.
var validPeriods = map[string]bool{
	"1m": true, "3m": true, "6m": true, "1y": true, "2y": true, "3y": true, "all": true,
}

// HashrateSample is one point of network hashrate history.
// AvgHashrate is in H/s; Timestamp is unix seconds.
type HashrateSample struct {
	Timestamp   int64   `json:"timestamp"`
	AvgHashrate float64 `json:"avgHashrate"`
}

// Time returns the sample time in UTC.
func (s HashrateSample) Time() time.Time {
	return time.Unix(s.Timestamp, 0).UTC()
}

// HashrateHistory matches the JSON shape of /api/v1/mining/hashrate/{period}.
type HashrateHistory struct {
	Hashrates         []HashrateSample `json:"hashrates"`
	CurrentHashrate   float64          `json:"currentHashrate"`
	CurrentDifficulty float64          `json:"currentDifficulty"`
}

// HashrateClient fetches hashrate history from a mempool.space compatible API.
type HashrateClient struct {
	BaseURL string
	Client  *http.Client
	Log     *zap.SugaredLogger
	Cache   *ResponseCache
}

// NewHashrateClient creates a client. An empty baseURL means DefaultMempoolURL.
// The process-wide cache is attached when enabled.
func NewHashrateClient(baseURL string, log *zap.SugaredLogger) *HashrateClient {
	if baseURL == "" {
		baseURL = DefaultMempoolURL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &HashrateClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
		Log:   log,
		Cache: GetCache(),
	}
}

// SourceError is a non-200 answer from an upstream data source.
type SourceError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // set for rate limit errors
}

func (e *SourceError) Error() string {
	return e.Message
}

// FetchHashrate returns hashrate history for period ("1m" ... "3y", "all").
func (c *HashrateClient) FetchHashrate(ctx context.Context, period string) (*HashrateHistory, error) {
	if !validPeriods[period] {
		return nil, fmt.Errorf("invalid period %q", period)
	}

	key := cacheKey(c.BaseURL, period)
	if cached, ok := c.Cache.Get(key); ok {
		c.Log.Infow("hashrate", "status", "cache hit", "period", period, "samples", len(cached.Hashrates))
		return cached, nil
	}

	u, err := url.Parse(c.BaseURL + "/api/v1/mining/hashrate/" + period)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.Log.Infow("hashrate", "status", "request", "url", u.String())

	start := time.Now()
	resp, err := c.Client.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.Log.Errorw("hashrate", "status", "request failed", "duration", duration, "ERROR", err)
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	c.Log.Infow("hashrate", "status", "response", "statuscode", resp.StatusCode, "duration", duration)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return nil, &SourceError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	default:
		return nil, &SourceError{
			StatusCode: resp.StatusCode,
			Code:       "UPSTREAM_ERROR",
			Message:    fmt.Sprintf("hashrate API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	var history HashrateHistory
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.Log.Infow("hashrate", "status", "success", "samples", len(history.Hashrates))

	c.Cache.Set(key, &history)
	return &history, nil
}
