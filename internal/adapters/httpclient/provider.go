package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"vesrates/internal/domain"
	"vesrates/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

// VESRateClient fetches the USD→VES rate from a currency pricing API.
// The primary endpoint is CDN-hosted; on any failure the fallback host is
// queried with the same response shape before giving up.
type VESRateClient struct {
	http        *http.Client
	primaryURL  string
	fallbackURL string
	providerID  string
}

type apiResponse struct {
	Date string `json:"date"`
	USD  struct {
		VES float64 `json:"ves"`
	} `json:"usd"`
}

func (c *VESRateClient) FetchRate(ctx context.Context) (domain.ProviderRate, error) {
	value, primaryErr := c.fetchFrom(ctx, c.primaryURL)
	if primaryErr == nil {
		return domain.ProviderRate{Rate: value, ProviderID: c.providerID}, nil
	}

	logrus.WithError(primaryErr).Warn("Primary rate endpoint failed, trying fallback")
	metrics.ProviderFallbacks.Inc()

	value, fallbackErr := c.fetchFrom(ctx, c.fallbackURL)
	if fallbackErr == nil {
		return domain.ProviderRate{Rate: value, ProviderID: c.providerID}, nil
	}

	return domain.ProviderRate{}, fmt.Errorf("%w: primary: %v; fallback: %v",
		domain.ErrProviderUnavailable, primaryErr, fallbackErr)
}

func (c *VESRateClient) fetchFrom(ctx context.Context, endpoint string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request for %q: %w", endpoint, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to execute request to %q: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status code %d from %q: %s", resp.StatusCode, endpoint, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode response from %q: %w", endpoint, err)
	}

	value := body.USD.VES
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("response from %q has no usable USD/VES value (got %v)", endpoint, value)
	}

	return value, nil
}

func NewVESRateClient(httpClient *http.Client, primaryURL, fallbackURL, providerID string) *VESRateClient {
	return &VESRateClient{
		http:        httpClient,
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		providerID:  providerID,
	}
}
