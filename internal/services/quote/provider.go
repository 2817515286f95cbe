package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIURL is the upstream quote API. It returns an array of
// objects with q (text) and a (author) fields.
const DefaultAPIURL = "https://zenquotes.io/api/random"

// Provider fetches the daily quote from an upstream API, falling back
// to the bundled quote list when the API is down.
type Provider struct {
	apiURL string
	client *http.Client
	log    *zap.Logger
}

// NewProvider creates a quote provider. An empty apiURL selects the default upstream.
func NewProvider(apiURL string, logger *zap.Logger) *Provider {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Provider{
		apiURL: apiURL,
		client: &http.Client{Timeout: 5 * time.Second},
		log:    logger,
	}
}

type upstreamQuote struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Fetch returns a quote from the upstream API, or a random fallback
// quote when the upstream fails.
func (p *Provider) Fetch(ctx context.Context) Quote {
	q, err := p.fetchUpstream(ctx)
	if err != nil {
		p.log.Warn("quote_api_unreachable_using_fallback", zap.Error(err))
		return Fallback()
	}
	return q
}

func (p *Provider) fetchUpstream(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiURL, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to build quote request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("quote API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote API responded with status %d", resp.StatusCode)
	}

	var payload []upstreamQuote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Quote{}, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(payload) == 0 || payload[0].Q == "" {
		return Quote{}, fmt.Errorf("quote API returned an empty payload")
	}

	return Quote{Text: payload[0].Q, Author: payload[0].A}, nil
}

// Fallback returns a random quote from the bundled list.
func Fallback() Quote {
	return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
}
