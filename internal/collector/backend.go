package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"AltRadar/internal/model"
)

// BackendFetcher implements Fetcher against the AltRadar REST API.
type BackendFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewBackendFetcher creates a fetcher with optional proxy support.
func NewBackendFetcher(baseURL, proxyURL string, timeout time.Duration) *BackendFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BackendFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (f *BackendFetcher) Name() string { return "backend" }

// FetchMarketAnalysis reads the current market analysis envelope.
func (f *BackendFetcher) FetchMarketAnalysis(ctx context.Context) (*model.MarketAnalysis, error) {
	var out model.MarketAnalysis
	if err := f.getJSON(ctx, f.BaseURL+"/api/market-analysis", &out); err != nil {
		return nil, fmt.Errorf("fetch market analysis: %w", err)
	}
	return &out, nil
}

// FetchSavedMarkets reads up to limit saved snapshots.
func (f *BackendFetcher) FetchSavedMarkets(ctx context.Context, limit int) ([]model.SavedMarketRow, error) {
	if limit <= 0 {
		limit = DefaultSavedLimit
	}
	endpoint := fmt.Sprintf("%s/api/crypto/all?limit=%d", f.BaseURL, limit)
	var rows []model.SavedMarketRow
	if err := f.getJSON(ctx, endpoint, &rows); err != nil {
		return nil, fmt.Errorf("fetch saved markets: %w", err)
	}
	if rows == nil {
		rows = []model.SavedMarketRow{}
	}
	return rows, nil
}

func (f *BackendFetcher) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
