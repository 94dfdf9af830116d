package collector

import (
	"context"

	"AltRadar/internal/model"
)

// DefaultSavedLimit is the number of saved snapshots requested per load.
const DefaultSavedLimit = 100

// Fetcher defines the interface for reading the market-analysis backend.
type Fetcher interface {
	FetchMarketAnalysis(ctx context.Context) (*model.MarketAnalysis, error)
	FetchSavedMarkets(ctx context.Context, limit int) ([]model.SavedMarketRow, error)
	Name() string
}
