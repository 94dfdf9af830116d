package collector

import (
	"context"
	"sync"

	"AltRadar/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	mu sync.Mutex

	Analysis    *model.MarketAnalysis
	AnalysisErr error
	Saved       []model.SavedMarketRow
	SavedErr    error

	AnalysisCalls int
	SavedCalls    int
	LastLimit     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarketAnalysis(ctx context.Context) (*model.MarketAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnalysisCalls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.AnalysisErr != nil {
		return nil, m.AnalysisErr
	}
	if m.Analysis == nil {
		return &model.MarketAnalysis{Status: model.StatusSuccess, Data: []model.MarketRow{}}, nil
	}
	out := *m.Analysis
	out.Data = append([]model.MarketRow(nil), m.Analysis.Data...)
	return &out, nil
}

func (m *MockFetcher) FetchSavedMarkets(ctx context.Context, limit int) ([]model.SavedMarketRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SavedCalls++
	m.LastLimit = limit
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.SavedErr != nil {
		return nil, m.SavedErr
	}
	rows := append([]model.SavedMarketRow(nil), m.Saved...)
	if len(rows) > limit && limit > 0 {
		rows = rows[:limit]
	}
	if rows == nil {
		rows = []model.SavedMarketRow{}
	}
	return rows, nil
}

// SetSaved swaps the saved rows returned by later calls.
func (m *MockFetcher) SetSaved(rows []model.SavedMarketRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = rows
}

// SetAnalysis swaps the analysis returned by later calls.
func (m *MockFetcher) SetAnalysis(a *model.MarketAnalysis) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Analysis = a
}
