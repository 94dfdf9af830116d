package strategy

import (
	"iter"

	"AltRadar/internal/model"

	"github.com/shopspring/decimal"
)

// Buy-candidate thresholds.
const (
	MinPumpScore   = 80
	CandidateTrend = model.TrendBullish
)

// minVolumeToCap is the share of market cap the 24h volume must exceed.
var minVolumeToCap = decimal.RequireFromString("0.02")

// IsBuyCandidate reports whether a saved snapshot passes the bullish/volume filter:
// pumpScore >= 80, trend BULLISH and volume24h > marketCap * 0.02.
// A missing pump score, volume or market cap never qualifies.
func IsBuyCandidate(r model.SavedMarketRow) bool {
	score, ok := r.PumpScore.Get()
	if !ok || score < MinPumpScore {
		return false
	}
	if r.Trend != CandidateTrend {
		return false
	}
	volume, ok := r.Volume24h.Get()
	if !ok {
		return false
	}
	marketCap, ok := r.MarketCap.Get()
	if !ok {
		return false
	}
	threshold := decimal.NewFromFloat(marketCap).Mul(minVolumeToCap)
	return decimal.NewFromFloat(volume).GreaterThan(threshold)
}

// BuyCandidates lazily yields the rows passing IsBuyCandidate, in input order.
// The sequence is recomputed on every range and never modifies rows.
func BuyCandidates(rows []model.SavedMarketRow) iter.Seq[model.SavedMarketRow] {
	return func(yield func(model.SavedMarketRow) bool) {
		for _, r := range rows {
			if !IsBuyCandidate(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
