package chart

import "AltRadar/internal/model"

// DOM ids of the four charts.
const (
	LivePriceID   = "priceChart"
	LiveVolumeID  = "volumeChart"
	SavedPriceID  = "savedPriceChart"
	SavedVolumeID = "savedVolumeChart"
)

// LiveSeries derives symbol labels, prices and volume-spike flags (1 or 0).
func LiveSeries(rows []model.MarketRow) (labels []string, prices, spikes []float64) {
	labels = make([]string, 0, len(rows))
	prices = make([]float64, 0, len(rows))
	spikes = make([]float64, 0, len(rows))
	for _, m := range rows {
		labels = append(labels, m.Symbol)
		prices = append(prices, m.Price)
		if m.VolumeSpike {
			spikes = append(spikes, 1)
		} else {
			spikes = append(spikes, 0)
		}
	}
	return labels, prices, spikes
}

// SavedSeries derives symbol labels, current prices and 24h volumes.
func SavedSeries(rows []model.SavedMarketRow) (labels []string, prices, volumes []float64) {
	labels = make([]string, 0, len(rows))
	prices = make([]float64, 0, len(rows))
	volumes = make([]float64, 0, len(rows))
	for _, m := range rows {
		labels = append(labels, m.Symbol)
		prices = append(prices, m.CurrentPrice.OrZero())
		volumes = append(volumes, m.Volume24h.OrZero())
	}
	return labels, prices, volumes
}
