package notifier

import (
	"strings"
	"testing"

	"AltRadar/internal/model"
)

func TestFormatCandidates(t *testing.T) {
	msg := FormatCandidates([]model.SavedMarketRow{
		{Symbol: "BTC", CurrentPrice: model.Some(1234.5), Volume24h: model.Some(300), PumpScore: model.Some(85), RiskLevel: model.RiskLow},
		{Symbol: "<x>", PumpScore: model.Some(80)},
	})

	for _, want := range []string{"<b>BTC</b>", "score 85", "price 1,234.5", "risk LOW", "&lt;x&gt;", "risk -", "Total: 2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatCandidates_Empty(t *testing.T) {
	if msg := FormatCandidates(nil); !strings.Contains(msg, "No coin") {
		t.Errorf("unexpected empty message: %s", msg)
	}
}

func TestFormatCandidates_Truncates(t *testing.T) {
	rows := make([]model.SavedMarketRow, maxListed+5)
	for i := range rows {
		rows[i] = model.SavedMarketRow{Symbol: "C"}
	}
	msg := FormatCandidates(rows)
	if !strings.Contains(msg, "and 5 more") {
		t.Errorf("expected truncation note:\n%s", msg)
	}
	if strings.Count(msg, "<b>C</b>") != maxListed {
		t.Errorf("expected %d listed rows", maxListed)
	}
}

func TestFormatLiveSummary(t *testing.T) {
	msg := FormatLiveSummary([]model.MarketRow{
		{Symbol: "BTC", Price: 1000, RSI: model.Some(55.5), VolumeSpike: true},
		{Symbol: "ETH", Price: 10},
	})
	for _, want := range []string{"<b>BTC</b> 1,000", "RSI 55.50", "🔥", "RSI -", "Volume spikes: 1/2"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}
