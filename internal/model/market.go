package model

// Trend is the market direction label assigned upstream.
type Trend string

const (
	TrendBullish  Trend = "BULLISH"
	TrendBearish  Trend = "BEARISH"
	TrendSideways Trend = "SIDEWAYS"
)

// RiskLevel is the upstream risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// MarketRow is one entry of the current market analysis.
type MarketRow struct {
	Symbol      string        `json:"symbol"`
	Price       float64       `json:"price"`
	MA5         OptionalFloat `json:"ma5"`
	RSI         OptionalFloat `json:"rsi"`
	PumpScore   OptionalFloat `json:"pumpScore"`
	VolumeSpike bool          `json:"volumeSpike"`
}

// MarketAnalysis is the envelope returned by the market-analysis endpoint.
type MarketAnalysis struct {
	Status string      `json:"status"`
	Data   []MarketRow `json:"data"`
}

// StatusSuccess marks a usable MarketAnalysis payload.
const StatusSuccess = "success"

// SavedMarketRow is a previously recorded market snapshot of one coin.
type SavedMarketRow struct {
	CoinID       string        `json:"coinId,omitempty"`
	Name         string        `json:"name,omitempty"`
	Symbol       string        `json:"symbol"`
	CurrentPrice OptionalFloat `json:"currentPrice"`
	MarketCap    OptionalFloat `json:"marketCap"`
	Volume24h    OptionalFloat `json:"volume24h"`
	PumpScore    OptionalFloat `json:"pumpScore"`
	Trend        Trend         `json:"trend"`
	RiskLevel    RiskLevel     `json:"riskLevel"`
	LastUpdated  string        `json:"lastUpdated"`
	Signals      []string      `json:"signals,omitempty"`
}
