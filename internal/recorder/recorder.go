package recorder

import "AltRadar/internal/model"

// Panel names used in panel_loads.panel.
const (
	PanelLive  = "live"
	PanelSaved = "saved"
)

// LiveLoad holds one successful live-panel refresh.
type LiveLoad struct {
	Rows []model.MarketRow
}

// SavedLoad holds one successful saved-panel refresh.
type SavedLoad struct {
	Rows       []model.SavedMarketRow
	Candidates int // buy candidates among Rows
}

// Recorder persists the history of panel loads for later inspection.
// It never feeds data back into a panel.
type Recorder interface {
	RecordLiveLoad(load *LiveLoad) (string, error)
	RecordSavedLoad(load *SavedLoad) (string, error)
	Close() error
}
