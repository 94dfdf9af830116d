package dashboard

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"AltRadar/internal/chart"
	"AltRadar/internal/collector"
	"AltRadar/internal/model"
	"AltRadar/internal/recorder"
	"AltRadar/internal/render"
)

// LivePanel shows the current market analysis.
type LivePanel struct {
	Fetcher  collector.Fetcher
	Recorder recorder.Recorder
	OnRedraw RedrawFunc

	mu       sync.Mutex
	rows     []model.MarketRow
	table    render.Table
	price    *chart.Bar
	volume   *chart.Bar
	revision int
	loadedAt time.Time
}

// NewLivePanel creates an empty live panel.
func NewLivePanel(f collector.Fetcher, rec recorder.Recorder) *LivePanel {
	return &LivePanel{
		Fetcher:  f,
		Recorder: recordOrNoop(rec),
		rows:     []model.MarketRow{},
		table:    render.LiveTable(nil),
		price:    chart.NewBar(chart.LivePriceID, "Price (KRW)", chart.ColorPrice),
		volume:   chart.NewBar(chart.LiveVolumeID, "Volume Spike", chart.ColorVolume),
	}
}

// Load fetches the market analysis and redraws the panel. Failures and
// non-success envelopes are logged and leave the current view untouched.
// Overlapping loads are not sequenced; whichever response arrives last wins.
func (p *LivePanel) Load(ctx context.Context) bool {
	res, err := p.Fetcher.FetchMarketAnalysis(ctx)
	if err != nil {
		log.Printf("[WARN] live panel load failed: %v", err)
		return false
	}
	if res.Status != model.StatusSuccess {
		log.Printf("[INFO] live panel: backend status %q, view unchanged", res.Status)
		return false
	}
	rows := res.Data
	if rows == nil {
		rows = []model.MarketRow{}
	}

	p.mu.Lock()
	p.rows = rows
	p.table = render.LiveTable(rows)
	labels, prices, spikes := chart.LiveSeries(rows)
	p.price.Update(labels, prices)
	p.volume.Update(labels, spikes)
	p.revision++
	p.loadedAt = time.Now()
	rev := p.revision
	p.mu.Unlock()

	_, err = p.Recorder.RecordLiveLoad(&recorder.LiveLoad{Rows: rows})
	logRecordErr(recorder.PanelLive, err)

	notify(p.OnRedraw, recorder.PanelLive, rev)
	return true
}

// Rows returns a copy of the displayed rows.
func (p *LivePanel) Rows() []model.MarketRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.rows)
}

// Revision counts redraws.
func (p *LivePanel) Revision() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revision
}

// View renders the panel for a page.
func (p *LivePanel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	charts, assets := chartViews(p.price, p.volume)
	return View{
		Panel:    recorder.PanelLive,
		Title:    "Market Analysis",
		Table:    p.table,
		Charts:   charts,
		Assets:   assets,
		Revision: p.revision,
		LoadedAt: p.loadedAt,
	}
}

// Snapshot returns the JSON view of the panel.
func (p *LivePanel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Panel:     recorder.PanelLive,
		Revision:  p.revision,
		LoadedAt:  loadedAtPtr(p.loadedAt),
		CacheSize: len(p.rows),
		Table:     p.table,
		Charts:    chartSnapshots(p.price, p.volume),
		Rows:      slices.Clone(p.rows),
	}
}
