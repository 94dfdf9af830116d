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
	"AltRadar/internal/strategy"
)

// SavedPanel shows saved snapshots and filters them for buy candidates.
// The cache is replaced wholesale by each successful load and is the only
// input of the filter.
type SavedPanel struct {
	Fetcher  collector.Fetcher
	Recorder recorder.Recorder
	OnRedraw RedrawFunc
	Limit    int

	mu       sync.Mutex
	cache    []model.SavedMarketRow
	shown    []model.SavedMarketRow
	filtered bool
	table    render.Table
	price    *chart.Bar
	volume   *chart.Bar
	revision int
	loadedAt time.Time
}

// NewSavedPanel creates an empty saved panel.
func NewSavedPanel(f collector.Fetcher, rec recorder.Recorder, limit int) *SavedPanel {
	if limit <= 0 {
		limit = collector.DefaultSavedLimit
	}
	return &SavedPanel{
		Fetcher:  f,
		Recorder: recordOrNoop(rec),
		Limit:    limit,
		cache:    []model.SavedMarketRow{},
		shown:    []model.SavedMarketRow{},
		table:    render.SavedTable(nil),
		price:    chart.NewBar(chart.SavedPriceID, "Price (KRW)", chart.ColorPrice),
		volume:   chart.NewBar(chart.SavedVolumeID, "Volume 24h", chart.ColorVolume),
	}
}

// Load fetches the saved snapshots, replaces the cache and redraws the full
// set. Failures are logged and leave both cache and view untouched.
func (p *SavedPanel) Load(ctx context.Context) bool {
	_, ok := p.LoadWithCandidates(ctx)
	return ok
}

// LoadWithCandidates is Load that also returns the buy candidates of the
// response it drew, regardless of later loads replacing the cache.
func (p *SavedPanel) LoadWithCandidates(ctx context.Context) ([]model.SavedMarketRow, bool) {
	rows, err := p.Fetcher.FetchSavedMarkets(ctx, p.Limit)
	if err != nil {
		log.Printf("[WARN] saved panel load failed: %v", err)
		return nil, false
	}
	if rows == nil {
		rows = []model.SavedMarketRow{}
	}

	p.mu.Lock()
	p.cache = rows
	p.filtered = false
	p.drawLocked(rows)
	p.loadedAt = time.Now()
	rev := p.revision
	p.mu.Unlock()

	candidates := slices.Collect(strategy.BuyCandidates(rows))
	if candidates == nil {
		candidates = []model.SavedMarketRow{}
	}
	_, err = p.Recorder.RecordSavedLoad(&recorder.SavedLoad{Rows: rows, Candidates: len(candidates)})
	logRecordErr(recorder.PanelSaved, err)

	notify(p.OnRedraw, recorder.PanelSaved, rev)
	return candidates, true
}

// FilterBuyCandidates redraws the panel with the buy candidates of the cache.
// The cache itself is not modified. It returns the number of rows shown.
func (p *SavedPanel) FilterBuyCandidates() int {
	p.mu.Lock()
	subset := slices.Collect(strategy.BuyCandidates(p.cache))
	if subset == nil {
		subset = []model.SavedMarketRow{}
	}
	p.filtered = true
	p.drawLocked(subset)
	rev := p.revision
	p.mu.Unlock()

	notify(p.OnRedraw, recorder.PanelSaved, rev)
	return len(subset)
}

// ShowAll redraws the panel with the full cache.
func (p *SavedPanel) ShowAll() int {
	p.mu.Lock()
	p.filtered = false
	p.drawLocked(p.cache)
	n := len(p.cache)
	rev := p.revision
	p.mu.Unlock()

	notify(p.OnRedraw, recorder.PanelSaved, rev)
	return n
}

// Candidates returns the buy candidates of the current cache.
func (p *SavedPanel) Candidates() []model.SavedMarketRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Collect(strategy.BuyCandidates(p.cache))
}

// Cache returns a copy of the cached rows.
func (p *SavedPanel) Cache() []model.SavedMarketRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.cache)
}

// Shown returns a copy of the rows currently drawn.
func (p *SavedPanel) Shown() []model.SavedMarketRow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.shown)
}

// Filtered reports whether the view shows the buy-candidate subset.
func (p *SavedPanel) Filtered() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filtered
}

// Revision counts redraws.
func (p *SavedPanel) Revision() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.revision
}

// View renders the panel for a page.
func (p *SavedPanel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	charts, assets := chartViews(p.price, p.volume)
	return View{
		Panel:    recorder.PanelSaved,
		Title:    "Saved Market Data",
		Table:    p.table,
		Charts:   charts,
		Assets:   assets,
		Revision: p.revision,
		Filtered: p.filtered,
		LoadedAt: p.loadedAt,
	}
}

// Snapshot returns the JSON view of the panel.
func (p *SavedPanel) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		Panel:     recorder.PanelSaved,
		Revision:  p.revision,
		LoadedAt:  loadedAtPtr(p.loadedAt),
		Filtered:  p.filtered,
		CacheSize: len(p.cache),
		Table:     p.table,
		Charts:    chartSnapshots(p.price, p.volume),
		Rows:      slices.Clone(p.shown),
	}
}

func (p *SavedPanel) drawLocked(rows []model.SavedMarketRow) {
	p.shown = slices.Clone(rows)
	if p.shown == nil {
		p.shown = []model.SavedMarketRow{}
	}
	p.table = render.SavedTable(rows)
	labels, prices, volumes := chart.SavedSeries(rows)
	p.price.Update(labels, prices)
	p.volume.Update(labels, volumes)
	p.revision++
}
