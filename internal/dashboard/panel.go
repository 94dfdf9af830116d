// Package dashboard holds the per-panel UI state: the cached rows, the rendered
// table and the two bar charts of each panel.
package dashboard

import (
	"html/template"
	"log"
	"slices"
	"time"

	"AltRadar/internal/chart"
	"AltRadar/internal/recorder"
	"AltRadar/internal/render"
)

// RedrawFunc is called after a panel redraws, outside the panel lock.
type RedrawFunc func(panel string, revision int)

// ChartView is one embeddable chart.
type ChartView struct {
	ID      string
	Element template.HTML
	Script  template.HTML
}

// View is everything a page needs to draw one panel.
type View struct {
	Panel    string
	Title    string
	Table    render.Table
	Charts   []ChartView
	Assets   []string
	Revision int
	Filtered bool
	LoadedAt time.Time
}

// Snapshot is the JSON form of a panel.
type Snapshot struct {
	Panel     string           `json:"panel"`
	Revision  int              `json:"revision"`
	LoadedAt  *time.Time       `json:"loadedAt,omitempty"`
	Filtered  bool             `json:"filtered"`
	CacheSize int              `json:"cacheSize"`
	Table     render.Table     `json:"table"`
	Charts    []chart.Snapshot `json:"charts"`
	Rows      any              `json:"rows"`
}

func chartViews(bars ...*chart.Bar) ([]ChartView, []string) {
	views := make([]ChartView, 0, len(bars))
	var assets []string
	for _, b := range bars {
		el, script, a := b.Snippet()
		if el == "" {
			continue
		}
		views = append(views, ChartView{ID: b.ID, Element: el, Script: script})
		for _, src := range a {
			if !slices.Contains(assets, src) {
				assets = append(assets, src)
			}
		}
	}
	return views, assets
}

func chartSnapshots(bars ...*chart.Bar) []chart.Snapshot {
	out := make([]chart.Snapshot, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Snapshot())
	}
	return out
}

func loadedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func notify(fn RedrawFunc, panel string, revision int) {
	if fn != nil {
		fn(panel, revision)
	}
}

func recordOrNoop(rec recorder.Recorder) recorder.Recorder {
	if rec == nil {
		return recorder.NewNoopRecorder()
	}
	return rec
}

func logRecordErr(panel string, err error) {
	if err != nil {
		log.Printf("[ERROR] record %s load: %v", panel, err)
	}
}
