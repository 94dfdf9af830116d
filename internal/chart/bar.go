package chart

import (
	"html/template"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Series colors.
const (
	ColorPrice  = "rgba(54, 162, 235, 0.6)"
	ColorVolume = "rgba(255, 99, 132, 0.6)"
)

// Bar is a single-series bar chart bound to a DOM id. The underlying echarts
// chart is built on the first Update and mutated in place afterwards.
// Bar is not safe for concurrent use; the owning panel serialises access.
type Bar struct {
	ID    string
	Label string
	Color string

	chart    *charts.Bar
	labels   []string
	values   []float64
	revision int
}

// NewBar returns an unconstructed chart.
func NewBar(id, label, color string) *Bar {
	return &Bar{ID: id, Label: label, Color: color}
}

// Update replaces the chart's labels and data and triggers a redraw.
func (b *Bar) Update(labels []string, values []float64) {
	labels = slices.Clone(labels)
	values = slices.Clone(values)
	if labels == nil {
		labels = []string{}
	}
	if values == nil {
		values = []float64{}
	}

	if b.chart == nil {
		b.chart = charts.NewBar()
		b.chart.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				ChartID: b.ID,
				Width:   "960px",
				Height:  "420px",
				Theme:   types.ThemeInfographic,
			}),
			charts.WithTitleOpts(opts.Title{Title: b.Label}),
			charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
			charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		)
		b.chart.SetXAxis(labels).
			AddSeries(b.Label, barData(values)).
			SetSeriesOptions(charts.WithItemStyleOpts(opts.ItemStyle{Color: b.Color}))
	} else {
		// echarts validates axis data only before the first render, so the
		// axis list is written directly as well.
		b.chart.SetXAxis(labels)
		b.chart.XAxisList[0].Data = labels
		b.chart.MultiSeries[0].Data = barData(values)
	}

	b.labels = labels
	b.values = values
	b.revision++
}

// Constructed reports whether the first Update has happened.
func (b *Bar) Constructed() bool { return b.chart != nil }

// Chart returns the echarts handle, or nil before the first Update.
func (b *Bar) Chart() *charts.Bar { return b.chart }

// Revision counts redraws.
func (b *Bar) Revision() int { return b.revision }

// Labels returns a copy of the current x-axis labels.
func (b *Bar) Labels() []string { return slices.Clone(b.labels) }

// Values returns a copy of the current series data.
func (b *Bar) Values() []float64 { return slices.Clone(b.values) }

// Snippet renders the chart's container element and init script for embedding
// in a larger page, plus the script assets it needs. It returns empty values
// before the first Update.
func (b *Bar) Snippet() (element, script template.HTML, assets []string) {
	if b.chart == nil {
		return "", "", nil
	}
	s := b.chart.RenderSnippet()
	return template.HTML(s.Element), template.HTML(s.Script), slices.Clone(b.chart.JSAssets.Values)
}

// Snapshot is the JSON view of a chart.
type Snapshot struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Labels   []string  `json:"labels"`
	Data     []float64 `json:"data"`
	Revision int       `json:"revision"`
}

// Snapshot copies the current state.
func (b *Bar) Snapshot() Snapshot {
	s := Snapshot{ID: b.ID, Label: b.Label, Labels: b.Labels(), Data: b.Values(), Revision: b.revision}
	if s.Labels == nil {
		s.Labels = []string{}
	}
	if s.Data == nil {
		s.Data = []float64{}
	}
	return s
}

func barData(values []float64) []opts.BarData {
	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	return items
}
