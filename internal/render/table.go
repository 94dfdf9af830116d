package render

import (
	"html/template"
	"io"

	"AltRadar/internal/model"
)

// DOM ids of the two tables.
const (
	LiveTableID  = "marketTable"
	SavedTableID = "savedTable"
)

var (
	liveHeaders  = []string{"Symbol", "Price", "MA5", "RSI", "Pump Score"}
	savedHeaders = []string{"Symbol", "Price", "Market Cap", "Volume 24h", "Pump Score", "Trend", "Risk", "Last Updated"}
)

// Table is a fully formatted table body ready to be written as HTML.
type Table struct {
	ID      string     `json:"id"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// LiveTable builds the market table from scratch.
func LiveTable(rows []model.MarketRow) Table {
	t := Table{ID: LiveTableID, Headers: liveHeaders, Rows: make([][]string, 0, len(rows))}
	for _, m := range rows {
		t.Rows = append(t.Rows, []string{
			m.Symbol,
			FormatFloat(m.Price),
			FormatNumber(m.MA5),
			FormatFixed(m.RSI, 2),
			FormatFixed(m.PumpScore, 0),
		})
	}
	return t
}

// SavedTable builds the saved-snapshot table from scratch.
func SavedTable(rows []model.SavedMarketRow) Table {
	t := Table{ID: SavedTableID, Headers: savedHeaders, Rows: make([][]string, 0, len(rows))}
	for _, m := range rows {
		t.Rows = append(t.Rows, []string{
			m.Symbol,
			FormatNumber(m.CurrentPrice),
			FormatNumber(m.MarketCap),
			FormatNumber(m.Volume24h),
			FormatFixed(m.PumpScore, 0),
			OrPlaceholder(string(m.Trend)),
			OrPlaceholder(string(m.RiskLevel)),
			OrPlaceholder(m.LastUpdated),
		})
	}
	return t
}

var tableTmpl = template.Must(template.New("table").Parse(`<table id="{{.ID}}" class="market-table">
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
`))

// WriteHTML writes the table markup to w.
func (t Table) WriteHTML(w io.Writer) error {
	return tableTmpl.Execute(w, t)
}
