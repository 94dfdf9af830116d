package recorder

import (
	"database/sql"
	"path/filepath"
	"testing"

	"AltRadar/internal/model"
)

func openTemp(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "loads.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_LiveLoad(t *testing.T) {
	r := openTemp(t)

	id, err := r.RecordLiveLoad(&LiveLoad{Rows: []model.MarketRow{
		{Symbol: "BTC", Price: 100, MA5: model.Some(99), RSI: model.None(), VolumeSpike: true},
		{Symbol: "ETH", Price: 10},
	}})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatal("expected load id")
	}

	var panel string
	var count int
	var candidates sql.NullInt64
	if err := r.db.QueryRow(`SELECT panel, row_count, candidate_count FROM panel_loads WHERE id = ?`, id).
		Scan(&panel, &count, &candidates); err != nil {
		t.Fatalf("query load: %v", err)
	}
	if panel != PanelLive || count != 2 || candidates.Valid {
		t.Errorf("unexpected load row: %s %d %v", panel, count, candidates)
	}

	var rsi, ma5 sql.NullFloat64
	var spike bool
	if err := r.db.QueryRow(`SELECT ma5, rsi, volume_spike FROM panel_rows WHERE load_id = ? AND symbol = 'BTC'`, id).
		Scan(&ma5, &rsi, &spike); err != nil {
		t.Fatalf("query row: %v", err)
	}
	if !ma5.Valid || ma5.Float64 != 99 || rsi.Valid || !spike {
		t.Errorf("unexpected row values: ma5=%v rsi=%v spike=%v", ma5, rsi, spike)
	}
}

func TestSQLiteRecorder_SavedLoadKeepsOrder(t *testing.T) {
	r := openTemp(t)

	rows := []model.SavedMarketRow{
		{Symbol: "SOL", PumpScore: model.Some(90), Trend: model.TrendBullish},
		{Symbol: "ADA", Trend: model.TrendBearish},
		{Symbol: "XRP"},
	}
	id, err := r.RecordSavedLoad(&SavedLoad{Rows: rows, Candidates: 1})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	res, err := r.db.Query(`SELECT symbol, pump_score FROM panel_rows WHERE load_id = ? ORDER BY position`, id)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer res.Close()

	var got []string
	var scored int
	for res.Next() {
		var sym string
		var score sql.NullFloat64
		if err := res.Scan(&sym, &score); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, sym)
		if score.Valid {
			scored++
		}
	}
	if len(got) != 3 || got[0] != "SOL" || got[1] != "ADA" || got[2] != "XRP" {
		t.Errorf("unexpected order %v", got)
	}
	if scored != 1 {
		t.Errorf("expected 1 scored row, got %d", scored)
	}

	var candidates int
	r.db.QueryRow(`SELECT candidate_count FROM panel_loads WHERE id = ?`, id).Scan(&candidates)
	if candidates != 1 {
		t.Errorf("expected 1 candidate, got %d", candidates)
	}
}

func TestSQLiteRecorder_EmptyLoadAndDistinctIDs(t *testing.T) {
	r := openTemp(t)

	a, err := r.RecordSavedLoad(&SavedLoad{})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	b, err := r.RecordSavedLoad(&SavedLoad{})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if a == b {
		t.Error("load ids should differ")
	}

	var n int
	r.db.QueryRow(`SELECT COUNT(*) FROM panel_rows`).Scan(&n)
	if n != 0 {
		t.Errorf("expected no rows, got %d", n)
	}
}

func TestSQLiteRecorder_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loads.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := r.RecordLiveLoad(&LiveLoad{Rows: []model.MarketRow{{Symbol: "BTC"}}}); err != nil {
		t.Fatalf("record: %v", err)
	}
	r.Close()

	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer r2.Close()
	var n int
	r2.db.QueryRow(`SELECT COUNT(*) FROM panel_loads`).Scan(&n)
	if n != 1 {
		t.Errorf("expected 1 load after reopen, got %d", n)
	}
}
