package dashboard

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"AltRadar/internal/collector"
	"AltRadar/internal/model"
	"AltRadar/internal/recorder"
)

func sampleAnalysis() *model.MarketAnalysis {
	return &model.MarketAnalysis{
		Status: model.StatusSuccess,
		Data: []model.MarketRow{
			{Symbol: "BTC", Price: 1234.5, MA5: model.Some(1200), RSI: model.Some(61.234), PumpScore: model.Some(72.6), VolumeSpike: true},
			{Symbol: "ETH", Price: 99},
		},
	}
}

func TestLivePanel_Load(t *testing.T) {
	p := NewLivePanel(&collector.MockFetcher{Analysis: sampleAnalysis()}, nil)
	if !p.Load(context.Background()) {
		t.Fatal("expected load to succeed")
	}

	snap := p.Snapshot()
	if snap.Table.ID != "marketTable" || len(snap.Table.Rows) != 2 {
		t.Fatalf("unexpected table %+v", snap.Table)
	}
	want := []string{"BTC", "1,234.5", "1,200", "61.23", "73"}
	for i, cell := range snap.Table.Rows[0] {
		if cell != want[i] {
			t.Errorf("cell %d: got %q, want %q", i, cell, want[i])
		}
	}
	eth := snap.Table.Rows[1]
	if eth[2] != "-" || eth[3] != "-" || eth[4] != "-" {
		t.Errorf("absent fields should be placeholders, got %v", eth)
	}

	spikes := snap.Charts[1]
	if spikes.ID != "volumeChart" || spikes.Data[0] != 1 || spikes.Data[1] != 0 {
		t.Errorf("unexpected spike chart %+v", spikes)
	}
}

func TestLivePanel_NonSuccessIsNoop(t *testing.T) {
	f := &collector.MockFetcher{Analysis: sampleAnalysis()}
	p := NewLivePanel(f, nil)
	p.Load(context.Background())
	before := p.Revision()

	f.SetAnalysis(&model.MarketAnalysis{Status: "error", Data: []model.MarketRow{{Symbol: "DOGE"}}})
	if p.Load(context.Background()) {
		t.Error("non-success envelope should not load")
	}
	if p.Revision() != before || len(p.Rows()) != 2 {
		t.Error("view changed on non-success envelope")
	}
}

func TestLivePanel_FailureLeavesViewUnchanged(t *testing.T) {
	f := &collector.MockFetcher{Analysis: sampleAnalysis()}
	p := NewLivePanel(f, nil)
	p.Load(context.Background())

	f.AnalysisErr = errors.New("status 500")
	if p.Load(context.Background()) {
		t.Error("expected failure")
	}
	if p.Revision() != 1 || len(p.Rows()) != 2 {
		t.Error("view changed on failed load")
	}
}

func TestLivePanel_ChartsConstructedOnce(t *testing.T) {
	f := &collector.MockFetcher{Analysis: sampleAnalysis()}
	p := NewLivePanel(f, nil)
	p.Load(context.Background())
	first := p.price.Chart()

	f.SetAnalysis(&model.MarketAnalysis{Status: model.StatusSuccess, Data: []model.MarketRow{{Symbol: "SOL", Price: 5}}})
	p.Load(context.Background())

	if p.price.Chart() != first {
		t.Error("chart should be mutated in place, not rebuilt")
	}
	if labels := p.price.Labels(); len(labels) != 1 || labels[0] != "SOL" {
		t.Errorf("unexpected labels %v", labels)
	}
}

func TestLivePanel_EmptyBeforeLoad(t *testing.T) {
	p := NewLivePanel(&collector.MockFetcher{}, nil)
	snap := p.Snapshot()
	if snap.LoadedAt != nil || snap.Revision != 0 || len(snap.Table.Rows) != 0 {
		t.Errorf("unexpected initial snapshot %+v", snap)
	}
	if len(p.View().Charts) != 0 {
		t.Error("charts exist before the first load")
	}
}

func TestLivePanel_RecordsLoads(t *testing.T) {
	rec, err := recorder.NewSQLiteRecorder(filepath.Join(t.TempDir(), "loads.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	p := NewLivePanel(&collector.MockFetcher{Analysis: sampleAnalysis()}, rec)
	if !p.Load(context.Background()) {
		t.Fatal("expected load to succeed")
	}
}
