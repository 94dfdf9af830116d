package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"AltRadar/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists load history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS panel_loads (
			id              TEXT PRIMARY KEY,
			timestamp       INTEGER NOT NULL,
			panel           TEXT NOT NULL,
			row_count       INTEGER NOT NULL,
			candidate_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loads_ts ON panel_loads(panel, timestamp)`,

		`CREATE TABLE IF NOT EXISTS panel_rows (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			load_id      TEXT NOT NULL REFERENCES panel_loads(id),
			position     INTEGER NOT NULL,
			symbol       TEXT NOT NULL,
			price        REAL,
			ma5          REAL,
			rsi          REAL,
			volume_spike INTEGER,
			market_cap   REAL,
			volume_24h   REAL,
			pump_score   REAL,
			trend        TEXT,
			risk_level   TEXT,
			last_updated TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_load ON panel_rows(load_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_symbol ON panel_rows(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordLiveLoad stores a live load and returns its id.
func (r *SQLiteRecorder) RecordLiveLoad(load *LiveLoad) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(`INSERT INTO panel_loads (id, timestamp, panel, row_count, candidate_count)
		VALUES (?,?,?,?,NULL)`,
		id, time.Now().Unix(), PanelLive, len(load.Rows),
	); err != nil {
		return "", fmt.Errorf("insert load: %w", err)
	}

	for i, m := range load.Rows {
		if _, err := tx.Exec(`INSERT INTO panel_rows
			(load_id, position, symbol, price, ma5, rsi, volume_spike, pump_score)
			VALUES (?,?,?,?,?,?,?,?)`,
			id, i, m.Symbol, m.Price, nullable(m.MA5), nullable(m.RSI), m.VolumeSpike, nullable(m.PumpScore),
		); err != nil {
			return "", fmt.Errorf("insert row %s: %w", m.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// RecordSavedLoad stores a saved load and returns its id.
func (r *SQLiteRecorder) RecordSavedLoad(load *SavedLoad) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(`INSERT INTO panel_loads (id, timestamp, panel, row_count, candidate_count)
		VALUES (?,?,?,?,?)`,
		id, time.Now().Unix(), PanelSaved, len(load.Rows), load.Candidates,
	); err != nil {
		return "", fmt.Errorf("insert load: %w", err)
	}

	for i, m := range load.Rows {
		if _, err := tx.Exec(`INSERT INTO panel_rows
			(load_id, position, symbol, price, market_cap, volume_24h, pump_score, trend, risk_level, last_updated)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			id, i, m.Symbol, nullable(m.CurrentPrice), nullable(m.MarketCap), nullable(m.Volume24h), nullable(m.PumpScore),
			string(m.Trend), string(m.RiskLevel), m.LastUpdated,
		); err != nil {
			return "", fmt.Errorf("insert row %s: %w", m.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func nullable(o model.OptionalFloat) sql.NullFloat64 {
	return sql.NullFloat64{Float64: o.Value, Valid: o.Valid}
}
