package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"ChartSentinel/internal/pattern"
)

// SQLiteRecorder persists scan history to a SQLite database.
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

	// WAL mode for better concurrent read performance.
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
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			start_date  TEXT,
			patterns    TEXT,
			match_count INTEGER,
			level_low   REAL,
			level_high  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON scan_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS pattern_matches (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL,
			ticker    TEXT NOT NULL,
			pattern   TEXT NOT NULL,
			date      TEXT NOT NULL,
			price     REAL,
			FOREIGN KEY(run_id) REFERENCES scan_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_run ON pattern_matches(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan stores one scan run and all of its matches.
func (r *SQLiteRecorder) RecordScan(snap *ScanSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	labels := make([]string, len(snap.Kinds))
	for i, k := range snap.Kinds {
		labels[i] = pattern.Label(k)
	}
	total := 0
	for _, matches := range snap.Result {
		total += len(matches)
	}
	var low, high float64
	if n := len(snap.Levels); n > 0 {
		low, high = snap.Levels[0], snap.Levels[n-1]
	}

	res, err := r.db.Exec(`INSERT INTO scan_runs
		(timestamp, ticker, start_date, patterns, match_count, level_low, level_high)
		VALUES (?,?,?,?,?,?,?)`,
		snap.ScannedAt.Unix(), snap.Ticker, snap.Start.Format("2006-01-02"),
		strings.Join(labels, ","), total, low, high,
	)
	if err != nil {
		return fmt.Errorf("insert scan run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("scan run id: %w", err)
	}

	for kind, matches := range snap.Result {
		for _, m := range matches {
			if _, err := r.db.Exec(`INSERT INTO pattern_matches
				(run_id, ticker, pattern, date, price)
				VALUES (?,?,?,?,?)`,
				runID, snap.Ticker, pattern.Label(kind),
				m.Time.Format("2006-01-02"), m.Price,
			); err != nil {
				return fmt.Errorf("insert match: %w", err)
			}
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
