package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"ChartSentinel/internal/model"
)

func TestSQLiteRecorder_RecordScan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer r.Close()

	ts := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	snap := &ScanSnapshot{
		Ticker: "AAPL",
		Start:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Kinds:  []model.Kind{model.HeadAndShoulders, model.Doji},
		Result: model.Result{
			model.HeadAndShoulders: {{Kind: model.HeadAndShoulders, Time: ts, Price: 15}},
			model.Doji:             {},
		},
		Levels:    []float64{112.5, 125, 137.5, 150, 162.5, 175, 187.5, 200},
		ScannedAt: time.Now(),
	}
	if err := r.RecordScan(snap); err != nil {
		t.Fatalf("record scan: %v", err)
	}

	var runs, matches int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scan_runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM pattern_matches").Scan(&matches); err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if runs != 1 {
		t.Errorf("expected 1 run, got %d", runs)
	}
	if matches != 1 {
		t.Errorf("expected 1 match row, got %d", matches)
	}

	var label, date string
	var price float64
	if err := r.db.QueryRow("SELECT pattern, date, price FROM pattern_matches").Scan(&label, &date, &price); err != nil {
		t.Fatalf("read match: %v", err)
	}
	if label != "Head and Shoulders" || date != "2024-01-04" || price != 15 {
		t.Errorf("unexpected match row: %s %s %.2f", label, date, price)
	}
}
