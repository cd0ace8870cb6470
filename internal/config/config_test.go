package config

import (
	"os"
	"path/filepath"
	"testing"

	"ChartSentinel/internal/model"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `scan:
  tickers: [AAPL, MSFT]
  start_date: "2024-01-02"
  patterns: ["Head and Shoulders", "Doji"]
  gann_levels: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
	if len(cfg.Scan.Tickers) != 2 {
		t.Errorf("expected 2 tickers, got %v", cfg.Scan.Tickers)
	}
	if !cfg.Scan.GannLevels {
		t.Error("expected gann_levels enabled")
	}
	if cfg.Database.SQLitePath == "" {
		t.Error("expected sqlite path default")
	}
	if cfg.Schedule.ScanCron == "" {
		t.Error("expected scan cron default")
	}

	kinds, err := cfg.Kinds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Kind{model.HeadAndShoulders, model.Doji}
	if len(kinds) != len(want) || kinds[0] != want[0] || kinds[1] != want[1] {
		t.Errorf("expected %v, got %v", want, kinds)
	}
}

func TestConfig_EmptyPatternsMeansAll(t *testing.T) {
	cfg := &Config{}
	cfg.Scan.Tickers = []string{"AAPL"}
	cfg.Scan.StartDate = "2024-01-02"

	kinds, err := cfg.Kinds()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kinds) != 11 {
		t.Errorf("expected full catalog (11 kinds), got %d", len(kinds))
	}
}

func TestConfig_ValidationErrors(t *testing.T) {
	noTickers := &Config{}
	noTickers.Scan.StartDate = "2024-01-02"
	if err := noTickers.Validate(); err == nil {
		t.Error("expected error for missing tickers")
	}

	badDate := &Config{}
	badDate.Scan.Tickers = []string{"AAPL"}
	badDate.Scan.StartDate = "02/01/2024"
	if err := badDate.Validate(); err == nil {
		t.Error("expected error for bad start date")
	}

	badPattern := &Config{}
	badPattern.Scan.Tickers = []string{"AAPL"}
	badPattern.Scan.StartDate = "2024-01-02"
	badPattern.Scan.Patterns = []string{"Cup and Handle"}
	if err := badPattern.Validate(); err == nil {
		t.Error("expected error for unknown pattern label")
	}
}
