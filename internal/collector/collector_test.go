package collector

import (
	"testing"
	"time"

	"ChartSentinel/internal/model"
)

func TestCollectSeries(t *testing.T) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	good := []model.Bar{
		{Time: base, Open: 10, High: 11, Low: 9, Close: 10.5},
		{Time: base.AddDate(0, 0, 1), Open: 10.5, High: 12, Low: 10, Close: 11},
	}
	malformed := []model.Bar{
		{Time: base, Open: 10, High: 9, Low: 8, Close: 8.5},
	}

	col := NewCollector(&MockFetcher{Bars: map[string][]model.Bar{
		"GOOD": good,
		"BAD":  malformed,
	}})

	series, err := col.CollectSeries([]string{"GOOD", "BAD"}, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("expected 1 usable series, got %d", len(series))
	}
	if series[0].Symbol != "GOOD" {
		t.Errorf("expected GOOD, got %s", series[0].Symbol)
	}
}

func TestCollectSeries_AllUnusable(t *testing.T) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	col := NewCollector(&MockFetcher{Bars: map[string][]model.Bar{
		"EMPTY": {},
	}})
	if _, err := col.CollectSeries([]string{"EMPTY"}, base); err == nil {
		t.Error("expected error when no ticker yields a usable series")
	}
}
