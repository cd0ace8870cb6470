package collector

import (
	"time"

	"ChartSentinel/internal/model"
)

// Fetcher defines the interface for fetching historical price data.
type Fetcher interface {
	// FetchDailyBars returns daily bars for the symbol from start up to today.
	FetchDailyBars(symbol string, start time.Time) ([]model.Bar, error)
	Name() string
}
