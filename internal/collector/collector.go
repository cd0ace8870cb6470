package collector

import (
	"fmt"
	"log"
	"time"

	"ChartSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, start time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.Bars[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(100, 60), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches validated bar series for the configured tickers.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// CollectSeries fetches and validates one series per ticker. Tickers that
// fail to fetch or validate are skipped with a warning; an error is
// returned only when no ticker produced a usable series.
func (c *Collector) CollectSeries(tickers []string, start time.Time) ([]*model.Series, error) {
	series := make([]*model.Series, 0, len(tickers))
	for _, ticker := range tickers {
		bars, err := c.Fetcher.FetchDailyBars(ticker, start)
		if err != nil {
			log.Printf("[WARN] skip %s: %v", ticker, err)
			continue
		}
		s := &model.Series{Symbol: ticker, Bars: bars}
		if err := s.Validate(); err != nil {
			log.Printf("[WARN] skip %s: %v", ticker, err)
			continue
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no usable series for tickers %v", tickers)
	}
	return series, nil
}
