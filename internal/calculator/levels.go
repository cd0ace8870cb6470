package calculator

import (
	"math"

	"ChartSentinel/internal/model"
)

// LevelCount is the fixed number of Gann levels derived from a series.
const LevelCount = 8

// PriceRange scans all bars and returns the maximum High and minimum Low.
func PriceRange(bars []model.Bar) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, model.ErrEmptySeries
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
	}
	return high, low, nil
}

// GannLevels returns 8 evenly spaced price levels between the series'
// minimum Low and maximum High: min + i*(max-min)/8 for i = 1..8. The
// minimum itself is excluded, the maximum is the last level.
func GannLevels(bars []model.Bar) ([]float64, error) {
	high, low, err := PriceRange(bars)
	if err != nil {
		return nil, err
	}
	step := (high - low) / LevelCount
	levels := make([]float64, LevelCount)
	for i := 1; i <= LevelCount; i++ {
		levels[i-1] = low + float64(i)*step
	}
	return levels, nil
}
