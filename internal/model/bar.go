package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptySeries indicates a series with zero bars was submitted.
	ErrEmptySeries = errors.New("series has no bars")
	// ErrMalformedBar indicates a bar violating low <= open/close <= high.
	ErrMalformedBar = errors.New("malformed bar")
	// ErrUnorderedSeries indicates timestamps are not strictly increasing.
	ErrUnorderedSeries = errors.New("series timestamps not strictly increasing")
)

// Bar represents a single candlestick bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Body returns the absolute size of the candle body.
func (b Bar) Body() float64 {
	if b.Close >= b.Open {
		return b.Close - b.Open
	}
	return b.Open - b.Close
}

// Range returns the high-low span of the bar.
func (b Bar) Range() float64 { return b.High - b.Low }

// UpperWick returns the distance from the body top to the high.
func (b Bar) UpperWick() float64 {
	top := b.Open
	if b.Close > top {
		top = b.Close
	}
	return b.High - top
}

// LowerWick returns the distance from the body bottom to the low.
func (b Bar) LowerWick() float64 {
	bottom := b.Open
	if b.Close < bottom {
		bottom = b.Close
	}
	return bottom - b.Low
}

// Bullish reports whether the bar closed above its open.
func (b Bar) Bullish() bool { return b.Close > b.Open }

// Bearish reports whether the bar closed below its open.
func (b Bar) Bearish() bool { return b.Close < b.Open }

// Valid checks the bar price invariant: low <= open/close <= high.
func (b Bar) Valid() bool {
	lo, hi := b.Open, b.Open
	if b.Close < lo {
		lo = b.Close
	}
	if b.Close > hi {
		hi = b.Close
	}
	return b.Low <= lo && hi <= b.High
}

// Series holds chronologically ordered bars for one instrument.
type Series struct {
	Symbol string
	Bars   []Bar
}

// Validate checks that the series is non-empty, strictly ordered in time,
// and that every bar satisfies the price invariant.
func (s *Series) Validate() error {
	if len(s.Bars) == 0 {
		return ErrEmptySeries
	}
	for i, b := range s.Bars {
		if !b.Valid() {
			return fmt.Errorf("%w: bar %d (%s) O=%.4f H=%.4f L=%.4f C=%.4f",
				ErrMalformedBar, i, b.Time.Format("2006-01-02"), b.Open, b.High, b.Low, b.Close)
		}
		if i > 0 && !s.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("%w: bar %d (%s) not after bar %d",
				ErrUnorderedSeries, i, b.Time.Format("2006-01-02"), i-1)
		}
	}
	return nil
}
