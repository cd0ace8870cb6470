package recorder

import (
	"time"

	"ChartSentinel/internal/model"
)

// ScanSnapshot holds everything recorded for one ticker's scan.
type ScanSnapshot struct {
	Ticker    string
	Start     time.Time
	Kinds     []model.Kind
	Result    model.Result
	Levels    []float64 // empty when levels were not requested
	ScannedAt time.Time
}

// Recorder persists scan history for later inspection.
type Recorder interface {
	RecordScan(snap *ScanSnapshot) error
	Close() error
}
