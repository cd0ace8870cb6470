package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"ChartSentinel/internal/calculator"
	"ChartSentinel/internal/collector"
	"ChartSentinel/internal/engine"
	"ChartSentinel/internal/export"
	"ChartSentinel/internal/model"
	"ChartSentinel/internal/notifier"
	"ChartSentinel/internal/recorder"
)

// ScanSpec describes one scan: which tickers, from when, which patterns,
// and whether Gann levels are wanted.
type ScanSpec struct {
	Tickers    []string
	Start      time.Time
	Kinds      []model.Kind
	GannLevels bool
	CSVPath    string // optional; written after each scan when set
}

// Scheduler runs scans on a cron schedule or on demand.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Spec      ScanSpec
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, rec recorder.Recorder, spec ScanSpec) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Spec:      spec,
		Ctx:       ctx,
	}
}

// Register registers the scan task on the given cron spec.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunScanNow executes the scan immediately (one-shot mode / manual trigger).
func (s *Scheduler) RunScanNow() error {
	return s.runScan()
}

func (s *Scheduler) scanTask() {
	if err := s.runScan(); err != nil {
		log.Printf("[ERROR] scheduled scan: %v", err)
		s.trySend(fmt.Sprintf("❌ scan failed: %v", err))
	}
}

func (s *Scheduler) runScan() error {
	log.Printf("[INFO] scanning %v from %s", s.Spec.Tickers, s.Spec.Start.Format("2006-01-02"))

	series, err := s.Collector.CollectSeries(s.Spec.Tickers, s.Spec.Start)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	results := make(map[string]model.Result, len(series))
	for _, sr := range series {
		result, err := engine.Detect(sr, s.Spec.Kinds)
		if err != nil {
			return fmt.Errorf("detect %s: %w", sr.Symbol, err)
		}
		results[sr.Symbol] = result

		var levels []float64
		if s.Spec.GannLevels {
			levels, err = calculator.GannLevels(sr.Bars)
			if err != nil {
				return fmt.Errorf("levels %s: %w", sr.Symbol, err)
			}
		}

		s.trySend(notifier.FormatScanReport(sr.Symbol, result, levels))

		if err := s.Recorder.RecordScan(&recorder.ScanSnapshot{
			Ticker:    sr.Symbol,
			Start:     s.Spec.Start,
			Kinds:     s.Spec.Kinds,
			Result:    result,
			Levels:    levels,
			ScannedAt: time.Now(),
		}); err != nil {
			log.Printf("[ERROR] record scan %s: %v", sr.Symbol, err)
		}
	}

	if s.Spec.CSVPath != "" {
		if err := export.WriteCSVFile(s.Spec.CSVPath, results); err != nil {
			return fmt.Errorf("export csv: %w", err)
		}
		log.Printf("[INFO] results exported to %s", s.Spec.CSVPath)
	}
	return nil
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
