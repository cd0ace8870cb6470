package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ChartSentinel/internal/collector"
	"ChartSentinel/internal/config"
	"ChartSentinel/internal/notifier"
	"ChartSentinel/internal/recorder"
	"ChartSentinel/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] ChartSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	start, err := cfg.StartTime()
	if err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}

	// Init fetcher and collector
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init notifier
	var n notifier.Notifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		n = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		n = notifier.NewLogNotifier()
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	spec := scheduler.ScanSpec{
		Tickers:    cfg.Scan.Tickers,
		Start:      start,
		Kinds:      kinds,
		GannLevels: cfg.Scan.GannLevels,
		CSVPath:    cfg.Export.CSVPath,
	}
	sched := scheduler.NewScheduler(ctx, col, n, rec, spec)

	// One-shot mode: scan once and exit.
	if os.Getenv("SCAN_ONCE") == "true" {
		if err := sched.RunScanNow(); err != nil {
			log.Fatalf("[FATAL] scan: %v", err)
		}
		log.Println("[INFO] scan complete")
		return
	}

	// Watch mode: rescan on the configured cron schedule.
	if err := sched.Register(cfg.Schedule.ScanCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	log.Println("[INFO] ChartSentinel is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] ChartSentinel stopped")
}
