package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"AltRadar/internal/collector"
	"AltRadar/internal/config"
	"AltRadar/internal/dashboard"
	"AltRadar/internal/notifier"
	"AltRadar/internal/recorder"
	"AltRadar/internal/scheduler"
	"AltRadar/internal/web"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] AltRadar starting...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	// Load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	fetcher := collector.NewBackendFetcher(cfg.Backend.BaseURL, cfg.Proxy, cfg.Backend.Timeout)
	log.Printf("[INFO] data source: %s (%s)", fetcher.Name(), fetcher.BaseURL)

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

	// Panels push redraws to connected browsers
	hub := web.NewHub()
	live := dashboard.NewLivePanel(fetcher, rec)
	live.OnRedraw = hub.Broadcast
	saved := dashboard.NewSavedPanel(fetcher, rec, cfg.Backend.SavedLimit)
	saved.OnRedraw = hub.Broadcast

	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, live, saved, tn)
	if err := sched.RegisterAll(cfg.Schedule.LiveCron, cfg.Schedule.SavedCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	} else {
		log.Println("[INFO] Telegram not configured, alerts disabled")
	}

	// Initial load, like opening the page
	go sched.RunNow()

	srv := web.NewServer(cfg.HTTP.Addr, live, saved, hub)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] AltRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] AltRadar stopped")
}
