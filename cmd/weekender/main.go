package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvrst/weekender/internal/backup"
	"github.com/dvrst/weekender/internal/config"
	"github.com/dvrst/weekender/internal/database"
	"github.com/dvrst/weekender/internal/logging"
	"github.com/dvrst/weekender/internal/model"
	"github.com/dvrst/weekender/internal/planner"
	"github.com/dvrst/weekender/internal/server"
	"github.com/dvrst/weekender/internal/store"
	"github.com/dvrst/weekender/internal/weather"
)

func main() {
	cfg := config.FromEnv()
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	stateStore := store.NewStateStore(db)
	loaded, err := stateStore.Load()
	if err != nil {
		log.Fatalf("failed to load planner state: %v", err)
	}
	state := model.DefaultState()
	if loaded != nil {
		state = *loaded
	}

	p := planner.New(state, stateStore, cfg.BaseURL, logger.With("component", "planner"))

	weatherSvc := weather.NewService(weather.Config{
		Latitude:        cfg.WeatherLatitude,
		Longitude:       cfg.WeatherLongitude,
		TemperatureUnit: cfg.WeatherUnits,
	})

	if !cfg.BackupConfigured() {
		logger.Info("backups disabled", "reason", "S3 credentials or passphrase missing")
	}
	backupCfg := backup.Config{
		S3: backup.S3Config{
			Endpoint:  cfg.BackupEndpoint,
			Bucket:    cfg.BackupBucket,
			Region:    cfg.BackupRegion,
			AccessKey: cfg.BackupAccessKey,
			SecretKey: cfg.BackupSecretKey,
		},
		Passphrase:   cfg.BackupPassphrase,
		ScheduleHour: 3,
	}

	srv := server.New(p, weatherSvc, backupCfg, logger)

	// The schedule loop no-ops when backups are not configured.
	srv.BackupManager().Start(context.Background())
	defer srv.BackupManager().Stop()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Weekender running at http://localhost:%s\n", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
