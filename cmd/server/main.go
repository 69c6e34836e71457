package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/config"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/database"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/rates"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/repository"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	holdingRepo := repository.NewHoldingRepository(db)
	cryptoRepo := repository.NewCryptoRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	settingsService, err := service.NewSettingsService(settingsRepo, cfg.Rates.FernetKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	// Stored provider token, when present and enabled, lifts the anonymous
	// request quota. Token changes take effect on the next restart.
	var rateToken string
	if providerCfg, err := settingsService.GetRateProviderConfig(); err == nil && providerCfg.Enabled {
		rateToken = providerCfg.Token
	}
	rateClient := rates.NewRateClient(cfg.Rates.BaseURL, rateToken)

	// Create services
	systemService := service.NewSystemService(db)
	holdingService := service.NewHoldingService(holdingRepo)
	cryptoService := service.NewCryptoService(cryptoRepo, rateClient)
	labelService := service.NewLabelService(labelRepo, holdingRepo, cryptoRepo)
	snapshotService := service.NewSnapshotService(db, snapshotRepo, holdingRepo, cryptoRepo)
	reportService := service.NewReportService(snapshotRepo)
	dashboardService := service.NewDashboardService(holdingRepo, cryptoRepo, rateClient)

	// Optional automatic snapshot scheduler
	scheduler := service.NewSnapshotScheduler(snapshotService, cfg.Snapshot.Schedule)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start snapshot scheduler: %v", err)
	}

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Holding:   holdingService,
		Crypto:    cryptoService,
		Label:     labelService,
		Snapshot:  snapshotService,
		Report:    reportService,
		Dashboard: dashboardService,
		Settings:  settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	scheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
