package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/api/middleware"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/config"
	"github.com/dmaraujo/Patrimonio-Tracker-Backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	System    *service.SystemService
	Holding   *service.HoldingService
	Crypto    *service.CryptoService
	Label     *service.LabelService
	Snapshot  *service.SnapshotService
	Report    *service.ReportService
	Dashboard *service.DashboardService
	Settings  *service.SettingsService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/holdings", func(r chi.Router) {
			holdingHandler := handlers.NewHoldingHandler(svc.Holding)
			r.Get("/", holdingHandler.Holdings)
			r.Post("/", holdingHandler.CreateHolding)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", holdingHandler.Holding)
				r.Put("/", holdingHandler.UpdateHolding)
				r.Delete("/", holdingHandler.DeleteHolding)
			})
		})

		r.Route("/crypto", func(r chi.Router) {
			cryptoHandler := handlers.NewCryptoHandler(svc.Crypto)
			r.Get("/", cryptoHandler.CryptoHoldings)
			r.Post("/", cryptoHandler.CreateCryptoHolding)
			r.Post("/refresh-rates", cryptoHandler.RefreshRates)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", cryptoHandler.CryptoHolding)
				r.Put("/", cryptoHandler.UpdateCryptoHolding)
				r.Delete("/", cryptoHandler.DeleteCryptoHolding)
			})
		})

		r.Route("/labels/{kind}", func(r chi.Router) {
			labelHandler := handlers.NewLabelHandler(svc.Label)
			r.Get("/", labelHandler.Labels)
			r.Post("/", labelHandler.CreateLabel)
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Delete("/", labelHandler.DeleteLabel)
			})
		})

		r.Route("/snapshots", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshot)
			r.Get("/", snapshotHandler.Snapshots)
			r.Post("/", snapshotHandler.RegisterSnapshot)
			r.Get("/pivot/assets", snapshotHandler.PivotAssets)
			r.Get("/pivot/dates", snapshotHandler.PivotDates)
			r.Route("/items/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Put("/", snapshotHandler.UpdateSnapshotItem)
			})
			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", snapshotHandler.Snapshot)
				r.Delete("/", snapshotHandler.DeleteSnapshot)
				r.Post("/duplicate", snapshotHandler.DuplicateSnapshot)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(svc.Report)
			r.Get("/summary", reportHandler.Summary)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
			r.Get("/", dashboardHandler.Dashboard)
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svc.Settings)
			r.Get("/rate-provider", settingsHandler.RateProvider)
			r.Put("/rate-provider", settingsHandler.UpdateRateProvider)
		})
	})

	return r
}
