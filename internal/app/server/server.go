package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fleetops/internal/domain/alerts"
	"fleetops/internal/domain/audit"
	"fleetops/internal/domain/auth"
	"fleetops/internal/domain/erp"
	"fleetops/internal/domain/fleet"
	"fleetops/internal/domain/incidents"
	"fleetops/internal/domain/interest"
	"fleetops/internal/domain/inventory"
	"fleetops/internal/domain/notifications"
	"fleetops/internal/domain/reports"
	"fleetops/internal/domain/scheduling"
	"fleetops/internal/domain/signatures"
	"fleetops/internal/domain/workforce"
	"fleetops/internal/platform/config"
	cryptoutil "fleetops/internal/platform/crypto"
	"fleetops/internal/platform/db"
	"fleetops/internal/platform/email"
	"fleetops/internal/platform/jobs"
	"fleetops/internal/platform/metrics"
	audithandler "fleetops/internal/transport/http/handlers/audit"
	authhandler "fleetops/internal/transport/http/handlers/auth"
	dashboardhandler "fleetops/internal/transport/http/handlers/dashboard"
	erphandler "fleetops/internal/transport/http/handlers/erp"
	fleethandler "fleetops/internal/transport/http/handlers/fleet"
	incidentshandler "fleetops/internal/transport/http/handlers/incidents"
	interesthandler "fleetops/internal/transport/http/handlers/interest"
	inventoryhandler "fleetops/internal/transport/http/handlers/inventory"
	notificationshandler "fleetops/internal/transport/http/handlers/notifications"
	reportshandler "fleetops/internal/transport/http/handlers/reports"
	schedulinghandler "fleetops/internal/transport/http/handlers/scheduling"
	signatureshandler "fleetops/internal/transport/http/handlers/signatures"
	workforcehandler "fleetops/internal/transport/http/handlers/workforce"
	"fleetops/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Pool    *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
	Jobs    *jobs.Service
}

// New connects, optionally migrates and seeds, and wires every route.
// Callers own the returned App and must Close it.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed failed: %w", err)
		}
	}

	app := &App{Config: cfg, Pool: pool}
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}
	router, err := buildRouter(app)
	if err != nil {
		pool.Close()
		return nil, err
	}
	app.Router = router
	if app.Jobs != nil {
		app.Jobs.Start(ctx)
	}
	return app, nil
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}

func buildRouter(app *App) (http.Handler, error) {
	cfg := app.Config
	pool := app.Pool

	fieldCrypto, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		return nil, err
	}

	authStore := auth.NewStore(pool)
	authService := auth.NewService(authStore, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	workforceStore := workforce.NewStore(pool)
	workforceService := workforce.NewService(workforceStore, cfg.DefaultEmployeePassword, fieldCrypto)

	fleetStore := fleet.NewStore(pool)
	fleetService := fleet.NewService(fleetStore)

	schedulingStore := scheduling.NewStore(pool)
	schedulingService := scheduling.NewService(schedulingStore)

	incidentStore := incidents.NewStore(pool)
	incidentService := incidents.NewService(incidentStore, fleetStore)

	inventoryService := inventory.NewService(inventory.NewStore(pool))

	alertService := alerts.NewService(alerts.NewStore(pool), fleetStore, workforceStore, incidentStore)

	erpService := erp.NewService(erp.NewStore(pool))
	interestService := interest.NewService(interest.NewStore(pool))

	mailer := email.New(cfg)
	notificationService := notifications.NewService(notifications.NewStore(pool), mailer, cfg.EmailFrom)

	signatureService := signatures.NewService(signatures.NewStore(pool), signatures.SimulatedProvider{}, notificationService)

	auditService := audit.NewService(audit.NewStore(pool))

	reportService := reports.NewService(alertService, schedulingService, workforceStore)

	app.Jobs = jobs.New(pool, cfg, alertService, notificationService, authStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))
	if app.Metrics != nil {
		router.Use(middleware.Metrics(app.Metrics))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if app.Metrics != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(app.Metrics.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authService, authStore)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/refresh", authHandler.HandleRefresh)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/me", authHandler.HandleMe)

		workforcehandler.NewHandler(workforceService, authStore, auditService).RegisterRoutes(r)
		fleethandler.NewHandler(fleetService, authStore, auditService).RegisterRoutes(r)
		schedulinghandler.NewHandler(schedulingService, authStore, auditService, notificationService, workforceService, middleware.NewIdempotencyStore(pool)).RegisterRoutes(r)
		dashboardhandler.NewHandler(alertService, authStore).RegisterRoutes(r)
		incidentshandler.NewHandler(incidentService, authStore).RegisterRoutes(r)
		inventoryhandler.NewHandler(inventoryService, authStore).RegisterRoutes(r)
		erphandler.NewHandler(erpService, authStore).RegisterRoutes(r)
		interesthandler.NewHandler(interestService, authStore).RegisterRoutes(r)
		signatureshandler.NewHandler(signatureService, authStore).RegisterRoutes(r)
		reportshandler.NewHandler(reportService, authStore).RegisterRoutes(r)
		notificationshandler.NewHandler(notificationService).RegisterRoutes(r)
		audithandler.NewHandler(auditService, authStore).RegisterRoutes(r)
	})

	return router, nil
}
