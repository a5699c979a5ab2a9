package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createInquiryHandler "github.com/framelight/FLS-BookingService/internal/api/handlers/create_inquiry"
	getAvailableSlotsHandler "github.com/framelight/FLS-BookingService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/framelight/FLS-BookingService/internal/api/handlers/get_catalog"
	getNextAvailableDateHandler "github.com/framelight/FLS-BookingService/internal/api/handlers/get_next_available_date"
	wizardHandler "github.com/framelight/FLS-BookingService/internal/api/handlers/wizard"
	"github.com/framelight/FLS-BookingService/internal/api/middleware"
	"github.com/framelight/FLS-BookingService/internal/config"
	catalogRepo "github.com/framelight/FLS-BookingService/internal/infra/storage/catalog"
	mailRelayClient "github.com/framelight/FLS-BookingService/internal/integrations/mailrelay"
	catalogService "github.com/framelight/FLS-BookingService/internal/service/catalog"
	wizardService "github.com/framelight/FLS-BookingService/internal/service/wizard"
	findNextAvailableDateUC "github.com/framelight/FLS-BookingService/internal/usecase/find_next_available_date"
	getAvailableSlotsUC "github.com/framelight/FLS-BookingService/internal/usecase/get_available_slots"
	submitInquiryUC "github.com/framelight/FLS-BookingService/internal/usecase/submit_inquiry"
	"github.com/framelight/FLS-BookingService/pkg/dbmetrics"
	"github.com/framelight/FLS-BookingService/pkg/logger"
	"github.com/framelight/FLS-BookingService/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting FLS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the catalog database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Verify connectivity
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize the mail relay client
	relayClient := mailRelayClient.NewClient(
		cfg.MailRelay.URL,
		time.Duration(cfg.MailRelay.Timeout)*time.Second,
		log,
	)
	log.Info("Mail relay client initialized (url=%s, timeout=%ds)",
		cfg.MailRelay.URL, cfg.MailRelay.Timeout)

	// Initialize the catalog repository (with metrics wrapper or without)
	var catalogRepository *catalogRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
	}

	// Initialize use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(log)
	findNextAvailableDateUseCase := findNextAvailableDateUC.NewUseCase(log)
	submitInquiryUseCase := submitInquiryUC.NewUseCase(relayClient, log)

	// Initialize services
	catalogSvc := catalogService.NewService(catalogRepository, log)
	wizardSvc := wizardService.NewService(submitInquiryUseCase, log)

	// Initialize handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailableDate := getNextAvailableDateHandler.NewHandler(findNextAvailableDateUseCase, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	createInquiry := createInquiryHandler.NewHandler(submitInquiryUseCase, log)
	wizard := wizardHandler.NewHandler(wizardSvc, log)

	// Configure the router
	r := mux.NewRouter()

	// Add metrics middleware (if metrics are enabled)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Availability ---
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/next-date", getNextAvailableDate.Handle).Methods(http.MethodGet)

	// --- Site content ---
	api.HandleFunc("/catalog/{section}", getCatalog.Handle).Methods(http.MethodGet)

	// --- Direct inquiry submission ---
	api.HandleFunc("/inquiries", createInquiry.Handle).Methods(http.MethodPost)

	// --- Booking wizard sessions ---
	api.HandleFunc("/wizard/sessions", wizard.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}", wizard.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/wizard/sessions/{id}/service", wizard.HandleSelectService).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/package", wizard.HandleSelectPackage).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/back", wizard.HandleBack).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/advance", wizard.HandleAdvance).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/contact", wizard.HandleSetContact).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/submit", wizard.HandleSubmit).Methods(http.MethodPost)

	// --- Wizard picker modal ---
	api.HandleFunc("/wizard/sessions/{id}/picker/open", wizard.HandleOpenPicker).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/picker/date", wizard.HandlePickerDate).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/picker/month", wizard.HandlePickerMonth).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/picker/input", wizard.HandlePickerInput).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/picker/confirm", wizard.HandlePickerConfirm).Methods(http.MethodPost)
	api.HandleFunc("/wizard/sessions/{id}/picker", wizard.HandlePickerClose).Methods(http.MethodDelete)

	// Create the HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Wait for a termination signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop connection pool metrics collection
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
