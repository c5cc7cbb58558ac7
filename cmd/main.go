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

	cancelBookingHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/cancel_booking"
	checkConflictsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/check_conflicts"
	createBookingHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/create_booking"
	createCelebrantHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/create_celebrant"
	createLocationHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/create_location"
	getBookingHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_bookings"
	getCelebrantsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_celebrants"
	getEngineConfigHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_engine_config"
	getFreeSlotsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_free_slots"
	getLocationsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_locations"
	getStatisticsHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_statistics"
	getUpcomingHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/get_upcoming_bookings"
	updateBookingStatusHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/update_booking_status"
	updateEngineConfigHandler "github.com/jaysonsaraujo/phm-app/internal/api/handlers/update_engine_config"
	"github.com/jaysonsaraujo/phm-app/internal/api/middleware"
	"github.com/jaysonsaraujo/phm-app/internal/config"
	bookingRepo "github.com/jaysonsaraujo/phm-app/internal/infra/storage/booking"
	engineConfigRepo "github.com/jaysonsaraujo/phm-app/internal/infra/storage/engineconfig"
	resourceRepo "github.com/jaysonsaraujo/phm-app/internal/infra/storage/resource"
	availabilityService "github.com/jaysonsaraujo/phm-app/internal/service/availability"
	bookingsService "github.com/jaysonsaraujo/phm-app/internal/service/bookings"
	conflictsService "github.com/jaysonsaraujo/phm-app/internal/service/conflicts"
	engineConfigService "github.com/jaysonsaraujo/phm-app/internal/service/engineconfig"
	resourcesService "github.com/jaysonsaraujo/phm-app/internal/service/resources"
	slotsService "github.com/jaysonsaraujo/phm-app/internal/service/slots"
	suggestionsService "github.com/jaysonsaraujo/phm-app/internal/service/suggestions"
	checkConflictsUC "github.com/jaysonsaraujo/phm-app/internal/usecase/check_conflicts"
	createBookingUC "github.com/jaysonsaraujo/phm-app/internal/usecase/create_booking"
	getFreeSlotsUC "github.com/jaysonsaraujo/phm-app/internal/usecase/get_free_slots"
	"github.com/jaysonsaraujo/phm-app/pkg/dbmetrics"
	"github.com/jaysonsaraujo/phm-app/pkg/logger"
	"github.com/jaysonsaraujo/phm-app/pkg/metrics"
	"github.com/jaysonsaraujo/phm-app/pkg/simpletxmanager"
	"github.com/jaysonsaraujo/phm-app/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PHM booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		engineConfigRepository *engineConfigRepo.Repository
		resourceRepository     *resourceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		engineConfigRepository = engineConfigRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		engineConfigRepository = engineConfigRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы движка
	configSvc := engineConfigService.NewService(engineConfigRepository)
	detector := conflictsService.NewDetector(bookingRepository)
	slotGenerator := slotsService.NewGenerator(bookingRepository)
	suggestionEngine := suggestionsService.NewEngine(slotGenerator)
	analyzer := availabilityService.NewAnalyzer(bookingRepository)
	bookingSvc := bookingsService.NewService(bookingRepository)
	resourceSvc := resourcesService.NewService(resourceRepository)

	// Инициализируем use cases
	checkConflictsUseCase := checkConflictsUC.NewUseCase(
		configSvc,
		detector,
		suggestionEngine,
		analyzer,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		resourceSvc,
		configSvc,
		detector,
		txMgr,
		log,
	)
	getFreeSlotsUseCase := getFreeSlotsUC.NewUseCase(configSvc, slotGenerator, log)

	// Инициализируем handlers
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getFreeSlots := getFreeSlotsHandler.NewHandler(getFreeSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getUpcoming := getUpcomingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getLocations := getLocationsHandler.NewHandler(resourceSvc, log)
	createLocation := createLocationHandler.NewHandler(resourceSvc, log)
	getCelebrants := getCelebrantsHandler.NewHandler(resourceSvc, log)
	createCelebrant := createCelebrantHandler.NewHandler(resourceSvc, log)
	getEngineConfig := getEngineConfigHandler.NewHandler(configSvc, log)
	updateEngineConfig := updateEngineConfigHandler.NewHandler(configSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка конфликтов кандидата на бронирование
	api.HandleFunc("/bookings/check-conflicts", checkConflicts.Handle).Methods(http.MethodPost)

	// Календарь бронирований (месяц или день)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Ближайшие венчания
	api.HandleFunc("/bookings/upcoming", getUpcoming.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Свободные слоты ресурса
	api.HandleFunc("/resources/{resourceType}/{resourceId:[0-9]+}/free-slots",
		getFreeSlots.Handle).Methods(http.MethodGet)

	// Справочники
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/celebrants", getCelebrants.Handle).Methods(http.MethodGet)

	// Конфигурация движка и статистика
	api.HandleFunc("/config", getEngineConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Справочники ---
	protected.HandleFunc("/locations", createLocation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/celebrants", createCelebrant.Handle).Methods(http.MethodPost)

	// --- Конфигурация движка ---
	protected.HandleFunc("/config", updateEngineConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
