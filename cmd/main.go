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

	cancelVisitHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/cancel_visit"
	createVisitHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/create_visit"
	getAvailabilityHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_availability"
	getScheduleHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_schedule"
	getUserVisitsHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_user_visits"
	getVisitHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_visit"
	updateScheduleHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/update_schedule"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/REM-AvailabilityService/internal/config"
	"github.com/m04kA/REM-AvailabilityService/internal/events"
	scheduleRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
	visitRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/visitblock"
	googleCalClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/googlecal"
	icsFeedClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/icsfeed"
	scheduleService "github.com/m04kA/REM-AvailabilityService/internal/service/schedule"
	visitsService "github.com/m04kA/REM-AvailabilityService/internal/service/visits"
	createVisitUC "github.com/m04kA/REM-AvailabilityService/internal/usecase/create_visit"
	getAvailabilityUC "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/REM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/logger"
	"github.com/m04kA/REM-AvailabilityService/pkg/metrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/REM-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting REM-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона показов
	location, err := time.LoadLocation(cfg.Availability.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Availability.Timezone, err)
	}
	log.Info("Availability timezone: %s", location)

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

	// Инициализируем адаптеры внешних календарей
	googleCal, err := googleCalClient.NewClient(context.Background(), googleCalClient.Config{
		CredentialsFile: cfg.GoogleCalendar.CredentialsFile,
		Production:      cfg.Server.IsProduction(),
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize Google Calendar adapter: %v", err)
	}
	icsFeed := icsFeedClient.NewClient(time.Duration(cfg.ICS.FetchTimeout)*time.Second, log)
	log.Info("Calendar adapters initialized (ics fetch timeout=%ds)", cfg.ICS.FetchTimeout)

	// Нормализатор событий из разных источников
	normalizer := events.NewNormalizer(log)

	// Инициализируем репозитории (с метриками или без)
	var (
		visitRepository    *visitRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		visitRepository = visitRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		visitRepository = visitRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	visitSvc := visitsService.NewService(visitRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	var adapterMetrics getAvailabilityUC.AdapterMetrics
	if cfg.Metrics.Enabled {
		adapterMetrics = metricsCollector
	}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		visitRepository,
		scheduleRepository,
		googleCal,
		icsFeed,
		normalizer,
		adapterMetrics,
		location,
		log,
	)

	createVisitUseCase := createVisitUC.NewUseCase(
		visitRepository,
		scheduleRepository,
		txMgr,
		location,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createVisit := createVisitHandler.NewHandler(createVisitUseCase, log)
	getVisit := getVisitHandler.NewHandler(visitSvc, log)
	cancelVisit := cancelVisitHandler.NewHandler(visitSvc, log)
	getUserVisits := getUserVisitsHandler.NewHandler(visitSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступности объекта на дату
	api.HandleFunc("/properties/{propertyId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Расписание показов объекта
	api.HandleFunc("/properties/{propertyId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Визиты ---
	// Запись на показ
	protected.HandleFunc("/visits", createVisit.Handle).Methods(http.MethodPost)

	// Получение визита по ID
	protected.HandleFunc("/visits/{visitId}", getVisit.Handle).Methods(http.MethodGet)

	// Отмена визита
	protected.HandleFunc("/visits/{visitId}/cancel", cancelVisit.Handle).Methods(http.MethodPatch)

	// История визитов пользователя
	protected.HandleFunc("/users/{userId}/visits", getUserVisits.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для агентов) ---
	protected.HandleFunc("/properties/{propertyId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

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
