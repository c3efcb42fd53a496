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

	addSlotHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/add_slot"
	checkRangeHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/check_range"
	createPlanningHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/create_planning"
	getMonthSlotsHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_month_slots"
	getPlanningHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_planning"
	getReservationHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/get_reservation"
	releaseReservationHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/release_reservation"
	removeSlotHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/remove_slot"
	reserveRangeHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/reserve_range"
	setPlanningActiveHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/set_planning_active"
	updateSlotCapacityHandler "github.com/m04kA/SMC-CapacityService/internal/api/handlers/update_slot_capacity"
	"github.com/m04kA/SMC-CapacityService/internal/api/middleware"
	"github.com/m04kA/SMC-CapacityService/internal/config"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
	reservationSlotRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/reservationslot"
	registryClient "github.com/m04kA/SMC-CapacityService/internal/integrations/serviceregistry"
	planningService "github.com/m04kA/SMC-CapacityService/internal/service/planning"
	checkRangeUC "github.com/m04kA/SMC-CapacityService/internal/usecase/check_range"
	getReservationUC "github.com/m04kA/SMC-CapacityService/internal/usecase/get_reservation"
	releaseReservationUC "github.com/m04kA/SMC-CapacityService/internal/usecase/release_reservation"
	reserveRangeUC "github.com/m04kA/SMC-CapacityService/internal/usecase/reserve_range"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/logger"
	"github.com/m04kA/SMC-CapacityService/pkg/metrics"
	"github.com/m04kA/SMC-CapacityService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CapacityService/pkg/txmanager"
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

	log.Info("Starting SMC-CapacityService...")
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

	// Инициализируем клиент реестра услуг
	registry := registryClient.NewClient(
		cfg.ServiceRegistry.URL,
		time.Duration(cfg.ServiceRegistry.Timeout)*time.Second,
		log,
	)
	log.Info("Service registry client initialized (url=%s, timeout=%ds)",
		cfg.ServiceRegistry.URL, cfg.ServiceRegistry.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		planningRepository        *planningRepo.Repository
		reservationSlotRepository *reservationSlotRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		planningRepository = planningRepo.NewRepository(wrappedDB)
		reservationSlotRepository = reservationSlotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		planningRepository = planningRepo.NewRepository(db)
		reservationSlotRepository = reservationSlotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис администрирования календарей
	planningSvc := planningService.NewService(
		planningRepository,
		registry,
		log,
	)

	// Инициализируем use cases
	reserveRangeUseCase := reserveRangeUC.NewUseCase(
		planningRepository,
		reservationSlotRepository,
		txMgr,
		log,
	)

	releaseReservationUseCase := releaseReservationUC.NewUseCase(
		planningRepository,
		reservationSlotRepository,
		txMgr,
		log,
	)

	checkRangeUseCase := checkRangeUC.NewUseCase(planningRepository, log)
	getReservationUseCase := getReservationUC.NewUseCase(reservationSlotRepository, log)

	// Инициализируем handlers
	createPlanning := createPlanningHandler.NewHandler(planningSvc, log)
	getPlanning := getPlanningHandler.NewHandler(planningSvc, log)
	setPlanningActive := setPlanningActiveHandler.NewHandler(planningSvc, log)
	addSlot := addSlotHandler.NewHandler(planningSvc, log)
	removeSlot := removeSlotHandler.NewHandler(planningSvc, log)
	updateSlotCapacity := updateSlotCapacityHandler.NewHandler(planningSvc, log)
	getMonthSlots := getMonthSlotsHandler.NewHandler(planningSvc, log)
	checkRange := checkRangeHandler.NewHandler(checkRangeUseCase, log)
	reserveRange := reserveRangeHandler.NewHandler(reserveRangeUseCase, log)
	releaseReservation := releaseReservationHandler.NewHandler(releaseReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(getReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Календари услуг ---
	api.HandleFunc("/plannings", createPlanning.Handle).Methods(http.MethodPost)
	api.HandleFunc("/plannings/{serviceId}", getPlanning.Handle).Methods(http.MethodGet)
	api.HandleFunc("/plannings/{serviceId}/active", setPlanningActive.Handle).Methods(http.MethodPatch)

	// --- Слоты вместимости ---
	api.HandleFunc("/plannings/{serviceId}/slots", addSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/plannings/{serviceId}/slots", getMonthSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/plannings/{serviceId}/slots/{date}", removeSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/plannings/{serviceId}/slots/{date}/capacity", updateSlotCapacity.Handle).Methods(http.MethodPut)

	// --- Доступность ---
	api.HandleFunc("/plannings/{serviceId}/availability", checkRange.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", reserveRange.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/release", releaseReservation.Handle).Methods(http.MethodPost)

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
