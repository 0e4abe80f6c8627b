package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/salonora/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/salonora/booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/salonora/booking-service/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/salonora/booking-service/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/salonora/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/salonora/booking-service/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/salonora/booking-service/internal/api/handlers/get_booking_stats"
	getServiceHandler "github.com/salonora/booking-service/internal/api/handlers/get_service"
	getSettingsHandler "github.com/salonora/booking-service/internal/api/handlers/get_settings"
	getUserBookingsHandler "github.com/salonora/booking-service/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/salonora/booking-service/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/salonora/booking-service/internal/api/handlers/list_services"
	updateBookingStatusHandler "github.com/salonora/booking-service/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/salonora/booking-service/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/salonora/booking-service/internal/api/handlers/update_settings"
	"github.com/salonora/booking-service/internal/api/middleware"
	"github.com/salonora/booking-service/internal/config"
	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/internal/infra/notifier"
	bookingRepo "github.com/salonora/booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/salonora/booking-service/internal/infra/storage/service"
	settingsRepo "github.com/salonora/booking-service/internal/infra/storage/settings"
	"github.com/salonora/booking-service/internal/scheduler"
	bookingsService "github.com/salonora/booking-service/internal/service/bookings"
	catalogService "github.com/salonora/booking-service/internal/service/catalog"
	settingsService "github.com/salonora/booking-service/internal/service/settings"
	createBookingUC "github.com/salonora/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/salonora/booking-service/internal/usecase/get_available_slots"
	"github.com/salonora/booking-service/pkg/dbmetrics"
	"github.com/salonora/booking-service/pkg/logger"
	"github.com/salonora/booking-service/pkg/metrics"
	"github.com/salonora/booking-service/pkg/simpletxmanager"
	"github.com/salonora/booking-service/pkg/txmanager"
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

	log.Info("Starting salon booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (pub/sub обновлений настроек салона)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, channel=%s)",
		cfg.Redis.Addr, cfg.Redis.SettingsChannel)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		serviceRepository  *serviceRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем политику расписания из сохранённых настроек
	initialSettings := domain.DefaultSettings()
	if stored, err := settingsRepository.Get(context.Background()); err == nil {
		initialSettings = *stored
	} else if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		log.Fatal("Failed to load salon settings: %v", err)
	}
	policy := scheduler.NewPolicy(initialSettings)
	log.Info("Scheduling policy initialized (%s-%s, slot=%dm)",
		initialSettings.WorkHours.Start, initialSettings.WorkHours.End, initialSettings.SlotDurationMinutes)

	// Нотификатор настроек и подписка на обновления от других инстансов
	settingsNotifier := notifier.New(redisClient, cfg.Redis.SettingsChannel, log)

	subscribeCtx, stopSubscribe := context.WithCancel(context.Background())
	defer stopSubscribe()

	go func() {
		if err := settingsNotifier.Subscribe(subscribeCtx, policy.ApplySettings); err != nil && subscribeCtx.Err() == nil {
			log.Error("Settings subscription stopped: %v", err)
		}
	}()

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(serviceRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, settingsNotifier, policy, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		policy,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		serviceRepository,
		policy,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", getService.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущее расписание салона
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Список бронирований с фильтрацией
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Управление каталогом услуг
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// Управление расписанием салона
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Статистика бронирований
	admin.HandleFunc("/stats/bookings", getBookingStats.Handle).Methods(http.MethodGet)

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

	// Останавливаем подписку на настройки и сбор метрик пула
	stopSubscribe()
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
