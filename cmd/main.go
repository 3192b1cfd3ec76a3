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
	_ "time/tzdata"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/get_booking"
	getStatisticsHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/get_statistics"
	listBookingsHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/list_bookings"
	registerWebsiteHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/register_website"
	updateBookingHandler "github.com/m04kA/SMC-SiteBookings/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	"github.com/m04kA/SMC-SiteBookings/internal/config"
	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	websiteCache "github.com/m04kA/SMC-SiteBookings/internal/infra/cache/website"
	"github.com/m04kA/SMC-SiteBookings/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/booking"
	websiteRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/website"
	bookingsService "github.com/m04kA/SMC-SiteBookings/internal/service/bookings"
	websitesService "github.com/m04kA/SMC-SiteBookings/internal/service/websites"
	createBookingUC "github.com/m04kA/SMC-SiteBookings/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SiteBookings/internal/usecase/get_available_slots"
	getStatisticsUC "github.com/m04kA/SMC-SiteBookings/internal/usecase/get_statistics"
	updateBookingUC "github.com/m04kA/SMC-SiteBookings/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SiteBookings/pkg/dbmetrics"
	"github.com/m04kA/SMC-SiteBookings/pkg/logger"
	"github.com/m04kA/SMC-SiteBookings/pkg/metrics"
	"github.com/m04kA/SMC-SiteBookings/pkg/mq"
	"github.com/m04kA/SMC-SiteBookings/pkg/txmanager"
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

	log.Info("Starting SMC-SiteBookings...")

	// Настройки слотов (валидированы при загрузке конфигурации)
	location, _ := cfg.Slots.Location()
	workStart, workEnd, _ := cfg.Slots.WorkingHours()
	slotsSettings := domain.SlotsSettings{
		WorkStart:        workStart,
		WorkEnd:          workEnd,
		MinLeadMinutes:   cfg.Slots.MinLeadMinutes,
		AllowedDurations: cfg.Slots.AllowedDurations,
		DefaultLocation:  location,
	}
	log.Info("Slots: %s-%s %s, lead=%dm, durations=%v",
		workStart, workEnd, location, cfg.Slots.MinLeadMinutes, cfg.Slots.AllowedDurations)

	// Метрики: nil коллектор безопасен, все методы становятся no-op
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Кэш токенов в Redis (опционально)
	var tokenCache websitesService.WebsiteCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Warn("Redis is unavailable at %s, token cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			tokenCache = websiteCache.NewCache(redisClient, time.Duration(cfg.Redis.TokenTTL)*time.Second)
			log.Info("Token cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TokenTTL)
		}
	}

	// События бронирований в RabbitMQ (опционально)
	var transport interface {
		events.MessagePublisher
		Close() error
	} = mq.NopPublisher{}
	if cfg.Events.Enabled {
		publisher, err := mq.NewPublisher(cfg.Events.URL, cfg.Events.Exchange)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ, booking events disabled: %v", err)
		} else {
			transport = publisher
			log.Info("Booking events are published to exchange %s", cfg.Events.Exchange)
		}
	}
	defer transport.Close()
	bookingEvents := events.NewBookingPublisher(transport, log)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	websiteRepository := websiteRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сервисы
	websiteSvc := websitesService.NewService(websiteRepository, tokenCache, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, bookingEvents, metricsCollector, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		bookingEvents,
		metricsCollector,
		slotsSettings.AllowedDurations,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		bookingEvents,
		metricsCollector,
		slotsSettings.AllowedDurations,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		slotsSettings,
		metricsCollector,
		log,
	)
	getStatisticsUseCase := getStatisticsUC.NewUseCase(
		bookingRepository,
		cfg.Statistics.WindowDays,
		location,
		log,
	)

	// Handlers
	registerWebsite := registerWebsiteHandler.NewHandler(websiteSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, slotsSettings.AllowedDurations, log)
	getStatistics := getStatisticsHandler.NewHandler(getStatisticsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/websites/register", registerWebsite.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <access_token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(websiteSvc, log))

	// Вычисляемые ресурсы регистрируются раньше /bookings/{id}
	protected.HandleFunc("/bookings/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/statistics", getStatistics.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)

	// CORS и логирование оборачивают весь роутер, чтобы preflight не доходил до аутентификации
	var handler http.Handler = r
	handler = middleware.RequestLogging(log)(handler)
	handler = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxAge:         cfg.CORS.MaxAge,
	})(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
