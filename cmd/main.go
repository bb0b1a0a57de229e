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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/create_reservation"
	createReviewHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/create_review"
	getArtisanReviewsHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/get_artisan_reviews"
	getAvailabilityHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/get_availability"
	getUserReservationsHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/get_user_reservations"
	listCraftsHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/list_crafts"
	listCraftsmenHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/list_craftsmen"
	loginHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/login"
	logoutHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/logout"
	replyOfferHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/reply_offer"
	respondOfferHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/respond_offer"
	updateStatusHandler "github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/middleware"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/config"
	catalogRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/catalog"
	sessionRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/session"
	craftopiaClient "github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
	authService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/auth"
	catalogService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/catalog"
	reservationsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reservations"
	reviewsService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/reviews"
	createReservationUC "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/create_reservation"
	resolveAvailabilityUC "github.com/craftopia-app/Craftopia-ReservationService/internal/usecase/resolve_availability"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/dbmetrics"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/logger"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/metrics"
)

func main() {
	// Переменные окружения из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting Craftopia-ReservationService...")
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

	// Инициализируем клиента Craftopia backend
	backend := craftopiaClient.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		backend = backend.WithMetrics(metricsCollector)
	}
	log.Info("Craftopia backend client initialized (url=%s timeout=%ds)",
		cfg.Backend.URL, cfg.Backend.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		sessionRepository *sessionRepo.Repository
		catalogRepository *catalogRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(backend, sessionRepository, log)
	reservationsSvc := reservationsService.NewService(backend, log)
	reviewsSvc := reviewsService.NewService(backend, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(backend, log)
	createReservationUseCase := createReservationUC.NewUseCase(backend, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	replyOffer := replyOfferHandler.NewHandler(reservationsSvc, log)
	respondOffer := respondOfferHandler.NewHandler(reservationsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	getArtisanReviews := getArtisanReviewsHandler.NewHandler(reviewsSvc, log)
	listCraftsmen := listCraftsmenHandler.NewHandler(catalogSvc, log)
	listCrafts := listCraftsHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход по цепочке ролей
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Расписание мастера
	api.HandleFunc("/artisans/{artisanId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Отзывы о мастере
	api.HandleFunc("/artisans/{artisanId}/reviews",
		getArtisanReviews.Handle).Methods(http.MethodGet)

	// Демонстрационный каталог
	api.HandleFunc("/craftsmen", listCraftsmen.Handle).Methods(http.MethodGet)
	api.HandleFunc("/crafts", listCrafts.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	// --- Сессия ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// --- Заказы ---
	// Создание заказа
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена заказа заказчиком
	protected.HandleFunc("/reservations/{reservationId}/cancel",
		cancelReservation.Handle).Methods(http.MethodPatch)

	// Ценовое предложение мастера
	protected.HandleFunc("/reservations/{reservationId}/reply",
		replyOffer.Handle).Methods(http.MethodPut)

	// Ответ заказчика на предложение
	protected.HandleFunc("/reservations/{reservationId}/response",
		respondOffer.Handle).Methods(http.MethodPut)

	// Действия мастера над заявкой
	protected.HandleFunc("/reservations/{reservationId}/status",
		updateStatus.Handle).Methods(http.MethodPut)

	// История заказов пользователя
	protected.HandleFunc("/users/{userId}/reservations",
		getUserReservations.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

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
