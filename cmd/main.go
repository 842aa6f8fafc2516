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

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminLoginHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/admin_login"
	createPortfolioItemHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/create_portfolio_item"
	createReservationHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/create_reservation"
	createServiceHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/create_service"
	deletePortfolioItemHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/delete_portfolio_item"
	deleteServiceHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/get_available_slots"
	getDashboardHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/get_dashboard"
	getReservationHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/get_reservation"
	getWorkingHoursHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/get_working_hours"
	listPortfolioHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/list_portfolio"
	listReservationsHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/list_reservations"
	listServicesHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/list_services"
	updatePortfolioItemHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/update_portfolio_item"
	updateReservationStatusHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/update_reservation_status"
	updateServiceHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/update_service"
	updateWorkingDayHandler "github.com/m04kA/SMC-NailStudio/internal/api/handlers/update_working_day"
	"github.com/m04kA/SMC-NailStudio/internal/api/middleware"
	"github.com/m04kA/SMC-NailStudio/internal/config"
	slotsCache "github.com/m04kA/SMC-NailStudio/internal/infra/cache/slots"
	portfolioRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/portfolio"
	reservationRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/reservation"
	serviceRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/service"
	workingHoursRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-NailStudio/internal/integrations/imagestore"
	adminAuthService "github.com/m04kA/SMC-NailStudio/internal/service/adminauth"
	catalogService "github.com/m04kA/SMC-NailStudio/internal/service/catalog"
	dashboardService "github.com/m04kA/SMC-NailStudio/internal/service/dashboard"
	portfolioService "github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
	reservationsService "github.com/m04kA/SMC-NailStudio/internal/service/reservations"
	workingHoursService "github.com/m04kA/SMC-NailStudio/internal/service/workinghours"
	createReservationUC "github.com/m04kA/SMC-NailStudio/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-NailStudio/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-NailStudio/pkg/dbmetrics"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
	"github.com/m04kA/SMC-NailStudio/pkg/metrics"
	"github.com/m04kA/SMC-NailStudio/pkg/txmanager"
)

// SlotCache кэш слотов, общий для use cases и сервисов
type SlotCache interface {
	getAvailableSlotsUC.SlotCache
	Invalidate(ctx context.Context, date time.Time) error
	InvalidateAll(ctx context.Context) error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-NailStudio...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Failed to load salon timezone %q: %v", cfg.Salon.Timezone, err)
	}
	timeProvider := &createReservationUC.RealTimeProvider{Location: location}

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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш слотов
	var cache SlotCache = slotsCache.Noop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Без Redis слоты просто считаются каждый раз
			log.Warn("Redis is unavailable at %s, slot cache works in pass-through mode: %v", cfg.Redis.Addr, err)
		}
		cancel()

		cache = slotsCache.NewRedisCache(redisClient, cfg.Redis.SlotsTTL(), metricsCollector)
		log.Info("Slot cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.SlotsTTL())
	}

	// Хранилище изображений портфолио
	var images portfolioService.ImageStore
	if cfg.Minio.Enabled {
		minioClient, err := imagestore.NewMinioClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
		if err != nil {
			log.Fatal("Failed to create MinIO client: %v", err)
		}

		store := imagestore.NewClient(minioClient, cfg.Minio.Bucket, cfg.Minio.PublicBaseURL, cfg.Minio.MaxUploadBytes(), log)

		ensureCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := store.EnsureBucket(ensureCtx); err != nil {
			log.Error("Failed to ensure bucket %s, uploads may fail: %v", cfg.Minio.Bucket, err)
		}
		cancel()

		images = store
		log.Info("Image store initialized (endpoint=%s, bucket=%s)", cfg.Minio.Endpoint, cfg.Minio.Bucket)
	} else {
		log.Warn("MinIO disabled, portfolio uploads are unavailable")
	}

	// Пароль администратора
	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		passwordHash, err = adminAuthService.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatal("Failed to hash admin password: %v", err)
		}
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	workingHoursRepository := workingHoursRepo.NewRepository(wrappedDB)
	portfolioRepository := portfolioRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(serviceRepository, reservationRepository, cache, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, cache, txMgr, timeProvider, log)
	workingHoursSvc := workingHoursService.NewService(workingHoursRepository, cache, log)
	portfolioSvc := portfolioService.NewService(portfolioRepository, images, log)
	dashboardSvc := dashboardService.NewService(reservationRepository, serviceRepository, timeProvider, log)
	adminAuthSvc := adminAuthService.NewService(passwordHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL(), log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workingHoursRepository,
		reservationRepository,
		serviceRepository,
		cache,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		workingHoursRepository,
		serviceRepository,
		cache,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listAllServices := listServicesHandler.NewAdminHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	updateWorkingDay := updateWorkingDayHandler.NewHandler(workingHoursSvc, log)
	listPortfolio := listPortfolioHandler.NewHandler(portfolioSvc, log)
	createPortfolioItem := createPortfolioItemHandler.NewHandler(portfolioSvc, cfg.Minio.MaxUploadBytes(), log)
	updatePortfolioItem := updatePortfolioItemHandler.NewHandler(portfolioSvc, log)
	deletePortfolioItem := deletePortfolioItemHandler.NewHandler(portfolioSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	adminLogin := adminLoginHandler.NewHandler(adminAuthSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

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
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", listPortfolio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Вход администратора, ограничен по IP. Регистрируется до /admin подроутера
	api.Handle("/admin/auth",
		httprate.LimitByIP(cfg.Admin.LoginRPM, time.Minute)(http.HandlerFunc(adminLogin.Handle)),
	).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Bearer токен администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(adminAuthSvc, log))

	// --- Записи ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Услуги ---
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	admin.HandleFunc("/working-hours/{day}", updateWorkingDay.Handle).Methods(http.MethodPut)

	// --- Портфолио ---
	admin.HandleFunc("/portfolio", createPortfolioItem.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/portfolio/{id}", updatePortfolioItem.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/portfolio/{id}", deletePortfolioItem.Handle).Methods(http.MethodDelete)

	// --- Статистика ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// CORS для фронтенда салона
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler(r),
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
