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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/m04kA/college-appointments/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/m04kA/college-appointments/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/m04kA/college-appointments/internal/api/handlers/get_appointment"
	getProfessorScheduleHandler "github.com/m04kA/college-appointments/internal/api/handlers/get_professor_schedule"
	getWorkingHoursHandler "github.com/m04kA/college-appointments/internal/api/handlers/get_working_hours"
	healthHandler "github.com/m04kA/college-appointments/internal/api/handlers/health"
	listAppointmentsHandler "github.com/m04kA/college-appointments/internal/api/handlers/list_appointments"
	listProfessorsHandler "github.com/m04kA/college-appointments/internal/api/handlers/list_professors"
	updateAppointmentStatusHandler "github.com/m04kA/college-appointments/internal/api/handlers/update_appointment_status"
	updateWorkingHoursHandler "github.com/m04kA/college-appointments/internal/api/handlers/update_working_hours"
	"github.com/m04kA/college-appointments/internal/api/middleware"
	"github.com/m04kA/college-appointments/internal/config"
	"github.com/m04kA/college-appointments/internal/domain"
	professorCache "github.com/m04kA/college-appointments/internal/infra/cache/professor"
	"github.com/m04kA/college-appointments/internal/infra/identity"
	appointmentRepo "github.com/m04kA/college-appointments/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/college-appointments/internal/infra/storage/user"
	identityServiceClient "github.com/m04kA/college-appointments/internal/integrations/identityservice"
	appointmentsService "github.com/m04kA/college-appointments/internal/service/appointments"
	professorsService "github.com/m04kA/college-appointments/internal/service/professors"
	bookAppointmentUC "github.com/m04kA/college-appointments/internal/usecase/book_appointment"
	getProfessorScheduleUC "github.com/m04kA/college-appointments/internal/usecase/get_professor_schedule"
	"github.com/m04kA/college-appointments/migrations"
	"github.com/m04kA/college-appointments/pkg/dbmetrics"
	"github.com/m04kA/college-appointments/pkg/logger"
	"github.com/m04kA/college-appointments/pkg/metrics"
	"github.com/m04kA/college-appointments/pkg/txmanager"
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

	log.Info("Starting college-appointments...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	timeProvider := &bookAppointmentUC.RealTimeProvider{Location: location}

	// Метрики (если включены). Интерфейсы остаются nil, если метрики выключены
	var (
		metricsCollector *metrics.Metrics
		dbObserver       dbmetrics.Observer
		bookingMetrics   bookAppointmentUC.MetricsRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbObserver = metricsCollector
		bookingMetrics = metricsCollector
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

	// Миграции
	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Up(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, dbObserver, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithMaxRetries(cfg.Booking.MaxTxRetries),
		txmanager.WithBaseDelay(cfg.Booking.TxRetryBaseDelay()),
	)

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Справочник преподавателей: через redis, если он включен
	var (
		directory   bookAppointmentUC.ProfessorDirectory = userRepository
		invalidator professorsService.CacheInvalidator
	)
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis ping failed, cache will fall back to database: %v", err)
		}

		cache := professorCache.NewCache(redisClient, userRepository, time.Duration(cfg.Redis.TTL)*time.Second, log)
		directory = cache
		invalidator = cache
		log.Info("Professor cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Проверка токенов
	var resolver middleware.ActorResolver
	switch cfg.Auth.Provider {
	case config.AuthProviderRemote:
		resolver = identityServiceClient.NewClient(
			cfg.IdentityService.URL,
			time.Duration(cfg.IdentityService.Timeout)*time.Second,
			log,
		)
		log.Info("Identity resolved remotely (url=%s, timeout=%ds)", cfg.IdentityService.URL, cfg.IdentityService.Timeout)
	default:
		resolver = identity.NewVerifier(
			cfg.Auth.Secret,
			identity.WithIssuer(cfg.Auth.Issuer),
			identity.WithAudience(cfg.Auth.Audience),
			identity.WithLeeway(time.Duration(cfg.Auth.Leeway)*time.Second),
		)
		log.Info("Identity resolved from JWT")
	}

	// Сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	professorSvc := professorsService.NewService(userRepository, directory, invalidator, log)

	// Use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		directory,
		txManager,
		bookingMetrics,
		timeProvider,
		log,
	)
	getProfessorScheduleUseCase := getProfessorScheduleUC.NewUseCase(
		appointmentRepository,
		directory,
		txManager,
		timeProvider,
		log,
	)

	// Handlers
	health := healthHandler.NewHandler(db, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, location, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	listProfessors := listProfessorsHandler.NewHandler(professorSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(professorSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(professorSvc, log)
	getProfessorSchedule := getProfessorScheduleHandler.NewHandler(getProfessorScheduleUseCase, location, log)

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(resolver, log))

	studentOnly := middleware.RequireRole(domain.RoleStudent)
	professorOnly := middleware.RequireRole(domain.RoleProfessor)

	// --- Преподаватели ---
	api.HandleFunc("/professors", listProfessors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professors/{professorId}/schedule", getProfessorSchedule.Handle).Methods(http.MethodGet)
	api.Handle("/professors/{professorId}/working-hours",
		professorOnly(http.HandlerFunc(updateWorkingHours.Handle))).Methods(http.MethodPut)

	// --- Записи ---
	api.Handle("/appointments", studentOnly(http.HandlerFunc(bookAppointment.Handle))).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.Server.CORSOrigins)(r),
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
