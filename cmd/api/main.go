package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/config"
	"github.com/yourusername/eduquiz-api/internal/handler"
	"github.com/yourusername/eduquiz-api/internal/middleware"
	pgRepo "github.com/yourusername/eduquiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/eduquiz-api/internal/repository/redis"
	"github.com/yourusername/eduquiz-api/internal/service"
	"github.com/yourusername/eduquiz-api/pkg/auth"
	"github.com/yourusername/eduquiz-api/pkg/database"
	applogger "github.com/yourusername/eduquiz-api/pkg/logger"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)

	logger, err := applogger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded", zap.String("path", configPath), zap.String("mode", gin.Mode()))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Info("Server exited properly")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// PostgreSQL и миграции
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), gin.Mode() == gin.DebugMode)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	if err := database.MigrateDB(db, cfg.Database.MigrationsPath, logger); err != nil {
		return err
	}

	// Redis: время начала попыток и лимиты входа
	redisClient, err := database.NewUniversalRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	logger.Info("Successfully connected to Redis", zap.String("mode", cfg.Redis.Mode))

	// Репозитории
	userRepo := pgRepo.NewUserRepo(db)
	activityRepo := pgRepo.NewActivityRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	transactor := pgRepo.NewTransactor(db)

	attemptClock, err := redisRepo.NewAttemptClockRepo(redisClient)
	if err != nil {
		return err
	}

	// Сессии и почта
	sessions, err := auth.NewSessionService(cfg.Auth.SecretKey, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	if err != nil {
		return err
	}

	var mailer service.EmailService = service.NewNoopEmailService(logger)
	if cfg.Mail.ResendAPIKey != "" {
		resendMailer, err := service.NewResendEmailService(cfg.Mail.ResendAPIKey, cfg.Mail.From)
		if err != nil {
			return err
		}
		mailer = resendMailer
	}

	// Сервисы
	authService, err := service.NewAuthService(userRepo, sessions, mailer, logger)
	if err != nil {
		return err
	}
	activityService := service.NewActivityService(activityRepo, questionRepo, logger)
	attemptService := service.NewAttemptService(activityRepo, questionRepo, attemptClock, transactor, service.AttemptConfig{
		OverwritePrevious: cfg.Attempt.ResubmissionPolicy == config.ResubmissionOverwrite,
		StartTTL:          time.Duration(cfg.Attempt.StartTTLHours) * time.Hour,
	}, logger)
	studentService := service.NewStudentService(activityRepo, resultRepo, logger)
	teacherService := service.NewTeacherService(userRepo, activityRepo, resultRepo, logger)
	adminService := service.NewAdminService(userRepo, activityRepo, transactor, logger)

	// В production не доверяем заголовкам прокси, локально доверяем loopback
	var trustedProxies []string
	if gin.Mode() != gin.ReleaseMode {
		trustedProxies = []string{"127.0.0.1", "::1"}
	}

	router := handler.NewRouter(handler.RouterDeps{
		Auth: handler.NewAuthHandler(authService, handler.SessionCookie{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.SecureCookie,
			TTL:    sessions.TTL(),
		}, logger),
		Student: handler.NewStudentHandler(studentService, attemptService, logger),
		Teacher: handler.NewTeacherHandler(activityService, teacherService, logger),
		Admin:   handler.NewAdminHandler(adminService, logger),

		AuthMiddleware: middleware.NewAuthMiddleware(sessions, userRepo, cfg.Auth.CookieName, logger),
		RateLimiter:    middleware.NewRateLimiter(redisClient, logger),
		AuthRateLimit:  middleware.AuthRateLimitConfig(cfg.RateLimit),
		Metrics:        middleware.NewMetrics(),

		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxBodyBytes:   cfg.Upload.MaxContentLength,
		TrustedProxies: trustedProxies,
		HealthCheck: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("postgres: %w", err)
			}
			if err := redisClient.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
			return nil
		},
		Logger: logger,
	})

	// HTTP сервер с тайм-аутами против медленных клиентов
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case sig := <-quit:
		logger.Info("Shutting down server...", zap.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
