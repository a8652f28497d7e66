package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifelink-api/config"
	deliveryHttp "lifelink-api/internal/delivery/http"
	"lifelink-api/internal/delivery/http/handler"
	"lifelink-api/internal/delivery/http/middleware"
	"lifelink-api/internal/infrastructure/cache"
	"lifelink-api/internal/infrastructure/database"
	"lifelink-api/internal/repository"
	"lifelink-api/internal/service"
	"lifelink-api/internal/usecase"
	"lifelink-api/pkg/jwt"
	"lifelink-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Scheduler   *service.Scheduler
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pooled connection
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, scheduler := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Scheduler = scheduler

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server and scheduler
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.Scheduler) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	donorRepo := repository.NewDonorRepository()
	alertRepo := repository.NewAlertRepository()
	acceptanceRepo := repository.NewAlertAcceptanceRepository()
	deviceTokenRepo := repository.NewDeviceTokenRepository()
	bloodCampRepo := repository.NewBloodCampRepository()
	medicalCampRepo := repository.NewMedicalCampRepository()
	eventRepo := repository.NewEventRepository()
	teamMemberRepo := repository.NewTeamMemberRepository()

	// Initialize services
	pushService := service.NewFCMService(cfg.FCM, log)

	// Initialize usecases
	resolver := usecase.NewDonorResolver(db, log, userRepo, donorRepo)
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, donorRepo, jwtService, redisClient)
	donorUsecase := usecase.NewDonorUsecase(db, log, donorRepo, resolver)
	alertUsecase := usecase.NewAlertUsecase(db, log, alertRepo, acceptanceRepo, deviceTokenRepo, resolver, pushService)
	notificationUsecase := usecase.NewNotificationUsecase(db, log, deviceTokenRepo, pushService)
	bloodCampUsecase := usecase.NewBloodCampUsecase(db, log, bloodCampRepo)
	medicalCampUsecase := usecase.NewMedicalCampUsecase(db, log, medicalCampRepo)
	eventUsecase := usecase.NewEventUsecase(db, log, eventRepo)
	teamMemberUsecase := usecase.NewTeamMemberUsecase(db, log, teamMemberRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, donorRepo, alertRepo, bloodCampRepo, eventRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	donorHandler := handler.NewDonorHandler(donorUsecase, customValidator)
	alertHandler := handler.NewAlertHandler(alertUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase, customValidator)
	bloodCampHandler := handler.NewBloodCampHandler(bloodCampUsecase, customValidator)
	medicalCampHandler := handler.NewMedicalCampHandler(medicalCampUsecase, customValidator)
	eventHandler := handler.NewEventHandler(eventUsecase, customValidator)
	teamMemberHandler := handler.NewTeamMemberHandler(teamMemberUsecase, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		donorHandler,
		alertHandler,
		notificationHandler,
		bloodCampHandler,
		medicalCampHandler,
		eventHandler,
		teamMemberHandler,
		dashboardHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Nightly eligibility sweep
	scheduler := service.NewScheduler(log, donorUsecase)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, scheduler
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if err := app.Scheduler.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop background jobs first so no sweep runs against a closing pool
	if app.Scheduler != nil {
		app.Scheduler.Stop()
	}

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
