package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-management-api/config"
	deliveryHttp "clinic-management-api/internal/delivery/http"
	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/infrastructure/cache"
	"clinic-management-api/internal/infrastructure/sheet"
	"clinic-management-api/internal/state"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/jwt"
	"clinic-management-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Mirror      *state.Mirror
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized. The
// initial dataset fetch happens here: if it fails, the application never
// reaches a usable state, so the error is returned and main exits.
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

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize logger instance and remote store client
	log := logrus.StandardLogger()
	store := sheet.NewClient(cfg.Sheet, log)

	// Fetch the full dataset into the mirror
	mirror := state.NewMirror()
	datasetUsecase := usecase.NewDatasetUsecase(mirror, log, store)

	loadCtx, cancel := context.WithTimeout(context.Background(), cfg.Sheet.Timeout)
	defer cancel()
	if err := datasetUsecase.Load(loadCtx); err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	app.Mirror = mirror
	logrus.Info("Dataset loaded successfully")

	// Initialize all layers
	server := initializeServer(cfg, mirror, store, datasetUsecase, redisClient, log)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	mirror *state.Mirror,
	store repository.SheetStore,
	datasetUsecase usecase.DatasetUsecase,
	redisClient *redis.Client,
	log *logrus.Logger,
) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(mirror, log, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(mirror, log, store)
	visitUsecase := usecase.NewVisitUsecase(mirror, log, store)
	diagnosisUsecase := usecase.NewDiagnosisUsecase(mirror, log, store)
	userUsecase := usecase.NewUserUsecase(mirror, log, store)
	clinicUsecase := usecase.NewClinicUsecase(mirror, log)
	reportUsecase := usecase.NewReportUsecase(mirror, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase)
	datasetHandler := handler.NewDatasetHandler(datasetUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler, patientHandler, visitHandler, diagnosisHandler,
		userHandler, clinicHandler, reportHandler, datasetHandler,
		authMiddleware, corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
