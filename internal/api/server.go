package api

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flowmeta/eventlog-service/internal/api/handlers"
	"github.com/flowmeta/eventlog-service/internal/api/middleware"
	"github.com/flowmeta/eventlog-service/internal/auth"
	"github.com/flowmeta/eventlog-service/internal/eventlogs"
	"github.com/flowmeta/eventlog-service/internal/logging"
	"github.com/flowmeta/eventlog-service/internal/storage"
	"github.com/flowmeta/eventlog-service/pkg/clock"
	"github.com/flowmeta/eventlog-service/pkg/config"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server orchestrates HTTP routing and dependencies for the API service.
type Server struct {
	config config.App
	logger logging.Logger
	router *gin.Engine
	db     *sql.DB

	eventLogService *eventlogs.Service
}

// NewServer wires the API dependencies together.
func NewServer() *Server {
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db := connectDatabase(cfg, logger)

	server := &Server{
		config: cfg,
		logger: logger,
		db:     db,
	}

	server.setupRouter()
	return server
}

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter() {
	router := gin.New()

	// Get underlying zap logger for gin-contrib/zap middleware and the
	// query service.
	zapLogger := s.getZapLogger()
	s.eventLogService = eventlogs.NewService(
		storage.NewMySQLClient(s.db),
		zapLogger,
		s.config.DefaultPageLimit,
		s.config.MaxPageLimit,
	)

	// Global middleware (order matters!)
	// 1. Recovery - must be first to catch panics from other middleware
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))

	// 2. Request ID - inject unique ID for tracing
	router.Use(middleware.RequestID())

	// 3. Logging - log all requests with structured fields
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))

	// 4. CORS - handle cross-origin requests
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health endpoint (no /api/v1 prefix, no auth)
	router.GET("/health", handlers.NewHealthHandler(s.logger, clock.RealClock{}).Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes: authorization runs before any handler touches the
	// database, so a denied request never costs a query.
	reviewer := auth.NewStaticKeyReviewer(s.config.APIReadKeys)
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequiresAccess(reviewer, auth.ResourceAuditLog, auth.VerbGet, s.logger))
	{
		eventLogHandler := handlers.NewEventLogHandler(s.eventLogService, s.logger)
		eventLogsGroup := v1.Group("/eventLogs")
		{
			eventLogsGroup.GET("", eventLogHandler.ListEventLogs)
			eventLogsGroup.GET("/:event_log_id", eventLogHandler.GetEventLog)
		}
	}

	s.router = router
}

// getZapLogger extracts the underlying *zap.Logger for the gin-contrib/zap
// middleware and the query service.
func (s *Server) getZapLogger() *zap.Logger {
	var zapLogger *zap.Logger
	if s.config.Environment == "production" {
		zapLogger, _ = zap.NewProduction()
	} else {
		zapLogger, _ = zap.NewDevelopment()
	}
	return zapLogger
}

// Serve starts the HTTP server with graceful shutdown support.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("starting API server",
			zap.String("address", addr),
			zap.String("environment", s.config.Environment),
			zap.String("log_level", s.config.LogLevel),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-quit
	s.logger.Info("shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("failed to close database connection", zap.Error(err))
		}
	}

	// Flush logger before exit
	if err := s.logger.Sync(); err != nil {
		// Ignore sync errors on stdout/stderr
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			return err
		}
	}

	s.logger.Info("server stopped")
	return nil
}

func connectDatabase(cfg config.App, logger logging.Logger) *sql.DB {
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("mysql", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database connection", zap.Error(err))
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(60 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	return db
}
