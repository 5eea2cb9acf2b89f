// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentsmart-service/internal/config"
	"rentsmart-service/internal/db"
	authHandler "rentsmart-service/internal/handlers/auth"
	dataHandler "rentsmart-service/internal/handlers/data"
	reportHandler "rentsmart-service/internal/handlers/report"
	"rentsmart-service/internal/middleware"
	"rentsmart-service/internal/pkg/token"
	"rentsmart-service/internal/repository/redisstore"
	authUsecase "rentsmart-service/internal/service/auth"
	"rentsmart-service/internal/service/dataio"
	reportUsecase "rentsmart-service/internal/service/report"
	sheetsUsecase "rentsmart-service/internal/service/sheets"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	httpd  *http.Server
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- Store -----
	store := redisstore.NewStore(redisClient, logger)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	// ----- Token Manager -----
	tokenManager := token.NewManager(s.cfg.Token)

	// ----- Services -----
	authService, err := authUsecase.NewAuthService(store, tokenManager, s.cfg.SessionTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to build auth service: %w", err)
	}
	sheetsService := sheetsUsecase.NewSheetsService(store, logger,
		sheetsUsecase.WithBaseURL(s.cfg.SheetsBaseURL))
	reportService := reportUsecase.NewReportService(store, logger)
	dataService := dataio.NewDataService(store, sheetsService, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	dataHandlerInst := dataHandler.NewDataHandler(store, dataService, logger)
	reportHandlerInst := reportHandler.NewReportHandler(reportService, sheetsService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		DataHandler:    dataHandlerInst,
		ReportHandler:  reportHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	s.httpd = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	return s.httpd.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener. A server that
// never started is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpd == nil {
		return nil
	}
	return s.httpd.Shutdown(ctx)
}
