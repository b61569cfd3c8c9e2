package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/app/service"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/client"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/domain/entity"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/infrastructure/configloader"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/infrastructure/restapi"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/logger"
	"github.com/EkaterinaGorbunova/onesource-nft-viewer/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.yml"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}

	// Загрузка конфигурации
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	zapLogger, err := logger.NewZapLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zapLogger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	// slog пишет в zap, port.Logger адаптеры используют глобальный slog
	logger.Init(zapLogger, cfg.Logging.Level)
	logger.Info("NFT viewer is starting", "config", cfgPath)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", "error", err)
	}

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.MustRegisterMetrics()

	requestTimeout := time.Duration(cfg.OneSource.RequestTimeoutMillis) * time.Millisecond
	oneSourceClient := client.NewOneSourceClient(client.ClientOptions{
		Endpoint:   cfg.OneSource.Endpoint,
		Token:      cfg.OneSource.Token,
		Timeout:    requestTimeout,
		RateLimit:  cfg.OneSource.RateLimit,
		BurstLimit: cfg.OneSource.BurstLimit,
	}, zapLogger)
	logger.Info("OneSource client initialized", "endpoint", cfg.OneSource.Endpoint)

	executor := service.NewQueryExecutor(oneSourceClient, logger.NewComponentAdapter("QueryExecutor"), requestTimeout)
	builder := service.NewViewModelBuilder(cfg.Display.IPFSGateway, cfg.Display.DateLayout, nil)

	defaults := entity.PageRequest{
		Contract: cfg.Display.Contract,
		TokenID:  cfg.Display.TokenID,
		Owner:    cfg.Display.Owner,
		First:    cfg.Display.BalancesPageSize,
	}
	viewService := service.NewNFTViewService(
		executor,
		builder,
		logger.NewComponentAdapter("NFTViewService"),
		defaults,
		time.Duration(cfg.Cache.ViewTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
	)
	if cfg.Cache.ViewTTLSeconds > 0 {
		logger.Info("View cache enabled", "ttl_seconds", cfg.Cache.ViewTTLSeconds)
	}

	handler := restapi.NewNFTHandler(viewService, logger.NewComponentAdapter("NFTHandler"))
	router := restapi.SetupRouter(handler, cfg, zapLogger)
	if cfg.Swagger.Enabled {
		logger.Info("Swagger UI enabled", "path", cfg.Swagger.Path+"/index.html")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", "error", err)
		}
	}()

	// Ожидание сигнала завершения (например, Ctrl+C)
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan

	logger.Info("Shutdown signal received, stopping HTTP server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server forced to shutdown", "error", err)
	} else {
		logger.Info("HTTP server stopped")
	}

	zapLogger.Info("NFT viewer stopped", zap.String("config", cfgPath))
}
