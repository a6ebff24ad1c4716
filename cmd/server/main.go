package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xaenox/legal-assistant/internal/advisor"
	"github.com/xaenox/legal-assistant/internal/notifier"
	"github.com/xaenox/legal-assistant/internal/server"
	"github.com/xaenox/legal-assistant/internal/storage"
	"github.com/xaenox/legal-assistant/pkg/config"
	applog "github.com/xaenox/legal-assistant/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", *configPath, err)
	}

	// Initialize logger
	logger, err := applog.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			URL:      cfg.Database.URL,
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		}
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, err = storage.NewPostgresStorage(connectCtx, dbConfig, logger)
		cancel()
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize advisor
	var adv advisor.Advisor
	if cfg.OpenAI.Configured() {
		logger.Info("OpenAI key configured, answering with the model", zap.String("model", cfg.OpenAI.Model))
		adv = advisor.NewGPTAdvisor(advisor.GPTConfig{
			APIKey:    cfg.OpenAI.APIKey,
			BaseURL:   cfg.OpenAI.BaseURL,
			Model:     cfg.OpenAI.Model,
			MaxTokens: cfg.OpenAI.MaxTokens,
		}, logger)
	} else {
		logger.Info("OpenAI key not configured, answering with demo responses")
		adv = advisor.NewKeywordAdvisor(cfg.Advisor.DemoDelay)
	}

	// Initialize notifier
	var n notifier.Notifier = notifier.NopNotifier{}
	if cfg.Telegram.Enabled() {
		tg, err := notifier.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID, logger)
		if err != nil {
			logger.Error("Telegram notifications disabled", zap.Error(err))
		} else {
			n = tg
		}
	}

	srv := server.New(server.Config{
		LiveMode:        cfg.OpenAI.Configured(),
		Model:           cfg.OpenAI.Model,
		RateLimitPerMin: cfg.Server.RateLimitPerMin,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		TrustedProxies:  cfg.Server.TrustedProxies,
	}, store, adv, n, logger)

	httpServer := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Server is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
