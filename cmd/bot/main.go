package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	conciergebot "github.com/escapecenter/conciergebot"
	"github.com/escapecenter/conciergebot/internal/config"
	"github.com/escapecenter/conciergebot/internal/handler"
	"github.com/escapecenter/conciergebot/internal/repository"
	"github.com/escapecenter/conciergebot/internal/router"
	"github.com/escapecenter/conciergebot/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(conciergebot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to the durable key-value store
	kv, err := repository.NewRedisKV(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	// Initialize collaborators
	knowledgeRepo := repository.NewKnowledgeRepository(pool)
	chatLog := repository.NewChatLogRepository(pool)

	// Initialize the session and context engine
	sessions := service.NewSessionStore(kv, cfg.LocalCacheTTL, cfg.DedupTTL, cfg.SessionTTL)
	selector := service.NewContextSelector(cfg.Topics, config.GeneralKeywords, cfg.DefaultPartition, sessions)
	knowledge := service.NewKnowledgeCache(knowledgeRepo, cfg.KnowledgeTTL)
	faq := service.NewFAQIndex(knowledgeRepo, cfg.FAQPartition, cfg.FAQThreshold)
	estimator := service.NewTokenEstimator()
	provider := service.NewOpenAIProvider(cfg.OpenAIKey)

	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		Cfg:       cfg,
		Sessions:  sessions,
		Selector:  selector,
		Knowledge: knowledge,
		FAQ:       faq,
		Counter:   estimator,
		Provider:  provider,
		ChatLog:   chatLog,
		Tiers:     config.ModelTiers,
	})

	// Initialize handler and server
	h := handler.New(handler.Deps{
		Cfg:          cfg,
		Orchestrator: orchestrator,
	})

	srv := server.Default(
		server.WithHostPorts(fmt.Sprintf(":%d", cfg.Port)),
	)
	router.Setup(srv, h)

	slog.Info("starting webhook server", "port", cfg.Port)
	go func() {
		if err := srv.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("bot stopped gracefully")
}
