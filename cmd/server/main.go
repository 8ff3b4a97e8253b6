package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/werewolf-arena/internal/api"
	"github.com/mcoot/werewolf-arena/internal/factory"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/services/eval"
	redisstorage "github.com/mcoot/werewolf-arena/internal/storage/redis"
)

func main() {
	// Optional local env file; real deployments set env directly
	_ = godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Configure the simulated-agent LLM
	llmCfg := gateway.DefaultLLMConfig()
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		llmCfg.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		llmCfg.Model = model
	}
	if ollamaURL := os.Getenv("OLLAMA_URL"); ollamaURL != "" {
		llmCfg.OllamaURL = ollamaURL
	}
	cfg.LLMConfig = llmCfg

	// Configure evaluation batch defaults
	evalCfg := eval.DefaultConfig()
	if games := envInt(logger, "GAMES_PER_ROLE"); games > 0 {
		evalCfg.GamesPerRole = games
	}
	if turns := envInt(logger, "TURNS_TO_SPEAK"); turns > 0 {
		evalCfg.TurnsToSpeak = turns
	}
	if concurrency := envInt(logger, "GAME_CONCURRENCY"); concurrency > 0 {
		evalCfg.Concurrency = concurrency
	}
	cfg.EvalConfig = evalCfg

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		EvalService: app.EvalService,
		Storage:     app.Storage,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := envInt(logger, "PORT"); port > 0 {
		serverConfig.Port = port
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func envInt(logger *slog.Logger, key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		logger.Warn("ignoring invalid integer env var",
			slog.String("key", key),
			slog.String("value", val),
		)
		return 0
	}
	return n
}
