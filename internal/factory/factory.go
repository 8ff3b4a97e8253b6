package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/dependencies/random"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/services/eval"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
	"github.com/mcoot/werewolf-arena/internal/storage"
	"github.com/mcoot/werewolf-arena/internal/storage/memory"
	redisstorage "github.com/mcoot/werewolf-arena/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Gateway        gateway.AgentGateway
	ScoringService *scoring.Service
	EvalService    *eval.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// TransportConfig holds agent HTTP transport settings (optional)
	// If zero value, defaults to gateway.DefaultHTTPTransportConfig()
	TransportConfig gateway.HTTPTransportConfig
	// LLMConfig holds simulated-agent LLM settings (optional)
	// If zero value, defaults to gateway.DefaultLLMConfig()
	LLMConfig gateway.LLMConfig
	// EvalConfig holds evaluation batch defaults (optional)
	// If zero value, defaults to eval.DefaultConfig()
	EvalConfig eval.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	transportCfg := cfg.TransportConfig
	if transportCfg.Timeout == 0 {
		transportCfg = gateway.DefaultHTTPTransportConfig()
	}
	transport := gateway.NewHTTPTransport(transportCfg)

	llmCfg := cfg.LLMConfig
	if llmCfg.Provider == "" {
		llmCfg = gateway.DefaultLLMConfig()
	}
	llm, err := gateway.NewLangchainClient(llmCfg)
	if err != nil {
		return nil, err
	}

	evalCfg := cfg.EvalConfig
	if evalCfg.GamesPerRole == 0 {
		evalCfg = eval.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, transport, llm, evalCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	transport gateway.Transport,
	llm gateway.LLMClient,
	evalCfg eval.Config,
	logger *slog.Logger,
) *App {
	gw := gateway.New(transport, llm, logger)
	scoringService := scoring.New()
	evalService := eval.New(gw, scoringService, store, clk, rnd, evalCfg, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Gateway:        gw,
		ScoringService: scoringService,
		EvalService:    evalService,
	}
}
