package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/werewolf-arena/internal/api/apierr"
	"github.com/mcoot/werewolf-arena/internal/api/handler"
	"github.com/mcoot/werewolf-arena/internal/middleware"
	"github.com/mcoot/werewolf-arena/internal/services/eval"
	"github.com/mcoot/werewolf-arena/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	EvalService *eval.Service
	Storage     storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	evaluationHandler := handler.NewEvaluationHandler(cfg.EvalService, cfg.Storage)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, apiPanicHandler)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Evaluation routes
	api.HandleFunc("/evaluations", evaluationHandler.Evaluate).Methods(http.MethodPost)
	api.HandleFunc("/evaluations", evaluationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/evaluations/{id}", evaluationHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/evaluations/{id}", evaluationHandler.Delete).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
