package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/werewolf-arena/internal/api/request"
	"github.com/mcoot/werewolf-arena/internal/api/response"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/eval"
	"github.com/mcoot/werewolf-arena/internal/storage"
)

// EvaluationHandler handles evaluation-related endpoints
type EvaluationHandler struct {
	evalService *eval.Service
	storage     storage.Storage
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evalService *eval.Service, store storage.Storage) *EvaluationHandler {
	return &EvaluationHandler{
		evalService: evalService,
		storage:     store,
	}
}

// Evaluate handles POST /api/v1/evaluations
// The batch runs synchronously; the response carries the full result.
func (h *EvaluationHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req request.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.Participants) == 0 {
		WriteError(w, NewInvalidRequestError("participants is required"))
		return
	}

	evaluation, err := h.evalService.Evaluate(r.Context(), eval.Request{
		Participants: req.Participants,
		Config: eval.RequestConfig{
			Role:         req.Config.Role,
			GamesPerRole: req.Config.GamesPerRole,
			TurnsToSpeak: req.Config.TurnsToSpeak,
			Concurrency:  req.Config.Concurrency,
		},
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EvaluationFromModel(evaluation))
}

// Get handles GET /api/v1/evaluations/{id}
func (h *EvaluationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	evaluation, err := h.storage.GetEvaluation(r.Context(), model.EvaluationID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EvaluationFromModel(evaluation))
}

// List handles GET /api/v1/evaluations
func (h *EvaluationHandler) List(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.storage.ListEvaluations(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	summaries := make([]response.EvaluationSummary, 0, len(evaluations))
	for _, e := range evaluations {
		summaries = append(summaries, response.EvaluationSummaryFromModel(e))
	}

	response.JSON(w, http.StatusOK, response.EvaluationListResponse{Evaluations: summaries})
}

// Delete handles DELETE /api/v1/evaluations/{id}
func (h *EvaluationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// Deleting an unknown id is a 404, not a silent no-op
	if _, err := h.storage.GetEvaluation(r.Context(), model.EvaluationID(id)); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.storage.DeleteEvaluation(r.Context(), model.EvaluationID(id)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
