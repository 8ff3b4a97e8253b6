package response

import (
	"time"

	"github.com/mcoot/werewolf-arena/internal/model"
)

// Evaluation represents an evaluation in API responses
type Evaluation struct {
	ID          string                 `json:"id"`
	Status      string                 `json:"status"`
	Endpoint    string                 `json:"endpoint"`
	Role        string                 `json:"role,omitempty"`
	Result      *model.AggregateReport `json:"result,omitempty"`
	Error       string                 `json:"error,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	CompletedAt time.Time              `json:"completed_at,omitzero"`
}

// EvaluationFromModel converts a model.Evaluation to a response Evaluation
func EvaluationFromModel(e *model.Evaluation) Evaluation {
	return Evaluation{
		ID:          string(e.ID),
		Status:      string(e.Status),
		Endpoint:    e.Endpoint,
		Role:        string(e.Role),
		Result:      e.Result,
		Error:       e.Error,
		CreatedAt:   e.CreatedAt,
		CompletedAt: e.CompletedAt,
	}
}

// EvaluationSummary is the list-view projection of an evaluation
type EvaluationSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Endpoint  string    `json:"endpoint"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EvaluationSummaryFromModel converts a model.Evaluation to a summary
func EvaluationSummaryFromModel(e *model.Evaluation) EvaluationSummary {
	return EvaluationSummary{
		ID:        string(e.ID),
		Status:    string(e.Status),
		Endpoint:  e.Endpoint,
		Role:      string(e.Role),
		CreatedAt: e.CreatedAt,
	}
}

// EvaluationListResponse is the response for listing evaluations
type EvaluationListResponse struct {
	Evaluations []EvaluationSummary `json:"evaluations"`
}
