package model

import "time"

// EvaluationID uniquely identifies an evaluation run
type EvaluationID string

// EvaluationStatus tracks the lifecycle of an evaluation run
type EvaluationStatus string

const (
	EvaluationRunning  EvaluationStatus = "running"
	EvaluationComplete EvaluationStatus = "complete"
	EvaluationFailed   EvaluationStatus = "failed"
)

// Evaluation is the archived record of one evaluation batch. Per-game state
// is never persisted; only the terminal artifact is.
type Evaluation struct {
	ID       EvaluationID     `json:"id"`
	Status   EvaluationStatus `json:"status"`
	Endpoint string           `json:"endpoint"`
	Role     Role             `json:"role,omitempty"` // set when pinned to one role
	Result   *AggregateReport `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`

	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
}
