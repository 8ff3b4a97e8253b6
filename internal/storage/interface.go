package storage

import (
	"context"

	"github.com/mcoot/werewolf-arena/internal/model"
)

// Storage defines the interface for evaluation persistence
type Storage interface {
	// Evaluation operations
	SaveEvaluation(ctx context.Context, evaluation *model.Evaluation) error
	GetEvaluation(ctx context.Context, id model.EvaluationID) (*model.Evaluation, error)
	ListEvaluations(ctx context.Context) ([]*model.Evaluation, error)
	DeleteEvaluation(ctx context.Context, id model.EvaluationID) error
}
