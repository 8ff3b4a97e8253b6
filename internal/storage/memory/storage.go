package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	evaluations map[model.EvaluationID]*model.Evaluation
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		evaluations: make(map[model.EvaluationID]*model.Evaluation),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveEvaluation(ctx context.Context, evaluation *model.Evaluation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[evaluation.ID] = evaluation
	return nil
}

func (s *Storage) GetEvaluation(ctx context.Context, id model.EvaluationID) (*model.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	evaluation, ok := s.evaluations[id]
	if !ok {
		return nil, model.ErrEvaluationNotFound
	}
	return evaluation, nil
}

func (s *Storage) ListEvaluations(ctx context.Context) ([]*model.Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	evaluations := make([]*model.Evaluation, 0, len(s.evaluations))
	for _, e := range s.evaluations {
		evaluations = append(evaluations, e)
	}
	// Newest first
	sort.Slice(evaluations, func(i, j int) bool {
		return evaluations[i].CreatedAt.After(evaluations[j].CreatedAt)
	})
	return evaluations, nil
}

func (s *Storage) DeleteEvaluation(ctx context.Context, id model.EvaluationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.evaluations, id)
	return nil
}
