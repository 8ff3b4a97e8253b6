package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolf-arena/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.EvaluationTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) evaluation(id model.EvaluationID, createdAt time.Time) *model.Evaluation {
	return &model.Evaluation{
		ID:        id,
		Status:    model.EvaluationComplete,
		Endpoint:  "http://agent:9000",
		CreatedAt: createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetEvaluation() {
	evaluation := s.evaluation("eval-1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	evaluation.Result = &model.AggregateReport{
		TotalGames:   15,
		GamesPerRole: 5,
		ByRole: map[model.Role]model.RoleReport{
			model.RoleVillager: {GamesPlayed: 5, Wins: 3},
		},
	}

	err := s.storage.SaveEvaluation(s.ctx, evaluation)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetEvaluation(s.ctx, "eval-1")
	s.Require().NoError(err)
	s.Equal(evaluation.ID, retrieved.ID)
	s.Equal(15, retrieved.Result.TotalGames)
	s.Equal(3, retrieved.Result.ByRole[model.RoleVillager].Wins)
}

func (s *StorageSuite) TestGetEvaluationNotFound() {
	_, err := s.storage.GetEvaluation(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrEvaluationNotFound)
}

func (s *StorageSuite) TestEvaluationExpires() {
	evaluation := s.evaluation("eval-1", time.Now())
	s.Require().NoError(s.storage.SaveEvaluation(s.ctx, evaluation))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetEvaluation(s.ctx, "eval-1")
	s.ErrorIs(err, model.ErrEvaluationNotFound)
}

func (s *StorageSuite) TestListEvaluationsNewestFirst() {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveEvaluation(s.ctx, s.evaluation("eval-old", base)))
	s.Require().NoError(s.storage.SaveEvaluation(s.ctx, s.evaluation("eval-new", base.Add(time.Hour))))

	evaluations, err := s.storage.ListEvaluations(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(evaluations, 2)
	s.Equal(model.EvaluationID("eval-new"), evaluations[0].ID)
	s.Equal(model.EvaluationID("eval-old"), evaluations[1].ID)
}

func (s *StorageSuite) TestListSkipsExpiredEntries() {
	s.Require().NoError(s.storage.SaveEvaluation(s.ctx, s.evaluation("eval-1", time.Now())))

	// The value expires but the index entry may briefly outlive it
	s.mini.FastForward(2 * time.Hour)

	evaluations, err := s.storage.ListEvaluations(s.ctx)
	s.Require().NoError(err)
	s.Empty(evaluations)
}

func (s *StorageSuite) TestDeleteEvaluation() {
	s.Require().NoError(s.storage.SaveEvaluation(s.ctx, s.evaluation("eval-1", time.Now())))

	err := s.storage.DeleteEvaluation(s.ctx, "eval-1")
	s.Require().NoError(err)

	_, err = s.storage.GetEvaluation(s.ctx, "eval-1")
	s.ErrorIs(err, model.ErrEvaluationNotFound)

	evaluations, err := s.storage.ListEvaluations(s.ctx)
	s.Require().NoError(err)
	s.Empty(evaluations)
}
