package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveEvaluation(ctx context.Context, evaluation *model.Evaluation) error {
	data, err := json.Marshal(evaluation)
	if err != nil {
		return err
	}

	key := evaluationKey(evaluation.ID)
	indexKey := evaluationIndexKey()

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.EvaluationTTL)
	pipe.SAdd(ctx, indexKey, key)
	pipe.Expire(ctx, indexKey, s.cfg.EvaluationTTL) // Keep index TTL in sync
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetEvaluation(ctx context.Context, id model.EvaluationID) (*model.Evaluation, error) {
	data, err := s.client.Get(ctx, evaluationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrEvaluationNotFound
		}
		return nil, err
	}

	var evaluation model.Evaluation
	if err := json.Unmarshal(data, &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (s *Storage) ListEvaluations(ctx context.Context) ([]*model.Evaluation, error) {
	indexKey := evaluationIndexKey()

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Evaluation{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	evaluations := make([]*model.Evaluation, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Evaluation may have expired
		}
		var evaluation model.Evaluation
		if err := json.Unmarshal([]byte(val.(string)), &evaluation); err != nil {
			continue // Skip invalid data
		}
		evaluations = append(evaluations, &evaluation)
	}

	// Newest first
	sort.Slice(evaluations, func(i, j int) bool {
		return evaluations[i].CreatedAt.After(evaluations[j].CreatedAt)
	})

	return evaluations, nil
}

func (s *Storage) DeleteEvaluation(ctx context.Context, id model.EvaluationID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, evaluationKey(id))
	pipe.SRem(ctx, evaluationIndexKey(), evaluationKey(id))
	_, err := pipe.Exec(ctx)
	return err
}
