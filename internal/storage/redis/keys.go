package redis

import (
	"fmt"

	"github.com/mcoot/werewolf-arena/internal/model"
)

// Key prefix for all arena data
const keyPrefix = "wwarena"

// evaluationKey returns the Redis key for an Evaluation
func evaluationKey(id model.EvaluationID) string {
	return fmt.Sprintf("%s:evaluation:%s", keyPrefix, id)
}

// evaluationIndexKey returns the Redis key for the SET of evaluation keys
func evaluationIndexKey() string {
	return fmt.Sprintf("%s:idx:evaluations", keyPrefix)
}
