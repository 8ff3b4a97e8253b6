package model

import "errors"

// Common errors used across the application
var (
	// Request validation errors
	ErrNoParticipant    = errors.New("no participant endpoint provided")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidGameCount = errors.New("games per role must be at least 1")
	ErrInvalidTurnCount = errors.New("turns to speak must be at least 1")

	// Gateway errors
	ErrEmptyPrompt = errors.New("attempted to send an empty prompt")

	// Game errors
	ErrWinnerAlreadySet     = errors.New("winner has already been declared")
	ErrWinnerNotSet         = errors.New("no winner has been declared")
	ErrNoActiveParticipants = errors.New("no active participants remain")

	// Evaluation errors
	ErrEvaluationNotFound = errors.New("evaluation not found")
)
