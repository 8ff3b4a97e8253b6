package request

// EvaluateConfig holds optional batch tuning in an evaluation request
type EvaluateConfig struct {
	Role         string `json:"role,omitempty"`
	GamesPerRole int    `json:"games_per_role,omitempty"`
	TurnsToSpeak int    `json:"turns_to_speak,omitempty"`
	Concurrency  int    `json:"concurrency,omitempty"`
}

// EvaluateRequest is the request body for starting an evaluation
type EvaluateRequest struct {
	Participants map[string]string `json:"participants"`
	Config       EvaluateConfig    `json:"config"`
}
