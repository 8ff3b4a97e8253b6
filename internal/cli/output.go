package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Evaluation:
		o.printEvaluation(v)
	case EvaluationList:
		o.printEvaluationList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Evaluation response type (matches API)
type Evaluation struct {
	ID          string           `json:"id"`
	Status      string           `json:"status"`
	Endpoint    string           `json:"endpoint"`
	Role        string           `json:"role,omitempty"`
	Result      *AggregateReport `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt time.Time        `json:"completed_at,omitzero"`
}

// AggregateReport response type
type AggregateReport struct {
	TotalGames     int                   `json:"total_games"`
	GamesPerRole   int                   `json:"games_per_role"`
	Endpoint       string                `json:"endpoint"`
	ByRole         map[string]RoleReport `json:"by_role"`
	OverallWinRate float64               `json:"overall_win_rate"`
	OverallScore   int                   `json:"overall_score"`
	Summary        string                `json:"summary"`
}

// RoleReport response type
type RoleReport struct {
	GamesPlayed  int     `json:"games_played"`
	GamesFailed  int     `json:"games_failed,omitempty"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	SurvivalRate float64 `json:"survival_rate"`
	AvgRounds    float64 `json:"avg_rounds"`
	AvgScore     float64 `json:"avg_score"`
	TotalScore   int     `json:"total_score"`
}

// EvaluationSummary response type
type EvaluationSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Endpoint  string    `json:"endpoint"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EvaluationList response type
type EvaluationList struct {
	Evaluations []EvaluationSummary `json:"evaluations"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printEvaluation(e Evaluation) {
	fmt.Printf("Evaluation: %s\n", e.ID)
	fmt.Printf("Status: %s\n", e.Status)
	fmt.Printf("Endpoint: %s\n", e.Endpoint)
	if e.Role != "" {
		fmt.Printf("Role: %s\n", e.Role)
	}
	fmt.Printf("Created: %s\n", e.CreatedAt.Format(time.RFC3339))
	if !e.CompletedAt.IsZero() {
		fmt.Printf("Completed: %s\n", e.CompletedAt.Format(time.RFC3339))
	}
	if e.Error != "" {
		fmt.Printf("Error: %s\n", e.Error)
	}
	if e.Result != nil {
		fmt.Println()
		fmt.Println(e.Result.Summary)
	}
}

func (o *Output) printEvaluationList(l EvaluationList) {
	if len(l.Evaluations) == 0 {
		fmt.Println("No evaluations found")
		return
	}
	fmt.Printf("Evaluations (%d):\n", len(l.Evaluations))
	for _, e := range l.Evaluations {
		role := e.Role
		if role == "" {
			role = "all"
		}
		fmt.Printf("  - %s [%s] %s (role: %s, created: %s)\n",
			e.ID, e.Status, e.Endpoint, role, e.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
