package eval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/dependencies/random"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/game"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
	"github.com/mcoot/werewolf-arena/internal/storage"
)

// Request is an inbound evaluation request: one external participant
// endpoint plus batch configuration.
type Request struct {
	// Participants maps role name to agent endpoint. Only the first
	// entry is consumed; the remaining slots are simulated.
	Participants map[string]string `json:"participants"`
	Config       RequestConfig     `json:"config"`
}

// RequestConfig tunes the evaluation batch
type RequestConfig struct {
	// Role pins the external participant to a single role. Empty means
	// evaluate every role in turn.
	Role string `json:"role,omitempty"`
	// GamesPerRole is the number of games per evaluated role
	GamesPerRole int `json:"games_per_role,omitempty"`
	// TurnsToSpeak is the number of debate passes per round
	TurnsToSpeak int `json:"turns_to_speak,omitempty"`
	// Concurrency bounds how many games run at once
	Concurrency int `json:"concurrency,omitempty"`
}

// Config holds service-level defaults applied to requests that omit them
type Config struct {
	GamesPerRole int
	TurnsToSpeak int
	Concurrency  int
}

// DefaultConfig returns the default batch parameters
func DefaultConfig() Config {
	return Config{
		GamesPerRole: 5,
		TurnsToSpeak: 1,
		Concurrency:  1,
	}
}

// Service runs evaluation batches: GamesPerRole games for each evaluated
// role, each against a fresh orchestrator and game state, then aggregates
// the external participant's performance.
type Service struct {
	gateway gateway.AgentGateway
	scoring *scoring.Service
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	cfg     Config
	logger  *slog.Logger
}

// New creates a new evaluation Service
func New(
	gw gateway.AgentGateway,
	scoringService *scoring.Service,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Service {
	return &Service{
		gateway: gw,
		scoring: scoringService,
		storage: store,
		clock:   clk,
		random:  rnd,
		cfg:     cfg,
		logger:  logger.With(slog.String("component", "eval")),
	}
}

// Validate rejects malformed requests before any game starts
func (s *Service) Validate(req Request) (string, []model.Role, error) {
	endpoint := ""
	for _, url := range req.Participants {
		endpoint = url
		break
	}
	if strings.TrimSpace(endpoint) == "" {
		return "", nil, model.ErrNoParticipant
	}

	roles := model.AllRoles
	if req.Config.Role != "" {
		role, err := model.ParseRole(req.Config.Role)
		if err != nil {
			return "", nil, err
		}
		roles = []model.Role{role}
	}

	if req.Config.GamesPerRole < 0 {
		return "", nil, model.ErrInvalidGameCount
	}
	if req.Config.TurnsToSpeak < 0 {
		return "", nil, model.ErrInvalidTurnCount
	}

	return endpoint, roles, nil
}

// Evaluate runs the full batch and archives the result. Games are
// independent, so they may run concurrently up to the configured bound;
// each game's internal phase sequence stays strictly sequential.
func (s *Service) Evaluate(ctx context.Context, req Request) (*model.Evaluation, error) {
	endpoint, roles, err := s.Validate(req)
	if err != nil {
		return nil, err
	}

	gamesPerRole := req.Config.GamesPerRole
	if gamesPerRole == 0 {
		gamesPerRole = s.cfg.GamesPerRole
	}
	turnsToSpeak := req.Config.TurnsToSpeak
	if turnsToSpeak == 0 {
		turnsToSpeak = s.cfg.TurnsToSpeak
	}
	concurrency := req.Config.Concurrency
	if concurrency == 0 {
		concurrency = s.cfg.Concurrency
	}

	evaluation := &model.Evaluation{
		ID:        model.EvaluationID(uuid.NewString()),
		Status:    model.EvaluationRunning,
		Endpoint:  endpoint,
		CreatedAt: s.clock.Now(),
	}
	if len(roles) == 1 {
		evaluation.Role = roles[0]
	}

	totalGames := gamesPerRole * len(roles)
	s.logger.Info("evaluation starting",
		slog.String("evaluation_id", string(evaluation.ID)),
		slog.Int("total_games", totalGames),
		slog.Int("games_per_role", gamesPerRole),
	)

	records := make([]model.GameRecord, 0, totalGames)
	var mu sync.Mutex

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(concurrency)

	for _, role := range roles {
		for n := 1; n <= gamesPerRole; n++ {
			role, n := role, n
			grp.Go(func() error {
				record := s.runGame(grpCtx, endpoint, role, n, turnsToSpeak)
				mu.Lock()
				records = append(records, record)
				mu.Unlock()
				// A failed game is recorded, not fatal to the batch
				return nil
			})
		}
	}
	_ = grp.Wait()

	report := s.aggregate(endpoint, gamesPerRole, records)
	evaluation.Result = report
	evaluation.Status = model.EvaluationComplete
	evaluation.CompletedAt = s.clock.Now()

	if err := s.storage.SaveEvaluation(ctx, evaluation); err != nil {
		s.logger.Error("failed to archive evaluation",
			slog.String("evaluation_id", string(evaluation.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	s.logger.Info("evaluation complete",
		slog.String("evaluation_id", string(evaluation.ID)),
		slog.Float64("overall_win_rate", report.OverallWinRate),
	)
	return evaluation, nil
}

// runGame plays one full game with a fresh state and folds the outcome
// into a record from the external participant's perspective
func (s *Service) runGame(ctx context.Context, endpoint string, role model.Role, gameNum, turnsToSpeak int) model.GameRecord {
	record := model.GameRecord{Role: role, GameNum: gameNum}

	state := game.Setup(endpoint, role, turnsToSpeak, s.random)

	// The external participant's id, captured before it can be eliminated
	var participantID model.ParticipantID
	for _, p := range state.Participants[1] {
		if !p.Simulated {
			participantID = p.ID
			break
		}
	}

	runner := game.NewRunner(state, s.gateway, s.scoring, s.clock, s.logger)
	analytics, err := runner.RunGame(ctx)
	if err != nil {
		s.logger.Error("game aborted",
			slog.String("game_id", string(state.ID)),
			slog.String("role", string(role)),
			slog.Int("game_num", gameNum),
			slog.String("error", err.Error()),
		)
		record.Error = err.Error()
		return record
	}

	record.Analytics = analytics
	record.Score = analytics.Scores[participantID]
	record.Survived = state.IsAlive(participantID)
	if role == model.RoleWerewolf {
		record.Won = analytics.Winner == model.WinnerWerewolf
	} else {
		record.Won = analytics.Winner == model.WinnerVillagers
	}
	return record
}

func (s *Service) aggregate(endpoint string, gamesPerRole int, records []model.GameRecord) *model.AggregateReport {
	report := &model.AggregateReport{
		TotalGames:   len(records),
		GamesPerRole: gamesPerRole,
		Endpoint:     endpoint,
		ByRole:       make(map[model.Role]model.RoleReport),
	}

	byRole := make(map[model.Role][]model.GameRecord)
	for _, r := range records {
		byRole[r.Role] = append(byRole[r.Role], r)
	}

	totalWins := 0
	completedGames := 0
	for role, games := range byRole {
		rr := model.RoleReport{Games: games}

		survived := 0
		totalRounds := 0
		for _, g := range games {
			if g.Error != "" {
				rr.GamesFailed++
				continue
			}
			rr.GamesPlayed++
			if g.Won {
				rr.Wins++
			} else {
				rr.Losses++
			}
			if g.Survived {
				survived++
			}
			totalRounds += g.Analytics.RoundsPlayed
			rr.TotalScore += g.Score
		}

		if rr.GamesPlayed > 0 {
			rr.WinRate = float64(rr.Wins) / float64(rr.GamesPlayed)
			rr.SurvivalRate = float64(survived) / float64(rr.GamesPlayed)
			rr.AvgRounds = float64(totalRounds) / float64(rr.GamesPlayed)
			rr.AvgScore = float64(rr.TotalScore) / float64(rr.GamesPlayed)
		}

		report.ByRole[role] = rr
		totalWins += rr.Wins
		completedGames += rr.GamesPlayed
		report.OverallScore += rr.TotalScore
	}

	if completedGames > 0 {
		report.OverallWinRate = float64(totalWins) / float64(completedGames)
	}

	report.Summary = renderAggregateSummary(report)
	return report
}

func renderAggregateSummary(report *model.AggregateReport) string {
	divider := strings.Repeat("=", 60)
	lines := []string{
		divider,
		"WEREWOLF ARENA - EVALUATION COMPLETE",
		divider,
		fmt.Sprintf("Total Games Played: %d", report.TotalGames),
		fmt.Sprintf("Games Per Role: %d", report.GamesPerRole),
		fmt.Sprintf("Overall Win Rate: %.1f%%", report.OverallWinRate*100),
		fmt.Sprintf("Overall Total Score: %d", report.OverallScore),
		"",
		strings.Repeat("-", 60),
		"PERFORMANCE BY ROLE",
		strings.Repeat("-", 60),
	}

	// Stable role order for the report
	for _, role := range model.AllRoles {
		rr, ok := report.ByRole[role]
		if !ok {
			continue
		}
		lines = append(lines,
			"",
			fmt.Sprintf("  %s:", strings.ToUpper(string(role))),
			fmt.Sprintf("    Games Played: %d", rr.GamesPlayed),
			fmt.Sprintf("    Wins: %d | Losses: %d", rr.Wins, rr.Losses),
			fmt.Sprintf("    Win Rate: %.1f%%", rr.WinRate*100),
			fmt.Sprintf("    Survival Rate: %.1f%%", rr.SurvivalRate*100),
			fmt.Sprintf("    Avg Rounds per Game: %.1f", rr.AvgRounds),
			fmt.Sprintf("    Avg Score: %.1f", rr.AvgScore),
			fmt.Sprintf("    Total Score: %d", rr.TotalScore),
		)
		if rr.GamesFailed > 0 {
			lines = append(lines, fmt.Sprintf("    Failed Games: %d", rr.GamesFailed))
		}
	}

	lines = append(lines, "", divider)
	return strings.Join(lines, "\n")
}
