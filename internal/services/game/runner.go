package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/phase"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
)

// Runner owns one game's state and its phase controllers, and drives the
// round loop NIGHT -> BIDDING -> DEBATE -> VOTING -> ROUND_END until a
// terminal condition. Phases run strictly sequentially; nothing else
// mutates the state while a game is in flight.
type Runner struct {
	state *model.GameState
	cur   model.Phase

	night    *phase.Night
	bidding  *phase.Bidding
	debate   *phase.Debate
	voting   *phase.Voting
	roundEnd *phase.RoundEnd
	gameEnd  *phase.GameEnd

	logger *slog.Logger
}

// NewRunner creates a Runner over a freshly set-up state
func NewRunner(
	state *model.GameState,
	gw gateway.AgentGateway,
	scoringService *scoring.Service,
	clk clock.Clock,
	logger *slog.Logger,
) *Runner {
	logger = logger.With(slog.String("game_id", string(state.ID)))
	return &Runner{
		state:    state,
		cur:      model.PhaseNight,
		night:    phase.NewNight(gw, clk, logger),
		bidding:  phase.NewBidding(gw, clk, logger),
		debate:   phase.NewDebate(gw, clk, logger),
		voting:   phase.NewVoting(gw, clk, logger),
		roundEnd: phase.NewRoundEnd(clk, logger),
		gameEnd:  phase.NewGameEnd(scoringService, logger),
		logger:   logger,
	}
}

// State exposes the game state for inspection (tests, analytics callers)
func (r *Runner) State() *model.GameState {
	return r.state
}

// CurrentPhase returns the phase the runner is in
func (r *Runner) CurrentPhase() model.Phase {
	return r.cur
}

// RunNight executes the night phase
func (r *Runner) RunNight(ctx context.Context) error {
	r.cur = model.PhaseNight
	return r.night.Run(ctx, r.state)
}

// RunBidding executes the bidding phase
func (r *Runner) RunBidding(ctx context.Context) error {
	r.cur = model.PhaseBidding
	return r.bidding.Run(ctx, r.state)
}

// RunDebate executes the debate phase
func (r *Runner) RunDebate(ctx context.Context) error {
	r.cur = model.PhaseDebate
	return r.debate.Run(ctx, r.state)
}

// RunVoting executes the voting phase
func (r *Runner) RunVoting(ctx context.Context) error {
	r.cur = model.PhaseVoting
	return r.voting.Run(ctx, r.state)
}

// RunRoundEnd evaluates win conditions and sets the next phase
func (r *Runner) RunRoundEnd() error {
	next, err := r.roundEnd.Run(r.state)
	if err != nil {
		return err
	}
	r.cur = next
	return nil
}

// RunGameEnd computes the terminal analytics
func (r *Runner) RunGameEnd() (*model.GameAnalytics, error) {
	return r.gameEnd.Run(r.state)
}

// RunGame drives full rounds until the game ends and returns the
// analytics. A failure in any phase aborts the game.
func (r *Runner) RunGame(ctx context.Context) (*model.GameAnalytics, error) {
	r.logger.Info("game starting",
		slog.Int("participants", len(r.state.Active())),
	)

	for {
		if err := r.RunNight(ctx); err != nil {
			return nil, err
		}
		if err := r.RunBidding(ctx); err != nil {
			return nil, err
		}
		if err := r.RunDebate(ctx); err != nil {
			return nil, err
		}
		if err := r.RunVoting(ctx); err != nil {
			return nil, err
		}
		if err := r.RunRoundEnd(); err != nil {
			return nil, err
		}
		if r.cur == model.PhaseGameEnd {
			break
		}
	}

	return r.RunGameEnd()
}
