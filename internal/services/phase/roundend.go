package phase

import (
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// RoundEnd evaluates win conditions after voting and either terminates the
// game or advances to the next round.
type RoundEnd struct {
	clock  clock.Clock
	logger *slog.Logger
}

// NewRoundEnd creates a new RoundEnd controller
func NewRoundEnd(clk clock.Clock, logger *slog.Logger) *RoundEnd {
	return &RoundEnd{
		clock:  clk,
		logger: logger.With(slog.String("phase", "round_end")),
	}
}

// Run returns the next phase: game end when a faction has won (or the
// roster is empty), otherwise night for the next round. The round-end
// event is always appended to the round just concluded.
func (r *RoundEnd) Run(state *model.GameState) (model.Phase, error) {
	concluded := state.CurrentRound
	next := r.evaluate(state)

	state.AppendEvent(concluded, model.Event{
		Type:      model.EventRoundEnd,
		Timestamp: r.clock.Now(),
	})
	return next, nil
}

func (r *RoundEnd) evaluate(state *model.GameState) model.Phase {
	alive := state.Active()
	if len(alive) == 0 {
		// Degenerate: everyone is gone. Stop without declaring a winner.
		r.logger.Warn("no active participants remain",
			slog.Int("round", state.CurrentRound),
		)
		return model.PhaseGameEnd
	}

	werewolfAlive := state.Werewolf != nil && state.IsAlive(state.Werewolf.ID)

	nonWerewolves := 0
	for _, p := range alive {
		if p.Role == model.RoleVillager || p.Role == model.RoleSeer {
			nonWerewolves++
		}
	}

	switch {
	case !werewolfAlive:
		_ = state.DeclareWinner(model.WinnerVillagers)
		r.logger.Info("villagers win",
			slog.Int("round", state.CurrentRound),
		)
		return model.PhaseGameEnd
	case nonWerewolves <= 1:
		_ = state.DeclareWinner(model.WinnerWerewolf)
		r.logger.Info("werewolf wins",
			slog.Int("round", state.CurrentRound),
		)
		return model.PhaseGameEnd
	default:
		state.InitializeNextRound()
		r.logger.Info("round advanced",
			slog.Int("round", state.CurrentRound),
		)
		return model.PhaseNight
	}
}
