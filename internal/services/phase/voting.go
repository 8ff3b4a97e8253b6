package phase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Voting collects one elimination vote per active participant and resolves
// the outcome.
type Voting struct {
	gateway gateway.AgentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

// NewVoting creates a new Voting controller
func NewVoting(gw gateway.AgentGateway, clk clock.Clock, logger *slog.Logger) *Voting {
	return &Voting{
		gateway: gw,
		clock:   clk,
		logger:  logger.With(slog.String("phase", "voting")),
	}
}

// Run collects votes in roster order, then tallies and eliminates
func (v *Voting) Run(ctx context.Context, state *model.GameState) error {
	if err := v.collectVotes(ctx, state); err != nil {
		return err
	}
	v.tallyAndEliminate(state)
	return nil
}

func (v *Voting) collectVotes(ctx context.Context, state *model.GameState) error {
	for _, p := range state.Active() {
		fields, err := v.gateway.Ask(ctx, p, votePrompt(state, p))
		if err != nil {
			return err
		}

		votedFor, err := fields.String("player_id")
		if err != nil {
			return err
		}
		rationale, _ := fields.String("reason")

		state.CastVote(p.ID, model.ParticipantID(votedFor), rationale)
		state.AppendEvent(state.CurrentRound, model.Event{
			Type:        model.EventVote,
			PlayerID:    p.ID,
			Description: fmt.Sprintf("Voted for %s: %s", votedFor, rationale),
			Timestamp:   v.clock.Now(),
		})

		v.logger.Info("vote cast",
			slog.Int("round", state.CurrentRound),
			slog.String("voter", string(p.ID)),
			slog.String("voted_for", votedFor),
		)
	}
	return nil
}

// tallyAndEliminate picks the candidate with the strictly highest count.
// Ties go to whichever tied candidate was first encountered scanning the
// tally in insertion order, matching vote submission order.
func (v *Voting) tallyAndEliminate(state *model.GameState) {
	votes := state.Votes[state.CurrentRound]
	if len(votes) == 0 {
		v.logger.Info("no votes cast, no elimination",
			slog.Int("round", state.CurrentRound),
		)
		return
	}

	counts := make(map[model.ParticipantID]int)
	var insertion []model.ParticipantID
	for _, vote := range votes {
		if _, seen := counts[vote.VotedForID]; !seen {
			insertion = append(insertion, vote.VotedForID)
		}
		counts[vote.VotedForID]++
	}

	var (
		eliminated model.ParticipantID
		best       int
	)
	for _, candidate := range insertion {
		if eliminated == "" || counts[candidate] > best {
			eliminated = candidate
			best = counts[candidate]
		}
	}

	state.Eliminate(eliminated, model.EliminationVotedOut)
	state.AppendEvent(state.CurrentRound, model.Event{
		Type:         model.EventVillageElimination,
		EliminatedID: eliminated,
		Description:  fmt.Sprintf("Player %s was eliminated by village vote with %d votes", eliminated, best),
		Timestamp:    v.clock.Now(),
	})

	v.logger.Info("village elimination resolved",
		slog.Int("round", state.CurrentRound),
		slog.String("eliminated", string(eliminated)),
		slog.Int("votes", best),
	)
}
