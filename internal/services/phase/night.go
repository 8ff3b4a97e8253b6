package phase

import (
	"context"
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Night resolves the nocturnal actions: the werewolf's kill and the seer's
// investigation, in that order.
type Night struct {
	gateway gateway.AgentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

// NewNight creates a new Night controller
func NewNight(gw gateway.AgentGateway, clk clock.Clock, logger *slog.Logger) *Night {
	return &Night{
		gateway: gw,
		clock:   clk,
		logger:  logger.With(slog.String("phase", "night")),
	}
}

// Run executes the kill then the investigation, and always closes the
// phase with a night-end event. Either step is skipped as a logged no-op
// when its actor has been eliminated.
func (n *Night) Run(ctx context.Context, state *model.GameState) error {
	if err := n.werewolfKill(ctx, state); err != nil {
		return err
	}
	if err := n.seerInvestigation(ctx, state); err != nil {
		return err
	}

	state.AppendEvent(state.CurrentRound, model.Event{
		Type:      model.EventNightEnd,
		Timestamp: n.clock.Now(),
	})
	return nil
}

func (n *Night) werewolfKill(ctx context.Context, state *model.GameState) error {
	werewolf := state.Werewolf
	if werewolf == nil {
		n.logger.Info("werewolf is dead, skipping kill",
			slog.Int("round", state.CurrentRound),
		)
		return nil
	}

	fields, err := n.gateway.Ask(ctx, werewolf, werewolfKillPrompt(state, werewolf))
	if err != nil {
		return err
	}

	victim, err := fields.String("player_id")
	if err != nil {
		return err
	}
	reason, _ := fields.String("reason")

	victimID := model.ParticipantID(victim)
	state.Eliminate(victimID, model.EliminationNightKill)
	state.AppendEvent(state.CurrentRound, model.Event{
		Type:         model.EventWerewolfElimination,
		EliminatedID: victimID,
		Description:  reason,
		Timestamp:    n.clock.Now(),
	})
	state.LatestKill = victimID

	n.logger.Info("werewolf kill resolved",
		slog.Int("round", state.CurrentRound),
		slog.String("victim", victim),
	)
	return nil
}

func (n *Night) seerInvestigation(ctx context.Context, state *model.GameState) error {
	seer := state.Seer
	if seer == nil {
		n.logger.Info("seer is dead, skipping investigation",
			slog.Int("round", state.CurrentRound),
		)
		return nil
	}

	fields, err := n.gateway.Ask(ctx, seer, seerInvestigationPrompt(state, seer))
	if err != nil {
		return err
	}

	target, err := fields.String("player_id")
	if err != nil {
		return err
	}
	reason, _ := fields.String("reason")

	targetID := model.ParticipantID(target)
	state.AppendEvent(state.CurrentRound, model.Event{
		Type:        model.EventSeerInvestigation,
		PlayerID:    seer.ID,
		Description: reason,
		Timestamp:   n.clock.Now(),
	})

	// False whenever no werewolf survives
	isWerewolf := state.Werewolf != nil && state.Werewolf.ID == targetID

	// One-way reveal; the seer's reply, if any, is discarded
	if err := n.gateway.AskRaw(ctx, seer, seerRevealPrompt(targetID, isWerewolf)); err != nil {
		return err
	}

	// Recorded even for repeat checks; dedup is advisory via the prompt
	state.SeerChecks = append(state.SeerChecks, model.SeerCheck{
		TargetID:   targetID,
		IsWerewolf: isWerewolf,
	})

	n.logger.Info("seer investigation resolved",
		slog.Int("round", state.CurrentRound),
		slog.String("target", target),
		slog.Bool("is_werewolf", isWerewolf),
	)
	return nil
}
