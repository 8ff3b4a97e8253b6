package phase

import (
	"context"
	"log/slog"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Debate has every active participant speak in speaking order, possibly
// for multiple passes per round.
type Debate struct {
	gateway gateway.AgentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

// NewDebate creates a new Debate controller
func NewDebate(gw gateway.AgentGateway, clk clock.Clock, logger *slog.Logger) *Debate {
	return &Debate{
		gateway: gw,
		clock:   clk,
		logger:  logger.With(slog.String("phase", "debate")),
	}
}

// Run repeats TurnsToSpeak full passes over the speaking order, skipping
// ranked participants that have since been eliminated. Each message lands
// in the chat history immediately, so later speakers in the same pass see
// it.
func (d *Debate) Run(ctx context.Context, state *model.GameState) error {
	order := state.SpeakingOrder[state.CurrentRound]

	speakers := make([]*model.Participant, 0, len(order))
	for _, id := range order {
		if p := state.FindActive(id); p != nil {
			speakers = append(speakers, p)
		}
	}

	d.logger.Info("debate starting",
		slog.Int("round", state.CurrentRound),
		slog.Int("speakers", len(speakers)),
		slog.Int("passes", state.TurnsToSpeak),
	)

	for pass := 0; pass < state.TurnsToSpeak; pass++ {
		for _, p := range speakers {
			fields, err := d.gateway.Ask(ctx, p, debatePrompt(state, p))
			if err != nil {
				return err
			}

			message, err := fields.String("message")
			if err != nil {
				return err
			}

			state.AddMessage(p.ID, message)

			d.logger.Info("participant spoke",
				slog.Int("round", state.CurrentRound),
				slog.String("participant_id", string(p.ID)),
				slog.Int("pass", pass+1),
			)
		}
	}
	return nil
}
