package phase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/werewolf-arena/internal/dependencies/clock"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Bidding collects one bid per active participant and derives the round's
// speaking order from the amounts.
type Bidding struct {
	gateway gateway.AgentGateway
	clock   clock.Clock
	logger  *slog.Logger
}

// NewBidding creates a new Bidding controller
func NewBidding(gw gateway.AgentGateway, clk clock.Clock, logger *slog.Logger) *Bidding {
	return &Bidding{
		gateway: gw,
		clock:   clk,
		logger:  logger.With(slog.String("phase", "bidding")),
	}
}

// Run collects bids in roster order, then sorts descending by amount.
// Ties keep submission order, so the earlier bidder among equals speaks
// first.
func (b *Bidding) Run(ctx context.Context, state *model.GameState) error {
	if err := b.collectBids(ctx, state); err != nil {
		return err
	}
	b.setSpeakingOrder(state)
	return nil
}

func (b *Bidding) collectBids(ctx context.Context, state *model.GameState) error {
	for _, p := range state.Active() {
		fields, err := b.gateway.Ask(ctx, p, bidPrompt(state, p))
		if err != nil {
			return err
		}

		amount, err := fields.Int("bid_amount")
		if err != nil {
			return err
		}
		reason, _ := fields.String("reason")

		state.PlaceBid(p.ID, amount)
		state.AppendEvent(state.CurrentRound, model.Event{
			Type:        model.EventBidPlaced,
			PlayerID:    p.ID,
			Description: fmt.Sprintf("Placed a bid of %d points: %s", amount, reason),
			Timestamp:   b.clock.Now(),
		})

		b.logger.Info("bid placed",
			slog.Int("round", state.CurrentRound),
			slog.String("participant_id", string(p.ID)),
			slog.Int("amount", amount),
		)
	}
	return nil
}

func (b *Bidding) setSpeakingOrder(state *model.GameState) {
	bids := append([]model.Bid{}, state.Bids[state.CurrentRound]...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Amount > bids[j].Amount
	})

	order := make([]model.ParticipantID, len(bids))
	orderNames := make([]string, len(bids))
	for i, bid := range bids {
		order[i] = bid.ParticipantID
		orderNames[i] = string(bid.ParticipantID)
	}
	state.SetSpeakingOrder(order)

	state.AppendEvent(state.CurrentRound, model.Event{
		Type:        model.EventSpeakingOrderSet,
		Description: fmt.Sprintf("Speaking order for round %d set as: %s", state.CurrentRound, strings.Join(orderNames, ", ")),
		Timestamp:   b.clock.Now(),
	})
}
