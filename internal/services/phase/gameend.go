package phase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
)

// GameEnd computes terminal analytics for a finished game
type GameEnd struct {
	scoring *scoring.Service
	logger  *slog.Logger
}

// NewGameEnd creates a new GameEnd controller
func NewGameEnd(scoringService *scoring.Service, logger *slog.Logger) *GameEnd {
	return &GameEnd{
		scoring: scoringService,
		logger:  logger.With(slog.String("phase", "game_end")),
	}
}

// Run produces the analytics payload. It must not be called before a
// winner has been declared.
func (g *GameEnd) Run(state *model.GameState) (*model.GameAnalytics, error) {
	if state.Winner == "" {
		return nil, model.ErrWinnerNotSet
	}

	analytics := &model.GameAnalytics{
		GameID:       state.ID,
		Winner:       state.Winner,
		RoundsPlayed: state.RoundsPlayed(),
		TotalWords:   make(map[model.ParticipantID]int),
		AvgWords:     make(map[model.ParticipantID]float64),
		AvgBid:       make(map[model.ParticipantID]float64),
		Scores:       g.scoring.ScoreAll(state),
		SeerChecks:   append([]model.SeerCheck{}, state.SeerChecks...),
	}

	msgCount := make(map[model.ParticipantID]int)
	for _, msgs := range state.ChatHistory {
		for _, m := range msgs {
			analytics.TotalWords[m.SenderID] += wordCount(m.Content)
			msgCount[m.SenderID]++
		}
	}
	for id, n := range msgCount {
		analytics.AvgWords[id] = float64(analytics.TotalWords[id]) / float64(n)
	}

	bidSum := make(map[model.ParticipantID]int)
	bidCount := make(map[model.ParticipantID]int)
	for _, bids := range state.Bids {
		for _, b := range bids {
			bidSum[b.ParticipantID] += b.Amount
			bidCount[b.ParticipantID]++
		}
	}
	for id, n := range bidCount {
		analytics.AvgBid[id] = float64(bidSum[id]) / float64(n)
	}

	for _, check := range state.SeerChecks {
		if check.IsWerewolf {
			analytics.SeerFoundWerewolf = true
			break
		}
	}

	for _, elims := range state.Eliminations {
		for _, e := range elims {
			if e.Type == model.EliminationNightKill {
				analytics.WerewolfKills++
			}
		}
	}

	analytics.Summary = renderSummary(analytics)

	g.logger.Info("game analytics computed",
		slog.String("game_id", string(state.ID)),
		slog.String("winner", string(state.Winner)),
		slog.Int("rounds", analytics.RoundsPlayed),
	)
	return analytics, nil
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

func renderSummary(a *model.GameAnalytics) string {
	return fmt.Sprintf(`Game complete.
- Winner: %s
- Rounds played: %d
- Werewolf kills: %d
- Seer found werewolf: %t`,
		a.Winner, a.RoundsPlayed, a.WerewolfKills, a.SeerFoundWerewolf)
}
