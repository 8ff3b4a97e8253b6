package scoring

import (
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Service computes per-role point totals for a finished game. The formulas
// are illustrative heuristics rather than a balanced scoring system.
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// ScoreAll scores every round-1 participant under its role's heuristic
func (s *Service) ScoreAll(state *model.GameState) map[model.ParticipantID]int {
	scores := make(map[model.ParticipantID]int)
	for _, p := range state.Participants[1] {
		switch p.Role {
		case model.RoleWerewolf:
			scores[p.ID] = s.ScoreWerewolf(state, p.ID)
		case model.RoleSeer:
			scores[p.ID] = s.ScoreSeer(state)
		default:
			scores[p.ID] = s.ScoreVillager(state, p.ID)
		}
	}
	return scores
}

// ScoreWerewolf rewards longevity, deflected votes, and winning
func (s *Service) ScoreWerewolf(state *model.GameState, werewolfID model.ParticipantID) int {
	score := state.CurrentRound * 10

	for _, votes := range state.Votes {
		for _, v := range votes {
			if v.VotedForID != werewolfID {
				score += 5
			}
		}
	}

	if state.Winner == model.WinnerWerewolf {
		score += 50
	}
	return score
}

// ScoreSeer rewards an early werewolf reveal and penalises inaction in the
// rounds after it
func (s *Service) ScoreSeer(state *model.GameState) int {
	// The seer checks once per night, so the index of the revealing check
	// approximates the round it happened in
	revealRound := 0
	for i, check := range state.SeerChecks {
		if check.IsWerewolf {
			revealRound = i + 1
			break
		}
	}

	score := 0
	if revealRound > 0 {
		score += (10 - revealRound) * 5
		for r := revealRound + 1; r <= state.CurrentRound; r++ {
			score -= (r - revealRound) * 3
		}
	} else {
		score += (10 - state.CurrentRound) * 5
	}

	if score < 0 {
		return 0
	}
	return score
}

// ScoreVillager rewards votes against the werewolf, short games, and
// winning
func (s *Service) ScoreVillager(state *model.GameState, villagerID model.ParticipantID) int {
	werewolfID := werewolfFromRoster(state)

	score := 0
	for _, votes := range state.Votes {
		for _, v := range votes {
			if v.VoterID == villagerID && v.VotedForID == werewolfID {
				score += 10
			}
		}
	}

	score += (10 - state.CurrentRound) * 3

	if state.Winner == model.WinnerVillagers {
		score += 30
	}
	return score
}

// werewolfFromRoster recovers the tracked werewolf's id from the round-1
// roster, since the live pointer is cleared on elimination
func werewolfFromRoster(state *model.GameState) model.ParticipantID {
	if state.Werewolf != nil {
		return state.Werewolf.ID
	}
	for _, p := range state.Participants[1] {
		if p.Role == model.RoleWerewolf {
			return p.ID
		}
	}
	return ""
}
