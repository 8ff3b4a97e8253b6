package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolf-arena/internal/dependencies/mocks"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/services/scoring"
	"github.com/mcoot/werewolf-arena/internal/testutil"
)

type RunnerSuite struct {
	suite.Suite
	gateway *mocks.MockGateway
	clock   *mocks.MockClock
	state   *model.GameState
	runner  *Runner
	ctx     context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.gateway = mocks.NewMockGateway()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC))
	s.state = s.buildState()
	s.runner = NewRunner(s.state, s.gateway, scoring.New(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *RunnerSuite) buildState() *model.GameState {
	state := model.NewGameState("game-runner", 1)

	wolf := &model.Participant{ID: "wolf", Role: model.RoleWerewolf, Simulated: true}
	wolf2 := &model.Participant{ID: "wolf2", Role: model.RoleWerewolf, Simulated: true}
	seer := &model.Participant{ID: "seer", Role: model.RoleSeer, Simulated: true}

	state.AddParticipant(wolf)
	state.AddParticipant(wolf2)
	state.AddParticipant(seer)
	state.AddParticipant(&model.Participant{ID: "v1", Role: model.RoleVillager, Simulated: true})
	state.AddParticipant(&model.Participant{ID: "v2", Role: model.RoleVillager, Simulated: true})
	state.AddParticipant(&model.Participant{ID: "v3", Role: model.RoleVillager, Simulated: true})

	state.Werewolf = wolf
	state.Seer = seer

	order := make([]model.ParticipantID, 0, 6)
	for _, p := range state.Active() {
		order = append(order, p.ID)
	}
	state.SetSpeakingOrder(order)

	return state
}

// scriptRound queues one participant's full round: bid, debate message,
// vote. Night actions are queued separately by the actors that have them.
func (s *RunnerSuite) scriptRound(id model.ParticipantID, bid int, message string, voteFor model.ParticipantID) {
	s.gateway.QueueReply(id, gateway.Fields{"bid_amount": float64(bid), "reason": "r"})
	s.gateway.QueueReply(id, gateway.Fields{"message": message})
	s.gateway.QueueReply(id, gateway.Fields{"player_id": string(voteFor), "reason": "r"})
}

func (s *RunnerSuite) TestVillagersWinInOneRound() {
	// Night: the werewolf kills v1; the seer investigates and finds it
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v1", "reason": "quiet"})
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "wolf", "reason": "hunch"})

	// Day: everyone piles onto the werewolf
	s.scriptRound("wolf", 1, "I saw nothing", "v2")
	s.scriptRound("wolf2", 1, "me neither", "v2")
	s.scriptRound("seer", 5, "I am certain it is wolf", "wolf")
	s.scriptRound("v2", 2, "the seer sounds confident", "wolf")
	s.scriptRound("v3", 2, "agreed", "wolf")

	analytics, err := s.runner.RunGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.PhaseGameEnd, s.runner.CurrentPhase())
	s.Equal(model.WinnerVillagers, analytics.Winner)
	s.Equal(1, analytics.RoundsPlayed)
	s.Equal(1, analytics.WerewolfKills)
	s.True(analytics.SeerFoundWerewolf)

	s.False(s.state.IsAlive("v1"))
	s.False(s.state.IsAlive("wolf"))
	s.True(s.state.IsAlive("seer"))

	// The seer bid highest and so spoke first
	s.Equal(model.ParticipantID("seer"), s.state.SpeakingOrder[1][0])
}

func (s *RunnerSuite) TestWerewolfWinsByAttrition() {
	// Round 1: kill the seer, vote out a villager
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "seer"})
	s.scriptRound("wolf", 1, "sad about the seer", "v1")
	s.scriptRound("wolf2", 1, "terrible", "v1")
	s.scriptRound("v1", 1, "someone is lying", "v2")
	s.scriptRound("v2", 1, "not me", "v1")
	s.scriptRound("v3", 1, "unsure", "v1")

	// Round 2: kill v2, vote out v3 leaves wolf, wolf2 and nobody else
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v2"})
	s.gateway.QueueReply("wolf", gateway.Fields{"bid_amount": float64(1)})
	s.gateway.QueueReply("wolf", gateway.Fields{"message": "just us now"})
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v3"})
	s.gateway.QueueReply("wolf2", gateway.Fields{"bid_amount": float64(1)})
	s.gateway.QueueReply("wolf2", gateway.Fields{"message": "indeed"})
	s.gateway.QueueReply("wolf2", gateway.Fields{"player_id": "v3"})
	s.gateway.QueueReply("v3", gateway.Fields{"bid_amount": float64(1)})
	s.gateway.QueueReply("v3", gateway.Fields{"message": "uh oh"})
	s.gateway.QueueReply("v3", gateway.Fields{"player_id": "wolf"})

	analytics, err := s.runner.RunGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.WinnerWerewolf, analytics.Winner)
	s.Equal(2, analytics.RoundsPlayed)
	s.Equal(2, analytics.WerewolfKills)
	s.False(analytics.SeerFoundWerewolf)
}

func (s *RunnerSuite) TestPhaseFailureAbortsGame() {
	commErr := errors.New("agent crashed")
	s.gateway.FailWith("wolf", commErr)

	_, err := s.runner.RunGame(s.ctx)
	s.ErrorIs(err, commErr)
	s.Empty(s.state.Winner)
}

func (s *RunnerSuite) TestTwoGamesShareNothing() {
	other := s.buildState()
	otherRunner := NewRunner(other, mocks.NewMockGateway(), scoring.New(), s.clock, testutil.NopLogger())

	s.state.Eliminate("v1", model.EliminationNightKill)

	s.Len(other.Active(), 6)
	s.Equal(model.PhaseNight, otherRunner.CurrentPhase())
}
