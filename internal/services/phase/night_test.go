package phase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolf-arena/internal/dependencies/mocks"
	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
	"github.com/mcoot/werewolf-arena/internal/testutil"
)

type NightSuite struct {
	suite.Suite
	gateway *mocks.MockGateway
	clock   *mocks.MockClock
	night   *Night
	state   *model.GameState
	ctx     context.Context
}

func TestNightSuite(t *testing.T) {
	suite.Run(t, new(NightSuite))
}

func (s *NightSuite) SetupTest() {
	s.gateway = mocks.NewMockGateway()
	s.clock = mocks.NewMockClock(time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC))
	s.night = NewNight(s.gateway, s.clock, testutil.NopLogger())
	s.state = newTestState()
	s.ctx = context.Background()
}

func (s *NightSuite) TestKillThenInvestigation() {
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v1", "reason": "too quiet"})
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "wolf", "reason": "hunch"})

	err := s.night.Run(s.ctx, s.state)
	s.Require().NoError(err)

	s.False(s.state.IsAlive("v1"))
	s.Equal(model.ParticipantID("v1"), s.state.LatestKill)

	s.Require().Len(s.state.SeerChecks, 1)
	s.Equal(model.ParticipantID("wolf"), s.state.SeerChecks[0].TargetID)
	s.True(s.state.SeerChecks[0].IsWerewolf)

	s.Len(eventsOfType(s.state, 1, model.EventWerewolfElimination), 1)
	s.Len(eventsOfType(s.state, 1, model.EventSeerInvestigation), 1)
	s.Len(eventsOfType(s.state, 1, model.EventNightEnd), 1)

	// The seer must not learn a true role from the interaction itself;
	// the reveal goes out one-way
	lastAsk := s.gateway.Asks[len(s.gateway.Asks)-2]
	s.Equal(model.ParticipantID("seer"), lastAsk.ParticipantID)
}

func (s *NightSuite) TestInvestigationOfNonWerewolf() {
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v2"})
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "v1"})

	err := s.night.Run(s.ctx, s.state)
	s.Require().NoError(err)

	s.Require().Len(s.state.SeerChecks, 1)
	s.False(s.state.SeerChecks[0].IsWerewolf)
}

func (s *NightSuite) TestDeadWerewolfSkipsKill() {
	s.state.Eliminate("wolf", model.EliminationVotedOut)
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "wolf2"})

	err := s.night.Run(s.ctx, s.state)
	s.Require().NoError(err)

	s.Empty(eventsOfType(s.state, 1, model.EventWerewolfElimination))
	s.Empty(s.state.LatestKill)
	// With the tracked killer dead, no check can come back positive
	s.Require().Len(s.state.SeerChecks, 1)
	s.False(s.state.SeerChecks[0].IsWerewolf)
	s.Len(eventsOfType(s.state, 1, model.EventNightEnd), 1)
}

func (s *NightSuite) TestDeadSeerSkipsInvestigation() {
	s.state.Eliminate("seer", model.EliminationNightKill)
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v3"})

	err := s.night.Run(s.ctx, s.state)
	s.Require().NoError(err)

	s.Empty(s.state.SeerChecks)
	s.Empty(eventsOfType(s.state, 1, model.EventSeerInvestigation))
	s.Len(eventsOfType(s.state, 1, model.EventNightEnd), 1)
}

func (s *NightSuite) TestRepeatChecksAccumulate() {
	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v1"})
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "v2"})
	s.Require().NoError(s.night.Run(s.ctx, s.state))

	s.state.InitializeNextRound()

	s.gateway.QueueReply("wolf", gateway.Fields{"player_id": "v3"})
	s.gateway.QueueReply("seer", gateway.Fields{"player_id": "v2"})
	s.Require().NoError(s.night.Run(s.ctx, s.state))

	s.Len(s.state.SeerChecks, 2)
}

func (s *NightSuite) TestGatewayFailureAborts() {
	commErr := errors.New("agent unreachable")
	s.gateway.FailWith("wolf", commErr)

	err := s.night.Run(s.ctx, s.state)
	s.ErrorIs(err, commErr)
	s.Empty(eventsOfType(s.state, 1, model.EventNightEnd))
}
