package game

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolf-arena/internal/dependencies/mocks"
	"github.com/mcoot/werewolf-arena/internal/model"
)

type SetupSuite struct {
	suite.Suite
	random *mocks.MockRandom
}

func TestSetupSuite(t *testing.T) {
	suite.Run(t, new(SetupSuite))
}

func (s *SetupSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
}

func (s *SetupSuite) TestCompositionWithExternalVillager() {
	state := Setup("http://agent:9000", model.RoleVillager, 1, s.random)

	s.Len(state.Participants[1], 6)
	s.Equal(3, countRole(state, model.RoleVillager))
	s.Equal(2, countRole(state, model.RoleWerewolf))
	s.Equal(1, countRole(state, model.RoleSeer))
}

func (s *SetupSuite) TestCompositionWithExternalWerewolf() {
	state := Setup("http://agent:9000", model.RoleWerewolf, 1, s.random)

	s.Equal(3, countRole(state, model.RoleVillager))
	s.Equal(2, countRole(state, model.RoleWerewolf))
	s.Equal(1, countRole(state, model.RoleSeer))
}

func (s *SetupSuite) TestExternalParticipantIsFirstAndNotSimulated() {
	state := Setup("http://agent:9000", model.RoleSeer, 1, s.random)

	external := state.Participants[1][0]
	s.Equal(model.RoleSeer, external.Role)
	s.Equal("http://agent:9000", external.Endpoint)
	s.False(external.Simulated)

	for _, p := range state.Participants[1][1:] {
		s.True(p.Simulated)
		s.Empty(p.Endpoint)
	}
}

func (s *SetupSuite) TestNightPointersTracked() {
	state := Setup("http://agent:9000", model.RoleWerewolf, 1, s.random)

	s.Require().NotNil(state.Werewolf)
	s.Require().NotNil(state.Seer)
	// The external werewolf is created first, so it is the tracked killer
	s.Equal(state.Participants[1][0].ID, state.Werewolf.ID)
	s.Equal(model.RoleSeer, state.Seer.Role)
}

func (s *SetupSuite) TestRoundOneSpeakingOrderCoversRoster() {
	state := Setup("http://agent:9000", model.RoleVillager, 1, s.random)

	order := state.SpeakingOrder[1]
	s.Len(order, 6)
	for _, id := range order {
		s.NotNil(state.FindActive(id))
	}
}

func (s *SetupSuite) TestDistinctGamesAreIsolated() {
	a := Setup("http://agent:9000", model.RoleVillager, 1, s.random)
	b := Setup("http://agent:9000", model.RoleVillager, 1, s.random)

	s.NotEqual(a.ID, b.ID)

	a.Eliminate(a.Participants[1][1].ID, model.EliminationNightKill)
	s.Len(a.Active(), 5)
	s.Len(b.Active(), 6)
}

func countRole(state *model.GameState, role model.Role) int {
	n := 0
	for _, p := range state.Participants[1] {
		if p.Role == role {
			n++
		}
	}
	return n
}
