package game

import (
	"github.com/google/uuid"

	"github.com/mcoot/werewolf-arena/internal/dependencies/random"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// Fixed game composition: 3 villagers, 2 werewolves, 1 seer
var composition = map[model.Role]int{
	model.RoleVillager: 3,
	model.RoleWerewolf: 2,
	model.RoleSeer:     1,
}

// Setup builds a fresh GameState for one game: the external participant
// takes the requested role and LLM-simulated participants fill the
// remaining slots. The first werewolf created becomes the tracked night
// killer; round 1's speaking order is a random shuffle of the roster.
func Setup(endpoint string, role model.Role, turnsToSpeak int, rnd random.Random) *model.GameState {
	state := model.NewGameState(model.GameID(uuid.NewString()), turnsToSpeak)

	external := &model.Participant{
		ID:       model.ParticipantID(uuid.NewString()),
		Role:     role,
		Endpoint: endpoint,
	}
	state.AddParticipant(external)

	trackRole(state, external)

	for _, r := range model.AllRoles {
		needed := composition[r]
		if r == role {
			needed--
		}
		for i := 0; i < needed; i++ {
			sim := &model.Participant{
				ID:        model.ParticipantID(uuid.NewString()),
				Role:      r,
				Simulated: true,
			}
			state.AddParticipant(sim)
			trackRole(state, sim)
		}
	}

	roster := state.Participants[1]
	order := make([]model.ParticipantID, len(roster))
	for i, p := range roster {
		order[i] = p.ID
	}
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	state.SetSpeakingOrder(order)

	return state
}

// trackRole keeps the denormalized night-phase pointers: the first
// werewolf added and the seer
func trackRole(state *model.GameState, p *model.Participant) {
	switch p.Role {
	case model.RoleWerewolf:
		if state.Werewolf == nil {
			state.Werewolf = p
		}
	case model.RoleSeer:
		state.Seer = p
	}
}
