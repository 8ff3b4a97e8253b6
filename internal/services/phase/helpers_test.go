package phase

import (
	"github.com/mcoot/werewolf-arena/internal/model"
)

// newTestState builds a six-player state with the standard composition,
// stable ids, and a roster-order round 1 speaking order.
func newTestState() *model.GameState {
	state := model.NewGameState("game-test", 1)

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

func eventsOfType(state *model.GameState, round int, t model.EventType) []model.Event {
	var matched []model.Event
	for _, ev := range state.Events[round] {
		if ev.Type == t {
			matched = append(matched, ev)
		}
	}
	return matched
}
