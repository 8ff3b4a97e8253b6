package model

// ParticipantID uniquely identifies a participant within a game
type ParticipantID string

// Role is a participant's assigned game role
type Role string

const (
	RoleVillager Role = "villager"
	RoleWerewolf Role = "werewolf"
	RoleSeer     Role = "seer"
)

// AllRoles lists every role the external participant can be evaluated as
var AllRoles = []Role{RoleVillager, RoleWerewolf, RoleSeer}

// ParseRole converts a role name into a Role
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleVillager, RoleWerewolf, RoleSeer:
		return Role(name), nil
	}
	return "", ErrInvalidRole
}

// Participant is one player in a game. Identity and role are fixed at game
// setup; liveness is tracked by presence in the current round's roster, not
// by a flag here.
type Participant struct {
	ID   ParticipantID
	Role Role

	// Endpoint is the network address of a real external agent.
	// Empty for simulated participants.
	Endpoint string

	// Simulated marks an LLM-driven stand-in participant.
	Simulated bool
}
