package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Night events
	EventWerewolfElimination EventType = "werewolf_elimination"
	EventSeerInvestigation   EventType = "seer_investigation"
	EventNightEnd            EventType = "night_end"

	// Bidding events
	EventBidPlaced        EventType = "bid_placed"
	EventSpeakingOrderSet EventType = "speaking_order_set"

	// Voting events
	EventVote               EventType = "vote"
	EventVillageElimination EventType = "village_elimination"

	// Round events
	EventRoundEnd EventType = "round_end"
)

// Event is one entry in a round's chronological log. PlayerID is the actor
// where one exists, EliminatedID the victim of an elimination event.
type Event struct {
	Type         EventType
	PlayerID     ParticipantID
	EliminatedID ParticipantID
	Description  string
	Timestamp    time.Time
}
