package model

// GameID uniquely identifies a game within an evaluation run
type GameID string

// Phase represents the current stage of a game
type Phase string

const (
	PhaseNight    Phase = "night"
	PhaseBidding  Phase = "bidding"
	PhaseDebate   Phase = "debate"
	PhaseVoting   Phase = "voting"
	PhaseRoundEnd Phase = "round_end"
	PhaseGameEnd  Phase = "game_end"
)

// Winner identifies the faction that won a game
type Winner string

const (
	WinnerVillagers Winner = "villagers"
	WinnerWerewolf  Winner = "werewolf"
)

// EliminationType distinguishes how a participant was removed
type EliminationType string

const (
	EliminationNightKill EliminationType = "night_kill"
	EliminationVotedOut  EliminationType = "voted_out"
)

// Message is one debate statement in a round's chat history
type Message struct {
	SenderID ParticipantID
	Content  string
}

// Bid is one participant's offer for speaking priority in a round
type Bid struct {
	ParticipantID ParticipantID
	Amount        int
}

// Vote is one participant's elimination vote in a round
type Vote struct {
	VoterID    ParticipantID
	VotedForID ParticipantID
	Rationale  string
}

// Elimination records a participant's removal from the active roster
type Elimination struct {
	ParticipantID ParticipantID
	Type          EliminationType
}

// SeerCheck is one investigation result. Order matters: earlier checks
// shape which suspects the seer is offered later.
type SeerCheck struct {
	TargetID   ParticipantID
	IsWerewolf bool
}

// GameState is the single mutable aggregate for one game. It is
// constructed fresh per game, mutated only by phase controllers, and
// discarded once the game ends. Exactly one controller operates on a
// state at a time, so there is no internal locking.
type GameState struct {
	ID           GameID
	CurrentRound int
	Winner       Winner
	TurnsToSpeak int

	// Participants maps round number to that round's active roster.
	// Round r+1's list is round r's list minus eliminations.
	Participants map[int][]*Participant

	// Werewolf and Seer are denormalized pointers into the roster for
	// fast night-phase access. Cleared by Eliminate when the pointed-at
	// participant dies; never set independently of the roster.
	Werewolf *Participant
	Seer     *Participant

	SpeakingOrder map[int][]ParticipantID
	ChatHistory   map[int][]Message
	Bids          map[int][]Bid
	Votes         map[int][]Vote
	Eliminations  map[int][]Elimination
	Events        map[int][]Event

	SeerChecks []SeerCheck

	// LatestKill is the most recent night-kill victim, surfaced to
	// debate prompts. Empty until the first kill.
	LatestKill ParticipantID
}

// NewGameState creates an empty game state starting at round 1
func NewGameState(id GameID, turnsToSpeak int) *GameState {
	if turnsToSpeak < 1 {
		turnsToSpeak = 1
	}
	return &GameState{
		ID:            id,
		CurrentRound:  1,
		TurnsToSpeak:  turnsToSpeak,
		Participants:  map[int][]*Participant{1: {}},
		SpeakingOrder: make(map[int][]ParticipantID),
		ChatHistory:   map[int][]Message{1: {}},
		Bids:          map[int][]Bid{1: {}},
		Votes:         map[int][]Vote{1: {}},
		Eliminations:  make(map[int][]Elimination),
		Events:        map[int][]Event{1: {}},
	}
}

// AddParticipant appends a participant to the round 1 roster
func (g *GameState) AddParticipant(p *Participant) {
	g.Participants[1] = append(g.Participants[1], p)
}

// Active returns the current round's roster
func (g *GameState) Active() []*Participant {
	return g.Participants[g.CurrentRound]
}

// IsAlive reports whether the participant is in the current round's roster
func (g *GameState) IsAlive(id ParticipantID) bool {
	return g.FindActive(id) != nil
}

// FindActive returns the active participant with the given id, or nil
func (g *GameState) FindActive(id ParticipantID) *Participant {
	for _, p := range g.Active() {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Eliminate removes the participant from the current round's roster and
// appends to the elimination audit trail. The denormalized werewolf/seer
// pointers are invalidated here so they can never diverge from the roster.
func (g *GameState) Eliminate(id ParticipantID, elimType EliminationType) {
	active := g.Participants[g.CurrentRound]
	remaining := make([]*Participant, 0, len(active))
	for _, p := range active {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	g.Participants[g.CurrentRound] = remaining

	g.Eliminations[g.CurrentRound] = append(g.Eliminations[g.CurrentRound], Elimination{
		ParticipantID: id,
		Type:          elimType,
	})

	if g.Werewolf != nil && g.Werewolf.ID == id {
		g.Werewolf = nil
	}
	if g.Seer != nil && g.Seer.ID == id {
		g.Seer = nil
	}
}

// DeclareWinner sets the winner exactly once
func (g *GameState) DeclareWinner(w Winner) error {
	if g.Winner != "" {
		return ErrWinnerAlreadySet
	}
	g.Winner = w
	return nil
}

// PlaceBid appends a bid for the current round
func (g *GameState) PlaceBid(id ParticipantID, amount int) {
	g.Bids[g.CurrentRound] = append(g.Bids[g.CurrentRound], Bid{
		ParticipantID: id,
		Amount:        amount,
	})
}

// CastVote appends a vote for the current round
func (g *GameState) CastVote(voter, votedFor ParticipantID, rationale string) {
	g.Votes[g.CurrentRound] = append(g.Votes[g.CurrentRound], Vote{
		VoterID:    voter,
		VotedForID: votedFor,
		Rationale:  rationale,
	})
}

// AddMessage appends a debate message to the current round's chat history
func (g *GameState) AddMessage(sender ParticipantID, content string) {
	g.ChatHistory[g.CurrentRound] = append(g.ChatHistory[g.CurrentRound], Message{
		SenderID: sender,
		Content:  content,
	})
}

// SetSpeakingOrder records the debate order for the current round
func (g *GameState) SetSpeakingOrder(order []ParticipantID) {
	g.SpeakingOrder[g.CurrentRound] = order
}

// AppendEvent appends to the given round's chronological event log
func (g *GameState) AppendEvent(round int, ev Event) {
	g.Events[round] = append(g.Events[round], ev)
}

// InitializeNextRound advances to the next round, carrying the surviving
// roster forward and creating empty per-round containers. Speaking order
// is left unset; the bidding phase produces it.
func (g *GameState) InitializeNextRound() {
	next := g.CurrentRound + 1
	survivors := g.Participants[g.CurrentRound]
	g.Participants[next] = append([]*Participant{}, survivors...)
	g.ChatHistory[next] = []Message{}
	g.Bids[next] = []Bid{}
	g.Votes[next] = []Vote{}
	g.Events[next] = []Event{}
	g.CurrentRound = next
}

// RoundsPlayed returns the highest round that saw any activity
func (g *GameState) RoundsPlayed() int {
	max := g.CurrentRound
	for r := range g.Events {
		if r > max {
			max = r
		}
	}
	return max
}
