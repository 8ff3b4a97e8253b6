package phase

import (
	"fmt"
	"strings"

	"github.com/mcoot/werewolf-arena/internal/model"
)

const gameRules = `This is the game of werewolf. Villagers must detect the werewolf; the
werewolf must avoid detection through deception and persuasion.

Each round starts with a NIGHT phase in which the werewolf secretly
eliminates someone and the seer investigates one player. Next, everyone
bids for the right to speak; debate proceeds in descending bid order.
After debate, everyone votes and the player with the most votes is
eliminated. The villagers win when the werewolf is eliminated; the
werewolf wins when only one other player remains.`

const jsonOnly = "IMPORTANT: You MUST respond with valid JSON only. Do not include any text, markdown, or explanation before or after the JSON object."

func contextPreamble(p *model.Participant) string {
	return fmt.Sprintf("You are a participant in a game of werewolf.\nYour player ID: %s\nYour role: %s", p.ID, p.Role)
}

func bulletIDs(ids []model.ParticipantID) string {
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = "- " + string(id)
	}
	return strings.Join(lines, "\n")
}

func activeIDsExcluding(state *model.GameState, exclude model.ParticipantID) []model.ParticipantID {
	var ids []model.ParticipantID
	for _, p := range state.Active() {
		if p.ID != exclude {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func chatTranscript(state *model.GameState) string {
	msgs := state.ChatHistory[state.CurrentRound]
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = fmt.Sprintf("%s - %s", m.SenderID, m.Content)
	}
	return strings.Join(lines, "\n")
}

// werewolfKillPrompt asks the werewolf to pick a victim from the active
// roster, excluding itself
func werewolfKillPrompt(state *model.GameState, werewolf *model.Participant) string {
	candidates := activeIDsExcluding(state, werewolf.ID)

	return fmt.Sprintf(`%s

%s

ROUND %d:

YOU ARE THE WEREWOLF

Pick one participant to eliminate. Here is a list of the participants:
%s

Be sure to also explain why you are choosing to eliminate this player.

Respond with a JSON object in the following format:
{
    "player_id": "the player ID you want to eliminate",
    "reason": "your explanation for why you are eliminating this player"
}

%s`, gameRules, contextPreamble(werewolf), state.CurrentRound, bulletIDs(candidates), jsonOnly)
}

// seerInvestigationPrompt asks the seer to pick a target, offering the
// active participants it has not yet checked plus its full check history.
// Deduplication is advisory only; the seer may re-check a player.
func seerInvestigationPrompt(state *model.GameState, seer *model.Participant) string {
	checked := make(map[model.ParticipantID]bool, len(state.SeerChecks))
	var history []string
	for _, c := range state.SeerChecks {
		checked[c.TargetID] = true
		history = append(history, fmt.Sprintf("- %s is werewolf: %t", c.TargetID, c.IsWerewolf))
	}

	var remaining []model.ParticipantID
	for _, id := range activeIDsExcluding(state, seer.ID) {
		if !checked[id] {
			remaining = append(remaining, id)
		}
	}

	return fmt.Sprintf(`%s

%s

ROUND %d:

YOU ARE THE SEER

Pick one participant to investigate. If you already know who the werewolf
is, you do not have to investigate someone again.

Here is the list of participants you have not checked:
%s

Here is a list of participants you have checked:
%s

Be sure to also explain why you are choosing to investigate this player.

Respond with a JSON object in the following format:
{
    "player_id": "the player ID you want to investigate",
    "reason": "your explanation for why you are investigating this player"
}

%s`, gameRules, contextPreamble(seer), state.CurrentRound, bulletIDs(remaining), strings.Join(history, "\n"), jsonOnly)
}

// seerRevealPrompt is the one-way message telling the seer what its
// investigation found
func seerRevealPrompt(target model.ParticipantID, isWerewolf bool) string {
	verdict := "are not"
	if isWerewolf {
		verdict = "are"
	}
	return fmt.Sprintf(`Here are the results of your investigation:

You investigated player: %s
They %s the werewolf`, target, verdict)
}

// bidPrompt asks a participant for a speaking-priority bid, showing bids
// already placed this round
func bidPrompt(state *model.GameState, p *model.Participant) string {
	var placed []string
	for _, b := range state.Bids[state.CurrentRound] {
		placed = append(placed, fmt.Sprintf("- %s bid %d", b.ParticipantID, b.Amount))
	}
	placedBlock := "No bids have been placed yet."
	if len(placed) > 0 {
		placedBlock = strings.Join(placed, "\n")
	}

	return fmt.Sprintf(`%s

%s

ROUND %d:

It is time to bid for speaking priority. The highest bidder speaks first
during the debate. Bid between 0 and 100.

Bids placed so far this round:
%s

Respond with a JSON object in the following format:
{
    "bid_amount": <your bid, 0-100>,
    "reason": "why you bid this amount"
}

%s`, gameRules, contextPreamble(p), state.CurrentRound, placedBlock, jsonOnly)
}

// debatePrompt gives a speaker its role, the latest night kill, the
// speaking order, and the full round transcript so far
func debatePrompt(state *model.GameState, p *model.Participant) string {
	latestKill := "No one has been killed at night yet."
	if state.LatestKill != "" {
		latestKill = fmt.Sprintf("The werewolf's most recent night victim was %s.", state.LatestKill)
	}

	transcript := chatTranscript(state)
	if transcript == "" {
		transcript = "No one has spoken yet this round."
	}

	return fmt.Sprintf(`%s

%s

ROUND %d:

It is your turn to speak in the debate. %s

The speaking order this round is:
%s

Here is everything said so far this round:
%s

Make your statement to the group. Argue, accuse, defend, or deflect as
your role demands.

Respond with a JSON object in the following format:
{
    "message": "what you want to say to the group"
}

%s`, gameRules, contextPreamble(p), state.CurrentRound, latestKill,
		bulletIDs(state.SpeakingOrder[state.CurrentRound]), transcript, jsonOnly)
}

// votePrompt asks a participant to vote someone out, given the round's
// transcript and the candidate list (self-exclusion is a prompt choice,
// not enforced structurally)
func votePrompt(state *model.GameState, p *model.Participant) string {
	transcript := chatTranscript(state)
	if transcript == "" {
		transcript = "No one spoke this round."
	}

	return fmt.Sprintf(`%s

%s

It's time to vote for a player to eliminate.

Here is all of the conversation from this round:
%s

Pick a single player to eliminate and provide an explanation as to why.
Here are the players to choose from:
%s

Respond with a JSON object in the following format:
{
    "player_id": "the player ID you want to eliminate",
    "reason": "your explanation for why you are eliminating this player"
}

%s`, gameRules, contextPreamble(p), transcript, bulletIDs(activeIDsExcluding(state, p.ID)), jsonOnly)
}
