package mocks

import (
	"context"
	"fmt"

	"github.com/mcoot/werewolf-arena/internal/gateway"
	"github.com/mcoot/werewolf-arena/internal/model"
)

// AskRecord captures one prompt sent through the mock gateway
type AskRecord struct {
	ParticipantID model.ParticipantID
	Prompt        string
	Raw           bool
}

// MockGateway is a scripted AgentGateway for testing. Each participant has
// a FIFO queue of replies drained by successive Ask calls; errors can be
// injected per participant.
type MockGateway struct {
	replies map[model.ParticipantID][]gateway.Fields
	errors  map[model.ParticipantID]error

	// Asks records every prompt in the order it was sent
	Asks []AskRecord
}

// Ensure MockGateway implements AgentGateway
var _ gateway.AgentGateway = (*MockGateway)(nil)

// NewMockGateway creates a new MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{
		replies: make(map[model.ParticipantID][]gateway.Fields),
		errors:  make(map[model.ParticipantID]error),
	}
}

// QueueReply adds a scripted reply for the given participant
func (m *MockGateway) QueueReply(id model.ParticipantID, fields gateway.Fields) {
	m.replies[id] = append(m.replies[id], fields)
}

// FailWith makes every call for the given participant return err
func (m *MockGateway) FailWith(id model.ParticipantID, err error) {
	m.errors[id] = err
}

// Ask returns the participant's next scripted reply
func (m *MockGateway) Ask(ctx context.Context, p *model.Participant, prompt string) (gateway.Fields, error) {
	m.Asks = append(m.Asks, AskRecord{ParticipantID: p.ID, Prompt: prompt})

	if err := m.errors[p.ID]; err != nil {
		return nil, err
	}

	queue := m.replies[p.ID]
	if len(queue) == 0 {
		return nil, fmt.Errorf("mock gateway: no scripted reply for participant %s", p.ID)
	}
	next := queue[0]
	m.replies[p.ID] = queue[1:]
	return next, nil
}

// AskRaw records the prompt and discards any scripted reply
func (m *MockGateway) AskRaw(ctx context.Context, p *model.Participant, prompt string) error {
	m.Asks = append(m.Asks, AskRecord{ParticipantID: p.ID, Prompt: prompt, Raw: true})
	return m.errors[p.ID]
}

// PromptsFor returns every non-raw prompt sent to the given participant
func (m *MockGateway) PromptsFor(id model.ParticipantID) []string {
	var prompts []string
	for _, ask := range m.Asks {
		if ask.ParticipantID == id && !ask.Raw {
			prompts = append(prompts, ask.Prompt)
		}
	}
	return prompts
}
