package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/werewolf-arena/internal/model"
)

// AgentGateway asks a participant a question and returns the structured
// answer. Real external agents are reached over the transport; simulated
// participants are driven by the LLM backend.
type AgentGateway interface {
	Ask(ctx context.Context, p *model.Participant, prompt string) (Fields, error)
	// AskRaw sends a prompt and discards the reply's structure. Used for
	// one-way notifications like the seer's investigation reveal.
	AskRaw(ctx context.Context, p *model.Participant, prompt string) error
}

// Gateway is the production AgentGateway over a Transport and an LLMClient
type Gateway struct {
	transport Transport
	llm       LLMClient
	logger    *slog.Logger
}

var _ AgentGateway = (*Gateway)(nil)

// New creates a new Gateway
func New(transport Transport, llm LLMClient, logger *slog.Logger) *Gateway {
	return &Gateway{
		transport: transport,
		llm:       llm,
		logger:    logger.With(slog.String("component", "gateway")),
	}
}

// Ask delivers the prompt and parses the reply into named fields.
// A blank prompt is a programming error, not a runtime condition.
func (g *Gateway) Ask(ctx context.Context, p *model.Participant, prompt string) (Fields, error) {
	reply, err := g.send(ctx, p, prompt)
	if err != nil {
		return nil, err
	}

	fields, err := ParseStructured(reply)
	if err != nil {
		g.logger.Warn("unparseable participant reply",
			slog.String("participant_id", string(p.ID)),
			slog.Int("reply_len", len(reply)),
		)
		return nil, err
	}
	return fields, nil
}

// AskRaw delivers the prompt and ignores whatever comes back
func (g *Gateway) AskRaw(ctx context.Context, p *model.Participant, prompt string) error {
	_, err := g.send(ctx, p, prompt)
	return err
}

func (g *Gateway) send(ctx context.Context, p *model.Participant, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("participant %s: %w", p.ID, model.ErrEmptyPrompt)
	}

	if p.Simulated {
		reply, err := g.llm.Complete(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("simulated participant %s: %w", p.ID, err)
		}
		return reply, nil
	}

	reply, err := g.transport.Send(ctx, p.Endpoint, prompt, true)
	if err != nil {
		return "", fmt.Errorf("participant %s: %w", p.ID, err)
	}
	return reply, nil
}
