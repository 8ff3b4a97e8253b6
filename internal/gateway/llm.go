package gateway

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMClient drives a simulated participant: prompt in, text out
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// LLMConfig selects the model backing simulated participants
type LLMConfig struct {
	// Provider is one of "openai", "anthropic", "gemini", "ollama"
	Provider string
	Model    string
	// OllamaURL is the server URL when Provider is "ollama"
	OllamaURL string
}

// DefaultLLMConfig returns the default simulated-participant model
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Provider: "openai",
		Model:    "gpt-4o-mini",
	}
}

// LangchainClient implements LLMClient over a langchaingo model
type LangchainClient struct {
	llm llms.Model
}

var _ LLMClient = (*LangchainClient)(nil)

// NewLangchainClient constructs the configured provider's model
func NewLangchainClient(cfg LLMConfig) (*LangchainClient, error) {
	var (
		llm llms.Model
		err error
	)

	switch cfg.Provider {
	case "openai":
		llm, err = openai.New(openai.WithModel(cfg.Model))
	case "anthropic":
		llm, err = anthropic.New(anthropic.WithModel(cfg.Model))
	case "gemini":
		llm, err = googleai.New(context.Background(), googleai.WithDefaultModel(cfg.Model))
	case "ollama":
		llm, err = ollama.New(ollama.WithModel(cfg.Model), ollama.WithServerURL(cfg.OllamaURL))
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s model %s: %w", cfg.Provider, cfg.Model, err)
	}

	return &LangchainClient{llm: llm}, nil
}

// NewLangchainClientWithModel wraps an existing model (for testing)
func NewLangchainClientWithModel(llm llms.Model) *LangchainClient {
	return &LangchainClient{llm: llm}
}

// Complete sends the prompt as a single-turn generation
func (c *LangchainClient) Complete(ctx context.Context, prompt string) (string, error) {
	reply, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("llm generation failed: %w", err)
	}
	return reply, nil
}
