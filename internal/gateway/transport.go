package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Transport delivers a prompt to a real external agent and returns its text
// reply. Every call starts a fresh conversation; all context must be
// embedded in the prompt by the caller.
type Transport interface {
	Send(ctx context.Context, endpoint, prompt string, newConversation bool) (string, error)
}

// HTTPTransportConfig holds settings for the HTTP agent transport
type HTTPTransportConfig struct {
	Timeout time.Duration
}

// DefaultHTTPTransportConfig returns sensible defaults for agent calls
func DefaultHTTPTransportConfig() HTTPTransportConfig {
	return HTTPTransportConfig{
		Timeout: 120 * time.Second,
	}
}

// HTTPTransport talks to an external agent endpoint over JSON-on-HTTP
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a new HTTPTransport
func NewHTTPTransport(cfg HTTPTransportConfig) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

var _ Transport = (*HTTPTransport)(nil)

type agentRequest struct {
	Message         string `json:"message"`
	NewConversation bool   `json:"new_conversation"`
}

type agentResponse struct {
	Message string `json:"message"`
}

// Send posts the prompt to the agent endpoint and returns the reply text
func (t *HTTPTransport) Send(ctx context.Context, endpoint, prompt string, newConversation bool) (string, error) {
	body, err := json.Marshal(agentRequest{
		Message:         prompt,
		NewConversation: newConversation,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("agent call to %s failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("agent at %s returned status %d", endpoint, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading agent reply from %s: %w", endpoint, err)
	}

	var parsed agentResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message, nil
	}
	// Agents that reply with plain text instead of the envelope
	return string(raw), nil
}
