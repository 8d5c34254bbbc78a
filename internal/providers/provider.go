package providers

import (
	"context"
	"fmt"
)

// Message is one role-tagged entry in the transcript sent to a provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chatter is the provider abstraction interface. Chat receives the entire
// ordered transcript on every call and returns one assistant reply.
type Chatter interface {
	Chat(ctx context.Context, msgs []Message) (string, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Chatter, error) {
	switch provider {
	case "ollama", "lmstudio":
		return NewOllama(model)
	case "openai":
		return NewOpenAI(model)
	case "anthropic":
		return NewAnthropic(model)
	case "gemini", "google":
		return NewGemini(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
