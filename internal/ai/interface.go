package ai

import "context"

// Message is one turn of a conversation handed to the provider.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Provider defines the contract for the generative-text capability.
// This interface allows swapping providers (Gemini, OpenAI, ...) and
// substituting fakes in tests.
type Provider interface {
	// Complete generates a conversational reply for the given system prompt
	// and message history.
	Complete(ctx context.Context, system string, messages []Message) (string, error)

	// CompleteJSON generates a reply constrained to JSON for the given prompt.
	// Callers still must treat the output as untrusted and parse defensively.
	CompleteJSON(ctx context.Context, prompt string) (string, error)
}
