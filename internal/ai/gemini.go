// README: Gemini implementation of the generative-text capability.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
// Two model handles share one client: a conversational one and a
// JSON-constrained one with a low temperature for stable extraction.
type GeminiProvider struct {
	client    *genai.Client
	chatModel *genai.GenerativeModel
	jsonModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a Gemini client. Returns ErrNotConfigured
// when the key is empty so callers can select their degraded path up front.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	chatModel := client.GenerativeModel(modelName)
	chatModel.SetTemperature(0.7)
	chatModel.SetMaxOutputTokens(500)

	jsonModel := client.GenerativeModel(modelName)
	jsonModel.ResponseMIMEType = "application/json"
	jsonModel.SetTemperature(0.1)
	jsonModel.SetMaxOutputTokens(256)

	return &GeminiProvider{client: client, chatModel: chatModel, jsonModel: jsonModel}, nil
}

// Close cleans up the underlying client.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete renders the history into a single prompt under the system
// instructions and returns the model's reply text.
func (p *GeminiProvider) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\nConversation so far:\n")
	for _, m := range messages {
		switch m.Role {
		case "assistant":
			b.WriteString("Assistant: ")
		default:
			b.WriteString("User: ")
		}
		b.WriteString(m.Content)
		b.WriteString("\n")
	}
	b.WriteString("Assistant:")

	resp, err := p.chatModel.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp)
}

// CompleteJSON runs the prompt through the JSON-constrained model.
func (p *GeminiProvider) CompleteJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := p.jsonModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: no response candidates")
	}
	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok && strings.TrimSpace(string(txt)) != "" {
			parts = append(parts, string(txt))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: empty text parts")
	}
	return strings.Join(parts, "\n"), nil
}
