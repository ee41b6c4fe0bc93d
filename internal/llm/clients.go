// Package llm wraps the Gemini client used to write a short description
// for restaurants the place search returns without an editorial summary.
// Enrichment is strictly best-effort; callers treat every failure as "no
// description available".
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// ChatClient abstracts the LLM capability the search service needs.
type ChatClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// GeminiChatClient adapts the genai SDK to the ChatClient interface.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

var _ ChatClient = (*GeminiChatClient)(nil)

// NewGeminiChatClient creates a ChatClient backed by Gemini. An empty
// model selects the default.
func NewGeminiChatClient(ctx context.Context, apiKey, model string) (*GeminiChatClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	if model == "" {
		model = defaultModel
	}
	return &GeminiChatClient{client: client, model: model}, nil
}

func (g *GeminiChatClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (g *GeminiChatClient) Model() string {
	return g.model
}

// DescriptionPrompt builds the one-sentence description prompt for a
// restaurant the search response left without an editorial summary.
func DescriptionPrompt(name, cuisine, address string) string {
	var b strings.Builder
	b.WriteString("Napiši jednu kratku rečenicu na bosanskom jeziku koja opisuje restoran \"")
	b.WriteString(name)
	b.WriteString("\"")
	if cuisine != "" {
		b.WriteString(" (kuhinja: ")
		b.WriteString(cuisine)
		b.WriteString(")")
	}
	if address != "" {
		b.WriteString(" na adresi ")
		b.WriteString(address)
	}
	b.WriteString(". Odgovori samo tom rečenicom, bez uvoda.")
	return b.String()
}
