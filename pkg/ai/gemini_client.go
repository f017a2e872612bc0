package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"farmbot/entities"
)

type gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed client.
func NewGemini(ctx context.Context, apiKey, model string) (Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &gemini{client: client, model: model}, nil
}

func (g *gemini) Name() string { return "gemini:" + g.model }

func (g *gemini) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	cfg.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return strings.TrimSpace(result.Text()), nil
}

func (g *gemini) Answer(ctx context.Context, question string, f *entities.Farmer) (string, error) {
	return g.generate(ctx, renderAnswerPrompt(question, f), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		MaxOutputTokens: 500,
	})
}

func (g *gemini) ProposeSuggestions(ctx context.Context, f *entities.Farmer, req SuggestionRequest) ([]entities.SuggestionDraft, error) {
	content, err := g.generate(ctx, renderSuggestionPrompt(f, req), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}
	return parseSuggestions(content, req.Count)
}
