package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
)

// Gemini serves completions through the Gemini API. It has no speech output.
type Gemini struct {
	client *genai.Client
	models map[core.Tier]string
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		models: map[core.Tier]string{
			core.TierChat:  cfg.ChatModel,
			core.TierCheck: cfg.CheckModel,
		},
	}, nil
}

func (g *Gemini) Complete(ctx context.Context, messages []core.Message, params core.Params) (string, error) {
	model := g.models[params.Tier]
	if model == "" {
		model = g.models[core.TierChat]
	}

	system, contents := toGeminiContents(messages)
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, toGeminiConfig(system, params))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty candidates (check safety filters)")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty completion")
	}
	return text, nil
}

// toGeminiContents folds system turns into one instruction and maps
// assistant turns to the model role.
func toGeminiContents(messages []core.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case core.RoleSystem:
			system = append(system, m.Content)
		case core.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}

func toGeminiConfig(system string, params core.Params) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:      toFloat32(params.Temperature),
		TopP:             toFloat32(params.TopP),
		PresencePenalty:  toFloat32(params.PresencePenalty),
		FrequencyPenalty: toFloat32(params.FrequencyPenalty),
		// token budgets are sized for the answer alone
		ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
	}
	if params.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(params.MaxTokens)
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	return cfg
}

func toFloat32(v *float64) *float32 {
	if v == nil {
		return nil
	}
	f := float32(*v)
	return &f
}
