package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

// ErrSpeechUnavailable is returned when no configured backend can synthesize audio.
var ErrSpeechUnavailable = errors.New("speech synthesis is not configured")

// NewProvider creates the completion backend selected by LLM_PROVIDER.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAI(config.NewOpenAIConfig(ctx)), nil
	case "gemini":
		g, err := NewGemini(ctx, config.NewGeminiConfig(ctx))
		if err != nil {
			return nil, err
		}
		return g, nil
	case "openrouter":
		return NewOpenRouter(config.NewOpenRouterConfig(ctx)), nil
	case "ollama":
		return NewOllama(config.NewOllamaConfig(ctx)), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}

// NewSpeech returns the OpenAI speech endpoint when an OpenAI key is set,
// whatever backend serves completions.
func NewSpeech(ctx context.Context) core.SpeechProvider {
	cfg := config.NewOpenAIConfig(ctx)
	if cfg.APIKey == "" {
		log.FromCtx(ctx).Warn().Msg("OPENAI_API_KEY is not set, audio replies are disabled")
		return noSpeech{}
	}
	return NewOpenAI(cfg)
}

type noSpeech struct{}

func (noSpeech) Synthesize(ctx context.Context, text, voice string) (*core.Audio, error) {
	return nil, ErrSpeechUnavailable
}
