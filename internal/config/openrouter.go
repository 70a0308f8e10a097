package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/taalbot/pkg/log"
)

type OpenRouterConfig struct {
	APIKey     string `env:"OPENROUTER_API_KEY,required,notEmpty"`
	ChatModel  string `env:"OPENROUTER_CHAT_MODEL" envDefault:"openai/gpt-4o"`
	CheckModel string `env:"OPENROUTER_CHECK_MODEL" envDefault:"openai/gpt-4o-mini"`
}

func NewOpenRouterConfig(ctx context.Context) *OpenRouterConfig {
	c := &OpenRouterConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenRouter config")
	}
	return c
}
