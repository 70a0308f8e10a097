package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/taalbot/pkg/log"
)

type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY,required,notEmpty"`
	ChatModel  string `env:"GEMINI_CHAT_MODEL" envDefault:"gemini-2.5-flash"`
	CheckModel string `env:"GEMINI_CHECK_MODEL" envDefault:"gemini-2.5-flash-lite"`
}

func NewGeminiConfig(ctx context.Context) *GeminiConfig {
	c := &GeminiConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Gemini config")
	}
	return c
}
