package installer

import (
	"fmt"
	"strings"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/pkg/env"
)

// InstallState collects the answers of the wizard as typed configs.
type InstallState struct {
	App        config.AppConfig
	Telegram   config.TelegramConfig
	OpenAI     config.OpenAIConfig
	Gemini     config.GeminiConfig
	OpenRouter config.OpenRouterConfig
	Ollama     config.OllamaConfig

	// Env is the rendered .env, filled by the finalization step.
	Env string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}

func (s *InstallState) provider() string {
	return strings.ToLower(s.App.LLMProvider)
}

// Render marshals the configs that apply to the chosen provider and channels.
// Booleans are written explicitly since their defaults are not false.
func (s *InstallState) Render() (string, error) {
	app := s.App
	app.EnableTelegram, app.EnableCLI = false, false

	sections := []any{&app}
	if s.App.EnableTelegram {
		sections = append(sections, &s.Telegram)
	}
	switch s.provider() {
	case "openai":
		sections = append(sections, &s.OpenAI)
	case "gemini":
		sections = append(sections, &s.Gemini)
	case "openrouter":
		sections = append(sections, &s.OpenRouter)
	case "ollama":
		sections = append(sections, &s.Ollama)
	}
	if s.provider() != "openai" && s.OpenAI.APIKey != "" {
		// speech only
		sections = append(sections, &config.OpenAIConfig{APIKey: s.OpenAI.APIKey})
	}

	var b strings.Builder
	for _, section := range sections {
		out, err := env.MarshalEnv(section)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	fmt.Fprintf(&b, "ENABLE_TELEGRAM=%t\n", s.App.EnableTelegram)
	fmt.Fprintf(&b, "ENABLE_CLI=%t\n", s.App.EnableCLI)
	b.WriteString("TAAL_DEBUG=0\n")
	return b.String(), nil
}
