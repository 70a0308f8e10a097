package installer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallState_RenderOpenAI(t *testing.T) {
	s := NewInstallState()
	s.App.LLMProvider = "openai"
	s.App.EnableTelegram = true
	s.App.AuthorizedUsers = []int64{42, 7}
	s.App.RecencyBackend = "badger"
	s.Telegram.Token = "123:abc"
	s.OpenAI.APIKey = "sk-test"
	s.OpenAI.ChatModel = "gpt-4o"

	out, err := s.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "LLM_PROVIDER=openai\n")
	assert.Contains(t, out, "AUTHORIZED_USERS=42,7\n")
	assert.Contains(t, out, "RECENCY_BACKEND=badger\n")
	assert.Contains(t, out, "TELEGRAM_TOKEN=123:abc\n")
	assert.Contains(t, out, "OPENAI_API_KEY=sk-test\n")
	assert.Contains(t, out, "OPENAI_CHAT_MODEL=gpt-4o\n")
	assert.Equal(t, 1, strings.Count(out, "ENABLE_TELEGRAM="))
	assert.Contains(t, out, "ENABLE_TELEGRAM=true\n")
	assert.Contains(t, out, "ENABLE_CLI=false\n")
	assert.True(t, strings.HasSuffix(out, "TAAL_DEBUG=0\n"))
}

func TestInstallState_RenderCLIOnlyGeminiWithSpeechKey(t *testing.T) {
	s := NewInstallState()
	s.App.LLMProvider = "gemini"
	s.App.EnableCLI = true
	s.Telegram.Token = "ignored"
	s.Gemini.APIKey = "g-key"
	s.OpenAI.APIKey = "sk-speech"
	s.OpenAI.ChatModel = "ignored-model"

	out, err := s.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "GEMINI_API_KEY=g-key\n")
	assert.Contains(t, out, "OPENAI_API_KEY=sk-speech\n")
	assert.NotContains(t, out, "TELEGRAM_TOKEN")
	assert.NotContains(t, out, "OPENAI_CHAT_MODEL")
	assert.Contains(t, out, "ENABLE_TELEGRAM=false\n")
	assert.Contains(t, out, "ENABLE_CLI=true\n")
}

func TestInstallState_RenderOllamaWithoutSpeech(t *testing.T) {
	s := NewInstallState()
	s.App.LLMProvider = "ollama"
	s.Ollama.BaseURL = "http://127.0.0.1:11434"
	s.Ollama.ChatModel = "llama3.1"

	out, err := s.Render()
	require.NoError(t, err)

	assert.Contains(t, out, "OLLAMA_BASE_URL=http://127.0.0.1:11434\n")
	assert.Contains(t, out, "OLLAMA_CHAT_MODEL=llama3.1\n")
	assert.NotContains(t, out, "OPENAI_API_KEY")
}

func TestParseUserIDs(t *testing.T) {
	tests := []struct {
		in      string
		want    []int64
		wantErr bool
	}{
		{in: "123", want: []int64{123}},
		{in: "1, 2,3  4", want: []int64{1, 2, 3, 4}},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
		{in: "12,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseUserIDs(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetChatModel(t *testing.T) {
	s := NewInstallState()
	s.App.LLMProvider = "ollama"
	setChatModel(s, "qwen2.5")
	assert.Equal(t, "qwen2.5", s.Ollama.ChatModel)
	assert.Equal(t, "qwen2.5", s.Ollama.CheckModel)

	s.App.LLMProvider = "OpenRouter"
	setChatModel(s, "openai/gpt-4o")
	assert.Equal(t, "openai/gpt-4o", s.OpenRouter.ChatModel)
}
