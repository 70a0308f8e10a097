package installer

// NewProviderStep selects the language model backend.
func NewProviderStep() Step {
	return &ChoiceStep{
		title: "Select your AI Provider:",
		choices: []choice{
			{label: "OpenAI (chat + speech)", value: "openai"},
			{label: "Google Gemini", value: "gemini"},
			{label: "OpenRouter", value: "openrouter"},
			{label: "Ollama (local)", value: "ollama"},
		},
		apply: func(state *InstallState, value string) {
			state.App.LLMProvider = value
		},
	}
}
