package installer

// NewAPIKeyStep collects the key of the chosen provider. Ollama runs without one.
func NewAPIKeyStep() Step {
	s := newInputStep(inputOptions{placeholder: "sk-...", secret: true})
	s.title = func(state *InstallState) string {
		switch state.provider() {
		case "gemini":
			return "Enter your Gemini API Key"
		case "openrouter":
			return "Enter your OpenRouter API Key"
		case "ollama":
			return "Enter your Ollama API Key"
		default:
			return "Enter your OpenAI API Key"
		}
	}
	s.skip = func(state *InstallState) bool {
		return state.provider() == "ollama"
	}
	s.apply = func(state *InstallState, value string) error {
		switch state.provider() {
		case "gemini":
			state.Gemini.APIKey = value
		case "openrouter":
			state.OpenRouter.APIKey = value
		default:
			state.OpenAI.APIKey = value
		}
		return nil
	}
	return s
}

// NewOllamaURLStep asks where the local Ollama server listens.
func NewOllamaURLStep() Step {
	s := newInputStep(inputOptions{placeholder: "http://127.0.0.1:11434", optional: true})
	s.title = func(*InstallState) string { return "Enter Ollama Base URL" }
	s.skip = func(state *InstallState) bool {
		return state.provider() != "ollama"
	}
	s.apply = func(state *InstallState, value string) error {
		if value == "" {
			value = "http://127.0.0.1:11434"
		}
		state.Ollama.BaseURL = value
		return nil
	}
	return s
}

// NewSpeechKeyStep asks for an OpenAI key used for audio when the chat
// provider cannot synthesise speech.
func NewSpeechKeyStep() Step {
	s := newInputStep(inputOptions{placeholder: "sk-...", secret: true, optional: true})
	s.title = func(*InstallState) string {
		return "Dictation and reading audio use OpenAI. Enter an OpenAI API Key"
	}
	s.skip = func(state *InstallState) bool {
		return state.provider() == "openai"
	}
	s.apply = func(state *InstallState, value string) error {
		state.OpenAI.APIKey = value
		return nil
	}
	return s
}
