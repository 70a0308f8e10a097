package installer

// NewChannelStep selects where learners talk to the tutor.
func NewChannelStep() Step {
	return &ChoiceStep{
		title: "Select your Chat Channel:",
		choices: []choice{
			{label: "Telegram", value: "telegram"},
			{label: "Terminal", value: "cli"},
			{label: "Both", value: "both"},
		},
		apply: func(state *InstallState, value string) {
			state.App.EnableTelegram = value == "telegram" || value == "both"
			state.App.EnableCLI = value == "cli" || value == "both"
		},
	}
}

// NewRecencyBackendStep selects where generated texts are remembered.
func NewRecencyBackendStep() Step {
	return &ChoiceStep{
		title: "Where should recently generated texts be stored?",
		choices: []choice{
			{label: "SQLite database (recommended)", value: "sqlite"},
			{label: "Badger key-value store", value: "badger"},
			{label: "JSON file (memory.json)", value: "file"},
		},
		apply: func(state *InstallState, value string) {
			state.App.RecencyBackend = value
		},
	}
}
