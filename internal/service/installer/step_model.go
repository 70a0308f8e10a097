package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandevgo/taalbot/internal/providers/llm"
)

// Gemini has no OpenAI-style listing endpoint in our client.
var geminiModels = []llm.ModelInfo{
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash"},
	{ID: "gemini-2.5-flash-lite", Name: "Gemini 2.5 Flash Lite"},
	{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro"},
}

type modelsMsg []list.Item

type item struct {
	id    string
	title string
	desc  string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.id }

// ModelStep selects the chat model of the chosen provider.
type ModelStep struct {
	list     list.Model
	loading  bool
	fetching bool
	err      error
}

func NewModelStep() Step {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select Chat Model"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return &ModelStep{
		list:    l,
		loading: true,
	}
}

func (s *ModelStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func fetchModels(state *InstallState) tea.Cmd {
	provider := state.provider()
	openai, openrouter, ollama := state.OpenAI, state.OpenRouter, state.Ollama

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var (
			models []llm.ModelInfo
			err    error
		)
		switch provider {
		case "gemini":
			models = geminiModels
		case "openrouter":
			models, err = llm.NewOpenRouter(&openrouter).Models(ctx)
		case "ollama":
			models, err = llm.NewOllama(&ollama).Models(ctx)
		default:
			if openai.BaseURL == "" {
				openai.BaseURL = "https://api.openai.com"
			}
			models, err = llm.NewOpenAI(&openai).Models(ctx)
		}
		if err != nil {
			return errMsg(err)
		}
		return modelsMsg(toItems(models))
	}
}

func toItems(models []llm.ModelInfo) []list.Item {
	items := make([]list.Item, 0, len(models))
	for _, m := range models {
		desc := "ID: " + m.ID
		if m.ContextLength > 0 {
			desc = fmt.Sprintf("ID: %s | Context: %d", m.ID, m.ContextLength)
		}
		items = append(items, item{id: m.ID, title: m.Name, desc: desc})
	}
	return items
}

func setChatModel(state *InstallState, id string) {
	switch state.provider() {
	case "gemini":
		state.Gemini.ChatModel = id
	case "openrouter":
		state.OpenRouter.ChatModel = id
	case "ollama":
		state.Ollama.ChatModel = id
		state.Ollama.CheckModel = id
	default:
		state.OpenAI.ChatModel = id
	}
}

func (s *ModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.loading && !s.fetching {
		s.fetching = true
		return s, fetchModels(state)
	}

	s.list.SetSize(width, height-4)

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case modelsMsg:
		s.list.SetItems(msg)
		s.loading = false
		s.fetching = false
		return s, nil

	case errMsg:
		s.loading = false
		s.fetching = false
		s.err = msg
		return s, nil

	case tea.KeyMsg:
		if s.err != nil {
			switch msg.String() {
			case "enter":
				s.err = nil
				s.loading = true
				return s, func() tea.Msg { return nextMsg{} }
			case "s":
				// keep the provider default
				return nil, nil
			}
			return s, nil
		}

		if msg.String() == "enter" {
			wasFiltering := s.list.FilterState() == list.Filtering
			s.list, cmd = s.list.Update(msg)

			if wasFiltering || s.list.FilterState() == list.Filtering {
				return s, cmd
			}

			if i, ok := s.list.SelectedItem().(item); ok {
				setChatModel(state, i.id)
				return nil, nil
			}
			return s, cmd
		}
	}

	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *ModelStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error fetching models: %v", s.err)) +
			"\n\nCheck your API key and connection.\n\n(press enter to retry, s to keep the default model, ctrl+c to quit)\n"
	}
	if s.loading {
		return "Fetching models...\n"
	}
	return s.list.View()
}
