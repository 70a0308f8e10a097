package command

import (
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/state"
)

// NewRouter registers the help commands and one command per tutoring mode.
func NewRouter(sessions *state.Store, t Tutor) *Router {
	r := New(nil, sessions, t)
	for _, cmd := range NewCommands(sessions, t, r.ListCommands) {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

func NewCommands(sessions *state.Store, t Tutor, list func() []core.Command) []core.Command {
	commands := []core.Command{
		NewStartCommand(list),
		NewInfoCommand(),
	}
	for _, name := range tutorCommands {
		commands = append(commands, NewTutorCommand(name, helpTopics[name].description, sessions, t))
	}
	return commands
}
