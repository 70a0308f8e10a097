package command

import (
	"context"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/state"
)

// TutorCommand starts or continues a tutoring mode for the calling user.
type TutorCommand struct {
	name        string
	description string
	sessions    *state.Store
	tutor       Tutor
}

func NewTutorCommand(name, description string, sessions *state.Store, t Tutor) *TutorCommand {
	return &TutorCommand{
		name:        name,
		description: description,
		sessions:    sessions,
		tutor:       t,
	}
}

func (c *TutorCommand) Name() string {
	return c.name
}

func (c *TutorCommand) Description() string {
	return c.description
}

func (c *TutorCommand) Execute(ctx context.Context, userID int64, args []string) (core.Reply, error) {
	st, release := c.sessions.Acquire(userID)
	defer release()

	return c.tutor.HandleCommand(ctx, st, c.name, args)
}
