package core

import "context"

type CmdRouter interface {
	Handle(ctx context.Context, userID int64, input string) Reply
	ListCommands() []Command
}

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, userID int64, args []string) (Reply, error)
}
