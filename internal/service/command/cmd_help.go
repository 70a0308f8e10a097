package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/taalbot/internal/core"
)

// StartCommand greets the user with an overview of the tutoring commands.
type StartCommand struct {
	list      func() []core.Command
	formatter *ResponseFormatter
}

func NewStartCommand(list func() []core.Command) *StartCommand {
	return &StartCommand{list: list, formatter: NewResponseFormatter()}
}

func (c *StartCommand) Name() string {
	return "start"
}

func (c *StartCommand) Description() string {
	return "Show what the bot can do"
}

func (c *StartCommand) Execute(ctx context.Context, userID int64, args []string) (core.Reply, error) {
	var items []string
	for _, cmd := range c.list() {
		if cmd.Name() == c.Name() {
			continue
		}
		items = append(items, fmt.Sprintf("/%s — %s", cmd.Name(), cmd.Description()))
	}

	return core.Reply{Text: c.formatter.Combine(
		"👋 Hoi! I'm your bot for learning Dutch.\n",
		c.formatter.List(items),
		c.formatter.Tip("for more about a command, type `/info [command]`, e.g. `/info translation`."),
	)}, nil
}

// InfoCommand explains one command in detail.
type InfoCommand struct {
	formatter *ResponseFormatter
}

func NewInfoCommand() *InfoCommand {
	return &InfoCommand{formatter: NewResponseFormatter()}
}

func (c *InfoCommand) Name() string {
	return "info"
}

func (c *InfoCommand) Description() string {
	return "Explain a command"
}

func (c *InfoCommand) Execute(ctx context.Context, userID int64, args []string) (core.Reply, error) {
	if len(args) == 0 {
		return core.Reply{Text: c.formatter.Combine(
			c.formatter.Usage("/info [command]"),
			c.formatter.Examples([]string{"/info reading", "/info dictate"}),
		)}, nil
	}

	name := strings.ToLower(strings.TrimPrefix(args[0], "/"))
	h, ok := helpTopics[name]
	if !ok {
		return core.Reply{Text: fmt.Sprintf("Unknown command: %s", name)}, nil
	}

	sections := []string{c.formatter.Section(h.emoji, "/"+name, h.text)}
	if h.usage != "" {
		sections = append(sections, c.formatter.Usage(h.usage))
	}
	if len(h.examples) > 0 {
		sections = append(sections, c.formatter.Examples(h.examples))
	}
	return core.Reply{Text: c.formatter.Combine(sections...)}, nil
}
