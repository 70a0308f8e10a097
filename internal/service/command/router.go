package command

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/state"
	"github.com/sandevgo/taalbot/internal/service/tutor"
	"github.com/sandevgo/taalbot/pkg/log"
)

// Tutor handles whatever the router does not answer itself.
type Tutor interface {
	HandleCommand(ctx context.Context, st *state.State, name string, argv []string) (core.Reply, error)
	HandleText(ctx context.Context, st *state.State, text string) (core.Reply, error)
}

type Router struct {
	commands map[string]core.Command
	sessions *state.Store
	tutor    Tutor
}

func New(commands []core.Command, sessions *state.Store, t Tutor) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
		sessions: sessions,
		tutor:    t,
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

// Handle answers one message of a user. Errors are logged and turned into
// a notice, so the reply is never empty.
func (r *Router) Handle(ctx context.Context, userID int64, input string) core.Reply {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return r.handleText(ctx, userID, input)
	}

	name, args := parse(input)
	ctx = log.With(ctx, func(l zerolog.Context) zerolog.Context {
		return l.Str("command", name)
	})

	cmd, ok := r.commands[name]
	if !ok {
		return r.fail(ctx, tutor.ErrUnknownCommand)
	}

	reply, err := cmd.Execute(ctx, userID, args)
	if err != nil {
		return r.fail(ctx, err)
	}
	return reply
}

func (r *Router) handleText(ctx context.Context, userID int64, text string) core.Reply {
	st, release := r.sessions.Acquire(userID)
	defer release()

	reply, err := r.tutor.HandleText(ctx, st, text)
	if err != nil {
		return r.fail(ctx, err)
	}
	return reply
}

func (r *Router) fail(ctx context.Context, err error) core.Reply {
	logger := log.FromCtx(ctx)

	var validation *tutor.ValidationError
	var lost *tutor.LostContextError
	switch {
	case errors.As(err, &validation), errors.Is(err, tutor.ErrUnknownCommand):
		logger.Debug().Err(err).Msg("command rejected")
	case errors.As(err, &lost):
		logger.Warn().Err(err).Msg("session reset")
	default:
		logger.Error().Err(err).Msg("request failed")
	}
	return core.Reply{Text: tutor.UserMessage(err)}
}

// ListCommands returns the registered commands sorted by name.
func (r *Router) ListCommands() []core.Command {
	res := make([]core.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		res = append(res, cmd)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name() < res[j].Name()
	})
	return res
}

// parse splits "/name@bot arg1 arg2" into a lower-cased name and its arguments.
func parse(input string) (string, []string) {
	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name), parts[1:]
}
