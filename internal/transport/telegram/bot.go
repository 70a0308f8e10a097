package telegram

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

const (
	baseContextKey = "base_context"

	accessDenied = "Sorry, you don't have access to this bot."
)

var ErrUnauthorized = errors.New("unauthorized user")

// Authorizer decides who may talk to the bot.
type Authorizer interface {
	IsAuthorized(userID int64) bool
}

type Bot struct {
	bot    *tele.Bot
	router core.CmdRouter
	auth   Authorizer
	sender *sender
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	auth Authorizer,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.FromCtx(ctx).Error().Err(err).Msg("telegram handler failed")
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:    b,
		router: router,
		auth:   auth,
		sender: newSender(b),
	}

	b.Use(bot.withContext(ctx))
	b.Use(bot.recoverer)
	b.Use(bot.authorize)

	// commands are parsed by the router, unregistered ones arrive here too
	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	if err := b.bot.SetCommands(botCommands(b.router.ListCommands())); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to register telegram commands")
	}
	log.FromCtx(ctx).Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func botCommands(commands []core.Command) []tele.Command {
	res := make([]tele.Command, 0, len(commands))
	for _, cmd := range commands {
		res = append(res, tele.Command{Text: cmd.Name(), Description: cmd.Description()})
	}
	return res
}

// withContext gives every update a context carrying a logger with the
// sender and a request id.
func (b *Bot) withContext(base context.Context) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			ctx := log.With(base, func(l zerolog.Context) zerolog.Context {
				l = l.Str("rid", uuid.NewString())
				if s := c.Sender(); s != nil {
					l = l.Int64("user_id", s.ID)
				}
				return l
			})
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	}
}

func (b *Bot) recoverer(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.FromCtx(requestContext(c)).Error().
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				err = nil
			}
		}()
		return next(c)
	}
}

func (b *Bot) authorize(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		s := c.Sender()
		if s == nil || !b.auth.IsAuthorized(s.ID) {
			log.FromCtx(requestContext(c)).Warn().Err(ErrUnauthorized).Msg("rejected update")
			if s == nil {
				return nil
			}
			return c.Send(accessDenied)
		}
		return next(c)
	}
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := requestContext(c)

	_ = c.Notify(tele.Typing)

	reply := b.router.Handle(ctx, c.Sender().ID, c.Text())
	return b.sender.deliver(ctx, c.Recipient(), reply)
}

func requestContext(c tele.Context) context.Context {
	if ctx, ok := c.Get(baseContextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}
