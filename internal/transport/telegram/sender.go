package telegram

import (
	"bytes"
	"context"
	"errors"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/conv"
	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/sandevgo/taalbot/pkg/retry"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct {
	bot     *tele.Bot
	retrier *retry.Retrier
}

func newSender(bot *tele.Bot) *sender {
	cfg := retry.NewDeliveryConfig()
	cfg.ShouldRetry = shouldRetry
	return &sender{bot: bot, retrier: retry.NewRetrier(cfg)}
}

// shouldRetry accepts network hiccups and Telegram flood limits.
func shouldRetry(err error) bool {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return true
	}
	return retry.IsTransient(err)
}

// deliver sends the text of a reply first, then its audio.
func (s *sender) deliver(ctx context.Context, to tele.Recipient, reply core.Reply) error {
	if reply.Text != "" {
		if err := s.sendMarkdown(ctx, to, reply.Text); err != nil {
			return err
		}
	}
	if reply.Audio != nil {
		return s.sendAudio(ctx, to, reply.Audio)
	}
	return nil
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	logger := log.FromCtx(ctx)
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func() error {
			_, err := s.bot.Send(to, chunk, tele.ModeHTML, tele.NoPreview)
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

func (s *sender) sendAudio(ctx context.Context, to tele.Recipient, a *core.Audio) error {
	err := s.retrier.Do(ctx, func() error {
		audio := &tele.Audio{
			File:     tele.FromReader(bytes.NewReader(a.Data)),
			FileName: a.FileName,
			MIME:     a.MIME,
		}
		_, err := s.bot.Send(to, audio)
		return err
	})
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int("bytes", len(a.Data)).Msg("failed to send telegram audio")
	}
	return err
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
