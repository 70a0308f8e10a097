package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/chzyer/readline"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/conv"
	"github.com/sandevgo/taalbot/pkg/log"
)

// localUserID owns the terminal session. Telegram ids are positive.
const localUserID int64 = -1

type ReadLine struct {
	cfg      core.AppConfig
	router   core.CmdRouter
	rl       *readline.Instance
	renderer *glamour.TermRenderer
}

func NewReadLine(router core.CmdRouter, cfg core.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "taal> ",
		HistoryFile:     cfg.GetHistoryFilePath(),
		AutoComplete:    completer(router.ListCommands()),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	// nil renderer falls back to plain text
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return &ReadLine{
		cfg:      cfg,
		router:   router,
		rl:       rl,
		renderer: renderer,
	}, nil
}

func completer(commands []core.Command) *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, cmd := range commands {
		items = append(items, readline.PcItem("/"+cmd.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine tutor started. Type /start for help, 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply := r.router.Handle(ctx, localUserID, line)
		r.print(ctx, reply)
	}
}

func (r *ReadLine) print(ctx context.Context, reply core.Reply) {
	out := r.rl.Stdout()

	if reply.Text != "" {
		fmt.Fprintf(out, "%s\n", r.render(reply.Text))
	}

	if reply.Audio != nil {
		path, err := r.saveAudio(reply.Audio)
		if err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("failed to save audio")
			return
		}
		fmt.Fprintf(out, "🔊 %s\n", path)
	}
}

func (r *ReadLine) render(md string) string {
	if r.renderer != nil {
		if out, err := r.renderer.Render(md); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	text, err := conv.MarkdownToPlainText([]byte(md))
	if err != nil || text == "" {
		return md
	}
	return text
}

// saveAudio writes audio under the runtime directory so it can be played
// with any local player.
func (r *ReadLine) saveAudio(a *core.Audio) (string, error) {
	dir := filepath.Join(r.cfg.GetRuntimePath(), "audio")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, time.Now().Format("20060102-150405")+"-"+a.FileName)
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
