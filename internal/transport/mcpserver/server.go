// Package mcpserver exposes the tutor and the recency log as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/pkg/log"
)

// UserID is the session owner for every MCP client.
const UserID int64 = -2

type RecentTexts interface {
	Recent(ctx context.Context, kind string) ([]string, error)
}

type handler struct {
	router  core.CmdRouter
	recency RecentTexts
}

func NewServer(router core.CmdRouter, recency RecentTexts) *server.MCPServer {
	h := &handler{router: router, recency: recency}

	s := server.NewMCPServer(strings.ToLower(core.AppName), core.AppVersion)

	s.AddTool(mcp.NewTool("tutor",
		mcp.WithDescription("Send a slash command (e.g. /translate B1 L) or an answer to the Dutch tutor and return its reply."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Command or free text, exactly as a chat user would type it")),
	), h.tutor)

	s.AddTool(mcp.NewTool("list_commands",
		mcp.WithDescription("Lists the tutor commands with their descriptions."),
	), h.listCommands)

	s.AddTool(mcp.NewTool("recent_texts",
		mcp.WithDescription("Returns the translation or dictation texts generated within the recency window."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("translation or dictate")),
	), h.recentTexts)

	return s
}

// Serve blocks until stdin is closed or the process is interrupted.
func Serve(ctx context.Context, s *server.MCPServer) error {
	log.FromCtx(ctx).Info().Msg("serving MCP over stdio")
	return server.ServeStdio(s)
}

func stringArg(request mcp.CallToolRequest, key string) string {
	args, _ := request.Params.Arguments.(map[string]any)
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

func (h *handler) tutor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input := stringArg(request, "input")
	if input == "" {
		return mcp.NewToolResultError("input is required"), nil
	}

	reply := h.router.Handle(ctx, UserID, input)
	text := reply.Text
	if reply.Audio != nil {
		text = strings.TrimSpace(text + "\n\n(an audio clip was generated; it is only delivered in chat)")
	}
	if text == "" {
		text = "(no reply)"
	}
	return mcp.NewToolResultText(text), nil
}

func (h *handler) listCommands(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, cmd := range h.router.ListCommands() {
		fmt.Fprintf(&sb, "/%s - %s\n", cmd.Name(), cmd.Description())
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (h *handler) recentTexts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind := stringArg(request, "kind")
	if kind != core.KindTranslation && kind != core.KindDictate {
		return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q", kind)), nil
	}

	texts, err := h.recency.Recent(ctx, kind)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("kind", kind).Msg("failed to read recency log")
		return mcp.NewToolResultError("could not read the recency log"), nil
	}
	if len(texts) == 0 {
		return mcp.NewToolResultText("Nothing recorded recently."), nil
	}
	return mcp.NewToolResultText(strings.Join(texts, "\n")), nil
}
