package main

import (
	"context"
	"os"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/transport/mcpserver"
	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/sandevgo/taalbot/pkg/srv"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:          "mcp",
	Short:        "Serve the tutor as MCP tools over stdio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol
		ctx, flushLog := log.NewContextWithWriter(cmd.Context(), os.Stderr, debug || config.IsDebug())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		c := newTutorCore(ctx, config.NewAppConfig(ctx))

		ctx, cancel := context.WithCancel(ctx)
		srv.StartServices(ctx, c.services)

		err := mcpserver.Serve(ctx, mcpserver.NewServer(c.router, c.recency))

		cancel()
		srv.ShutdownServices(ctx, c.services)
		return err
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
