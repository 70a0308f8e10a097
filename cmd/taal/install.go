package main

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/service/installer"
	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Configure TaalBot interactively",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		state, err := installer.RunWizard()
		if err != nil {
			return err
		}

		runtimePath := config.GetRuntimePath()
		envPath := filepath.Join(runtimePath, ".env")
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().
			Str("provider", state.App.LLMProvider).
			Str("recency_backend", state.App.RecencyBackend).
			Msgf("initialized runtime directory at: %s", runtimePath)
		logger.Info().Msg("Installation complete! You can now run 'taal start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
