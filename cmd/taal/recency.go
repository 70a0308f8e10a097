package main

import (
	"context"
	"fmt"

	"github.com/sandevgo/taalbot/internal/config"
	"github.com/sandevgo/taalbot/internal/core"
	"github.com/sandevgo/taalbot/internal/service/recency"
	"github.com/sandevgo/taalbot/internal/service/ui"
	"github.com/sandevgo/taalbot/internal/storage/file"
	"github.com/sandevgo/taalbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	listDays   int
	retainDays int
)

var recencyCmd = &cobra.Command{
	Use:   "recency",
	Short: "Inspect and maintain the recency log",
}

var recencyImportCmd = &cobra.Command{
	Use:          "import <memory.json>",
	Short:        "Import a legacy memory.json document into the configured backend",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: withRecencyStore(func(ctx context.Context, store *recency.Store, args []string) error {
		doc, err := file.ReadDocument(args[0])
		if err != nil {
			return err
		}
		n, err := store.Import(ctx, doc)
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d texts from %s\n", n, args[0])
		return nil
	}),
}

var recencyListCmd = &cobra.Command{
	Use:          "list <translation|dictate>",
	Short:        "Print the texts recorded within the window",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: withRecencyStore(func(ctx context.Context, store *recency.Store, args []string) error {
		kind := args[0]
		if kind != core.KindTranslation && kind != core.KindDictate {
			return fmt.Errorf("unknown kind %q", kind)
		}

		var (
			texts []string
			err   error
		)
		if listDays > 0 {
			texts, err = store.RecentWithin(ctx, kind, listDays)
		} else {
			texts, err = store.Recent(ctx, kind)
		}
		if err != nil {
			return err
		}

		fmt.Println(ui.TitleStyle.Render(fmt.Sprintf("%s (%d)", kind, len(texts))))
		for _, text := range texts {
			fmt.Println(ui.DescStyle.Render("• ") + text)
		}
		return nil
	}),
}

var recencyPruneCmd = &cobra.Command{
	Use:          "prune",
	Short:        "Remove entries older than --days",
	SilenceUsage: true,
	RunE: withRecencyStore(func(ctx context.Context, store *recency.Store, args []string) error {
		n, err := store.Prune(ctx, retainDays)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d texts\n", n)
		return nil
	}),
}

func withRecencyStore(run func(ctx context.Context, store *recency.Store, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		store, err := initRecency(ctx, config.NewAppConfig(ctx))
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.FromCtx(ctx).Warn().Err(err).Msg("failed to close recency log")
			}
		}()

		return run(ctx, store, args)
	}
}

func init() {
	recencyListCmd.Flags().IntVar(&listDays, "days", 0, "window in days (default: RECENCY_WINDOW_DAYS)")
	recencyPruneCmd.Flags().IntVar(&retainDays, "days", 30, "keep entries from the last N days")

	recencyCmd.AddCommand(recencyImportCmd, recencyListCmd, recencyPruneCmd)
	rootCmd.AddCommand(recencyCmd)
}
