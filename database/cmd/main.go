package main

import (
	"context"
	"fmt"
	"os"

	"ilovehiphop.ja/configs/configsapp"
	"ilovehiphop.ja/configs/configsdatabase"
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/database"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/repositories"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		migrate bool
		seed    bool
	)

	root := &cobra.Command{
		Use:           "ilhh-db",
		Short:         "Database initialization for the I Love Hip Hop JA API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configsapp.Load(envFile)
			if err != nil {
				return err
			}
			configslog.InitLogger(cfg.Env, cfg.LogLevel)
			configsdatabase.InitDB(cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			configsdatabase.CloseDB()
			configslog.SyncLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configslog.SLog.Info("Running database initialization...")
			return database.Initialize(cmd.Context(), migrate, seed)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional env file loaded before reading the environment")
	root.Flags().BoolVar(&migrate, "migrate", false, "Create the documents table or the MongoDB collections and indexes")
	root.Flags().BoolVar(&seed, "seed", false, "Insert the sample content that is not present yet")

	root.AddCommand(newImportCmd())
	return root
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <kind> <file.json>",
		Short: "Validate and insert content documents from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			docs, err := database.ReadDocuments(f)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ids, err := database.ImportDocuments(ctx, repositories.NewDocumentRepository(), kind, docs)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
