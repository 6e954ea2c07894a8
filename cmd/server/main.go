package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ilovehiphop.ja/configs/configsapp"
	"ilovehiphop.ja/configs/configsdatabase"
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/repositories"
	"ilovehiphop.ja/routes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
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
		port    string
	)

	cmd := &cobra.Command{
		Use:           "ilhh-api",
		Short:         "I Love Hip Hop JA content and conversion API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(envFile, port)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional env file loaded before reading the environment")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Listening port (overrides PORT)")
	return cmd
}

func serve(envFile, port string) error {
	cfg, err := configsapp.Load(envFile)
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	configslog.InitLogger(cfg.Env, cfg.LogLevel)
	defer configslog.SyncLogger()

	configsdatabase.InitDB(cfg)
	defer configsdatabase.CloseDB()

	app := routes.NewApp(routes.NewServices(cfg, repositories.NewDocumentRepository()))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Shutting down...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("%s listening on :%s", configsapp.AppName, cfg.Port)
	return app.Listen("0.0.0.0:" + cfg.Port)
}
