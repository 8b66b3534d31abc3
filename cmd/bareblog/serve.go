package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/bareblog"
	"github.com/eringen/bareblog/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the blog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bareblog.LoadConfig(configPath)
		if err != nil {
			return err
		}
		logger.Info("starting bareblog",
			zap.String("addr", cfg.Addr),
			zap.String("data", cfg.DataPath))

		app := bareblog.New(cfg, views.Funcs(), bareblog.WithLogger(logger))
		defer app.Close()
		return app.Start()
	},
}
