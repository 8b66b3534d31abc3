package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/bareblog"
	"github.com/eringen/bareblog/wxr"
)

var importCmd = &cobra.Command{
	Use:   "import <export.xml>",
	Short: "Replace the data file with the contents of a WordPress WXR export",
	Long: `Parse a WordPress WXR export and write a fresh data file from it.
Whatever the data file held before is gone afterwards; use migrate to add
to an existing site instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bareblog.LoadConfig(configPath)
		if err != nil {
			return err
		}
		ex, err := wxr.ParseFile(args[0])
		if err != nil {
			return err
		}
		store, err := bareblog.NewStore(cfg.DataPath, cfg.Description)
		if err != nil {
			return err
		}
		if err := store.Save(wxr.BuildDocument(ex)); err != nil {
			return err
		}
		logger.Info("import complete",
			zap.Int("posts", len(ex.Posts)),
			zap.Int("pages", len(ex.Pages)),
			zap.String("data", store.Path()))
		return nil
	},
}
