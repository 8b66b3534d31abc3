package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/bareblog"
	"github.com/eringen/bareblog/wxr"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <export.xml>",
	Short: "Add missing pages and settings to an existing data file",
	Long: `Upgrade an existing data file in place: pages found in the export are
added when absent, and missing settings keys get their defaults. Posts are
never modified. The data file must already exist; import creates one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := bareblog.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if _, err := os.Stat(cfg.DataPath); err != nil {
			return fmt.Errorf("data file not found: %s", cfg.DataPath)
		}

		ex, err := wxr.ParseFile(args[0])
		if err != nil {
			return err
		}
		store, err := bareblog.NewStore(cfg.DataPath, cfg.Description)
		if err != nil {
			return err
		}
		doc, err := store.Load()
		if err != nil {
			return err
		}
		added := wxr.Merge(&doc, ex)
		if err := store.Save(doc); err != nil {
			return err
		}

		logger.Info("migration complete",
			zap.Int("pages_added", added),
			zap.Int("posts", len(doc.Posts)),
			zap.Int("pages", len(doc.Pages)),
			zap.Int("nav_links", len(doc.Settings.NavLinks)))
		return nil
	},
}
