package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lingofeed/lingofeed/internal/database"
	"github.com/lingofeed/lingofeed/internal/feed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <directory>",
		Short: "Import subject YAML files into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := feed.NewImporter(feed.NewDBSubjectRepository(db))
			result, err := importer.ImportDir(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("importer.ImportDir > %w", err)
			}

			color.Green("imported %d subjects", result.Created)
			if result.Skipped > 0 {
				color.Yellow("skipped %d existing subjects", result.Skipped)
			}
			return nil
		},
	}
}
