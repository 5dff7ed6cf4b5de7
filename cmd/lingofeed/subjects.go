package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lingofeed/lingofeed/internal/database"
	"github.com/lingofeed/lingofeed/internal/feed"
)

func newSubjectsCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "subjects",
		Short: "Inspect the subject catalog",
	}

	var (
		page       int
		limit      int
		categories []string
		language   string
	)
	listCommand := &cobra.Command{
		Use:   "list",
		Short: "List subjects, newest first",
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

			repo := feed.NewDBSubjectRepository(db)
			subjects, err := repo.List(cmd.Context(), feed.ListParams{
				Page:       page,
				Limit:      limit,
				Categories: categories,
				Language:   language,
			})
			if err != nil {
				return fmt.Errorf("repo.List > %w", err)
			}

			if len(subjects) == 0 {
				color.Yellow("no subjects found")
				return nil
			}
			for _, subject := range subjects {
				color.Cyan("%s [%s]", subject.ID, subject.Category)
				fmt.Println(strings.TrimSpace(subject.SourceText))
			}
			return nil
		},
	}
	listCommand.Flags().IntVar(&page, "page", 0, "page number")
	listCommand.Flags().IntVar(&limit, "limit", 20, "page size")
	listCommand.Flags().StringSliceVar(&categories, "categories", nil, "filter by categories")
	listCommand.Flags().StringVar(&language, "language", "", "filter by source language")

	rootCommand.AddCommand(listCommand)
	return rootCommand
}
