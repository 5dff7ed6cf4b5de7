package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lingofeed/lingofeed/internal/config"
)

var configFile string

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lingofeed",
		Short:         "Administration commands for the lingofeed backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	rootCmd.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newSubjectsCommand(),
	)
	return rootCmd
}

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}
