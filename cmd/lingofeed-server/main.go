package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/lingofeed/lingofeed/internal/bootstrap"
	"github.com/lingofeed/lingofeed/internal/config"
	"github.com/lingofeed/lingofeed/internal/database"
	"github.com/lingofeed/lingofeed/internal/feed"
	"github.com/lingofeed/lingofeed/internal/provider/deepl"
	"github.com/lingofeed/lingofeed/internal/provider/gemini"
	"github.com/lingofeed/lingofeed/internal/resolver"
	"github.com/lingofeed/lingofeed/internal/server"
)

var (
	configFile string
	runMigrate bool
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "lingofeed-server",
		Short:         "Lingofeed content resolution HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&runMigrate, "migrate", false, "apply pending schema migrations before serving")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	if err := bootstrap.WaitForDatabase(ctx, db); err != nil {
		return fmt.Errorf("bootstrap.WaitForDatabase() > %w", err)
	}

	if runMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("database.Migrate() > %w", err)
		}
	}

	generator := gemini.NewClient(cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.Model)
	app.AddShutdownHook(func(ctx context.Context) error {
		return generator.Close()
	})
	translator := deepl.NewClient(cfg.Providers.DeepL.APIKey, cfg.Providers.DeepL.BaseURL)
	app.AddShutdownHook(func(ctx context.Context) error {
		return translator.Close()
	})

	subjects := feed.NewDBSubjectRepository(db)
	cacheStore := resolver.NewDBCacheStore(db)
	res := resolver.New(cacheStore, subjects, generator, translator)

	mux := http.NewServeMux()
	server.NewHandler(res, subjects).Register(mux)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins),
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
