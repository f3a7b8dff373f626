package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	handlers "github.com/bharathk2498/migrationgpt/pkg/handlers/analysis"
	"github.com/bharathk2498/migrationgpt/pkg/server"
	"github.com/bharathk2498/migrationgpt/pkg/services/ai"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/services/config"
	"github.com/bharathk2498/migrationgpt/pkg/services/discovery/aws"
	"github.com/bharathk2498/migrationgpt/pkg/store/duckdb"
	"github.com/bharathk2498/migrationgpt/pkg/store/duckdb/analysis"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
	"github.com/bharathk2498/migrationgpt/pkg/store/upload"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the migration assessment API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (yaml, toml or json); MIGRATION_* environment variables override it")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := duckdb.NewDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	store, err := analysis.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create analysis store: %w", err)
	}

	prices, err := loadPricing(cfg.Pricing)
	if err != nil {
		return err
	}

	archive, err := newArchive(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create upload archive: %w", err)
	}

	aiClient := ai.New(ctx, cfg.AI)
	svc := assessment.NewService(
		assessment.WithAIClient(aiClient),
		assessment.WithPricing(prices),
	)

	logger.Info().
		Str("ai_mode", aiClient.Mode()).
		Str("db", cfg.DB.DbPath).
		Str("upload_backend", cfg.Upload.Backend).
		Strs("clouds", prices.ListClouds()).
		Msg("configuration loaded")

	web := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		Dependencies: server.Dependencies{
			Analysis: handlers.NewHandler(svc, store,
				handlers.WithArchive(archive),
				handlers.WithMode(aiClient.Mode()),
			),
			Logger: logger,
		},
	})

	return web.Start(ctx)
}

func loadPricing(cfg config.Pricing) (pricing.Store, error) {
	if cfg.File == "" {
		return pricing.NewStore(), nil
	}
	prices, err := pricing.LoadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing file: %w", err)
	}
	return prices, nil
}

func newArchive(ctx context.Context, cfg *config.Config) (upload.Archive, error) {
	switch cfg.Upload.Backend {
	case upload.BackendS3:
		awsCfg, err := aws.LoadConfig(ctx, cfg.AWS.Profile, cfg.AWS.Region)
		if err != nil {
			return nil, err
		}
		return upload.NewS3ArchiveFromConfig(awsCfg, cfg.Upload.Bucket, cfg.Upload.Prefix)
	case upload.BackendNone:
		return upload.Discard{}, nil
	default:
		return upload.NewLocalArchive(cfg.Upload.Dir)
	}
}
