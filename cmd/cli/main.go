package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/runtime/terminal"
	"github.com/bharathk2498/migrationgpt/pkg/services/ai"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/services/config"
	"github.com/bharathk2498/migrationgpt/pkg/services/discovery/aws"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(os.Getenv("MIGRATION_CONFIG"))
	if err != nil {
		return err
	}

	prices := pricing.NewStore()
	if cfg.Pricing.File != "" {
		if prices, err = pricing.LoadFile(cfg.Pricing.File); err != nil {
			return fmt.Errorf("failed to load pricing file: %w", err)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: assessment.NewService(
			assessment.WithPricing(prices),
			assessment.WithAIClient(ai.New(ctx, cfg.AI)),
		),
		Prices:   prices,
		Discover: discover,
		Output:   os.Stdout,
	})
	return cli.Execute(ctx)
}

func discover(ctx context.Context, profile, region string) (domain.Extraction, error) {
	d, err := aws.NewFromProfile(ctx, profile, region)
	if err != nil {
		return domain.Extraction{}, err
	}
	return d.Discover(ctx)
}
