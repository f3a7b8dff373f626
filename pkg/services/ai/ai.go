package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	ModeDemo       = "demo"
	ModeProduction = "production"

	ProviderBedrock = "bedrock"
	ProviderGemini  = "gemini"

	DefaultBedrockModel = "anthropic.claude-3-5-sonnet-20241022-v2:0"
	DefaultGeminiModel  = "gemini-2.0-flash"

	// degradedResponse is returned when a remote model call fails.
	degradedResponse = "Analysis completed with limited AI capabilities."
)

// Client produces free-form commentary on assessment results. Insights never
// fail; remote errors degrade to a fixed sentence.
type Client interface {
	Mode() string
	Analyze(ctx context.Context, prompt string) string
	SecurityInsight(ctx context.Context, findings []domain.Finding) string
	CostInsight(ctx context.Context, resources []domain.Resource) string
	ArchitectureInsight(ctx context.Context, design domain.ArchitectureDesign) string
	MigrationInsight(ctx context.Context, complexity domain.Complexity) string
}

type Config struct {
	Mode     string `mapstructure:"mode"`
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
	APIKey   string `mapstructure:"api_key"`
	Region   string `mapstructure:"region"`
	Profile  string `mapstructure:"profile"`
}

// New selects the client once for the process lifetime. A production client
// that cannot be built falls back to demo mode.
func New(ctx context.Context, cfg Config) Client {
	logger := zerolog.Ctx(ctx)

	if !strings.EqualFold(cfg.Mode, ModeProduction) {
		logger.Info().Msg("AI client running in demo mode")
		return NewDemoClient(nil)
	}

	model, err := newModel(ctx, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to initialize AI provider, falling back to demo mode")
		return NewDemoClient(nil)
	}

	logger.Info().Str("provider", model.Name()).Msg("AI client running in production mode")
	return NewRemoteClient(model)
}

func newModel(ctx context.Context, cfg Config) (Model, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderBedrock:
		return NewBedrockModel(ctx, cfg)
	case ProviderGemini:
		return NewGeminiModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
