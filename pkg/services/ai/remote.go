package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Model is a text generation backend.
type Model interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type remoteClient struct {
	model Model
}

func NewRemoteClient(model Model) Client {
	return &remoteClient{model: model}
}

func (c *remoteClient) Mode() string {
	return ModeProduction
}

func (c *remoteClient) Analyze(ctx context.Context, prompt string) string {
	text, err := c.model.Generate(ctx, prompt)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("provider", c.model.Name()).Msg("model invocation failed")
		return degradedResponse
	}
	if strings.TrimSpace(text) == "" {
		return degradedResponse
	}
	return text
}

func (c *remoteClient) SecurityInsight(ctx context.Context, findings []domain.Finding) string {
	var b strings.Builder
	for _, f := range findings {
		fmt.Fprintf(&b, "\n- [%s] %s on %s: %s", f.Severity, f.Type, f.Resource, f.Description)
	}
	return c.Analyze(ctx, "Security assessment for the following findings:"+b.String())
}

func (c *remoteClient) CostInsight(ctx context.Context, resources []domain.Resource) string {
	var b strings.Builder
	for _, r := range resources {
		fmt.Fprintf(&b, "\n- %s (%s)", r.Name, r.Type)
	}
	return c.Analyze(ctx, "Cost optimization for the following resources:"+b.String())
}

func (c *remoteClient) ArchitectureInsight(ctx context.Context, design domain.ArchitectureDesign) string {
	var b strings.Builder
	for _, category := range domain.ServiceCategories {
		for _, m := range design.Mapping[category] {
			source := m.Source
			if source == "" {
				source = m.Component
			}
			fmt.Fprintf(&b, "\n- %s: %s -> %s", category, source, m.Target)
		}
	}
	return c.Analyze(ctx, fmt.Sprintf("Architecture design for %s with mapping:%s", design.TargetCloud, b.String()))
}

func (c *remoteClient) MigrationInsight(ctx context.Context, complexity domain.Complexity) string {
	return c.Analyze(ctx, fmt.Sprintf("Migration strategy for %s complexity", complexity))
}
