package aws

import (
	"context"
	"fmt"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/extractor"
	"github.com/rs/zerolog"
)

// Discoverer builds a resource inventory from a live AWS account.
type Discoverer interface {
	Discover(ctx context.Context) (domain.Extraction, error)
	GetSupportedResources() []string
}

type discoverer struct {
	collectors []Collector
}

// NewFromProfile wires the EC2, RDS and S3 collectors for an AWS profile.
func NewFromProfile(ctx context.Context, profile, region string) (Discoverer, error) {
	cfg, err := LoadConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}

	return NewDiscoverer(
		NewEC2CollectorFromConfig(cfg),
		NewRDSCollectorFromConfig(cfg),
		NewS3CollectorFromConfig(cfg),
	)
}

func NewDiscoverer(collectors ...Collector) (Discoverer, error) {
	seen := make(map[string]bool, len(collectors))
	for _, c := range collectors {
		rt := c.GetResourceType()
		if seen[rt] {
			return nil, fmt.Errorf("duplicate collector for resource type: %s", rt)
		}
		seen[rt] = true
	}

	if len(collectors) == 0 {
		return nil, fmt.Errorf("at least one collector must be provided")
	}

	return &discoverer{collectors: collectors}, nil
}

// Discover runs every collector in order. An account without resources falls
// back to the sample set like an empty file would.
func (d *discoverer) Discover(ctx context.Context) (domain.Extraction, error) {
	logger := zerolog.Ctx(ctx)

	var resources []domain.Resource
	for _, c := range d.collectors {
		found, err := c.Collect(ctx)
		if err != nil {
			return domain.Extraction{}, fmt.Errorf("%s discovery failed: %w", c.GetResourceType(), err)
		}
		logger.Debug().
			Str("resource_type", c.GetResourceType()).
			Int("count", len(found)).
			Msg("collected live resources")
		resources = append(resources, found...)
	}

	if len(resources) == 0 {
		return extractor.Fallback(ctx, domain.FormatLiveInventory, extractor.ErrEmptyInput), nil
	}

	logger.Info().
		Strs("resource_types", d.GetSupportedResources()).
		Int("resources", len(resources)).
		Msg("live inventory discovered")

	return domain.Extraction{
		Format:    domain.FormatLiveInventory,
		Outcome:   domain.OutcomeParsed,
		Resources: resources,
		Metadata:  map[string]string{"source": "aws"},
	}, nil
}

func (d *discoverer) GetSupportedResources() []string {
	types := make([]string, 0, len(d.collectors))
	for _, c := range d.collectors {
		types = append(types, c.GetResourceType())
	}
	return types
}
