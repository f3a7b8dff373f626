package extractor

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

var (
	ErrNotFound          = errors.New("infrastructure file not found")
	ErrParse             = errors.New("infrastructure file could not be parsed")
	ErrEmptyInput        = errors.New("no recognizable resources in input")
	ErrUnsupportedFormat = errors.New("unsupported infrastructure format")
)

// Extractor turns infrastructure descriptions into resource records.
// ExtractContent never fails: when the input is unusable it returns the
// sample resource set tagged as a fallback, with the cause in Reason.
type Extractor interface {
	ExtractContent(ctx context.Context, name string, content []byte) domain.Extraction
}

type contentExtractor struct{}

func NewExtractor() Extractor {
	return &contentExtractor{}
}

func (e *contentExtractor) ExtractContent(ctx context.Context, name string, content []byte) domain.Extraction {
	extraction, err := ExtractStrict(ctx, name, content)
	if err != nil {
		return Fallback(ctx, FormatFromPath(name), err)
	}
	return extraction
}

// ExtractStrict parses content whose format is taken from name. Unlike
// ExtractContent it reports why the input could not be used instead of
// substituting sample data.
func ExtractStrict(ctx context.Context, name string, content []byte) (domain.Extraction, error) {
	format := FormatFromPath(name)

	resources, err := Parse(format, content)
	if err != nil {
		return domain.Extraction{}, err
	}

	zerolog.Ctx(ctx).Info().
		Str("format", string(format)).
		Int("resources", len(resources)).
		Msg("infrastructure extracted")

	return domain.Extraction{
		Format:    format,
		Outcome:   domain.OutcomeParsed,
		Resources: resources,
		Metadata: map[string]string{
			"file_name": filepath.Base(name),
			"file_size": strconv.Itoa(len(content)),
		},
	}, nil
}

// Parse decodes content of the given format.
func Parse(format domain.SourceFormat, content []byte) ([]domain.Resource, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, ErrEmptyInput
	}

	switch format {
	case domain.FormatTerraform:
		return parseTerraform(string(content))
	case domain.FormatCloudFormation:
		return parseCloudFormationJSON(content)
	case domain.FormatYAML:
		return parseCloudFormationYAML(content)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// FormatFromPath picks the source format from the file extension.
func FormatFromPath(path string) domain.SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tf":
		return domain.FormatTerraform
	case ".json":
		return domain.FormatCloudFormation
	case ".yaml", ".yml":
		return domain.FormatYAML
	default:
		return domain.FormatGeneric
	}
}

// Fallback tags the sample resource set with the reason the real input was unusable.
func Fallback(ctx context.Context, format domain.SourceFormat, reason error) domain.Extraction {
	zerolog.Ctx(ctx).Warn().
		Err(reason).
		Str("format", string(format)).
		Msg("falling back to sample resources")

	return domain.Extraction{
		Format:    domain.FormatGeneric,
		Outcome:   domain.OutcomeFallback,
		Reason:    reason,
		Resources: SampleResources(),
		Metadata:  map[string]string{"note": "Sample analysis results"},
	}
}

// SampleResources is the resource set used when the input cannot be read.
func SampleResources() []domain.Resource {
	return []domain.Resource{
		{
			Type:       "compute_instance",
			Name:       "web-server-1",
			Properties: map[string]any{"instance_type": "t3.medium", "os": "ubuntu-22.04"},
		},
		{
			Type:       "database",
			Name:       "primary-db",
			Properties: map[string]any{"engine": "postgresql", "version": "14"},
		},
		{
			Type:       "storage",
			Name:       "app-storage",
			Properties: map[string]any{"size": "500GB", "type": "ssd"},
		},
		{
			Type:       "network",
			Name:       "vpc-main",
			Properties: map[string]any{"cidr": "10.0.0.0/16"},
		},
	}
}
