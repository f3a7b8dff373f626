package domain

// Resource is one normalized infrastructure element.
type Resource struct {
	Type       string         // aws_instance, AWS::S3::Bucket, storage
	Name       string         // web_server
	Properties map[string]any // passed through from the source document
}

type SourceFormat string

const (
	FormatTerraform      SourceFormat = "terraform"
	FormatCloudFormation SourceFormat = "cloudformation"
	FormatYAML           SourceFormat = "yaml"
	FormatLiveInventory  SourceFormat = "live"
	FormatGeneric        SourceFormat = "generic"
)

type ExtractionOutcome string

const (
	OutcomeParsed   ExtractionOutcome = "parsed"
	OutcomeFallback ExtractionOutcome = "fallback"
)

// Extraction is the tagged result of reading an infrastructure description.
// When Outcome is OutcomeFallback, Resources holds the sample set and Reason
// explains why the input could not be used.
type Extraction struct {
	Format    SourceFormat
	Outcome   ExtractionOutcome
	Reason    error
	Resources []Resource
	Metadata  map[string]string
}

func (e Extraction) IsFallback() bool {
	return e.Outcome == OutcomeFallback
}
