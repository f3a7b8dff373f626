package extractor

import (
	"context"
	"testing"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resourceTypes(resources []domain.Resource) []string {
	types := make([]string, 0, len(resources))
	for _, r := range resources {
		types = append(types, r.Type)
	}
	return types
}

func TestParse_Terraform(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedTypes []string
		expectedErr   error
	}{
		{
			name:          "single instance",
			content:       `resource "aws_instance" "web" { ami = "ami-123" }`,
			expectedTypes: []string{"aws_instance"},
		},
		{
			name: "repeated keyword yields one record",
			content: `resource "aws_instance" "a" {}
resource "aws_instance" "b" {}
resource "aws_instance" "c" {}`,
			expectedTypes: []string{"aws_instance"},
		},
		{
			name: "all signatures",
			content: `resource "aws_s3_bucket" "logs" {}
resource "aws_db_instance" "db" {}
resource "aws_instance" "web" {}`,
			expectedTypes: []string{"aws_instance", "aws_db_instance", "aws_s3_bucket"},
		},
		{
			name:        "no known resources",
			content:     `resource "google_compute_instance" "vm" {}`,
			expectedErr: ErrEmptyInput,
		},
		{
			name:        "blank file",
			content:     "   \n\t",
			expectedErr: ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources, err := Parse(domain.FormatTerraform, []byte(tt.content))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTypes, resourceTypes(resources))
		})
	}
}

func TestParse_TerraformRecordsAreIndependent(t *testing.T) {
	first, err := Parse(domain.FormatTerraform, []byte("aws_instance"))
	require.NoError(t, err)
	first[0].Properties["instance_type"] = "m5.large"

	second, err := Parse(domain.FormatTerraform, []byte("aws_instance"))
	require.NoError(t, err)
	assert.Equal(t, "t3.medium", second[0].Properties["instance_type"])
}

func TestParse_CloudFormationJSON(t *testing.T) {
	content := `{
  "AWSTemplateFormatVersion": "2010-09-09",
  "Resources": {
    "WebServer": {"Type": "AWS::EC2::Instance", "Properties": {"InstanceType": "t3.large"}},
    "AppBucket": {"Type": "AWS::S3::Bucket"},
    "Mystery": {}
  }
}`
	resources, err := Parse(domain.FormatCloudFormation, []byte(content))
	require.NoError(t, err)
	require.Len(t, resources, 3)

	assert.Equal(t, domain.Resource{Type: "AWS::S3::Bucket", Name: "AppBucket", Properties: map[string]any{}}, resources[0])
	assert.Equal(t, "Unknown", resources[1].Type)
	assert.Equal(t, "Mystery", resources[1].Name)
	assert.Equal(t, "WebServer", resources[2].Name)
	assert.Equal(t, "t3.large", resources[2].Properties["InstanceType"])
}

func TestParse_CloudFormationJSONErrors(t *testing.T) {
	_, err := Parse(domain.FormatCloudFormation, []byte(`{"Resources": [`))
	assert.ErrorIs(t, err, ErrParse)

	_, err = Parse(domain.FormatCloudFormation, []byte(`{"Resources": {}}`))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestParse_YAML(t *testing.T) {
	content := `Resources:
  Database:
    Type: AWS::RDS::DBInstance
    Properties:
      Engine: postgres
  Network:
    Type: AWS::EC2::VPC
`
	resources, err := Parse(domain.FormatYAML, []byte(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"AWS::RDS::DBInstance", "AWS::EC2::VPC"}, resourceTypes(resources))
	assert.Equal(t, "postgres", resources[0].Properties["Engine"])

	_, err = Parse(domain.FormatYAML, []byte("- just\n- a list\n"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse(domain.FormatGeneric, []byte("anything"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, domain.FormatTerraform, FormatFromPath("main.tf"))
	assert.Equal(t, domain.FormatCloudFormation, FormatFromPath("stack.JSON"))
	assert.Equal(t, domain.FormatYAML, FormatFromPath("stack.yml"))
	assert.Equal(t, domain.FormatYAML, FormatFromPath("stack.yaml"))
	assert.Equal(t, domain.FormatGeneric, FormatFromPath("README.md"))
}

func TestExtractContent(t *testing.T) {
	ctx := context.Background()
	ex := NewExtractor()

	t.Run("parsed terraform", func(t *testing.T) {
		extraction := ex.ExtractContent(ctx, "infra/main.tf", []byte(`resource "aws_db_instance" "db" {}`))

		assert.Equal(t, domain.OutcomeParsed, extraction.Outcome)
		assert.NoError(t, extraction.Reason)
		assert.Equal(t, domain.FormatTerraform, extraction.Format)
		assert.Equal(t, []string{"aws_db_instance"}, resourceTypes(extraction.Resources))
		assert.Equal(t, "main.tf", extraction.Metadata["file_name"])
	})

	t.Run("empty content", func(t *testing.T) {
		extraction := ex.ExtractContent(ctx, "empty.tf", nil)

		assert.True(t, extraction.IsFallback())
		assert.ErrorIs(t, extraction.Reason, ErrEmptyInput)
		assert.Equal(t, SampleResources(), extraction.Resources)
	})

	t.Run("malformed json", func(t *testing.T) {
		extraction := ex.ExtractContent(ctx, "stack.json", []byte("{not json"))

		assert.True(t, extraction.IsFallback())
		assert.ErrorIs(t, extraction.Reason, ErrParse)
	})

	t.Run("unknown extension", func(t *testing.T) {
		extraction := ex.ExtractContent(ctx, "infra.txt", []byte("aws_instance"))

		assert.True(t, extraction.IsFallback())
		assert.ErrorIs(t, extraction.Reason, ErrUnsupportedFormat)
	})
}

func TestExtractStrict(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		fileName string
		content  string
		wantErr  error
		types    []string
	}{
		{"terraform", "main.tf", `resource "aws_s3_bucket" "logs" {}`, nil, []string{"aws_s3_bucket"}},
		{"no matching blocks", "main.tf", `variable "region" {}`, ErrEmptyInput, nil},
		{"broken yaml", "stack.yaml", "Resources: [", ErrParse, nil},
		{"no file name", "", `resource "aws_instance" "web" {}`, ErrUnsupportedFormat, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extraction, err := ExtractStrict(ctx, tt.fileName, []byte(tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, extraction.Resources)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.OutcomeParsed, extraction.Outcome)
			assert.Equal(t, tt.types, resourceTypes(extraction.Resources))
		})
	}
}
