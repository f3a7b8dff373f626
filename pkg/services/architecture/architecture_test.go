package architecture

import (
	"context"
	"testing"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/extractor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommender_Design(t *testing.T) {
	r := NewRecommender(DefaultCatalog())

	design := r.Design(context.Background(), extractor.SampleResources(), "azure")

	assert.Equal(t, "azure", design.TargetCloud)
	assert.Equal(t, []domain.ServiceMapping{
		{Source: "web-server-1", Target: "Virtual Machines", Configuration: "t3.medium or equivalent"},
	}, design.Mapping[domain.CategoryCompute])
	assert.Equal(t, []domain.ServiceMapping{
		{Source: "primary-db", Target: "Azure SQL", Configuration: "db.t3.medium or equivalent"},
	}, design.Mapping[domain.CategoryDatabase])
	assert.Equal(t, []domain.ServiceMapping{
		{Source: "app-storage", Target: "Blob Storage", Configuration: "Standard storage class"},
	}, design.Mapping[domain.CategoryStorage])
	assert.Equal(t, []domain.ServiceMapping{networkingDefault}, design.Mapping[domain.CategoryNetworking])

	require.Len(t, design.Modernization, 3)
	assert.Equal(t, "Containerization", design.Modernization[0].Type)
	assert.Equal(t, "Serverless", design.Modernization[1].Type)
	assert.Equal(t, "Managed Services", design.Modernization[2].Type)

	require.Len(t, design.Patterns, 3)
	assert.Equal(t, "Multi-AZ Deployment", design.Patterns[1].Name)

	assert.Equal(t, "azure", design.IaC.Provider)
	assert.Equal(t, "terraform", design.IaC.TemplateType)
}

func TestRecommender_MapServices(t *testing.T) {
	r := NewRecommender(nil)

	tests := []struct {
		name      string
		resources []domain.Resource
		cloud     string
		expected  map[domain.ServiceCategory][]string
	}{
		{
			name:      "terraform resources on gcp",
			resources: []domain.Resource{{Type: "aws_instance", Name: "web"}, {Type: "aws_db_instance", Name: "db"}, {Type: "aws_s3_bucket", Name: "bucket"}},
			cloud:     "gcp",
			expected: map[domain.ServiceCategory][]string{
				domain.CategoryCompute: {"Compute Engine", "Compute Engine"},
			},
		},
		{
			name:      "unknown cloud uses aws",
			resources: []domain.Resource{{Type: "database", Name: "db"}, {Type: "block_storage", Name: "vol"}},
			cloud:     "digitalocean",
			expected: map[domain.ServiceCategory][]string{
				domain.CategoryDatabase: {"RDS"},
				domain.CategoryStorage:  {"S3"},
			},
		},
		{
			name:      "first match wins",
			resources: []domain.Resource{{Type: "compute_storage_database", Name: "mixed"}},
			cloud:     "aws",
			expected: map[domain.ServiceCategory][]string{
				domain.CategoryCompute: {"EC2"},
			},
		},
		{
			name:      "unclassified resources are dropped",
			resources: []domain.Resource{{Type: "aws_lambda_function", Name: "fn"}, {Type: "network", Name: "vpc"}},
			cloud:     "aws",
			expected:  map[domain.ServiceCategory][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapping := r.MapServices(tt.resources, tt.cloud)

			require.Len(t, mapping, 4)
			for _, category := range []domain.ServiceCategory{domain.CategoryCompute, domain.CategoryDatabase, domain.CategoryStorage} {
				var targets []string
				for _, m := range mapping[category] {
					targets = append(targets, m.Target)
				}
				assert.Equal(t, tt.expected[category], targets, category)
			}
			assert.Equal(t, []domain.ServiceMapping{networkingDefault}, mapping[domain.CategoryNetworking])
		})
	}
}

func TestModernization_WithoutInstances(t *testing.T) {
	opportunities := Modernization([]domain.Resource{{Type: "compute"}, {Type: "storage"}})
	require.Len(t, opportunities, 2)
	assert.Equal(t, "Serverless", opportunities[0].Type)
}

func TestGenerateIaCTemplate(t *testing.T) {
	expected := []domain.ServiceCategory{
		domain.CategoryCompute, domain.CategoryDatabase, domain.CategoryStorage, domain.CategoryNetworking,
	}

	t.Run("derived mapping", func(t *testing.T) {
		r := NewRecommender(nil)
		mapping := r.MapServices(extractor.SampleResources(), "aws")
		assert.Equal(t, expected, GenerateIaCTemplate(mapping, "aws").Components)
	})

	t.Run("empty categories", func(t *testing.T) {
		mapping := domain.ArchitectureMapping{domain.CategoryNetworking: nil}
		template := GenerateIaCTemplate(mapping, "gcp")
		assert.Equal(t, expected, template.Components)
		assert.Equal(t, "gcp", template.Provider)
	})

	t.Run("components are not shared", func(t *testing.T) {
		template := GenerateIaCTemplate(nil, "aws")
		template.Components[0] = "changed"
		assert.Equal(t, domain.CategoryCompute, domain.ServiceCategories[0])
	})
}

func TestRecommender_ResolveCloud(t *testing.T) {
	r := NewRecommender(nil)
	assert.Equal(t, "gcp", r.ResolveCloud(" GCP "))
	assert.Equal(t, DefaultCloud, r.ResolveCloud("oracle"))

	design := r.Design(context.Background(), []domain.Resource{{Type: "aws_instance", Name: "web"}}, "oracle")
	assert.Equal(t, DefaultCloud, design.TargetCloud)
	assert.Equal(t, "EC2", design.Mapping[domain.CategoryCompute][0].Target)
}
