package architecture

import (
	"context"
	"slices"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Recommender struct {
	catalog Catalog
}

func NewRecommender(catalog Catalog) *Recommender {
	if len(catalog) == 0 {
		catalog = DefaultCatalog()
	}
	return &Recommender{catalog: catalog}
}

// ResolveCloud returns the cloud the catalog will be read for; unknown clouds
// resolve to the default one.
func (r *Recommender) ResolveCloud(cloud string) string {
	cloud = strings.ToLower(strings.TrimSpace(cloud))
	if _, ok := r.catalog[cloud]; ok {
		return cloud
	}
	return DefaultCloud
}

func (r *Recommender) Design(ctx context.Context, resources []domain.Resource, targetCloud string) domain.ArchitectureDesign {
	cloud := r.ResolveCloud(targetCloud)
	mapping := r.MapServices(resources, cloud)

	zerolog.Ctx(ctx).Info().
		Str("target_cloud", cloud).
		Int("compute", len(mapping[domain.CategoryCompute])).
		Int("database", len(mapping[domain.CategoryDatabase])).
		Int("storage", len(mapping[domain.CategoryStorage])).
		Msg("architecture designed")

	return domain.ArchitectureDesign{
		TargetCloud:   cloud,
		Mapping:       mapping,
		Modernization: Modernization(resources),
		Patterns:      Patterns(),
		IaC:           GenerateIaCTemplate(mapping, cloud),
	}
}

// MapServices routes every resource to the preferred managed service of its
// category. Resources matching no category are left out; networking always
// gets a synthesized VPC entry.
func (r *Recommender) MapServices(resources []domain.Resource, cloud string) domain.ArchitectureMapping {
	services := r.catalog[r.ResolveCloud(cloud)]

	mapping := make(domain.ArchitectureMapping, len(domain.ServiceCategories))
	for _, category := range domain.ServiceCategories {
		mapping[category] = []domain.ServiceMapping{}
	}

	for _, resource := range resources {
		c, ok := classify(resource.Type)
		if !ok {
			continue
		}

		name := resource.Name
		if name == "" {
			name = "unknown"
		}
		mapping[c.category] = append(mapping[c.category], domain.ServiceMapping{
			Source:        name,
			Target:        preferred(services[c.category]),
			Configuration: c.configuration,
		})
	}

	if len(mapping[domain.CategoryNetworking]) == 0 {
		mapping[domain.CategoryNetworking] = append(mapping[domain.CategoryNetworking], networkingDefault)
	}
	return mapping
}

func classify(resourceType string) (classification, bool) {
	t := strings.ToLower(resourceType)
	for _, c := range classifications {
		for _, k := range c.keywords {
			if strings.Contains(t, k) {
				return c, true
			}
		}
	}
	return classification{}, false
}

func preferred(services []string) string {
	if len(services) == 0 {
		return ""
	}
	return services[0]
}

func Modernization(resources []domain.Resource) []domain.ModernizationOpportunity {
	var out []domain.ModernizationOpportunity
	for _, r := range resources {
		if strings.Contains(strings.ToLower(r.Type), "instance") {
			out = append(out, cloneOpportunity(containerization))
			break
		}
	}
	for _, o := range standardModernization {
		out = append(out, cloneOpportunity(o))
	}
	return out
}

func cloneOpportunity(o domain.ModernizationOpportunity) domain.ModernizationOpportunity {
	o.Benefits = slices.Clone(o.Benefits)
	return o
}

func Patterns() []domain.ArchitecturePattern {
	out := make([]domain.ArchitecturePattern, 0, len(patterns))
	for _, p := range patterns {
		p.Highlights = slices.Clone(p.Highlights)
		out = append(out, p)
	}
	return out
}

// GenerateIaCTemplate summarizes a mapping as a Terraform template stub. The
// component list always names every category, including empty ones.
func GenerateIaCTemplate(_ domain.ArchitectureMapping, cloud string) domain.IaCTemplate {
	return domain.IaCTemplate{
		Provider:     cloud,
		TemplateType: "terraform",
		Note:         "Full IaC template would be generated based on architecture mapping",
		Components:   slices.Clone(domain.ServiceCategories),
	}
}
