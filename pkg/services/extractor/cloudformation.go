package extractor

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"gopkg.in/yaml.v3"
)

type templateResource struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties" yaml:"Properties"`
}

type template struct {
	Resources      map[string]templateResource `json:"Resources" yaml:"Resources"`
	LowerResources map[string]templateResource `json:"resources" yaml:"resources"`
}

func parseCloudFormationJSON(content []byte) ([]domain.Resource, error) {
	var doc template
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc.toResources()
}

func parseCloudFormationYAML(content []byte) ([]domain.Resource, error) {
	var doc template
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc.toResources()
}

func (t template) toResources() ([]domain.Resource, error) {
	entries := t.Resources
	if len(entries) == 0 {
		entries = t.LowerResources
	}
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	resources := make([]domain.Resource, 0, len(entries))
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		entry := entries[name]
		resourceType := entry.Type
		if resourceType == "" {
			resourceType = "Unknown"
		}
		props := entry.Properties
		if props == nil {
			props = map[string]any{}
		}
		resources = append(resources, domain.Resource{
			Type:       resourceType,
			Name:       name,
			Properties: props,
		})
	}
	return resources, nil
}
