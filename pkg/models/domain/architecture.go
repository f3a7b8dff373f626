package domain

type ServiceCategory string

const (
	CategoryCompute    ServiceCategory = "compute"
	CategoryDatabase   ServiceCategory = "database"
	CategoryStorage    ServiceCategory = "storage"
	CategoryNetworking ServiceCategory = "networking"
)

// ServiceCategories lists every mapping category in presentation order.
var ServiceCategories = []ServiceCategory{
	CategoryCompute,
	CategoryDatabase,
	CategoryStorage,
	CategoryNetworking,
}

type ServiceMapping struct {
	Source        string // source resource name, empty for synthesized entries
	Target        string // managed service, e.g. EC2
	Component     string // set for synthesized entries, e.g. VPC
	Configuration string
}

type ArchitectureMapping map[ServiceCategory][]ServiceMapping

type ModernizationOpportunity struct {
	Type        string
	Description string
	Benefits    []string
	Effort      string
	Timeline    string
}

type ArchitecturePattern struct {
	Name        string
	Description string
	Highlights  []string // pillars or tools
	Benefits    string
}

type IaCTemplate struct {
	Provider     string
	TemplateType string
	Note         string
	Components   []ServiceCategory
}

type ArchitectureDesign struct {
	TargetCloud   string
	Mapping       ArchitectureMapping
	Modernization []ModernizationOpportunity
	Patterns      []ArchitecturePattern
	IaC           IaCTemplate
}
