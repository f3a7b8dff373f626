package architecture

import "github.com/bharathk2498/migrationgpt/pkg/models/domain"

const DefaultCloud = "aws"

// Catalog lists the managed services of each cloud per category, preferred
// service first.
type Catalog map[string]map[domain.ServiceCategory][]string

func DefaultCatalog() Catalog {
	return Catalog{
		"aws": {
			domain.CategoryCompute:    {"EC2", "ECS", "EKS", "Lambda"},
			domain.CategoryDatabase:   {"RDS", "Aurora", "DynamoDB"},
			domain.CategoryStorage:    {"S3", "EBS", "EFS"},
			domain.CategoryNetworking: {"VPC", "ALB", "CloudFront"},
		},
		"azure": {
			domain.CategoryCompute:    {"Virtual Machines", "AKS", "Functions"},
			domain.CategoryDatabase:   {"Azure SQL", "Cosmos DB"},
			domain.CategoryStorage:    {"Blob Storage", "Disk Storage"},
			domain.CategoryNetworking: {"VNet", "Load Balancer", "CDN"},
		},
		"gcp": {
			domain.CategoryCompute:    {"Compute Engine", "GKE", "Cloud Functions"},
			domain.CategoryDatabase:   {"Cloud SQL", "Firestore"},
			domain.CategoryStorage:    {"Cloud Storage", "Persistent Disk"},
			domain.CategoryNetworking: {"VPC", "Load Balancing", "Cloud CDN"},
		},
	}
}

type classification struct {
	keywords      []string
	category      domain.ServiceCategory
	configuration string
}

// Evaluated in order; the first match wins.
var classifications = []classification{
	{keywords: []string{"compute", "instance"}, category: domain.CategoryCompute, configuration: "t3.medium or equivalent"},
	{keywords: []string{"database"}, category: domain.CategoryDatabase, configuration: "db.t3.medium or equivalent"},
	{keywords: []string{"storage"}, category: domain.CategoryStorage, configuration: "Standard storage class"},
}

var networkingDefault = domain.ServiceMapping{
	Component:     "VPC",
	Configuration: "Multi-AZ deployment with private/public subnets",
}

var containerization = domain.ModernizationOpportunity{
	Type:        "Containerization",
	Description: "Migrate from VMs to containers (ECS/EKS)",
	Benefits:    []string{"Better resource utilization", "Faster deployments", "Improved scalability"},
	Effort:      "Medium",
	Timeline:    "4-6 weeks",
}

var standardModernization = []domain.ModernizationOpportunity{
	{
		Type:        "Serverless",
		Description: "Move appropriate workloads to serverless (Lambda/Functions)",
		Benefits:    []string{"Pay per use", "Auto-scaling", "Reduced ops overhead"},
		Effort:      "Low to Medium",
		Timeline:    "2-4 weeks",
	},
	{
		Type:        "Managed Services",
		Description: "Replace self-managed components with cloud-native managed services",
		Benefits:    []string{"Reduced maintenance", "Built-in HA/DR", "Cost optimization"},
		Effort:      "Low",
		Timeline:    "2-3 weeks",
	},
}

var patterns = []domain.ArchitecturePattern{
	{
		Name:        "Well-Architected Framework",
		Description: "Follow cloud provider best practices",
		Highlights:  []string{"Operational Excellence", "Security", "Reliability", "Performance", "Cost Optimization"},
	},
	{
		Name:        "Multi-AZ Deployment",
		Description: "Deploy across multiple availability zones for high availability",
		Benefits:    "99.99% uptime SLA",
	},
	{
		Name:       "Infrastructure as Code",
		Highlights: []string{"Terraform", "CloudFormation", "Pulumi"},
		Benefits:   "Repeatable, versioned, auditable infrastructure",
	},
}
