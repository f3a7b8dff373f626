package scanner

import "github.com/bharathk2498/migrationgpt/pkg/models/domain"

const (
	FamilyEncryption    = "encryption"
	FamilyAccessControl = "access_control"
	FamilyNetwork       = "network"
)

// Rule describes one security check. A rule fires for a resource when its
// lowercased type contains any of the Keywords; rules without keywords are
// catalogue entries only and count towards compliance frameworks.
type Rule struct {
	ID               string
	Family           string
	Check            string
	Severity         domain.Severity
	Keywords         []string
	FindingType      string
	Description      string
	Remediation      string
	ComplianceImpact []string
}

type Framework struct {
	Name          string
	RequiredRules []string
}

type RuleSet struct {
	Rules      []Rule
	Frameworks []Framework
	// SampleFindings replace an empty scan result.
	SampleFindings []domain.Finding
}

func DefaultRuleSet() RuleSet {
	return RuleSet{
		Rules: []Rule{
			{
				ID:               "SEC-001",
				Family:           FamilyEncryption,
				Check:            "storage_encryption",
				Severity:         domain.SeverityCritical,
				Keywords:         []string{"storage", "s3"},
				FindingType:      "Unencrypted Storage",
				Description:      "Storage resource is not encrypted at rest",
				Remediation:      "Enable encryption using AWS KMS or equivalent",
				ComplianceImpact: []string{"SOC2", "HIPAA", "PCI-DSS"},
			},
			{
				ID:       "SEC-002",
				Family:   FamilyEncryption,
				Check:    "transmission_encryption",
				Severity: domain.SeverityHigh,
			},
			{
				ID:               "SEC-003",
				Family:           FamilyAccessControl,
				Check:            "public_access",
				Severity:         domain.SeverityCritical,
				Keywords:         []string{"s3", "storage"},
				FindingType:      "Public Access Enabled",
				Description:      "Resource allows public access",
				Remediation:      "Restrict access to authorized users/services only",
				ComplianceImpact: []string{"SOC2", "HIPAA", "PCI-DSS"},
			},
			{
				ID:       "SEC-004",
				Family:   FamilyAccessControl,
				Check:    "iam_policies",
				Severity: domain.SeverityHigh,
			},
			{
				ID:       "SEC-005",
				Family:   FamilyNetwork,
				Check:    "network_segmentation",
				Severity: domain.SeverityMedium,
			},
			{
				ID:               "SEC-006",
				Family:           FamilyNetwork,
				Check:            "firewall_rules",
				Severity:         domain.SeverityHigh,
				Keywords:         []string{"network", "vpc"},
				FindingType:      "Overly Permissive Firewall",
				Description:      "Security group allows traffic from 0.0.0.0/0",
				Remediation:      "Implement least privilege network access",
				ComplianceImpact: []string{"PCI-DSS"},
			},
		},
		Frameworks: []Framework{
			{Name: "SOC2", RequiredRules: []string{"SEC-001", "SEC-002", "SEC-003", "SEC-004"}},
			{Name: "HIPAA", RequiredRules: []string{"SEC-001", "SEC-002", "SEC-003"}},
			{Name: "PCI-DSS", RequiredRules: []string{"SEC-001", "SEC-002", "SEC-003", "SEC-004", "SEC-006"}},
		},
		SampleFindings: []domain.Finding{
			{
				RuleID:           "SEC-001",
				Type:             "Unencrypted Storage",
				Severity:         domain.SeverityCritical,
				Resource:         "app-storage",
				Description:      "S3 bucket not encrypted at rest",
				Remediation:      "Enable AES-256 encryption",
				ComplianceImpact: []string{"SOC2", "HIPAA"},
			},
			{
				RuleID:           "SEC-003",
				Type:             "Public Access",
				Severity:         domain.SeverityHigh,
				Resource:         "database-backup",
				Description:      "Database backup accessible publicly",
				Remediation:      "Restrict to VPC only",
				ComplianceImpact: []string{"PCI-DSS"},
			},
			{
				RuleID:           "SEC-005",
				Type:             "Network Segmentation",
				Severity:         domain.SeverityMedium,
				Resource:         "vpc-main",
				Description:      "No network segmentation between tiers",
				Remediation:      "Implement subnet isolation",
				ComplianceImpact: []string{},
			},
		},
	}
}
