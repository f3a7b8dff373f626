package domain

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Score is the weight a severity contributes to the overall risk score.
// Unknown severities are scored as medium.
func (s Severity) Score() int {
	switch s {
	case SeverityCritical:
		return 90
	case SeverityHigh:
		return 70
	case SeverityLow:
		return 30
	default:
		return 50
	}
}

type Finding struct {
	RuleID           string
	Type             string // Unencrypted Storage
	Severity         Severity
	Resource         string // name of the offending resource
	Description      string
	Remediation      string
	ComplianceImpact []string // SOC2, HIPAA, PCI-DSS
	EstimatedFixTime string
}

type ComplianceStatus struct {
	Compliant            bool
	Violations           int
	CompliancePercentage float64
}

type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

type RiskAssessment struct {
	OverallRisk      RiskTier
	CriticalFindings int
	HighFindings     int
	MediumFindings   int
	LowFindings      int
}

type ScanResult struct {
	Findings   []Finding
	Compliance map[string]ComplianceStatus
	Risk       RiskAssessment
	// Fallback is set when no rule matched and the sample findings were substituted.
	Fallback bool
}

// CountSeverity returns how many findings carry the given severity.
func CountSeverity(findings []Finding, severity Severity) int {
	count := 0
	for _, f := range findings {
		if f.Severity == severity {
			count++
		}
	}
	return count
}
