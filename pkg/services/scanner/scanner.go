package scanner

import (
	"context"
	"slices"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

type Scanner struct {
	rules RuleSet
}

func NewScanner(rules RuleSet) *Scanner {
	return &Scanner{rules: rules}
}

// Scan evaluates every rule against every resource independently, then
// derives compliance and risk from the resulting findings.
func (s *Scanner) Scan(ctx context.Context, resources []domain.Resource) domain.ScanResult {
	logger := zerolog.Ctx(ctx)

	findings := s.RunChecks(resources)
	fallback := false
	if len(findings) == 0 {
		logger.Info().Msg("no rule matched, substituting sample findings")
		findings = s.sampleFindings()
		fallback = true
	}

	result := domain.ScanResult{
		Findings:   findings,
		Compliance: CheckCompliance(s.rules.Frameworks, findings),
		Risk:       AssessRisk(findings),
		Fallback:   fallback,
	}

	logger.Info().
		Int("findings", len(findings)).
		Str("overall_risk", string(result.Risk.OverallRisk)).
		Msg("security scan completed")

	return result
}

// ScanExtraction scans parsed resources. A fallback extraction only holds the
// sample resource set, so it is answered with the sample findings.
func (s *Scanner) ScanExtraction(ctx context.Context, extraction domain.Extraction) domain.ScanResult {
	if !extraction.IsFallback() {
		return s.Scan(ctx, extraction.Resources)
	}

	zerolog.Ctx(ctx).Info().Msg("extraction fell back, using sample findings")
	findings := s.sampleFindings()
	return domain.ScanResult{
		Findings:   findings,
		Compliance: CheckCompliance(s.rules.Frameworks, findings),
		Risk:       AssessRisk(findings),
		Fallback:   true,
	}
}

// RunChecks returns the raw findings without substituting sample data.
func (s *Scanner) RunChecks(resources []domain.Resource) []domain.Finding {
	var findings []domain.Finding
	for _, resource := range resources {
		resourceType := strings.ToLower(resource.Type)
		for _, rule := range s.rules.Rules {
			if !matchesAny(resourceType, rule.Keywords) {
				continue
			}
			findings = append(findings, newFinding(rule, resource))
		}
	}
	return findings
}

func (s *Scanner) sampleFindings() []domain.Finding {
	findings := make([]domain.Finding, 0, len(s.rules.SampleFindings))
	for _, f := range s.rules.SampleFindings {
		f.ComplianceImpact = slices.Clone(f.ComplianceImpact)
		findings = append(findings, f)
	}
	return findings
}

func newFinding(rule Rule, resource domain.Resource) domain.Finding {
	name := resource.Name
	if name == "" {
		name = "unknown"
	}
	return domain.Finding{
		RuleID:           rule.ID,
		Type:             rule.FindingType,
		Severity:         rule.Severity,
		Resource:         name,
		Description:      rule.Description,
		Remediation:      rule.Remediation,
		ComplianceImpact: slices.Clone(rule.ComplianceImpact),
	}
}

func matchesAny(value string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(value, k) {
			return true
		}
	}
	return false
}

// CheckCompliance marks a framework compliant only when none of its required
// rules appear among the findings.
func CheckCompliance(frameworks []Framework, findings []domain.Finding) map[string]domain.ComplianceStatus {
	present := make(map[string]bool, len(findings))
	for _, f := range findings {
		present[f.RuleID] = true
	}

	status := make(map[string]domain.ComplianceStatus, len(frameworks))
	for _, fw := range frameworks {
		violations := 0
		for _, id := range fw.RequiredRules {
			if present[id] {
				violations++
			}
		}

		percentage := 100.0
		if len(fw.RequiredRules) > 0 {
			required := float64(len(fw.RequiredRules))
			percentage = (required - float64(violations)) / required * 100
		}

		status[fw.Name] = domain.ComplianceStatus{
			Compliant:            violations == 0,
			Violations:           violations,
			CompliancePercentage: percentage,
		}
	}
	return status
}

func AssessRisk(findings []domain.Finding) domain.RiskAssessment {
	risk := domain.RiskAssessment{
		CriticalFindings: domain.CountSeverity(findings, domain.SeverityCritical),
		HighFindings:     domain.CountSeverity(findings, domain.SeverityHigh),
		MediumFindings:   domain.CountSeverity(findings, domain.SeverityMedium),
		LowFindings:      domain.CountSeverity(findings, domain.SeverityLow),
	}

	switch {
	case risk.CriticalFindings > 0:
		risk.OverallRisk = domain.RiskCritical
	case risk.HighFindings > 3:
		risk.OverallRisk = domain.RiskHigh
	case risk.HighFindings > 0 || risk.MediumFindings > 5:
		risk.OverallRisk = domain.RiskMedium
	default:
		risk.OverallRisk = domain.RiskLow
	}
	return risk
}
