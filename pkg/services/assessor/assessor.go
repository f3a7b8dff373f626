package assessor

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/rs/zerolog"
)

var fixTimes = map[domain.Severity]string{
	domain.SeverityCritical: "1-2 days",
	domain.SeverityHigh:     "2-4 hours",
	domain.SeverityMedium:   "1-2 hours",
	domain.SeverityLow:      "30-60 minutes",
}

const defaultFixTime = "1 hour"

var (
	criticalRecommendation = domain.Recommendation{
		Priority: 1,
		Action:   "Address all critical security findings before migration",
		Impact:   "Prevents major security breaches",
		Effort:   "High",
	}
	automationRecommendation = domain.Recommendation{
		Priority: 2,
		Action:   "Implement security automation for recurring issues",
		Impact:   "Reduces ongoing security debt",
		Effort:   "Medium",
	}
	monitoringRecommendation = domain.Recommendation{
		Priority: 3,
		Action:   "Enable continuous security monitoring post-migration",
		Impact:   "Early detection of configuration drift",
		Effort:   "Low",
	}
)

// Assess orders findings by severity and derives the risk score,
// recommendations and summary from them.
func Assess(ctx context.Context, findings []domain.Finding) domain.SecurityAssessment {
	sorted := Prioritize(findings)
	score := RiskScore(sorted)

	zerolog.Ctx(ctx).Info().
		Int("findings", len(sorted)).
		Int("risk_score", score).
		Msg("security assessment completed")

	return domain.SecurityAssessment{
		RiskScore:       score,
		Findings:        sorted,
		Recommendations: Recommendations(sorted),
		Summary:         Summary(sorted, score),
	}
}

// Prioritize returns a copy of the findings with defaults filled in and an
// estimated fix time attached, most severe first. Ties keep their input order.
func Prioritize(findings []domain.Finding) []domain.Finding {
	out := make([]domain.Finding, 0, len(findings))
	for _, f := range findings {
		if f.Severity == "" {
			f.Severity = domain.SeverityMedium
		}
		if f.Type == "" {
			f.Type = "unknown"
		}
		if f.Resource == "" {
			f.Resource = "N/A"
		}
		if f.Remediation == "" {
			f.Remediation = "Review configuration"
		}
		f.ComplianceImpact = slices.Clone(f.ComplianceImpact)
		f.EstimatedFixTime = EstimateFixTime(f.Severity)
		out = append(out, f)
	}

	slices.SortStableFunc(out, func(a, b domain.Finding) int {
		return cmp.Compare(b.Severity.Score(), a.Severity.Score())
	})
	return out
}

func EstimateFixTime(severity domain.Severity) string {
	if t, ok := fixTimes[severity]; ok {
		return t
	}
	return defaultFixTime
}

// RiskScore is the truncated mean severity score, capped at 100.
func RiskScore(findings []domain.Finding) int {
	if len(findings) == 0 {
		return 0
	}

	total := 0
	for _, f := range findings {
		total += f.Severity.Score()
	}
	return min(100, total/len(findings))
}

func Recommendations(findings []domain.Finding) []domain.Recommendation {
	var recs []domain.Recommendation
	if domain.CountSeverity(findings, domain.SeverityCritical) > 0 {
		recs = append(recs, criticalRecommendation)
	}
	if domain.CountSeverity(findings, domain.SeverityHigh) > 5 {
		recs = append(recs, automationRecommendation)
	}
	return append(recs, monitoringRecommendation)
}

func RiskLevel(score int) string {
	switch {
	case score < 40:
		return "Low"
	case score < 70:
		return "Medium"
	default:
		return "High"
	}
}

func Summary(findings []domain.Finding, score int) string {
	critical := domain.CountSeverity(findings, domain.SeverityCritical)
	high := domain.CountSeverity(findings, domain.SeverityHigh)

	summary := fmt.Sprintf("Security Assessment: %s Risk (Score: %d/100). ", RiskLevel(score), score)
	summary += fmt.Sprintf("Identified %d findings: %d critical, %d high priority. ", len(findings), critical, high)

	if critical > 0 {
		return summary + "Immediate action required on critical issues before migration."
	}
	return summary + "No critical blockers identified. Proceed with recommended remediations."
}
