package scanner

import (
	"context"
	"testing"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Scan(t *testing.T) {
	s := NewScanner(DefaultRuleSet())

	t.Run("storage and network resources", func(t *testing.T) {
		result := s.Scan(context.Background(), []domain.Resource{
			{Type: "aws_s3_bucket", Name: "logs"},
			{Type: "aws_vpc", Name: "main"},
			{Type: "aws_instance", Name: "web"},
		})

		require.Len(t, result.Findings, 3)
		assert.False(t, result.Fallback)
		assert.Equal(t, "SEC-001", result.Findings[0].RuleID)
		assert.Equal(t, "SEC-003", result.Findings[1].RuleID)
		assert.Equal(t, "SEC-006", result.Findings[2].RuleID)
		assert.Equal(t, "logs", result.Findings[0].Resource)
		assert.Equal(t, "main", result.Findings[2].Resource)
		assert.Equal(t, domain.RiskCritical, result.Risk.OverallRisk)

		pci := result.Compliance["PCI-DSS"]
		assert.False(t, pci.Compliant)
		assert.Equal(t, 3, pci.Violations)
		assert.InDelta(t, 40.0, pci.CompliancePercentage, 0.0001)
	})

	t.Run("no matching resources yields sample findings", func(t *testing.T) {
		result := s.Scan(context.Background(), []domain.Resource{
			{Type: "aws_lambda_function", Name: "fn"},
		})

		require.Len(t, result.Findings, 3)
		assert.True(t, result.Fallback)
		assert.Equal(t, "app-storage", result.Findings[0].Resource)
		assert.Equal(t, domain.SeverityHigh, result.Findings[1].Severity)
		assert.Equal(t, domain.RiskAssessment{
			OverallRisk:      domain.RiskCritical,
			CriticalFindings: 1,
			HighFindings:     1,
			MediumFindings:   1,
		}, result.Risk)

		soc2 := result.Compliance["SOC2"]
		assert.Equal(t, 2, soc2.Violations)
		assert.InDelta(t, 50.0, soc2.CompliancePercentage, 0.0001)
	})

	t.Run("sample findings are not shared between scans", func(t *testing.T) {
		first := s.Scan(context.Background(), nil)
		first.Findings[0].ComplianceImpact[0] = "changed"

		second := s.Scan(context.Background(), nil)
		assert.Equal(t, "SOC2", second.Findings[0].ComplianceImpact[0])
	})

	t.Run("unnamed resource", func(t *testing.T) {
		result := s.Scan(context.Background(), []domain.Resource{{Type: "storage"}})
		require.NotEmpty(t, result.Findings)
		assert.Equal(t, "unknown", result.Findings[0].Resource)
	})
}

func TestScanner_ScanExtraction(t *testing.T) {
	s := NewScanner(DefaultRuleSet())

	t.Run("fallback extraction", func(t *testing.T) {
		result := s.ScanExtraction(context.Background(), domain.Extraction{
			Outcome:   domain.OutcomeFallback,
			Resources: []domain.Resource{{Type: "storage", Name: "app-storage"}},
		})
		require.Len(t, result.Findings, 3)
		assert.True(t, result.Fallback)
		assert.Equal(t, "SEC-005", result.Findings[2].RuleID)
	})

	t.Run("parsed extraction", func(t *testing.T) {
		result := s.ScanExtraction(context.Background(), domain.Extraction{
			Outcome:   domain.OutcomeParsed,
			Resources: []domain.Resource{{Type: "aws_s3_bucket", Name: "storage"}},
		})
		require.Len(t, result.Findings, 2)
		assert.False(t, result.Fallback)
		assert.Equal(t, "Public Access Enabled", result.Findings[1].Type)
	})
}

func TestCheckCompliance(t *testing.T) {
	frameworks := DefaultRuleSet().Frameworks

	t.Run("no findings is fully compliant", func(t *testing.T) {
		status := CheckCompliance(frameworks, nil)
		require.Len(t, status, 3)
		for name, s := range status {
			assert.True(t, s.Compliant, name)
			assert.Equal(t, 0, s.Violations, name)
			assert.InDelta(t, 100.0, s.CompliancePercentage, 0.0001, name)
		}
	})

	t.Run("percentage stays within bounds", func(t *testing.T) {
		findings := []domain.Finding{
			{RuleID: "SEC-001"}, {RuleID: "SEC-002"}, {RuleID: "SEC-003"},
			{RuleID: "SEC-004"}, {RuleID: "SEC-006"}, {RuleID: "SEC-001"},
		}
		status := CheckCompliance(frameworks, findings)
		for name, s := range status {
			assert.False(t, s.Compliant, name)
			assert.GreaterOrEqual(t, s.CompliancePercentage, 0.0, name)
			assert.LessOrEqual(t, s.CompliancePercentage, 100.0, name)
		}
		assert.InDelta(t, 0.0, status["HIPAA"].CompliancePercentage, 0.0001)
	})

	t.Run("framework without required rules", func(t *testing.T) {
		status := CheckCompliance([]Framework{{Name: "CUSTOM"}}, []domain.Finding{{RuleID: "SEC-001"}})
		assert.True(t, status["CUSTOM"].Compliant)
		assert.InDelta(t, 100.0, status["CUSTOM"].CompliancePercentage, 0.0001)
	})
}

func TestAssessRisk(t *testing.T) {
	findingsOf := func(counts map[domain.Severity]int) []domain.Finding {
		var findings []domain.Finding
		for severity, n := range counts {
			for range n {
				findings = append(findings, domain.Finding{Severity: severity})
			}
		}
		return findings
	}

	tests := []struct {
		name     string
		counts   map[domain.Severity]int
		expected domain.RiskTier
	}{
		{"empty", nil, domain.RiskLow},
		{"one critical", map[domain.Severity]int{domain.SeverityCritical: 1}, domain.RiskCritical},
		{"four high", map[domain.Severity]int{domain.SeverityHigh: 4}, domain.RiskHigh},
		{"three high", map[domain.Severity]int{domain.SeverityHigh: 3}, domain.RiskMedium},
		{"six medium", map[domain.Severity]int{domain.SeverityMedium: 6}, domain.RiskMedium},
		{"five medium", map[domain.Severity]int{domain.SeverityMedium: 5}, domain.RiskLow},
		{"only low", map[domain.Severity]int{domain.SeverityLow: 10}, domain.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := AssessRisk(findingsOf(tt.counts))
			assert.Equal(t, tt.expected, risk.OverallRisk)
		})
	}
}
