package adapters

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/bharathk2498/migrationgpt/pkg/models/api"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/models/store"
	"github.com/bharathk2498/migrationgpt/pkg/services/migration"
)

func MapAnalysisDomainToApi(a domain.Analysis) api.Analysis {
	return api.Analysis{
		AnalysisID:      a.ID,
		ProjectName:     a.ProjectName,
		TargetCloud:     a.TargetCloud,
		FileName:        a.FileName,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.UTC(),
		DurationSeconds: a.Duration.Seconds(),
		Infrastructure:  MapExtractionDomainToApi(a.Extraction),
		SecurityScan:    MapScanDomainToApi(a.Scan),
		Security:        MapSecurityAssessmentDomainToApi(a.Security),
		Cost:            MapCostEstimateDomainToApi(a.Cost),
		Architecture:    MapArchitectureDomainToApi(a.Architecture),
		MigrationPlan:   MapMigrationPlanDomainToApi(a.Plan),
		Insights: api.Insights{
			Security:     a.Insights.Security,
			Cost:         a.Insights.Cost,
			Architecture: a.Insights.Architecture,
			Migration:    a.Insights.Migration,
		},
		Warnings: slices.Clone(a.Warnings),
	}
}

func MapExtractionDomainToApi(e domain.Extraction) api.Extraction {
	resources := make([]api.Resource, 0, len(e.Resources))
	for _, r := range e.Resources {
		props := maps.Clone(r.Properties)
		if props == nil {
			props = map[string]any{}
		}
		resources = append(resources, api.Resource{Type: r.Type, Name: r.Name, Properties: props})
	}

	out := api.Extraction{
		FileType:       string(e.Format),
		Outcome:        string(e.Outcome),
		Resources:      resources,
		TotalResources: len(resources),
		Metadata:       maps.Clone(e.Metadata),
	}
	if e.Reason != nil {
		out.Reason = e.Reason.Error()
	}
	return out
}

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	impact := slices.Clone(f.ComplianceImpact)
	if impact == nil {
		impact = []string{}
	}
	return api.Finding{
		ID:               f.RuleID,
		Type:             f.Type,
		Severity:         api.Severity(f.Severity),
		Resource:         f.Resource,
		Description:      f.Description,
		Remediation:      f.Remediation,
		ComplianceImpact: impact,
		EstimatedFixTime: f.EstimatedFixTime,
	}
}

func MapScanDomainToApi(s domain.ScanResult) api.SecurityScan {
	compliance := make(map[string]api.ComplianceStatus, len(s.Compliance))
	for name, c := range s.Compliance {
		compliance[name] = api.ComplianceStatus{
			Compliant:            c.Compliant,
			Violations:           c.Violations,
			CompliancePercentage: c.CompliancePercentage,
		}
	}
	return api.SecurityScan{
		TotalFindings:    len(s.Findings),
		ComplianceStatus: compliance,
		RiskAssessment: api.RiskAssessment{
			OverallRisk:      string(s.Risk.OverallRisk),
			CriticalFindings: s.Risk.CriticalFindings,
			HighFindings:     s.Risk.HighFindings,
			MediumFindings:   s.Risk.MediumFindings,
			LowFindings:      s.Risk.LowFindings,
		},
		SampleFindings: s.Fallback,
	}
}

func MapSecurityAssessmentDomainToApi(s domain.SecurityAssessment) api.SecurityAssessment {
	findings := make([]api.Finding, 0, len(s.Findings))
	for _, f := range s.Findings {
		findings = append(findings, MapFindingDomainToApi(f))
	}
	recs := make([]api.Recommendation, 0, len(s.Recommendations))
	for _, r := range s.Recommendations {
		recs = append(recs, api.Recommendation{Priority: r.Priority, Action: r.Action, Impact: r.Impact, Effort: r.Effort})
	}
	return api.SecurityAssessment{
		RiskScore:       s.RiskScore,
		Findings:        findings,
		Recommendations: recs,
		Summary:         s.Summary,
	}
}

func MapCostEstimateDomainToApi(c domain.CostEstimate) api.CostEstimate {
	opts := make([]api.Optimization, 0, len(c.Optimizations))
	for _, o := range c.Optimizations {
		opts = append(opts, api.Optimization{
			Opportunity:            o.Opportunity,
			PotentialSavings:       o.PotentialSavings,
			EstimatedAnnualSavings: o.EstimatedAnnualSavings,
			Effort:                 o.Effort,
		})
	}
	return api.CostEstimate{
		TargetCloud:            c.TargetCloud,
		Currency:               c.Currency,
		MigrationCost:          c.MigrationCost,
		MonthlyOperationalCost: c.MonthlyOperationalCost,
		YearlyOperationalCost:  c.YearlyOperationalCost,
		ThreeYearTCO:           c.ThreeYearTCO,
		TotalCost:              c.TotalCost,
		Optimizations:          opts,
		Breakdown: api.CostBreakdown{
			OneTime:            maps.Clone(c.Breakdown.OneTime),
			MonthlyOperational: maps.Clone(c.Breakdown.MonthlyOperational),
		},
	}
}

func MapArchitectureDomainToApi(d domain.ArchitectureDesign) api.ArchitectureDesign {
	target := make(map[string][]api.ServiceMapping, len(d.Mapping))
	for category, mappings := range d.Mapping {
		out := make([]api.ServiceMapping, 0, len(mappings))
		for _, m := range mappings {
			out = append(out, api.ServiceMapping{
				Source:        m.Source,
				Target:        m.Target,
				Component:     m.Component,
				Configuration: m.Configuration,
			})
		}
		target[string(category)] = out
	}

	modernization := make([]api.ModernizationOpportunity, 0, len(d.Modernization))
	for _, m := range d.Modernization {
		modernization = append(modernization, api.ModernizationOpportunity{
			Type:        m.Type,
			Description: m.Description,
			Benefits:    slices.Clone(m.Benefits),
			Effort:      m.Effort,
			Timeline:    m.Timeline,
		})
	}

	patterns := make([]api.ArchitecturePattern, 0, len(d.Patterns))
	for _, p := range d.Patterns {
		patterns = append(patterns, api.ArchitecturePattern{
			Pattern:     p.Name,
			Description: p.Description,
			Highlights:  slices.Clone(p.Highlights),
			Benefits:    p.Benefits,
		})
	}

	components := make([]string, 0, len(d.IaC.Components))
	for _, c := range d.IaC.Components {
		components = append(components, string(c))
	}

	return api.ArchitectureDesign{
		TargetArchitecture: target,
		Modernization:      modernization,
		Patterns:           patterns,
		InfrastructureCode: api.IaCTemplate{
			Provider:     d.IaC.Provider,
			TemplateType: d.IaC.TemplateType,
			Note:         d.IaC.Note,
			Components:   components,
		},
	}
}

func MapMigrationPlanDomainToApi(p domain.MigrationPlan) api.MigrationPlan {
	phases := make([]api.MigrationPhase, 0, len(p.Phases))
	for _, ph := range p.Phases {
		phases = append(phases, api.MigrationPhase{
			Name:          ph.Name,
			DurationWeeks: ph.DurationWeeks,
			EffortDays:    ph.EffortDays,
			StartDate:     ph.StartDate.Format(migration.DateLayout),
			EndDate:       ph.EndDate.Format(migration.DateLayout),
			Deliverables:  slices.Clone(ph.Deliverables),
			Dependencies:  slices.Clone(ph.Dependencies),
		})
	}

	roles := make(map[string]int, len(p.Team.Roles))
	for _, r := range p.Team.Roles {
		roles[r.Role] = r.Count
	}

	runbook := make([]api.RunbookEntry, 0, len(p.Runbook))
	for _, r := range p.Runbook {
		runbook = append(runbook, api.RunbookEntry{
			Phase:              r.Phase,
			Steps:              slices.Clone(r.Steps),
			Checkpoints:        slices.Clone(r.Checkpoints),
			RollbackProcedures: slices.Clone(r.RollbackProcedures),
		})
	}

	criteria := make([]api.SuccessCriterion, 0, len(p.SuccessCriteria))
	for _, c := range p.SuccessCriteria {
		criteria = append(criteria, api.SuccessCriterion{Metric: c.Metric, Target: c.Target})
	}

	risks := make([]api.RiskMitigation, 0, len(p.RiskMitigation))
	for _, r := range p.RiskMitigation {
		risks = append(risks, api.RiskMitigation{
			Risk:        r.Risk,
			Probability: r.Probability,
			Impact:      r.Impact,
			Mitigation:  r.Mitigation,
		})
	}

	return api.MigrationPlan{
		Complexity:      string(p.Complexity),
		Phases:          phases,
		TimelineWeeks:   p.TimelineWeeks,
		ResourcesNeeded: api.TeamComposition{Roles: roles, TotalSize: p.Team.TotalSize},
		Runbook:         runbook,
		SuccessCriteria: criteria,
		RiskMitigation:  risks,
	}
}

func MapAnalysisApiToResponse(a api.Analysis) api.AnalysisResponse {
	return api.AnalysisResponse{
		AnalysisID:    a.AnalysisID,
		Status:        a.Status,
		RiskScore:     a.Security.RiskScore,
		FindingsCount: len(a.Security.Findings),
		EstimatedCost: a.Cost.TotalCost,
		TimelineWeeks: a.MigrationPlan.TimelineWeeks,
		Warnings:      slices.Clone(a.Warnings),
	}
}

func MapAnalysisApiToStoreRecord(a api.Analysis) (store.AnalysisRecord, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return store.AnalysisRecord{}, fmt.Errorf("marshal analysis: %w", err)
	}

	return store.AnalysisRecord{
		ID:            a.AnalysisID,
		ProjectName:   a.ProjectName,
		TargetCloud:   a.TargetCloud,
		Status:        a.Status,
		SourceFormat:  a.Infrastructure.FileType,
		RiskScore:     a.Security.RiskScore,
		FindingsCount: len(a.Security.Findings),
		EstimatedCost: a.Cost.TotalCost,
		TimelineWeeks: a.MigrationPlan.TimelineWeeks,
		DurationMs:    int64(a.DurationSeconds * 1000),
		CreatedAt:     a.CreatedAt,
		Payload:       string(payload),
	}, nil
}

func MapStoreRecordToApiAnalysis(r store.AnalysisRecord) (api.Analysis, error) {
	var a api.Analysis
	if err := json.Unmarshal([]byte(r.Payload), &a); err != nil {
		return api.Analysis{}, fmt.Errorf("unmarshal analysis %s: %w", r.ID, err)
	}
	return a, nil
}

func MapStoreRecordsToApiList(records []store.AnalysisRecord) api.AnalysisList {
	summaries := make([]api.AnalysisSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, api.AnalysisSummary{
			AnalysisID:    r.ID,
			ProjectName:   r.ProjectName,
			TargetCloud:   r.TargetCloud,
			Status:        r.Status,
			RiskScore:     r.RiskScore,
			FindingsCount: r.FindingsCount,
			EstimatedCost: r.EstimatedCost,
			TimelineWeeks: r.TimelineWeeks,
			CreatedAt:     r.CreatedAt.UTC(),
		})
	}
	return api.AnalysisList{Analyses: summaries, Count: len(summaries)}
}

// MapStoreStatsToApiMetrics reports the success rate as a percentage; an empty
// store reports 100.
func MapStoreStatsToApiMetrics(s store.AnalysisStats) api.Metrics {
	rate := 100.0
	if s.TotalAnalyses > 0 {
		rate = float64(s.CompletedAnalyses) / float64(s.TotalAnalyses) * 100
	}
	return api.Metrics{
		TotalAnalyses:          s.TotalAnalyses,
		AvgAnalysisTimeSeconds: s.AvgDurationMs / 1000,
		SuccessRate:            rate,
	}
}
