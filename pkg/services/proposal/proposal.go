package proposal

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/api"
)

const (
	overview     = "Comprehensive cloud migration strategy tailored to your infrastructure"
	methodology  = "Agile migration with continuous validation"
	paymentTerms = "Milestone-based payments"
	roiBaseline  = "12-18 months"
)

var keyBenefits = []string{
	"Improved scalability and reliability",
	"Enhanced security posture",
	"Cost optimization opportunities",
	"Modern cloud-native architecture",
}

var tools = []string{
	"Infrastructure as Code (Terraform)",
	"CI/CD Pipeline",
	"Automated Testing",
	"Monitoring and Observability",
}

var nextSteps = []string{
	"Review and approve proposal",
	"Sign statement of work",
	"Kickoff meeting",
	"Begin discovery phase",
}

// Role descriptions keyed by planner role name, in presentation order.
var roles = []struct {
	key         string
	title       string
	description string
}{
	{"lead_architect", "Lead Architect", "Overall technical leadership"},
	{"cloud_engineers", "Cloud Engineers", "Migration execution"},
	{"security_engineer", "Security Engineer", "Security validation"},
	{"devops_engineer", "DevOps Engineer", "Automation and CI/CD"},
	{"qa_engineer", "QA Engineer", "Testing and validation"},
}

type Generator struct {
	now func() time.Time
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Generate builds a client-facing proposal from a stored analysis.
func (g *Generator) Generate(ctx context.Context, analysis api.Analysis) api.Proposal {
	zerolog.Ctx(ctx).Info().
		Str("analysis_id", analysis.AnalysisID).
		Str("project", analysis.ProjectName).
		Msg("generating proposal")

	plan := analysis.MigrationPlan
	return api.Proposal{
		ProjectName:       analysis.ProjectName,
		GeneratedDate:     g.now().UTC(),
		ExecutiveSummary:  executiveSummary(analysis),
		TechnicalApproach: technicalApproach(plan),
		Timeline:          Timeline(plan),
		CostEstimate:      costEstimate(analysis.Cost),
		TeamComposition:   Team(plan.ResourcesNeeded),
		SuccessCriteria:   slices.Clone(plan.SuccessCriteria),
		RiskMitigation:    slices.Clone(plan.RiskMitigation),
		NextSteps:         slices.Clone(nextSteps),
	}
}

func executiveSummary(a api.Analysis) api.ExecutiveSummary {
	return api.ExecutiveSummary{
		Overview:    overview,
		KeyBenefits: slices.Clone(keyBenefits),
		Investment: fmt.Sprintf("%s one-time migration investment, %s three-year total cost of ownership",
			adapters.FormatCurrency(a.Cost.MigrationCost, a.Cost.Currency),
			adapters.FormatCurrency(a.Cost.ThreeYearTCO, a.Cost.Currency)),
		Timeline: fmt.Sprintf("Phased approach over %d weeks", a.MigrationPlan.TimelineWeeks),
	}
}

func technicalApproach(plan api.MigrationPlan) api.TechnicalApproach {
	phases := make([]string, 0, len(plan.Phases))
	for _, p := range plan.Phases {
		phases = append(phases, p.Name)
	}
	return api.TechnicalApproach{
		Methodology: methodology,
		Phases:      phases,
		Tools:       slices.Clone(tools),
	}
}

// Timeline lists each phase with a milestone at the week it completes.
func Timeline(plan api.MigrationPlan) api.ProposalTimeline {
	t := api.ProposalTimeline{
		TotalDurationWeeks: plan.TimelineWeeks,
		Phases:             make([]api.ProposalPhase, 0, len(plan.Phases)),
		KeyMilestones:      make([]string, 0, len(plan.Phases)),
	}
	week := 0
	for _, p := range plan.Phases {
		week += p.DurationWeeks
		t.Phases = append(t.Phases, api.ProposalPhase{Name: p.Name, Weeks: p.DurationWeeks})
		t.KeyMilestones = append(t.KeyMilestones, fmt.Sprintf("Week %d: %s complete", week, p.Name))
	}
	return t
}

func costEstimate(c api.CostEstimate) api.ProposalCost {
	breakdown := make(map[string]string, len(c.Breakdown.OneTime)+1)
	for k, v := range c.Breakdown.OneTime {
		breakdown[k] = adapters.FormatCurrency(v, c.Currency)
	}
	breakdown["monthly_operational"] = adapters.FormatCurrency(c.MonthlyOperationalCost, c.Currency)

	return api.ProposalCost{
		TotalInvestment: adapters.FormatCurrency(c.TotalCost, c.Currency),
		Breakdown:       breakdown,
		PaymentTerms:    paymentTerms,
		ROIProjection:   roiProjection(c),
	}
}

// roiProjection reports the payback period implied by the estimated annual
// optimization savings, or the baseline range when no savings were found.
func roiProjection(c api.CostEstimate) string {
	var savings float64
	for _, o := range c.Optimizations {
		savings += o.EstimatedAnnualSavings
	}
	if savings <= 0 || c.MigrationCost <= 0 {
		return roiBaseline
	}
	months := int(c.MigrationCost/savings*12 + 0.5)
	if months <= 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", months)
}

func Team(team api.TeamComposition) api.ProposalTeam {
	out := api.ProposalTeam{TeamSize: team.TotalSize}
	seen := make(map[string]bool, len(roles))
	for _, r := range roles {
		seen[r.key] = true
		if count, ok := team.Roles[r.key]; ok {
			out.Roles = append(out.Roles, api.ProposalRole{Role: r.title, Count: count, Description: r.description})
		}
	}
	for _, key := range slices.Sorted(maps.Keys(team.Roles)) {
		if seen[key] {
			continue
		}
		out.Roles = append(out.Roles, api.ProposalRole{
			Role:  strings.ReplaceAll(key, "_", " "),
			Count: team.Roles[key],
		})
	}
	return out
}
