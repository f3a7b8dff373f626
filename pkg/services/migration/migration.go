package migration

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
)

// DateLayout is how phase dates are serialized.
const DateLayout = "2006-01-02"

// Input carries the upstream results a plan is derived from. Cost and
// Architecture do not influence the schedule.
type Input struct {
	ResourceCount int
	Assessment    domain.SecurityAssessment
	Cost          domain.CostEstimate
	Architecture  domain.ArchitectureDesign
}

type Planner struct {
	phases []PhaseTemplate
}

func NewPlanner(phases []PhaseTemplate) *Planner {
	if len(phases) == 0 {
		phases = DefaultPhases()
	}
	return &Planner{phases: phases}
}

// Plan schedules the phases back to back from start. The same input and start
// always produce the same plan.
func (p *Planner) Plan(in Input, start time.Time) domain.MigrationPlan {
	critical := domain.CountSeverity(in.Assessment.Findings, domain.SeverityCritical)
	complexity := AssessComplexity(in.ResourceCount, critical)
	phases := p.GeneratePhases(complexity, start)

	return domain.MigrationPlan{
		Complexity:      complexity,
		Phases:          phases,
		TimelineWeeks:   TimelineWeeks(phases),
		Team:            Team(complexity),
		Runbook:         Runbook(phases),
		SuccessCriteria: slices.Clone(successCriteria),
		RiskMitigation:  slices.Clone(riskMitigation),
	}
}

func AssessComplexity(resourceCount, criticalFindings int) domain.Complexity {
	switch {
	case resourceCount > 50 || criticalFindings > 10:
		return domain.ComplexityHigh
	case resourceCount > 20 || criticalFindings > 5:
		return domain.ComplexityMedium
	default:
		return domain.ComplexityLow
	}
}

func (p *Planner) GeneratePhases(complexity domain.Complexity, start time.Time) []domain.MigrationPhase {
	factor, ok := multipliers[complexity]
	if !ok {
		factor = 1.0
	}

	phases := make([]domain.MigrationPhase, 0, len(p.phases))
	current := start
	for _, tpl := range p.phases {
		weeks := int(float64(tpl.DurationWeeks) * factor)
		end := current.AddDate(0, 0, weeks*7)

		phases = append(phases, domain.MigrationPhase{
			Name:          displayName(tpl.Key),
			DurationWeeks: weeks,
			EffortDays:    int(float64(tpl.EffortDays) * factor),
			StartDate:     current,
			EndDate:       end,
			Deliverables:  slices.Clone(tpl.Deliverables),
			Dependencies:  slices.Clone(tpl.Dependencies),
		})
		current = end
	}
	return phases
}

func displayName(key string) string {
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + strings.ToLower(key[1:])
}

func TimelineWeeks(phases []domain.MigrationPhase) int {
	total := 0
	for _, p := range phases {
		total += p.DurationWeeks
	}
	return total
}

func Team(complexity domain.Complexity) domain.TeamComposition {
	roles := slices.Clone(baseTeam)
	adjust := teamAdjustments[complexity]

	total := 0
	for i := range roles {
		if n, ok := adjust[roles[i].Role]; ok {
			roles[i].Count = n
		}
		total += roles[i].Count
	}
	return domain.TeamComposition{Roles: roles, TotalSize: total}
}

func Runbook(phases []domain.MigrationPhase) []domain.RunbookEntry {
	entries := make([]domain.RunbookEntry, 0, len(phases))
	for _, p := range phases {
		entries = append(entries, domain.RunbookEntry{
			Phase: p.Name,
			Steps: []string{
				fmt.Sprintf("Step 1 for %s", p.Name),
				fmt.Sprintf("Step 2 for %s", p.Name),
				fmt.Sprintf("Step 3 for %s", p.Name),
			},
			Checkpoints: []string{
				fmt.Sprintf("Checkpoint 1 for %s", p.Name),
				fmt.Sprintf("Checkpoint 2 for %s", p.Name),
			},
			RollbackProcedures: slices.Clone(rollbackProcedures),
		})
	}
	return entries
}
