package migration

import (
	"testing"
	"time"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

func criticalFindings(n int) domain.SecurityAssessment {
	var findings []domain.Finding
	for range n {
		findings = append(findings, domain.Finding{Severity: domain.SeverityCritical})
	}
	return domain.SecurityAssessment{Findings: findings}
}

func TestAssessComplexity(t *testing.T) {
	tests := []struct {
		name      string
		resources int
		critical  int
		expected  domain.Complexity
	}{
		{"51 resources", 51, 0, domain.ComplexityHigh},
		{"50 resources", 50, 0, domain.ComplexityMedium},
		{"21 resources", 21, 0, domain.ComplexityMedium},
		{"20 resources", 20, 0, domain.ComplexityLow},
		{"5 resources", 5, 0, domain.ComplexityLow},
		{"11 critical", 1, 11, domain.ComplexityHigh},
		{"6 critical", 1, 6, domain.ComplexityMedium},
		{"5 critical", 1, 5, domain.ComplexityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AssessComplexity(tt.resources, tt.critical))
		})
	}
}

func TestPlanner_Plan(t *testing.T) {
	p := NewPlanner(DefaultPhases())

	tests := []struct {
		name          string
		input         Input
		complexity    domain.Complexity
		weeks         []int
		effort        []int
		cloudEngineer int
		teamSize      int
	}{
		{
			name:          "low",
			input:         Input{ResourceCount: 5},
			complexity:    domain.ComplexityLow,
			weeks:         []int{2, 2, 3, 8, 3, 2},
			effort:        []int{10, 10, 15, 40, 15, 10},
			cloudEngineer: 2,
			teamSize:      6,
		},
		{
			name:          "medium",
			input:         Input{ResourceCount: 21},
			complexity:    domain.ComplexityMedium,
			weeks:         []int{2, 2, 3, 10, 3, 2},
			effort:        []int{13, 13, 19, 52, 19, 13},
			cloudEngineer: 3,
			teamSize:      7,
		},
		{
			name:          "high by critical findings",
			input:         Input{ResourceCount: 3, Assessment: criticalFindings(11)},
			complexity:    domain.ComplexityHigh,
			weeks:         []int{3, 3, 4, 12, 4, 3},
			effort:        []int{16, 16, 24, 64, 24, 16},
			cloudEngineer: 4,
			teamSize:      9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := p.Plan(tt.input, start)

			assert.Equal(t, tt.complexity, plan.Complexity)
			require.Len(t, plan.Phases, 6)

			var weeks, effort []int
			sum := 0
			for i, phase := range plan.Phases {
				weeks = append(weeks, phase.DurationWeeks)
				effort = append(effort, phase.EffortDays)
				sum += phase.DurationWeeks

				if i == 0 {
					assert.Equal(t, start, phase.StartDate)
				} else {
					assert.Equal(t, plan.Phases[i-1].EndDate, phase.StartDate)
				}
				assert.Equal(t, phase.StartDate.AddDate(0, 0, 7*phase.DurationWeeks), phase.EndDate)
			}
			assert.Equal(t, tt.weeks, weeks)
			assert.Equal(t, tt.effort, effort)
			assert.Equal(t, sum, plan.TimelineWeeks)

			assert.Equal(t, tt.cloudEngineer, plan.Team.Roles[1].Count)
			assert.Equal(t, tt.teamSize, plan.Team.TotalSize)
		})
	}
}

func TestPlanner_PlanDetails(t *testing.T) {
	plan := NewPlanner(nil).Plan(Input{ResourceCount: 4}, start)

	names := make([]string, 0, len(plan.Phases))
	for _, phase := range plan.Phases {
		names = append(names, phase.Name)
	}
	assert.Equal(t, []string{"Discovery", "Planning", "Poc", "Execution", "Testing", "Cutover"}, names)

	assert.Empty(t, plan.Phases[0].Dependencies)
	assert.Equal(t, []string{"POC validated"}, plan.Phases[3].Dependencies)
	assert.Equal(t, []string{"Proof of concept", "Performance baseline", "Cost validation"}, plan.Phases[2].Deliverables)

	assert.Equal(t, "2025-01-06", plan.Phases[0].StartDate.Format(DateLayout))
	assert.Equal(t, "2025-01-20", plan.Phases[0].EndDate.Format(DateLayout))
	assert.Equal(t, "2025-05-26", plan.Phases[5].EndDate.Format(DateLayout))

	require.Len(t, plan.Runbook, 6)
	assert.Equal(t, domain.RunbookEntry{
		Phase:              "Poc",
		Steps:              []string{"Step 1 for Poc", "Step 2 for Poc", "Step 3 for Poc"},
		Checkpoints:        []string{"Checkpoint 1 for Poc", "Checkpoint 2 for Poc"},
		RollbackProcedures: []string{"Document current state", "Create backup", "Execute rollback", "Verify rollback"},
	}, plan.Runbook[2])

	assert.Len(t, plan.SuccessCriteria, 5)
	require.Len(t, plan.RiskMitigation, 3)
	assert.Equal(t, "Downtime exceeds window", plan.RiskMitigation[1].Risk)
}

func TestPlanner_Deterministic(t *testing.T) {
	p := NewPlanner(nil)
	in := Input{ResourceCount: 30}
	assert.Equal(t, p.Plan(in, start), p.Plan(in, start))
}

func TestTeam(t *testing.T) {
	team := Team(domain.ComplexityHigh)
	assert.Equal(t, []domain.TeamRole{
		{Role: "lead_architect", Count: 1},
		{Role: "cloud_engineers", Count: 4},
		{Role: "security_engineer", Count: 2},
		{Role: "devops_engineer", Count: 1},
		{Role: "qa_engineer", Count: 1},
	}, team.Roles)
	assert.Equal(t, 9, team.TotalSize)

	assert.Equal(t, 2, Team(domain.ComplexityLow).Roles[1].Count, "base team must not be mutated")
}
