package migration

import "github.com/bharathk2498/migrationgpt/pkg/models/domain"

type PhaseTemplate struct {
	Key           string
	DurationWeeks int
	EffortDays    int
	Deliverables  []string
	Dependencies  []string
}

// DefaultPhases is the phase sequence every plan follows.
func DefaultPhases() []PhaseTemplate {
	return []PhaseTemplate{
		{
			Key: "discovery", DurationWeeks: 2, EffortDays: 10,
			Deliverables: []string{"Infrastructure inventory", "Application dependencies", "Risk assessment"},
			Dependencies: []string{},
		},
		{
			Key: "planning", DurationWeeks: 2, EffortDays: 10,
			Deliverables: []string{"Migration strategy", "Resource plan", "Timeline"},
			Dependencies: []string{"Discovery complete"},
		},
		{
			Key: "poc", DurationWeeks: 3, EffortDays: 15,
			Deliverables: []string{"Proof of concept", "Performance baseline", "Cost validation"},
			Dependencies: []string{"Planning approved"},
		},
		{
			Key: "execution", DurationWeeks: 8, EffortDays: 40,
			Deliverables: []string{"Migrated infrastructure", "Configuration documentation", "Security validation"},
			Dependencies: []string{"POC validated"},
		},
		{
			Key: "testing", DurationWeeks: 3, EffortDays: 15,
			Deliverables: []string{"Test results", "Performance reports", "Security audit"},
			Dependencies: []string{"Execution complete"},
		},
		{
			Key: "cutover", DurationWeeks: 2, EffortDays: 10,
			Deliverables: []string{"Production deployment", "Cutover checklist", "Monitoring setup"},
			Dependencies: []string{"Testing passed"},
		},
	}
}

var multipliers = map[domain.Complexity]float64{
	domain.ComplexityLow:    1.0,
	domain.ComplexityMedium: 1.3,
	domain.ComplexityHigh:   1.6,
}

var baseTeam = []domain.TeamRole{
	{Role: "lead_architect", Count: 1},
	{Role: "cloud_engineers", Count: 2},
	{Role: "security_engineer", Count: 1},
	{Role: "devops_engineer", Count: 1},
	{Role: "qa_engineer", Count: 1},
}

// Role counts replaced per complexity tier.
var teamAdjustments = map[domain.Complexity]map[string]int{
	domain.ComplexityMedium: {"cloud_engineers": 3},
	domain.ComplexityHigh:   {"cloud_engineers": 4, "security_engineer": 2},
}

var rollbackProcedures = []string{
	"Document current state",
	"Create backup",
	"Execute rollback",
	"Verify rollback",
}

var successCriteria = []domain.SuccessCriterion{
	{Metric: "Zero data loss", Target: "100%"},
	{Metric: "Uptime during migration", Target: "99.9%"},
	{Metric: "Performance degradation", Target: "<5%"},
	{Metric: "Security posture", Target: "Equal or better"},
	{Metric: "Cost within budget", Target: "+/-10%"},
}

var riskMitigation = []domain.RiskMitigation{
	{
		Risk:        "Data loss during migration",
		Probability: "Low",
		Impact:      "Critical",
		Mitigation:  "Comprehensive backup strategy, validation checkpoints",
	},
	{
		Risk:        "Downtime exceeds window",
		Probability: "Medium",
		Impact:      "High",
		Mitigation:  "Phased migration, blue-green deployment",
	},
	{
		Risk:        "Security vulnerabilities introduced",
		Probability: "Medium",
		Impact:      "High",
		Mitigation:  "Security scanning at each phase, compliance validation",
	},
}
