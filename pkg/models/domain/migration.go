package domain

import "time"

type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

type MigrationPhase struct {
	Name          string
	DurationWeeks int
	EffortDays    int
	StartDate     time.Time
	EndDate       time.Time
	Deliverables  []string
	Dependencies  []string
}

type TeamRole struct {
	Role  string
	Count int
}

type TeamComposition struct {
	Roles     []TeamRole
	TotalSize int
}

type RunbookEntry struct {
	Phase              string
	Steps              []string
	Checkpoints        []string
	RollbackProcedures []string
}

type SuccessCriterion struct {
	Metric string
	Target string
}

type RiskMitigation struct {
	Risk        string
	Probability string
	Impact      string
	Mitigation  string
}

type MigrationPlan struct {
	Complexity      Complexity
	Phases          []MigrationPhase
	TimelineWeeks   int
	Team            TeamComposition
	Runbook         []RunbookEntry
	SuccessCriteria []SuccessCriterion
	RiskMitigation  []RiskMitigation
}
