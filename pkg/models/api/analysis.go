package api

import "time"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type Resource struct {
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
}

type Extraction struct {
	FileType       string            `json:"file_type"`
	Outcome        string            `json:"outcome"`
	Reason         string            `json:"reason,omitempty"`
	Resources      []Resource        `json:"resources"`
	TotalResources int               `json:"total_resources"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type Finding struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	Severity         Severity `json:"severity"`
	Resource         string   `json:"resource"`
	Description      string   `json:"description"`
	Remediation      string   `json:"remediation"`
	ComplianceImpact []string `json:"compliance_impact"`
	EstimatedFixTime string   `json:"estimated_fix_time,omitempty"`
}

type ComplianceStatus struct {
	Compliant            bool    `json:"compliant"`
	Violations           int     `json:"violations"`
	CompliancePercentage float64 `json:"compliance_percentage"`
}

type RiskAssessment struct {
	OverallRisk      string `json:"overall_risk"`
	CriticalFindings int    `json:"critical_findings"`
	HighFindings     int    `json:"high_findings"`
	MediumFindings   int    `json:"medium_findings"`
	LowFindings      int    `json:"low_findings"`
}

type SecurityScan struct {
	TotalFindings    int                         `json:"total_findings"`
	ComplianceStatus map[string]ComplianceStatus `json:"compliance_status"`
	RiskAssessment   RiskAssessment              `json:"risk_assessment"`
	SampleFindings   bool                        `json:"sample_findings"`
}

type Recommendation struct {
	Priority int    `json:"priority"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Effort   string `json:"effort"`
}

type SecurityAssessment struct {
	RiskScore       int              `json:"risk_score"`
	Findings        []Finding        `json:"findings"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

type Optimization struct {
	Opportunity            string  `json:"opportunity"`
	PotentialSavings       string  `json:"potential_savings"`
	EstimatedAnnualSavings float64 `json:"estimated_annual_savings"`
	Effort                 string  `json:"effort"`
}

type CostBreakdown struct {
	OneTime            map[string]float64 `json:"one_time_costs"`
	MonthlyOperational map[string]float64 `json:"monthly_operational"`
}

type CostEstimate struct {
	TargetCloud            string         `json:"target_cloud"`
	Currency               string         `json:"currency"`
	MigrationCost          float64        `json:"migration_cost"`
	MonthlyOperationalCost float64        `json:"monthly_operational_cost"`
	YearlyOperationalCost  float64        `json:"yearly_operational_cost"`
	ThreeYearTCO           float64        `json:"three_year_tco"`
	TotalCost              float64        `json:"total_cost"`
	Optimizations          []Optimization `json:"optimization_opportunities"`
	Breakdown              CostBreakdown  `json:"cost_breakdown"`
}

type ServiceMapping struct {
	Source        string `json:"source,omitempty"`
	Target        string `json:"target,omitempty"`
	Component     string `json:"component,omitempty"`
	Configuration string `json:"configuration"`
}

type ModernizationOpportunity struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Effort      string   `json:"effort"`
	Timeline    string   `json:"timeline"`
}

type ArchitecturePattern struct {
	Pattern     string   `json:"pattern"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Benefits    string   `json:"benefits,omitempty"`
}

type IaCTemplate struct {
	Provider     string   `json:"provider"`
	TemplateType string   `json:"template_type"`
	Note         string   `json:"note"`
	Components   []string `json:"components"`
}

type ArchitectureDesign struct {
	TargetArchitecture map[string][]ServiceMapping `json:"target_architecture"`
	Modernization      []ModernizationOpportunity  `json:"modernization_opportunities"`
	Patterns           []ArchitecturePattern       `json:"recommended_patterns"`
	InfrastructureCode IaCTemplate                 `json:"infrastructure_as_code"`
}

type MigrationPhase struct {
	Name          string   `json:"name"`
	DurationWeeks int      `json:"duration_weeks"`
	EffortDays    int      `json:"effort_days"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	Deliverables  []string `json:"deliverables"`
	Dependencies  []string `json:"dependencies"`
}

type TeamComposition struct {
	Roles     map[string]int `json:"team_composition"`
	TotalSize int            `json:"total_team_size"`
}

type RunbookEntry struct {
	Phase              string   `json:"phase"`
	Steps              []string `json:"steps"`
	Checkpoints        []string `json:"checkpoints"`
	RollbackProcedures []string `json:"rollback_procedures"`
}

type SuccessCriterion struct {
	Metric string `json:"metric"`
	Target string `json:"target"`
}

type RiskMitigation struct {
	Risk        string `json:"risk"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

type MigrationPlan struct {
	Complexity      string             `json:"complexity"`
	Phases          []MigrationPhase   `json:"phases"`
	TimelineWeeks   int                `json:"timeline_weeks"`
	ResourcesNeeded TeamComposition    `json:"resources_needed"`
	Runbook         []RunbookEntry     `json:"runbook"`
	SuccessCriteria []SuccessCriterion `json:"success_criteria"`
	RiskMitigation  []RiskMitigation   `json:"risk_mitigation"`
}

type Insights struct {
	Security     string `json:"security,omitempty"`
	Cost         string `json:"cost,omitempty"`
	Architecture string `json:"architecture,omitempty"`
	Migration    string `json:"migration,omitempty"`
}

// Analysis is the full, JSON-shaped assessment document. It is what gets
// persisted and what the report and proposal renderers consume.
type Analysis struct {
	AnalysisID      string             `json:"analysis_id"`
	ProjectName     string             `json:"project_name"`
	TargetCloud     string             `json:"target_cloud"`
	FileName        string             `json:"file_name,omitempty"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	DurationSeconds float64            `json:"duration_seconds"`
	Infrastructure  Extraction         `json:"infrastructure"`
	SecurityScan    SecurityScan       `json:"security_scan"`
	Security        SecurityAssessment `json:"security_assessment"`
	Cost            CostEstimate       `json:"cost_estimate"`
	Architecture    ArchitectureDesign `json:"architecture"`
	MigrationPlan   MigrationPlan      `json:"migration_plan"`
	Insights        Insights           `json:"insights"`
	Warnings        []string           `json:"warnings,omitempty"`
}
