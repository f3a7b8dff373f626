package api

import "time"

type ExecutiveSummary struct {
	Overview    string   `json:"overview"`
	KeyBenefits []string `json:"key_benefits"`
	Investment  string   `json:"investment"`
	Timeline    string   `json:"timeline"`
}

type TechnicalApproach struct {
	Methodology string   `json:"methodology"`
	Phases      []string `json:"phases"`
	Tools       []string `json:"tools_and_technologies"`
}

type ProposalPhase struct {
	Name  string `json:"name"`
	Weeks int    `json:"weeks"`
}

type ProposalTimeline struct {
	TotalDurationWeeks int             `json:"total_duration_weeks"`
	Phases             []ProposalPhase `json:"phases"`
	KeyMilestones      []string        `json:"key_milestones"`
}

type ProposalCost struct {
	TotalInvestment string            `json:"total_investment"`
	Breakdown       map[string]string `json:"breakdown"`
	PaymentTerms    string            `json:"payment_terms"`
	ROIProjection   string            `json:"roi_projection"`
}

type ProposalRole struct {
	Role        string `json:"role"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type ProposalTeam struct {
	TeamSize int            `json:"team_size"`
	Roles    []ProposalRole `json:"roles"`
}

type Proposal struct {
	ProjectName       string             `json:"project_name"`
	GeneratedDate     time.Time          `json:"generated_date"`
	ExecutiveSummary  ExecutiveSummary   `json:"executive_summary"`
	TechnicalApproach TechnicalApproach  `json:"technical_approach"`
	Timeline          ProposalTimeline   `json:"timeline"`
	CostEstimate      ProposalCost       `json:"cost_estimate"`
	TeamComposition   ProposalTeam       `json:"team_composition"`
	SuccessCriteria   []SuccessCriterion `json:"success_criteria"`
	RiskMitigation    []RiskMitigation   `json:"risk_mitigation"`
	NextSteps         []string           `json:"next_steps"`
}
