package domain

type Recommendation struct {
	Priority int
	Action   string
	Impact   string
	Effort   string
}

type SecurityAssessment struct {
	RiskScore       int       // 0-100
	Findings        []Finding // sorted by severity, most severe first
	Recommendations []Recommendation
	Summary         string
}
