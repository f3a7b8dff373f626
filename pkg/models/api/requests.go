package api

import "time"

type AnalyzeRequest struct {
	GitHubURL   string `json:"github_url,omitempty"`
	ProjectName string `json:"project_name"`
	FileContent string `json:"file_content"`
	FileName    string `json:"file_name,omitempty"`
	TargetCloud string `json:"target_cloud"`
}

type AnalysisResponse struct {
	AnalysisID    string   `json:"analysis_id"`
	Status        string   `json:"status"`
	RiskScore     int      `json:"risk_score"`
	FindingsCount int      `json:"findings_count"`
	EstimatedCost float64  `json:"estimated_cost"`
	TimelineWeeks int      `json:"timeline_weeks"`
	Warnings      []string `json:"warnings,omitempty"`
}

type AnalysisSummary struct {
	AnalysisID    string    `json:"analysis_id"`
	ProjectName   string    `json:"project_name"`
	TargetCloud   string    `json:"target_cloud"`
	Status        string    `json:"status"`
	RiskScore     int       `json:"risk_score"`
	FindingsCount int       `json:"findings_count"`
	EstimatedCost float64   `json:"estimated_cost"`
	TimelineWeeks int       `json:"timeline_weeks"`
	CreatedAt     time.Time `json:"created_at"`
}

type AnalysisList struct {
	Analyses []AnalysisSummary `json:"analyses"`
	Count    int               `json:"count"`
}

type ServiceInfo struct {
	Service  string   `json:"service"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Mode     string   `json:"mode"`
	Features []string `json:"features"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Metrics struct {
	TotalAnalyses          int64   `json:"total_analyses"`
	AvgAnalysisTimeSeconds float64 `json:"avg_analysis_time_seconds"`
	SuccessRate            float64 `json:"success_rate"`
}
