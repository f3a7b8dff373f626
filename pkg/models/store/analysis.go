package store

import "time"

type AnalysisRecord struct {
	ID            string
	ProjectName   string
	TargetCloud   string
	Status        string
	SourceFormat  string
	RiskScore     int
	FindingsCount int
	EstimatedCost float64
	TimelineWeeks int
	DurationMs    int64
	CreatedAt     time.Time
	Payload       string // JSON encoded api.Analysis
}

type AnalysisStats struct {
	TotalAnalyses     int64
	CompletedAnalyses int64
	AvgDurationMs     float64
}
