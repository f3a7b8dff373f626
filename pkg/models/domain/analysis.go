package domain

import "time"

type AnalysisStatus string

const (
	AnalysisCompleted AnalysisStatus = "completed"
	AnalysisFailed    AnalysisStatus = "failed"
)

// Insights holds free-form commentary produced by the AI facade.
type Insights struct {
	Security     string
	Cost         string
	Architecture string
	Migration    string
}

// Analysis is the full output of one assessment run.
type Analysis struct {
	ID           string
	ProjectName  string
	TargetCloud  string
	FileName     string
	Status       AnalysisStatus
	CreatedAt    time.Time
	Duration     time.Duration
	Extraction   Extraction
	Scan         ScanResult
	Security     SecurityAssessment
	Cost         CostEstimate
	Architecture ArchitectureDesign
	Plan         MigrationPlan
	Insights     Insights
	Warnings     []string
}
