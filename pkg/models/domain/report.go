package domain

import "time"

// Report is the section layout shared by the text and markdown renderers.
type Report struct {
	Title     string
	Subtitle  string
	Window    MigrationWindow
	Sections  []ReportSection
	TotalCost float64
	Currency  string
}

// MigrationWindow spans the first phase start to the last phase end. It is
// zero when the plan has no phases.
type MigrationWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

type ReportSection struct {
	Title   string
	Summary map[string]any // rendered sorted by key
	Details []ReportDetail
}

type ReportDetail struct {
	Name        string
	Value       any
	Unit        string
	Description string
}
