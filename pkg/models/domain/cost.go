package domain

type Optimization struct {
	Opportunity            string
	PotentialSavings       string  // 20-30%
	EstimatedAnnualSavings float64 // USD
	Effort                 string
}

type CostBreakdown struct {
	OneTime            map[string]float64 // share of the migration cost
	MonthlyOperational map[string]float64 // share of the monthly operational cost
}

type CostEstimate struct {
	TargetCloud            string
	Currency               string
	MigrationCost          float64
	MonthlyOperationalCost float64
	YearlyOperationalCost  float64 // MonthlyOperationalCost * 12
	ThreeYearTCO           float64 // MigrationCost + MonthlyOperationalCost * 36
	TotalCost              float64
	Optimizations          []Optimization
	Breakdown              CostBreakdown
}
