package cost

import (
	"context"
	"math"
	"strings"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
	"github.com/rs/zerolog"
)

const (
	baseMigrationCost   = 50000
	perResourceCost     = 1000
	defaultComplexity   = 1000
	rightSizingMinCount = 5
)

type keywordCost struct {
	keyword string
	cost    float64
}

// First matching keyword wins.
var complexityCosts = []keywordCost{
	{keyword: "database", cost: 5000},
	{keyword: "network", cost: 2000},
}

var (
	rightSizing = domain.Optimization{
		Opportunity:            "Right-size compute instances",
		PotentialSavings:       "20-30%",
		EstimatedAnnualSavings: 15000,
		Effort:                 "Medium",
	}
	managedDatabase = domain.Optimization{
		Opportunity:            "Use managed database services",
		PotentialSavings:       "15-25%",
		EstimatedAnnualSavings: 12000,
		Effort:                 "Low",
	}
	autoScaling = domain.Optimization{
		Opportunity:            "Implement auto-scaling",
		PotentialSavings:       "25-40%",
		EstimatedAnnualSavings: 20000,
		Effort:                 "Medium",
	}
)

var oneTimeShares = map[string]float64{
	"discovery_and_assessment":   0.15,
	"migration_execution":        0.50,
	"testing_and_validation":     0.20,
	"training_and_documentation": 0.15,
}

var monthlyShares = map[string]float64{
	"compute":                   0.45,
	"storage":                   0.20,
	"networking":                0.15,
	"management_and_monitoring": 0.20,
}

type Estimator interface {
	Estimate(ctx context.Context, resources []domain.Resource, targetCloud string) domain.CostEstimate
}

type estimator struct {
	prices pricing.Store
}

func NewEstimator(prices pricing.Store) Estimator {
	if prices == nil {
		prices = pricing.NewStore()
	}
	return &estimator{prices: prices}
}

func (e *estimator) Estimate(ctx context.Context, resources []domain.Resource, targetCloud string) domain.CostEstimate {
	card := e.prices.GetRateCard(ctx, targetCloud)

	migration := MigrationCost(resources)
	monthly := MonthlyOperationalCost(resources, card)

	zerolog.Ctx(ctx).Info().
		Str("target_cloud", card.Cloud).
		Float64("migration_cost", migration).
		Float64("monthly_cost", monthly).
		Msg("cost estimate completed")

	return domain.CostEstimate{
		TargetCloud:            card.Cloud,
		Currency:               card.Currency,
		MigrationCost:          migration,
		MonthlyOperationalCost: monthly,
		YearlyOperationalCost:  monthly * 12,
		ThreeYearTCO:           migration + monthly*36,
		TotalCost:              migration,
		Optimizations:          Optimizations(resources),
		Breakdown:              Breakdown(migration, monthly),
	}
}

func MigrationCost(resources []domain.Resource) float64 {
	total := float64(baseMigrationCost + perResourceCost*len(resources))
	for _, r := range resources {
		total += complexityCost(strings.ToLower(r.Type))
	}
	return total
}

func complexityCost(resourceType string) float64 {
	for _, c := range complexityCosts {
		if strings.Contains(resourceType, c.keyword) {
			return c.cost
		}
	}
	return defaultComplexity
}

// MonthlyOperationalCost prices compute and database resources hourly and
// everything else at a flat monthly rate, rounded to cents.
func MonthlyOperationalCost(resources []domain.Resource, card pricing.RateCard) float64 {
	var total float64
	for _, r := range resources {
		t := strings.ToLower(r.Type)
		switch {
		case strings.Contains(t, "compute") || strings.Contains(t, "instance"):
			total += card.ComputeHourly * pricing.HoursPerMonth
		case strings.Contains(t, "database"):
			total += card.DatabaseHourly * pricing.HoursPerMonth
		case strings.Contains(t, "storage"):
			total += card.StorageMonthly
		default:
			total += card.OtherMonthly
		}
	}
	return math.Round(total*100) / 100
}

func Optimizations(resources []domain.Resource) []domain.Optimization {
	computeCount, databaseCount := 0, 0
	for _, r := range resources {
		t := strings.ToLower(r.Type)
		if strings.Contains(t, "compute") {
			computeCount++
		}
		if strings.Contains(t, "database") {
			databaseCount++
		}
	}

	var opts []domain.Optimization
	if computeCount > rightSizingMinCount {
		opts = append(opts, rightSizing)
	}
	if databaseCount > 0 {
		opts = append(opts, managedDatabase)
	}
	return append(opts, autoScaling)
}

func Breakdown(migration, monthly float64) domain.CostBreakdown {
	b := domain.CostBreakdown{
		OneTime:            make(map[string]float64, len(oneTimeShares)),
		MonthlyOperational: make(map[string]float64, len(monthlyShares)),
	}
	for k, share := range oneTimeShares {
		b.OneTime[k] = migration * share
	}
	for k, share := range monthlyShares {
		b.MonthlyOperational[k] = monthly * share
	}
	return b
}
