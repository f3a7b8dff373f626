package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/ai"
	"github.com/bharathk2498/migrationgpt/pkg/services/architecture"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessor"
	"github.com/bharathk2498/migrationgpt/pkg/services/cost"
	"github.com/bharathk2498/migrationgpt/pkg/services/extractor"
	"github.com/bharathk2498/migrationgpt/pkg/services/migration"
	"github.com/bharathk2498/migrationgpt/pkg/services/scanner"
	"github.com/bharathk2498/migrationgpt/pkg/store/pricing"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// InlineFileName names content submitted without a file name. Inline
// submissions are Terraform unless a name says otherwise.
const InlineFileName = "inline.tf"

// Request describes one assessment. Either Content (with FileName deciding
// the format) or a ready Extraction, e.g. from live discovery, is used.
// An empty ID is filled by the service.
type Request struct {
	ID          string
	ProjectName string
	TargetCloud string
	FileName    string
	Content     []byte
	Extraction  *domain.Extraction
}

type Service interface {
	Run(ctx context.Context, req Request) (domain.Analysis, error)
}

type runner struct {
	extractor   extractor.Extractor
	scanner     *scanner.Scanner
	prices      pricing.Store
	estimator   cost.Estimator
	recommender *architecture.Recommender
	planner     *migration.Planner
	ai          ai.Client
	now         func() time.Time
	newID       func() string
}

type Option func(*runner)

func WithAIClient(c ai.Client) Option {
	return func(r *runner) { r.ai = c }
}

func WithPricing(s pricing.Store) Option {
	return func(r *runner) {
		r.prices = s
		r.estimator = cost.NewEstimator(s)
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *runner) { r.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(r *runner) { r.newID = newID }
}

func NewService(opts ...Option) Service {
	prices := pricing.NewStore()
	r := &runner{
		extractor:   extractor.NewExtractor(),
		scanner:     scanner.NewScanner(scanner.DefaultRuleSet()),
		prices:      prices,
		estimator:   cost.NewEstimator(prices),
		recommender: architecture.NewRecommender(architecture.DefaultCatalog()),
		planner:     migration.NewPlanner(migration.DefaultPhases()),
		now:         time.Now,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.ai == nil {
		r.ai = ai.NewDemoClient(nil)
	}
	return r
}

// Run executes extractor, scanner and assessor on one branch while the cost
// estimator and architecture recommender run alongside; the planner joins
// all three.
func (r *runner) Run(ctx context.Context, req Request) (domain.Analysis, error) {
	started := r.now()
	logger := zerolog.Ctx(ctx).With().Str("project", req.ProjectName).Logger()
	ctx = logger.WithContext(ctx)

	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, err
	}

	var warnings []string
	cloud, known := r.resolveCloud(req.TargetCloud)
	if !known {
		logger.Warn().Str("target_cloud", req.TargetCloud).Msg("unknown target cloud, using default")
		warnings = append(warnings, fmt.Sprintf("Unknown target cloud %q, estimating for %s", req.TargetCloud, cloud))
	}

	var extraction domain.Extraction
	if req.Extraction != nil {
		extraction = *req.Extraction
	} else {
		if strings.TrimSpace(req.FileName) == "" {
			req.FileName = InlineFileName
		}
		extraction = r.extractor.ExtractContent(ctx, req.FileName, req.Content)
	}
	if extraction.IsFallback() {
		warnings = append(warnings, fmt.Sprintf("Input could not be analyzed (%v); showing sample analysis results", extraction.Reason))
	}

	var (
		scan     domain.ScanResult
		security domain.SecurityAssessment
		estimate domain.CostEstimate
		design   domain.ArchitectureDesign
	)
	resources := extraction.Resources

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		scan = r.scanner.ScanExtraction(gctx, extraction)
		security = assessor.Assess(gctx, scan.Findings)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		estimate = r.estimator.Estimate(gctx, resources, cloud)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		design = r.recommender.Design(gctx, resources, cloud)
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Analysis{}, fmt.Errorf("assessment aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Analysis{}, fmt.Errorf("assessment aborted: %w", err)
	}

	if design.TargetCloud != cloud {
		logger.Info().Str("target_cloud", cloud).Str("catalog", design.TargetCloud).Msg("no service catalog for target cloud")
		warnings = append(warnings, fmt.Sprintf("No service catalog for %s, mapping services from %s", cloud, design.TargetCloud))
	}
	if scan.Fallback && !extraction.IsFallback() {
		warnings = append(warnings, "No security rule matched the input; showing sample findings")
	}

	plan := r.planner.Plan(migration.Input{
		ResourceCount: len(resources),
		Assessment:    security,
		Cost:          estimate,
		Architecture:  design,
	}, started)

	id := req.ID
	if id == "" {
		id = r.newID()
	}

	analysis := domain.Analysis{
		ID:           id,
		ProjectName:  req.ProjectName,
		TargetCloud:  cloud,
		FileName:     req.FileName,
		Status:       domain.AnalysisCompleted,
		CreatedAt:    started,
		Extraction:   extraction,
		Scan:         scan,
		Security:     security,
		Cost:         estimate,
		Architecture: design,
		Plan:         plan,
		Insights:     r.insights(ctx, scan, resources, design, plan),
		Warnings:     warnings,
	}
	analysis.Duration = r.now().Sub(started)

	logger.Info().
		Str("analysis_id", analysis.ID).
		Int("risk_score", security.RiskScore).
		Int("timeline_weeks", plan.TimelineWeeks).
		Dur("duration", analysis.Duration).
		Msg("analysis completed")

	return analysis, nil
}

// resolveCloud picks the cloud to estimate for. Any cloud with a rate card is
// accepted; an empty name silently means the default cloud.
func (r *runner) resolveCloud(requested string) (string, bool) {
	cloud := strings.ToLower(strings.TrimSpace(requested))
	if cloud == "" {
		return pricing.DefaultCloud, true
	}
	if r.prices.IsSupported(cloud) {
		return cloud, true
	}
	return pricing.DefaultCloud, false
}

func (r *runner) insights(
	ctx context.Context,
	scan domain.ScanResult,
	resources []domain.Resource,
	design domain.ArchitectureDesign,
	plan domain.MigrationPlan,
) domain.Insights {
	return domain.Insights{
		Security:     r.ai.SecurityInsight(ctx, scan.Findings),
		Cost:         r.ai.CostInsight(ctx, resources),
		Architecture: r.ai.ArchitectureInsight(ctx, design),
		Migration:    r.ai.MigrationInsight(ctx, plan.Complexity),
	}
}
