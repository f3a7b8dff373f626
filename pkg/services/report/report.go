package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/api"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/migration"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

const Title = "Cloud Migration Assessment Report"

var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes a finished analysis in one output format.
type Renderer interface {
	Render(w io.Writer, analysis api.Analysis) error
	ContentType() string
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatText:
		return newTextRenderer(DefaultTableConfig()), nil
	case FormatMarkdown:
		return markdownRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Build turns an analysis into the section/detail layout shared by the text
// and markdown renderers.
func Build(a api.Analysis) *domain.Report {
	r := &domain.Report{
		Title:     Title,
		Subtitle:  fmt.Sprintf("%s (%s)", a.ProjectName, strings.ToUpper(a.TargetCloud)),
		Window:    window(a.MigrationPlan.Phases),
		TotalCost: a.Cost.TotalCost,
		Currency:  a.Cost.Currency,
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}

	r.Sections = append(r.Sections,
		summarySection(a),
		securitySection(a),
		costSection(a),
		architectureSection(a),
		migrationSection(a),
	)
	if len(a.Warnings) > 0 {
		warnings := domain.ReportSection{Title: "Warnings"}
		for i, w := range a.Warnings {
			warnings.Details = append(warnings.Details, domain.ReportDetail{
				Name:        fmt.Sprintf("#%d", i+1),
				Value:       "",
				Description: w,
			})
		}
		r.Sections = append(r.Sections, warnings)
	}
	return r
}

func window(phases []api.MigrationPhase) domain.MigrationWindow {
	if len(phases) == 0 {
		return domain.MigrationWindow{}
	}
	start, errStart := time.Parse(migration.DateLayout, phases[0].StartDate)
	end, errEnd := time.Parse(migration.DateLayout, phases[len(phases)-1].EndDate)
	if errStart != nil || errEnd != nil {
		return domain.MigrationWindow{}
	}
	return domain.MigrationWindow{
		Start: start,
		End:   end,
		Days:  int(end.Sub(start).Hours() / 24),
	}
}

func summarySection(a api.Analysis) domain.ReportSection {
	return domain.ReportSection{
		Title: "Executive Summary",
		Summary: map[string]any{
			"Risk Score":     a.Security.RiskScore,
			"Findings":       len(a.Security.Findings),
			"Total Cost":     adapters.FormatCurrency(a.Cost.TotalCost, a.Cost.Currency),
			"Timeline Weeks": a.MigrationPlan.TimelineWeeks,
			"Complexity":     a.MigrationPlan.Complexity,
			"Resources":      a.Infrastructure.TotalResources,
		},
		Details: []domain.ReportDetail{
			{Name: "Assessment", Value: a.Security.Summary},
		},
	}
}

func securitySection(a api.Analysis) domain.ReportSection {
	s := domain.ReportSection{
		Title: "Security Assessment",
		Summary: map[string]any{
			"Overall Risk": a.SecurityScan.RiskAssessment.OverallRisk,
		},
	}
	for name, c := range a.SecurityScan.ComplianceStatus {
		s.Summary[name] = fmt.Sprintf("%.1f%%", c.CompliancePercentage)
	}
	for _, f := range a.Security.Findings {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("[%s] %s", strings.ToUpper(string(f.Severity)), f.Type),
			Value:       f.Resource,
			Unit:        f.EstimatedFixTime,
			Description: f.Remediation,
		})
	}
	for _, rec := range a.Security.Recommendations {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        fmt.Sprintf("Priority %d", rec.Priority),
			Value:       rec.Action,
			Unit:        rec.Effort,
			Description: rec.Impact,
		})
	}
	return s
}

func costSection(a api.Analysis) domain.ReportSection {
	c := a.Cost
	s := domain.ReportSection{
		Title: "Cost Estimate",
		Summary: map[string]any{
			"Migration Cost": adapters.FormatCurrency(c.MigrationCost, c.Currency),
			"Monthly Cost":   adapters.FormatAmount(c.MonthlyOperationalCost),
			"Three Year TCO": adapters.FormatCurrency(c.ThreeYearTCO, c.Currency),
			"Target Cloud":   c.TargetCloud,
		},
	}
	for _, o := range c.Optimizations {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        o.Opportunity,
			Value:       adapters.FormatCurrency(o.EstimatedAnnualSavings, c.Currency),
			Unit:        "per year",
			Description: fmt.Sprintf("%s savings, %s effort", o.PotentialSavings, o.Effort),
		})
	}
	return s
}

func architectureSection(a api.Analysis) domain.ReportSection {
	s := domain.ReportSection{
		Title: "Target Architecture",
		Summary: map[string]any{
			"Provider": a.Architecture.InfrastructureCode.Provider,
			"Template": a.Architecture.InfrastructureCode.TemplateType,
		},
	}
	for _, category := range domain.ServiceCategories {
		for _, m := range a.Architecture.TargetArchitecture[string(category)] {
			name := m.Source
			if name == "" {
				name = m.Component
			}
			s.Details = append(s.Details, domain.ReportDetail{
				Name:        name,
				Value:       m.Target,
				Unit:        string(category),
				Description: m.Configuration,
			})
		}
	}
	for _, m := range a.Architecture.Modernization {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        m.Type,
			Value:       m.Timeline,
			Unit:        m.Effort,
			Description: m.Description,
		})
	}
	return s
}

func migrationSection(a api.Analysis) domain.ReportSection {
	p := a.MigrationPlan
	s := domain.ReportSection{
		Title: "Migration Plan",
		Summary: map[string]any{
			"Team Size": p.ResourcesNeeded.TotalSize,
		},
	}
	for _, ph := range p.Phases {
		s.Details = append(s.Details, domain.ReportDetail{
			Name:        ph.Name,
			Value:       ph.DurationWeeks,
			Unit:        "weeks",
			Description: fmt.Sprintf("%s to %s, %d effort days", ph.StartDate, ph.EndDate, ph.EffortDays),
		})
	}
	return s
}
