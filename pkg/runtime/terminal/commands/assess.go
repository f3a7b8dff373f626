package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/services/extractor"
	"github.com/bharathk2498/migrationgpt/pkg/services/report"
)

// DiscoverFunc returns a live inventory for an AWS profile.
type DiscoverFunc func(ctx context.Context, profile, region string) (domain.Extraction, error)

type AssessCmd struct {
	file       string
	stdinName  string
	cloud      string
	project    string
	format     string
	awsProfile string
	awsRegion  string
	strict     bool
	timeout    time.Duration
	service    assessment.Service
	discover   DiscoverFunc
}

func NewAssessCmd(service assessment.Service, discover DiscoverFunc) *cobra.Command {
	ac := &AssessCmd{service: service, discover: discover}
	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess an infrastructure definition or a live AWS account for migration",
		Example: `  atlas assess --file main.tf --cloud azure --format markdown
  atlas assess --aws-profile prod --aws-region eu-west-1 --cloud gcp`,
		RunE: ac.run,
	}

	cmd.Flags().StringVarP(&ac.file, "file", "f", "", "Terraform, CloudFormation or YAML file to assess (- reads stdin)")
	cmd.Flags().StringVar(&ac.stdinName, "stdin-name", "stdin.tf", "File name used to detect the format of stdin input")
	cmd.Flags().StringVar(&ac.cloud, "cloud", "aws", "Target cloud (aws, azure, gcp)")
	cmd.Flags().StringVar(&ac.project, "project", "", "Project name (defaults to the file name)")
	cmd.Flags().StringVar(&ac.format, "format", string(report.FormatText), "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&ac.awsProfile, "aws-profile", "", "Assess the live inventory of this AWS profile instead of a file")
	cmd.Flags().StringVar(&ac.awsRegion, "aws-region", "", "AWS region for live inventory")
	cmd.Flags().BoolVar(&ac.strict, "strict", false, "Fail on unreadable input instead of assessing sample resources")
	cmd.Flags().DurationVar(&ac.timeout, "timeout", 2*time.Minute, "Overall time limit")

	cmd.MarkFlagsMutuallyExclusive("file", "aws-profile")
	cmd.MarkFlagsMutuallyExclusive("strict", "aws-profile")
	cmd.MarkFlagsOneRequired("file", "aws-profile")

	return cmd
}

func (ac *AssessCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), ac.timeout)
	defer cancel()

	format, err := report.ParseFormat(ac.format)
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer(format)
	if err != nil {
		return err
	}

	req := assessment.Request{
		ProjectName: ac.project,
		TargetCloud: ac.cloud,
	}

	if ac.awsProfile != "" {
		if ac.discover == nil {
			return fmt.Errorf("live discovery is not available")
		}
		extraction, err := ac.discover(ctx, ac.awsProfile, ac.awsRegion)
		if err != nil {
			return fmt.Errorf("failed to discover AWS resources: %w", err)
		}
		req.Extraction = &extraction
		if req.ProjectName == "" {
			req.ProjectName = "aws-" + ac.awsProfile
		}
	} else {
		content, err := readInput(cmd.InOrStdin(), ac.file)
		if err != nil {
			return err
		}
		req.FileName = ac.file
		if ac.file == "-" {
			req.FileName = ac.stdinName
		}
		if ac.strict {
			extraction, err := extractor.ExtractStrict(ctx, req.FileName, content)
			if err != nil {
				return fmt.Errorf("cannot assess %s: %w", req.FileName, err)
			}
			req.Extraction = &extraction
		} else {
			req.Content = content
		}
		if req.ProjectName == "" {
			req.ProjectName = strings.TrimSuffix(filepath.Base(req.FileName), filepath.Ext(req.FileName))
		}
	}

	analysis, err := ac.service.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	return renderer.Render(cmd.OutOrStdout(), adapters.MapAnalysisDomainToApi(analysis))
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, nil
	}

	content, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", extractor.ErrNotFound, file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return content, nil
}
