package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bharathk2498/migrationgpt/pkg/models/api"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/bharathk2498/migrationgpt/pkg/services/ai"
	"github.com/bharathk2498/migrationgpt/pkg/services/assessment"
	"github.com/bharathk2498/migrationgpt/pkg/services/extractor"
)

const terraform = `
resource "aws_instance" "web_server" {
  instance_type = "t3.large"
}
resource "aws_s3_bucket" "data_bucket" {}
`

func newTestCLI(out *bytes.Buffer, in string) *CLI {
	return NewCLI(Options{
		Service: assessment.NewService(
			assessment.WithClock(func() time.Time { return time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) }),
			assessment.WithAIClient(ai.NewDemoClient(rand.New(rand.NewPCG(3, 3)))),
		),
		Discover: func(_ context.Context, profile, region string) (domain.Extraction, error) {
			if profile != "prod" {
				return domain.Extraction{}, errors.New("no such profile")
			}
			return domain.Extraction{
				Format:    domain.FormatLiveInventory,
				Outcome:   domain.OutcomeParsed,
				Resources: []domain.Resource{{Type: "aws_rds_database", Name: "orders"}},
				Metadata:  map[string]string{"region": region},
			}, nil
		},
		Output: out,
		Input:  strings.NewReader(in),
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCLI_AssessFileJSON(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&out, "")
	cli.SetArgs([]string{"assess", "--file", writeFile(t, "main.tf", terraform), "--cloud", "gcp", "--format", "json"})

	require.NoError(t, cli.Execute(context.Background()))

	var a api.Analysis
	require.NoError(t, json.Unmarshal(out.Bytes(), &a))
	assert.Equal(t, "main", a.ProjectName)
	assert.Equal(t, "gcp", a.TargetCloud)
	assert.Equal(t, "terraform", a.Infrastructure.FileType)
	assert.Equal(t, 2, a.Infrastructure.TotalResources)
	assert.Equal(t, "2025-01-06", a.MigrationPlan.Phases[0].StartDate)
}

func TestCLI_AssessStdinText(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&out, terraform)
	cli.SetArgs([]string{"assess", "--file", "-", "--project", "piped"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Cloud Migration Assessment Report")
	assert.Contains(t, out.String(), "piped (AWS)")
	assert.NotContains(t, out.String(), "=== Warnings ===")
}

func TestCLI_AssessStrict(t *testing.T) {
	t.Run("parsed input", func(t *testing.T) {
		var out bytes.Buffer
		cli := newTestCLI(&out, "")
		cli.SetArgs([]string{"assess", "--file", writeFile(t, "main.tf", terraform), "--strict", "--format", "json"})

		require.NoError(t, cli.Execute(context.Background()))

		var a api.Analysis
		require.NoError(t, json.Unmarshal(out.Bytes(), &a))
		assert.Equal(t, "parsed", a.Infrastructure.Outcome)
		assert.Equal(t, 2, a.Infrastructure.TotalResources)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		var out bytes.Buffer
		cli := newTestCLI(&out, "")
		cli.SetArgs([]string{"assess", "--file", writeFile(t, "infra.txt", terraform), "--strict"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, extractor.ErrUnsupportedFormat)
		assert.Empty(t, out.String())
	})
}

func TestCLI_AssessLiveInventory(t *testing.T) {
	var out bytes.Buffer
	cli := newTestCLI(&out, "")
	cli.SetArgs([]string{"assess", "--aws-profile", "prod", "--aws-region", "eu-west-1", "--format", "markdown"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "aws-prod (AWS)")
	assert.Contains(t, out.String(), "| orders |")
}

func TestCLI_AssessErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"assess"}, "at least one of the flags"},
		{"both sources", []string{"assess", "--file", "x.tf", "--aws-profile", "prod"}, "none of the others can be"},
		{"missing file", []string{"assess", "--file", "/does/not/exist.tf"}, "infrastructure file not found: /does/not/exist.tf"},
		{"strict with live inventory", []string{"assess", "--strict", "--aws-profile", "prod"}, "none of the others can be"},
		{"strict unparseable stdin", []string{"assess", "--file", "-", "--stdin-name", "stack.json", "--strict"}, "cannot assess stack.json"},
		{"bad format", []string{"assess", "--file", "-", "--format", "pdf"}, "unknown report format"},
		{"discovery failure", []string{"assess", "--aws-profile", "dev"}, "failed to discover AWS resources"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cli := newTestCLI(&out, terraform)
			cli.SetArgs(tt.args)

			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCLI_Clouds(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out bytes.Buffer
	cli := newTestCLI(&out, "")
	cli.SetArgs([]string{"clouds"})

	require.NoError(t, cli.Execute(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "CLOUD"))
	assert.True(t, strings.HasPrefix(lines[1], "aws"))
	assert.Contains(t, lines[1], "0.10")
	assert.True(t, strings.HasPrefix(lines[2], "azure"))
	assert.True(t, strings.HasPrefix(lines[3], "gcp"))
}
