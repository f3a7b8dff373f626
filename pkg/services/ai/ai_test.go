package ai

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDemoClient_Analyze(t *testing.T) {
	c := NewDemoClient(seeded())
	ctx := context.Background()

	tests := []struct {
		prompt string
		topic  string
	}{
		{"Summarize the SECURITY posture", "security"},
		{"what will the cost be", "cost"},
		{"recommend an architecture", "architecture"},
		{"how should we proceed", "migration"},
		{"security and cost", "security"},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Contains(t, cannedResponses[tt.topic], c.Analyze(ctx, tt.prompt))
		})
	}
	assert.Equal(t, ModeDemo, c.Mode())
}

func TestDemoClient_SeededIsReproducible(t *testing.T) {
	ctx := context.Background()
	a := NewDemoClient(seeded())
	b := NewDemoClient(seeded())

	for range 5 {
		assert.Equal(t, a.Analyze(ctx, "cost"), b.Analyze(ctx, "cost"))
	}
	assert.Equal(t, a.CostInsight(ctx, nil), b.CostInsight(ctx, nil))
}

func TestDemoClient_Insights(t *testing.T) {
	c := NewDemoClient(seeded())
	ctx := context.Background()

	security := c.SecurityInsight(ctx, []domain.Finding{{}, {}})
	assert.Contains(t, security, "across 2 findings")

	cost := c.CostInsight(ctx, []domain.Resource{{Type: "compute"}})
	assert.Contains(t, cost, "Infrastructure analysis reveals opportunities for $")

	arch := c.ArchitectureInsight(ctx, domain.ArchitectureDesign{TargetCloud: "gcp"})
	assert.Contains(t, arch, "on GCP")

	assert.Contains(t, c.MigrationInsight(ctx, domain.ComplexityHigh), "migration timeline is 28 weeks")
	assert.Contains(t, c.MigrationInsight(ctx, domain.ComplexityLow), "migration timeline is 12 weeks")
}

type mockModel struct {
	mock.Mock
}

func (m *mockModel) Name() string {
	return "mock"
}

func (m *mockModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestRemoteClient(t *testing.T) {
	ctx := context.Background()

	t.Run("returns model text", func(t *testing.T) {
		model := new(mockModel)
		model.On("Generate", ctx, "Migration strategy for medium complexity").Return("Go in waves.", nil)

		c := NewRemoteClient(model)
		assert.Equal(t, "Go in waves.", c.MigrationInsight(ctx, domain.ComplexityMedium))
		assert.Equal(t, ModeProduction, c.Mode())
		model.AssertExpectations(t)
	})

	t.Run("degrades on error", func(t *testing.T) {
		model := new(mockModel)
		model.On("Generate", ctx, mock.Anything).Return("", errors.New("throttled"))

		c := NewRemoteClient(model)
		assert.Equal(t, degradedResponse, c.Analyze(ctx, "anything"))
	})

	t.Run("security prompt lists findings", func(t *testing.T) {
		model := new(mockModel)
		model.On("Generate", ctx, mock.MatchedBy(func(prompt string) bool {
			return assert.ObjectsAreEqual(
				"Security assessment for the following findings:\n- [critical] Unencrypted Storage on logs: not encrypted",
				prompt,
			)
		})).Return("ok", nil)

		c := NewRemoteClient(model)
		got := c.SecurityInsight(ctx, []domain.Finding{{
			Severity: domain.SeverityCritical, Type: "Unencrypted Storage", Resource: "logs", Description: "not encrypted",
		}})
		assert.Equal(t, "ok", got)
		model.AssertExpectations(t)
	})
}

type fakeBedrock struct {
	input  *bedrockruntime.InvokeModelInput
	output []byte
	err    error
}

func (f *fakeBedrock) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.output}, nil
}

func TestBedrockModel_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("anthropic messages body", func(t *testing.T) {
		fake := &fakeBedrock{output: []byte(`{"content":[{"type":"text","text":"Use Aurora."}]}`)}
		model := NewBedrockModelWithClient(fake, "")

		text, err := model.Generate(ctx, "database advice")
		require.NoError(t, err)
		assert.Equal(t, "Use Aurora.", text)
		assert.Equal(t, DefaultBedrockModel, *fake.input.ModelId)

		var body map[string]any
		require.NoError(t, json.Unmarshal(fake.input.Body, &body))
		assert.Equal(t, "bedrock-2023-05-31", body["anthropic_version"])
		assert.Equal(t, float64(4096), body["max_tokens"])
		assert.Equal(t, []any{map[string]any{"role": "user", "content": "database advice"}}, body["messages"])
	})

	t.Run("empty content", func(t *testing.T) {
		model := NewBedrockModelWithClient(&fakeBedrock{output: []byte(`{"content":[]}`)}, "custom")
		_, err := model.Generate(ctx, "x")
		assert.Error(t, err)
		assert.Equal(t, "bedrock:custom", model.Name())
	})

	t.Run("invocation error", func(t *testing.T) {
		model := NewBedrockModelWithClient(&fakeBedrock{err: errors.New("denied")}, "")
		_, err := model.Generate(ctx, "x")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ModeDemo, New(ctx, Config{}).Mode())
	assert.Equal(t, ModeDemo, New(ctx, Config{Mode: "demo"}).Mode())
	assert.Equal(t, ModeDemo, New(ctx, Config{Mode: ModeProduction, Provider: ProviderGemini}).Mode(),
		"missing API key falls back to demo")
	assert.Equal(t, ModeDemo, New(ctx, Config{Mode: ModeProduction, Provider: "watson"}).Mode())
}
