package ai

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/bharathk2498/migrationgpt/pkg/adapters"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
)

var cannedResponses = map[string][]string{
	"security": {
		"Critical security finding: Unencrypted S3 bucket detected. This poses a significant data exposure risk.",
		"High priority: Database is publicly accessible. Immediate action required to restrict access.",
		"Medium risk: Network security groups allow unrestricted inbound traffic on port 22.",
		"IAM policies are overly permissive. Recommend implementing least privilege access.",
	},
	"cost": {
		"Based on current infrastructure, estimated migration cost is $340,000 with 18% potential savings through right-sizing.",
		"Monthly operational costs projected at $12,500. Reserved instances could reduce this by 30%.",
		"Auto-scaling implementation could save approximately $45,000 annually.",
	},
	"architecture": {
		"Recommend containerization using ECS Fargate for improved scalability and reduced operational overhead.",
		"Multi-AZ deployment across 3 availability zones will ensure 99.99% uptime SLA.",
		"Implement CloudFront CDN to reduce latency by 60% for global users.",
	},
	"migration": {
		"Phased migration approach recommended over 20 weeks with 4 major milestones.",
		"Discovery and planning phase: 4 weeks, followed by proof of concept validation.",
		"Execute migration in 3 waves to minimize business disruption and risk.",
	},
}

// Prompt keywords checked in order; anything else is a migration question.
var topics = []string{"security", "cost", "architecture"}

var migrationWeeks = map[domain.Complexity]int{
	domain.ComplexityLow:    12,
	domain.ComplexityMedium: 20,
	domain.ComplexityHigh:   28,
}

type demoClient struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDemoClient returns a client answering from canned responses. A nil rnd
// seeds one from the clock.
func NewDemoClient(rnd *rand.Rand) Client {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &demoClient{rnd: rnd}
}

func (c *demoClient) Mode() string {
	return ModeDemo
}

func (c *demoClient) Analyze(_ context.Context, prompt string) string {
	p := strings.ToLower(prompt)
	for _, topic := range topics {
		if strings.Contains(p, topic) {
			return c.pick(cannedResponses[topic])
		}
	}
	return c.pick(cannedResponses["migration"])
}

func (c *demoClient) SecurityInsight(_ context.Context, findings []domain.Finding) string {
	return fmt.Sprintf(
		"Comprehensive security analysis completed across %d findings in encryption, access control, and network security domains. %s",
		len(findings), c.pick(cannedResponses["security"]),
	)
}

func (c *demoClient) CostInsight(_ context.Context, resources []domain.Resource) string {
	base := float64(len(resources)*15000 + c.intRange(50000, 100000))
	savings := base * 0.25
	return fmt.Sprintf(
		"Infrastructure analysis reveals opportunities for %s in annual savings. Right-size instances to save %s/year.",
		adapters.FormatCurrency(savings, "USD"), adapters.FormatCurrency(savings*0.4, "USD"),
	)
}

func (c *demoClient) ArchitectureInsight(_ context.Context, design domain.ArchitectureDesign) string {
	return fmt.Sprintf(
		"Modern cloud-native architecture recommended on %s for optimal performance and cost efficiency. %s",
		strings.ToUpper(design.TargetCloud), c.pick(cannedResponses["architecture"]),
	)
}

func (c *demoClient) MigrationInsight(_ context.Context, complexity domain.Complexity) string {
	weeks, ok := migrationWeeks[complexity]
	if !ok {
		weeks = migrationWeeks[domain.ComplexityMedium]
	}
	return fmt.Sprintf(
		"Based on %s complexity assessment, migration timeline is %d weeks. %s",
		complexity, weeks, c.pick(cannedResponses["migration"]),
	)
}

func (c *demoClient) pick(options []string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return options[c.rnd.IntN(len(options))]
}

// intRange returns a value in [lo, hi].
func (c *demoClient) intRange(lo, hi int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo + c.rnd.IntN(hi-lo+1)
}
