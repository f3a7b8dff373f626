package aws

import (
	"context"
	"fmt"
	"strconv"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bharathk2498/migrationgpt/pkg/models/domain"
)

// Resource types emitted for live inventory. They carry the keywords the
// scanner, cost estimator and architecture recommender classify on.
const (
	TypeInstance = "aws_ec2_instance"
	TypeNetwork  = "aws_vpc_network"
	TypeDatabase = "aws_rds_database"
	TypeStorage  = "aws_s3_storage"
)

type Collector interface {
	GetResourceType() string
	Collect(ctx context.Context) ([]domain.Resource, error)
}

type EC2API interface {
	ec2.DescribeInstancesAPIClient
	ec2.DescribeVpcsAPIClient
}

type S3API interface {
	ListBuckets(ctx context.Context, params *s3.ListBucketsInput, optFns ...func(*s3.Options)) (*s3.ListBucketsOutput, error)
}

type ec2Collector struct {
	client EC2API
}

func NewEC2Collector(client EC2API) Collector {
	return &ec2Collector{client: client}
}

func NewEC2CollectorFromConfig(cfg awssdk.Config) Collector {
	return NewEC2Collector(ec2.NewFromConfig(cfg))
}

func (c *ec2Collector) GetResourceType() string {
	return "EC2"
}

func (c *ec2Collector) Collect(ctx context.Context) ([]domain.Resource, error) {
	var resources []domain.Resource

	instances := ec2.NewDescribeInstancesPaginator(c.client, &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("instance-state-name"),
				Values: []string{"running", "stopped"},
			},
		},
	})
	for instances.HasMorePages() {
		page, err := instances.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe EC2 instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				resources = append(resources, instanceResource(instance))
			}
		}
	}

	vpcs := ec2.NewDescribeVpcsPaginator(c.client, &ec2.DescribeVpcsInput{})
	for vpcs.HasMorePages() {
		page, err := vpcs.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe VPCs: %w", err)
		}
		for _, vpc := range page.Vpcs {
			resources = append(resources, domain.Resource{
				Type: TypeNetwork,
				Name: nameTag(vpc.Tags, awssdk.ToString(vpc.VpcId)),
				Properties: map[string]any{
					"vpc_id":     awssdk.ToString(vpc.VpcId),
					"cidr_block": awssdk.ToString(vpc.CidrBlock),
					"is_default": awssdk.ToBool(vpc.IsDefault),
				},
			})
		}
	}

	return resources, nil
}

func instanceResource(instance ec2types.Instance) domain.Resource {
	props := map[string]any{
		"instance_id":   awssdk.ToString(instance.InstanceId),
		"instance_type": string(instance.InstanceType),
	}
	if instance.Placement != nil {
		props["availability_zone"] = awssdk.ToString(instance.Placement.AvailabilityZone)
	}
	if instance.State != nil {
		props["state"] = string(instance.State.Name)
	}
	return domain.Resource{
		Type:       TypeInstance,
		Name:       nameTag(instance.Tags, awssdk.ToString(instance.InstanceId)),
		Properties: props,
	}
}

func nameTag(tags []ec2types.Tag, fallback string) string {
	for _, tag := range tags {
		if awssdk.ToString(tag.Key) == "Name" && awssdk.ToString(tag.Value) != "" {
			return awssdk.ToString(tag.Value)
		}
	}
	return fallback
}

type rdsCollector struct {
	client rds.DescribeDBInstancesAPIClient
}

func NewRDSCollector(client rds.DescribeDBInstancesAPIClient) Collector {
	return &rdsCollector{client: client}
}

func NewRDSCollectorFromConfig(cfg awssdk.Config) Collector {
	return NewRDSCollector(rds.NewFromConfig(cfg))
}

func (c *rdsCollector) GetResourceType() string {
	return "RDS"
}

func (c *rdsCollector) Collect(ctx context.Context) ([]domain.Resource, error) {
	var resources []domain.Resource

	pages := rds.NewDescribeDBInstancesPaginator(c.client, &rds.DescribeDBInstancesInput{})
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe RDS instances: %w", err)
		}
		for _, instance := range page.DBInstances {
			resources = append(resources, domain.Resource{
				Type: TypeDatabase,
				Name: awssdk.ToString(instance.DBInstanceIdentifier),
				Properties: map[string]any{
					"instance_class":      awssdk.ToString(instance.DBInstanceClass),
					"engine":              awssdk.ToString(instance.Engine),
					"engine_version":      awssdk.ToString(instance.EngineVersion),
					"allocated_storage":   strconv.Itoa(int(awssdk.ToInt32(instance.AllocatedStorage))),
					"multi_az":            awssdk.ToBool(instance.MultiAZ),
					"publicly_accessible": awssdk.ToBool(instance.PubliclyAccessible),
					"storage_encrypted":   awssdk.ToBool(instance.StorageEncrypted),
				},
			})
		}
	}
	return resources, nil
}

type s3Collector struct {
	client S3API
}

func NewS3Collector(client S3API) Collector {
	return &s3Collector{client: client}
}

func NewS3CollectorFromConfig(cfg awssdk.Config) Collector {
	return NewS3Collector(s3.NewFromConfig(cfg))
}

func (c *s3Collector) GetResourceType() string {
	return "S3"
}

func (c *s3Collector) Collect(ctx context.Context) ([]domain.Resource, error) {
	resp, err := c.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list S3 buckets: %w", err)
	}

	resources := make([]domain.Resource, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		props := map[string]any{}
		if bucket.CreationDate != nil {
			props["creation_date"] = bucket.CreationDate.UTC().Format("2006-01-02")
		}
		resources = append(resources, domain.Resource{
			Type:       TypeStorage,
			Name:       awssdk.ToString(bucket.Name),
			Properties: props,
		})
	}
	return resources, nil
}
