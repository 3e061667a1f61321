// Package database builds the DynamoDB client every repository shares.
//
// Tables are provisioned out of band; the service only assumes they exist:
// jobs, job_events (job_id-index), quotes (job_id-index), payments
// (external_id-index, job_id-index), payouts (keyed by job_id), contractors
// (city_id-index) and notifications. Each repository reads its table name
// from env, so one account can host several environments side by side.
package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB builds the client from the environment. Setting
// DYNAMODB_ENDPOINT points it at a local instance (dynamodb-local in the
// compose setup); region and credentials come from AWS_REGION,
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY, falling back to values a
// local instance accepts.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := loadAWSConfig(context.Background())
	if err != nil {
		log.Fatalf("[database][infrastructure] aws config failed: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(envOr("AWS_REGION", "us-east-1")),
		// A local instance ignores credentials but the SDK insists on some.
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			envOr("AWS_ACCESS_KEY_ID", "local"),
			envOr("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
	}
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		opts = append(opts, config.WithEndpointResolverWithOptions(localEndpointResolver(endpoint)))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

// localEndpointResolver pins the DynamoDB service to one endpoint and lets
// every other service fall through to the SDK defaults.
func localEndpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
