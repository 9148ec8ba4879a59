package database

import (
	"context"

	appconfig "espaco_eventos/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// NewDynamoDBClient creates a DynamoDB client from the service config.
//
// A non-empty DYNAMODB_ENDPOINT points the client at a local instance (e.g.
// http://dynamodb:8000). Local DynamoDB does not validate credentials, but
// the AWS SDK requires some, so static ones are filled in.
func NewDynamoDBClient(ctx context.Context, cfg *appconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func newAWSConfig(ctx context.Context, cfg *appconfig.Config) (aws.Config, error) {
	accessKey := cfg.AWS.AccessKeyID
	secretKey := cfg.AWS.SecretAccessKey
	if accessKey == "" {
		accessKey = "local"
	}
	if secretKey == "" {
		secretKey = "local"
	}
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.AWS.Region),
		config.WithCredentialsProvider(creds),
	}

	if endpoint := cfg.AWS.DynamoDBEndpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
