package deploy

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vedantk/website/internal/config"
	"github.com/vedantk/website/internal/errors"
)

// Client is the subset of the S3 API used by Run. *s3.Client satisfies it.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Environment variables read for credentials and region.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvRegion          = "AWS_REGION"
	EnvDefaultRegion   = "AWS_DEFAULT_REGION"
)

// EnvCredentials returns a provider reading static keys through getenv.
func EnvCredentials(getenv func(string) string) aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id, secret := getenv(EnvAccessKeyID), getenv(EnvSecretAccessKey)
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("E310").
				WithDetailf("%s and %s must be set", EnvAccessKeyID, EnvSecretAccessKey)
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    getenv(EnvSessionToken),
			Source:          "Environment",
		}, nil
	})
}

// NewClient builds an S3 client from the deploy settings, with credentials
// taken from the environment. The region falls back to AWS_REGION, then
// AWS_DEFAULT_REGION. A custom endpoint switches to path-style addressing.
func NewClient(cfg config.DeployConfig, getenv func(string) string) (*s3.Client, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	creds := EnvCredentials(getenv)
	if _, err := creds.Retrieve(context.Background()); err != nil {
		return nil, err
	}

	region := cfg.Region
	if region == "" {
		region = getenv(EnvRegion)
	}
	if region == "" {
		region = getenv(EnvDefaultRegion)
	}
	if region == "" {
		if cfg.Endpoint == "" {
			return nil, errors.New("E310").WithDetail("no region configured").
				WithSuggestion("Set deploy.region in site.json or AWS_REGION.")
		}
		region = "us-east-1"
	}

	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(creds),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts), nil
}
