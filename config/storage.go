package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client and bucket used for archiving uploaded
// ingredient photos.
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config initializes the S3 client from the storage configuration,
// falling back to the ambient AWS environment for credentials.
func NewS3Config(ctx context.Context, storage StorageConfig) (*S3Config, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(storage.Region),
	)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: storage.Bucket,
	}, nil
}
