package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pantrychef/backend/config"
)

// PhotoArchive stores uploaded ingredient photos in S3 so detections can be
// audited later. Archival is best-effort; detection never blocks on it.
type PhotoArchive struct {
	s3Config *config.S3Config
}

func NewPhotoArchive(s3Config *config.S3Config) *PhotoArchive {
	return &PhotoArchive{s3Config: s3Config}
}

// Archive uploads the photo and returns its public URL.
func (p *PhotoArchive) Archive(ctx context.Context, imageData []byte, contentType string) (string, error) {
	if p == nil || p.s3Config == nil {
		return "", fmt.Errorf("photo archive not configured")
	}

	key := fmt.Sprintf("ingredient-photos/%s/%s", time.Now().UTC().Format("2006-01-02"), uuid.New().String())

	_, err := p.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.s3Config.BucketName, key), nil
}
