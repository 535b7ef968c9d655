// Package storage issues time-limited download URLs for digital products
// held in a private S3 bucket.
package storage

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"therapy-paws/internal/common/config"
	"therapy-paws/internal/common/metrics"
)

// URLSigner issues presigned download URLs for stored objects.
type URLSigner interface {
	SignedDownloadURL(ctx context.Context, key string) (string, error)
}

type s3Signer struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewS3Signer builds a signer against the configured bucket using the
// ambient AWS credential chain.
func NewS3Signer(ctx context.Context, cfg config.StorageConfig) (URLSigner, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &s3Signer{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Bucket,
		ttl:     time.Duration(cfg.SignedURLTTLHours) * time.Hour,
	}, nil
}

func (s *s3Signer) SignedDownloadURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	metrics.SignedURLsIssued.Inc()
	return req.URL, nil
}
