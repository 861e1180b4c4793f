package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"litmark/internal/config"
)

// S3Store stores images in an S3-compatible bucket (AWS or MinIO).
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Store builds an S3 client with static credentials and an optional
// custom endpoint for MinIO-style deployments.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	// Path-style URLs for custom endpoints, virtual-hosted for AWS proper
	baseURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	if cfg.S3Endpoint != "" {
		baseURL = strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}, nil
}

// randomStorageKey spreads objects by upload date to keep listings sane.
func randomStorageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("images/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(filename))
}

// Put uploads the object and returns its public URL.
func (s *S3Store) Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := randomStorageKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
