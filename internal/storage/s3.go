package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shelfstack/bookstore-api/internal/config"
)

type S3Storage struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

// NewS3Storage builds the client from static credentials. A custom endpoint
// (MinIO and friends) switches to path-style addressing.
func NewS3Storage(cfg *config.Config) *S3Storage {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Storage{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: cfg.S3PublicBaseURL,
	}
}

func (s *S3Storage) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
