package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/rohits-web03/clubhouse/internal/config"
)

// R2Store keeps board archives in a Cloudflare R2 (S3 compatible) bucket.
type R2Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewR2Store builds the client from static credentials and the account
// endpoint.
func NewR2Store(cfg config.R2Config) (*R2Store, error) {
	if !cfg.Enabled() {
		return nil, errors.New("r2: account id, access key, secret and bucket are required")
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)

	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.BucketName,
	}, nil
}

func (s *R2Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("r2 put %s: %w", key, err)
	}
	return nil
}

// PresignGet creates a temporary download URL for key.
func (s *R2Store) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("r2 presign %s: %w", key, err)
	}
	return req.URL, nil
}
