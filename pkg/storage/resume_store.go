package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Config holds settings for the S3-compatible resume bucket.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	// Endpoint overrides the AWS endpoint for S3-compatible providers
	// (Supabase storage, Wasabi, MinIO). Empty means plain AWS S3.
	Endpoint string
	Bucket   string
	// PublicBaseURL is the base for public object URLs. Empty falls back
	// to the virtual-hosted AWS form.
	PublicBaseURL string
}

// ResumeStore uploads candidate resumes and hands back public URLs.
// Objects are keyed per candidate so one user can never overwrite
// another's file.
type ResumeStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	region        string
}

func NewResumeStore(ctx context.Context, cfg Config) (*ResumeStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// S3-compatible providers require path-style addressing
			o.UsePathStyle = true
		}
	})

	return &ResumeStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: cfg.PublicBaseURL,
		region:        cfg.Region,
	}, nil
}

// Upload stores a resume under <userID>/<uuid><ext> and returns its public URL.
func (s *ResumeStore) Upload(ctx context.Context, userID, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return s.PublicURL(key), nil
}

// PublicURL returns the publicly reachable URL for an object key.
func (s *ResumeStore) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// HealthCheck verifies the bucket is reachable.
func (s *ResumeStore) HealthCheck(ctx context.Context) error {
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
