package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"memberorg/internal/domain"
)

const uploadURLExpiry = 15 * time.Minute

// S3Config holds configuration for the S3-backed object store.
type S3Config struct {
	Bucket        string
	Region        string
	AccessKeyID   string
	SecretKey     string
	PublicBaseURL string
}

type s3Store struct {
	presign       *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// NewS3Store returns an ObjectStore that issues presigned PUT URLs scoped to
// a bucket + folder and builds public URLs from the configured base.
func NewS3Store(cfg S3Config) (domain.ObjectStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	awsCfg := aws.Config{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		),
	}
	client := s3.NewFromConfig(awsCfg)
	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &s3Store{
		presign:       s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: base,
	}, nil
}

func (s *s3Store) SignUpload(ctx context.Context, folder, filename, contentType string) (*domain.SignedUpload, error) {
	// Random prefix so repeated uploads of the same filename never collide.
	key := fmt.Sprintf("%s/%s-%s", folder, uuid.NewString(), filename)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &domain.SignedUpload{
		UploadURL: req.URL,
		PublicURL: s.PublicURL(key),
		Key:       key,
		ExpiresAt: time.Now().Add(uploadURLExpiry),
	}, nil
}

func (s *s3Store) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}
