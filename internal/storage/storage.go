// Package storage persists generated remedy images in an S3-compatible
// object store. Objects are immutable: a regeneration writes a new key and
// the catalog pointer moves, old blobs are never overwritten.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	appconfig "herbwise/internal/config"
)

// ObjectStore is the narrow surface the image pipeline needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

type s3Store struct {
	client *s3.Client
	cfg    *appconfig.S3Config
}

// New builds an S3 client from the application config and makes sure the
// target bucket exists.
func New(ctx context.Context, cfg *appconfig.S3Config) (ObjectStore, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if cfg.Endpoint != "" {
			return aws.Endpoint{
				URL:               cfg.Endpoint,
				HostnameImmutable: true,
				Source:            aws.EndpointSourceCustom,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	store := &s3Store{client: client, cfg: cfg}

	if err := store.ensureBucket(ctx); err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("Failed to ensure bucket exists")
	}

	return store, nil
}

func (s *s3Store) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.cfg.Bucket),
	})
	if err == nil {
		return nil
	}

	log.Info().Str("bucket", s.cfg.Bucket).Msg("Creating image bucket")
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.cfg.Bucket),
	})
	return err
}

// Upload writes one immutable object.
func (s *s3Store) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to upload image to object storage")
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	log.Info().Str("key", key).Int("size", len(data)).Msg("Image uploaded to object storage")
	return nil
}

// PublicURL resolves a stored object's public address.
func (s *s3Store) PublicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
