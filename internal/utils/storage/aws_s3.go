package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const S3Scheme = "s3"

var ErrInvalidS3URI = errors.New("invalid s3 uri")

type (
	AwsS3 interface {
		GetObject(ctx context.Context, bucket, key string) ([]byte, error)
	}

	S3Config struct {
		Region    string
		AccessKey string // optional, falls back to the default credential chain
		SecretKey string
		Endpoint  string // optional, e.g. MinIO
		PathStyle bool
	}

	awsS3 struct {
		client *s3.Client
	}
)

func NewAwsS3(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (AwsS3, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		for _, fn := range optFns {
			fn(o)
		}
	})

	return &awsS3{client: client}, nil
}

func (s *awsS3) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// IsS3URI reports whether location uses the s3:// scheme.
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, S3Scheme+"://")
}

// ParseS3URI splits s3://bucket/path/to/key into bucket and key.
func ParseS3URI(location string) (bucket, key string, err error) {
	u, err := url.Parse(location)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidS3URI, err)
	}
	if u.Scheme != S3Scheme {
		return "", "", fmt.Errorf("%w: scheme %q", ErrInvalidS3URI, u.Scheme)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q needs both bucket and key", ErrInvalidS3URI, location)
	}
	return bucket, key, nil
}
