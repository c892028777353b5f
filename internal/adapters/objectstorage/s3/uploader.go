package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBucketRequired = errors.New("s3 bucket required")

// Config del cliente S3. Si AccessKeyID está vacío se usa la cadena de credenciales
// por defecto (env, ~/.aws, IAM role).
type Config struct {
	Region          string
	Endpoint        string // opcional: MinIO / LocalStack
	UsePathStyle    bool
	AccessKeyID     string
	SecretAccessKey string
}

// Uploader implementa objectstorage.Uploader con un solo intento (sin retries).
type Uploader struct {
	up *manager.Uploader
}

func New(ctx context.Context, cfg Config) (*Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if r := strings.TrimSpace(cfg.Region); r != "" {
		opts = append(opts, awsconfig.WithRegion(r))
	}
	if strings.TrimSpace(cfg.AccessKeyID) != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if ep := strings.TrimSpace(cfg.Endpoint); ep != "" {
			o.BaseEndpoint = aws.String(ep)
		}
		o.UsePathStyle = cfg.UsePathStyle
		o.RetryMaxAttempts = 1
	})

	return &Uploader{up: manager.NewUploader(client)}, nil
}

func (u *Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	if strings.TrimSpace(bucket) == "" {
		return ErrBucketRequired
	}

	in := &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if ct := strings.TrimSpace(contentType); ct != "" {
		in.ContentType = aws.String(ct)
	}

	if _, err := u.up.Upload(ctx, in); err != nil {
		return fmt.Errorf("s3 put %s/%s: %w", bucket, key, err)
	}
	return nil
}
