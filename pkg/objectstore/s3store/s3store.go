// Package s3store provides an objectstore.Store backed by the AWS S3 API. It
// works against AWS itself and against self-hosted implementations like minio.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"vantage/pkg/logger"
	"vantage/pkg/objectstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Options configures the S3 client.
type Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UsePathStyle    bool
	PresignExpiry   time.Duration
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// Store implements objectstore.Store. It is safe for concurrent use.
type Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
}

var _ objectstore.Store = (*Store)(nil)

// New builds a Store. It does not touch the network.
func New(ctx context.Context, opts Options) (*Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	if opts.HTTPClient != nil {
		loadOpts = append(loadOpts, awsconfig.WithHTTPClient(opts.HTTPClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	expiry := opts.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		expiry:    expiry,
	}, nil
}

func (s *Store) EnsureBucket(ctx context.Context) error {
	_, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		logger.Info(ctx, "bucket created", zap.String("bucket", s.bucket))

		return nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusConflict {
		return nil
	}

	return fmt.Errorf("could not create bucket %q: %w", s.bucket, err)
}

func (s *Store) PresignPut(ctx context.Context, key, contentType string, size int64) (objectstore.PresignedRequest, error) {
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, in, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return objectstore.PresignedRequest{}, fmt.Errorf("could not presign upload: %w", err)
	}

	return objectstore.PresignedRequest{
		URL:       req.URL,
		Method:    req.Method,
		Header:    req.SignedHeader,
		ExpiresAt: time.Now().Add(s.expiry),
	}, nil
}

func (s *Store) PresignGet(ctx context.Context, key, filename string) (objectstore.PresignedRequest, error) {
	in := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if filename != "" {
		in.ResponseContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", filename))
	}

	req, err := s.presigner.PresignGetObject(ctx, in, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return objectstore.PresignedRequest{}, fmt.Errorf("could not presign download: %w", err)
	}

	return objectstore.PresignedRequest{
		URL:       req.URL,
		Method:    req.Method,
		Header:    req.SignedHeader,
		ExpiresAt: time.Now().Add(s.expiry),
	}, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("could not delete object %q: %w", key, err)
	}

	return nil
}
