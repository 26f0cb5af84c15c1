package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioClient is the subset of *minio.Client used here, so tests can fake it.
type minioClient interface {
	PresignHeader(ctx context.Context, method, bucketName, objectName string, expires time.Duration, reqParams url.Values, extraHeaders http.Header) (*url.URL, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
}

// MinioOptions configures a MinioStorage.
type MinioOptions struct {
	Endpoint   string // host[:port], e.g. "localhost:9000"
	AccessKey  string
	SecretKey  string
	Region     string
	Bucket     string
	PublicBase string
	UseSSL     bool
}

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// minio-go falls back to V2 signing for storage.googleapis.com, which cannot
// bind Content-Type, so GCS goes through S3Storage instead.
type MinioStorage struct {
	client     minioClient
	bucket     string
	publicBase string
	log        *slog.Logger
}

// NewMinioStorage creates a MinIO client. Setting Region keeps signing local:
// the client never has to ask the server for the bucket location.
func NewMinioStorage(opts MinioOptions, log *slog.Logger) (*MinioStorage, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return newMinioStorage(client, opts.Bucket, opts.PublicBase, log), nil
}

func newMinioStorage(client minioClient, bucket, publicBase string, log *slog.Logger) *MinioStorage {
	return &MinioStorage{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		log:        log.With("component", "storage", "bucket", bucket),
	}
}

// EnsureBucket creates the bucket if missing and applies a public-read policy.
// Intended for local MinIO; production buckets are provisioned out of band.
func (s *MinioStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %q: %w", s.bucket, err)
		}
		s.log.Info("created bucket")
	}

	if err := s.client.SetBucketPolicy(ctx, s.bucket, publicReadPolicy(s.bucket)); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	return nil
}

// SignPut returns a V4 presigned PUT URL with Content-Type among the signed headers.
func (s *MinioStorage) SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	u, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, key, expiry, nil, headers)
	if err != nil {
		return "", fmt.Errorf("%w for %q: %w", ErrSigning, key, err)
	}
	s.log.Debug("presigned put", "key", key, "expiry", expiry)
	return u.String(), nil
}

// List returns every key under prefix.
func (s *MinioStorage) List(ctx context.Context, prefix string) ([]string, error) {
	// Cancelling on return stops the listing goroutine if we bail out early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := []string{}
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("list objects %q: %w", prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// Delete removes the object at key from the bucket. S3 deletes succeed for
// missing keys, so existence is checked first.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isMinioNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("stat object %q: %w", key, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given key.
// For local MinIO: "http://localhost:9000/ulp-assets/prop-1/a.png"
func (s *MinioStorage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

func isMinioNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}

// publicReadPolicy returns an S3 bucket policy JSON that allows anonymous GET on all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
