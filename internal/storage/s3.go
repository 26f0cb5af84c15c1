package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go/middleware"
)

// removeContentTypeID names the presign build step that strips Content-Type
// from bodiless requests.
const removeContentTypeID = "RemoveContentTypeHeader"

type s3API interface {
	s3.ListObjectsV2APIClient
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Presigner interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Options configures an S3Storage.
type S3Options struct {
	BaseEndpoint string // full URL; empty uses the AWS regional endpoint
	Region       string
	AccessKey    string // empty falls back to the default credential chain
	SecretKey    string
	Bucket       string
	PublicBase   string
	UsePathStyle bool
}

// S3Storage implements Storage with the AWS SDK v2. With BaseEndpoint
// "https://storage.googleapis.com", region "auto" and HMAC keys it signs GCS V4 URLs.
type S3Storage struct {
	client     s3API
	presigner  s3Presigner
	bucket     string
	publicBase string
	log        *slog.Logger
}

// NewS3Storage loads AWS configuration once and builds the long-lived client.
func NewS3Storage(ctx context.Context, opts S3Options, log *slog.Logger) (*S3Storage, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// Keep presigned PUTs free of SDK checksum parameters the browser cannot reproduce.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return newS3Storage(client, s3.NewPresignClient(client), opts.Bucket, opts.PublicBase, log), nil
}

func newS3Storage(client s3API, presigner s3Presigner, bucket, publicBase string, log *slog.Logger) *S3Storage {
	return &S3Storage{
		client:     client,
		presigner:  presigner,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		log:        log.With("component", "storage", "bucket", bucket),
	}
}

// SignPut presigns a PutObject request bound to contentType.
func (s *S3Storage) SignPut(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry), s3.WithPresignClientFromClientOptions(keepContentType))
	if err != nil {
		return "", fmt.Errorf("%w for %q: %w", ErrSigning, key, err)
	}
	s.log.Debug("presigned put", "key", key, "expiry", expiry)
	return req.URL, nil
}

// keepContentType leaves Content-Type on the presigned request so it is part
// of X-Amz-SignedHeaders and the upload must send exactly that value.
func keepContentType(o *s3.Options) {
	o.APIOptions = append(o.APIOptions, func(stack *middleware.Stack) error {
		if _, ok := stack.Build.Get(removeContentTypeID); !ok {
			return nil
		}
		_, err := stack.Build.Remove(removeContentTypeID)
		return err
	})
}

// List pages through ListObjectsV2 under prefix.
func (s *S3Storage) List(ctx context.Context, prefix string) ([]string, error) {
	keys := []string{}
	p := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list objects %q: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

// Delete removes key after confirming it exists.
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isS3NotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("head object %q: %w", key, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the browser-accessible URL for the given key,
// e.g. "https://storage.googleapis.com/ulp-assets/prop-1/a.png".
func (s *S3Storage) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

func isS3NotFound(err error) bool {
	var nf *types.NotFound
	var nsk *types.NoSuchKey
	if errors.As(err, &nf) || errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
