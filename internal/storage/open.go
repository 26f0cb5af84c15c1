package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// Drivers accepted by Open.
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
)

// Options selects and configures a backend.
type Options struct {
	Driver       string
	Endpoint     string // full URL, e.g. "https://storage.googleapis.com" or "http://localhost:9000"
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	PublicBase   string
	PathStyle    bool
	EnsureBucket bool
}

// Open builds the backend named by opts.Driver. With EnsureBucket set, the
// minio backend creates its bucket; the s3 backend ignores it.
func Open(ctx context.Context, opts Options, log *slog.Logger) (Storage, error) {
	switch strings.ToLower(opts.Driver) {
	case DriverS3:
		return NewS3Storage(ctx, S3Options{
			BaseEndpoint: opts.Endpoint,
			Region:       opts.Region,
			AccessKey:    opts.AccessKey,
			SecretKey:    opts.SecretKey,
			Bucket:       opts.Bucket,
			PublicBase:   opts.PublicBase,
			UsePathStyle: opts.PathStyle,
		}, log)

	case DriverMinio:
		host, secure, err := splitEndpoint(opts.Endpoint)
		if err != nil {
			return nil, err
		}
		s, err := NewMinioStorage(MinioOptions{
			Endpoint:   host,
			AccessKey:  opts.AccessKey,
			SecretKey:  opts.SecretKey,
			Region:     opts.Region,
			Bucket:     opts.Bucket,
			PublicBase: opts.PublicBase,
			UseSSL:     secure,
		}, log)
		if err != nil {
			return nil, err
		}
		if opts.EnsureBucket {
			if err := s.EnsureBucket(ctx); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
}

// splitEndpoint turns a URL into the host[:port] and TLS flag minio-go wants.
// A bare host is accepted and treated as https.
func splitEndpoint(endpoint string) (host string, secure bool, err error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", false, fmt.Errorf("parse storage endpoint: %w", err)
	}
	if u.Host == "" {
		return "", false, fmt.Errorf("storage endpoint %q has no host", endpoint)
	}
	switch u.Scheme {
	case "https":
		return u.Host, true, nil
	case "http":
		return u.Host, false, nil
	}
	return "", false, fmt.Errorf("storage endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
}
