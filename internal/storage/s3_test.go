package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]bool
	deleted []string
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{}
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
	}
	return out, nil
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if !f.objects[aws.ToString(in.Key)] {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

var errNoCredentials = errors.New("no credentials")

type failingPresigner struct{}

func (failingPresigner) PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return nil, errNoCredentials
}

func TestS3SignPut(t *testing.T) {
	client := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		BaseEndpoint: aws.String("http://localhost:9000"),
		UsePathStyle: true,

		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	})
	s := newS3Storage(client, s3.NewPresignClient(client), "ulp-assets", "", discardLogger())

	raw, err := s.SignPut(context.Background(), "prop-1/a.png", "image/png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "/ulp-assets/prop-1/a.png", u.Path)
	assert.Equal(t, "900", q.Get("X-Amz-Expires"))
	assert.Contains(t, q.Get("X-Amz-SignedHeaders"), "content-type")
}

func TestS3SignPutGCSInterop(t *testing.T) {
	s, err := NewS3Storage(context.Background(), S3Options{
		BaseEndpoint: "https://storage.googleapis.com",
		Region:       "auto",
		AccessKey:    "GOOG1EHMACKEY",
		SecretKey:    "hmac-secret",
		Bucket:       "ulp-assets",
		PublicBase:   "https://storage.googleapis.com/ulp-assets",
		UsePathStyle: true,
	}, discardLogger())
	require.NoError(t, err)

	raw, err := s.SignPut(context.Background(), "prop-1/a.png", "image/png", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "storage.googleapis.com", u.Host)
	assert.Equal(t, "/ulp-assets/prop-1/a.png", u.Path)
	assert.Equal(t, "900", q.Get("X-Amz-Expires"))
	assert.Contains(t, strings.Split(q.Get("X-Amz-SignedHeaders"), ";"), "content-type")
	assert.Contains(t, q.Get("X-Amz-Credential"), "/auto/s3/aws4_request")
}

func TestS3SignPutWrapsErrors(t *testing.T) {
	s := newS3Storage(&fakeS3{}, failingPresigner{}, "ulp-assets", "", discardLogger())

	_, err := s.SignPut(context.Background(), "k/v", "image/png", time.Minute)
	assert.ErrorIs(t, err, ErrSigning)
	assert.ErrorIs(t, err, errNoCredentials)
}

func TestS3ListAndDelete(t *testing.T) {
	fake := &fakeS3{objects: map[string]bool{"prop-1/a.png": true}}
	s := newS3Storage(fake, failingPresigner{}, "ulp-assets", "https://cdn.example.com", discardLogger())
	ctx := context.Background()

	keys, err := s.List(ctx, "prop-1/")
	require.NoError(t, err)
	assert.Equal(t, []string{"prop-1/a.png"}, keys)

	keys, err = s.List(ctx, "nonexistent/")
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.NoError(t, s.Delete(ctx, "prop-1/a.png"))
	assert.ErrorIs(t, s.Delete(ctx, "prop-1/a.png"), ErrNotFound)
	assert.Equal(t, []string{"prop-1/a.png"}, fake.deleted)

	assert.Equal(t, "https://cdn.example.com/prop-1/a.png", s.PublicURL("prop-1/a.png"))
}
