// Package storage archives publish receipts in an S3 bucket. Each receipt is
// kept under a dated key and mirrored to a "latest" key so the next publish
// can report what was live before it.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

const (
	defaultRegion = "us-east-1"
	latestDir     = "latest"
	dateLayout    = "2006/01/02"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Archive stores publish receipts in S3.
type Archive struct {
	client s3API
	bucket string
	prefix string
}

// New loads the default AWS credential chain for region and returns an
// archive writing to bucket under prefix.
func New(ctx context.Context, bucket, prefix, region string) (*Archive, error) {
	if bucket == "" {
		return nil, errors.New("receipt bucket is required")
	}
	if region == "" {
		region = defaultRegion
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewWithClient(bucket, prefix, s3.NewFromConfig(cfg)), nil
}

func NewWithClient(bucket, prefix string, client s3API) *Archive {
	return &Archive{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (a *Archive) Bucket() string { return a.bucket }
func (a *Archive) Prefix() string { return a.prefix }

func (a *Archive) KeyForDate(t time.Time, filename string) string {
	return a.key(t.UTC().Format(dateLayout), filename)
}

func (a *Archive) KeyForLatest(filename string) string {
	return a.key(latestDir, filename)
}

func (a *Archive) key(parts ...string) string {
	if a.prefix != "" {
		parts = append([]string{a.prefix}, parts...)
	}
	return strings.Join(parts, "/")
}

// UploadFile stores the receipt at localPath under key.
func (a *Archive) UploadFile(ctx context.Context, key, localPath, contentType, cacheControl string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(a.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  optional(contentType),
		CacheControl: optional(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// CopyToLatest mirrors srcKey to the latest key for filename. Any given
// content type or cache control replaces the source object's metadata.
func (a *Archive) CopyToLatest(ctx context.Context, srcKey, filename, contentType, cacheControl string) error {
	dst := a.KeyForLatest(filename)
	in := &s3.CopyObjectInput{
		Bucket:       aws.String(a.bucket),
		Key:          aws.String(dst),
		CopySource:   aws.String(copySource(a.bucket, srcKey)),
		ContentType:  optional(contentType),
		CacheControl: optional(cacheControl),
	}
	if in.ContentType != nil || in.CacheControl != nil {
		in.MetadataDirective = types.MetadataDirectiveReplace
	}
	if _, err := a.client.CopyObject(ctx, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", srcKey, dst, err)
	}
	return nil
}

// Latest returns the latest copy of filename. ok is false when there is none.
func (a *Archive) Latest(ctx context.Context, filename string) (data []byte, ok bool, err error) {
	key := a.KeyForLatest(filename)
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	switch {
	case IsNotFound(err):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	defer out.Body.Close()
	if data, err = io.ReadAll(out.Body); err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return data, true, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// copySource escapes each key segment but keeps the separators.
func copySource(bucket, key string) string {
	var b strings.Builder
	b.WriteString(bucket)
	for _, seg := range strings.Split(key, "/") {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

// IsNotFound reports whether err means the object does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
