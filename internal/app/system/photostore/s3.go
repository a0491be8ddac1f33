// internal/app/system/photostore/s3.go
package photostore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// S3 stores photos as objects in a bucket and returns the public object
// URL as the durable reference.
type S3 struct {
	client  *s3.Client
	bucket  string
	prefix  string // key prefix, e.g. "uploads/"
	baseURL string // e.g. "https://bucket.s3.region.amazonaws.com/"
	log     *zap.Logger
}

// NewS3 builds an S3-backed photo store using the default AWS credential
// chain for the given region.
func NewS3(ctx context.Context, region, bucket, prefix string, logger *zap.Logger) (*S3, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		prefix:  prefix,
		baseURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", bucket, region),
		log:     logger,
	}, nil
}

// Save decodes an embedded image payload and uploads it under a generated
// unique key, returning the absolute object URL.
func (s *S3) Save(ctx context.Context, dataURL string) (string, error) {
	ext, data, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	key := s.prefix + newFilename(ext)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(ContentType(key)),
	})
	if err != nil {
		return "", fmt.Errorf("put photo object: %w", err)
	}
	return s.baseURL + key, nil
}

// Delete removes the object behind ref. References outside this bucket
// and embedded data references are no-ops.
func (s *S3) Delete(ctx context.Context, ref string) error {
	if ref == "" || IsEmbedded(ref) {
		return nil
	}
	key := strings.TrimPrefix(ref, s.baseURL)
	if key == ref {
		// Not one of ours (e.g. a legacy local path); nothing to remove here.
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
