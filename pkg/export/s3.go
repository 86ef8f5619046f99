package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the slice of the S3 client the uploader needs.
// *s3.Client satisfies it.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader pushes rendered pages into an S3 bucket.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	up := export.NewS3Uploader(s3.NewFromConfig(cfg), "my-bucket", "site/")
//	err := up.Upload(ctx, exporter.Render(pages))
type S3Uploader struct {
	client PutObjectAPI
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3Uploader creates an uploader for the given bucket. prefix may be
// empty; otherwise it is joined in front of each object key.
func NewS3Uploader(client PutObjectAPI, bucket, prefix string) *S3Uploader {
	return &S3Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: slog.Default(),
	}
}

// Upload writes every rendered page as <prefix>/<name>.html with an HTML
// content type. The first failure aborts the upload.
func (u *S3Uploader) Upload(ctx context.Context, rendered map[string][]byte) error {
	if u == nil || u.client == nil {
		return fmt.Errorf("s3 uploader not configured")
	}
	for name, body := range rendered {
		key := path.Join(u.prefix, name+".html")
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(body),
			ContentType: aws.String("text/html; charset=utf-8"),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		u.logger.Info("uploaded page", "bucket", u.bucket, "key", key, "bytes", len(body))
	}
	return nil
}
