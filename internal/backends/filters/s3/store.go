// Package s3 stores the filter document as an object in an S3 compatible bucket.
package s3

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/zhulik/namefilter/internal/core"
)

const contentType = "application/yaml"

type Store struct {
	Config *core.Config
	Locker core.Locker
	Logger *slog.Logger

	client *minio.Client
}

func (s *Store) Init(ctx context.Context) error {
	client, err := minio.New(s.Config.FilterBackendS3Endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			s.Config.FilterBackendS3AccessKeyID, s.Config.FilterBackendS3SecretAccessKey, "",
		),
		Secure:       s.Config.FilterBackendS3UseSSL,
		Region:       s.Config.FilterBackendS3Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return err
	}

	s.client = client

	exists, err := client.BucketExists(ctx, s.Config.FilterBackendS3Bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	s.Logger.Info("creating filter bucket", "bucket", s.Config.FilterBackendS3Bucket)

	return client.MakeBucket(ctx, s.Config.FilterBackendS3Bucket, minio.MakeBucketOptions{
		Region: s.Config.FilterBackendS3Region,
	})
}

func (s *Store) Load(ctx context.Context) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.Config.FilterBackendS3Bucket, s.Config.FilterBackendS3Key,
		minio.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	info, err := obj.Stat()
	if isNotFound(err) {
		return nil, "", nil
	}

	if err != nil {
		return nil, "", err
	}

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", err
	}

	return content, info.ETag, nil
}

func (s *Store) Revision(ctx context.Context) (string, error) {
	info, err := s.client.StatObject(ctx, s.Config.FilterBackendS3Bucket, s.Config.FilterBackendS3Key,
		minio.StatObjectOptions{})
	if isNotFound(err) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return info.ETag, nil
}

// Update serializes writers with the locker: S3 has no compare-and-swap for
// plain PUTs.
func (s *Store) Update(ctx context.Context, fn core.DocumentMapFunc) error {
	ctx, cancel, err := s.Locker.Lock(ctx, s.lockKey())
	if err != nil {
		return err
	}
	defer cancel()

	content, revision, err := s.Load(ctx)
	if err != nil {
		return err
	}

	newContent, err := fn(ctx, content)
	if err != nil {
		return err
	}

	if revision != "" && bytes.Equal(content, newContent) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, s.Config.FilterBackendS3Bucket, s.Config.FilterBackendS3Key,
		bytes.NewReader(newContent), int64(len(newContent)), minio.PutObjectOptions{ContentType: contentType})

	return err
}

func (s *Store) lockKey() string {
	return "s3://" + s.Config.FilterBackendS3Bucket + "/" + s.Config.FilterBackendS3Key
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	code := minio.ToErrorResponse(err).Code

	return code == "NoSuchKey" || code == "NotFound"
}
