// Package storage uploads merchant assets to a blob bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests

	"tapadmin/config"
	"tapadmin/internal/domain/lifecycle"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
)

// blobStorage implements service.StorageService on a gocloud bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobStorage opens the configured bucket.
func NewBlobStorage(cfg *config.Config) (service.StorageService, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open storage bucket")
	}

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// UploadMerchantAsset writes the object under a fresh per-merchant key and
// returns the public URL to store on the merchant document.
func (s *blobStorage) UploadMerchantAsset(ctx context.Context, merchantID, kind, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("merchants/%s/%s/%s-%s", merchantID, kind, uuid.NewString(), sanitizeFilename(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}
	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "write asset")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "finalize asset")
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStorage) Close() error {
	return s.bucket.Close()
}

// sanitizeFilename strips any path components and spaces from an uploaded
// filename before it becomes part of an object key.
func sanitizeFilename(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == "/" || base == "" {
		return "upload"
	}

	return base
}
