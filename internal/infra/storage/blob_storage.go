// Package storage keeps uploaded binaries in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// ErrInvalidObjectName is returned for names that could escape the key prefix.
var ErrInvalidObjectName = errors.New("invalid object name")

// BucketParams holds dependencies for OpenBucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the bucket named by storage.bucketUrl and closes it on shutdown.
// An unconfigured bucket falls back to process memory.
func OpenBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := defaultBucketURL
	if params.Config.Storage != nil && params.Config.Storage.BucketURL != "" {
		bucketURL = params.Config.Storage.BucketURL
	}

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Blob storage opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// blobStorage implements service.FileStorage on top of a gocloud bucket.
type blobStorage struct {
	bucket *blob.Bucket
	prefix string
}

// NewBlobStorage wraps bucket; every key is stored under prefix.
func NewBlobStorage(bucket *blob.Bucket, prefix string) service.FileStorage {
	return &blobStorage{
		bucket: bucket,
		prefix: prefix,
	}
}

// NewBlobStorageFromConfig is the Fx constructor for blobStorage.
func NewBlobStorageFromConfig(bucket *blob.Bucket, cfg *config.Config) service.FileStorage {
	prefix := ""
	if cfg.Storage != nil {
		prefix = cfg.Storage.KeyPrefix
	}

	return NewBlobStorage(bucket, prefix)
}

// Save streams r into the bucket. A failed copy aborts the write so no partial blob is left behind.
func (s *blobStorage) Save(ctx context.Context, name string, r io.Reader, contentType string) (*service.ObjectInfo, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open writer for %s", key)
	}

	written, err := io.Copy(w, r)
	if err != nil {
		// Cancelling the writer context before Close discards the upload
		cancel()
		_ = w.Close()

		return nil, errors.Wrapf(err, "failed to write %s", key)
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s", key)
	}

	return &service.ObjectInfo{
		Key:         key,
		Size:        written,
		ContentType: contentType,
	}, nil
}

// Open returns a reader for the blob stored under name.
func (s *blobStorage) Open(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error) {
	key, err := s.key(name)
	if err != nil {
		return nil, nil, service.ErrObjectNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrapf(err, "failed to open %s", key)
	}

	return reader, &service.ObjectInfo{
		Key:         key,
		Size:        reader.Size(),
		ContentType: reader.ContentType(),
	}, nil
}

func (s *blobStorage) key(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidObjectName
	}

	return s.prefix + name, nil
}
