// Package minio provides the MinIO implementation of objstore.Store.
//
// Usage:
//
//	cfg := objstore.DefaultConfig("localhost:9000", "minioadmin", "minioadmin")
//	store, err := minio.New(ctx, cfg)
//	if err != nil { ... }
//	defer store.Close()
//
//	buckets, err := store.ListBuckets(ctx)
package minio

import (
	"context"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/koustreak/miniokit/internal/errs"
	"github.com/koustreak/miniokit/internal/objstore"
)

// Driver is a MinIO implementation of objstore.Store.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client *miniogo.Client
	region string
}

// New connects to MinIO using the provided Config and returns a Driver.
// It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *objstore.Config) (*Driver, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindUnavailable, "failed to create minio client", err)
	}

	d := &Driver{client: client, region: cfg.Region}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// --- objstore.Store implementation ---

// Ping verifies the MinIO server is reachable by listing buckets.
func (d *Driver) Ping(ctx context.Context) error {
	if _, err := d.client.ListBuckets(ctx); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close is a no-op for MinIO — the SDK client holds no persistent connections.
func (d *Driver) Close() error {
	return nil
}

// BucketExists reports whether the named bucket is present on the server.
func (d *Driver) BucketExists(ctx context.Context, name string) (bool, error) {
	ok, err := d.client.BucketExists(ctx, name)
	if err != nil {
		return false, mapError(err, "failed to check bucket existence")
	}
	return ok, nil
}

// CreateBucket creates the named bucket.
func (d *Driver) CreateBucket(ctx context.Context, name string) error {
	err := d.client.MakeBucket(ctx, name, miniogo.MakeBucketOptions{Region: d.region})
	if err != nil {
		return mapError(err, "failed to create bucket")
	}
	return nil
}

// ListBuckets returns all buckets accessible with the configured credentials.
func (d *Driver) ListBuckets(ctx context.Context) ([]objstore.BucketInfo, error) {
	raw, err := d.client.ListBuckets(ctx)
	if err != nil {
		return nil, mapError(err, "failed to list buckets")
	}

	buckets := make([]objstore.BucketInfo, len(raw))
	for i, b := range raw {
		buckets[i] = objstore.BucketInfo{
			Name:      b.Name,
			CreatedAt: b.CreationDate,
		}
	}
	return buckets, nil
}

// DeleteBucket removes the named bucket. A non-empty bucket is rejected by
// the server and surfaces as ErrKindNotEmpty.
func (d *Driver) DeleteBucket(ctx context.Context, name string) error {
	if err := d.client.RemoveBucket(ctx, name); err != nil {
		return mapError(err, "failed to delete bucket")
	}
	return nil
}

// IsBucketEmpty reports whether the named bucket holds no objects.
// It lists at most one key; the first object seen settles the answer.
func (d *Driver) IsBucketEmpty(ctx context.Context, name string) (bool, error) {
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range d.client.ListObjects(listCtx, name, miniogo.ListObjectsOptions{
		Recursive: true,
		MaxKeys:   1,
	}) {
		if obj.Err != nil {
			return false, mapError(obj.Err, "failed to inspect bucket contents")
		}
		return false, nil
	}
	return true, nil
}

// RemoveAllObjects deletes every object in the named bucket, streaming keys
// from the listing into the SDK's bulk remover.
func (d *Driver) RemoveAllObjects(ctx context.Context, name string) error {
	objectsCh := make(chan miniogo.ObjectInfo)
	listErr := make(chan error, 1)

	go func() {
		defer close(objectsCh)
		for obj := range d.client.ListObjects(ctx, name, miniogo.ListObjectsOptions{Recursive: true}) {
			if obj.Err != nil {
				listErr <- obj.Err
				return
			}
			select {
			case objectsCh <- obj:
			case <-ctx.Done():
				listErr <- ctx.Err()
				return
			}
		}
		listErr <- nil
	}()

	for rErr := range d.client.RemoveObjects(ctx, name, objectsCh, miniogo.RemoveObjectsOptions{}) {
		if rErr.Err != nil {
			return mapError(rErr.Err, "failed to remove object "+rErr.ObjectName)
		}
	}

	if err := <-listErr; err != nil {
		return mapError(err, "failed to list objects for removal")
	}
	return nil
}
