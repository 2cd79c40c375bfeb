// Package objstore defines the data-plane capability interface the bucket
// lifecycle manager depends on.
//
// The provider (MinIO today) implements the Store interface; callers depend
// only on this package, never on a specific provider package. That keeps the
// reconciliation logic testable against an in-memory fake.
//
// Usage:
//
//	store, err := minio.New(ctx, objstore.DefaultConfig("localhost:9000", user, pass))
//	if err != nil { ... }
//	defer store.Close()
//
//	ok, err := store.BucketExists(ctx, "bucket-data")
package objstore

import (
	"context"
	"time"
)

// Store is the bucket-level surface of the storage server's data plane.
// Errors carry errs.ErrKind so callers can distinguish not-found,
// already-exists, not-empty, auth, and transport failures.
type Store interface {
	// Ping verifies the storage server is reachable with the configured
	// credentials.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close() error

	// BucketExists reports whether the named bucket is present on the server.
	BucketExists(ctx context.Context, name string) (bool, error)

	// CreateBucket creates the named bucket. Creating a bucket that already
	// exists fails with an already-exists error.
	CreateBucket(ctx context.Context, name string) error

	// ListBuckets returns all buckets visible to the configured credentials.
	ListBuckets(ctx context.Context) ([]BucketInfo, error)

	// DeleteBucket removes the named bucket. The server rejects deletion of
	// a non-empty bucket; that surfaces as a not-empty error.
	DeleteBucket(ctx context.Context, name string) error

	// IsBucketEmpty reports whether the named bucket holds no objects.
	IsBucketEmpty(ctx context.Context, name string) (bool, error)

	// RemoveAllObjects deletes every object in the named bucket.
	// Destructive; callers gate it behind an explicit force request.
	RemoveAllObjects(ctx context.Context, name string) error
}

// BucketInfo describes a storage bucket.
type BucketInfo struct {
	// Name is the bucket name.
	Name string

	// CreatedAt is when the bucket was created.
	// May be zero if the backend does not expose creation time.
	CreatedAt time.Time
}
