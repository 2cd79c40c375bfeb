// Package adminstore defines the administrative capability interface the
// access key lifecycle manager depends on.
//
// MinIO models access keys as service accounts under a parent user; this
// package hides that detail behind a small store interface so the lifecycle
// logic can be tested against an in-memory fake.
package adminstore

import (
	"context"
	"time"
)

// Store is the administrative surface for access key management.
// Errors carry errs.ErrKind so callers can distinguish not-found,
// already-exists, auth, and transport failures.
type Store interface {
	// Ping verifies the admin API is reachable with the configured
	// root credentials.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close() error

	// CreateAccessKey registers a new access key. Empty AccessKey/SecretKey
	// fields in req are filled by the caller before this is invoked; the
	// store never generates credentials itself. A conflicting access key ID
	// fails with an already-exists error.
	CreateAccessKey(ctx context.Context, req CreateRequest) (*Credentials, error)

	// ListAccessKeys returns every access key known to the server.
	// Secrets are never included; the server does not retain them.
	ListAccessKeys(ctx context.Context) ([]AccessKey, error)

	// GetAccessKeyInfo returns metadata for one access key.
	// Fails with a not-found error when the key is absent.
	GetAccessKeyInfo(ctx context.Context, id string) (*AccessKey, error)

	// DeleteAccessKey removes the access key. Deleting an absent key fails
	// with a not-found error rather than succeeding silently.
	DeleteAccessKey(ctx context.Context, id string) error
}

// CreateRequest carries the fields for a new access key.
type CreateRequest struct {
	// AccessKey is the key identifier. Required by the store; the lifecycle
	// manager generates one when the operator did not supply it.
	AccessKey string

	// SecretKey is the secret. Same generation rule as AccessKey.
	SecretKey string

	// Name is the human-readable label.
	Name string

	// Description is free-form operator text.
	Description string
}

// Credentials is the full key material returned exactly once, at creation.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// AccessKey describes an access key as reported by the server.
// The secret is deliberately absent: it is only surfaced at creation.
type AccessKey struct {
	// ID is the access key identifier.
	ID string

	// ParentUser is the account the key belongs to.
	ParentUser string

	// Name is the human-readable label.
	Name string

	// Description is free-form operator text.
	Description string

	// Status is the server-side state, "on" or "off".
	Status string

	// Expiration is the key's expiry, nil when the key never expires.
	Expiration *time.Time
}

// Config holds the settings needed to connect to the admin API.
type Config struct {
	// Endpoint is the host:port of the storage server.
	Endpoint string

	// AccessKey / SecretKey are the root (administrative) credentials.
	// Created service accounts are attached to this user.
	AccessKey string
	SecretKey string

	// UseSSL controls whether TLS is used for the connection.
	UseSSL bool
}
