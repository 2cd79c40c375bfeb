// Package accesskey implements the access key lifecycle: list, create,
// delete, and inspect service credentials on the storage server.
//
// The manager validates and fills requests, then issues single blocking
// calls against the admin store. Nothing here retries: credential
// operations must not be silently duplicated, so transport failures
// surface to the operator instead.
package accesskey

import (
	"context"

	"github.com/koustreak/miniokit/internal/adminstore"
	"github.com/koustreak/miniokit/internal/errs"
	"github.com/koustreak/miniokit/internal/logger"
)

// Manager orchestrates access key operations against an adminstore.Store.
type Manager struct {
	store       adminstore.Store
	defaultName string
	log         *logger.Logger
}

// New returns a Manager. defaultName labels keys created without an
// explicit name (MINIO_ACCESS_KEY_NAME, "no-name" by default).
func New(store adminstore.Store, defaultName string, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.New(nil)
	}
	return &Manager{store: store, defaultName: defaultName, log: log}
}

// CreateOptions carries the operator-supplied fields for Create.
// Empty AccessKey/SecretKey are generated; empty Name falls back to the
// manager's default.
type CreateOptions struct {
	AccessKey   string
	SecretKey   string
	Name        string
	Description string
}

// List returns all access keys known to the server. Secrets are never
// included. An empty result is success, not an error.
func (m *Manager) List(ctx context.Context) ([]adminstore.AccessKey, error) {
	keys, err := m.store.ListAccessKeys(ctx)
	if err != nil {
		return nil, err
	}
	m.log.Debugf("listed %d access keys", len(keys))
	return keys, nil
}

// Create registers a new access key and returns the full credentials.
// This is the only point the secret is ever surfaced.
func (m *Manager) Create(ctx context.Context, opts CreateOptions) (*adminstore.Credentials, error) {
	req := adminstore.CreateRequest{
		AccessKey:   opts.AccessKey,
		SecretKey:   opts.SecretKey,
		Name:        opts.Name,
		Description: opts.Description,
	}

	if req.AccessKey == "" {
		id, err := generateAccessKeyID()
		if err != nil {
			return nil, err
		}
		req.AccessKey = id
	} else {
		// An operator-chosen ID gets an explicit conflict check so the
		// failure names the key instead of echoing a server code.
		if _, err := m.store.GetAccessKeyInfo(ctx, req.AccessKey); err == nil {
			return nil, errs.Newf(errs.ErrKindAlreadyExists,
				"access key %q already exists", req.AccessKey)
		} else if !errs.IsNotFound(err) {
			return nil, err
		}
	}

	if req.SecretKey == "" {
		secret, err := generateSecretKey()
		if err != nil {
			return nil, err
		}
		req.SecretKey = secret
	}

	if req.Name == "" {
		req.Name = m.defaultName
	}

	creds, err := m.store.CreateAccessKey(ctx, req)
	if err != nil {
		if errs.IsAlreadyExists(err) {
			return nil, errs.Wrap(errs.ErrKindAlreadyExists,
				"access key "+req.AccessKey+" already exists", err)
		}
		return nil, err
	}

	m.log.With().Str("access_key", creds.AccessKey).Logger().
		Info("access key created")
	return creds, nil
}

// Delete removes the access key. Deleting an absent key reports not-found
// explicitly; it is never swallowed as success.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errs.New(errs.ErrKindInvalidInput, "access key id must not be empty")
	}

	if err := m.store.DeleteAccessKey(ctx, id); err != nil {
		if errs.IsNotFound(err) {
			return errs.Wrap(errs.ErrKindNotFound,
				"access key "+id+" does not exist", err)
		}
		return err
	}

	m.log.With().Str("access_key", id).Logger().Info("access key deleted")
	return nil
}

// Info returns metadata for one access key. The secret is never part of
// the result; the server does not retain it after creation.
func (m *Manager) Info(ctx context.Context, id string) (*adminstore.AccessKey, error) {
	if id == "" {
		return nil, errs.New(errs.ErrKindInvalidInput, "access key id must not be empty")
	}

	key, err := m.store.GetAccessKeyInfo(ctx, id)
	if err != nil {
		if errs.IsNotFound(err) {
			return nil, errs.Wrap(errs.ErrKindNotFound,
				"access key "+id+" does not exist", err)
		}
		return nil, err
	}
	return key, nil
}
