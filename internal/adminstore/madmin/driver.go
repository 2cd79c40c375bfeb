// Package madmin provides the MinIO admin-API implementation of
// adminstore.Store, backed by the madmin-go SDK.
//
// Access keys are MinIO service accounts attached to the root user the
// driver authenticates as.
package madmin

import (
	"context"

	madmingo "github.com/minio/madmin-go/v3"

	"github.com/koustreak/miniokit/internal/adminstore"
	"github.com/koustreak/miniokit/internal/errs"
)

// Driver is a madmin-go implementation of adminstore.Store.
// It is safe for concurrent use by multiple goroutines.
type Driver struct {
	client *madmingo.AdminClient

	// user is the parent account new service accounts attach to.
	user string
}

// New connects to the MinIO admin API using the provided Config and returns
// a Driver. It calls Ping to validate the connection before returning.
func New(ctx context.Context, cfg *adminstore.Config) (*Driver, error) {
	client, err := madmingo.New(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindUnavailable, "failed to create admin client", err)
	}

	d := &Driver{client: client, user: cfg.AccessKey}

	if err := d.Ping(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

// --- adminstore.Store implementation ---

// Ping verifies the admin API is reachable by listing service accounts.
func (d *Driver) Ping(ctx context.Context) error {
	if _, err := d.client.ListServiceAccounts(ctx, d.user); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close is a no-op — the SDK client holds no persistent connections.
func (d *Driver) Close() error {
	return nil
}

// CreateAccessKey registers a new service account under the root user.
func (d *Driver) CreateAccessKey(ctx context.Context, req adminstore.CreateRequest) (*adminstore.Credentials, error) {
	creds, err := d.client.AddServiceAccount(ctx, madmingo.AddServiceAccountReq{
		TargetUser:  d.user,
		AccessKey:   req.AccessKey,
		SecretKey:   req.SecretKey,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, mapError(err, "failed to create access key")
	}

	return &adminstore.Credentials{
		AccessKey: creds.AccessKey,
		SecretKey: creds.SecretKey,
	}, nil
}

// ListAccessKeys returns every service account under the root user.
func (d *Driver) ListAccessKeys(ctx context.Context) ([]adminstore.AccessKey, error) {
	resp, err := d.client.ListServiceAccounts(ctx, d.user)
	if err != nil {
		return nil, mapError(err, "failed to list access keys")
	}

	keys := make([]adminstore.AccessKey, len(resp.Accounts))
	for i, acct := range resp.Accounts {
		keys[i] = adminstore.AccessKey{
			ID:          acct.AccessKey,
			ParentUser:  acct.ParentUser,
			Name:        acct.Name,
			Description: acct.Description,
			Status:      acct.AccountStatus,
			Expiration:  acct.Expiration,
		}
	}
	return keys, nil
}

// GetAccessKeyInfo returns metadata for one service account.
func (d *Driver) GetAccessKeyInfo(ctx context.Context, id string) (*adminstore.AccessKey, error) {
	info, err := d.client.InfoServiceAccount(ctx, id)
	if err != nil {
		return nil, mapError(err, "failed to fetch access key info")
	}

	return &adminstore.AccessKey{
		ID:          id,
		ParentUser:  info.ParentUser,
		Name:        info.Name,
		Description: info.Description,
		Status:      info.AccountStatus,
		Expiration:  info.Expiration,
	}, nil
}

// DeleteAccessKey removes the service account.
func (d *Driver) DeleteAccessKey(ctx context.Context, id string) error {
	if err := d.client.DeleteServiceAccount(ctx, id); err != nil {
		return mapError(err, "failed to delete access key")
	}
	return nil
}
