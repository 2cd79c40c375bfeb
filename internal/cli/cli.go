// Package cli holds the wiring shared by the accesskeyctl and bucketctl
// entry points: configuration-driven client construction and the mapping
// from error kinds to process exit codes.
package cli

import (
	"context"

	"github.com/koustreak/miniokit/internal/adminstore"
	adminminio "github.com/koustreak/miniokit/internal/adminstore/madmin"
	"github.com/koustreak/miniokit/internal/bucket"
	"github.com/koustreak/miniokit/internal/config"
	"github.com/koustreak/miniokit/internal/errs"
	"github.com/koustreak/miniokit/internal/logger"
	"github.com/koustreak/miniokit/internal/objstore"
	objminio "github.com/koustreak/miniokit/internal/objstore/minio"
)

// Exit codes. 0 is success, including idempotent no-ops; everything else
// maps an error kind so scripts can branch on the failure class.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitConfig        = 2
	ExitNotFound      = 3
	ExitAlreadyExists = 4
	ExitNotEmpty      = 5
	ExitUnavailable   = 6
)

// ExitCode maps err to the process exit code. A nil error is success.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errs.KindOf(err) {
	case errs.ErrKindConfigMissing, errs.ErrKindInvalidInput:
		return ExitConfig
	case errs.ErrKindNotFound:
		return ExitNotFound
	case errs.ErrKindAlreadyExists:
		return ExitAlreadyExists
	case errs.ErrKindNotEmpty:
		return ExitNotEmpty
	case errs.ErrKindUnavailable, errs.ErrKindPermissionDenied, errs.ErrKindTimeout:
		return ExitUnavailable
	default:
		return ExitFailure
	}
}

// BatchExitCode reports ExitOK when every result succeeded and
// ExitFailure otherwise. Partial success is still a non-zero exit.
func BatchExitCode(results []bucket.Result) int {
	for _, r := range results {
		if !r.Ok() {
			return ExitFailure
		}
	}
	return ExitOK
}

// NewLogger builds the process logger from the resolved configuration.
func NewLogger(cfg *config.Config) *logger.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
}

// AdminStore connects to the admin API described by cfg. The returned
// store has already passed a connection check.
func AdminStore(ctx context.Context, cfg *config.Config) (adminstore.Store, error) {
	host, secure, err := cfg.ServerAddress()
	if err != nil {
		return nil, err
	}
	return adminminio.New(ctx, &adminstore.Config{
		Endpoint:  host,
		AccessKey: cfg.RootUser,
		SecretKey: cfg.RootPassword,
		UseSSL:    secure,
	})
}

// DataStore connects to the data plane described by cfg. The returned
// store has already passed a connection check.
func DataStore(ctx context.Context, cfg *config.Config) (objstore.Store, error) {
	host, secure, err := cfg.ServerAddress()
	if err != nil {
		return nil, err
	}
	return objminio.New(ctx, &objstore.Config{
		Endpoint:  host,
		AccessKey: cfg.RootUser,
		SecretKey: cfg.RootPassword,
		UseSSL:    secure,
	})
}
