package madmin

import (
	"context"
	"errors"

	madmingo "github.com/minio/madmin-go/v3"

	"github.com/koustreak/miniokit/internal/errs"
)

// mapError translates a madmin SDK error into a *errs.Error.
// The admin API reports errors by code, not HTTP status, so the mapping
// keys off madmin.ErrorResponse.Code.
func mapError(err error, msg string) *errs.Error {
	if err == nil {
		return nil
	}

	// Context cancellation / deadline
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	}

	var resp madmingo.ErrorResponse
	if errors.As(err, &resp) {
		switch resp.Code {
		case "XMinioAdminServiceAccountNotFound",
			"XMinioAdminNoSuchAccessKey",
			"XMinioAdminNoSuchUser":
			return errs.Wrap(errs.ErrKindNotFound, msg, err)
		case "XMinioAdminServiceAccountAlreadyExists",
			"XMinioAdminResourceConflict":
			return errs.Wrap(errs.ErrKindAlreadyExists, msg, err)
		case "AccessDenied",
			"InvalidAccessKeyId",
			"SignatureDoesNotMatch",
			"XMinioAdminAccessDenied":
			return errs.Wrap(errs.ErrKindPermissionDenied, msg, err)
		case "XMinioAdminInvalidArgument":
			return errs.Wrap(errs.ErrKindInvalidInput, msg, err)
		}
	}

	// Anything else — the admin API is unreachable or misbehaving
	return errs.Wrap(errs.ErrKindUnavailable, msg, err)
}
