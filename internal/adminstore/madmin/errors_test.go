package madmin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	madmingo "github.com/minio/madmin-go/v3"
	"github.com/stretchr/testify/assert"

	"github.com/koustreak/miniokit/internal/errs"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.ErrKind
	}{
		{
			name: "nil error",
			err:  nil,
			want: errs.ErrKindUnknown,
		},
		{
			name: "service account not found",
			err:  madmingo.ErrorResponse{Code: "XMinioAdminServiceAccountNotFound"},
			want: errs.ErrKindNotFound,
		},
		{
			name: "no such user",
			err:  madmingo.ErrorResponse{Code: "XMinioAdminNoSuchUser"},
			want: errs.ErrKindNotFound,
		},
		{
			name: "service account conflict",
			err:  madmingo.ErrorResponse{Code: "XMinioAdminServiceAccountAlreadyExists"},
			want: errs.ErrKindAlreadyExists,
		},
		{
			name: "bad root credentials",
			err:  madmingo.ErrorResponse{Code: "SignatureDoesNotMatch"},
			want: errs.ErrKindPermissionDenied,
		},
		{
			name: "invalid argument",
			err:  madmingo.ErrorResponse{Code: "XMinioAdminInvalidArgument"},
			want: errs.ErrKindInvalidInput,
		},
		{
			name: "cancelled context",
			err:  fmt.Errorf("request: %w", context.Canceled),
			want: errs.ErrKindTimeout,
		},
		{
			name: "plain transport error",
			err:  errors.New("dial tcp: connection refused"),
			want: errs.ErrKindUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err, "op failed")
			if tt.err == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}
