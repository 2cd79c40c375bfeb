package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	withCause := Wrap(ErrKindNotFound, "bucket does not exist", errors.New("NoSuchBucket"))
	assert.Equal(t, "[not_found] bucket does not exist: NoSuchBucket", withCause.Error())

	noCause := New(ErrKindNotEmpty, "bucket still holds objects")
	assert.Equal(t, "[not_empty] bucket still holds objects", noCause.Error())
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"config missing", New(ErrKindConfigMissing, "m"), IsConfigMissing},
		{"invalid input", New(ErrKindInvalidInput, "m"), IsInvalidInput},
		{"not found", New(ErrKindNotFound, "m"), IsNotFound},
		{"already exists", New(ErrKindAlreadyExists, "m"), IsAlreadyExists},
		{"not empty", New(ErrKindNotEmpty, "m"), IsNotEmpty},
		{"permission denied", New(ErrKindPermissionDenied, "m"), IsPermissionDenied},
		{"timeout", New(ErrKindTimeout, "m"), IsTimeout},
		{"unavailable", New(ErrKindUnavailable, "m"), IsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.pred(tt.err))
			assert.False(t, tt.pred(errors.New("plain")))
		})
	}
}

func TestPredicatesTraverseWrapping(t *testing.T) {
	inner := New(ErrKindAlreadyExists, "access key exists")
	outer := fmt.Errorf("creating key: %w", inner)

	assert.True(t, IsAlreadyExists(outer))
	assert.Equal(t, ErrKindAlreadyExists, KindOf(outer))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(ErrKindUnavailable, "cannot reach server", cause)

	require.ErrorIs(t, err, cause)
	assert.Equal(t, ErrKindUnknown, KindOf(cause))
}

func TestNewf(t *testing.T) {
	err := Newf(ErrKindNotFound, "access key %q does not exist", "AKIA123")
	assert.Equal(t, `access key "AKIA123" does not exist`, err.Message)
	assert.Equal(t, ErrKindNotFound, err.Kind)
}
