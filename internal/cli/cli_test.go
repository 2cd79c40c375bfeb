package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koustreak/miniokit/internal/bucket"
	"github.com/koustreak/miniokit/internal/errs"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitOK},
		{"config missing", errs.New(errs.ErrKindConfigMissing, "m"), ExitConfig},
		{"invalid input", errs.New(errs.ErrKindInvalidInput, "m"), ExitConfig},
		{"not found", errs.New(errs.ErrKindNotFound, "m"), ExitNotFound},
		{"already exists", errs.New(errs.ErrKindAlreadyExists, "m"), ExitAlreadyExists},
		{"not empty", errs.New(errs.ErrKindNotEmpty, "m"), ExitNotEmpty},
		{"unavailable", errs.New(errs.ErrKindUnavailable, "m"), ExitUnavailable},
		{"auth failure", errs.New(errs.ErrKindPermissionDenied, "m"), ExitUnavailable},
		{"timeout", errs.New(errs.ErrKindTimeout, "m"), ExitUnavailable},
		{"untyped error", errors.New("plain"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestBatchExitCode(t *testing.T) {
	allOk := []bucket.Result{
		{Outcome: bucket.OutcomeCreated},
		{Outcome: bucket.OutcomeAlreadyExisted},
	}
	assert.Equal(t, ExitOK, BatchExitCode(allOk))

	partial := []bucket.Result{
		{Outcome: bucket.OutcomeCreated},
		{Outcome: bucket.OutcomeFailed},
	}
	assert.Equal(t, ExitFailure, BatchExitCode(partial))

	assert.Equal(t, ExitOK, BatchExitCode(nil))
}
