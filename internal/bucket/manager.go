// Package bucket implements the bucket lifecycle: reconciling a declared
// bucket set against server state, listing, and guarded deletion.
//
// Batch operations (Status, CreateDeclared) collect one Result per declared
// name in order; a single bucket's failure never aborts its siblings.
package bucket

import (
	"context"

	"github.com/koustreak/miniokit/internal/errs"
	"github.com/koustreak/miniokit/internal/logger"
	"github.com/koustreak/miniokit/internal/objstore"
)

// Outcome is the per-bucket result of a batch operation.
type Outcome string

const (
	OutcomeInvalid        Outcome = "invalid"         // failed name validation, never queried
	OutcomePresent        Outcome = "present"         // exists on the server
	OutcomeAbsent         Outcome = "absent"          // not on the server
	OutcomeCreated        Outcome = "created"         // created by this run
	OutcomeAlreadyExisted Outcome = "already-existed" // idempotent no-op
	OutcomeFailed         Outcome = "failed"          // server call failed, see Err
)

// Result pairs a declared bucket name with what happened to it.
type Result struct {
	Name    string
	Outcome Outcome
	Err     error // set for OutcomeInvalid and OutcomeFailed
}

// Ok reports whether the result is a success or idempotent no-op.
func (r Result) Ok() bool {
	switch r.Outcome {
	case OutcomeInvalid, OutcomeFailed:
		return false
	}
	return true
}

// Manager orchestrates bucket operations against an objstore.Store.
type Manager struct {
	store objstore.Store
	log   *logger.Logger
}

// New returns a Manager backed by store.
func New(store objstore.Store, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.New(nil)
	}
	return &Manager{store: store, log: log}
}

// Status reports present/absent for every declared bucket name, in order.
// Read-only: no bucket is created or modified. Invalid names are reported
// as such and never queried.
func (m *Manager) Status(ctx context.Context, declared []string) []Result {
	results := make([]Result, 0, len(declared))
	for _, name := range declared {
		results = append(results, m.statusOne(ctx, name))
	}
	return results
}

func (m *Manager) statusOne(ctx context.Context, name string) Result {
	if err := ValidateName(name); err != nil {
		return Result{Name: name, Outcome: OutcomeInvalid, Err: err}
	}

	exists, err := m.store.BucketExists(ctx, name)
	if err != nil {
		return Result{Name: name, Outcome: OutcomeFailed, Err: err}
	}
	if exists {
		return Result{Name: name, Outcome: OutcomePresent}
	}
	return Result{Name: name, Outcome: OutcomeAbsent}
}

// CreateDeclared ensures every declared bucket exists, in order. Creation
// of an already-present bucket is an idempotent no-op. Partial failure is
// reported per bucket, never masked.
func (m *Manager) CreateDeclared(ctx context.Context, declared []string) []Result {
	results := make([]Result, 0, len(declared))
	for _, name := range declared {
		results = append(results, m.createOne(ctx, name))
	}
	return results
}

func (m *Manager) createOne(ctx context.Context, name string) Result {
	if err := ValidateName(name); err != nil {
		return Result{Name: name, Outcome: OutcomeInvalid, Err: err}
	}

	exists, err := m.store.BucketExists(ctx, name)
	if err != nil {
		return Result{Name: name, Outcome: OutcomeFailed, Err: err}
	}
	if exists {
		return Result{Name: name, Outcome: OutcomeAlreadyExisted}
	}

	if err := m.store.CreateBucket(ctx, name); err != nil {
		// A create race with another operator still counts as reconciled.
		if errs.IsAlreadyExists(err) {
			return Result{Name: name, Outcome: OutcomeAlreadyExisted}
		}
		return Result{Name: name, Outcome: OutcomeFailed, Err: err}
	}

	m.log.With().Str("bucket", name).Logger().Info("bucket created")
	return Result{Name: name, Outcome: OutcomeCreated}
}

// ListAll returns every bucket visible to the credentials in use,
// independent of the declared set.
func (m *Manager) ListAll(ctx context.Context) ([]objstore.BucketInfo, error) {
	return m.store.ListBuckets(ctx)
}

// Delete removes the named bucket. A non-empty bucket is only deleted when
// force is true, in which case all objects are removed first. Destructive
// and irreversible; the caller must have requested force explicitly.
func (m *Manager) Delete(ctx context.Context, name string, force bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	exists, err := m.store.BucketExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Newf(errs.ErrKindNotFound, "bucket %q does not exist", name)
	}

	empty, err := m.store.IsBucketEmpty(ctx, name)
	if err != nil {
		return err
	}

	if !empty {
		if !force {
			return errs.Newf(errs.ErrKindNotEmpty,
				"bucket %q is not empty; pass --force to delete it anyway", name)
		}
		if err := m.store.RemoveAllObjects(ctx, name); err != nil {
			return err
		}
		m.log.With().Str("bucket", name).Logger().Warn("all objects removed")
	}

	if err := m.store.DeleteBucket(ctx, name); err != nil {
		return err
	}

	m.log.With().Str("bucket", name).Bool("force", force).Logger().
		Info("bucket deleted")
	return nil
}
